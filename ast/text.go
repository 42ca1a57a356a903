package ast

// VertAlign is a run's superscript/subscript state.
type VertAlign int

const (
	VertAlignBaseline VertAlign = iota
	VertAlignSuperscript
	VertAlignSubscript
)

// UnderlineStyle enumerates w:u val values actually exercised here.
type UnderlineStyle int

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineThick
	UnderlineDotted
	UnderlineDashed
	UnderlineWavy
)

// Text is a run of characters sharing one set of formatting
// properties (spec §4.3's run-property surface).
type Text struct {
	Content string

	Bold          bool
	Italic        bool
	Underline     UnderlineStyle
	UnderlineColor string // 6-hex, "" = auto
	Strike        bool
	DoubleStrike  bool
	Caps          bool
	SmallCaps     bool
	Vanish        bool
	Emboss        bool
	Imprint       bool
	Outline       bool
	Shadow        bool

	VertAlign VertAlign

	FontFamily   string
	FontSizeHalf int // half-points
	Color        string // 6-hex, "" = auto
	ThemeColor   string // theme color name; takes precedence over Color when set
	ThemeTint    uint8
	ThemeShade   uint8

	HighlightColor string // named highlight (w:highlight), "" = none
	ShadingFill    string // 6-hex cell/run shading, "" = none

	CharacterSpacingTwips int // w:spacing val, can be negative

	BorderStyle string // "" = none
	BorderColor string
	BorderSizeEighthPt int

	// HyperlinkRelID, when non-empty, marks this run as the content
	// of a hyperlink pointing at a relationship ID resolved externally.
	HyperlinkRelID string
	// StyleRef, when non-empty, names a character style to layer under
	// this run's direct formatting in the style cascade.
	StyleRef string
}

// NewText returns a Text run with no formatting applied.
func NewText(content string) Text {
	return Text{Content: content}
}

func (t Text) WithBold(b bool) Text                 { t.Bold = b; return t }
func (t Text) WithItalic(b bool) Text               { t.Italic = b; return t }
func (t Text) WithUnderline(u UnderlineStyle) Text   { t.Underline = u; return t }
func (t Text) WithStrike(b bool) Text                { t.Strike = b; return t }
func (t Text) WithDoubleStrike(b bool) Text          { t.DoubleStrike = b; return t }
func (t Text) WithFontFamily(f string) Text          { t.FontFamily = f; return t }
func (t Text) WithFontSizeHalf(hp int) Text          { t.FontSizeHalf = hp; return t }
func (t Text) WithColor(hex string) Text             { t.Color = hex; t.ThemeColor = ""; return t }
func (t Text) WithThemeColor(name string, tint, shade uint8) Text {
	t.ThemeColor = name
	t.ThemeTint = tint
	t.ThemeShade = shade
	t.Color = ""
	return t
}
func (t Text) WithHighlight(color string) Text       { t.HighlightColor = color; return t }
func (t Text) WithShading(hex string) Text           { t.ShadingFill = hex; return t }
func (t Text) WithVertAlign(a VertAlign) Text         { t.VertAlign = a; return t }
func (t Text) WithHyperlink(relID string) Text        { t.HyperlinkRelID = relID; return t }
func (t Text) WithStyleRef(style string) Text         { t.StyleRef = style; return t }

func (Text) Kind() InlineKind       { return InlineText }
func (t *Text) Visit(v Visitor) error { return v.VisitText(t) }
func (Text) inline()                {}
