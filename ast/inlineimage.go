package ast

// WrapType enumerates the drawingML wrap styles a floating anchor can use.
type WrapType int

const (
	WrapInline WrapType = iota
	WrapSquare
	WrapTight
	WrapThrough
	WrapTopAndBottom
	WrapBehindText
	WrapInFrontOfText
	WrapNone
)

// RelativeFrom enumerates the drawingML positionH/positionV relativeFrom anchors.
type RelativeFrom int

const (
	RelativeFromColumn RelativeFrom = iota
	RelativeFromMargin
	RelativeFromPage
	RelativeFromLeftMargin
	RelativeFromRightMargin
	RelativeFromLine
	RelativeFromParagraph
)

// FloatAnchor carries the floating-position state for an InlineImage
// or Shape that is not strictly inline with the text flow (spec
// §4.3's full anchor surface: distance-from-text, positionH/V, wrap,
// z-order and behavior flags).
type FloatAnchor struct {
	Floating bool

	DistTopEMU    int
	DistBottomEMU int
	DistLeftEMU   int
	DistRightEMU  int

	SimplePos       bool
	SimplePosXEMU   int
	SimplePosYEMU   int

	PositionHRelativeTo RelativeFrom
	PositionHOffsetEMU  int
	PositionHAlign      string // "left"|"center"|"right"|"" when offset used instead

	PositionVRelativeTo RelativeFrom
	PositionVOffsetEMU  int
	PositionVAlign      string

	RelativeHeight int // z-order among floating objects
	Wrap           WrapType

	LayoutInCell bool
	AllowOverlap bool
	Locked       bool
	Behind       bool

	EffectExtentTopEMU    int
	EffectExtentBottomEMU int
	EffectExtentLeftEMU   int
	EffectExtentRightEMU  int

	// Extension carries unrecognized mc:AlternateContent/a:ext payloads
	// keyed by their URI, preserved verbatim on round trip.
	Extension map[string]string
}

// InlineImage is an image anchored within a run, either truly inline
// or floating per Anchor.Floating.
type InlineImage struct {
	MediaKey    string // key into media dedup pool / Document media registry
	Extension   string // "png", "jpeg", "gif", ...
	WidthEMU    int
	HeightEMU   int
	AltText     string
	Title       string
	Anchor      FloatAnchor
}

// NewInlineImage returns a non-floating inline image of the given
// pixel dimensions converted to EMU by the caller.
func NewInlineImage(mediaKey, extension string, widthEMU, heightEMU int) InlineImage {
	return InlineImage{
		MediaKey:  mediaKey,
		Extension: extension,
		WidthEMU:  widthEMU,
		HeightEMU: heightEMU,
	}
}

func (i InlineImage) WithAltText(s string) InlineImage { i.AltText = s; return i }
func (i InlineImage) WithFloating(a FloatAnchor) InlineImage {
	a.Floating = true
	i.Anchor = a
	return i
}

func (InlineImage) Kind() InlineKind         { return InlineImageKind }
func (i *InlineImage) Visit(v Visitor) error { return v.VisitInlineImage(i) }
func (InlineImage) inline()                  {}
