package ast

// Alignment enumerates w:jc values.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
	AlignDistribute
)

// LineSpacingRule enumerates w:spacing lineRule values.
type LineSpacingRule int

const (
	LineSpacingAuto LineSpacingRule = iota // "auto": value is a multiple of single spacing x240
	LineSpacingExact                       // "exact": value is twips, fixed
	LineSpacingAtLeast                     // "atLeast": value is twips, minimum
)

// BorderSide enumerates the four edges of a paragraph or cell border box.
type BorderSide int

const (
	BorderTop BorderSide = iota
	BorderBottom
	BorderLeft
	BorderRight
)

// Border describes one edge of a bordered box (paragraph or table cell).
type Border struct {
	Style        string // "single"|"double"|"dashed"|"none"|...
	SizeEighthPt int
	Color        string // 6-hex, "auto" allowed
	SpaceTwips   int
}

// Paragraph is a block of text runs sharing one set of paragraph-level
// formatting (spec §4.3).
type Paragraph struct {
	Runs []Inline

	Alignment Alignment

	IndentLeftTwips      int
	IndentRightTwips     int
	IndentFirstLineTwips int // negative means hanging indent
	IndentHangingTwips   int

	SpacingBeforeTwips int
	SpacingAfterTwips  int
	LineSpacing        int
	LineSpacingRule    LineSpacingRule
	ContextualSpacing  bool

	ShadingFill string // 6-hex, "" = none
	Borders     map[BorderSide]Border

	PageBreakBefore bool
	KeepNext        bool
	KeepLines       bool
	WidowControl    bool

	// StyleRef names a paragraph style this paragraph layers direct
	// formatting on top of in the style cascade.
	StyleRef string

	// NumberingID and NumberingLevel, when NumberingID != 0, place this
	// paragraph in a numbered or bulleted list managed externally by a
	// List's numbering definition (direct numPr override on a
	// paragraph, as opposed to a List block wrapping paragraphs).
	NumberingID    int
	NumberingLevel int

	Outline int // 0 = body text, 1-9 = heading outline level
}

// NewParagraph returns a left-aligned paragraph containing runs.
func NewParagraph(runs ...Inline) Paragraph {
	return Paragraph{Runs: runs}
}

func (p Paragraph) WithAlignment(a Alignment) Paragraph { p.Alignment = a; return p }
func (p Paragraph) WithIndent(leftTwips, rightTwips, firstLineTwips int) Paragraph {
	p.IndentLeftTwips = leftTwips
	p.IndentRightTwips = rightTwips
	p.IndentFirstLineTwips = firstLineTwips
	return p
}
func (p Paragraph) WithSpacing(beforeTwips, afterTwips int) Paragraph {
	p.SpacingBeforeTwips = beforeTwips
	p.SpacingAfterTwips = afterTwips
	return p
}
func (p Paragraph) WithLineSpacing(value int, rule LineSpacingRule) Paragraph {
	p.LineSpacing = value
	p.LineSpacingRule = rule
	return p
}
func (p Paragraph) WithShading(hex string) Paragraph { p.ShadingFill = hex; return p }
func (p Paragraph) WithBorder(side BorderSide, b Border) Paragraph {
	if p.Borders == nil {
		p.Borders = map[BorderSide]Border{}
	}
	p.Borders[side] = b
	return p
}
func (p Paragraph) WithPageBreakBefore(b bool) Paragraph { p.PageBreakBefore = b; return p }
func (p Paragraph) WithStyleRef(style string) Paragraph  { p.StyleRef = style; return p }
func (p Paragraph) WithNumbering(numID, level int) Paragraph {
	p.NumberingID = numID
	p.NumberingLevel = level
	return p
}
func (p Paragraph) WithOutlineLevel(level int) Paragraph { p.Outline = level; return p }
func (p Paragraph) WithRuns(runs ...Inline) Paragraph    { p.Runs = runs; return p }

func (Paragraph) Kind() BlockKind          { return BlockParagraph }
func (p *Paragraph) Visit(v Visitor) error { return v.VisitParagraph(p) }
func (Paragraph) block()                  {}
