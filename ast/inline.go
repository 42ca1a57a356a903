package ast

// InlineKind identifies which concrete type an Inline value holds.
type InlineKind int

const (
	InlineText InlineKind = iota
	InlineLineBreak
	InlineTab
	InlineImageKind
	InlineShapeKind
	InlineFootnoteRef
	InlineEndnoteRef
	InlineCheckbox
	InlinePageNumber
	InlinePageCount
	InlineRaw
)

func (k InlineKind) String() string {
	switch k {
	case InlineText:
		return "Text"
	case InlineLineBreak:
		return "LineBreak"
	case InlineTab:
		return "Tab"
	case InlineImageKind:
		return "InlineImage"
	case InlineShapeKind:
		return "Shape"
	case InlineFootnoteRef:
		return "FootnoteRef"
	case InlineEndnoteRef:
		return "EndnoteRef"
	case InlineCheckbox:
		return "Checkbox"
	case InlinePageNumber:
		return "PageNumber"
	case InlinePageCount:
		return "PageCount"
	case InlineRaw:
		return "RawInline"
	default:
		return "Unknown"
	}
}

// Inline is the closed sum type nested inside a Paragraph's, DropCap's
// or ShapeBlock's text. inline() is unexported so no type outside this
// package can implement Inline.
type Inline interface {
	Kind() InlineKind
	Visit(v Visitor) error
	inline()
}

// LineBreak is a forced line break within a run (w:br).
type LineBreak struct {
	// Type distinguishes text-wrap, page, and column breaks; "" means
	// a plain text-wrap break.
	Type string
}

func NewLineBreak() LineBreak { return LineBreak{} }

func (LineBreak) Kind() InlineKind           { return InlineLineBreak }
func (b *LineBreak) Visit(v Visitor) error   { return v.VisitLineBreak(b) }
func (LineBreak) inline()                    {}

// Tab is a tab stop within a run (w:tab).
type Tab struct{}

func NewTab() Tab { return Tab{} }

func (Tab) Kind() InlineKind         { return InlineTab }
func (t *Tab) Visit(v Visitor) error { return v.VisitTab(t) }
func (Tab) inline()                  {}

// FootnoteRef is a reference to a Document.Footnotes entry.
type FootnoteRef struct {
	ID int
}

func NewFootnoteRef(id int) FootnoteRef { return FootnoteRef{ID: id} }

func (FootnoteRef) Kind() InlineKind         { return InlineFootnoteRef }
func (f *FootnoteRef) Visit(v Visitor) error { return v.VisitFootnoteRef(f) }
func (FootnoteRef) inline()                  {}

// EndnoteRef is a reference to a Document.Endnotes entry.
type EndnoteRef struct {
	ID int
}

func NewEndnoteRef(id int) EndnoteRef { return EndnoteRef{ID: id} }

func (EndnoteRef) Kind() InlineKind         { return InlineEndnoteRef }
func (e *EndnoteRef) Visit(v Visitor) error { return v.VisitEndnoteRef(e) }
func (EndnoteRef) inline()                  {}

// Checkbox is a legacy form-field checkbox (w:fldChar / FORMCHECKBOX).
type Checkbox struct {
	Checked bool
}

func NewCheckbox(checked bool) Checkbox { return Checkbox{Checked: checked} }

func (c Checkbox) WithChecked(checked bool) Checkbox { c.Checked = checked; return c }

func (Checkbox) Kind() InlineKind        { return InlineCheckbox }
func (c *Checkbox) Visit(v Visitor) error { return v.VisitCheckbox(c) }
func (Checkbox) inline()                 {}

// PageNumber is a PAGE field.
type PageNumber struct{}

func NewPageNumber() PageNumber { return PageNumber{} }

func (PageNumber) Kind() InlineKind         { return InlinePageNumber }
func (p *PageNumber) Visit(v Visitor) error { return v.VisitPageNumber(p) }
func (PageNumber) inline()                  {}

// PageCount is a NUMPAGES field.
type PageCount struct{}

func NewPageCount() PageCount { return PageCount{} }

func (PageCount) Kind() InlineKind         { return InlinePageCount }
func (p *PageCount) Visit(v Visitor) error { return v.VisitPageCount(p) }
func (PageCount) inline()                  {}

// RawInline carries verbatim XML the reader could not map onto a
// known inline type, preserved so a round trip does not lose it
// (spec §7 UnknownExtension).
type RawInline struct {
	XML string
}

func NewRawInline(xml string) RawInline { return RawInline{XML: xml} }

func (RawInline) Kind() InlineKind         { return InlineRaw }
func (r *RawInline) Visit(v Visitor) error { return v.VisitRawInline(r) }
func (RawInline) inline()                  {}
