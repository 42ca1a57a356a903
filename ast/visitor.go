package ast

// Visitor dispatches over the closed Block and Inline sum types. A
// caller that needs to walk a Document implements Visitor and calls
// Block.Visit/Inline.Visit on each node; adding a new Block or Inline
// variant to this package is therefore a breaking change to every
// Visitor implementation, which is the point — the switch is meant to
// stay exhaustive.
type Visitor interface {
	VisitParagraph(*Paragraph) error
	VisitTable(*Table) error
	VisitList(*List) error
	VisitImage(*Image) error
	VisitShapeBlock(*ShapeBlock) error
	VisitSectionBreak(*SectionBreak) error
	VisitDropCap(*DropCap) error
	VisitTOC(*TableOfContents) error

	VisitText(*Text) error
	VisitLineBreak(*LineBreak) error
	VisitTab(*Tab) error
	VisitInlineImage(*InlineImage) error
	VisitShape(*Shape) error
	VisitFootnoteRef(*FootnoteRef) error
	VisitEndnoteRef(*EndnoteRef) error
	VisitCheckbox(*Checkbox) error
	VisitPageNumber(*PageNumber) error
	VisitPageCount(*PageCount) error
	VisitRawInline(*RawInline) error
}

// BaseVisitor implements Visitor with no-op methods so callers can
// embed it and override only the cases they care about.
type BaseVisitor struct{}

func (BaseVisitor) VisitParagraph(*Paragraph) error             { return nil }
func (BaseVisitor) VisitTable(*Table) error                     { return nil }
func (BaseVisitor) VisitList(*List) error                       { return nil }
func (BaseVisitor) VisitImage(*Image) error                     { return nil }
func (BaseVisitor) VisitShapeBlock(*ShapeBlock) error           { return nil }
func (BaseVisitor) VisitSectionBreak(*SectionBreak) error       { return nil }
func (BaseVisitor) VisitDropCap(*DropCap) error                 { return nil }
func (BaseVisitor) VisitTOC(*TableOfContents) error             { return nil }
func (BaseVisitor) VisitText(*Text) error                       { return nil }
func (BaseVisitor) VisitLineBreak(*LineBreak) error             { return nil }
func (BaseVisitor) VisitTab(*Tab) error                         { return nil }
func (BaseVisitor) VisitInlineImage(*InlineImage) error         { return nil }
func (BaseVisitor) VisitShape(*Shape) error                     { return nil }
func (BaseVisitor) VisitFootnoteRef(*FootnoteRef) error         { return nil }
func (BaseVisitor) VisitEndnoteRef(*EndnoteRef) error           { return nil }
func (BaseVisitor) VisitCheckbox(*Checkbox) error                { return nil }
func (BaseVisitor) VisitPageNumber(*PageNumber) error            { return nil }
func (BaseVisitor) VisitPageCount(*PageCount) error              { return nil }
func (BaseVisitor) VisitRawInline(*RawInline) error               { return nil }

var _ Visitor = BaseVisitor{}
