package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type countingVisitor struct {
	BaseVisitor
	paragraphs int
	tables     int
	texts      int
}

func (v *countingVisitor) VisitParagraph(*Paragraph) error { v.paragraphs++; return nil }
func (v *countingVisitor) VisitTable(*Table) error         { v.tables++; return nil }
func (v *countingVisitor) VisitText(*Text) error           { v.texts++; return nil }

func TestParagraphVisitDispatchesToCorrectMethod(t *testing.T) {
	p := NewParagraph()
	v := &countingVisitor{}
	if err := p.Visit(v); err != nil {
		t.Fatalf("Visit returned error: %v", err)
	}
	if v.paragraphs != 1 {
		t.Fatalf("expected 1 paragraph visit, got %d", v.paragraphs)
	}
	if v.tables != 0 {
		t.Fatalf("expected 0 table visits, got %d", v.tables)
	}
}

func TestTextVisitDispatchesToCorrectMethod(t *testing.T) {
	text := NewText("hello")
	v := &countingVisitor{}
	if err := text.Visit(v); err != nil {
		t.Fatalf("Visit returned error: %v", err)
	}
	if v.texts != 1 {
		t.Fatalf("expected 1 text visit, got %d", v.texts)
	}
}

func TestWithMethodsDoNotMutateOriginal(t *testing.T) {
	base := NewText("hello")
	bold := base.WithBold(true)

	if base.Bold {
		t.Fatal("base text was mutated by WithBold")
	}
	if !bold.Bold {
		t.Fatal("derived text did not pick up WithBold")
	}
	if base.Content != bold.Content {
		t.Fatal("derived text lost its content")
	}
}

func TestParagraphWithBorderAccumulates(t *testing.T) {
	p := NewParagraph().
		WithBorder(BorderTop, Border{Style: "single", SizeEighthPt: 4}).
		WithBorder(BorderBottom, Border{Style: "double", SizeEighthPt: 8})

	if len(p.Borders) != 2 {
		t.Fatalf("expected 2 borders, got %d", len(p.Borders))
	}
	if p.Borders[BorderTop].Style != "single" {
		t.Fatalf("top border style mismatch: %+v", p.Borders[BorderTop])
	}
}

func TestTableCellGridSpanDefaultsToOne(t *testing.T) {
	c := NewTableCell()
	if c.GridSpan != 1 {
		t.Fatalf("expected default GridSpan 1, got %d", c.GridSpan)
	}
	merged := c.WithGridSpan(3)
	if merged.GridSpan != 3 {
		t.Fatalf("expected GridSpan 3 after WithGridSpan, got %d", merged.GridSpan)
	}
	if c.GridSpan != 1 {
		t.Fatal("WithGridSpan mutated the original cell")
	}
}

func TestDocumentWarnAppendsWithoutMutatingPriorSlice(t *testing.T) {
	d := NewDocument()
	d1 := d.Warn(Warning{Code: WarningPartialParse, Message: "first"})
	d2 := d1.Warn(Warning{Code: WarningConstraintClamped, Message: "second"})

	if len(d1.Warnings) != 1 {
		t.Fatalf("expected d1 to have 1 warning, got %d", len(d1.Warnings))
	}
	if len(d2.Warnings) != 2 {
		t.Fatalf("expected d2 to have 2 warnings, got %d", len(d2.Warnings))
	}
}

func TestDefaultThemeResolvesKnownColor(t *testing.T) {
	theme := DefaultTheme()
	hex, ok := theme.ResolveThemeColor("accent1", 0, 0)
	if !ok {
		t.Fatal("expected accent1 to resolve")
	}
	if hex != "4472C4" {
		t.Fatalf("unexpected accent1 hex: %s", hex)
	}
	if _, ok := theme.ResolveThemeColor("nonexistent", 0, 0); ok {
		t.Fatal("expected lookup of unknown theme color to fail")
	}
}

func TestParagraphStructuralEquality(t *testing.T) {
	a := NewParagraph().WithAlignment(AlignCenter).WithSpacing(120, 240)
	b := NewParagraph().WithAlignment(AlignCenter).WithSpacing(120, 240)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("expected equal paragraphs, diff:\n%s", diff)
	}
}
