/*
MIT License

Copyright (c) 2025 Misael Monterroca

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package astconv

import (
	"bytes"
	"testing"

	"github.com/wordengine/docflow/ast"
	"github.com/wordengine/docflow/internal/reader"
)

// roundTrip writes an ast.Document through the container writer and
// reads it back through the container reader: the full pipeline the
// structured round-trip property runs over.
func roundTrip(t *testing.T, src ast.Document) ast.Document {
	t.Helper()
	staged, err := ToDomainWithSeed(src, 1)
	if err != nil {
		t.Fatalf("ToDomain: %v", err)
	}
	var buf bytes.Buffer
	if _, err := staged.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	pkg, err := reader.LoadPackageFromBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("LoadPackageFromBytes: %v", err)
	}
	parsed, err := reader.ParsePackage(pkg)
	if err != nil {
		t.Fatalf("ParsePackage: %v", err)
	}
	doc, err := reader.ReconstructDocument(parsed)
	if err != nil {
		t.Fatalf("ReconstructDocument: %v", err)
	}
	return FromDomain(doc)
}

func firstParagraph(t *testing.T, doc ast.Document) *ast.Paragraph {
	t.Helper()
	for _, block := range doc.Blocks {
		if p, ok := block.(*ast.Paragraph); ok {
			return p
		}
	}
	t.Fatal("no paragraph block in document")
	return nil
}

func firstText(t *testing.T, p *ast.Paragraph) *ast.Text {
	t.Helper()
	for _, inline := range p.Runs {
		if txt, ok := inline.(*ast.Text); ok {
			return txt
		}
	}
	t.Fatal("no text inline in paragraph")
	return nil
}

func TestRoundTripFormattedText(t *testing.T) {
	text := ast.NewText("Red on Yellow").
		WithBold(true).
		WithItalic(true).
		WithColor("FF0000").
		WithFontSizeHalf(28).
		WithUnderline(ast.UnderlineSingle)
	para := ast.NewParagraph(&text).WithAlignment(ast.AlignCenter)

	src := ast.NewDocument()
	src.Blocks = append(src.Blocks, &para)

	got := roundTrip(t, src)
	gotText := firstText(t, firstParagraph(t, got))

	if gotText.Content != "Red on Yellow" {
		t.Fatalf("content %q", gotText.Content)
	}
	if !gotText.Bold || !gotText.Italic {
		t.Fatal("bold/italic lost in round trip")
	}
	if gotText.Color != "FF0000" {
		t.Fatalf("color %q, want FF0000", gotText.Color)
	}
	if gotText.FontSizeHalf != 28 {
		t.Fatalf("size %d half-points, want 28", gotText.FontSizeHalf)
	}
	if gotText.Underline != ast.UnderlineSingle {
		t.Fatal("underline lost in round trip")
	}
	if firstParagraph(t, got).Alignment != ast.AlignCenter {
		t.Fatal("alignment lost in round trip")
	}
}

// Hanging indent: left=720, hanging=360 reads back as first line -360
// and writes the same values again.
func TestRoundTripHangingIndent(t *testing.T) {
	text := ast.NewText("hanging")
	para := ast.NewParagraph(&text).WithIndent(720, 0, -360)

	src := ast.NewDocument()
	src.Blocks = append(src.Blocks, &para)

	got := roundTrip(t, src)
	p := firstParagraph(t, got)
	if p.IndentLeftTwips != 720 {
		t.Fatalf("left indent %d, want 720", p.IndentLeftTwips)
	}
	if p.IndentFirstLineTwips != -360 {
		t.Fatalf("first line %d, want -360 (hanging 360)", p.IndentFirstLineTwips)
	}

	// The same document survives a second pass unchanged.
	again := roundTrip(t, got)
	p2 := firstParagraph(t, again)
	if p2.IndentLeftTwips != 720 || p2.IndentFirstLineTwips != -360 {
		t.Fatalf("second pass drifted: left=%d first=%d", p2.IndentLeftTwips, p2.IndentFirstLineTwips)
	}
}

// A list interrupted by a plain paragraph resumes as a second List
// whose StartIndex is one past the first segment's same-level count.
func TestRoundTripListContinuity(t *testing.T) {
	style := ast.NewListStyle(1, true, ast.ListLevel{Format: ast.NumberFormatDecimal, TextFormat: "%1."})

	item := func(s string) ast.ListItem {
		txt := ast.NewText(s)
		return ast.NewListItem(ast.NewParagraph(&txt), 0)
	}
	listA := ast.NewList(style, item("one"), item("two"), item("three"))
	interruption := ast.NewParagraph()
	txt := ast.NewText("interlude")
	interruption.Runs = append(interruption.Runs, &txt)
	listB := ast.NewList(style, item("four")).WithStartIndex(4)

	src := ast.NewDocument()
	src.Blocks = append(src.Blocks, &listA, &interruption, &listB)

	got := roundTrip(t, src)

	var lists []*ast.List
	for _, block := range got.Blocks {
		if l, ok := block.(*ast.List); ok {
			lists = append(lists, l)
		}
	}
	if len(lists) != 2 {
		t.Fatalf("got %d lists, want 2 (interrupted list splits)", len(lists))
	}
	if lists[0].StartIndex != 1 {
		t.Fatalf("first segment StartIndex = %d, want 1", lists[0].StartIndex)
	}
	if len(lists[0].Items) != 3 {
		t.Fatalf("first segment has %d items, want 3", len(lists[0].Items))
	}
	if lists[1].StartIndex != 4 {
		t.Fatalf("resumed segment StartIndex = %d, want 1 + 3 same-level items", lists[1].StartIndex)
	}
	for _, l := range lists {
		if l.Style.ID != 1 {
			t.Fatalf("list numbering ID %d, want 1 on both segments", l.Style.ID)
		}
	}
}

func TestRoundTripMergedTable(t *testing.T) {
	cellText := func(s string) ast.TableCell {
		txt := ast.NewText(s)
		p := ast.NewParagraph(&txt)
		return ast.NewTableCell(&p)
	}

	restart := cellText("C").WithVMerge(ast.VMergeRestart)
	row0 := ast.NewTableRow(cellText("A"), cellText("B"), restart)
	wide := cellText("D").WithGridSpan(2)
	cont := ast.NewTableCell().WithVMerge(ast.VMergeContinue)
	row1 := ast.NewTableRow(wide, cont)
	table := ast.NewTable(row0, row1)

	src := ast.NewDocument()
	src.Blocks = append(src.Blocks, &table)

	got := roundTrip(t, src)
	var gotTable *ast.Table
	for _, block := range got.Blocks {
		if tb, ok := block.(*ast.Table); ok {
			gotTable = tb
		}
	}
	if gotTable == nil {
		t.Fatal("table lost in round trip")
	}
	if len(gotTable.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(gotTable.Rows))
	}
	if len(gotTable.Rows[0].Cells) != 3 {
		t.Fatalf("row 0 has %d cells, want 3", len(gotTable.Rows[0].Cells))
	}
	if gotTable.Rows[0].Cells[2].VMerge != ast.VMergeRestart {
		t.Fatal("restart cell lost its vertical merge")
	}
	// Row 1: the wide cell plus the continuation marker; the covered
	// slot is not re-emitted.
	if len(gotTable.Rows[1].Cells) != 2 {
		t.Fatalf("row 1 has %d cells, want 2", len(gotTable.Rows[1].Cells))
	}
	if gotTable.Rows[1].Cells[0].GridSpan != 2 {
		t.Fatalf("wide cell span %d, want 2", gotTable.Rows[1].Cells[0].GridSpan)
	}
	if gotTable.Rows[1].Cells[1].VMerge != ast.VMergeContinue {
		t.Fatal("continuation cell lost its vertical merge")
	}
}

func TestRoundTripFootnote(t *testing.T) {
	noteText := ast.NewText("the note body")
	notePara := ast.NewParagraph(&noteText)

	ref := ast.NewFootnoteRef(2)
	bodyText := ast.NewText("body")
	para := ast.NewParagraph(&bodyText, &ref)

	src := ast.NewDocument()
	src.Blocks = append(src.Blocks, &para)
	src.Footnotes[2] = ast.Note{ID: 2, Blocks: []ast.Block{&notePara}}

	got := roundTrip(t, src)
	if len(got.Footnotes) != 1 {
		t.Fatalf("got %d footnotes, want 1", len(got.Footnotes))
	}
	foundRef := false
	for _, inline := range firstParagraph(t, got).Runs {
		if _, ok := inline.(*ast.FootnoteRef); ok {
			foundRef = true
		}
	}
	if !foundRef {
		t.Fatal("footnote reference lost in round trip")
	}
}
