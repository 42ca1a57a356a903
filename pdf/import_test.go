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

package pdf

import (
	"fmt"
	"strings"
	"testing"

	"github.com/wordengine/docflow/ast"
)

// buildPDF assembles a classic-xref PDF with one page per content
// stream, all sharing a WinAnsi Helvetica font as /F1. Offsets are
// computed from the actual object lengths.
func buildPDF(t *testing.T, pageContents ...string) []byte {
	t.Helper()

	var kids []string
	nextNum := 4 // 1 catalog, 2 pages, 3 font; pages/content pairs follow
	for range pageContents {
		kids = append(kids, fmt.Sprintf("%d 0 R", nextNum))
		nextNum += 2
	}

	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
			strings.Join(kids, " "), len(pageContents)),
		"3 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>\nendobj\n",
	}
	num := 4
	for _, content := range pageContents {
		objects = append(objects, fmt.Sprintf(
			"%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>\nendobj\n",
			num, num+1))
		objects = append(objects, fmt.Sprintf(
			"%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n",
			num+1, len(content), content))
		num += 2
	}

	header := "%PDF-1.4\n"
	var body strings.Builder
	body.WriteString(header)
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = body.Len()
		body.WriteString(obj)
	}

	xrefOff := body.Len()
	body.WriteString(fmt.Sprintf("xref\n0 %d\n", len(objects)+1))
	body.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		body.WriteString(fmt.Sprintf("%010d 00000 n \n", off))
	}
	body.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF",
		len(objects)+1, xrefOff))
	return []byte(body.String())
}

func firstParagraph(t *testing.T, doc ast.Document) *ast.Paragraph {
	t.Helper()
	for _, b := range doc.Blocks {
		if p, ok := b.(*ast.Paragraph); ok {
			return p
		}
	}
	t.Fatal("document has no paragraph block")
	return nil
}

func TestImportExtractsText(t *testing.T) {
	src := buildPDF(t, "BT /F1 12 Tf 72 720 Td (Hello PDF) Tj ET")
	doc, err := Import(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", doc.Warnings)
	}
	p := firstParagraph(t, doc)
	if len(p.Runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(p.Runs))
	}
	run, ok := p.Runs[0].(*ast.Text)
	if !ok {
		t.Fatalf("run is %T, want *ast.Text", p.Runs[0])
	}
	if run.Content != "Hello PDF" {
		t.Fatalf("content %q, want \"Hello PDF\"", run.Content)
	}
	if run.FontFamily != "Helvetica" {
		t.Fatalf("font family %q", run.FontFamily)
	}
	if run.FontSizeHalf != 24 {
		t.Fatalf("font size %d half-points, want 24", run.FontSizeHalf)
	}
}

func TestImportSectionFromMediaBox(t *testing.T) {
	src := buildPDF(t, "BT /F1 12 Tf 72 720 Td (x) Tj ET")
	doc, err := Import(src)
	if err != nil {
		t.Fatal(err)
	}
	// 612 x 792 pt letter at 20 twips per point.
	if doc.Section.WidthTwips != 12240 || doc.Section.HeightTwips != 15840 {
		t.Fatalf("section %dx%d twips", doc.Section.WidthTwips, doc.Section.HeightTwips)
	}
	if doc.Section.Orientation != ast.OrientationPortrait {
		t.Fatal("612x792 should be portrait")
	}
}

func TestImportMultiPagePageBreaks(t *testing.T) {
	src := buildPDF(t,
		"BT /F1 12 Tf 72 720 Td (page one) Tj ET",
		"BT /F1 12 Tf 72 720 Td (page two) Tj ET",
	)
	doc, err := Import(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(doc.Blocks))
	}
	p1 := doc.Blocks[0].(*ast.Paragraph)
	p2 := doc.Blocks[1].(*ast.Paragraph)
	if p1.PageBreakBefore {
		t.Fatal("first page must not carry a page break")
	}
	if !p2.PageBreakBefore {
		t.Fatal("second page's first paragraph should carry page-break-before")
	}
	if p2.Runs[0].(*ast.Text).Content != "page two" {
		t.Fatalf("second page content %q", p2.Runs[0].(*ast.Text).Content)
	}
}

func TestImportRedTextColor(t *testing.T) {
	src := buildPDF(t, "BT /F1 12 Tf 1 0 0 rg 72 720 Td (warning) Tj ET")
	doc, err := Import(src)
	if err != nil {
		t.Fatal(err)
	}
	run := firstParagraph(t, doc).Runs[0].(*ast.Text)
	if run.Color != "FF0000" {
		t.Fatalf("color %q, want FF0000", run.Color)
	}
}

func TestImportBoldItalicFromFontName(t *testing.T) {
	src := buildBoldPDF(t)
	doc, err := Import(src)
	if err != nil {
		t.Fatal(err)
	}
	run := firstParagraph(t, doc).Runs[0].(*ast.Text)
	if !run.Bold || !run.Italic {
		t.Fatalf("bold=%v italic=%v, want both from Helvetica-BoldOblique", run.Bold, run.Italic)
	}
	if run.FontFamily != "Helvetica" {
		t.Fatalf("family %q, want style suffix stripped", run.FontFamily)
	}
}

func buildBoldPDF(t *testing.T) []byte {
	t.Helper()
	src := buildPDF(t, "BT /F1 12 Tf 72 720 Td (loud) Tj ET")
	// Same-length replacement keeps every xref offset valid; /Std is an
	// unknown base encoding, which falls back to WinAnsi behavior.
	out := strings.Replace(string(src),
		"/BaseFont /Helvetica /Encoding /WinAnsiEncoding",
		"/BaseFont /Helvetica-BoldOblique /Encoding /Std", 1)
	if len(out) != len(src) {
		t.Fatal("fixture replacement changed the byte length")
	}
	return []byte(out)
}

func TestImportRejectsNonPDF(t *testing.T) {
	if _, err := Import([]byte("this is not a portable document")); err == nil {
		t.Fatal("non-PDF input must fail with InvalidInput")
	}
}

func TestImportWordSplittingOnGaps(t *testing.T) {
	// Two Tds far apart on one baseline: grouping joins them into one
	// paragraph with a separating space.
	src := buildPDF(t,
		"BT /F1 12 Tf 72 720 Td (left) Tj ET BT /F1 12 Tf 300 720 Td (right) Tj ET")
	doc, err := Import(src)
	if err != nil {
		t.Fatal(err)
	}
	// A 200+pt gap at 12pt type reads as two columns, but a single
	// two-column row is not enough for a table: it stays text.
	p := firstParagraph(t, doc)
	var text string
	for _, r := range p.Runs {
		text += r.(*ast.Text).Content
	}
	if text != "left right" {
		t.Fatalf("joined text %q, want \"left right\"", text)
	}
}
