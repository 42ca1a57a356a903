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

package content

import (
	"fmt"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/wordengine/docflow/pdf/object"
)

// uniformFont builds a simple WinAnsi font resource whose printable
// glyphs all advance by width thousandths of an em.
func uniformFont(width int) object.Dict {
	widths := make(object.Array, 95)
	for i := range widths {
		widths[i] = int64(width)
	}
	return object.Dict{
		"Type":      object.Name("Font"),
		"Subtype":   object.Name("Type1"),
		"BaseFont":  object.Name("Helvetica"),
		"Encoding":  object.Name("WinAnsiEncoding"),
		"FirstChar": int64(32),
		"LastChar":  int64(126),
		"Widths":    widths,
	}
}

func resourcesWith(font object.Dict) object.Dict {
	return object.Dict{"Font": object.Dict{"F1": font}}
}

func runContent(t *testing.T, stream string, resources object.Dict) []Item {
	t.Helper()
	items, err := NewInterpreter(nil).Run([]byte(stream), resources)
	if err != nil {
		t.Fatal(err)
	}
	return items
}

func textItems(items []Item) []TextItem {
	var out []TextItem
	for _, it := range items {
		if t, ok := it.(TextItem); ok {
			out = append(out, t)
		}
	}
	return out
}

func TestTfTdTJExtraction(t *testing.T) {
	stream := "BT /F1 12 Tf 100 700 Td [(Hello) -250 (World)] TJ ET"
	items := textItems(runContent(t, stream, resourcesWith(uniformFont(500))))
	if len(items) != 2 {
		t.Fatalf("got %d text items, want 2", len(items))
	}

	hello, world := items[0], items[1]
	if hello.Text != "Hello" || world.Text != "World" {
		t.Fatalf("texts %q, %q", hello.Text, world.Text)
	}
	if hello.X != 100 || hello.Y != 700 {
		t.Fatalf("Hello at (%g, %g), want (100, 700)", hello.X, hello.Y)
	}
	if world.Y != 700 {
		t.Fatalf("World at y=%g, want 700", world.Y)
	}

	// width("Hello") = 5 glyphs x 0.5 em x 12pt = 30; the -250
	// adjustment moves right by 250/1000 x 12 = 3.
	wantX := 100.0 + 30 + 3
	if math.Abs(world.X-wantX) > 1e-9 {
		t.Fatalf("World at x=%g, want %g", world.X, wantX)
	}
	if hello.FontSizePt != 12 {
		t.Fatalf("font size %g, want 12", hello.FontSizePt)
	}
	if math.Abs(hello.EndX-130) > 1e-9 {
		t.Fatalf("Hello EndX=%g, want 130", hello.EndX)
	}
}

func TestKerningArithmeticProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("TJ adjustment moves the next string by -K/1000*size", prop.ForAll(
		func(widthA int, kerning int, size int) bool {
			stream := fmt.Sprintf("BT /F1 %d Tf 0 0 Td [(aa) %d (b)] TJ ET", size, kerning)
			items := textItems(mustRun(stream, resourcesWith(uniformFont(widthA))))
			if len(items) != 2 {
				return false
			}
			wantX := items[0].X +
				2*float64(widthA)/1000*float64(size) -
				float64(kerning)*0.001*float64(size)
			return math.Abs(items[1].X-wantX) < 1e-6
		},
		gen.IntRange(100, 900),
		gen.IntRange(-500, 500),
		gen.IntRange(6, 24),
	))

	properties.TestingRun(t)
}

func mustRun(stream string, resources object.Dict) []Item {
	items, err := NewInterpreter(nil).Run([]byte(stream), resources)
	if err != nil {
		return nil
	}
	return items
}

func TestGraphicsStateStackRestoresCTM(t *testing.T) {
	stream := "q 1 0 0 1 50 20 cm BT /F1 10 Tf 0 0 Td (in) Tj ET Q BT /F1 10 Tf 5 5 Td (out) Tj ET"
	items := textItems(runContent(t, stream, resourcesWith(uniformFont(500))))
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].X != 50 || items[0].Y != 20 {
		t.Fatalf("translated text at (%g, %g), want (50, 20)", items[0].X, items[0].Y)
	}
	if items[1].X != 5 || items[1].Y != 5 {
		t.Fatalf("post-Q text at (%g, %g), want (5, 5)", items[1].X, items[1].Y)
	}
}

func TestTDLeadingAndTStar(t *testing.T) {
	stream := "BT /F1 10 Tf 100 700 TD (one) Tj T* (two) Tj ET"
	items := textItems(runContent(t, stream, resourcesWith(uniformFont(500))))
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	// TD 100 700 sets leading to -700; T* then moves down by -leading,
	// i.e. +700... the sign convention makes leading -ty, so T* adds ty
	// back. 700 up from 700 is 1400? No: leading = -ty = -700, T*
	// translates by (0, -leading) = (0, 700).
	if items[0].Y != 700 {
		t.Fatalf("first line at y=%g, want 700", items[0].Y)
	}
	if items[1].Y != 1400 {
		t.Fatalf("T* line at y=%g, want 1400", items[1].Y)
	}
}

func TestWordAndCharSpacingAdvance(t *testing.T) {
	stream := "BT /F1 10 Tf 2 Tc 5 Tw 0 0 Td (a b) Tj (x) Tj ET"
	items := textItems(runContent(t, stream, resourcesWith(uniformFont(500))))
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	// Three glyphs at 5pt each + 3 x 2pt char spacing + one word space
	// bonus of 5pt = 26.
	if math.Abs(items[1].X-26) > 1e-9 {
		t.Fatalf("second item at x=%g, want 26", items[1].X)
	}
}

func TestHorizontalScale(t *testing.T) {
	stream := "BT /F1 10 Tf 50 Tz 0 0 Td (ab) Tj (x) Tj ET"
	items := textItems(runContent(t, stream, resourcesWith(uniformFont(500))))
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	// Two 5pt glyphs scaled to 50% advance 5pt total.
	if math.Abs(items[1].X-5) > 1e-9 {
		t.Fatalf("second item at x=%g, want 5", items[1].X)
	}
}

func TestFillColorReachesItems(t *testing.T) {
	stream := "BT /F1 10 Tf 1 0 0 rg 0 0 Td (red) Tj ET"
	items := textItems(runContent(t, stream, resourcesWith(uniformFont(500))))
	if len(items) != 1 || items[0].ColorHex != "FF0000" {
		t.Fatalf("items %+v, want one FF0000 item", items)
	}
}

func TestType0IdentityHWithToUnicode(t *testing.T) {
	cmap := `
/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
2 begincodespacerange
<0000> <FFFF>
endcodespacerange
2 beginbfchar
<0048> <0048>
<0065> <0065>
endbfchar
endcmap
`
	font := object.Dict{
		"Type":     object.Name("Font"),
		"Subtype":  object.Name("Type0"),
		"BaseFont": object.Name("NotoSans"),
		"Encoding": object.Name("Identity-H"),
		"DescendantFonts": object.Array{object.Dict{
			"Type": object.Name("Font"),
			"DW":   int64(600),
			"W":    object.Array{int64(0x48), object.Array{int64(700)}},
		}},
		"ToUnicode": &object.Stream{Dict: object.Dict{}, Raw: []byte(cmap)},
	}
	stream := "BT /F1 12 Tf 0 0 Td <00480065> Tj ET"
	items := textItems(runContent(t, stream, resourcesWith(font)))
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Text != "He" {
		t.Fatalf("decoded %q, want \"He\"", items[0].Text)
	}
	// H uses the /W width (700), e the default (600).
	wantEnd := 0.7*12 + 0.6*12
	if math.Abs(items[0].EndX-wantEnd) > 1e-9 {
		t.Fatalf("EndX=%g, want %g", items[0].EndX, wantEnd)
	}
}

func TestPathPaintingRetainsAxisAlignedLines(t *testing.T) {
	stream := "1 w 100 100 m 300 100 l S 50 60 200 0.8 re f 10 10 m 50 55 l S"
	items, err := NewInterpreter(nil).Run([]byte(stream), object.Dict{})
	if err != nil {
		t.Fatal(err)
	}
	var lines []LineItem
	for _, it := range items {
		if l, ok := it.(LineItem); ok {
			lines = append(lines, l)
		}
	}
	// The m/l stroke gives 1 line; the thin rect gives its 2 horizontal
	// edges and 0 vertical (0.8pt tall edges are vertical stubs, still
	// axis aligned so they are retained too: 2 more). The diagonal is
	// dropped.
	if len(lines) < 3 {
		t.Fatalf("got %d lines, want at least 3", len(lines))
	}
	for _, l := range lines {
		if !l.Horizontal() && !l.Vertical() {
			t.Fatalf("non-axis-aligned line retained: %+v", l)
		}
	}
}

func TestInlineImageIsSkipped(t *testing.T) {
	stream := "BT /F1 10 Tf 0 0 Td (before) Tj ET " +
		"BI /W 2 /H 2 /CS /G /BPC 8 ID \x00\x01\x02\x03 EI " +
		"BT /F1 10 Tf 0 20 Td (after) Tj ET"
	items := textItems(runContent(t, stream, resourcesWith(uniformFont(500))))
	if len(items) != 2 || items[0].Text != "before" || items[1].Text != "after" {
		t.Fatalf("inline image broke the scan: %+v", items)
	}
}

func TestQuoteOperatorsAdvanceLine(t *testing.T) {
	stream := "BT /F1 10 Tf 14 TL 0 700 Td (a) Tj (b) ' 3 1 (c) \" ET"
	items := textItems(runContent(t, stream, resourcesWith(uniformFont(500))))
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	if items[1].Y != 686 || items[2].Y != 672 {
		t.Fatalf("line ys %g, %g; want 686, 672", items[1].Y, items[2].Y)
	}
	// The " operator sets word spacing 3, char spacing 1, then shows c.
	if items[2].Text != "c" {
		t.Fatalf("\" showed %q", items[2].Text)
	}
}
