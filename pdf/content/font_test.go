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
	"testing"

	"github.com/wordengine/docflow/pdf/object"
)

func TestDifferencesOverrideBaseEncoding(t *testing.T) {
	font := LoadFont(nil, object.Dict{
		"Subtype":  object.Name("Type1"),
		"BaseFont": object.Name("Custom"),
		"Encoding": object.Dict{
			"BaseEncoding": object.Name("WinAnsiEncoding"),
			"Differences": object.Array{
				int64(65), object.Name("eacute"), object.Name("bullet"),
			},
		},
	})
	glyphs := font.Decode("A B C")
	if glyphs[0].Text != "é" {
		t.Fatalf("code 65 decoded %q, want é", glyphs[0].Text)
	}
	if glyphs[2].Text != "•" {
		t.Fatalf("code 66 decoded %q, want •", glyphs[2].Text)
	}
	// Code 67 falls through Differences to WinAnsi.
	if glyphs[4].Text != "C" {
		t.Fatalf("code 67 decoded %q, want C", glyphs[4].Text)
	}
	if !glyphs[1].IsSpace {
		t.Fatal("code 32 should flag IsSpace for word spacing")
	}
}

func TestWinAnsiTypographicRange(t *testing.T) {
	font := LoadFont(nil, object.Dict{
		"Subtype":  object.Name("Type1"),
		"BaseFont": object.Name("Helvetica"),
		"Encoding": object.Name("WinAnsiEncoding"),
	})
	glyphs := font.Decode("\x93ok\x94 \x96 dash \x85")
	text := ""
	for _, g := range glyphs {
		text += g.Text
	}
	if text != "“ok” – dash …" {
		t.Fatalf("decoded %q", text)
	}
}

func TestSimpleFontWidths(t *testing.T) {
	font := LoadFont(nil, object.Dict{
		"Subtype":   object.Name("Type1"),
		"BaseFont":  object.Name("Helvetica"),
		"FirstChar": int64(65),
		"Widths":    object.Array{int64(722), int64(667)},
		"FontDescriptor": object.Dict{
			"MissingWidth": int64(250),
		},
	})
	glyphs := font.Decode("ABZ")
	if glyphs[0].Width != 722 || glyphs[1].Width != 667 {
		t.Fatalf("widths %g, %g; want 722, 667", glyphs[0].Width, glyphs[1].Width)
	}
	if glyphs[2].Width != 250 {
		t.Fatalf("out-of-range width %g, want MissingWidth 250", glyphs[2].Width)
	}
}

func TestBfRangeContiguousMapping(t *testing.T) {
	cmap := `
1 beginbfrange
<0041> <0043> <0061>
endbfrange
`
	m := parseToUnicodeCMap([]byte(cmap))
	want := map[uint32]string{0x41: "a", 0x42: "b", 0x43: "c"}
	for code, text := range want {
		if m[code] != text {
			t.Fatalf("code %#x mapped to %q, want %q", code, m[code], text)
		}
	}
}

func TestBfRangeEnumeratedMapping(t *testing.T) {
	cmap := `
1 beginbfrange
<0010> <0012> [<0058> <0059> <005A>]
endbfrange
`
	m := parseToUnicodeCMap([]byte(cmap))
	if m[0x10] != "X" || m[0x11] != "Y" || m[0x12] != "Z" {
		t.Fatalf("enumerated bfrange: %v", m)
	}
}

func TestBfCharSurrogatePair(t *testing.T) {
	// U+1D11E (musical G clef) as a UTF-16BE surrogate pair.
	cmap := `
1 beginbfchar
<0042> <D834DD1E>
endbfchar
`
	m := parseToUnicodeCMap([]byte(cmap))
	if m[0x42] != "\U0001D11E" {
		t.Fatalf("surrogate pair decoded %q", m[0x42])
	}
}

func TestCIDWidthGrammar(t *testing.T) {
	font := LoadFont(nil, object.Dict{
		"Subtype":  object.Name("Type0"),
		"BaseFont": object.Name("NotoSansCJK"),
		"DescendantFonts": object.Array{object.Dict{
			"DW": int64(1000),
			"W": object.Array{
				// CID 10: widths 600, 650 for 10 and 11
				int64(10), object.Array{int64(600), int64(650)},
				// CIDs 100..102: all 250
				int64(100), int64(102), int64(250),
			},
		}},
	})
	check := func(code uint32, want float64) {
		g := font.Decode(string([]byte{byte(code >> 8), byte(code)}))
		if len(g) != 1 || g[0].Width != want {
			t.Fatalf("CID %d width %v, want %g", code, g, want)
		}
	}
	check(10, 600)
	check(11, 650)
	check(100, 250)
	check(102, 250)
	check(500, 1000) // default
}

func TestStandardEncodingQuoteRight(t *testing.T) {
	// StandardEncoding maps 0x27 to quoteright (’), where WinAnsi keeps
	// the ASCII apostrophe.
	font := LoadFont(nil, object.Dict{
		"Subtype":  object.Name("Type1"),
		"BaseFont": object.Name("Times-Roman"),
		"Encoding": object.Name("StandardEncoding"),
	})
	glyphs := font.Decode("\x27")
	if glyphs[0].Text != "’" {
		t.Fatalf("StandardEncoding 0x27 decoded %q, want ’", glyphs[0].Text)
	}
}
