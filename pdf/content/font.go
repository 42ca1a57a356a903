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
	"github.com/wordengine/docflow/pdf/object"
)

// deref follows one level of indirect reference through the file,
// returning nil when resolution fails or no file is attached (content
// built directly from dictionaries in tests).
func deref(f *object.File, o object.Object) object.Object {
	ref, ok := o.(object.Ref)
	if !ok {
		return o
	}
	if f == nil {
		return nil
	}
	resolved, err := f.Resolve(ref)
	if err != nil {
		return nil
	}
	return resolved
}

func asFloat(o object.Object) float64 {
	switch v := o.(type) {
	case int64:
		return float64(v)
	case float64:
		return v
	default:
		return 0
	}
}

// Glyph is one decoded character code: its Unicode text, its width in
// glyph space (thousandths of an em) and whether it is the single-byte
// space code that word spacing applies to.
type Glyph struct {
	Code    uint32
	Text    string
	Width   float64
	IsSpace bool
}

// Font is the decoded shape of one page font resource: enough of the
// font dictionary to turn shown strings into Unicode text with correct
// advance widths. Composite (Type0/Identity-H) and simple fonts
// share the type; Type0 selects two-byte code consumption.
type Font struct {
	Name  string
	Type0 bool

	firstChar    int
	widths       []float64
	missingWidth float64

	cidWidths    map[uint32]float64
	defaultWidth float64

	baseEncode func(byte) rune
	diffs      map[byte]rune
	toUnicode  map[uint32]string
}

// LoadFont builds a Font from a /Font resource dictionary, resolving
// indirect pieces through f (which may be nil when every piece is
// direct).
func LoadFont(f *object.File, dict object.Dict) *Font {
	fn := &Font{
		Name:         string(dict.GetName("BaseFont")),
		defaultWidth: 1000,
		missingWidth: 500,
		baseEncode:   winAnsiEncoding,
	}

	if tu, ok := dict["ToUnicode"]; ok {
		if stream, ok := deref(f, tu).(*object.Stream); ok {
			if decoded, err := object.DecodeStream(stream); err == nil {
				fn.toUnicode = parseToUnicodeCMap(decoded)
			}
		}
	}

	if dict.GetName("Subtype") == "Type0" {
		fn.Type0 = true
		fn.loadComposite(f, dict)
		return fn
	}
	fn.loadSimple(f, dict)
	return fn
}

func (fn *Font) loadSimple(f *object.File, dict object.Dict) {
	fn.firstChar = dict.GetInt("FirstChar")
	if w, ok := deref(f, dict["Widths"]).(object.Array); ok {
		fn.widths = make([]float64, len(w))
		for i, el := range w {
			fn.widths[i] = asFloat(deref(f, el))
		}
	}
	if fd, ok := deref(f, dict["FontDescriptor"]).(object.Dict); ok {
		if mw := fd.GetInt("MissingWidth"); mw > 0 {
			fn.missingWidth = float64(mw)
		}
	}

	switch enc := deref(f, dict["Encoding"]).(type) {
	case object.Name:
		fn.baseEncode = baseEncodingFunc(string(enc))
	case object.Dict:
		fn.baseEncode = baseEncodingFunc(string(enc.GetName("BaseEncoding")))
		fn.diffs = parseDifferences(enc.GetArray("Differences"))
	}
}

// parseDifferences walks an /Encoding /Differences array: an integer
// sets the next code, each following name maps that code and
// increments it.
func parseDifferences(diffs object.Array) map[byte]rune {
	if len(diffs) == 0 {
		return nil
	}
	out := map[byte]rune{}
	code := 0
	for _, el := range diffs {
		switch v := el.(type) {
		case int64:
			code = int(v)
		case float64:
			code = int(v)
		case object.Name:
			if r, ok := glyphNameToRune(string(v)); ok && code >= 0 && code < 256 {
				out[byte(code)] = r
			}
			code++
		}
	}
	return out
}

func (fn *Font) loadComposite(f *object.File, dict object.Dict) {
	descArr, ok := deref(f, dict["DescendantFonts"]).(object.Array)
	if !ok || len(descArr) == 0 {
		return
	}
	desc, ok := deref(f, descArr[0]).(object.Dict)
	if !ok {
		return
	}
	if dw := asFloat(desc["DW"]); dw > 0 {
		fn.defaultWidth = dw
	}
	if w, ok := deref(f, desc["W"]).(object.Array); ok {
		fn.cidWidths = parseCIDWidths(f, w)
	}
}

// parseCIDWidths decodes the /W array grammar (PDF 32000-1:2008
// §9.7.4.3): either "c [w1 w2 ...]" listing consecutive widths from
// CID c, or "cFirst cLast w" giving one width to a CID range.
func parseCIDWidths(f *object.File, w object.Array) map[uint32]float64 {
	out := map[uint32]float64{}
	i := 0
	for i < len(w) {
		first := int(asFloat(deref(f, w[i])))
		i++
		if i >= len(w) {
			break
		}
		switch v := deref(f, w[i]).(type) {
		case object.Array:
			for j, el := range v {
				out[uint32(first+j)] = asFloat(deref(f, el))
			}
			i++
		default:
			last := int(asFloat(v))
			i++
			if i >= len(w) {
				break
			}
			width := asFloat(deref(f, w[i]))
			i++
			for c := first; c <= last && c-first < 1<<16; c++ {
				out[uint32(c)] = width
			}
		}
	}
	return out
}

// Decode maps a shown string's bytes to Glyphs. Composite fonts
// consume two bytes per code (Identity-H); simple fonts one.
func (fn *Font) Decode(s string) []Glyph {
	if fn.Type0 {
		return fn.decodeComposite(s)
	}
	return fn.decodeSimple(s)
}

func (fn *Font) decodeSimple(s string) []Glyph {
	glyphs := make([]Glyph, 0, len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		var r rune
		if fn.diffs != nil {
			r = fn.diffs[b]
		}
		if r == 0 {
			r = fn.baseEncode(b)
		}
		if r == 0 {
			r = rune(b)
		}
		text := string(r)
		if fn.toUnicode != nil {
			if t, ok := fn.toUnicode[uint32(b)]; ok {
				text = t
			}
		}
		glyphs = append(glyphs, Glyph{
			Code:    uint32(b),
			Text:    text,
			Width:   fn.simpleWidth(int(b)),
			IsSpace: b == 0x20,
		})
	}
	return glyphs
}

func (fn *Font) simpleWidth(code int) float64 {
	idx := code - fn.firstChar
	if idx >= 0 && idx < len(fn.widths) && fn.widths[idx] > 0 {
		return fn.widths[idx]
	}
	return fn.missingWidth
}

func (fn *Font) decodeComposite(s string) []Glyph {
	glyphs := make([]Glyph, 0, len(s)/2)
	for i := 0; i+1 < len(s); i += 2 {
		code := uint32(s[i])<<8 | uint32(s[i+1])
		text := ""
		if fn.toUnicode != nil {
			if t, ok := fn.toUnicode[code]; ok {
				text = t
			}
		}
		if text == "" {
			// No ToUnicode entry: surface the raw CID, which at least
			// preserves round-trip distinguishability.
			text = string(rune(code))
		}
		width := fn.defaultWidth
		if fn.cidWidths != nil {
			if w, ok := fn.cidWidths[code]; ok {
				width = w
			}
		}
		glyphs = append(glyphs, Glyph{Code: code, Text: text, Width: width})
	}
	return glyphs
}
