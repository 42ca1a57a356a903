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
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"
	"strconv"
	"strings"

	"github.com/wordengine/docflow/pdf/lexer"
	"github.com/wordengine/docflow/pdf/object"
)

const maxFormDepth = 8

// graphicsState is the state q pushes and Q pops (PDF 32000-1:2008
// §8.4.1), reduced to the fields text and feature extraction consume.
type graphicsState struct {
	ctm Matrix

	fillHex   string
	strokeHex string
	lineWidth float64

	font     *Font
	fontSize float64

	charSpacing float64
	wordSpacing float64
	horizScale  float64 // percent
	leading     float64
	rise        float64
}

func newGraphicsState() graphicsState {
	return graphicsState{
		ctm:        Identity,
		fillHex:    "000000",
		strokeHex:  "000000",
		lineWidth:  1,
		horizScale: 100,
	}
}

// Interpreter replays page content streams against a file's resources.
// One page at a time; the file pointer resolves indirect font and
// XObject pieces and may be nil when everything is direct.
type Interpreter struct {
	file *object.File
}

// NewInterpreter returns an Interpreter resolving indirect objects
// through f.
func NewInterpreter(f *object.File) *Interpreter {
	return &Interpreter{file: f}
}

// Run interprets one decoded content stream with the page's resource
// dictionary and returns the extracted items in paint order.
func (in *Interpreter) Run(stream []byte, resources object.Dict) ([]Item, error) {
	return in.run(stream, resources, newGraphicsState(), 0)
}

type runState struct {
	in        *Interpreter
	resources object.Dict
	fonts     map[string]*Font

	gs    graphicsState
	stack []graphicsState

	tm, tlm Matrix

	items []Item

	path             [][4]float64
	curX, curY       float64
	startX, startY   float64
	hasCurrentPoint  bool
	depth            int
}

func (in *Interpreter) run(stream []byte, resources object.Dict, initial graphicsState, depth int) ([]Item, error) {
	if depth > maxFormDepth {
		return nil, fmt.Errorf("content: form XObject nesting deeper than %d", maxFormDepth)
	}
	rs := &runState{
		in:        in,
		resources: resources,
		fonts:     map[string]*Font{},
		gs:        initial,
		tm:        Identity,
		tlm:       Identity,
		depth:     depth,
	}

	lx := lexer.New(stream)
	var ops []object.Object
	for {
		tok := lx.Next()
		switch tok.Type {
		case lexer.TokenEOF:
			return rs.items, nil
		case lexer.TokenError:
			// Content streams in the wild carry junk bytes; skip and
			// keep interpreting the rest of the page.
			continue
		case lexer.TokenInteger, lexer.TokenReal:
			v, _ := strconv.ParseFloat(tok.Value, 64)
			ops = append(ops, v)
		case lexer.TokenString, lexer.TokenHexString:
			ops = append(ops, tok.Value)
		case lexer.TokenName:
			ops = append(ops, object.Name(tok.Value))
		case lexer.TokenBoolean:
			ops = append(ops, tok.Value == "true")
		case lexer.TokenNull:
			ops = append(ops, nil)
		case lexer.TokenArrayStart:
			ops = append(ops, collectArray(lx))
		case lexer.TokenDictStart:
			ops = append(ops, collectDict(lx))
		case lexer.TokenKeyword:
			if tok.Value == "BI" {
				skipInlineImage(lx)
				ops = ops[:0]
				continue
			}
			rs.exec(tok.Value, ops)
			ops = ops[:0]
		default:
			ops = ops[:0]
		}
	}
}

func collectArray(lx *lexer.Lexer) object.Array {
	var arr object.Array
	for {
		tok := lx.Next()
		switch tok.Type {
		case lexer.TokenEOF, lexer.TokenArrayEnd:
			return arr
		case lexer.TokenInteger, lexer.TokenReal:
			v, _ := strconv.ParseFloat(tok.Value, 64)
			arr = append(arr, v)
		case lexer.TokenString, lexer.TokenHexString:
			arr = append(arr, tok.Value)
		case lexer.TokenName:
			arr = append(arr, object.Name(tok.Value))
		case lexer.TokenBoolean:
			arr = append(arr, tok.Value == "true")
		case lexer.TokenArrayStart:
			arr = append(arr, collectArray(lx))
		case lexer.TokenDictStart:
			arr = append(arr, collectDict(lx))
		}
	}
}

func collectDict(lx *lexer.Lexer) object.Dict {
	d := object.Dict{}
	var key object.Name
	haveKey := false
	for {
		tok := lx.Next()
		switch tok.Type {
		case lexer.TokenEOF, lexer.TokenDictEnd:
			return d
		case lexer.TokenName:
			if !haveKey {
				key = object.Name(tok.Value)
				haveKey = true
			} else {
				d[key] = object.Name(tok.Value)
				haveKey = false
			}
		case lexer.TokenInteger, lexer.TokenReal:
			v, _ := strconv.ParseFloat(tok.Value, 64)
			if haveKey {
				d[key] = v
				haveKey = false
			}
		case lexer.TokenString, lexer.TokenHexString:
			if haveKey {
				d[key] = tok.Value
				haveKey = false
			}
		case lexer.TokenBoolean:
			if haveKey {
				d[key] = tok.Value == "true"
				haveKey = false
			}
		case lexer.TokenArrayStart:
			v := collectArray(lx)
			if haveKey {
				d[key] = v
				haveKey = false
			}
		case lexer.TokenDictStart:
			v := collectDict(lx)
			if haveKey {
				d[key] = v
				haveKey = false
			}
		}
	}
}

// lastFloats returns the trailing n operands as floats, or nil when
// fewer are present (malformed stream: the operator is skipped).
func lastFloats(ops []object.Object, n int) []float64 {
	if len(ops) < n {
		return nil
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, ok := ops[len(ops)-n+i].(float64)
		if !ok {
			return nil
		}
		out[i] = v
	}
	return out
}

func lastString(ops []object.Object) (string, bool) {
	if len(ops) == 0 {
		return "", false
	}
	s, ok := ops[len(ops)-1].(string)
	return s, ok
}

func lastName(ops []object.Object) (string, bool) {
	if len(ops) == 0 {
		return "", false
	}
	n, ok := ops[len(ops)-1].(object.Name)
	return string(n), ok
}

func (rs *runState) exec(op string, ops []object.Object) {
	switch op {
	// -- graphics state --
	case "q":
		rs.stack = append(rs.stack, rs.gs)
	case "Q":
		if n := len(rs.stack); n > 0 {
			rs.gs = rs.stack[n-1]
			rs.stack = rs.stack[:n-1]
		}
	case "cm":
		if a := lastFloats(ops, 6); a != nil {
			rs.gs.ctm = Matrix{a[0], a[1], a[2], a[3], a[4], a[5]}.Mul(rs.gs.ctm)
		}
	case "w":
		if a := lastFloats(ops, 1); a != nil {
			rs.gs.lineWidth = a[0]
		}

	// -- text object and positioning --
	case "BT":
		rs.tm, rs.tlm = Identity, Identity
	case "ET":
	case "Tm":
		if a := lastFloats(ops, 6); a != nil {
			m := Matrix{a[0], a[1], a[2], a[3], a[4], a[5]}
			rs.tm, rs.tlm = m, m
		}
	case "Td":
		if a := lastFloats(ops, 2); a != nil {
			rs.nextLine(a[0], a[1])
		}
	case "TD":
		if a := lastFloats(ops, 2); a != nil {
			rs.gs.leading = -a[1]
			rs.nextLine(a[0], a[1])
		}
	case "T*":
		rs.nextLine(0, -rs.gs.leading)

	// -- text state --
	case "Tf":
		if a := lastFloats(ops, 1); a != nil && len(ops) >= 2 {
			if name, ok := ops[len(ops)-2].(object.Name); ok {
				rs.gs.font = rs.fontFor(string(name))
				rs.gs.fontSize = a[0]
			}
		}
	case "Tc":
		if a := lastFloats(ops, 1); a != nil {
			rs.gs.charSpacing = a[0]
		}
	case "Tw":
		if a := lastFloats(ops, 1); a != nil {
			rs.gs.wordSpacing = a[0]
		}
	case "Tz":
		if a := lastFloats(ops, 1); a != nil {
			rs.gs.horizScale = a[0]
		}
	case "TL":
		if a := lastFloats(ops, 1); a != nil {
			rs.gs.leading = a[0]
		}
	case "Ts":
		if a := lastFloats(ops, 1); a != nil {
			rs.gs.rise = a[0]
		}

	// -- text showing --
	case "Tj":
		if s, ok := lastString(ops); ok {
			rs.showText(s)
		}
	case "TJ":
		if len(ops) > 0 {
			if arr, ok := ops[len(ops)-1].(object.Array); ok {
				rs.showArray(arr)
			}
		}
	case "'":
		rs.nextLine(0, -rs.gs.leading)
		if s, ok := lastString(ops); ok {
			rs.showText(s)
		}
	case "\"":
		if len(ops) >= 3 {
			if a := lastFloats(ops[:len(ops)-1], 2); a != nil {
				rs.gs.wordSpacing = a[0]
				rs.gs.charSpacing = a[1]
			}
			rs.nextLine(0, -rs.gs.leading)
			if s, ok := lastString(ops); ok {
				rs.showText(s)
			}
		}

	// -- color --
	case "rg":
		if a := lastFloats(ops, 3); a != nil {
			rs.gs.fillHex = rgbHex(a[0], a[1], a[2])
		}
	case "RG":
		if a := lastFloats(ops, 3); a != nil {
			rs.gs.strokeHex = rgbHex(a[0], a[1], a[2])
		}
	case "g":
		if a := lastFloats(ops, 1); a != nil {
			rs.gs.fillHex = rgbHex(a[0], a[0], a[0])
		}
	case "G":
		if a := lastFloats(ops, 1); a != nil {
			rs.gs.strokeHex = rgbHex(a[0], a[0], a[0])
		}
	case "k":
		if a := lastFloats(ops, 4); a != nil {
			rs.gs.fillHex = cmykHex(a[0], a[1], a[2], a[3])
		}
	case "K":
		if a := lastFloats(ops, 4); a != nil {
			rs.gs.strokeHex = cmykHex(a[0], a[1], a[2], a[3])
		}
	case "sc", "scn":
		switch a := lastFloats(ops, 3); {
		case a != nil:
			rs.gs.fillHex = rgbHex(a[0], a[1], a[2])
		default:
			if g := lastFloats(ops, 1); g != nil {
				rs.gs.fillHex = rgbHex(g[0], g[0], g[0])
			}
		}
	case "SC", "SCN":
		switch a := lastFloats(ops, 3); {
		case a != nil:
			rs.gs.strokeHex = rgbHex(a[0], a[1], a[2])
		default:
			if g := lastFloats(ops, 1); g != nil {
				rs.gs.strokeHex = rgbHex(g[0], g[0], g[0])
			}
		}

	// -- path construction --
	case "re":
		if a := lastFloats(ops, 4); a != nil {
			x, y, w, h := a[0], a[1], a[2], a[3]
			rs.path = append(rs.path,
				[4]float64{x, y, x + w, y},
				[4]float64{x + w, y, x + w, y + h},
				[4]float64{x + w, y + h, x, y + h},
				[4]float64{x, y + h, x, y},
			)
			rs.moveTo(x, y)
		}
	case "m":
		if a := lastFloats(ops, 2); a != nil {
			rs.moveTo(a[0], a[1])
		}
	case "l":
		if a := lastFloats(ops, 2); a != nil {
			rs.lineTo(a[0], a[1])
		}
	case "c":
		if a := lastFloats(ops, 6); a != nil {
			rs.lineTo(a[4], a[5])
		}
	case "v", "y":
		if a := lastFloats(ops, 4); a != nil {
			rs.lineTo(a[2], a[3])
		}
	case "h":
		if rs.hasCurrentPoint {
			rs.lineTo(rs.startX, rs.startY)
		}

	// -- path painting --
	case "S", "s", "f", "F", "f*", "B", "B*", "b", "b*":
		rs.flushPath(true)
	case "n":
		rs.flushPath(false)
	case "W", "W*":
		// Clipping is irrelevant to extraction; the path still paints
		// or clears via the following painting operator.

	// -- XObjects --
	case "Do":
		if name, ok := lastName(ops); ok {
			rs.doXObject(name)
		}
	}
}

// nextLine is Td: translate the line matrix and restart the text
// matrix from it.
func (rs *runState) nextLine(tx, ty float64) {
	rs.tlm = Translate(tx, ty).Mul(rs.tlm)
	rs.tm = rs.tlm
}

func (rs *runState) textRenderMatrix() Matrix {
	param := Matrix{
		rs.gs.fontSize * rs.gs.horizScale / 100, 0,
		0, rs.gs.fontSize,
		0, rs.gs.rise,
	}
	return param.Mul(rs.tm).Mul(rs.gs.ctm)
}

func (rs *runState) showText(s string) {
	fn := rs.gs.font
	if fn == nil || s == "" {
		return
	}
	start := rs.textRenderMatrix()
	var sb strings.Builder
	for _, g := range fn.Decode(s) {
		sb.WriteString(g.Text)
		adv := g.Width/1000*rs.gs.fontSize + rs.gs.charSpacing
		if g.IsSpace {
			adv += rs.gs.wordSpacing
		}
		adv *= rs.gs.horizScale / 100
		rs.tm = Translate(adv, 0).Mul(rs.tm)
	}
	if sb.Len() == 0 {
		return
	}
	end := rs.textRenderMatrix()
	rs.items = append(rs.items, TextItem{
		Text:       sb.String(),
		X:          start[4],
		Y:          start[5],
		EndX:       end[4],
		Font:       fn.Name,
		FontSizePt: math.Hypot(start[2], start[3]),
		ColorHex:   rs.gs.fillHex,
	})
}

// showArray is TJ: strings show, numbers translate the text matrix by
// -n/1000 of the font size (positive adjustments move left).
func (rs *runState) showArray(arr object.Array) {
	for _, el := range arr {
		switch v := el.(type) {
		case string:
			rs.showText(v)
		case float64:
			tx := -v / 1000 * rs.gs.fontSize * rs.gs.horizScale / 100
			rs.tm = Translate(tx, 0).Mul(rs.tm)
		}
	}
}

func (rs *runState) fontFor(name string) *Font {
	if f, cached := rs.fonts[name]; cached {
		return f
	}
	var fn *Font
	if fonts, ok := deref(rs.in.file, rs.resources["Font"]).(object.Dict); ok {
		if fd, ok := deref(rs.in.file, fonts[object.Name(name)]).(object.Dict); ok {
			fn = LoadFont(rs.in.file, fd)
		}
	}
	rs.fonts[name] = fn
	return fn
}

func (rs *runState) moveTo(x, y float64) {
	rs.curX, rs.curY = x, y
	rs.startX, rs.startY = x, y
	rs.hasCurrentPoint = true
}

func (rs *runState) lineTo(x, y float64) {
	if rs.hasCurrentPoint {
		rs.path = append(rs.path, [4]float64{rs.curX, rs.curY, x, y})
	}
	rs.curX, rs.curY = x, y
	rs.hasCurrentPoint = true
}

// flushPath converts the accumulated path into device-space LineItems
// when painted, keeping only near-axis-aligned segments: those are the
// candidate table borders, underlines and dividers.
func (rs *runState) flushPath(painted bool) {
	if painted {
		for _, seg := range rs.path {
			x1, y1 := rs.gs.ctm.Apply(seg[0], seg[1])
			x2, y2 := rs.gs.ctm.Apply(seg[2], seg[3])
			li := LineItem{X1: x1, Y1: y1, X2: x2, Y2: y2, WidthPt: rs.gs.lineWidth}
			if li.Horizontal() || li.Vertical() {
				rs.items = append(rs.items, li)
			}
		}
	}
	rs.path = nil
	rs.hasCurrentPoint = false
}

func (rs *runState) doXObject(name string) {
	xobjects, ok := deref(rs.in.file, rs.resources["XObject"]).(object.Dict)
	if !ok {
		return
	}
	stream, ok := deref(rs.in.file, xobjects[object.Name(name)]).(*object.Stream)
	if !ok {
		return
	}
	switch stream.Dict.GetName("Subtype") {
	case "Image":
		rs.placeImage(stream)
	case "Form":
		rs.runForm(stream)
	}
}

// placeImage emits an ImageItem whose rendered geometry comes from the
// CTM: a and d are the width and height in user space, e and f the
// lower-left origin.
func (rs *runState) placeImage(stream *object.Stream) {
	data, ext := rs.decodeImage(stream)
	if data == nil {
		return
	}
	rs.items = append(rs.items, ImageItem{
		Data: data,
		Ext:  ext,
		X:    rs.gs.ctm[4],
		Y:    rs.gs.ctm[5],
		W:    rs.gs.ctm[0],
		H:    rs.gs.ctm[3],
	})
}

// decodeImage extracts the image payload once: JPEG (DCTDecode) and
// JPEG 2000 (JPXDecode) pass through as-is; Flate-compressed raw RGB
// or grayscale samples are repackaged as PNG.
func (rs *runState) decodeImage(stream *object.Stream) ([]byte, string) {
	decoded, err := object.DecodeStream(stream)
	if err != nil {
		return nil, ""
	}
	names, _ := stream.Filters()
	if len(names) > 0 {
		switch names[len(names)-1] {
		case "DCTDecode", "DCT":
			return decoded, "jpeg"
		case "JPXDecode":
			return decoded, "jp2"
		}
	}

	w := stream.Dict.GetInt("Width")
	h := stream.Dict.GetInt("Height")
	bpc := stream.Dict.GetInt("BitsPerComponent")
	if w <= 0 || h <= 0 || bpc != 8 {
		return nil, ""
	}
	var cs object.Name
	if n, ok := deref(rs.in.file, stream.Dict["ColorSpace"]).(object.Name); ok {
		cs = n
	}
	switch cs {
	case "DeviceRGB":
		if len(decoded) < w*h*3 {
			return nil, ""
		}
		img := image.NewNRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				s := (y*w + x) * 3
				d := img.PixOffset(x, y)
				img.Pix[d], img.Pix[d+1], img.Pix[d+2], img.Pix[d+3] = decoded[s], decoded[s+1], decoded[s+2], 0xFF
			}
		}
		return encodePNG(img)
	case "DeviceGray":
		if len(decoded) < w*h {
			return nil, ""
		}
		img := image.NewGray(image.Rect(0, 0, w, h))
		copy(img.Pix, decoded[:w*h])
		return encodePNG(img)
	default:
		return nil, ""
	}
}

func encodePNG(img image.Image) ([]byte, string) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, ""
	}
	return buf.Bytes(), "png"
}

// runForm replays a form XObject's content with the form matrix
// prepended to the CTM and the form's own resources (falling back to
// the page's).
func (rs *runState) runForm(stream *object.Stream) {
	decoded, err := object.DecodeStream(stream)
	if err != nil {
		return
	}
	gs := rs.gs
	if m, ok := deref(rs.in.file, stream.Dict["Matrix"]).(object.Array); ok && len(m) == 6 {
		gs.ctm = Matrix{
			asFloat(m[0]), asFloat(m[1]), asFloat(m[2]),
			asFloat(m[3]), asFloat(m[4]), asFloat(m[5]),
		}.Mul(gs.ctm)
	}
	res := rs.resources
	if r, ok := deref(rs.in.file, stream.Dict["Resources"]).(object.Dict); ok {
		res = r
	}
	items, err := rs.in.run(decoded, res, gs, rs.depth+1)
	if err != nil {
		return
	}
	rs.items = append(rs.items, items...)
}

// skipInlineImage consumes a BI ... ID <binary> EI inline image the
// token scanner cannot lex: the dictionary tokens up to ID, then raw
// bytes until a whitespace-delimited EI.
func skipInlineImage(lx *lexer.Lexer) {
	for {
		tok := lx.Next()
		if tok.Type == lexer.TokenEOF {
			return
		}
		if tok.Type == lexer.TokenKeyword && tok.Value == "ID" {
			break
		}
	}
	src := lx.Source()
	i := lx.Pos() + 1 // the single whitespace byte after ID
	for i+1 < len(src) {
		if src[i] == 'E' && src[i+1] == 'I' &&
			(i == 0 || isPDFWhitespace(src[i-1])) &&
			(i+2 >= len(src) || isPDFWhitespace(src[i+2])) {
			lx.Seek(i + 2)
			return
		}
		i++
	}
	lx.Seek(len(src))
}

func isPDFWhitespace(b byte) bool {
	switch b {
	case 0x00, 0x09, 0x0A, 0x0C, 0x0D, 0x20:
		return true
	default:
		return false
	}
}

func rgbHex(r, g, b float64) string {
	return fmt.Sprintf("%02X%02X%02X", clamp255(r), clamp255(g), clamp255(b))
}

func cmykHex(c, m, y, k float64) string {
	return rgbHex((1-c)*(1-k), (1-m)*(1-k), (1-y)*(1-k))
}

func clamp255(v float64) int {
	n := int(math.Round(v * 255))
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}
