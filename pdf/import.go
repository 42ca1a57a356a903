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

// Package pdf is the PDF ingestion path: it opens a PDF byte sequence
// through pdf/object, authenticates encryption through pdf/encrypt,
// replays each page's content stream through pdf/content and
// reconstructs an ast.Document from the grouped page features.
package pdf

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"strings"

	"github.com/wordengine/docflow/ast"
	"github.com/wordengine/docflow/pdf/content"
	"github.com/wordengine/docflow/pdf/encrypt"
	"github.com/wordengine/docflow/pdf/object"
	"github.com/wordengine/docflow/pkg/errors"
)

const (
	emuPerPoint   = 12700
	twipsPerPoint = 20
	maxPageDepth  = 32
)

// Options configure an Import run.
type Options struct {
	// Password authenticates against the standard security handler
	// when the file is encrypted; user and owner passwords both work.
	Password string

	// Thresholds tune the page feature grouping heuristics.
	Thresholds content.Thresholds
}

// Option mutates Options.
type Option func(*Options)

// WithPassword supplies the decryption password.
func WithPassword(pw string) Option {
	return func(o *Options) { o.Password = pw }
}

// WithThresholds overrides the grouping thresholds.
func WithThresholds(t content.Thresholds) Option {
	return func(o *Options) { o.Thresholds = t }
}

// page is one leaf of the page tree with its inherited attributes
// already resolved.
type page struct {
	dict      object.Dict
	resources object.Dict
	mediaBox  object.Array
}

// Import parses a PDF byte sequence into an ast.Document. Pages that
// fail to interpret are skipped with a PartialParse warning; only an
// unrecognizable or undecryptable file is a fatal error.
func Import(src []byte, opts ...Option) (ast.Document, error) {
	o := Options{Thresholds: content.DefaultThresholds()}
	for _, opt := range opts {
		opt(&o)
	}

	f, err := object.Open(src)
	if err != nil {
		return ast.Document{}, errors.WrapWithCode(err, errors.ErrCodeInvalidInput, "pdf.Import")
	}

	if encObj, ok := f.Trailer["Encrypt"]; ok {
		encDict, ok := resolve(f, encObj).(object.Dict)
		if !ok {
			return ast.Document{}, errors.Errorf(errors.ErrCodeInvalidInput, "pdf.Import", "malformed /Encrypt dictionary")
		}
		handler, err := encrypt.New(encDict, firstFileID(f.Trailer), o.Password)
		if err != nil {
			return ast.Document{}, errors.WrapWithCode(err, errors.ErrCodeInvalidInput, "pdf.Import")
		}
		f.SetDecryptor(handler)
	}

	root, err := f.Root()
	if err != nil {
		return ast.Document{}, errors.WrapWithCode(err, errors.ErrCodeInvalidInput, "pdf.Import")
	}

	pagesNode, ok := resolve(f, root["Pages"]).(object.Dict)
	if !ok {
		return ast.Document{}, errors.Errorf(errors.ErrCodeInvalidInput, "pdf.Import", "catalog has no /Pages tree")
	}
	var pages []page
	collectPages(f, pagesNode, nil, nil, &pages, 0)

	doc := ast.NewDocument()
	doc.Metadata = readInfo(f)

	if len(pages) > 0 {
		if sec, ok := sectionFromMediaBox(pages[0].mediaBox); ok {
			doc.Section = sec
		}
	}

	interp := content.NewInterpreter(f)
	for i, pg := range pages {
		partName := fmt.Sprintf("page %d", i+1)
		stream, err := pageContent(f, pg.dict)
		if err != nil {
			doc = doc.Warn(ast.Warning{Code: ast.WarningPartialParse, Part: partName, Message: err.Error()})
			continue
		}
		items, err := interp.Run(stream, pg.resources)
		if err != nil {
			doc = doc.Warn(ast.Warning{Code: ast.WarningPartialParse, Part: partName, Message: err.Error()})
			continue
		}
		blocks := featuresToBlocks(content.GroupPage(items, o.Thresholds), &doc)
		if i > 0 {
			blocks = markPageStart(blocks)
		}
		doc.Blocks = append(doc.Blocks, blocks...)
	}

	return doc, nil
}

func resolve(f *object.File, o object.Object) object.Object {
	if ref, ok := o.(object.Ref); ok {
		resolved, err := f.Resolve(ref)
		if err != nil {
			return nil
		}
		return resolved
	}
	return o
}

func firstFileID(trailer object.Dict) string {
	if arr := trailer.GetArray("ID"); len(arr) > 0 {
		if s, ok := arr[0].(string); ok {
			return s
		}
	}
	return ""
}

// collectPages walks the page tree depth-first, carrying the
// inheritable /Resources and /MediaBox down to the leaves.
func collectPages(f *object.File, node object.Dict, res object.Dict, box object.Array, out *[]page, depth int) {
	if depth > maxPageDepth {
		return
	}
	if r, ok := resolve(f, node["Resources"]).(object.Dict); ok {
		res = r
	}
	if b, ok := resolve(f, node["MediaBox"]).(object.Array); ok {
		box = b
	}
	switch node.GetName("Type") {
	case "Pages":
		kids, _ := resolve(f, node["Kids"]).(object.Array)
		for _, kid := range kids {
			if child, ok := resolve(f, kid).(object.Dict); ok {
				collectPages(f, child, res, box, out, depth+1)
			}
		}
	case "Page":
		*out = append(*out, page{dict: node, resources: res, mediaBox: box})
	}
}

// pageContent decodes and concatenates the page's /Contents streams.
func pageContent(f *object.File, pg object.Dict) ([]byte, error) {
	var parts [][]byte
	appendStream := func(o object.Object) error {
		stream, ok := resolve(f, o).(*object.Stream)
		if !ok {
			return fmt.Errorf("pdf: page content is not a stream")
		}
		decoded, err := object.DecodeStream(stream)
		if err != nil {
			return err
		}
		parts = append(parts, decoded)
		return nil
	}

	switch contents := pg["Contents"].(type) {
	case object.Ref:
		if arr, ok := resolve(f, contents).(object.Array); ok {
			for _, el := range arr {
				if err := appendStream(el); err != nil {
					return nil, err
				}
			}
		} else if err := appendStream(contents); err != nil {
			return nil, err
		}
	case object.Array:
		for _, el := range contents {
			if err := appendStream(el); err != nil {
				return nil, err
			}
		}
	case nil:
		return nil, nil
	default:
		if err := appendStream(contents); err != nil {
			return nil, err
		}
	}
	return joinStreams(parts), nil
}

// joinStreams concatenates content fragments with a newline between
// each, since a split point may fall mid-token.
func joinStreams(parts [][]byte) []byte {
	var out []byte
	for i, p := range parts {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, p...)
	}
	return out
}

func sectionFromMediaBox(box object.Array) (ast.Section, bool) {
	if len(box) != 4 {
		return ast.Section{}, false
	}
	x0, y0 := numAt(box, 0), numAt(box, 1)
	x1, y1 := numAt(box, 2), numAt(box, 3)
	wPt, hPt := x1-x0, y1-y0
	if wPt <= 0 || hPt <= 0 {
		return ast.Section{}, false
	}
	sec := ast.DefaultSection()
	sec.WidthTwips = int(math.Round(wPt * twipsPerPoint))
	sec.HeightTwips = int(math.Round(hPt * twipsPerPoint))
	if wPt > hPt {
		sec.Orientation = ast.OrientationLandscape
	}
	return sec, true
}

func numAt(arr object.Array, i int) float64 {
	switch v := arr[i].(type) {
	case int64:
		return float64(v)
	case float64:
		return v
	default:
		return 0
	}
}

func readInfo(f *object.File) ast.Metadata {
	infoObj, ok := f.Trailer.GetRef("Info")
	if !ok {
		return ast.Metadata{}
	}
	info, ok := resolve(f, infoObj).(object.Dict)
	if !ok {
		return ast.Metadata{}
	}
	str := func(key object.Name) string {
		if s, ok := info[key].(string); ok {
			return decodeDocString(s)
		}
		return ""
	}
	md := ast.Metadata{
		Title:       str("Title"),
		Subject:     str("Subject"),
		Creator:     str("Author"),
		Description: str("Subject"),
		Created:     str("CreationDate"),
		Modified:    str("ModDate"),
	}
	if kw := str("Keywords"); kw != "" {
		for _, k := range strings.Split(kw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				md.Keywords = append(md.Keywords, k)
			}
		}
	}
	return md
}

// decodeDocString handles the two PDF text-string encodings: UTF-16BE
// with BOM, else PDFDocEncoding (treated as Latin-1, its printable
// superset).
func decodeDocString(s string) string {
	b := []byte(s)
	if len(b) >= 2 && b[0] == 0xFE && b[1] == 0xFF {
		var sb strings.Builder
		for i := 2; i+1 < len(b); i += 2 {
			sb.WriteRune(rune(uint16(b[i])<<8 | uint16(b[i+1])))
		}
		return sb.String()
	}
	var sb strings.Builder
	for _, c := range b {
		sb.WriteRune(rune(c))
	}
	return sb.String()
}

// featuresToBlocks maps grouped page features onto AST blocks,
// registering image payloads in the document media pool.
func featuresToBlocks(features []content.Feature, doc *ast.Document) []ast.Block {
	var blocks []ast.Block
	for _, f := range features {
		switch v := f.(type) {
		case content.TextFeature:
			for _, line := range v.Lines {
				p := lineToParagraph(line)
				blocks = append(blocks, &p)
			}
		case content.TableFeature:
			t := tableToBlock(v)
			blocks = append(blocks, &t)
		case content.ImageFeature:
			img := imageToBlock(v, doc)
			blocks = append(blocks, &img)
		}
	}
	return blocks
}

func lineToParagraph(line content.Line) ast.Paragraph {
	var runs []ast.Inline
	for i, m := range line.Marks {
		text := m.Text
		if i > 0 {
			prev := line.Marks[i-1]
			size := prev.FontSizePt
			if size <= 0 {
				size = 12
			}
			if m.X-prev.EndX > 0.3*size && !strings.HasSuffix(prev.Text, " ") && !strings.HasPrefix(text, " ") {
				text = " " + text
			}
		}
		t := markToText(m, text)
		if n := len(runs); n > 0 {
			if prev, ok := runs[n-1].(*ast.Text); ok && sameFormat(*prev, t) {
				prev.Content += t.Content
				continue
			}
		}
		runs = append(runs, &t)
	}
	return ast.NewParagraph(runs...)
}

func markToText(m content.TextMark, text string) ast.Text {
	t := ast.NewText(text)
	t.FontFamily = fontFamily(m.Font)
	t.Bold = strings.Contains(m.Font, "Bold")
	t.Italic = strings.Contains(m.Font, "Italic") || strings.Contains(m.Font, "Oblique")
	if m.Underline {
		t.Underline = ast.UnderlineSingle
	}
	t.Strike = m.Strike
	if m.FontSizePt > 0 {
		t.FontSizeHalf = int(math.Round(m.FontSizePt * 2))
	}
	if m.ColorHex != "" && m.ColorHex != "000000" {
		t.Color = m.ColorHex
	}
	return t
}

// sameFormat reports whether two runs can merge, ignoring content.
func sameFormat(a, b ast.Text) bool {
	a.Content, b.Content = "", ""
	return a == b
}

// fontFamily strips the subset prefix ("ABCDEF+") and the style
// suffix from a PostScript font name.
func fontFamily(name string) string {
	if len(name) > 7 && name[6] == '+' {
		allCaps := true
		for _, c := range name[:6] {
			if c < 'A' || c > 'Z' {
				allCaps = false
				break
			}
		}
		if allCaps {
			name = name[7:]
		}
	}
	if i := strings.IndexByte(name, '-'); i > 0 {
		name = name[:i]
	}
	return name
}

func tableToBlock(tf content.TableFeature) ast.Table {
	var rows []ast.TableRow
	for _, cells := range tf.Rows {
		var astCells []ast.TableCell
		for _, cell := range cells {
			p := lineToParagraph(content.Line{Marks: cell})
			astCells = append(astCells, ast.NewTableCell(&p))
		}
		rows = append(rows, ast.NewTableRow(astCells...))
	}
	return ast.NewTable(rows...)
}

func imageToBlock(img content.ImageFeature, doc *ast.Document) ast.Image {
	sum := sha256.Sum256(img.Data)
	key := hex.EncodeToString(sum[:])
	if doc.Media == nil {
		doc.Media = map[string][]byte{}
	}
	doc.Media[key] = img.Data
	return ast.NewImage(key, img.Ext,
		int(math.Round(img.WidthPt*emuPerPoint)),
		int(math.Round(img.HeightPt*emuPerPoint)))
}

// markPageStart sets the page-break-before flag on the first paragraph
// of a page's block run, inserting an empty carrier paragraph when the
// page opens with a non-paragraph block.
func markPageStart(blocks []ast.Block) []ast.Block {
	if len(blocks) == 0 {
		return blocks
	}
	if p, ok := blocks[0].(*ast.Paragraph); ok {
		p.PageBreakBefore = true
		return blocks
	}
	carrier := ast.NewParagraph().WithPageBreakBefore(true)
	return append([]ast.Block{&carrier}, blocks...)
}
