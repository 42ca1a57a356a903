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

// Item is one extracted page element: a shown text run, a painted
// path segment retained as a candidate border/divider, or an image
// placement. All coordinates are device space in points, Y growing
// upward per PDF convention.
type Item interface{ item() }

// TextItem is one shown string: Tj, one element of TJ, or ' / ".
// X, Y is the baseline origin of the first glyph; EndX is the pen
// position after the last glyph, so downstream kerning and gap math
// does not re-measure.
type TextItem struct {
	Text string

	X, Y float64
	EndX float64

	Font       string
	FontSizePt float64
	ColorHex   string // 6-hex uppercased fill color
}

func (TextItem) item() {}

// LineItem is one straight painted segment. Only near-axis-aligned
// segments survive path flushing; they feed table-grid detection and
// underline/strikethrough recognition.
type LineItem struct {
	X1, Y1, X2, Y2 float64
	WidthPt        float64
}

func (LineItem) item() {}

// Horizontal reports whether the segment is flat enough to count as a
// horizontal rule.
func (l LineItem) Horizontal() bool {
	dy := l.Y2 - l.Y1
	if dy < 0 {
		dy = -dy
	}
	return dy <= 0.5
}

// Vertical reports whether the segment is upright enough to count as a
// vertical rule.
func (l LineItem) Vertical() bool {
	dx := l.X2 - l.X1
	if dx < 0 {
		dx = -dx
	}
	return dx <= 0.5
}

// ImageItem is one placed XObject image. X, Y is the lower-left
// corner; W and H are the rendered size in points, both taken from
// the CTM at the Do operator.
type ImageItem struct {
	Data []byte
	Ext  string // "jpeg", "jp2", "png"

	X, Y, W, H float64
}

func (ImageItem) item() {}
