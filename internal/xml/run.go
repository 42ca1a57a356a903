/*
MIT License

Copyright (c) 2025 Misael Monterroca
Copyright (c) 2020-2023 fumiama (original go-docx)

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

package xml

import "encoding/xml"

// Run represents a w:r element: its Properties followed by the content
// children that are set, in field order (a run carrying both Text and
// Break, as the serializer emits for line breaks, writes the text first).
type Run struct {
	XMLName    xml.Name        `xml:"w:r"`
	Properties *RunProperties  `xml:"w:rPr,omitempty"`
	Text       *Text           `xml:"w:t,omitempty"`
	Break      *Break          `xml:"w:br,omitempty"`
	Drawing    *Drawing        `xml:"w:drawing,omitempty"`
	FieldChar  *FieldChar      `xml:"w:fldChar,omitempty"`
	InstrText  *InstrText      `xml:"w:instrText,omitempty"`

	FootnoteReference *NoteReference `xml:"w:footnoteReference,omitempty"`
	EndnoteReference  *NoteReference `xml:"w:endnoteReference,omitempty"`

	// Separator/ContinuationSeparator mark the boilerplate runs inside
	// a notes part's type="separator" notes.
	Separator             *struct{} `xml:"w:separator,omitempty"`
	ContinuationSeparator *struct{} `xml:"w:continuationSeparator,omitempty"`
}

// RunProperties represents w:rPr element.
type RunProperties struct {
	XMLName   xml.Name   `xml:"w:rPr"`
	Style     *RunStyle  `xml:"w:rStyle,omitempty"`
	Font      *Font      `xml:"w:rFonts,omitempty"`
	Bold      *BoolValue `xml:"w:b,omitempty"`
	Italic    *BoolValue `xml:"w:i,omitempty"`
	Strike    *BoolValue `xml:"w:strike,omitempty"`
	Underline *Underline `xml:"w:u,omitempty"`
	Color     *Color     `xml:"w:color,omitempty"`
	Size      *HalfPt    `xml:"w:sz,omitempty"`
	SizeCS    *HalfPt    `xml:"w:szCs,omitempty"`
	Highlight *Highlight `xml:"w:highlight,omitempty"`
	Shading   *Shading   `xml:"w:shd,omitempty"`
	VertAlign *ValStr    `xml:"w:vertAlign,omitempty"`
	Vanish    *BoolValue `xml:"w:vanish,omitempty"`
}

// RunStyle represents w:rStyle element (reference to a character style).
type RunStyle struct {
	Val string `xml:"w:val,attr"`
}

// Font represents w:rFonts element.
type Font struct {
	ASCII    string `xml:"w:ascii,attr,omitempty"`
	HAnsi    string `xml:"w:hAnsi,attr,omitempty"`
	EastAsia string `xml:"w:eastAsia,attr,omitempty"`
	CS       string `xml:"w:cs,attr,omitempty"`
}

// BoolValue represents the common OOXML on/off toggle shape
// ("<w:tag/>" or "<w:tag w:val=\"false\"/>").
type BoolValue struct {
	Val *bool `xml:"w:val,attr,omitempty"`
}

// Underline represents w:u element.
type Underline struct {
	Val   string `xml:"w:val,attr"`
	Color string `xml:"w:color,attr,omitempty"`
}

// Color represents w:color element.
type Color struct {
	Val string `xml:"w:val,attr"`
}

// HalfPt is the common half-point sized value shape used by w:sz/w:szCs.
type HalfPt struct {
	Val int `xml:"w:val,attr"`
}

// Highlight represents w:highlight element.
type Highlight struct {
	Val string `xml:"w:val,attr"`
}

// Text represents w:t element.
type Text struct {
	XMLName xml.Name `xml:"w:t"`
	Space   string   `xml:"xml:space,attr,omitempty"`
	Content string   `xml:",chardata"`
}

// Break represents w:br element.
type Break struct {
	XMLName xml.Name `xml:"w:br"`
	Type    string   `xml:"w:type,attr,omitempty"` // page, column, textWrapping
}
