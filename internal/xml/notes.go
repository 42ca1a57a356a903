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

package xml

import "encoding/xml"

// Footnotes is word/footnotes.xml's root element.
type Footnotes struct {
	XMLName   xml.Name `xml:"w:footnotes"`
	XmlnsW    string   `xml:"xmlns:w,attr"`
	Footnotes []*Note  `xml:"w:footnote"`
}

// Endnotes is word/endnotes.xml's root element.
type Endnotes struct {
	XMLName  xml.Name `xml:"w:endnotes"`
	XmlnsW   string   `xml:"xmlns:w,attr"`
	Endnotes []*Note  `xml:"w:endnote"`
}

// Note is one footnote or endnote definition. Type marks the
// separator/continuationSeparator boilerplate notes (IDs 0 and 1);
// content notes leave it empty.
type Note struct {
	ID         int          `xml:"w:id,attr"`
	Type       string       `xml:"w:type,attr,omitempty"`
	Paragraphs []*Paragraph `xml:"w:p"`
}

// NoteReference is the w:footnoteReference / w:endnoteReference run
// child pointing at a Note by ID; the element name is chosen by the
// run field that carries it.
type NoteReference struct {
	ID int `xml:"w:id,attr"`
}

// NewFootnotes returns an empty footnotes part carrying the two
// boilerplate separator notes every conforming part starts with.
func NewFootnotes() *Footnotes {
	return &Footnotes{
		XmlnsW:    "http://schemas.openxmlformats.org/wordprocessingml/2006/main",
		Footnotes: boilerplateNotes(),
	}
}

// NewEndnotes returns an empty endnotes part with the boilerplate
// separator notes.
func NewEndnotes() *Endnotes {
	return &Endnotes{
		XmlnsW:   "http://schemas.openxmlformats.org/wordprocessingml/2006/main",
		Endnotes: boilerplateNotes(),
	}
}

func boilerplateNotes() []*Note {
	return []*Note{
		{ID: 0, Type: "separator", Paragraphs: []*Paragraph{
			{Elements: []interface{}{&Run{Separator: &struct{}{}}}},
		}},
		{ID: 1, Type: "continuationSeparator", Paragraphs: []*Paragraph{
			{Elements: []interface{}{&Run{ContinuationSeparator: &struct{}{}}}},
		}},
	}
}
