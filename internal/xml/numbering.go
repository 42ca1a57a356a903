/*
MIT License

Copyright (c) 2025 Misael Montero

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

// Numbering represents word/numbering.xml's root element.
type Numbering struct {
	XMLName      xml.Name       `xml:"w:numbering"`
	Xmlns        string         `xml:"xmlns:w,attr"`
	AbstractNums []*AbstractNum `xml:"w:abstractNum"`
	Nums         []*Num         `xml:"w:num"`
}

// AbstractNum is a numbering definition's level set.
type AbstractNum struct {
	XMLName    xml.Name `xml:"w:abstractNum"`
	AbstractID int      `xml:"w:abstractNumId,attr"`
	MultiLevel *ValStr  `xml:"w:multiLevelType,omitempty"`
	Levels     []*Lvl   `xml:"w:lvl"`
}

// Lvl describes one indentation level's numbering appearance.
type Lvl struct {
	XMLName  xml.Name  `xml:"w:lvl"`
	ILvl     int       `xml:"w:ilvl,attr"`
	Start    *ValInt   `xml:"w:start,omitempty"`
	NumFmt   *ValStr   `xml:"w:numFmt,omitempty"`
	LvlText  *ValStr   `xml:"w:lvlText,omitempty"`
	LvlJc    *ValStr   `xml:"w:lvlJc,omitempty"`
	PPr      *ParagraphProperties `xml:"w:pPr,omitempty"`
	RPr      *RunProperties       `xml:"w:rPr,omitempty"`
}

// Num binds a numId used by paragraphs to an AbstractNum definition,
// optionally overriding per-level start indexes for list continuity.
type Num struct {
	XMLName       xml.Name       `xml:"w:num"`
	NumID         int            `xml:"w:numId,attr"`
	AbstractNumID *ValInt        `xml:"w:abstractNumId"`
	LvlOverrides  []*LvlOverride `xml:"w:lvlOverride,omitempty"`
}

// LvlOverride carries one level's start-index override on a w:num.
type LvlOverride struct {
	ILvl          int     `xml:"w:ilvl,attr"`
	StartOverride *ValInt `xml:"w:startOverride,omitempty"`
}

// ValInt is the common "<w:tag w:val=\"N\"/>" shape with an integer value.
type ValInt struct {
	Val int `xml:"w:val,attr"`
}

// ValStr is the common "<w:tag w:val=\"...\"/>" shape with a string value.
type ValStr struct {
	Val string `xml:"w:val,attr"`
}
