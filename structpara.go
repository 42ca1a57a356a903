/*
   Copyright (c) 2020 gingfrederik
   Copyright (c) 2021 Gonzalo Fernandez-Victorio
   Copyright (c) 2021 Basement Crowd Ltd (https://www.basementcrowd.com)
   Copyright (c) 2023 Fumiama Minamoto (源文雨)
   Copyright (c) 2025 SlideLang

   This program is free software: you can redistribute it and/or modify
   it under the terms of the GNU Affero General Public License as published
   by the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   This program is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
   GNU Affero General Public License for more details.

   You should have received a copy of the GNU Affero General Public License
   along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package docx

import (
	"encoding/xml"
	"io"
	"strings"
)

// Paragraph is one w:p element: optional properties plus an ordered
// list of runs, hyperlinks, bookmarks and fields.
type Paragraph struct {
	XMLName    xml.Name             `xml:"w:p"`
	Properties *ParagraphProperties `xml:"w:pPr,omitempty"`
	Children   []interface{}

	file *Docx
}

// ParagraphProperties is the w:pPr block.
type ParagraphProperties struct {
	XMLName       xml.Name       `xml:"w:pPr"`
	Style         *Style         `xml:"w:pStyle,omitempty"`
	NumProperties *NumProperties `xml:"w:numPr,omitempty"`
	Justification *Justification `xml:"w:jc,omitempty"`
	Ind           *Ind           `xml:"w:ind,omitempty"`
}

// Style is a w:pStyle reference.
type Style struct {
	XMLName xml.Name `xml:"w:pStyle"`
	Val     string   `xml:"w:val,attr"`
}

// Justification is the w:jc element.
type Justification struct {
	XMLName xml.Name `xml:"w:jc"`
	Val     string   `xml:"w:val,attr"`
}

// Ind is the w:ind indentation element, values in twips.
type Ind struct {
	XMLName   xml.Name `xml:"w:ind"`
	Left      int      `xml:"w:left,attr,omitempty"`
	FirstLine int      `xml:"w:firstLine,attr,omitempty"`
	Hanging   int      `xml:"w:hanging,attr,omitempty"`
}

// NumProperties is the w:numPr numbering reference.
type NumProperties struct {
	XMLName xml.Name `xml:"w:numPr"`
	Ilvl    *NumVal  `xml:"w:ilvl,omitempty"`
	NumID   *NumVal  `xml:"w:numId,omitempty"`
}

// NumVal is a w:val-carrying child of w:numPr.
type NumVal struct {
	Val int `xml:"w:val,attr"`
}

// UnmarshalXML reads w:ilvl and w:numId by local name, so both
// prefixed fragments and namespace-resolved documents decode.
func (np *NumProperties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "ilvl":
				np.Ilvl = &NumVal{Val: intAttr(t, "val")}
			case "numId":
				np.NumID = &NumVal{Val: intAttr(t, "val")}
			}
			if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return nil
			}
		}
	}
}

func intAttr(el xml.StartElement, local string) int {
	for _, a := range el.Attr {
		if a.Name.Local == local {
			n, err := GetInt(a.Value)
			if err == nil {
				return n
			}
		}
	}
	return 0
}

func strAttr(el xml.StartElement, local string) string {
	for _, a := range el.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

func (pp *ParagraphProperties) unmarshalChildren(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pStyle":
				pp.Style = &Style{Val: strAttr(t, "val")}
				if err := d.Skip(); err != nil {
					return err
				}
			case "jc":
				pp.Justification = &Justification{Val: strAttr(t, "val")}
				if err := d.Skip(); err != nil {
					return err
				}
			case "ind":
				pp.Ind = &Ind{
					Left:      intAttr(t, "left"),
					FirstLine: intAttr(t, "firstLine"),
					Hanging:   intAttr(t, "hanging"),
				}
				if err := d.Skip(); err != nil {
					return err
				}
			case "numPr":
				np := &NumProperties{}
				if err := np.UnmarshalXML(d, t); err != nil {
					return err
				}
				pp.NumProperties = np
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return nil
			}
		}
	}
}

// UnmarshalXML rebuilds the paragraph from local element names.
func (p *Paragraph) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr":
				pp := &ParagraphProperties{}
				if err := pp.unmarshalChildren(d, t); err != nil {
					return err
				}
				p.Properties = pp
			case "r":
				r := &Run{}
				if err := r.UnmarshalXML(d, t); err != nil {
					return err
				}
				p.Children = append(p.Children, r)
			case "hyperlink":
				h := &Hyperlink{ID: strAttr(t, "id")}
				if err := h.unmarshalChildren(d, t); err != nil {
					return err
				}
				p.Children = append(p.Children, h)
			case "bookmarkStart":
				p.Children = append(p.Children, &BookmarkStart{
					ID:   strAttr(t, "id"),
					Name: strAttr(t, "name"),
				})
				if err := d.Skip(); err != nil {
					return err
				}
			case "bookmarkEnd":
				p.Children = append(p.Children, &BookmarkEnd{ID: strAttr(t, "id")})
				if err := d.Skip(); err != nil {
					return err
				}
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return nil
			}
		}
	}
}

// AddText appends a text run and returns it for chaining.
func (p *Paragraph) AddText(text string) *Run {
	r := &Run{file: p.file}
	r.AddText(text)
	p.Children = append(p.Children, r)
	return r
}

// AddLink appends a hyperlink run pointing at an external URL.
func (p *Paragraph) AddLink(text, url string) *Hyperlink {
	h := &Hyperlink{
		Run: &Run{
			RunProperties: &RunProperties{
				Color:     &Color{Val: "0563C1"},
				Underline: &Underline{Val: "single"},
			},
			file: p.file,
		},
	}
	h.Run.AddText(text)
	if p.file != nil {
		h.ID = p.file.addRelationship(relTypeHyperlink, url, true)
	}
	p.Children = append(p.Children, h)
	return h
}

// Justification sets the paragraph alignment (w:jc).
func (p *Paragraph) Justification(val string) *Paragraph {
	if err := ValidateJustification(val); err != nil {
		return p
	}
	if p.Properties == nil {
		p.Properties = &ParagraphProperties{}
	}
	p.Properties.Justification = &Justification{Val: val}
	return p
}

// Style applies a named paragraph style (w:pStyle).
func (p *Paragraph) Style(val string) *Paragraph {
	if p.Properties == nil {
		p.Properties = &ParagraphProperties{}
	}
	p.Properties.Style = &Style{Val: val}
	return p
}

// Indent sets left, first-line and hanging indentation in twips.
// Conflicting or out-of-range values leave the paragraph unchanged.
func (p *Paragraph) Indent(left, firstLine, hanging int) *Paragraph {
	if err := ValidateIndent(left, firstLine, hanging); err != nil {
		return p
	}
	if p.Properties == nil {
		p.Properties = &ParagraphProperties{}
	}
	p.Properties.Ind = &Ind{Left: left, FirstLine: firstLine, Hanging: hanging}
	return p
}

// Numbering places the paragraph in a numbered list.
func (p *Paragraph) Numbering(numID, level int) *Paragraph {
	if p.Properties == nil {
		p.Properties = &ParagraphProperties{}
	}
	p.Properties.NumProperties = &NumProperties{
		Ilvl:  &NumVal{Val: level},
		NumID: &NumVal{Val: numID},
	}
	return p
}

// String returns the concatenated text content of the paragraph.
func (p *Paragraph) String() string {
	var sb strings.Builder
	for _, child := range p.Children {
		switch v := child.(type) {
		case *Run:
			sb.WriteString(v.String())
		case *Hyperlink:
			if v.Run != nil {
				sb.WriteString(v.Run.String())
			}
		}
	}
	return sb.String()
}

func (p *Paragraph) attachFile(f *Docx) {
	p.file = f
	for _, child := range p.Children {
		switch v := child.(type) {
		case *Run:
			v.file = f
		case *Hyperlink:
			if v.Run != nil {
				v.Run.file = f
			}
		}
	}
}
