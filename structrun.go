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

// Run is one w:r element: optional run properties plus text, tabs,
// field characters, instruction text or drawings.
type Run struct {
	XMLName       xml.Name       `xml:"w:r"`
	RunProperties *RunProperties `xml:"w:rPr,omitempty"`
	Children      []interface{}

	file *Docx
}

// RunProperties is the w:rPr block. Field order follows the schema's
// required sequence.
type RunProperties struct {
	XMLName   xml.Name   `xml:"w:rPr"`
	Fonts     *RunFonts  `xml:"w:rFonts,omitempty"`
	Bold      *Bold      `xml:"w:b,omitempty"`
	Italic    *Italic    `xml:"w:i,omitempty"`
	Strike    *Strike    `xml:"w:strike,omitempty"`
	Color     *Color     `xml:"w:color,omitempty"`
	Spacing   *Spacing   `xml:"w:spacing,omitempty"`
	Size      *Size      `xml:"w:sz,omitempty"`
	SizeCs    *SizeCs    `xml:"w:szCs,omitempty"`
	Highlight *Highlight `xml:"w:highlight,omitempty"`
	Underline *Underline `xml:"w:u,omitempty"`
	Shade     *Shade     `xml:"w:shd,omitempty"`
}

// Bold is w:b.
type Bold struct {
	XMLName xml.Name `xml:"w:b"`
}

// Italic is w:i.
type Italic struct {
	XMLName xml.Name `xml:"w:i"`
}

// Strike is w:strike.
type Strike struct {
	XMLName xml.Name `xml:"w:strike"`
	Val     string   `xml:"w:val,attr"`
}

// Color is w:color, a 6-hex RGB value.
type Color struct {
	XMLName xml.Name `xml:"w:color"`
	Val     string   `xml:"w:val,attr"`
}

// Spacing is w:spacing, character spacing in twips.
type Spacing struct {
	XMLName xml.Name `xml:"w:spacing"`
	Line    int      `xml:"w:val,attr"`
}

// Size is w:sz, the font size in half-points.
type Size struct {
	XMLName xml.Name `xml:"w:sz"`
	Val     string   `xml:"w:val,attr"`
}

// SizeCs is w:szCs, the complex-script font size in half-points.
type SizeCs struct {
	XMLName xml.Name `xml:"w:szCs"`
	Val     string   `xml:"w:val,attr"`
}

// Highlight is w:highlight, one of the named wash colors.
type Highlight struct {
	XMLName xml.Name `xml:"w:highlight"`
	Val     string   `xml:"w:val,attr"`
}

// Underline is w:u.
type Underline struct {
	XMLName xml.Name `xml:"w:u"`
	Val     string   `xml:"w:val,attr"`
}

// Shade is w:shd run shading.
type Shade struct {
	XMLName xml.Name `xml:"w:shd"`
	Val     string   `xml:"w:val,attr"`
	Color   string   `xml:"w:color,attr"`
	Fill    string   `xml:"w:fill,attr"`
}

// RunFonts is w:rFonts.
type RunFonts struct {
	XMLName  xml.Name `xml:"w:rFonts"`
	ASCII    string   `xml:"w:ascii,attr,omitempty"`
	EastAsia string   `xml:"w:eastAsia,attr,omitempty"`
	HAnsi    string   `xml:"w:hAnsi,attr,omitempty"`
	Hint     string   `xml:"w:hint,attr,omitempty"`
}

// Text is w:t run text; Space carries xml:space="preserve" when the
// content has significant leading or trailing whitespace.
type Text struct {
	XMLName xml.Name `xml:"w:t"`
	Space   string   `xml:"xml:space,attr,omitempty"`
	Text    string   `xml:",chardata"`
}

// MarshalXML stamps xml:space="preserve" whenever the text would
// otherwise lose surrounding whitespace.
func (t *Text) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	out := *t
	if out.Space == "" && out.Text != strings.TrimSpace(out.Text) {
		out.Space = "preserve"
	}
	type plain Text
	return e.EncodeElement((*plain)(&out), xml.StartElement{Name: xml.Name{Local: "w:t"}})
}

// Tab is w:tab inside a run.
type Tab struct {
	XMLName xml.Name `xml:"w:tab"`
}

// Hyperlink is w:hyperlink wrapping a run, with its target stored as
// a document relationship.
type Hyperlink struct {
	XMLName xml.Name `xml:"w:hyperlink"`
	ID      string   `xml:"r:id,attr"`
	Run     *Run     `xml:"w:r"`
}

func (h *Hyperlink) unmarshalChildren(d *xml.Decoder, start xml.StartElement) error {
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
			if t.Name.Local == "r" {
				r := &Run{}
				if err := r.UnmarshalXML(d, t); err != nil {
					return err
				}
				h.Run = r
			} else if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return nil
			}
		}
	}
}

// String returns the text content of the run.
func (r *Run) String() string {
	var sb strings.Builder
	for _, child := range r.Children {
		switch v := child.(type) {
		case *Text:
			sb.WriteString(v.Text)
		case *Tab:
			sb.WriteByte('\t')
		}
	}
	return sb.String()
}

func (rp *RunProperties) unmarshalChildren(d *xml.Decoder, start xml.StartElement) error {
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
			case "rFonts":
				rp.Fonts = &RunFonts{
					ASCII:    strAttr(t, "ascii"),
					EastAsia: strAttr(t, "eastAsia"),
					HAnsi:    strAttr(t, "hAnsi"),
					Hint:     strAttr(t, "hint"),
				}
			case "b":
				rp.Bold = &Bold{}
			case "i":
				rp.Italic = &Italic{}
			case "strike":
				rp.Strike = &Strike{Val: strAttr(t, "val")}
			case "color":
				rp.Color = &Color{Val: strAttr(t, "val")}
			case "spacing":
				rp.Spacing = &Spacing{Line: intAttr(t, "val")}
			case "sz":
				rp.Size = &Size{Val: strAttr(t, "val")}
			case "szCs":
				rp.SizeCs = &SizeCs{Val: strAttr(t, "val")}
			case "highlight":
				rp.Highlight = &Highlight{Val: strAttr(t, "val")}
			case "u":
				rp.Underline = &Underline{Val: strAttr(t, "val")}
			case "shd":
				rp.Shade = &Shade{
					Val:   strAttr(t, "val"),
					Color: strAttr(t, "color"),
					Fill:  strAttr(t, "fill"),
				}
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

// UnmarshalXML rebuilds the run from local element names.
func (r *Run) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
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
			case "rPr":
				rp := &RunProperties{}
				if err := rp.unmarshalChildren(d, t); err != nil {
					return err
				}
				r.RunProperties = rp
			case "t":
				text := &Text{Space: strAttr(t, "space")}
				var sb strings.Builder
				for {
					inner, err := d.Token()
					if err != nil {
						return err
					}
					if cd, ok := inner.(xml.CharData); ok {
						sb.Write(cd)
						continue
					}
					if end, ok := inner.(xml.EndElement); ok && end.Name.Local == "t" {
						break
					}
				}
				text.Text = sb.String()
				r.Children = append(r.Children, text)
			case "tab":
				r.Children = append(r.Children, &Tab{})
				if err := d.Skip(); err != nil {
					return err
				}
			case "fldChar":
				r.Children = append(r.Children, &FldChar{FldCharType: strAttr(t, "fldCharType")})
				if err := d.Skip(); err != nil {
					return err
				}
			case "instrText":
				var sb strings.Builder
				for {
					inner, err := d.Token()
					if err != nil {
						return err
					}
					if cd, ok := inner.(xml.CharData); ok {
						sb.Write(cd)
						continue
					}
					if end, ok := inner.(xml.EndElement); ok && end.Name.Local == "instrText" {
						break
					}
				}
				r.Children = append(r.Children, &InstrText{Text: sb.String()})
			case "drawing":
				dr := &Drawing{}
				if err := dr.unmarshalChildren(d, t); err != nil {
					return err
				}
				r.Children = append(r.Children, dr)
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
