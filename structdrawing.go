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
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const emuPerPixel = 9525 // 96 dpi

// Drawing is w:drawing holding one inline picture.
type Drawing struct {
	XMLName xml.Name       `xml:"w:drawing"`
	Inline  *InlineDrawing `xml:"wp:inline,omitempty"`
}

// InlineDrawing is the wp:inline frame of an inline picture.
type InlineDrawing struct {
	XMLName xml.Name       `xml:"wp:inline"`
	DistT   int            `xml:"distT,attr"`
	DistB   int            `xml:"distB,attr"`
	DistL   int            `xml:"distL,attr"`
	DistR   int            `xml:"distR,attr"`
	Extent  *WPExtent `xml:"wp:extent"`
	DocPr   *DrawingDocPr  `xml:"wp:docPr"`
	Graphic *Graphic       `xml:"a:graphic"`
}

// WPExtent is wp:extent in EMU.
type WPExtent struct {
	CX int64 `xml:"cx,attr"`
	CY int64 `xml:"cy,attr"`
}

// UnmarshalXML reads cx and cy by local attribute name.
func (e *WPExtent) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	e.CX = int64(intAttr(start, "cx"))
	e.CY = int64(intAttr(start, "cy"))
	return d.Skip()
}

// DrawingDocPr is wp:docPr, the drawing's non-visual properties.
type DrawingDocPr struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

// Graphic is a:graphic.
type Graphic struct {
	XMLName     xml.Name     `xml:"a:graphic"`
	XmlnsA      string       `xml:"xmlns:a,attr"`
	GraphicData *GraphicData `xml:"a:graphicData"`
}

// GraphicData is a:graphicData carrying one pic:pic.
type GraphicData struct {
	XMLName xml.Name `xml:"a:graphicData"`
	URI     string   `xml:"uri,attr"`
	Pic     *Pic     `xml:"pic:pic"`
}

// Pic is pic:pic.
type Pic struct {
	XMLName  xml.Name     `xml:"pic:pic"`
	XmlnsPic string       `xml:"xmlns:pic,attr"`
	NvPicPr  *NvPicPr     `xml:"pic:nvPicPr"`
	BlipFill *BlipFill    `xml:"pic:blipFill"`
	SpPr     *PicShapePr  `xml:"pic:spPr"`
}

// NvPicPr is pic:nvPicPr.
type NvPicPr struct {
	CNvPr    DrawingDocPr `xml:"pic:cNvPr"`
	CNvPicPr struct{}     `xml:"pic:cNvPicPr"`
}

// BlipFill is pic:blipFill; Blip's r:embed attribute names the image
// relationship.
type BlipFill struct {
	Blip    Blip     `xml:"a:blip"`
	Stretch struct{} `xml:"a:stretch"`
}

// Blip is a:blip.
type Blip struct {
	Embed string `xml:"r:embed,attr"`
}

// PicShapePr is pic:spPr with the frame transform and geometry.
type PicShapePr struct {
	Xfrm     PicXfrm     `xml:"a:xfrm"`
	PrstGeom PicPrstGeom `xml:"a:prstGeom"`
}

// PicXfrm is a:xfrm.
type PicXfrm struct {
	Off struct {
		X int64 `xml:"x,attr"`
		Y int64 `xml:"y,attr"`
	} `xml:"a:off"`
	Ext WPExtent `xml:"a:ext"`
}

// PicPrstGeom is a:prstGeom.
type PicPrstGeom struct {
	Prst string   `xml:"prst,attr"`
	AvLst struct{} `xml:"a:avLst"`
}

// unmarshalChildren reads back the pieces the writer emits: the
// extent and the blip relationship ID. Everything else in a drawing
// is regenerated on save.
func (dr *Drawing) unmarshalChildren(d *xml.Decoder, start xml.StartElement) error {
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
			case "inline":
				if dr.Inline == nil {
					dr.Inline = &InlineDrawing{}
				}
			case "extent":
				if dr.Inline == nil {
					dr.Inline = &InlineDrawing{}
				}
				dr.Inline.Extent = &WPExtent{
					CX: int64(intAttr(t, "cx")),
					CY: int64(intAttr(t, "cy")),
				}
				if err := d.Skip(); err != nil {
					return err
				}
			case "blip":
				if dr.Inline == nil {
					dr.Inline = &InlineDrawing{}
				}
				ensureGraphic(dr.Inline)
				dr.Inline.Graphic.GraphicData.Pic.BlipFill.Blip.Embed = strAttr(t, "embed")
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

func ensureGraphic(inline *InlineDrawing) {
	if inline.Graphic == nil {
		inline.Graphic = &Graphic{XmlnsA: nsA}
	}
	if inline.Graphic.GraphicData == nil {
		inline.Graphic.GraphicData = &GraphicData{URI: nsPic}
	}
	if inline.Graphic.GraphicData.Pic == nil {
		inline.Graphic.GraphicData.Pic = &Pic{XmlnsPic: nsPic}
	}
	if inline.Graphic.GraphicData.Pic.BlipFill == nil {
		inline.Graphic.GraphicData.Pic.BlipFill = &BlipFill{}
	}
}

// AddInlineDrawingFrom reads an image file, registers it as package
// media with an image relationship, and appends a run carrying the
// inline drawing at the image's natural size.
func (p *Paragraph) AddInlineDrawingFrom(path string) (*Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return p.addInlineDrawing(data, strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
}

// AddInlineDrawing registers raw image bytes and appends the inline
// drawing run.
func (p *Paragraph) AddInlineDrawing(data []byte) (*Run, error) {
	return p.addInlineDrawing(data, "png")
}

func (p *Paragraph) addInlineDrawing(data []byte, ext string) (*Run, error) {
	if p.file == nil {
		return nil, os.ErrInvalid
	}
	cfg, _, err := image.DecodeConfig(strings.NewReader(BytesToString(data)))
	if err != nil {
		return nil, fmt.Errorf("docx: unsupported image: %w", err)
	}

	m := p.file.addMedia(data, ext)
	rID := p.file.addRelationship(relTypeImage, "media/"+m.Name, false)
	docPrID := p.file.incSlowID(IDTypeDrawing)

	cx := int64(cfg.Width) * emuPerPixel
	cy := int64(cfg.Height) * emuPerPixel

	inline := &InlineDrawing{
		Extent: &WPExtent{CX: cx, CY: cy},
		DocPr:  &DrawingDocPr{ID: docPrID, Name: m.Name},
	}
	ensureGraphic(inline)
	pic := inline.Graphic.GraphicData.Pic
	pic.NvPicPr = &NvPicPr{CNvPr: DrawingDocPr{ID: docPrID, Name: m.Name}}
	pic.BlipFill.Blip.Embed = rID
	pic.SpPr = &PicShapePr{
		Xfrm:     PicXfrm{Ext: WPExtent{CX: cx, CY: cy}},
		PrstGeom: PicPrstGeom{Prst: "rect"},
	}

	r := &Run{file: p.file}
	r.Children = append(r.Children, &Drawing{Inline: inline})
	p.Children = append(p.Children, r)
	return r, nil
}

// WordprocessingGroup is a wpg:wgp drawing group. Group shapes are
// tolerated on read and skipped; the writer never produces them.
type WordprocessingGroup struct {
	XMLName xml.Name
}

// UnmarshalXML consumes the element without interpreting it.
func (g *WordprocessingGroup) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	g.XMLName = start.Name
	return d.Skip()
}

// WordprocessingCanvas is a wpc:wpc drawing canvas, tolerated the
// same way as WordprocessingGroup.
type WordprocessingCanvas struct {
	XMLName xml.Name
}

// UnmarshalXML consumes the element without interpreting it.
func (c *WordprocessingCanvas) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	c.XMLName = start.Name
	return d.Skip()
}

// WordprocessingShape is a wps:wsp drawing shape, tolerated on read.
type WordprocessingShape struct {
	XMLName xml.Name
}

// UnmarshalXML consumes the element without interpreting it.
func (s *WordprocessingShape) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	s.XMLName = start.Name
	return d.Skip()
}

// WPGGroupShape is a wpg:grpSpPr group-shape property block,
// tolerated on read.
type WPGGroupShape struct {
	XMLName xml.Name
}

// UnmarshalXML consumes the element without interpreting it.
func (g *WPGGroupShape) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	g.XMLName = start.Name
	return d.Skip()
}
