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
)

// Table is one w:tbl element.
type Table struct {
	XMLName         xml.Name         `xml:"w:tbl"`
	TableProperties *TableProperties `xml:"w:tblPr,omitempty"`
	TableGrid       *TableGrid       `xml:"w:tblGrid,omitempty"`
	TableRows       []*WTableRow     `xml:"w:tr"`

	file *Docx
}

// TableProperties is the w:tblPr block.
type TableProperties struct {
	XMLName xml.Name      `xml:"w:tblPr"`
	Width   *WTableWidth  `xml:"w:tblW,omitempty"`
	Borders *TableBorders `xml:"w:tblBorders,omitempty"`
}

// WTableWidth is w:tblW.
type WTableWidth struct {
	XMLName xml.Name `xml:"w:tblW"`
	W       int64    `xml:"w:w,attr"`
	Type    string   `xml:"w:type,attr"`
}

// UnmarshalXML reads the width attributes by local name.
func (w *WTableWidth) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	w.W = int64(intAttr(start, "w"))
	w.Type = strAttr(start, "type")
	return d.Skip()
}

// TableBorders is w:tblBorders with its six edges.
type TableBorders struct {
	XMLName xml.Name      `xml:"w:tblBorders"`
	Top     *WTableBorder `xml:"w:top,omitempty"`
	Left    *WTableBorder `xml:"w:left,omitempty"`
	Bottom  *WTableBorder `xml:"w:bottom,omitempty"`
	Right   *WTableBorder `xml:"w:right,omitempty"`
	InsideH *WTableBorder `xml:"w:insideH,omitempty"`
	InsideV *WTableBorder `xml:"w:insideV,omitempty"`
}

// WTableBorder is one border edge; Size is in eighths of a point.
type WTableBorder struct {
	Val   string `xml:"w:val,attr"`
	Size  int    `xml:"w:sz,attr"`
	Space int    `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}

// UnmarshalXML reads the border attributes by local name regardless of
// which edge element (w:top, w:left, ...) carries them.
func (b *WTableBorder) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	b.Val = strAttr(start, "val")
	b.Size = intAttr(start, "sz")
	b.Space = intAttr(start, "space")
	b.Color = strAttr(start, "color")
	return d.Skip()
}

// TableGrid is w:tblGrid.
type TableGrid struct {
	XMLName  xml.Name   `xml:"w:tblGrid"`
	GridCols []*GridCol `xml:"w:gridCol"`
}

// GridCol is one w:gridCol column width in twips.
type GridCol struct {
	W int64 `xml:"w:w,attr"`
}

// WTableRow is one w:tr element.
type WTableRow struct {
	XMLName    xml.Name      `xml:"w:tr"`
	TableCells []*WTableCell `xml:"w:tc"`

	file *Docx
}

// WTableCell is one w:tc element owning its own paragraphs.
type WTableCell struct {
	XMLName    xml.Name     `xml:"w:tc"`
	Paragraphs []*Paragraph `xml:"w:p"`

	file *Docx
}

// AddParagraph appends a paragraph to the cell.
func (c *WTableCell) AddParagraph() *Paragraph {
	p := &Paragraph{file: c.file}
	c.Paragraphs = append(c.Paragraphs, p)
	return p
}

// TableBorderColors overrides the edge colors of a new table; empty
// fields keep the default automatic color.
type TableBorderColors struct {
	Top     string
	Left    string
	Bottom  string
	Right   string
	InsideH string
	InsideV string
}

func borderOf(color string) *WTableBorder {
	if color == "" {
		color = "auto"
	}
	return &WTableBorder{Val: "single", Size: 4, Space: 0, Color: color}
}

// AddTable appends a rows x cols table of the given total width in
// twips, with single borders on every edge.
func (f *Docx) AddTable(rows, cols int, width int64, borderColors *TableBorderColors) *Table {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	if width <= 0 {
		width = 9026
	}
	bc := TableBorderColors{}
	if borderColors != nil {
		bc = *borderColors
	}

	grid := &TableGrid{}
	colWidth := width / int64(cols)
	for i := 0; i < cols; i++ {
		grid.GridCols = append(grid.GridCols, &GridCol{W: colWidth})
	}

	t := &Table{
		TableProperties: &TableProperties{
			Width: &WTableWidth{W: width, Type: "dxa"},
			Borders: &TableBorders{
				Top:     borderOf(bc.Top),
				Left:    borderOf(bc.Left),
				Bottom:  borderOf(bc.Bottom),
				Right:   borderOf(bc.Right),
				InsideH: borderOf(bc.InsideH),
				InsideV: borderOf(bc.InsideV),
			},
		},
		TableGrid: grid,
		file:      f,
	}
	for i := 0; i < rows; i++ {
		row := &WTableRow{file: f}
		for j := 0; j < cols; j++ {
			row.TableCells = append(row.TableCells, &WTableCell{file: f})
		}
		t.TableRows = append(t.TableRows, row)
	}
	f.Document.Body.Items = append(f.Document.Body.Items, t)
	return t
}

// UnmarshalXML rebuilds the table from local element names.
func (t *Table) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "tr":
				row := &WTableRow{}
				if err := row.unmarshalChildren(d, el); err != nil {
					return err
				}
				t.TableRows = append(t.TableRows, row)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if el.Name.Local == start.Name.Local {
				return nil
			}
		}
	}
}

func (r *WTableRow) unmarshalChildren(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "tc":
				cell := &WTableCell{}
				if err := cell.unmarshalChildren(d, el); err != nil {
					return err
				}
				r.TableCells = append(r.TableCells, cell)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if el.Name.Local == start.Name.Local {
				return nil
			}
		}
	}
}

func (c *WTableCell) unmarshalChildren(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "p":
				p := &Paragraph{}
				if err := p.UnmarshalXML(d, el); err != nil {
					return err
				}
				c.Paragraphs = append(c.Paragraphs, p)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if el.Name.Local == start.Name.Local {
				return nil
			}
		}
	}
}

func (t *Table) attachFile(f *Docx) {
	t.file = f
	for _, row := range t.TableRows {
		row.file = f
		for _, cell := range row.TableCells {
			cell.file = f
			for _, p := range cell.Paragraphs {
				p.attachFile(f)
			}
		}
	}
}
