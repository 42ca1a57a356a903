/*
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

package core

import (
	gox "encoding/xml"
	"fmt"
	"sort"

	"github.com/wordengine/docflow/domain"
	xmlstructs "github.com/wordengine/docflow/internal/xml"
)

// NumberingLevelDef describes one level of a synthesized numbering
// definition.
type NumberingLevelDef struct {
	Format       string // w:numFmt val: decimal, bullet, lowerLetter, ...
	Text         string // w:lvlText val, e.g. "%1." or a bullet glyph
	IndentTwips  int
	HangingTwips int
	Start        int
}

// NumberingDefinition is one list's numbering template: a numId, its
// nine levels, and optional per-level start overrides carrying list
// continuity across interruptions.
type NumberingDefinition struct {
	NumID          int
	Levels         []NumberingLevelDef // index = ilvl; missing levels get defaults
	StartOverrides map[int]int         // ilvl -> startOverride
}

// SetNumberingDefinition registers (or replaces) the template behind a
// numId so the writer can synthesize word/numbering.xml.
func (d *document) SetNumberingDefinition(def NumberingDefinition) {
	if d.numberingDefs == nil {
		d.numberingDefs = map[int]NumberingDefinition{}
	}
	d.numberingDefs[def.NumID] = def
}

// defaultLevel fills one synthesized level: decimal "%N." markers with
// the standard 720-twip-per-level indent and 360-twip hanging marker.
func defaultLevel(ilvl int) NumberingLevelDef {
	return NumberingLevelDef{
		Format:       "decimal",
		Text:         fmt.Sprintf("%%%d.", ilvl+1),
		IndentTwips:  720 * (ilvl + 1),
		HangingTwips: 360,
		Start:        1,
	}
}

// usedNumberingIDs collects every numId referenced by a paragraph in
// the body, headers, footers, notes and table cells.
func (d *document) usedNumberingIDs() []int {
	seen := map[int]bool{}
	var visitParas func(paras []domain.Paragraph)
	visitParas = func(paras []domain.Paragraph) {
		for _, para := range paras {
			if para == nil {
				continue
			}
			if ref, ok := para.Numbering(); ok && ref.ID != 0 {
				seen[ref.ID] = true
			}
		}
	}
	visitParas(d.paragraphs)

	var visitTable func(t domain.Table)
	visitTable = func(t domain.Table) {
		for _, row := range t.Rows() {
			for _, cell := range row.Cells() {
				visitParas(cell.Paragraphs())
				for _, nested := range cell.Tables() {
					visitTable(nested)
				}
			}
		}
	}
	for _, t := range d.tables {
		visitTable(t)
	}

	for _, def := range d.footnotes {
		visitParas(def.paragraphs)
	}
	for _, def := range d.endnotes {
		visitParas(def.paragraphs)
	}

	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// synthesizeNumberingPart builds word/numbering.xml from the
// registered definitions plus a default decimal template for any
// numId paragraphs reference without one: one abstract definition per
// distinct numId, nine levels each, and a w:num binding carrying the
// start-index overrides.
func (d *document) synthesizeNumberingPart() ([]byte, error) {
	ids := d.usedNumberingIDs()
	for id := range d.numberingDefs {
		found := false
		for _, existing := range ids {
			if existing == id {
				found = true
				break
			}
		}
		if !found {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	numbering := &xmlstructs.Numbering{
		Xmlns: "http://schemas.openxmlformats.org/wordprocessingml/2006/main",
	}

	for abstractID, numID := range ids {
		def, hasDef := d.numberingDefs[numID]

		abstract := &xmlstructs.AbstractNum{
			AbstractID: abstractID,
			MultiLevel: &xmlstructs.ValStr{Val: "multilevel"},
		}
		for ilvl := 0; ilvl < 9; ilvl++ {
			lvl := defaultLevel(ilvl)
			if hasDef && ilvl < len(def.Levels) {
				declared := def.Levels[ilvl]
				if declared.Format != "" {
					lvl.Format = declared.Format
				}
				if declared.Text != "" {
					lvl.Text = declared.Text
				}
				if declared.IndentTwips > 0 {
					lvl.IndentTwips = declared.IndentTwips
				}
				if declared.HangingTwips > 0 {
					lvl.HangingTwips = declared.HangingTwips
				}
				if declared.Start > 0 {
					lvl.Start = declared.Start
				}
			}
			abstract.Levels = append(abstract.Levels, &xmlstructs.Lvl{
				ILvl:    ilvl,
				Start:   &xmlstructs.ValInt{Val: lvl.Start},
				NumFmt:  &xmlstructs.ValStr{Val: lvl.Format},
				LvlText: &xmlstructs.ValStr{Val: lvl.Text},
				LvlJc:   &xmlstructs.ValStr{Val: "left"},
				PPr: &xmlstructs.ParagraphProperties{
					Indentation: &xmlstructs.Indentation{
						Left:    &lvl.IndentTwips,
						Hanging: &lvl.HangingTwips,
					},
				},
			})
		}
		numbering.AbstractNums = append(numbering.AbstractNums, abstract)

		num := &xmlstructs.Num{
			NumID:         numID,
			AbstractNumID: &xmlstructs.ValInt{Val: abstractID},
		}
		if hasDef && len(def.StartOverrides) > 0 {
			lvls := make([]int, 0, len(def.StartOverrides))
			for ilvl := range def.StartOverrides {
				lvls = append(lvls, ilvl)
			}
			sort.Ints(lvls)
			for _, ilvl := range lvls {
				num.LvlOverrides = append(num.LvlOverrides, &xmlstructs.LvlOverride{
					ILvl:          ilvl,
					StartOverride: &xmlstructs.ValInt{Val: def.StartOverrides[ilvl]},
				})
			}
		}
		numbering.Nums = append(numbering.Nums, num)
	}

	body, err := gox.Marshal(numbering)
	if err != nil {
		return nil, err
	}
	return append([]byte(gox.Header), body...), nil
}
