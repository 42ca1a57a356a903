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

package stylecascade

import (
	pkgcolor "github.com/wordengine/docflow/pkg/color"
)

// PropertySet is a partial run-formatting record: every field is a
// pointer, nil meaning "inherit". Merging property sets is a
// right-biased fold — later layers override earlier ones field by
// field, which is exactly the paragraph-style -> character-style ->
// direct-formatting precedence a reader resolves.
type PropertySet struct {
	Bold   *bool
	Italic *bool
	Strike *bool

	Underline *string // w:u val; "none" is a value, not inheritance

	Color          *string // resolved 6-hex
	Highlight      *string
	SizeHalfPoints *int

	FontASCII    *string
	FontHAnsi    *string
	FontEastAsia *string
	FontCS       *string
	FontHint     *string
}

// Merge folds layers left to right, later layers winning per field.
// A nil field inherits; a set field overrides. "auto" colors are
// normalized to inheritance before they reach a PropertySet, so no
// special-casing happens here.
func Merge(layers ...PropertySet) PropertySet {
	var out PropertySet
	for _, l := range layers {
		if l.Bold != nil {
			out.Bold = l.Bold
		}
		if l.Italic != nil {
			out.Italic = l.Italic
		}
		if l.Strike != nil {
			out.Strike = l.Strike
		}
		if l.Underline != nil {
			out.Underline = l.Underline
		}
		if l.Color != nil {
			out.Color = l.Color
		}
		if l.Highlight != nil {
			out.Highlight = l.Highlight
		}
		if l.SizeHalfPoints != nil {
			out.SizeHalfPoints = l.SizeHalfPoints
		}
		if l.FontASCII != nil {
			out.FontASCII = l.FontASCII
		}
		if l.FontHAnsi != nil {
			out.FontHAnsi = l.FontHAnsi
		}
		if l.FontEastAsia != nil {
			out.FontEastAsia = l.FontEastAsia
		}
		if l.FontCS != nil {
			out.FontCS = l.FontCS
		}
		if l.FontHint != nil {
			out.FontHint = l.FontHint
		}
	}
	return out
}

// StyleDef is one style definition as parsed from word/styles.xml:
// its identity, its basedOn parent, its linked partner, and the run
// properties it contributes to the cascade.
type StyleDef struct {
	ID      string
	Type    string // "paragraph" | "character" | "table" | "numbering"
	BasedOn string
	Link    string

	Run PropertySet
}

// Sheet is the resolved style table of one document: definitions
// keyed by style ID, ready to answer cascade queries.
type Sheet struct {
	styles map[string]*StyleDef
}

// NewSheet builds a Sheet from parsed definitions.
func NewSheet(defs []*StyleDef) *Sheet {
	s := &Sheet{styles: make(map[string]*StyleDef, len(defs))}
	for _, d := range defs {
		if d != nil && d.ID != "" {
			s.styles[d.ID] = d
		}
	}
	return s
}

// Lookup returns the definition for a style ID.
func (s *Sheet) Lookup(id string) (*StyleDef, bool) {
	d, ok := s.styles[id]
	return d, ok
}

// chain folds a style's basedOn ancestry, most-derived last, so a
// child's explicit values override its parents'. A cycle or a chain
// longer than the guard is cut off rather than looping.
func (s *Sheet) chain(id string) PropertySet {
	var lineage []*StyleDef
	seen := map[string]bool{}
	for id != "" && !seen[id] && len(lineage) < 16 {
		seen[id] = true
		def, ok := s.styles[id]
		if !ok {
			break
		}
		lineage = append(lineage, def)
		id = def.BasedOn
	}

	layers := make([]PropertySet, 0, len(lineage))
	for i := len(lineage) - 1; i >= 0; i-- {
		layers = append(layers, lineage[i].Run)
	}
	return Merge(layers...)
}

// EffectiveRun resolves the style-derived layer of a run's cascade:
// the paragraph style's chain first (following a linked character
// partner when the paragraph style declares one), then the run's own
// character style chain on top. The caller applies direct formatting
// last — the full precedence order of a read.
func (s *Sheet) EffectiveRun(paragraphStyleID, runStyleID string) PropertySet {
	var layers []PropertySet
	if paragraphStyleID != "" {
		layers = append(layers, s.chain(paragraphStyleID))
		if def, ok := s.styles[paragraphStyleID]; ok && def.Link != "" {
			layers = append(layers, s.chain(def.Link))
		}
	}
	if runStyleID != "" {
		layers = append(layers, s.chain(runStyleID))
	}
	return Merge(layers...)
}

// ResolveThemeColor turns a theme color reference into a concrete
// 6-hex value: look the name up in the palette, then apply the
// optional tint (blend toward white) or shade (blend toward black).
// ok is false when the palette does not define the name.
func ResolveThemeColor(palette map[string]string, name string, tint, shade uint8) (string, bool) {
	hex, ok := palette[name]
	if !ok || hex == "" {
		return "", false
	}
	c, err := pkgcolor.FromHex(hex)
	if err != nil {
		return "", false
	}
	if tint > 0 {
		c = pkgcolor.Tint(c, tint)
	} else if shade > 0 {
		c = pkgcolor.Shade(c, shade)
	}
	return pkgcolor.ToHex(c), true
}
