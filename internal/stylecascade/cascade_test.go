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

import "testing"

func boolPtr(b bool) *bool       { return &b }
func strPtr(s string) *string    { return &s }
func intPtr(n int) *int          { return &n }

func TestMergeIsRightBiased(t *testing.T) {
	base := PropertySet{Bold: boolPtr(true), Color: strPtr("FF0000"), SizeHalfPoints: intPtr(20)}
	over := PropertySet{Bold: boolPtr(false), Color: strPtr("0000FF")}

	merged := Merge(base, over)
	if *merged.Bold {
		t.Fatal("later layer's Bold=false must win")
	}
	if *merged.Color != "0000FF" {
		t.Fatalf("color %q, want 0000FF", *merged.Color)
	}
	// Unset fields inherit from the earlier layer.
	if merged.SizeHalfPoints == nil || *merged.SizeHalfPoints != 20 {
		t.Fatal("size should inherit from the base layer")
	}
}

func TestChainFollowsBasedOn(t *testing.T) {
	sheet := NewSheet([]*StyleDef{
		{ID: "Normal", Type: "paragraph", Run: PropertySet{
			FontASCII: strPtr("Calibri"), SizeHalfPoints: intPtr(22),
		}},
		{ID: "Heading1", Type: "paragraph", BasedOn: "Normal", Run: PropertySet{
			Bold: boolPtr(true), SizeHalfPoints: intPtr(32),
		}},
	})

	ps := sheet.EffectiveRun("Heading1", "")
	if ps.Bold == nil || !*ps.Bold {
		t.Fatal("Heading1 should contribute bold")
	}
	if *ps.SizeHalfPoints != 32 {
		t.Fatalf("derived size %d should override base, want 32", *ps.SizeHalfPoints)
	}
	if ps.FontASCII == nil || *ps.FontASCII != "Calibri" {
		t.Fatal("font should inherit through basedOn")
	}
}

func TestEffectiveRunCharacterStyleWins(t *testing.T) {
	sheet := NewSheet([]*StyleDef{
		{ID: "Body", Type: "paragraph", Run: PropertySet{
			Color: strPtr("333333"), Italic: boolPtr(false),
		}},
		{ID: "Emphasis", Type: "character", Run: PropertySet{
			Italic: boolPtr(true), Color: strPtr("FF0000"),
		}},
	})

	ps := sheet.EffectiveRun("Body", "Emphasis")
	if ps.Italic == nil || !*ps.Italic {
		t.Fatal("character style italic must override the paragraph style")
	}
	if *ps.Color != "FF0000" {
		t.Fatalf("color %q, want the character style's FF0000", *ps.Color)
	}
}

func TestEffectiveRunFollowsLinkedPair(t *testing.T) {
	sheet := NewSheet([]*StyleDef{
		{ID: "Quote", Type: "paragraph", Link: "QuoteChar", Run: PropertySet{
			Italic: boolPtr(true),
		}},
		{ID: "QuoteChar", Type: "character", Run: PropertySet{
			Color: strPtr("666666"),
		}},
	})

	ps := sheet.EffectiveRun("Quote", "")
	if ps.Italic == nil || !*ps.Italic {
		t.Fatal("paragraph style properties missing")
	}
	if ps.Color == nil || *ps.Color != "666666" {
		t.Fatal("linked character partner's properties missing")
	}
}

func TestChainSurvivesCycles(t *testing.T) {
	sheet := NewSheet([]*StyleDef{
		{ID: "A", BasedOn: "B", Run: PropertySet{Bold: boolPtr(true)}},
		{ID: "B", BasedOn: "A", Run: PropertySet{Italic: boolPtr(true)}},
	})
	ps := sheet.EffectiveRun("A", "")
	if ps.Bold == nil || ps.Italic == nil {
		t.Fatal("cyclic basedOn should still merge both definitions once")
	}
}

func TestResolveThemeColor(t *testing.T) {
	palette := map[string]string{"accent1": "4472C4"}

	hex, ok := ResolveThemeColor(palette, "accent1", 0, 0)
	if !ok || hex != "4472C4" {
		t.Fatalf("plain accent1 = %q, %v", hex, ok)
	}

	// Full tint blends all the way to white, full shade to black.
	if hex, _ := ResolveThemeColor(palette, "accent1", 255, 0); hex != "FFFFFF" {
		t.Fatalf("full tint = %q, want FFFFFF", hex)
	}
	if hex, _ := ResolveThemeColor(palette, "accent1", 0, 255); hex != "000000" {
		t.Fatalf("full shade = %q, want 000000", hex)
	}

	if _, ok := ResolveThemeColor(palette, "accent9", 0, 0); ok {
		t.Fatal("unknown theme color must not resolve")
	}
}
