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

package registry

import (
	"fmt"
	"regexp"
	"testing"
)

func TestIDGeneratorNeverRepeats(t *testing.T) {
	g := NewIDGenerator()
	seen := make(map[string]bool)
	nexts := []func() string{
		g.NextParagraphID, g.NextRunID, g.NextTableID, g.NextRowID,
		g.NextCellID, g.NextImageID, g.NextShapeID, g.NextRelID,
		g.NextBookmarkID, g.NextCommentID, g.NextFootnoteID, g.NextEndnoteID,
	}
	for round := 0; round < 200; round++ {
		for _, next := range nexts {
			id := next()
			if seen[id] {
				t.Fatalf("duplicate ID %q", id)
			}
			seen[id] = true
		}
	}
}

func TestRelationshipIDsUniqueAndResolvable(t *testing.T) {
	rm := NewRelationshipManager(NewIDGenerator())
	ids := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, err := rm.AddImage(fmt.Sprintf("media/image%d.png", i))
		if err != nil {
			t.Fatal(err)
		}
		if ids[id] {
			t.Fatalf("duplicate relationship ID %q", id)
		}
		ids[id] = true
		if _, err := rm.Get(id); err != nil {
			t.Fatalf("relationship %q does not resolve: %v", id, err)
		}
	}
	if rm.Count() != 50 {
		t.Fatalf("Count = %d, want 50", rm.Count())
	}
}

func TestReserveWellKnownOrder(t *testing.T) {
	rm := NewRelationshipManager(NewIDGenerator())
	if err := rm.ReserveWellKnown(); err != nil {
		t.Fatal(err)
	}
	wantTargets := []string{
		"styles.xml", "settings.xml", "webSettings.xml",
		"fontTable.xml", "numbering.xml",
	}
	for i, target := range wantTargets {
		id := fmt.Sprintf("rId%d", i+1)
		rel, err := rm.Get(id)
		if err != nil {
			t.Fatalf("%s not reserved: %v", id, err)
		}
		if rel.Target != target {
			t.Fatalf("%s targets %q, want %q", id, rel.Target, target)
		}
	}
}

func TestRegisterExistingAvoidsCollisions(t *testing.T) {
	rm := NewRelationshipManager(NewIDGenerator())
	if err := rm.RegisterExisting("rId7", "type", "target7.xml", ""); err != nil {
		t.Fatal(err)
	}
	// Generated IDs must skip past the registered one.
	for i := 0; i < 10; i++ {
		id, err := rm.Add("type", fmt.Sprintf("t%d.xml", i), "")
		if err != nil {
			t.Fatal(err)
		}
		if id == "rId7" {
			t.Fatal("generated relationship ID collided with a registered one")
		}
	}
}

func TestEntropyDeterministicWithSeed(t *testing.T) {
	a := NewEntropy(42)
	b := NewEntropy(42)
	for i := 0; i < 5; i++ {
		if ga, gb := a.GUID(), b.GUID(); ga != gb {
			t.Fatalf("same seed diverged: %s vs %s", ga, gb)
		}
	}
	if NewEntropy(1).RSID() == NewEntropy(2).RSID() {
		t.Fatal("different seeds should diverge")
	}
}

func TestEntropyShapes(t *testing.T) {
	e := NewEntropy(7)

	guidRe := regexp.MustCompile(`^\{[0-9A-F]{8}-[0-9A-F]{4}-4[0-9A-F]{3}-[89AB][0-9A-F]{3}-[0-9A-F]{12}\}$`)
	for i := 0; i < 20; i++ {
		if g := e.GUID(); !guidRe.MatchString(g) {
			t.Fatalf("malformed GUID %q", g)
		}
	}

	rsidRe := regexp.MustCompile(`^[0-9A-F]{8}$`)
	for i := 0; i < 20; i++ {
		if r := e.RSID(); !rsidRe.MatchString(r) {
			t.Fatalf("malformed RSID %q", r)
		}
	}

	raw := e.RawGUIDBytes()
	if raw[6]>>4 != 4 {
		t.Fatalf("raw GUID version nibble = %x, want 4", raw[6]>>4)
	}
	if raw[8]&0xC0 != 0x80 {
		t.Fatalf("raw GUID variant bits = %x, want 10xxxxxx", raw[8])
	}
}

func TestDocumentIDShapeAndCollisionRetry(t *testing.T) {
	e := NewEntropy(99)
	docIDRe := regexp.MustCompile(`^[0-9A-F]{8}$`)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := e.DocumentID()
		if !docIDRe.MatchString(id) {
			t.Fatalf("malformed document ID %q", id)
		}
		if seen[id] {
			t.Fatalf("document ID %q handed out twice", id)
		}
		seen[id] = true
	}

	// Same seed replays the same candidate sequence; the second
	// generator's first candidate collides with nothing of its own, so
	// determinism holds.
	if NewEntropy(99).DocumentID() == NewEntropy(100).DocumentID() {
		t.Fatal("different seeds should diverge")
	}
}

func TestReserveNotesFollowWellKnown(t *testing.T) {
	rm := NewRelationshipManager(NewIDGenerator())
	if err := rm.ReserveWellKnown(); err != nil {
		t.Fatal(err)
	}
	if err := rm.ReserveNotes(true, true); err != nil {
		t.Fatal(err)
	}
	fn, err := rm.Get("rId6")
	if err != nil || fn.Target != "footnotes.xml" {
		t.Fatalf("rId6 = %+v, %v; want footnotes.xml", fn, err)
	}
	en, err := rm.Get("rId7")
	if err != nil || en.Target != "endnotes.xml" {
		t.Fatalf("rId7 = %+v, %v; want endnotes.xml", en, err)
	}
}

func TestNumberingPool(t *testing.T) {
	p := NewNumberingPool()

	if !p.Reserve(5) {
		t.Fatal("first Reserve(5) should succeed")
	}
	if p.Reserve(5) {
		t.Fatal("second Reserve(5) should fail")
	}

	seen := map[int]bool{5: true}
	for i := 0; i < 10; i++ {
		id := p.Next()
		if id == 0 {
			t.Fatal("Next must never return 0")
		}
		if seen[id] {
			t.Fatalf("Next returned taken ID %d", id)
		}
		seen[id] = true
	}

	p.Release(5)
	if !p.Reserve(5) {
		t.Fatal("Reserve(5) after Release(5) should succeed")
	}
}
