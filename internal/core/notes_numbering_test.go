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
	"archive/zip"
	"bytes"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/wordengine/docflow/domain"
)

func packageParts(t *testing.T, doc domain.Document) map[string]string {
	t.Helper()
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("not a valid zip: %v", err)
	}
	parts := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		parts[f.Name] = string(data)
	}
	return parts
}

func TestFootnoteAndEndnoteEmission(t *testing.T) {
	doc := NewDocumentWithSeed(1)

	noter, ok := doc.(interface {
		AddFootnote() (int, domain.Paragraph, error)
		AddEndnote() (int, domain.Paragraph, error)
	})
	if !ok {
		t.Fatal("document does not support notes")
	}

	fnID, fnPara, err := noter.AddFootnote()
	if err != nil {
		t.Fatal(err)
	}
	fnRun, err := fnPara.AddRun()
	if err != nil {
		t.Fatal(err)
	}
	if err := fnRun.SetText("footnote body"); err != nil {
		t.Fatal(err)
	}

	enID, enPara, err := noter.AddEndnote()
	if err != nil {
		t.Fatal(err)
	}
	enRun, err := enPara.AddRun()
	if err != nil {
		t.Fatal(err)
	}
	if err := enRun.SetText("endnote body"); err != nil {
		t.Fatal(err)
	}

	para, err := doc.AddParagraph()
	if err != nil {
		t.Fatal(err)
	}
	run, err := para.AddRun()
	if err != nil {
		t.Fatal(err)
	}
	if err := run.SetText("body"); err != nil {
		t.Fatal(err)
	}
	run.(interface{ AddFootnoteReference(int) }).AddFootnoteReference(fnID)

	run2, err := para.AddRun()
	if err != nil {
		t.Fatal(err)
	}
	run2.(interface{ AddEndnoteReference(int) }).AddEndnoteReference(enID)

	parts := packageParts(t, doc)

	footnotes, ok := parts["word/footnotes.xml"]
	if !ok {
		t.Fatal("word/footnotes.xml not written")
	}
	if !strings.Contains(footnotes, "footnote body") {
		t.Fatal("footnote body missing from footnotes part")
	}
	if !strings.Contains(footnotes, `w:type="separator"`) {
		t.Fatal("footnotes part missing separator boilerplate")
	}
	if fnID != 2 {
		t.Fatalf("first content footnote ID = %d, want 2 (0 and 1 are boilerplate)", fnID)
	}

	endnotes, ok := parts["word/endnotes.xml"]
	if !ok {
		t.Fatal("word/endnotes.xml not written")
	}
	if !strings.Contains(endnotes, "endnote body") {
		t.Fatal("endnote body missing from endnotes part")
	}

	docXML := parts["word/document.xml"]
	if !strings.Contains(docXML, "w:footnoteReference") || !strings.Contains(docXML, "w:endnoteReference") {
		t.Fatal("note references missing from document body")
	}

	rels := parts["word/_rels/document.xml.rels"]
	if !strings.Contains(rels, `Target="footnotes.xml"`) || !strings.Contains(rels, `Target="endnotes.xml"`) {
		t.Fatal("note relationships missing")
	}

	ct := parts["[Content_Types].xml"]
	if !strings.Contains(ct, "footnotes+xml") || !strings.Contains(ct, "endnotes+xml") {
		t.Fatal("note content types missing")
	}
}

// Nested list at levels {0, 0, 1, 1, 2, 0} under numId=1: the
// synthesized numbering part defines abstractNumId=0 with nine levels
// and binds numId 1 to it; each paragraph carries its ilvl.
func TestNumberingSynthesisForNestedList(t *testing.T) {
	doc := NewDocumentWithSeed(1)
	levels := []int{0, 0, 1, 1, 2, 0}
	for i, lvl := range levels {
		para, err := doc.AddParagraph()
		if err != nil {
			t.Fatal(err)
		}
		if err := para.SetNumbering(domain.NumberingReference{ID: 1, Level: lvl}); err != nil {
			t.Fatal(err)
		}
		run, err := para.AddRun()
		if err != nil {
			t.Fatal(err)
		}
		if err := run.SetText(strings.Repeat("x", i+1)); err != nil {
			t.Fatal(err)
		}
	}

	parts := packageParts(t, doc)

	numbering, ok := parts["word/numbering.xml"]
	if !ok {
		t.Fatal("word/numbering.xml was not synthesized")
	}
	if !strings.Contains(numbering, `w:abstractNumId="0"`) {
		t.Fatal("abstract definition 0 missing")
	}
	if got := strings.Count(numbering, "<w:lvl "); got != 9 {
		t.Fatalf("abstract definition has %d levels, want 9", got)
	}
	if !strings.Contains(numbering, `w:numId="1"`) {
		t.Fatal("num binding for numId=1 missing")
	}

	docXML := parts["word/document.xml"]
	if !strings.Contains(docXML, `<w:ilvl w:val="2">`) && !strings.Contains(docXML, `<w:ilvl w:val="2"/>`) {
		t.Fatal("level-2 item lost its ilvl")
	}
	if strings.Count(docXML, `w:numId`) < len(levels) {
		t.Fatal("not every list paragraph carries its numId")
	}

	ct := parts["[Content_Types].xml"]
	if !strings.Contains(ct, "numbering+xml") {
		t.Fatal("numbering content type missing")
	}
	rels := parts["word/_rels/document.xml.rels"]
	if !strings.Contains(rels, `Target="numbering.xml"`) {
		t.Fatal("numbering relationship missing")
	}
}

// Start-index overrides registered with a numbering definition land on
// the w:num binding, carrying list continuity.
func TestNumberingStartOverride(t *testing.T) {
	doc := NewDocumentWithSeed(1)
	para, err := doc.AddParagraph()
	if err != nil {
		t.Fatal(err)
	}
	if err := para.SetNumbering(domain.NumberingReference{ID: 2, Level: 0}); err != nil {
		t.Fatal(err)
	}

	doc.(interface{ SetNumberingDefinition(NumberingDefinition) }).SetNumberingDefinition(NumberingDefinition{
		NumID:          2,
		StartOverrides: map[int]int{0: 4},
	})

	parts := packageParts(t, doc)
	numbering := parts["word/numbering.xml"]
	if !strings.Contains(numbering, "w:lvlOverride") || !strings.Contains(numbering, `w:startOverride`) {
		t.Fatal("start override missing from num binding")
	}
	if !strings.Contains(numbering, `w:val="4"`) {
		t.Fatal("override start value missing")
	}
}

func TestSettingsCarryDocumentIdentity(t *testing.T) {
	doc := NewDocumentWithSeed(7)
	parts := packageParts(t, doc)

	settings := parts["word/settings.xml"]
	docIDRe := regexp.MustCompile(`w15:docId w15:val="[0-9A-F]{8}"`)
	if !docIDRe.MatchString(settings) {
		t.Fatalf("settings.xml missing 8-hex document ID: %s", settings)
	}
	rsidRe := regexp.MustCompile(`<w:rsid w:val="[0-9A-F]{8}"/>`)
	if !rsidRe.MatchString(settings) {
		t.Fatal("settings.xml missing revision-save ID")
	}

	// The document ID is stable across saves; every save appends one
	// more RSID.
	parts2 := packageParts(t, doc)
	first := docIDRe.FindString(settings)
	second := docIDRe.FindString(parts2["word/settings.xml"])
	if first != second {
		t.Fatalf("document ID changed between saves: %q vs %q", first, second)
	}
	if c1, c2 := strings.Count(settings, "<w:rsid "), strings.Count(parts2["word/settings.xml"], "<w:rsid "); c2 != c1+1 {
		t.Fatalf("second save should append one RSID: %d then %d", c1, c2)
	}

	// Same seed, same identity.
	again := packageParts(t, NewDocumentWithSeed(7))
	if docIDRe.FindString(again["word/settings.xml"]) != first {
		t.Fatal("seeded document ID is not reproducible")
	}
}
