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
	"github.com/wordengine/docflow/domain"
)

// noteDef is one footnote or endnote definition: its integer ID and
// the paragraphs making up its body.
type noteDef struct {
	id         int
	paragraphs []domain.Paragraph
}

// AddFootnote creates a footnote definition and returns its ID plus
// the first body paragraph. Content IDs start at 2; 0 and 1 belong to
// the part's separator boilerplate.
func (d *document) AddFootnote() (int, domain.Paragraph, error) {
	id := d.nextFootnoteID
	d.nextFootnoteID++
	para := NewParagraph(d.idGen.NextParagraphID(), d.idGen, d.relManager)
	d.footnotes = append(d.footnotes, &noteDef{id: id, paragraphs: []domain.Paragraph{para}})
	return id, para, nil
}

// AddEndnote creates an endnote definition, mirrored from AddFootnote.
func (d *document) AddEndnote() (int, domain.Paragraph, error) {
	id := d.nextEndnoteID
	d.nextEndnoteID++
	para := NewParagraph(d.idGen.NextParagraphID(), d.idGen, d.relManager)
	d.endnotes = append(d.endnotes, &noteDef{id: id, paragraphs: []domain.Paragraph{para}})
	return id, para, nil
}

// AddFootnoteParagraph appends a paragraph to the footnote with the
// given ID, creating the definition on first use — the reader's path
// for rehydrating notes under their original IDs.
func (d *document) AddFootnoteParagraph(id int) (domain.Paragraph, error) {
	para := NewParagraph(d.idGen.NextParagraphID(), d.idGen, d.relManager)
	for _, def := range d.footnotes {
		if def.id == id {
			def.paragraphs = append(def.paragraphs, para)
			return para, nil
		}
	}
	d.footnotes = append(d.footnotes, &noteDef{id: id, paragraphs: []domain.Paragraph{para}})
	if id >= d.nextFootnoteID {
		d.nextFootnoteID = id + 1
	}
	return para, nil
}

// AddEndnoteParagraph mirrors AddFootnoteParagraph for endnotes.
func (d *document) AddEndnoteParagraph(id int) (domain.Paragraph, error) {
	para := NewParagraph(d.idGen.NextParagraphID(), d.idGen, d.relManager)
	for _, def := range d.endnotes {
		if def.id == id {
			def.paragraphs = append(def.paragraphs, para)
			return para, nil
		}
	}
	d.endnotes = append(d.endnotes, &noteDef{id: id, paragraphs: []domain.Paragraph{para}})
	if id >= d.nextEndnoteID {
		d.nextEndnoteID = id + 1
	}
	return para, nil
}

// FootnoteParagraphs exposes the footnote bodies keyed by note ID for
// part serialization.
func (d *document) FootnoteParagraphs() map[int][]domain.Paragraph {
	return noteMap(d.footnotes)
}

// EndnoteParagraphs exposes the endnote bodies keyed by note ID.
func (d *document) EndnoteParagraphs() map[int][]domain.Paragraph {
	return noteMap(d.endnotes)
}

func noteMap(defs []*noteDef) map[int][]domain.Paragraph {
	if len(defs) == 0 {
		return nil
	}
	out := make(map[int][]domain.Paragraph, len(defs))
	for _, def := range defs {
		out[def.id] = def.paragraphs
	}
	return out
}
