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
	"io"
	"os"
	"time"

	"github.com/wordengine/docflow/domain"
	"github.com/wordengine/docflow/internal/fontobfuscate"
	"github.com/wordengine/docflow/internal/media"
	"github.com/wordengine/docflow/internal/registry"
	"github.com/wordengine/docflow/internal/serializer"
	"github.com/wordengine/docflow/internal/writer"
	"github.com/wordengine/docflow/pkg/constants"
	"github.com/wordengine/docflow/pkg/errors"
)

// document implements the domain.Document interface.
type document struct {
	paragraphs   []domain.Paragraph
	tables       []domain.Table
	sections     []domain.Section
	blocks       []domain.Block
	numberingPart   []byte
	numberingTarget string
	numberingDefs   map[int]NumberingDefinition

	footnotes      []*noteDef
	endnotes       []*noteDef
	nextFootnoteID int
	nextEndnoteID  int

	docID string
	rsids []string

	metadata     *domain.Metadata
	idGen        *registry.IDGenerator
	relManager   *registry.RelationshipManager
	mediaManager *media.Manager
	fontManager  *fontobfuscate.Manager
	entropy      *registry.Entropy
}

// NewDocument creates a new Document with a time-seeded entropy
// source; use NewDocumentWithSeed for reproducible output.
func NewDocument() domain.Document {
	return NewDocumentWithSeed(time.Now().UnixNano())
}

// NewDocumentWithSeed creates a new Document whose document ID, RSIDs
// and font-obfuscation GUIDs all come from one entropy source seeded
// with seed, so two runs with the same seed produce identical
// packages.
func NewDocumentWithSeed(seed int64) domain.Document {
	idGen := registry.NewIDGenerator()
	entropy := registry.NewEntropy(seed)
	return &document{
		paragraphs:     make([]domain.Paragraph, 0, constants.DefaultParagraphCapacity),
		tables:         make([]domain.Table, 0, constants.DefaultTableCapacity),
		sections:       make([]domain.Section, 0, 1),
		metadata:       &domain.Metadata{},
		idGen:          idGen,
		relManager:     registry.NewRelationshipManager(idGen),
		mediaManager:   media.NewManager(idGen),
		fontManager:    fontobfuscate.NewManager(entropy),
		entropy:        entropy,
		docID:          entropy.DocumentID(),
		nextFootnoteID: 2,
		nextEndnoteID:  2,
	}
}

// AddParagraph adds a new paragraph to the document.
func (d *document) AddParagraph() (domain.Paragraph, error) {
	id := d.idGen.NextParagraphID()
	para := NewParagraph(id, d.idGen, d.relManager)
	d.paragraphs = append(d.paragraphs, para)
	d.blocks = append(d.blocks, domain.Block{Paragraph: para})
	return para, nil
}

// AddTable adds a new table with the specified dimensions.
func (d *document) AddTable(rows, cols int) (domain.Table, error) {
	if rows < constants.MinTableRows || rows > constants.MaxTableRows {
		return nil, errors.InvalidArgument("Document.AddTable", "rows", rows,
			"rows must be between 1 and 1000")
	}
	if cols < constants.MinTableCols || cols > constants.MaxTableCols {
		return nil, errors.InvalidArgument("Document.AddTable", "cols", cols,
			"columns must be between 1 and 63")
	}

	id := d.idGen.NextTableID()
	table := NewTable(id, rows, cols, d.idGen, d.relManager)
	d.tables = append(d.tables, table)
	d.blocks = append(d.blocks, domain.Block{Table: table})
	return table, nil
}

// AddSection adds a new section to the document.
func (d *document) AddSection() (domain.Section, error) {
	return d.AddSectionWithBreak(domain.SectionBreakTypeNextPage)
}

// AddSectionWithBreak adds a new section beginning with the given
// break type; the break is recorded in the body at the current
// position.
func (d *document) AddSectionWithBreak(breakType domain.SectionBreakType) (domain.Section, error) {
	section := NewSection(d.relManager, d.idGen)
	if bt, ok := section.(interface {
		SetBreakType(domain.SectionBreakType)
	}); ok {
		bt.SetBreakType(breakType)
	}
	d.sections = append(d.sections, section)
	d.blocks = append(d.blocks, domain.Block{
		SectionBreak: &domain.SectionBreak{Section: section, Type: breakType},
	})
	return section, nil
}

// DefaultSection returns the trailing section that closes the body,
// creating it on first use.
func (d *document) DefaultSection() (domain.Section, error) {
	if len(d.sections) == 0 {
		d.sections = append(d.sections, NewSection(d.relManager, d.idGen))
	}
	return d.sections[len(d.sections)-1], nil
}

// RegisterExistingRelationship re-registers a relationship parsed from
// an existing package so generated IDs never collide with it.
func (d *document) RegisterExistingRelationship(id, relType, target, targetMode string) error {
	return d.relManager.RegisterExisting(id, relType, target, targetMode)
}

// SetNumberingPart stores the raw numbering.xml read from an existing
// package; the writer re-emits it verbatim.
func (d *document) SetNumberingPart(data []byte, target string) {
	d.numberingPart = append([]byte(nil), data...)
	d.numberingTarget = target
}

// NumberingPartInfo returns the preserved numbering part and its
// relationship target.
func (d *document) NumberingPartInfo() ([]byte, string) {
	return d.numberingPart, d.numberingTarget
}

// EmbedFont obfuscates and registers a font program for embedding;
// the writer stores it under word/fonts and references it from the
// font table by fontKey.
func (d *document) EmbedFont(family string, style fontobfuscate.Style, data []byte) (fontobfuscate.Entry, error) {
	if family == "" {
		return fontobfuscate.Entry{}, errors.InvalidArgument("Document.EmbedFont", "family", family, "font family cannot be empty")
	}
	if len(data) == 0 {
		return fontobfuscate.Entry{}, errors.InvalidArgument("Document.EmbedFont", "data", data, "font data cannot be empty")
	}
	return d.fontManager.Embed(family, style, data)
}

// Blocks returns the ordered document body.
func (d *document) Blocks() []domain.Block {
	blocks := make([]domain.Block, len(d.blocks))
	copy(blocks, d.blocks)
	return blocks
}

// Paragraphs returns all paragraphs in the document.
func (d *document) Paragraphs() []domain.Paragraph {
	// Return a copy to prevent external modification
	paras := make([]domain.Paragraph, len(d.paragraphs))
	copy(paras, d.paragraphs)
	return paras
}

// Tables returns all tables in the document.
func (d *document) Tables() []domain.Table {
	tables := make([]domain.Table, len(d.tables))
	copy(tables, d.tables)
	return tables
}

// Sections returns all sections in the document.
func (d *document) Sections() []domain.Section {
	sections := make([]domain.Section, len(d.sections))
	copy(sections, d.sections)
	return sections
}

// WriteTo writes the document to the provided writer in .docx format.
func (d *document) WriteTo(w io.Writer) (int64, error) {
	// Every image attached to a paragraph becomes a media part.
	for _, para := range d.paragraphs {
		for _, img := range para.Images() {
			target := img.Target()
			if target == "" || len(img.Data()) == 0 {
				continue
			}
			contentType := "image/" + string(img.Format())
			// Already-registered payloads dedup inside the manager.
			_, _ = d.mediaManager.RegisterExisting(img.RelationshipID(), "word/"+target, contentType, img.Data())
		}
	}

	d.ensureWellKnownRelationships()

	ser := serializer.NewDocumentSerializer()
	xmlDoc := ser.SerializeDocument(d)
	headers, footers := ser.SerializeSectionParts(d)
	coreProps := ser.SerializeCoreProperties(d.metadata)
	appProps := ser.SerializeAppProperties(d)
	footnotesPart, endnotesPart := ser.SerializeNotes(d)

	cw := &countingWriter{w: w}
	zipWriter := writer.NewZipWriter(cw)

	// Numbering: a preserved part wins; otherwise the definitions the
	// document carries (or a default template per referenced numId)
	// are synthesized into a fresh part.
	if len(d.numberingPart) > 0 {
		zipWriter.SetPreservedPart("word/numbering.xml", d.numberingPart)
	} else if synthesized, err := d.synthesizeNumberingPart(); err == nil {
		zipWriter.SetPreservedPart("word/numbering.xml", synthesized)
	}

	if fonts := d.fontManager.All(); len(fonts) > 0 {
		zipWriter.SetEmbeddedFonts(fonts)
	}
	zipWriter.SetNotes(footnotesPart, endnotesPart)

	// Each save appends a fresh revision-save ID under the stable
	// document ID.
	d.rsids = append(d.rsids, d.entropy.RSID())
	zipWriter.SetDocumentIdentity(d.docID, d.rsids)

	err := zipWriter.WriteDocument(
		xmlDoc,
		d.relManager.ToXML(),
		coreProps,
		appProps,
		nil, // styles: the writer synthesizes the default set
		d.mediaManager.All(),
		headers,
		footers,
	)
	if err != nil {
		zipWriter.Close()
		return cw.n, errors.WrapWithCode(err, errors.ErrCodeIO, "Document.WriteTo")
	}
	if err := zipWriter.Close(); err != nil {
		return cw.n, errors.WrapWithCode(err, errors.ErrCodeIO, "Document.WriteTo")
	}
	return cw.n, nil
}

// ensureWellKnownRelationships reserves the canonical low-numbered
// relationship IDs (styles through numbering on rId1-rId5, notes on
// the next free slots) on a document that has not already registered
// them — a round-tripped package keeps the IDs it arrived with.
func (d *document) ensureWellKnownRelationships() {
	if _, err := d.relManager.GetByTarget("styles.xml"); err != nil {
		_ = d.relManager.ReserveWellKnown()
	}
	needFn := len(d.footnotes) > 0
	if needFn {
		if _, err := d.relManager.GetByTarget("footnotes.xml"); err == nil {
			needFn = false
		}
	}
	needEn := len(d.endnotes) > 0
	if needEn {
		if _, err := d.relManager.GetByTarget("endnotes.xml"); err == nil {
			needEn = false
		}
	}
	if needFn || needEn {
		_ = d.relManager.ReserveNotes(needFn, needEn)
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// SaveAs saves the document to the specified file path.
func (d *document) SaveAs(path string) error {
	if path == "" {
		return errors.InvalidArgument("Document.SaveAs", "path", path, "path cannot be empty")
	}

	// Create file
	file, err := os.Create(path)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrCodeIO, "Document.SaveAs")
	}
	defer file.Close()

	// Write document
	_, err = d.WriteTo(file)
	if err != nil {
		return errors.Wrap(err, "Document.SaveAs")
	}

	return nil
}

// Validate checks if the document structure is valid.
func (d *document) Validate() error {
	// Basic validation
	if len(d.paragraphs) == 0 && len(d.tables) == 0 {
		return errors.InvalidState("Document.Validate", "document is empty")
	}

	// Validate each paragraph
	for i, para := range d.paragraphs {
		if para == nil {
			return errors.InvalidState("Document.Validate",
				"paragraph at index "+string(rune(i))+" is nil")
		}
	}

	// Validate each table
	for i, table := range d.tables {
		if table == nil {
			return errors.InvalidState("Document.Validate",
				"table at index "+string(rune(i))+" is nil")
		}
	}

	return nil
}

// Metadata returns the document's metadata.
func (d *document) Metadata() *domain.Metadata {
	return d.metadata
}

// SetMetadata updates the document's metadata.
func (d *document) SetMetadata(meta *domain.Metadata) error {
	if meta == nil {
		return errors.InvalidArgument("Document.SetMetadata", "meta", meta, "metadata cannot be nil")
	}
	d.metadata = meta
	return nil
}
