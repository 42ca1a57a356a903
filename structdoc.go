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
	"archive/zip"
	"embed"
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
)

// OOXML namespace URIs used by the document part.
const (
	nsW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsWP  = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
	nsA   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPic = "http://schemas.openxmlformats.org/drawingml/2006/picture"

	nsRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
)

// Relationship type URIs.
const (
	relTypeStyles    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relTypeTheme     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	relTypeImage     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	relTypeHyperlink = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
	relTypeHeader    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/header"
	relTypeFooter    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer"
)

//go:embed all:template
var templateFiles embed.FS

// defaultTemplateList enumerates the static parts copied verbatim from
// the template filesystem into every package; the dynamic parts
// (document, relationships, content types, headers, footers, media)
// are generated in pack.
var defaultTemplateList = []string{
	"_rels/.rels",
	"docProps/app.xml",
	"docProps/core.xml",
	"word/theme/theme1.xml",
	"word/styles.xml",
}

// Docx is an in-memory .docx file: the document part tree, its
// relationships, media payloads and the static template parts the
// package is assembled from.
type Docx struct {
	Document    Document
	docRelation Relationships

	media        []Media
	mediaNameIdx map[string]int

	rID     int
	slowIDs map[string]int

	template string
	tmplfs   fs.FS
	tmpfslst []string

	sectPr  *SectPr
	headers map[HeaderFooterType]*HeaderFooter
	footers map[HeaderFooterType]*HeaderFooter
}

// Document is the word/document.xml root.
type Document struct {
	XMLName  xml.Name `xml:"w:document"`
	XmlnsW   string   `xml:"xmlns:w,attr"`
	XmlnsR   string   `xml:"xmlns:r,attr"`
	XmlnsWP  string   `xml:"xmlns:wp,attr"`
	XmlnsA   string   `xml:"xmlns:a,attr"`
	XmlnsPic string   `xml:"xmlns:pic,attr"`

	Body Body `xml:"w:body"`
}

// UnmarshalXML ignores the declared namespace prefixes (which
// resolve to full URIs during decoding) and rebuilds the body from
// local element names.
func (doc *Document) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
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
			if t.Name.Local == "body" {
				if err := doc.Body.UnmarshalXML(d, t); err != nil {
					return err
				}
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

// Body is the ordered content of the document: paragraphs, tables and
// a trailing section-properties element.
type Body struct {
	XMLName xml.Name `xml:"w:body"`
	Items   []interface{}
}

// UnmarshalXML rebuilds Items from local element names.
func (b *Body) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
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
			case "p":
				p := &Paragraph{}
				if err := p.UnmarshalXML(d, t); err != nil {
					return err
				}
				b.Items = append(b.Items, p)
			case "tbl":
				tbl := &Table{}
				if err := tbl.UnmarshalXML(d, t); err != nil {
					return err
				}
				b.Items = append(b.Items, tbl)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name.Local == "body" {
				return nil
			}
		}
	}
}

// Relationships is a part's .rels file.
type Relationships struct {
	XMLName      xml.Name       `xml:"Relationships"`
	Xmlns        string         `xml:"xmlns,attr"`
	Relationship []Relationship `xml:"Relationship"`
}

// Relationship is one relationship entry.
type Relationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// Media is one payload under word/media.
type Media struct {
	Name string // file name within word/media
	Data []byte
}

// String returns the part path of the media file.
func (m Media) String() string { return "word/media/" + m.Name }

// SectPr carries the trailing section properties: header/footer
// references and page size.
type SectPr struct {
	XMLName          xml.Name               `xml:"w:sectPr"`
	HeaderReferences []*HeaderFooterRef     `xml:"w:headerReference,omitempty"`
	FooterReferences []*HeaderFooterRef     `xml:"w:footerReference,omitempty"`
	PgSz             *PgSz                  `xml:"w:pgSz,omitempty"`
}

// HeaderFooterRef points a section at a header or footer part.
type HeaderFooterRef struct {
	Type string `xml:"w:type,attr"`
	ID   string `xml:"r:id,attr"`
}

// PgSz is the page size in twips.
type PgSz struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

// HeaderFooter is a header or footer part: its own paragraph list
// under a w:hdr or w:ftr root.
type HeaderFooter struct {
	XMLName xml.Name
	XmlnsW  string `xml:"xmlns:w,attr"`
	XmlnsR  string `xml:"xmlns:r,attr"`

	Paragraphs []*Paragraph `xml:"w:p"`
}

func newHeaderFooter(rootName string, paragraphs ...*Paragraph) *HeaderFooter {
	return &HeaderFooter{
		XMLName:    xml.Name{Local: rootName},
		XmlnsW:     nsW,
		XmlnsR:     nsR,
		Paragraphs: paragraphs,
	}
}

// New returns an empty document backed by the embedded default
// template (Calibri styles, Office theme, letter page).
func New() *Docx {
	tmplfs, err := fs.Sub(templateFiles, "template")
	if err != nil {
		// The template tree is compiled in; a missing subdirectory is
		// a build defect, not a runtime condition.
		panic(err)
	}
	f := &Docx{
		Document: Document{
			XmlnsW:   nsW,
			XmlnsR:   nsR,
			XmlnsWP:  nsWP,
			XmlnsA:   nsA,
			XmlnsPic: nsPic,
		},
		docRelation: Relationships{
			Xmlns: nsRelationships,
			Relationship: []Relationship{
				{ID: "rId1", Type: relTypeStyles, Target: "styles.xml"},
				{ID: "rId2", Type: relTypeTheme, Target: "theme/theme1.xml"},
			},
		},
		mediaNameIdx: make(map[string]int, DefaultMediaIndexCapacity),
		rID:          2,
		slowIDs:      make(map[string]int, DefaultSlowIDCapacity),
		tmplfs:       tmplfs,
		tmpfslst:     defaultTemplateList,
		headers:      map[HeaderFooterType]*HeaderFooter{},
		footers:      map[HeaderFooterType]*HeaderFooter{},
	}
	return f
}

// WithDefaultTheme is kept for API compatibility; the embedded
// template already carries the default Office theme.
func (f *Docx) WithDefaultTheme() *Docx { return f }

// AddParagraph appends an empty paragraph to the document body.
func (f *Docx) AddParagraph() *Paragraph {
	p := &Paragraph{
		Children: make([]interface{}, 0, DefaultParagraphCapacity),
		file:     f,
	}
	f.Document.Body.Items = append(f.Document.Body.Items, p)
	return p
}

// addRelationship registers a relationship on the document part and
// returns its rId.
func (f *Docx) addRelationship(relType, target string, external bool) string {
	f.rID++
	id := fmt.Sprintf("rId%d", f.rID)
	rel := Relationship{ID: id, Type: relType, Target: target}
	if external {
		rel.TargetMode = "External"
	}
	f.docRelation.Relationship = append(f.docRelation.Relationship, rel)
	return id
}

// incSlowID returns the next value of a named ID sequence (drawings,
// bookmarks).
func (f *Docx) incSlowID(kind string) int {
	f.slowIDs[kind]++
	return f.slowIDs[kind]
}

// addMedia registers a payload under word/media, deduplicating by
// content, and returns the stored Media.
func (f *Docx) addMedia(data []byte, ext string) Media {
	key := BytesToString(data)
	if idx, ok := f.mediaNameIdx[key]; ok {
		return f.media[idx]
	}
	name := fmt.Sprintf("image%d.%s", len(f.media)+1, ext)
	m := Media{Name: name, Data: data}
	f.mediaNameIdx[key] = len(f.media)
	f.media = append(f.media, m)
	return m
}

// ensureSectPr returns the document's section properties, creating
// the default letter-size block on first use.
func (f *Docx) ensureSectPr() *SectPr {
	if f.sectPr == nil {
		f.sectPr = &SectPr{PgSz: &PgSz{W: 12240, H: 15840}}
	}
	return f.sectPr
}

// WriteTo assembles the .docx container into w.
func (f *Docx) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)
	if err := f.pack(zw); err != nil {
		zw.Close()
		return cw.n, err
	}
	if err := zw.Close(); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// Read implements io.Reader for interface completeness only; a Docx
// is not a byte stream until WriteTo assembles it.
func (f *Docx) Read([]byte) (int, error) { return 0, os.ErrInvalid }

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// contentTypes builds [Content_Types].xml for the parts this file
// will actually contain.
func (f *Docx) contentTypes() interface{} {
	type ctDefault struct {
		Extension   string `xml:"Extension,attr"`
		ContentType string `xml:"ContentType,attr"`
	}
	type ctOverride struct {
		PartName    string `xml:"PartName,attr"`
		ContentType string `xml:"ContentType,attr"`
	}
	type ctTypes struct {
		XMLName  xml.Name     `xml:"Types"`
		Xmlns    string       `xml:"xmlns,attr"`
		Default  []ctDefault  `xml:"Default"`
		Override []ctOverride `xml:"Override"`
	}

	types := ctTypes{
		Xmlns: nsContentTypes,
		Default: []ctDefault{
			{Extension: "rels", ContentType: "application/vnd.openxmlformats-package.relationships+xml"},
			{Extension: "xml", ContentType: "application/xml"},
			{Extension: "png", ContentType: "image/png"},
			{Extension: "jpg", ContentType: "image/jpeg"},
			{Extension: "jpeg", ContentType: "image/jpeg"},
			{Extension: "gif", ContentType: "image/gif"},
		},
		Override: []ctOverride{
			{PartName: "/word/document.xml", ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"},
			{PartName: "/word/styles.xml", ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"},
			{PartName: "/word/theme/theme1.xml", ContentType: "application/vnd.openxmlformats-officedocument.theme+xml"},
			{PartName: "/docProps/core.xml", ContentType: "application/vnd.openxmlformats-package.core-properties+xml"},
			{PartName: "/docProps/app.xml", ContentType: "application/vnd.openxmlformats-officedocument.extended-properties+xml"},
		},
	}

	headerParts := map[HeaderFooterType]string{
		HeaderFooterDefault: "/word/header1.xml",
		HeaderFooterFirst:   "/word/header2.xml",
		HeaderFooterEven:    "/word/header3.xml",
	}
	for ht := range f.headers {
		types.Override = append(types.Override, ctOverride{
			PartName:    headerParts[ht],
			ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml",
		})
	}
	footerParts := map[HeaderFooterType]string{
		HeaderFooterDefault: "/word/footer1.xml",
		HeaderFooterFirst:   "/word/footer2.xml",
		HeaderFooterEven:    "/word/footer3.xml",
	}
	for ft := range f.footers {
		types.Override = append(types.Override, ctOverride{
			PartName:    footerParts[ft],
			ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml",
		})
	}
	return &types
}

// Parse reads a .docx container back into a Docx: the document body,
// its relationships and every media payload.
func Parse(r io.ReaderAt, size int64) (*Docx, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("docx: not a zip container: %w", err)
	}

	f := New()
	f.Document.Body.Items = nil

	for _, file := range zr.File {
		name := strings.TrimPrefix(file.Name, "/")
		switch {
		case name == "word/document.xml":
			data, err := readZipEntry(file)
			if err != nil {
				return nil, err
			}
			if err := xml.Unmarshal(data, &f.Document); err != nil {
				return nil, fmt.Errorf("docx: parse document.xml: %w", err)
			}
		case name == "word/_rels/document.xml.rels":
			data, err := readZipEntry(file)
			if err != nil {
				return nil, err
			}
			var rels Relationships
			if err := xml.Unmarshal(data, &rels); err != nil {
				return nil, fmt.Errorf("docx: parse document.xml.rels: %w", err)
			}
			rels.Xmlns = nsRelationships
			f.docRelation = rels
		case strings.HasPrefix(name, "word/media/"):
			data, err := readZipEntry(file)
			if err != nil {
				return nil, err
			}
			f.media = append(f.media, Media{Name: path.Base(name), Data: data})
		}
	}

	// Keep generated relationship IDs clear of the parsed ones.
	for _, rel := range f.docRelation.Relationship {
		var n int
		if _, err := fmt.Sscanf(rel.ID, "rId%d", &n); err == nil && n > f.rID {
			f.rID = n
		}
	}
	f.attachFile()
	return f, nil
}

func readZipEntry(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// attachFile points every parsed paragraph, run and table back at
// this file so the fluent API keeps working on parsed documents.
func (f *Docx) attachFile() {
	for _, item := range f.Document.Body.Items {
		switch v := item.(type) {
		case *Paragraph:
			v.attachFile(f)
		case *Table:
			v.attachFile(f)
		}
	}
}
