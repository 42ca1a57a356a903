// Package writer handles writing DOCX files as ZIP archives containing XML documents.
// It provides the ZipWriter for creating properly structured Office Open XML packages.
package writer

/*
   Copyright (c) 2025 Misael Monterroca

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/wordengine/docflow/internal/fontobfuscate"
	"github.com/wordengine/docflow/internal/media"
	"github.com/wordengine/docflow/internal/serializer"
	xmlstructs "github.com/wordengine/docflow/internal/xml"
	"github.com/wordengine/docflow/pkg/constants"
)

// ZipWriter writes a .docx file to an io.Writer.
type ZipWriter struct {
	zipWriter  *zip.Writer
	serializer *serializer.DocumentSerializer
	preserved  map[string][]byte
	fonts      []fontobfuscate.Entry
	footnotes  *xmlstructs.Footnotes
	endnotes   *xmlstructs.Endnotes
	docID      string
	rsids      []string
}

// SetPreservedPart registers a raw part (e.g. word/numbering.xml read
// from an existing package) to be re-emitted verbatim by
// WriteDocument.
func (zw *ZipWriter) SetPreservedPart(path string, data []byte) {
	if zw.preserved == nil {
		zw.preserved = make(map[string][]byte, 4)
	}
	zw.preserved[path] = data
}

// SetNotes registers the footnotes/endnotes parts to write; either
// may be nil when the document has no notes of that kind.
func (zw *ZipWriter) SetNotes(footnotes *xmlstructs.Footnotes, endnotes *xmlstructs.Endnotes) {
	zw.footnotes = footnotes
	zw.endnotes = endnotes
}

// SetDocumentIdentity records the document ID and the revision-save
// ID history emitted into settings.xml.
func (zw *ZipWriter) SetDocumentIdentity(docID string, rsids []string) {
	zw.docID = docID
	zw.rsids = rsids
}

// SetEmbeddedFonts registers obfuscated font programs to embed under
// word/fonts, referenced from the font table by fontKey.
func (zw *ZipWriter) SetEmbeddedFonts(entries []fontobfuscate.Entry) {
	zw.fonts = entries
}

// NewZipWriter creates a new ZipWriter.
func NewZipWriter(w io.Writer) *ZipWriter {
	return &ZipWriter{
		zipWriter:  zip.NewWriter(w),
		serializer: serializer.NewDocumentSerializer(),
	}
}

// WriteDocument writes a complete .docx document structure.
func (zw *ZipWriter) WriteDocument(doc *xmlstructs.Document, rels *xmlstructs.Relationships, coreProps *xmlstructs.CoreProperties, appProps *xmlstructs.AppProperties, styles *xmlstructs.Styles, media []*media.MediaFile, headers map[string]*xmlstructs.Header, footers map[string]*xmlstructs.Footer) error {
	// Write [Content_Types].xml with optional header/footer overrides
	if err := zw.writeContentTypes(headers, footers, media); err != nil {
		return fmt.Errorf("write content types: %w", err)
	}

	// Write _rels/.rels
	if err := zw.writeRootRels(); err != nil {
		return fmt.Errorf("write root rels: %w", err)
	}

	// Write word/document.xml
	if err := zw.writeMainDocument(doc); err != nil {
		return fmt.Errorf("write main document: %w", err)
	}

	// Write word/_rels/document.xml.rels
	if err := zw.writeDocumentRels(rels); err != nil {
		return fmt.Errorf("write document rels: %w", err)
	}

	// Write docProps/core.xml
	if err := zw.writeCoreProperties(coreProps); err != nil {
		return fmt.Errorf("write core properties: %w", err)
	}

	// Write docProps/app.xml
	if err := zw.writeAppProperties(appProps); err != nil {
		return fmt.Errorf("write app properties: %w", err)
	}

	// Write word/styles.xml
	if err := zw.writeStyles(styles); err != nil {
		return fmt.Errorf("write styles: %w", err)
	}

	// Write word/fontTable.xml: the minimal default, or one carrying
	// embedded-font references when fonts were registered
	if len(zw.fonts) > 0 {
		if err := zw.writeFontTableWithEmbeds(); err != nil {
			return fmt.Errorf("write font table: %w", err)
		}
	} else if err := zw.writeDefaultFontTable(); err != nil {
		return fmt.Errorf("write font table: %w", err)
	}

	// Write word/theme/theme1.xml (minimal default)
	if err := zw.writeDefaultTheme(); err != nil {
		return fmt.Errorf("write theme: %w", err)
	}

	// Write word/settings.xml and word/webSettings.xml (minimal defaults)
	if err := zw.writeDefaultSettings(); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := zw.writeDefaultWebSettings(); err != nil {
		return fmt.Errorf("write web settings: %w", err)
	}

	// Write media files to word/media
	if err := zw.writeMediaFiles(media); err != nil {
		return fmt.Errorf("write media: %w", err)
	}

	// Write headers
	for name, header := range headers {
		if err := zw.writeXML(fmt.Sprintf("word/%s", name), header); err != nil {
			return fmt.Errorf("write header %s: %w", name, err)
		}
	}

	// Write footers
	for name, footer := range footers {
		if err := zw.writeXML(fmt.Sprintf("word/%s", name), footer); err != nil {
			return fmt.Errorf("write footer %s: %w", name, err)
		}
	}

	// Write footnotes/endnotes parts
	if zw.footnotes != nil {
		if err := zw.writeXML("word/footnotes.xml", zw.footnotes); err != nil {
			return fmt.Errorf("write footnotes: %w", err)
		}
	}
	if zw.endnotes != nil {
		if err := zw.writeXML("word/endnotes.xml", zw.endnotes); err != nil {
			return fmt.Errorf("write endnotes: %w", err)
		}
	}

	// Write obfuscated font payloads under word/fonts
	for _, font := range zw.fonts {
		if err := zw.writeRaw("word/fonts/"+font.FileName, font.Data); err != nil {
			return fmt.Errorf("write embedded font %s: %w", font.FileName, err)
		}
	}

	// Re-emit preserved raw parts byte for byte
	for path, data := range zw.preserved {
		if err := zw.writeRaw(path, data); err != nil {
			return fmt.Errorf("write preserved part %s: %w", path, err)
		}
	}

	return nil
}

// Close closes the ZIP writer.
func (zw *ZipWriter) Close() error {
	return zw.zipWriter.Close()
}

// writeContentTypes writes [Content_Types].xml
func (zw *ZipWriter) writeContentTypes(headers map[string]*xmlstructs.Header, footers map[string]*xmlstructs.Footer, media []*media.MediaFile) error {
	ct := &xmlstructs.ContentTypes{
		Xmlns: constants.NamespaceContentTypes,
		Defaults: []*xmlstructs.Default{
			{Extension: "rels", ContentType: constants.ContentTypeRelationships},
			{Extension: "xml", ContentType: "application/xml"},
		},
		Overrides: []*xmlstructs.Override{
			{PartName: "/word/document.xml", ContentType: constants.ContentTypeDocument},
			{PartName: "/word/styles.xml", ContentType: constants.ContentTypeStyles},
			{PartName: "/word/fontTable.xml", ContentType: constants.ContentTypeFontTable},
			{PartName: "/word/theme/theme1.xml", ContentType: constants.ContentTypeTheme},
			{PartName: "/word/settings.xml", ContentType: constants.ContentTypeSettings},
			{PartName: "/word/webSettings.xml", ContentType: constants.ContentTypeWebSettings},
			{PartName: "/docProps/core.xml", ContentType: constants.ContentTypeCoreProperties},
			{PartName: "/docProps/app.xml", ContentType: constants.ContentTypeExtendedProperties},
		},
	}

	addOverride := func(name, contentType string) {
		if name == "" {
			return
		}
		for _, existing := range ct.Overrides {
			if existing.PartName == name {
				return
			}
		}
		ct.Overrides = append(ct.Overrides, &xmlstructs.Override{PartName: name, ContentType: contentType})
	}

	for name := range headers {
		addOverride(fmt.Sprintf("/word/%s", name), constants.ContentTypeHeader)
	}

	// Include defaults for media content types
	addDefault := func(extension, contentType string) {
		if extension == "" || contentType == "" {
			return
		}
		ext := strings.ToLower(extension)
		for _, existing := range ct.Defaults {
			if existing != nil && strings.EqualFold(existing.Extension, ext) {
				return
			}
		}
		ct.Defaults = append(ct.Defaults, &xmlstructs.Default{
			Extension:   ext,
			ContentType: contentType,
		})
	}

	for _, file := range media {
		if file == nil || len(file.Data) == 0 {
			continue
		}
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Name)), ".")
		addDefault(ext, file.ContentType)
	}
	for name := range footers {
		addOverride(fmt.Sprintf("/word/%s", name), constants.ContentTypeFooter)
	}

	if _, ok := zw.preserved["word/numbering.xml"]; ok {
		addOverride("/word/numbering.xml", constants.ContentTypeNumbering)
	}
	if zw.footnotes != nil {
		addOverride("/word/footnotes.xml", constants.ContentTypeFootnotes)
	}
	if zw.endnotes != nil {
		addOverride("/word/endnotes.xml", constants.ContentTypeEndnotes)
	}

	if len(zw.fonts) > 0 {
		addDefault("odttf", "application/vnd.openxmlformats-package.obfuscated-font")
	}

	return zw.writeXML("[Content_Types].xml", ct)
}

// writeRootRels writes _rels/.rels
func (zw *ZipWriter) writeRootRels() error {
	rels := &xmlstructs.Relationships{
		Xmlns: constants.NamespacePackageRels,
		Relationships: []*xmlstructs.Relationship{
			{
				ID:     "rId1",
				Type:   constants.RelTypeDocument,
				Target: "word/document.xml",
			},
			{
				ID:     "rId2",
				Type:   "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties",
				Target: "docProps/core.xml",
			},
			{
				ID:     "rId3",
				Type:   "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties",
				Target: "docProps/app.xml",
			},
		},
	}

	return zw.writeXML("_rels/.rels", rels)
}

// writeMainDocument writes word/document.xml
func (zw *ZipWriter) writeMainDocument(doc *xmlstructs.Document) error {
	return zw.writeXML("word/document.xml", doc)
}

// writeDocumentRels writes word/_rels/document.xml.rels, first making
// sure the baseline part relationships every package carries are
// present alongside whatever the relationship manager accumulated.
func (zw *ZipWriter) writeDocumentRels(rels *xmlstructs.Relationships) error {
	if rels == nil {
		rels = &xmlstructs.Relationships{
			Xmlns:         constants.NamespacePackageRels,
			Relationships: []*xmlstructs.Relationship{},
		}
	}

	baseline := []struct {
		relType string
		target  string
	}{
		{constants.RelTypeStyles, "styles.xml"},
		{constants.RelTypeFontTable, "fontTable.xml"},
		{constants.RelTypeTheme, "theme/theme1.xml"},
		{constants.RelTypeSettings, "settings.xml"},
		{constants.RelTypeWebSettings, "webSettings.xml"},
	}

	maxID := 0
	haveTarget := make(map[string]bool, len(rels.Relationships))
	for _, rel := range rels.Relationships {
		if rel == nil {
			continue
		}
		haveTarget[strings.TrimPrefix(rel.Target, "word/")] = true
		var n int
		if _, err := fmt.Sscanf(rel.ID, "rId%d", &n); err == nil && n > maxID {
			maxID = n
		}
	}
	for _, base := range baseline {
		if haveTarget[base.target] {
			continue
		}
		maxID++
		rels.Relationships = append(rels.Relationships, &xmlstructs.Relationship{
			ID:     fmt.Sprintf("rId%d", maxID),
			Type:   base.relType,
			Target: base.target,
		})
	}

	return zw.writeXML("word/_rels/document.xml.rels", rels)
}

// writeCoreProperties writes docProps/core.xml
func (zw *ZipWriter) writeCoreProperties(props *xmlstructs.CoreProperties) error {
	if props == nil {
		now := time.Now()
		props = &xmlstructs.CoreProperties{
			XMLnsCP:      constants.NamespaceCoreProperties,
			XMLnsDC:      constants.NamespaceDC,
			XMLnsDCTerms: constants.NamespaceDCTerms,
			XMLnsXSI:     "http://www.w3.org/2001/XMLSchema-instance",
			Creator:      "go-docx v2",
			Created: &xmlstructs.DCDate{
				Type:  "dcterms:W3CDTF",
				Value: now.Format(time.RFC3339),
			},
			Modified: &xmlstructs.DCDate{
				Type:  "dcterms:W3CDTF",
				Value: now.Format(time.RFC3339),
			},
		}
	}
	return zw.writeXML("docProps/core.xml", props)
}

// writeAppProperties writes docProps/app.xml
func (zw *ZipWriter) writeAppProperties(props *xmlstructs.AppProperties) error {
	if props == nil {
		props = &xmlstructs.AppProperties{
			Xmlns:       constants.NamespaceExtendedProperties,
			Application: "go-docx v2.0.0",
			DocSecurity: 0,
		}
	}
	return zw.writeXML("docProps/app.xml", props)
}

// writeDefaultSettings writes word/settings.xml, carrying the
// document ID and the revision-save ID history when the caller set
// them via SetDocumentIdentity.
func (zw *ZipWriter) writeDefaultSettings() error {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	sb.WriteString(`<w:settings xmlns:w="` + constants.NamespaceMain + `" xmlns:w15="http://schemas.microsoft.com/office/word/2012/wordml">` + "\n")
	sb.WriteString("  <w:zoom w:percent=\"100\"/>\n")
	sb.WriteString("  <w:defaultTabStop w:val=\"720\"/>\n")
	sb.WriteString("  <w:characterSpacingControl w:val=\"doNotCompress\"/>\n")
	if len(zw.rsids) > 0 {
		sb.WriteString("  <w:rsids>\n")
		sb.WriteString(`    <w:rsidRoot w:val="` + zw.rsids[0] + `"/>` + "\n")
		for _, rsid := range zw.rsids {
			sb.WriteString(`    <w:rsid w:val="` + rsid + `"/>` + "\n")
		}
		sb.WriteString("  </w:rsids>\n")
	}
	if zw.docID != "" {
		sb.WriteString(`  <w15:docId w15:val="` + zw.docID + `"/>` + "\n")
	}
	sb.WriteString("</w:settings>")
	return zw.writeRaw("word/settings.xml", []byte(sb.String()))
}

// writeDefaultWebSettings writes minimal word/webSettings.xml
func (zw *ZipWriter) writeDefaultWebSettings() error {
	webSettings := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:webSettings xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:optimizeForBrowser/>
  <w:allowPNG/>
</w:webSettings>`
	return zw.writeRaw("word/webSettings.xml", []byte(webSettings))
}

// writeDefaultStyles writes minimal word/styles.xml
func (zw *ZipWriter) writeDefaultStyles() error {
	styles := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:docDefaults>
    <w:rPrDefault>
      <w:rPr>
        <w:rFonts w:ascii="Calibri" w:hAnsi="Calibri"/>
        <w:sz w:val="22"/>
      </w:rPr>
    </w:rPrDefault>
    <w:pPrDefault/>
  </w:docDefaults>
</w:styles>`
	return zw.writeRaw("word/styles.xml", []byte(styles))
}

// writeStyles writes word/styles.xml from serialized styles.
func (zw *ZipWriter) writeStyles(styles *xmlstructs.Styles) error {
	// If no styles provided, use defaults
	if styles == nil {
		return zw.writeDefaultStyles()
	}

	w, err := zw.zipWriter.Create("word/styles.xml")
	if err != nil {
		return err
	}

	// Write XML declaration
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return err
	}

	// Marshal and write styles
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	return encoder.Encode(styles)
}

// writeDefaultFontTable writes minimal word/fontTable.xml
func (zw *ZipWriter) writeDefaultFontTable() error {
	fontTable := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:fonts xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:font w:name="Calibri">
    <w:panose1 w:val="020F0502020204030204"/>
    <w:charset w:val="00"/>
    <w:family w:val="swiss"/>
    <w:pitch w:val="variable"/>
  </w:font>
</w:fonts>`
	return zw.writeRaw("word/fontTable.xml", []byte(fontTable))
}

// writeFontTableWithEmbeds writes word/fontTable.xml carrying one
// w:font per embedded entry (embedRegular/embedBold/... with r:id and
// w:fontKey) plus the fontTable relationships file targeting each
// fonts/<GUID>.odttf payload.
func (zw *ZipWriter) writeFontTableWithEmbeds() error {
	var table strings.Builder
	table.WriteString(xml.Header)
	table.WriteString(`<w:fonts xmlns:w="` + constants.NamespaceMain + `" xmlns:r="` + constants.NamespaceRelationships + `">`)

	rels := &xmlstructs.Relationships{
		Xmlns:         constants.NamespacePackageRels,
		Relationships: []*xmlstructs.Relationship{},
	}

	for i, font := range zw.fonts {
		relID := fmt.Sprintf("rId%d", i+1)
		rels.Relationships = append(rels.Relationships, &xmlstructs.Relationship{
			ID:     relID,
			Type:   "http://schemas.openxmlformats.org/officeDocument/2006/relationships/font",
			Target: "fonts/" + font.FileName,
		})

		embedElement := "w:embedRegular"
		switch font.Style {
		case fontobfuscate.StyleBold:
			embedElement = "w:embedBold"
		case fontobfuscate.StyleItalic:
			embedElement = "w:embedItalic"
		case fontobfuscate.StyleBoldItalic:
			embedElement = "w:embedBoldItalic"
		}

		table.WriteString(`<w:font w:name="` + xmlEscapeAttr(font.Family) + `">`)
		table.WriteString(`<` + embedElement + ` r:id="` + relID + `" w:fontKey="` + font.FontKey + `"/>`)
		table.WriteString(`</w:font>`)
	}
	table.WriteString(`</w:fonts>`)

	if err := zw.writeRaw("word/fontTable.xml", []byte(table.String())); err != nil {
		return err
	}
	return zw.writeXML("word/_rels/fontTable.xml.rels", rels)
}

func xmlEscapeAttr(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// writeDefaultTheme writes minimal word/theme/theme1.xml
func (zw *ZipWriter) writeDefaultTheme() error {
	theme := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Office Theme">
	<a:themeElements>
		<a:clrScheme name="Office">
			<a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>
			<a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>
			<a:dk2><a:srgbClr val="44546A"/></a:dk2>
			<a:lt2><a:srgbClr val="E7E6E6"/></a:lt2>
			<a:accent1><a:srgbClr val="4472C4"/></a:accent1>
			<a:accent2><a:srgbClr val="ED7D31"/></a:accent2>
			<a:accent3><a:srgbClr val="A5A5A5"/></a:accent3>
			<a:accent4><a:srgbClr val="FFC000"/></a:accent4>
			<a:accent5><a:srgbClr val="5B9BD5"/></a:accent5>
			<a:accent6><a:srgbClr val="70AD47"/></a:accent6>
			<a:hlink><a:srgbClr val="0563C1"/></a:hlink>
			<a:folHlink><a:srgbClr val="954F72"/></a:folHlink>
		</a:clrScheme>
		<a:fontScheme name="Office">
			<a:majorFont>
				<a:latin typeface="Calibri Light"/>
				<a:ea typeface=""/>
				<a:cs typeface=""/>
			</a:majorFont>
			<a:minorFont>
				<a:latin typeface="Calibri"/>
				<a:ea typeface=""/>
				<a:cs typeface=""/>
			</a:minorFont>
		</a:fontScheme>
		<a:fmtScheme name="Office">
			<a:fillStyleLst>
				<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
				<a:gradFill rotWithShape="1">
					<a:gsLst>
						<a:gs pos="0"><a:schemeClr val="phClr"><a:tint val="50000"/><a:satMod val="300000"/></a:schemeClr></a:gs>
						<a:gs pos="35000"><a:schemeClr val="phClr"><a:tint val="37000"/><a:satMod val="300000"/></a:schemeClr></a:gs>
						<a:gs pos="100000"><a:schemeClr val="phClr"><a:tint val="15000"/><a:satMod val="350000"/></a:schemeClr></a:gs>
					</a:gsLst>
					<a:lin ang="16200000" scaled="1"/>
				</a:gradFill>
				<a:gradFill rotWithShape="1">
					<a:gsLst>
						<a:gs pos="0"><a:schemeClr val="phClr"><a:shade val="51000"/><a:satMod val="130000"/></a:schemeClr></a:gs>
						<a:gs pos="80000"><a:schemeClr val="phClr"><a:shade val="93000"/><a:satMod val="130000"/></a:schemeClr></a:gs>
						<a:gs pos="100000"><a:schemeClr val="phClr"><a:shade val="94000"/><a:satMod val="350000"/></a:schemeClr></a:gs>
					</a:gsLst>
					<a:lin ang="16200000" scaled="1"/>
				</a:gradFill>
			</a:fillStyleLst>
			<a:lnStyleLst>
				<a:ln w="9525" cap="flat" cmpd="sng" algn="ctr"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:prstDash val="solid"/><a:miter lim="800000"/></a:ln>
				<a:ln w="25400" cap="flat" cmpd="sng" algn="ctr"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:prstDash val="solid"/><a:miter lim="800000"/></a:ln>
				<a:ln w="38100" cap="flat" cmpd="sng" algn="ctr"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:prstDash val="solid"/><a:miter lim="800000"/></a:ln>
			</a:lnStyleLst>
			<a:effectStyleLst>
				<a:effectStyle><a:effectLst/></a:effectStyle>
				<a:effectStyle><a:effectLst/></a:effectStyle>
				<a:effectStyle>
					<a:effectLst>
						<a:outerShdw blurRad="57150" dist="19050" dir="5400000" algn="ctr" rotWithShape="0">
							<a:srgbClr val="000000"><a:alpha val="63000"/></a:srgbClr>
						</a:outerShdw>
					</a:effectLst>
				</a:effectStyle>
			</a:effectStyleLst>
			<a:bgFillStyleLst>
				<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
				<a:solidFill><a:schemeClr val="phClr"><a:tint val="95000"/><a:satMod val="170000"/></a:schemeClr></a:solidFill>
				<a:gradFill rotWithShape="1">
					<a:gsLst>
						<a:gs pos="0"><a:schemeClr val="phClr"><a:tint val="93000"/><a:satMod val="150000"/><a:shade val="98000"/><a:lumMod val="102000"/></a:schemeClr></a:gs>
						<a:gs pos="50000"><a:schemeClr val="phClr"><a:tint val="98000"/><a:satMod val="130000"/><a:shade val="90000"/><a:lumMod val="103000"/></a:schemeClr></a:gs>
						<a:gs pos="100000"><a:schemeClr val="phClr"><a:shade val="63000"/><a:satMod val="120000"/></a:schemeClr></a:gs>
					</a:gsLst>
					<a:lin ang="16200000" scaled="1"/>
				</a:gradFill>
			</a:bgFillStyleLst>
		</a:fmtScheme>
	</a:themeElements>
	<a:objectDefaults/>
	<a:extraClrSchemeLst/>
</a:theme>`
	return zw.writeRaw("word/theme/theme1.xml", []byte(theme))
}

// writeXML marshals and writes an XML structure to the ZIP.
func (zw *ZipWriter) writeXML(path string, v interface{}) error {
	w, err := zw.zipWriter.Create(path)
	if err != nil {
		return err
	}

	// Write XML header
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return err
	}

	// Marshal and write XML
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return err
	}

	return nil
}

// writeRaw writes raw bytes to the ZIP.
func (zw *ZipWriter) writeRaw(path string, data []byte) error {
	w, err := zw.zipWriter.Create(path)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// writeMediaFiles writes all media assets into the DOCX package.
func (zw *ZipWriter) writeMediaFiles(media []*media.MediaFile) error {
	for _, file := range media {
		if file == nil || len(file.Data) == 0 || file.Path == "" {
			continue
		}
		if err := zw.writeRaw(file.Path, file.Data); err != nil {
			return err
		}
	}
	return nil
}
