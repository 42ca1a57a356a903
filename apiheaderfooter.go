/*
   Copyright (c) 2025 SlideLang Enhanced Fork

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

// HeaderFooterType defines the type of header or footer
type HeaderFooterType string

const (
	// HeaderFooterDefault is for all pages except first and even (if different)
	HeaderFooterDefault HeaderFooterType = "default"
	// HeaderFooterFirst is for the first page only
	HeaderFooterFirst HeaderFooterType = "first"
	// HeaderFooterEven is for even pages when using different odd/even headers
	HeaderFooterEven HeaderFooterType = "even"
)

var headerPartNames = map[HeaderFooterType]string{
	HeaderFooterDefault: "header1.xml",
	HeaderFooterFirst:   "header2.xml",
	HeaderFooterEven:    "header3.xml",
}

var footerPartNames = map[HeaderFooterType]string{
	HeaderFooterDefault: "footer1.xml",
	HeaderFooterFirst:   "footer2.xml",
	HeaderFooterEven:    "footer3.xml",
}

// AddHeader adds a header part of the given type, wiring its part,
// relationship and section reference, and returns the header's first
// paragraph for formatting.
func (f *Docx) AddHeader(headerType HeaderFooterType) *Paragraph {
	p := &Paragraph{
		Children: make([]interface{}, 0, DefaultParagraphCapacity),
		file:     f,
	}

	if hdr, ok := f.headers[headerType]; ok {
		hdr.Paragraphs = append(hdr.Paragraphs, p)
		return p
	}

	f.headers[headerType] = newHeaderFooter("w:hdr", p)
	rID := f.addRelationship(relTypeHeader, headerPartNames[headerType], false)
	sect := f.ensureSectPr()
	sect.HeaderReferences = append(sect.HeaderReferences, &HeaderFooterRef{
		Type: string(headerType),
		ID:   rID,
	})
	return p
}

// AddFooter adds a footer part of the given type, mirrored from
// AddHeader.
func (f *Docx) AddFooter(footerType HeaderFooterType) *Paragraph {
	p := &Paragraph{
		Children: make([]interface{}, 0, DefaultParagraphCapacity),
		file:     f,
	}

	if ftr, ok := f.footers[footerType]; ok {
		ftr.Paragraphs = append(ftr.Paragraphs, p)
		return p
	}

	f.footers[footerType] = newHeaderFooter("w:ftr", p)
	rID := f.addRelationship(relTypeFooter, footerPartNames[footerType], false)
	sect := f.ensureSectPr()
	sect.FooterReferences = append(sect.FooterReferences, &HeaderFooterRef{
		Type: string(footerType),
		ID:   rID,
	})
	return p
}

// AddPageNumberFooter is a convenience method to add a simple page number footer
func (f *Docx) AddPageNumberFooter() *Paragraph {
	footer := f.AddFooter(HeaderFooterDefault)
	footer.AddText("Page ")
	footer.AddPageField()
	footer.AddText(" of ")
	footer.AddNumPagesField()
	footer.Justification("center")
	return footer
}

// AddDocumentTitleHeader is a convenience method to add a document title header
func (f *Docx) AddDocumentTitleHeader(title string) *Paragraph {
	header := f.AddHeader(HeaderFooterDefault)
	header.AddText(title).Size("20").Color("666666")
	header.Justification("center")
	return header
}
