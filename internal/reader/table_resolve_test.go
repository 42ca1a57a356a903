/*
MIT License

Copyright (c) 2025 Misael Monterroca

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package reader

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/wordengine/docflow/domain"
)

// buildTablePackage wraps a w:tbl fragment in a minimal but complete
// package so the read path is exercised straight from XML.
func buildTablePackage(t *testing.T, tableXML string) []byte {
	t.Helper()

	docXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>` + tableXML + `</w:body>
</w:document>`

	contentTypes := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

	rootRels := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range map[string]string{
		"[Content_Types].xml": contentTypes,
		"_rels/.rels":         rootRels,
		"word/document.xml":   docXML,
	} {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(data)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func reconstructTable(t *testing.T, tableXML string) domain.Table {
	t.Helper()
	pkg, err := LoadPackageFromBytes(buildTablePackage(t, tableXML))
	if err != nil {
		t.Fatalf("LoadPackageFromBytes: %v", err)
	}
	parsed, err := ParsePackage(pkg)
	if err != nil {
		t.Fatalf("ParsePackage: %v", err)
	}
	doc, err := ReconstructDocument(parsed)
	if err != nil {
		t.Fatalf("ReconstructDocument: %v", err)
	}
	tables := doc.Tables()
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	return tables[0]
}

func cellAt(t *testing.T, table domain.Table, r, c int) domain.TableCell {
	t.Helper()
	row, err := table.Row(r)
	if err != nil {
		t.Fatal(err)
	}
	cell, err := row.Cell(c)
	if err != nil {
		t.Fatal(err)
	}
	return cell
}

// Three-column header row [A][B][C restart], next row [D gridSpan=2]
// [E continue]: after row-span resolution C spans two rows and D spans
// two columns.
func TestVerticalMergeWithMixedGridSpan(t *testing.T) {
	table := reconstructTable(t, `<w:tbl>
<w:tblGrid><w:gridCol w:w="3000"/><w:gridCol w:w="3000"/><w:gridCol w:w="3000"/></w:tblGrid>
<w:tr>
<w:tc><w:p><w:r><w:t>A</w:t></w:r></w:p></w:tc>
<w:tc><w:p><w:r><w:t>B</w:t></w:r></w:p></w:tc>
<w:tc><w:tcPr><w:vMerge w:val="restart"/></w:tcPr><w:p><w:r><w:t>C</w:t></w:r></w:p></w:tc>
</w:tr>
<w:tr>
<w:tc><w:tcPr><w:gridSpan w:val="2"/></w:tcPr><w:p><w:r><w:t>D</w:t></w:r></w:p></w:tc>
<w:tc><w:tcPr><w:vMerge/></w:tcPr><w:p/></w:tc>
</w:tr>
</w:tbl>`)

	if table.RowCount() != 2 || table.ColumnCount() != 3 {
		t.Fatalf("table shape %dx%d, want 2x3", table.RowCount(), table.ColumnCount())
	}

	cellC := cellAt(t, table, 0, 2)
	if cellC.VMerge() != domain.VMergeRestart {
		t.Fatalf("C vMerge = %v, want restart", cellC.VMerge())
	}
	if info, ok := cellC.(interface{ MergeInfo() domain.CellMergeInfo }); ok {
		if mi := info.MergeInfo(); mi.RowSpan != 2 {
			t.Fatalf("C rowSpan = %d, want 2", mi.RowSpan)
		}
	} else {
		t.Fatal("cell does not report merge info")
	}

	cellD := cellAt(t, table, 1, 0)
	if cellD.GridSpan() != 2 {
		t.Fatalf("D gridSpan = %d, want 2", cellD.GridSpan())
	}
	if len(cellD.Paragraphs()) == 0 || cellD.Paragraphs()[0].Text() != "D" {
		t.Fatal("D lost its content")
	}

	// The grid slot D spans over is a horizontal continuation and is
	// not re-emitted; the third column carries the vMerge continue.
	if !cellAt(t, table, 1, 1).IsHorizontallyMergedContinuation() {
		t.Fatal("column 1 of row 1 should be covered by D's span")
	}
	if cellAt(t, table, 1, 2).VMerge() != domain.VMergeContinue {
		t.Fatal("row 1 column 2 should continue C's merge")
	}
}

// A w:sdt wrapper around a row is structurally transparent; the cell
// content inside sdtContent reads as if unwrapped.
func TestContentControlWrappersAreTransparent(t *testing.T) {
	table := reconstructTable(t, `<w:tbl>
<w:tblGrid><w:gridCol w:w="4000"/></w:tblGrid>
<w:sdt><w:sdtContent>
<w:tr><w:tc><w:p><w:r><w:t>wrapped</w:t></w:r></w:p></w:tc></w:tr>
</w:sdtContent></w:sdt>
</w:tbl>`)

	if table.RowCount() != 1 {
		t.Fatalf("row inside sdt was dropped")
	}
	if got := cellAt(t, table, 0, 0).Paragraphs()[0].Text(); got != "wrapped" {
		t.Fatalf("cell text %q, want wrapped", got)
	}
}

// A table nested inside a cell survives the read.
func TestNestedTableInsideCell(t *testing.T) {
	table := reconstructTable(t, `<w:tbl>
<w:tblGrid><w:gridCol w:w="4000"/></w:tblGrid>
<w:tr><w:tc>
<w:p><w:r><w:t>outer</w:t></w:r></w:p>
<w:tbl>
<w:tblGrid><w:gridCol w:w="2000"/></w:tblGrid>
<w:tr><w:tc><w:p><w:r><w:t>inner</w:t></w:r></w:p></w:tc></w:tr>
</w:tbl>
</w:tc></w:tr>
</w:tbl>`)

	cell := cellAt(t, table, 0, 0)
	nested := cell.Tables()
	if len(nested) != 1 {
		t.Fatalf("got %d nested tables, want 1", len(nested))
	}
	inner := cellAt(t, nested[0], 0, 0)
	if inner.Paragraphs()[0].Text() != "inner" {
		t.Fatal("nested table lost its content")
	}
}

// Cell borders win over table borders; table borders fill in where the
// cell is silent; shading resolves the same way, and "auto" means no
// shading applied.
func TestBorderAndShadingPrecedence(t *testing.T) {
	table := reconstructTable(t, `<w:tbl>
<w:tblPr>
<w:tblBorders><w:top w:val="double" w:sz="8" w:color="00FF00"/><w:bottom w:val="single" w:sz="4" w:color="0000FF"/></w:tblBorders>
<w:shd w:val="clear" w:fill="EEEEEE"/>
</w:tblPr>
<w:tblGrid><w:gridCol w:w="4000"/><w:gridCol w:w="4000"/></w:tblGrid>
<w:tr>
<w:tc><w:tcPr><w:tcBorders><w:top w:val="single" w:sz="12" w:color="FF0000"/></w:tcBorders><w:shd w:val="clear" w:fill="FFFF00"/></w:tcPr><w:p/></w:tc>
<w:tc><w:tcPr><w:shd w:val="clear" w:fill="auto"/></w:tcPr><w:p/></w:tc>
</w:tr>
</w:tbl>`)

	withCellBorder := cellAt(t, table, 0, 0)
	borders := withCellBorder.Borders()
	if borders.Top.Width != 12 {
		t.Fatalf("cell border should win: top width %d, want 12", borders.Top.Width)
	}
	if borders.Bottom.Style != domain.BorderSingle || borders.Bottom.Width != 4 {
		t.Fatalf("bottom should inherit the table border, got %+v", borders.Bottom)
	}
	if shade := withCellBorder.Shading(); shade != (domain.Color{R: 0xFF, G: 0xFF, B: 0x00}) {
		t.Fatalf("cell shading should win, got %+v", shade)
	}

	// "auto" cell shading resolves to no shading, falling back to the
	// table layer.
	autoCell := cellAt(t, table, 0, 1)
	if shade := autoCell.Shading(); shade != (domain.Color{R: 0xEE, G: 0xEE, B: 0xEE}) {
		t.Fatalf("auto shading should fall back to the table fill, got %+v", shade)
	}
}
