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

package astconv

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/wordengine/docflow/ast"
	"github.com/wordengine/docflow/domain"
	pkgcolor "github.com/wordengine/docflow/pkg/color"
)

// FromDomain rebuilds a value-semantic ast.Document from a
// reconstructed domain document: paragraphs and tables in body order,
// consecutive numbered paragraphs regrouped into List blocks with the
// continuity rule applied, notes, media and preserved parts carried
// across.
func FromDomain(src domain.Document) ast.Document {
	out := ast.NewDocument()

	grouper := &listGrouper{out: &out}
	for _, block := range src.Blocks() {
		switch {
		case block.Paragraph != nil:
			grouper.addParagraph(block.Paragraph)
		case block.Table != nil:
			grouper.flush()
			t := tableFromDomain(block.Table)
			out.Blocks = append(out.Blocks, &t)
		case block.SectionBreak != nil:
			grouper.flush()
			sb := ast.NewSectionBreak(sectionFromDomain(block.SectionBreak.Section))
			out.Blocks = append(out.Blocks, &sb)
		}
	}
	grouper.flush()

	if sections := src.Sections(); len(sections) > 0 {
		out.Section = sectionFromDomain(sections[len(sections)-1])
	}

	if noter, ok := src.(interface {
		FootnoteParagraphs() map[int][]domain.Paragraph
		EndnoteParagraphs() map[int][]domain.Paragraph
	}); ok {
		for id, paras := range noter.FootnoteParagraphs() {
			out.Footnotes[id] = noteFromParagraphs(id, paras)
		}
		for id, paras := range noter.EndnoteParagraphs() {
			out.Endnotes[id] = noteFromParagraphs(id, paras)
		}
	}

	for _, para := range src.Paragraphs() {
		for _, img := range para.Images() {
			data := img.Data()
			if len(data) == 0 {
				continue
			}
			sum := sha256.Sum256(data)
			out.Media[hex.EncodeToString(sum[:])] = data
		}
	}

	if preserved, ok := src.(interface{ NumberingPartInfo() ([]byte, string) }); ok {
		if data, _ := preserved.NumberingPartInfo(); len(data) > 0 {
			out.Preserved["word/numbering.xml"] = data
		}
	}

	return out
}

// listGrouper folds consecutive numbered paragraphs into List blocks.
// When a numbering ID reappears after an interruption, the fresh List
// resumes at 1 + the count of same-level items already emitted for
// that ID (spec §4.4's continuity rule).
type listGrouper struct {
	out *ast.Document

	items []ast.ListItem
	numID int

	// seenPerLevel[numID][level] counts items already flushed.
	seenPerLevel map[int]map[int]int
}

func (g *listGrouper) addParagraph(para domain.Paragraph) {
	ref, numbered := para.Numbering()
	if !numbered {
		g.flush()
		p := paragraphFromDomain(para)
		g.out.Blocks = append(g.out.Blocks, &p)
		return
	}
	if len(g.items) > 0 && ref.ID != g.numID {
		g.flush()
	}
	g.numID = ref.ID
	g.items = append(g.items, ast.ListItem{
		Paragraph: paragraphFromDomain(para),
		Level:     ref.Level,
	})
}

func (g *listGrouper) flush() {
	if len(g.items) == 0 {
		return
	}
	if g.seenPerLevel == nil {
		g.seenPerLevel = map[int]map[int]int{}
	}
	counts := g.seenPerLevel[g.numID]
	if counts == nil {
		counts = map[int]int{}
		g.seenPerLevel[g.numID] = counts
	}

	start := 1 + counts[g.items[0].Level]

	list := ast.NewList(ast.ListStyle{ID: g.numID, Ordered: true}, g.items...)
	list = list.WithStartIndex(start)
	g.out.Blocks = append(g.out.Blocks, &list)

	for _, item := range g.items {
		counts[item.Level]++
	}
	g.items = nil
}

func paragraphFromDomain(para domain.Paragraph) ast.Paragraph {
	p := ast.NewParagraph()
	p.Alignment = alignmentFromDomain(para.Alignment())

	indent := para.Indent()
	p.IndentLeftTwips = indent.Left
	p.IndentRightTwips = indent.Right
	switch {
	case indent.Hanging > 0:
		// Hanging indent is encoded as a negative first line.
		p.IndentFirstLineTwips = -indent.Hanging
		p.IndentHangingTwips = indent.Hanging
	case indent.FirstLine > 0:
		p.IndentFirstLineTwips = indent.FirstLine
	}

	p.SpacingBeforeTwips = para.SpacingBefore()
	p.SpacingAfterTwips = para.SpacingAfter()
	ls := para.LineSpacing()
	p.LineSpacing = ls.Value
	p.LineSpacingRule = lineSpacingRuleFromDomain(ls.Rule)

	if named, ok := para.(interface{ StyleName() string }); ok {
		p.StyleRef = named.StyleName()
	}
	if ref, ok := para.Numbering(); ok {
		p.NumberingID = ref.ID
		p.NumberingLevel = ref.Level
	}

	for _, run := range para.Runs() {
		p.Runs = append(p.Runs, inlinesFromRun(run)...)
	}
	for _, img := range para.Images() {
		data := img.Data()
		if len(data) == 0 {
			continue
		}
		sum := sha256.Sum256(data)
		size := img.Size()
		inline := ast.NewInlineImage(hex.EncodeToString(sum[:]), string(img.Format()), size.WidthEMU, size.HeightEMU)
		inline = inline.WithAltText(img.Description())
		p.Runs = append(p.Runs, &inline)
	}
	return p
}

func inlinesFromRun(run domain.Run) []ast.Inline {
	var out []ast.Inline

	if content := run.Text(); content != "" {
		t := ast.NewText(content)
		t.Bold = run.Bold()
		t.Italic = run.Italic()
		t.Strike = run.Strike()
		t.Underline = underlineFromDomain(run.Underline())
		t.FontSizeHalf = run.Size()
		if font := run.Font(); font.Name != "" {
			t.FontFamily = font.Name
		}
		if clr := run.Color(); clr != (domain.Color{}) {
			t.Color = pkgcolor.ToHex(clr)
		}
		out = append(out, &t)
	}

	for range run.Breaks() {
		br := ast.NewLineBreak()
		out = append(out, &br)
	}

	if marker, ok := run.(interface{ FootnoteReferenceID() (int, bool) }); ok {
		if id, has := marker.FootnoteReferenceID(); has {
			ref := ast.NewFootnoteRef(id)
			out = append(out, &ref)
		}
	}
	if marker, ok := run.(interface{ EndnoteReferenceID() (int, bool) }); ok {
		if id, has := marker.EndnoteReferenceID(); has {
			ref := ast.NewEndnoteRef(id)
			out = append(out, &ref)
		}
	}
	return out
}

func tableFromDomain(src domain.Table) ast.Table {
	t := ast.NewTable()
	for _, srcRow := range src.Rows() {
		var cells []ast.TableCell
		for _, srcCell := range srcRow.Cells() {
			if srcCell.IsHorizontallyMergedContinuation() {
				continue
			}
			cell := ast.NewTableCell()
			cell.GridSpan = srcCell.GridSpan()
			switch srcCell.VMerge() {
			case domain.VMergeRestart:
				cell.VMerge = ast.VMergeRestart
			case domain.VMergeContinue:
				cell.VMerge = ast.VMergeContinue
			}
			if shade := srcCell.Shading(); shade != (domain.Color{}) {
				cell.ShadingFill = pkgcolor.ToHex(shade)
			}
			for _, para := range srcCell.Paragraphs() {
				p := paragraphFromDomain(para)
				cell.Blocks = append(cell.Blocks, &p)
			}
			for _, nested := range srcCell.Tables() {
				nt := tableFromDomain(nested)
				cell.Blocks = append(cell.Blocks, &nt)
			}
			cells = append(cells, cell)
		}
		t.Rows = append(t.Rows, ast.NewTableRow(cells...))
	}
	return t
}

func sectionFromDomain(src domain.Section) ast.Section {
	sec := ast.DefaultSection()
	if src == nil {
		return sec
	}
	size := src.PageSize()
	if size.Width > 0 && size.Height > 0 {
		sec.WidthTwips = size.Width
		sec.HeightTwips = size.Height
	}
	if src.Orientation() == domain.OrientationLandscape {
		sec.Orientation = ast.OrientationLandscape
	}
	m := src.Margins()
	sec.Margins = ast.Margins{
		TopTwips:    m.Top,
		BottomTwips: m.Bottom,
		LeftTwips:   m.Left,
		RightTwips:  m.Right,
		HeaderTwips: m.Header,
		FooterTwips: m.Footer,
	}
	sec.ColumnCount = src.Columns()
	return sec
}

func noteFromParagraphs(id int, paras []domain.Paragraph) ast.Note {
	note := ast.Note{ID: id}
	for _, para := range paras {
		p := paragraphFromDomain(para)
		note.Blocks = append(note.Blocks, &p)
	}
	return note
}

func alignmentFromDomain(a domain.Alignment) ast.Alignment {
	switch a {
	case domain.AlignmentCenter:
		return ast.AlignCenter
	case domain.AlignmentRight:
		return ast.AlignRight
	case domain.AlignmentJustify:
		return ast.AlignJustify
	case domain.AlignmentDistribute:
		return ast.AlignDistribute
	default:
		return ast.AlignLeft
	}
}

func lineSpacingRuleFromDomain(r domain.LineSpacingRule) ast.LineSpacingRule {
	switch r {
	case domain.LineSpacingExact:
		return ast.LineSpacingExact
	case domain.LineSpacingAtLeast:
		return ast.LineSpacingAtLeast
	default:
		return ast.LineSpacingAuto
	}
}

func underlineFromDomain(u domain.UnderlineStyle) ast.UnderlineStyle {
	switch u {
	case domain.UnderlineSingle:
		return ast.UnderlineSingle
	case domain.UnderlineDouble:
		return ast.UnderlineDouble
	case domain.UnderlineThick:
		return ast.UnderlineThick
	case domain.UnderlineDotted:
		return ast.UnderlineDotted
	case domain.UnderlineDashed:
		return ast.UnderlineDashed
	case domain.UnderlineWave:
		return ast.UnderlineWavy
	default:
		return ast.UnderlineNone
	}
}
