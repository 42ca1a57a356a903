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

// Package astconv bridges the value-semantic ast.Document onto the
// mutable domain model the container writer and reader operate on.
// ToDomain is the writer-facing half: an ast.Visitor that walks a
// document's blocks and inlines and stages them into a
// domain.Document ready for WriteTo. FromDomain is the reader-facing
// half, rebuilding an ast.Document from a reconstructed package.
package astconv

import (
	"sort"

	"github.com/wordengine/docflow/ast"
	"github.com/wordengine/docflow/domain"
	"github.com/wordengine/docflow/internal/core"
	"github.com/wordengine/docflow/internal/fontobfuscate"
	pkgcolor "github.com/wordengine/docflow/pkg/color"
	"github.com/wordengine/docflow/pkg/errors"
)

// ToDomain stages an ast.Document into a domain.Document by visiting
// every block and inline. The returned document writes with the same
// section geometry, notes, media, embedded fonts and numbering
// definitions the AST carried.
func ToDomain(src ast.Document) (domain.Document, error) {
	return toDomainSeeded(src, nil)
}

// ToDomainWithSeed is ToDomain with a fixed entropy seed for
// reproducible output.
func ToDomainWithSeed(src ast.Document, seed int64) (domain.Document, error) {
	return toDomainSeeded(src, &seed)
}

func toDomainSeeded(src ast.Document, seed *int64) (domain.Document, error) {
	var doc domain.Document
	if seed != nil {
		doc = core.NewDocumentWithSeed(*seed)
	} else {
		doc = core.NewDocument()
	}

	b := &domainBuilder{src: src, doc: doc}
	for _, block := range src.Blocks {
		if err := block.Visit(b); err != nil {
			return nil, err
		}
	}

	if err := b.applySection(src.Section); err != nil {
		return nil, err
	}
	if err := b.applyNotes(); err != nil {
		return nil, err
	}
	b.applyFonts()

	return doc, nil
}

// domainBuilder is the ast.Visitor behind ToDomain: block visits
// create domain structures, inline visits populate the paragraph the
// builder currently holds open.
type domainBuilder struct {
	src ast.Document
	doc domain.Document

	para domain.Paragraph // paragraph currently receiving inlines
}

var _ ast.Visitor = (*domainBuilder)(nil)

func (b *domainBuilder) newParagraph() (domain.Paragraph, error) {
	para, err := b.doc.AddParagraph()
	if err != nil {
		return nil, errors.Wrap(err, "astconv.ToDomain")
	}
	b.para = para
	return para, nil
}

func (b *domainBuilder) visitInlines(inlines []ast.Inline) error {
	for _, inline := range inlines {
		if err := inline.Visit(b); err != nil {
			return err
		}
	}
	return nil
}

// -- block visits --

func (b *domainBuilder) VisitParagraph(p *ast.Paragraph) error {
	para, err := b.newParagraph()
	if err != nil {
		return err
	}
	if err := applyParagraphFormatting(para, p); err != nil {
		return err
	}
	return b.visitInlines(p.Runs)
}

func (b *domainBuilder) VisitTable(t *ast.Table) error {
	if len(t.Rows) == 0 {
		return nil
	}
	cols := gridColumnCount(*t)
	table, err := b.doc.AddTable(len(t.Rows), cols)
	if err != nil {
		return errors.Wrap(err, "astconv.ToDomain")
	}
	return b.populateTable(table, *t)
}

func (b *domainBuilder) populateTable(table domain.Table, t ast.Table) error {
	saved := b.para
	defer func() { b.para = saved }()

	for r, astRow := range t.Rows {
		row, err := table.Row(r)
		if err != nil {
			return errors.Wrap(err, "astconv.ToDomain")
		}
		col := 0
		for _, astCell := range astRow.Cells {
			if col >= table.ColumnCount() {
				break
			}
			cell, err := row.Cell(col)
			if err != nil {
				return errors.Wrap(err, "astconv.ToDomain")
			}
			span := astCell.GridSpan
			if span < 1 {
				span = 1
			}
			col += span

			switch astCell.VMerge {
			case ast.VMergeContinue:
				_ = cell.SetVMerge(domain.VMergeContinue)
				if span > 1 {
					_ = cell.SetGridSpan(span)
				}
				continue
			case ast.VMergeRestart:
				_ = cell.Merge(span, 2)
			default:
				if span > 1 {
					_ = cell.SetGridSpan(span)
				}
			}

			if astCell.ShadingFill != "" {
				if clr, err := pkgcolor.FromHex(astCell.ShadingFill); err == nil {
					_ = cell.SetShading(clr)
				}
			}

			for _, inner := range astCell.Blocks {
				switch v := inner.(type) {
				case *ast.Paragraph:
					cellPara, err := cell.AddParagraph()
					if err != nil {
						return errors.Wrap(err, "astconv.ToDomain")
					}
					if err := applyParagraphFormatting(cellPara, v); err != nil {
						return err
					}
					b.para = cellPara
					if err := b.visitInlines(v.Runs); err != nil {
						return err
					}
				case *ast.Table:
					nested, err := cell.AddTable(len(v.Rows), gridColumnCount(*v))
					if err != nil {
						return errors.Wrap(err, "astconv.ToDomain")
					}
					if err := b.populateTable(nested, *v); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func (b *domainBuilder) VisitList(l *ast.List) error {
	numID := l.Style.ID
	def := core.NumberingDefinition{NumID: numID}
	for _, lvl := range l.Style.Levels {
		def.Levels = append(def.Levels, core.NumberingLevelDef{
			Format:      numberFormatName(lvl.Format, l.Style.Ordered),
			Text:        levelText(lvl),
			IndentTwips: lvl.IndentTwips,
			Start:       lvl.StartAt,
		})
	}
	if l.StartIndex > 1 {
		def.StartOverrides = map[int]int{0: l.StartIndex}
	}
	if registrar, ok := b.doc.(interface {
		SetNumberingDefinition(core.NumberingDefinition)
	}); ok {
		registrar.SetNumberingDefinition(def)
	}

	for _, item := range l.Items {
		para, err := b.newParagraph()
		if err != nil {
			return err
		}
		itemNumID := numID
		itemLevel := item.Level
		if item.Paragraph.NumberingID != 0 {
			itemNumID = item.Paragraph.NumberingID
			itemLevel = item.Paragraph.NumberingLevel
		}
		if err := para.SetNumbering(domain.NumberingReference{ID: itemNumID, Level: itemLevel}); err != nil {
			return errors.Wrap(err, "astconv.ToDomain")
		}
		if err := applyParagraphFormatting(para, &item.Paragraph); err != nil {
			return err
		}
		if err := b.visitInlines(item.Paragraph.Runs); err != nil {
			return err
		}
	}
	return nil
}

func (b *domainBuilder) VisitImage(img *ast.Image) error {
	para, err := b.newParagraph()
	if err != nil {
		return err
	}
	return b.attachMedia(para, img.MediaKey, img.Extension, img.WidthEMU, img.HeightEMU, img.AltText)
}

func (b *domainBuilder) VisitShapeBlock(s *ast.ShapeBlock) error {
	return s.Shape.Visit(b)
}

func (b *domainBuilder) VisitSectionBreak(s *ast.SectionBreak) error {
	section, err := b.doc.AddSectionWithBreak(mapSectionStart(s.Section.StartType))
	if err != nil {
		return errors.Wrap(err, "astconv.ToDomain")
	}
	return applySectionGeometry(section, s.Section)
}

func (b *domainBuilder) VisitDropCap(d *ast.DropCap) error {
	// The domain model has no frame properties; the drop cap renders
	// as a leading run so its text is never lost.
	para, err := b.newParagraph()
	if err != nil {
		return err
	}
	if d.StyleRef != "" {
		_ = para.SetStyle(d.StyleRef)
	}
	run, err := para.AddRun()
	if err != nil {
		return errors.Wrap(err, "astconv.ToDomain")
	}
	if err := run.SetText(d.Letters); err != nil {
		return errors.Wrap(err, "astconv.ToDomain")
	}
	if d.FontFamily != "" {
		_ = run.SetFont(domain.Font{Name: d.FontFamily})
	}
	return b.visitInlines(d.Runs)
}

func (b *domainBuilder) VisitTOC(t *ast.TableOfContents) error {
	if t.TitleText != "" {
		para, err := b.newParagraph()
		if err != nil {
			return err
		}
		run, err := para.AddRun()
		if err != nil {
			return errors.Wrap(err, "astconv.ToDomain")
		}
		if err := run.SetText(t.TitleText); err != nil {
			return errors.Wrap(err, "astconv.ToDomain")
		}
		_ = run.SetBold(true)
	}
	para, err := b.newParagraph()
	if err != nil {
		return err
	}
	if _, err := para.AddField(domain.FieldTypeTOC); err != nil {
		return errors.Wrap(err, "astconv.ToDomain")
	}
	return nil
}

// -- inline visits --

func (b *domainBuilder) requireRun() (domain.Run, error) {
	if b.para == nil {
		if _, err := b.newParagraph(); err != nil {
			return nil, err
		}
	}
	run, err := b.para.AddRun()
	if err != nil {
		return nil, errors.Wrap(err, "astconv.ToDomain")
	}
	return run, nil
}

func (b *domainBuilder) VisitText(t *ast.Text) error {
	run, err := b.requireRun()
	if err != nil {
		return err
	}
	if err := run.SetText(t.Content); err != nil {
		return errors.Wrap(err, "astconv.ToDomain")
	}
	if t.Bold {
		_ = run.SetBold(true)
	}
	if t.Italic {
		_ = run.SetItalic(true)
	}
	if t.Strike || t.DoubleStrike {
		_ = run.SetStrike(true)
	}
	if t.Underline != ast.UnderlineNone {
		_ = run.SetUnderline(mapUnderline(t.Underline))
	}
	if t.FontSizeHalf > 0 {
		_ = run.SetSize(t.FontSizeHalf)
	}
	if t.FontFamily != "" {
		_ = run.SetFont(domain.Font{Name: t.FontFamily})
	}
	if hex, ok := resolveTextColor(b.src.Theme, t); ok {
		if clr, err := pkgcolor.FromHex(hex); err == nil {
			_ = run.SetColor(clr)
		}
	}
	if t.HighlightColor != "" {
		if hl, ok := mapHighlightName(t.HighlightColor); ok {
			_ = run.SetHighlight(hl)
		}
	}
	return nil
}

func (b *domainBuilder) VisitLineBreak(*ast.LineBreak) error {
	run, err := b.requireRun()
	if err != nil {
		return err
	}
	return run.AddBreak(domain.BreakTypeLine)
}

func (b *domainBuilder) VisitTab(*ast.Tab) error {
	run, err := b.requireRun()
	if err != nil {
		return err
	}
	return run.SetText("\t")
}

func (b *domainBuilder) VisitInlineImage(img *ast.InlineImage) error {
	if b.para == nil {
		if _, err := b.newParagraph(); err != nil {
			return err
		}
	}
	return b.attachMedia(b.para, img.MediaKey, img.Extension, img.WidthEMU, img.HeightEMU, img.AltText)
}

func (b *domainBuilder) VisitShape(s *ast.Shape) error {
	// Shapes degrade to their inner text; the geometry itself has no
	// domain-side representation yet.
	for i := range s.Text {
		if err := b.VisitText(&s.Text[i]); err != nil {
			return err
		}
	}
	return nil
}

func (b *domainBuilder) VisitFootnoteRef(f *ast.FootnoteRef) error {
	run, err := b.requireRun()
	if err != nil {
		return err
	}
	if marker, ok := run.(interface{ AddFootnoteReference(int) }); ok {
		marker.AddFootnoteReference(f.ID)
	}
	return nil
}

func (b *domainBuilder) VisitEndnoteRef(e *ast.EndnoteRef) error {
	run, err := b.requireRun()
	if err != nil {
		return err
	}
	if marker, ok := run.(interface{ AddEndnoteReference(int) }); ok {
		marker.AddEndnoteReference(e.ID)
	}
	return nil
}

func (b *domainBuilder) VisitCheckbox(c *ast.Checkbox) error {
	run, err := b.requireRun()
	if err != nil {
		return err
	}
	glyph := "☐"
	if c.Checked {
		glyph = "☑"
	}
	return run.SetText(glyph)
}

func (b *domainBuilder) VisitPageNumber(*ast.PageNumber) error {
	if b.para == nil {
		if _, err := b.newParagraph(); err != nil {
			return err
		}
	}
	_, err := b.para.AddField(domain.FieldTypePageNumber)
	return err
}

func (b *domainBuilder) VisitPageCount(*ast.PageCount) error {
	if b.para == nil {
		if _, err := b.newParagraph(); err != nil {
			return err
		}
	}
	_, err := b.para.AddField(domain.FieldTypePageCount)
	return err
}

func (b *domainBuilder) VisitRawInline(*ast.RawInline) error {
	// Preserved raw XML has no staging representation; it rides along
	// in Document.Preserved and is re-emitted at part level.
	return nil
}

// -- shared helpers --

func (b *domainBuilder) attachMedia(para domain.Paragraph, mediaKey, ext string, widthEMU, heightEMU int, alt string) error {
	data, ok := b.src.Media[mediaKey]
	if !ok || len(data) == 0 {
		return nil
	}
	img, err := core.NewImageFromPackage("media/"+mediaKey+"."+ext, data, "image/"+ext)
	if err != nil {
		return errors.Wrap(err, "astconv.ToDomain")
	}
	if widthEMU > 0 && heightEMU > 0 {
		_ = img.SetSize(domain.ImageSize{
			WidthEMU:  widthEMU,
			HeightEMU: heightEMU,
			WidthPx:   widthEMU / 9525,
			HeightPx:  heightEMU / 9525,
		})
	}
	if alt != "" {
		_ = img.SetDescription(alt)
	}
	if attacher, ok := para.(interface {
		RegisterHydratedImage(domain.Image, string, string, []byte) error
	}); ok {
		run, err := para.AddRun()
		if err != nil {
			return errors.Wrap(err, "astconv.ToDomain")
		}
		if setter, ok := run.(interface{ setImage(domain.Image) }); ok {
			setter.setImage(img)
		}
		if relSetter, ok := para.(interface {
			AttachHydratedImageToRun(domain.Run, domain.Image, string, string, []byte) error
		}); ok {
			return relSetter.AttachHydratedImageToRun(run, img, img.Target(), "image/"+ext, data)
		}
		return attacher.RegisterHydratedImage(img, img.Target(), "image/"+ext, data)
	}
	return nil
}

func (b *domainBuilder) applySection(sec ast.Section) error {
	section, err := b.doc.DefaultSection()
	if err != nil {
		return errors.Wrap(err, "astconv.ToDomain")
	}
	return applySectionGeometry(section, sec)
}

func (b *domainBuilder) applyNotes() error {
	noter, ok := b.doc.(interface {
		AddFootnote() (int, domain.Paragraph, error)
		AddEndnote() (int, domain.Paragraph, error)
	})
	if !ok || (len(b.src.Footnotes) == 0 && len(b.src.Endnotes) == 0) {
		return nil
	}

	fill := func(para domain.Paragraph, note ast.Note) error {
		for _, block := range note.Blocks {
			if p, ok := block.(*ast.Paragraph); ok {
				b.para = para
				if err := b.visitInlines(p.Runs); err != nil {
					return err
				}
			}
		}
		return nil
	}

	for _, id := range sortedNoteIDs(b.src.Footnotes) {
		_, para, err := noter.AddFootnote()
		if err != nil {
			return errors.Wrap(err, "astconv.ToDomain")
		}
		if err := fill(para, b.src.Footnotes[id]); err != nil {
			return err
		}
	}
	for _, id := range sortedNoteIDs(b.src.Endnotes) {
		_, para, err := noter.AddEndnote()
		if err != nil {
			return errors.Wrap(err, "astconv.ToDomain")
		}
		if err := fill(para, b.src.Endnotes[id]); err != nil {
			return err
		}
	}
	return nil
}

func sortedNoteIDs(notes map[int]ast.Note) []int {
	ids := make([]int, 0, len(notes))
	for id := range notes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (b *domainBuilder) applyFonts() {
	embedder, ok := b.doc.(interface {
		EmbedFont(string, fontobfuscate.Style, []byte) (fontobfuscate.Entry, error)
	})
	if !ok || len(b.src.Fonts) == 0 {
		return
	}
	families := make([]string, 0, len(b.src.Fonts))
	for family := range b.src.Fonts {
		families = append(families, family)
	}
	sort.Strings(families)
	for _, family := range families {
		_, _ = embedder.EmbedFont(family, fontobfuscate.StyleRegular, b.src.Fonts[family])
	}
}

func applyParagraphFormatting(para domain.Paragraph, p *ast.Paragraph) error {
	if p.StyleRef != "" {
		_ = para.SetStyle(p.StyleRef)
	}
	if err := para.SetAlignment(mapAlignment(p.Alignment)); err != nil {
		return errors.Wrap(err, "astconv.ToDomain")
	}

	indent := domain.Indentation{
		Left:  p.IndentLeftTwips,
		Right: p.IndentRightTwips,
	}
	// Hanging indent is encoded as a negative first line (spec §3);
	// the domain model keeps the two as separate positive values.
	switch {
	case p.IndentFirstLineTwips < 0:
		indent.Hanging = -p.IndentFirstLineTwips
	case p.IndentFirstLineTwips > 0:
		indent.FirstLine = p.IndentFirstLineTwips
	case p.IndentHangingTwips > 0:
		indent.Hanging = p.IndentHangingTwips
	}
	if indent != (domain.Indentation{}) {
		if err := para.SetIndent(indent); err != nil {
			return errors.Wrap(err, "astconv.ToDomain")
		}
	}

	if p.SpacingBeforeTwips != 0 {
		_ = para.SetSpacingBefore(p.SpacingBeforeTwips)
	}
	if p.SpacingAfterTwips != 0 {
		_ = para.SetSpacingAfter(p.SpacingAfterTwips)
	}
	if p.LineSpacing != 0 {
		_ = para.SetLineSpacing(domain.LineSpacing{
			Rule:  mapLineSpacingRule(p.LineSpacingRule),
			Value: p.LineSpacing,
		})
	}
	if p.NumberingID != 0 {
		if err := para.SetNumbering(domain.NumberingReference{ID: p.NumberingID, Level: p.NumberingLevel}); err != nil {
			return errors.Wrap(err, "astconv.ToDomain")
		}
	}
	return nil
}

func applySectionGeometry(section domain.Section, sec ast.Section) error {
	if sec.WidthTwips > 0 && sec.HeightTwips > 0 {
		if err := section.SetPageSize(domain.PageSize{Width: sec.WidthTwips, Height: sec.HeightTwips}); err != nil {
			return errors.Wrap(err, "astconv.ToDomain")
		}
	}
	orient := domain.OrientationPortrait
	if sec.Orientation == ast.OrientationLandscape {
		orient = domain.OrientationLandscape
	}
	if err := section.SetOrientation(orient); err != nil {
		return errors.Wrap(err, "astconv.ToDomain")
	}
	m := sec.Margins
	if m != (ast.Margins{}) {
		if err := section.SetMargins(domain.Margins{
			Top:    m.TopTwips,
			Bottom: m.BottomTwips,
			Left:   m.LeftTwips,
			Right:  m.RightTwips,
			Header: m.HeaderTwips,
			Footer: m.FooterTwips,
		}); err != nil {
			return errors.Wrap(err, "astconv.ToDomain")
		}
	}
	if sec.ColumnCount > 1 {
		if err := section.SetColumns(sec.ColumnCount); err != nil {
			return errors.Wrap(err, "astconv.ToDomain")
		}
	}
	return nil
}

func gridColumnCount(t ast.Table) int {
	if len(t.GridColsTwips) > 0 {
		return len(t.GridColsTwips)
	}
	max := 1
	for _, row := range t.Rows {
		n := 0
		for _, c := range row.Cells {
			span := c.GridSpan
			if span < 1 {
				span = 1
			}
			n += span
		}
		if n > max {
			max = n
		}
	}
	return max
}

func mapAlignment(a ast.Alignment) domain.Alignment {
	switch a {
	case ast.AlignCenter:
		return domain.AlignmentCenter
	case ast.AlignRight:
		return domain.AlignmentRight
	case ast.AlignJustify:
		return domain.AlignmentJustify
	case ast.AlignDistribute:
		return domain.AlignmentDistribute
	default:
		return domain.AlignmentLeft
	}
}

func mapLineSpacingRule(r ast.LineSpacingRule) domain.LineSpacingRule {
	switch r {
	case ast.LineSpacingExact:
		return domain.LineSpacingExact
	case ast.LineSpacingAtLeast:
		return domain.LineSpacingAtLeast
	default:
		return domain.LineSpacingAuto
	}
}

func mapUnderline(u ast.UnderlineStyle) domain.UnderlineStyle {
	switch u {
	case ast.UnderlineDouble:
		return domain.UnderlineDouble
	case ast.UnderlineThick:
		return domain.UnderlineThick
	case ast.UnderlineDotted:
		return domain.UnderlineDotted
	case ast.UnderlineDashed:
		return domain.UnderlineDashed
	case ast.UnderlineWavy:
		return domain.UnderlineWave
	case ast.UnderlineNone:
		return domain.UnderlineNone
	default:
		return domain.UnderlineSingle
	}
}

func mapSectionStart(s ast.SectionStartType) domain.SectionBreakType {
	switch s {
	case ast.SectionContinuous:
		return domain.SectionBreakTypeContinuous
	case ast.SectionEvenPage:
		return domain.SectionBreakTypeEvenPage
	case ast.SectionOddPage:
		return domain.SectionBreakTypeOddPage
	default:
		return domain.SectionBreakTypeNextPage
	}
}

// resolveTextColor resolves a run's color: a theme reference through
// the document palette with tint/shade, else the direct hex.
func resolveTextColor(theme ast.Theme, t *ast.Text) (string, bool) {
	if t.ThemeColor != "" {
		if hex, ok := theme.ResolveThemeColor(t.ThemeColor, t.ThemeTint, t.ThemeShade); ok {
			c, err := pkgcolor.FromHex(hex)
			if err != nil {
				return "", false
			}
			if t.ThemeTint > 0 {
				c = pkgcolor.Tint(c, t.ThemeTint)
			} else if t.ThemeShade > 0 {
				c = pkgcolor.Shade(c, t.ThemeShade)
			}
			return pkgcolor.ToHex(c), true
		}
		return "", false
	}
	if t.Color != "" {
		return t.Color, true
	}
	return "", false
}

func mapHighlightName(name string) (domain.HighlightColor, bool) {
	switch name {
	case "yellow":
		return domain.HighlightYellow, true
	case "green":
		return domain.HighlightGreen, true
	case "cyan":
		return domain.HighlightCyan, true
	case "magenta":
		return domain.HighlightMagenta, true
	case "blue":
		return domain.HighlightBlue, true
	case "red":
		return domain.HighlightRed, true
	case "darkGray":
		return domain.HighlightDarkGray, true
	case "lightGray":
		return domain.HighlightLightGray, true
	default:
		return domain.HighlightNone, false
	}
}

func numberFormatName(f ast.NumberFormat, ordered bool) string {
	switch f {
	case ast.NumberFormatBullet:
		return "bullet"
	case ast.NumberFormatLowerLetter:
		return "lowerLetter"
	case ast.NumberFormatUpperLetter:
		return "upperLetter"
	case ast.NumberFormatLowerRoman:
		return "lowerRoman"
	case ast.NumberFormatUpperRoman:
		return "upperRoman"
	case ast.NumberFormatDecimal:
		return "decimal"
	default:
		if ordered {
			return "decimal"
		}
		return "bullet"
	}
}

func levelText(lvl ast.ListLevel) string {
	if lvl.TextFormat != "" {
		return lvl.TextFormat
	}
	if lvl.Format == ast.NumberFormatBullet {
		if lvl.BulletChar != "" {
			return lvl.BulletChar
		}
		return "•"
	}
	return ""
}

