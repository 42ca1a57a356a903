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

package content

import (
	"math"
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// Thresholds are the tunable constants of page feature grouping,
// exposed as configuration so extraction regressions can be tuned
// without forking the heuristics.
type Thresholds struct {
	// RowYTolerancePt groups items into one visual row when their
	// baselines differ by at most this (or half the font size,
	// whichever is larger).
	RowYTolerancePt float64

	// GridClusterTolerancePt clusters graphic lines into one grid rule
	// when they sit within this distance of each other.
	GridClusterTolerancePt float64

	// MinGridLines is the minimum number of horizontal and of vertical
	// rules that together count as a table grid.
	MinGridLines int

	// MinGridLineLengthPt filters out stub segments (underline rect
	// edges, list dashes) from grid candidacy.
	MinGridLineLengthPt float64

	// ColumnGapFactor times the preceding glyph size is the gap that
	// splits a row into columns for grid-less table inference.
	ColumnGapFactor float64

	// UnderlineDropFactor times the font size is how far below a
	// baseline a short rule still counts as an underline.
	UnderlineDropFactor float64

	// StrikeRaiseFactor times the font size is the height above the
	// baseline where a rule counts as a strikethrough.
	StrikeRaiseFactor float64
}

// DefaultThresholds returns the tuning the extraction heuristics were
// calibrated with.
func DefaultThresholds() Thresholds {
	return Thresholds{
		RowYTolerancePt:        10,
		GridClusterTolerancePt: 2,
		MinGridLines:           2,
		MinGridLineLengthPt:    8,
		ColumnGapFactor:        2,
		UnderlineDropFactor:    0.5,
		StrikeRaiseFactor:      0.3,
	}
}

// TextMark is a TextItem annotated with the underline/strikethrough
// state recovered from nearby graphic rules.
type TextMark struct {
	Text string

	X, Y, EndX float64

	Font       string
	FontSizePt float64
	ColorHex   string

	Underline bool
	Strike    bool
}

// Line is one visual row of marks, left to right.
type Line struct {
	Y     float64
	Marks []TextMark
}

// Feature is one grouped page element: a run of text lines, an
// inferred table, or a placed image.
type Feature interface{ feature() }

// TextFeature is a run of consecutive non-tabular lines.
type TextFeature struct {
	Lines []Line
}

func (TextFeature) feature() {}

// TableFeature is an inferred table: rows of cells, each cell holding
// the marks whose baselines fell inside it.
type TableFeature struct {
	Rows [][][]TextMark
}

func (TableFeature) feature() {}

// ImageFeature is a placed image, sized in points.
type ImageFeature struct {
	Data              []byte
	Ext               string
	WidthPt, HeightPt float64
}

func (ImageFeature) feature() {}

// GroupPage turns a page's extracted items into ordered features:
// sort top-to-bottom, annotate underline/strike, carve out grid
// tables, infer grid-less tables from column alignment, and emit the
// rest as paragraph lines. Features come back in reading order.
func GroupPage(items []Item, cfg Thresholds) []Feature {
	var texts []TextMark
	var rules []LineItem
	var images []ImageItem
	for _, it := range items {
		switch v := it.(type) {
		case TextItem:
			texts = append(texts, TextMark{
				Text: v.Text, X: v.X, Y: v.Y, EndX: v.EndX,
				Font: v.Font, FontSizePt: v.FontSizePt, ColorHex: v.ColorHex,
			})
		case LineItem:
			rules = append(rules, v)
		case ImageItem:
			images = append(images, v)
		}
	}

	consumedRules := bitset.New(uint(len(rules)))
	annotateDecorations(texts, rules, consumedRules, cfg)

	table, tableTop, consumedTexts := detectGridTable(texts, rules, consumedRules, cfg)

	// Step 1: sort survivors top-to-bottom, then left-to-right.
	var flow []TextMark
	for i, t := range texts {
		if consumedTexts == nil || !consumedTexts.Test(uint(i)) {
			flow = append(flow, t)
		}
	}
	sort.SliceStable(flow, func(i, j int) bool {
		if flow[i].Y != flow[j].Y {
			return flow[i].Y > flow[j].Y
		}
		return flow[i].X < flow[j].X
	})

	rows := groupRows(flow, cfg)
	features := assembleFlow(rows, images, cfg)

	if table != nil {
		features = insertFeatureAt(features, *table, tableTop)
	}
	return features
}

// annotateDecorations resolves step 5: a short horizontal rule
// overlapping a mark horizontally is an underline when it sits within
// UnderlineDropFactor font sizes below the baseline, a strikethrough
// when it crosses near baseline + StrikeRaiseFactor font sizes.
func annotateDecorations(texts []TextMark, rules []LineItem, consumed *bitset.BitSet, cfg Thresholds) {
	for ri, r := range rules {
		if !r.Horizontal() {
			continue
		}
		rx1, rx2 := math.Min(r.X1, r.X2), math.Max(r.X1, r.X2)
		ry := (r.Y1 + r.Y2) / 2
		for ti := range texts {
			t := &texts[ti]
			if rx2 < t.X || rx1 > t.EndX {
				continue
			}
			fs := t.FontSizePt
			if fs <= 0 {
				fs = 12
			}
			switch {
			case ry <= t.Y && t.Y-ry <= cfg.UnderlineDropFactor*fs:
				t.Underline = true
				consumed.Set(uint(ri))
			case math.Abs(ry-(t.Y+cfg.StrikeRaiseFactor*fs)) <= cfg.StrikeRaiseFactor*fs/2:
				t.Strike = true
				consumed.Set(uint(ri))
			}
		}
	}
}

// detectGridTable is step 3: cluster the long horizontal and vertical
// rules; when at least MinGridLines of each survive, the Cartesian
// product of the clusters forms cells and every mark whose baseline
// falls inside the grid is placed into its cell.
func detectGridTable(texts []TextMark, rules []LineItem, consumedRules *bitset.BitSet, cfg Thresholds) (*TableFeature, float64, *bitset.BitSet) {
	var hPos, vPos []float64
	for ri, r := range rules {
		if consumedRules.Test(uint(ri)) {
			continue
		}
		length := math.Hypot(r.X2-r.X1, r.Y2-r.Y1)
		if length < cfg.MinGridLineLengthPt {
			continue
		}
		if r.Horizontal() {
			hPos = append(hPos, (r.Y1+r.Y2)/2)
		} else if r.Vertical() {
			vPos = append(vPos, (r.X1+r.X2)/2)
		}
	}

	hClusters := clusterPositions(hPos, cfg.GridClusterTolerancePt)
	vClusters := clusterPositions(vPos, cfg.GridClusterTolerancePt)
	if len(hClusters) < cfg.MinGridLines || len(vClusters) < cfg.MinGridLines {
		return nil, 0, nil
	}

	// hClusters ascending; rows run top (max Y) to bottom.
	nRows := len(hClusters) - 1
	nCols := len(vClusters) - 1
	cells := make([][][]TextMark, nRows)
	for i := range cells {
		cells[i] = make([][]TextMark, nCols)
	}

	consumedTexts := bitset.New(uint(len(texts)))
	for ti, t := range texts {
		col := intervalIndex(vClusters, t.X)
		rowFromBottom := intervalIndex(hClusters, t.Y)
		if col < 0 || rowFromBottom < 0 {
			continue
		}
		row := nRows - 1 - rowFromBottom
		cells[row][col] = append(cells[row][col], t)
		consumedTexts.Set(uint(ti))
	}

	for i := range cells {
		for j := range cells[i] {
			sortMarks(cells[i][j])
		}
	}
	return &TableFeature{Rows: cells}, hClusters[len(hClusters)-1], consumedTexts
}

// clusterPositions merges a sorted position list into cluster centers
// within tolerance.
func clusterPositions(pos []float64, tol float64) []float64 {
	if len(pos) == 0 {
		return nil
	}
	sort.Float64s(pos)
	var out []float64
	runStart := 0
	for i := 1; i <= len(pos); i++ {
		if i == len(pos) || pos[i]-pos[i-1] > tol {
			sum := 0.0
			for _, v := range pos[runStart:i] {
				sum += v
			}
			out = append(out, sum/float64(i-runStart))
			runStart = i
		}
	}
	return out
}

// intervalIndex returns which [bounds[i], bounds[i+1]) interval v
// falls in, or -1 when outside.
func intervalIndex(bounds []float64, v float64) int {
	for i := 0; i+1 < len(bounds); i++ {
		if v >= bounds[i] && v < bounds[i+1] {
			return i
		}
	}
	return -1
}

func sortMarks(marks []TextMark) {
	sort.SliceStable(marks, func(i, j int) bool {
		if marks[i].Y != marks[j].Y {
			return marks[i].Y > marks[j].Y
		}
		return marks[i].X < marks[j].X
	})
}

// groupRows is step 2: consecutive sorted marks belong to one row when
// their baselines differ by at most max(RowYTolerancePt, fontSize/2).
func groupRows(sorted []TextMark, cfg Thresholds) []Line {
	var rows []Line
	for _, t := range sorted {
		if n := len(rows); n > 0 {
			tol := cfg.RowYTolerancePt
			if half := t.FontSizePt / 2; half > tol {
				tol = half
			}
			if math.Abs(rows[n-1].Y-t.Y) <= tol {
				rows[n-1].Marks = append(rows[n-1].Marks, t)
				continue
			}
		}
		rows = append(rows, Line{Y: t.Y, Marks: []TextMark{t}})
	}
	for i := range rows {
		sort.SliceStable(rows[i].Marks, func(a, b int) bool {
			return rows[i].Marks[a].X < rows[i].Marks[b].X
		})
	}
	return rows
}

// columnCount is the step-4 column test: a new column starts at a gap
// wider than ColumnGapFactor times the preceding mark's font size.
func columnCount(row Line, cfg Thresholds) int {
	if len(row.Marks) == 0 {
		return 0
	}
	cols := 1
	for i := 1; i < len(row.Marks); i++ {
		prev := row.Marks[i-1]
		size := prev.FontSizePt
		if size <= 0 {
			size = 12
		}
		if row.Marks[i].X-prev.EndX > cfg.ColumnGapFactor*size {
			cols++
		}
	}
	return cols
}

// splitColumns partitions a row's marks at the column gaps.
func splitColumns(row Line, cfg Thresholds) [][]TextMark {
	var out [][]TextMark
	var cur []TextMark
	for i, m := range row.Marks {
		if i > 0 {
			prev := row.Marks[i-1]
			size := prev.FontSizePt
			if size <= 0 {
				size = 12
			}
			if m.X-prev.EndX > cfg.ColumnGapFactor*size {
				out = append(out, cur)
				cur = nil
			}
		}
		cur = append(cur, m)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// assembleFlow is step 4: runs of >= 2 consecutive rows sharing the
// same multi-column count become a TableFeature; everything else
// accumulates into TextFeatures, with images interleaved by Y.
func assembleFlow(rows []Line, images []ImageItem, cfg Thresholds) []Feature {
	sort.SliceStable(images, func(a, b int) bool {
		return images[a].Y+images[a].H > images[b].Y+images[b].H
	})

	var out []Feature
	var textRun []Line
	flushText := func() {
		if len(textRun) > 0 {
			out = append(out, TextFeature{Lines: textRun})
			textRun = nil
		}
	}

	imgIdx := 0
	emitImagesAbove := func(y float64) {
		for imgIdx < len(images) && images[imgIdx].Y+images[imgIdx].H > y {
			img := images[imgIdx]
			flushText()
			out = append(out, ImageFeature{Data: img.Data, Ext: img.Ext, WidthPt: img.W, HeightPt: img.H})
			imgIdx++
		}
	}

	i := 0
	for i < len(rows) {
		emitImagesAbove(rows[i].Y)
		cols := columnCount(rows[i], cfg)
		if cols >= 2 {
			j := i + 1
			for j < len(rows) && columnCount(rows[j], cfg) == cols {
				j++
			}
			if j-i >= 2 {
				flushText()
				table := TableFeature{}
				for _, r := range rows[i:j] {
					table.Rows = append(table.Rows, splitColumns(r, cfg))
				}
				out = append(out, table)
				i = j
				continue
			}
		}
		textRun = append(textRun, rows[i])
		i++
	}
	flushText()
	emitImagesAbove(math.Inf(-1))
	return out
}

// insertFeatureAt places a grid table back into the reading-order
// feature list at its top-edge Y position.
func insertFeatureAt(features []Feature, table TableFeature, topY float64) []Feature {
	idx := len(features)
	for i, f := range features {
		var y float64
		switch v := f.(type) {
		case TextFeature:
			if len(v.Lines) > 0 {
				y = v.Lines[0].Y
			}
		case TableFeature:
			if len(v.Rows) > 0 && len(v.Rows[0]) > 0 && len(v.Rows[0][0]) > 0 {
				y = v.Rows[0][0][0].Y
			}
		case ImageFeature:
			y = 0
		}
		if topY > y {
			idx = i
			break
		}
	}
	out := make([]Feature, 0, len(features)+1)
	out = append(out, features[:idx]...)
	out = append(out, table)
	out = append(out, features[idx:]...)
	return out
}
