/*
MIT License

Copyright (c) 2025 Misael Monterroca
Copyright (c) 2020-2023 fumiama (original go-docx)

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

// Package tableresolve normalizes a table's row-span/col-span state
// into an explicit grid and resolves border/shading precedence
// between table and cell level formatting.
package tableresolve

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/wordengine/docflow/ast"
)

// Grid is the normalized column layout a Table resolves to: one
// ColsTwips entry per column, plus for every row a per-column
// owner index into that row's Cells (a merged cell's column run all
// point at the same cell index).
type Grid struct {
	ColsTwips []int
	RowOwners [][]int
}

// Resolve derives the column grid from a table's declared
// GridColsTwips (or, if absent, infers column count and equal widths
// from the widest row) and computes, for each row, which cell index
// owns each grid column — expanding GridSpan and carrying VMergeContinue
// cells down from the VMergeRestart cell above them in the same column.
func Resolve(t ast.Table) Grid {
	cols := t.GridColsTwips
	if len(cols) == 0 {
		cols = inferGrid(t)
	}

	owners := make([][]int, len(t.Rows))
	// restartRow[col] and restartCell[col] hold the (row, cell) that most recently
	// opened a vertical merge in that column, so a VMergeContinue cell
	// further down resolves to the same logical cell.
	restartRow := make([]int, len(cols))
	restartCell := make([]int, len(cols))
	occupied := bitset.New(uint(len(cols)))

	for r, row := range t.Rows {
		occupied.ClearAll()
		rowOwners := make([]int, len(cols))
		for i := range rowOwners {
			rowOwners[i] = -1
		}
		col := 0
		for ci, cell := range row.Cells {
			span := cell.GridSpan
			if span < 1 {
				span = 1
			}
			for s := 0; s < span && col < len(cols); s++ {
				if occupied.Test(uint(col)) {
					// malformed input declared overlapping spans; move
					// on to the next free column rather than clobber it.
					col++
					continue
				}
				if cell.VMerge == ast.VMergeContinue {
					rowOwners[col] = restartCell[col]
					owners[restartRow[col]][col] = restartCell[col]
				} else {
					rowOwners[col] = ci
					restartRow[col] = r
					restartCell[col] = ci
				}
				occupied.Set(uint(col))
				col++
			}
		}
		owners[r] = rowOwners
	}

	return Grid{ColsTwips: cols, RowOwners: owners}
}

func inferGrid(t ast.Table) []int {
	maxCols := 0
	for _, row := range t.Rows {
		n := 0
		for _, c := range row.Cells {
			span := c.GridSpan
			if span < 1 {
				span = 1
			}
			n += span
		}
		if n > maxCols {
			maxCols = n
		}
	}
	if maxCols == 0 {
		return nil
	}
	width := t.WidthTwips
	if width == 0 {
		width = 9360 // default printable width at 1in margins on letter
	}
	cols := make([]int, maxCols)
	each := width / maxCols
	for i := range cols {
		cols[i] = each
	}
	return cols
}

// ResolveCellBorder applies OOXML's border precedence: a cell's own
// border wins; if unset, the lookup falls through to the table's border
// for that side; if the table has none either, the side is borderless.
func ResolveCellBorder(t ast.Table, cell ast.TableCell, side ast.BorderSide) (ast.Border, bool) {
	if b, ok := cell.Borders[side]; ok {
		return b, true
	}
	if b, ok := t.Borders[side]; ok {
		return b, true
	}
	return ast.Border{}, false
}

// ResolveCellShading applies shading precedence: cell shading wins
// over table shading.
func ResolveCellShading(t ast.Table, cell ast.TableCell) (string, bool) {
	if cell.ShadingFill != "" {
		return cell.ShadingFill, true
	}
	if t.ShadingFill != "" {
		return t.ShadingFill, true
	}
	return "", false
}
