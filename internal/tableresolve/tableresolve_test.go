package tableresolve

import (
	"testing"

	"github.com/wordengine/docflow/ast"
)

func TestResolveExpandsGridSpan(t *testing.T) {
	row := ast.NewTableRow(
		ast.NewTableCell().WithGridSpan(2),
		ast.NewTableCell(),
	)
	table := ast.NewTable(row).WithGridColsTwips([]int{100, 100, 100})

	grid := Resolve(table)
	if len(grid.RowOwners) != 1 {
		t.Fatalf("expected 1 row, got %d", len(grid.RowOwners))
	}
	owners := grid.RowOwners[0]
	if owners[0] != 0 || owners[1] != 0 {
		t.Fatalf("expected columns 0 and 1 owned by cell 0, got %v", owners)
	}
	if owners[2] != 1 {
		t.Fatalf("expected column 2 owned by cell 1, got %v", owners)
	}
}

func TestResolveCarriesVMergeDown(t *testing.T) {
	top := ast.NewTableRow(ast.NewTableCell().WithVMerge(ast.VMergeRestart))
	bottom := ast.NewTableRow(ast.NewTableCell().WithVMerge(ast.VMergeContinue))
	table := ast.NewTable(top, bottom).WithGridColsTwips([]int{100})

	grid := Resolve(table)
	if grid.RowOwners[0][0] != 0 {
		t.Fatalf("expected row 0 col 0 owned by cell 0, got %d", grid.RowOwners[0][0])
	}
	if grid.RowOwners[1][0] != 0 {
		t.Fatalf("expected row 1 col 0 to resolve to the restart cell (0), got %d", grid.RowOwners[1][0])
	}
}

func TestResolveCellBorderFallsBackToTable(t *testing.T) {
	table := ast.NewTable().WithBorder(ast.BorderTop, ast.Border{Style: "single", SizeEighthPt: 4})
	cell := ast.NewTableCell()

	b, ok := ResolveCellBorder(table, cell, ast.BorderTop)
	if !ok {
		t.Fatal("expected table border to apply")
	}
	if b.Style != "single" {
		t.Fatalf("unexpected style: %s", b.Style)
	}

	cellOverride := cell.WithBorder(ast.BorderTop, ast.Border{Style: "double", SizeEighthPt: 8})
	b2, ok := ResolveCellBorder(table, cellOverride, ast.BorderTop)
	if !ok || b2.Style != "double" {
		t.Fatalf("expected cell border to win, got %+v ok=%v", b2, ok)
	}
}

func TestInferGridWhenNoExplicitGrid(t *testing.T) {
	row := ast.NewTableRow(ast.NewTableCell(), ast.NewTableCell(), ast.NewTableCell())
	table := ast.NewTable(row)

	grid := Resolve(table)
	if len(grid.ColsTwips) != 3 {
		t.Fatalf("expected 3 inferred columns, got %d", len(grid.ColsTwips))
	}
}
