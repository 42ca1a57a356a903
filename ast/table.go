package ast

// VAlign enumerates vertical cell alignment.
type VAlign int

const (
	VAlignTop VAlign = iota
	VAlignCenter
	VAlignBottom
)

// VMerge marks a cell's vertical-merge role within its column.
type VMerge int

const (
	VMergeNone VMerge = iota
	VMergeRestart // this cell starts a vertical span
	VMergeContinue // this cell continues the span above it
)

// TableLook is the tblLook conditional-formatting bitmask (first
// row/column, last row/column, banding) a style uses to decide which
// conditional table-style formats apply.
type TableLook struct {
	FirstRow    bool
	LastRow     bool
	FirstColumn bool
	LastColumn  bool
	NoHBand     bool
	NoVBand     bool
}

// TableCell is one cell of a TableRow. Width is the cell's own width
// in twips; GridSpan is how many grid columns it occupies (merged
// cells occupy more than one).
type TableCell struct {
	Blocks []Block

	WidthTwips int
	GridSpan   int
	VMerge     VMerge
	VAlign     VAlign

	ShadingFill string
	Borders     map[BorderSide]Border

	MarginTopTwips    int
	MarginBottomTwips int
	MarginLeftTwips   int
	MarginRightTwips  int
}

func NewTableCell(blocks ...Block) TableCell {
	return TableCell{Blocks: blocks, GridSpan: 1}
}

func (c TableCell) WithWidth(twips int) TableCell { c.WidthTwips = twips; return c }
func (c TableCell) WithGridSpan(n int) TableCell {
	if n < 1 {
		n = 1
	}
	c.GridSpan = n
	return c
}
func (c TableCell) WithVMerge(m VMerge) TableCell   { c.VMerge = m; return c }
func (c TableCell) WithVAlign(a VAlign) TableCell   { c.VAlign = a; return c }
func (c TableCell) WithShading(hex string) TableCell { c.ShadingFill = hex; return c }
func (c TableCell) WithBorder(side BorderSide, b Border) TableCell {
	if c.Borders == nil {
		c.Borders = map[BorderSide]Border{}
	}
	c.Borders[side] = b
	return c
}

// TableRow is an ordered sequence of cells. CantSplit prevents the row
// from breaking across pages; Header marks it as a repeating header row.
type TableRow struct {
	Cells     []TableCell
	HeightTwips int
	CantSplit bool
	Header    bool
}

func NewTableRow(cells ...TableCell) TableRow { return TableRow{Cells: cells} }

func (r TableRow) WithHeight(twips int) TableRow { r.HeightTwips = twips; return r }
func (r TableRow) WithHeader(b bool) TableRow     { r.Header = b; return r }
func (r TableRow) WithCantSplit(b bool) TableRow  { r.CantSplit = b; return r }

// Table is a grid of rows. GridColsTwips is the column-width grid a
// conforming reader must derive or a writer must emit (w:tblGrid);
// cell GridSpan values are relative to this grid, not to the row's
// literal cell count (spec §4.5 normalization invariant).
type Table struct {
	Rows          []TableRow
	GridColsTwips []int

	WidthTwips int
	Alignment  Alignment
	Look       TableLook

	Borders     map[BorderSide]Border
	ShadingFill string

	StyleRef string

	// Floating, when true, anchors the table to a fixed page position
	// instead of flowing with the surrounding text (w:tblpPr).
	Floating       bool
	FloatXTwips    int
	FloatYTwips    int
}

func NewTable(rows ...TableRow) Table {
	return Table{Rows: rows}
}

func (t Table) WithGridColsTwips(cols []int) Table { t.GridColsTwips = cols; return t }
func (t Table) WithWidth(twips int) Table           { t.WidthTwips = twips; return t }
func (t Table) WithAlignment(a Alignment) Table     { t.Alignment = a; return t }
func (t Table) WithLook(l TableLook) Table           { t.Look = l; return t }
func (t Table) WithStyleRef(style string) Table      { t.StyleRef = style; return t }
func (t Table) WithBorder(side BorderSide, b Border) Table {
	if t.Borders == nil {
		t.Borders = map[BorderSide]Border{}
	}
	t.Borders[side] = b
	return t
}
func (t Table) WithShading(hex string) Table { t.ShadingFill = hex; return t }
func (t Table) WithFloatPosition(xTwips, yTwips int) Table {
	t.Floating = true
	t.FloatXTwips = xTwips
	t.FloatYTwips = yTwips
	return t
}

func (Table) Kind() BlockKind          { return BlockTable }
func (t *Table) Visit(v Visitor) error { return v.VisitTable(t) }
func (Table) block()                  {}
