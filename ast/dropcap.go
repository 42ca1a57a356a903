package ast

// DropCap is a paragraph whose leading letter(s) are enlarged and
// span multiple lines of the following text (w:framePr dropCap).
type DropCap struct {
	Letters    string
	Lines      int // how many text lines the drop cap spans
	FontFamily string
	StyleRef   string
	Runs       []Inline // the remaining text of the paragraph, after Letters
}

func NewDropCap(letters string, lines int, runs ...Inline) DropCap {
	return DropCap{Letters: letters, Lines: lines, Runs: runs}
}

func (d DropCap) WithFontFamily(f string) DropCap { d.FontFamily = f; return d }
func (d DropCap) WithStyleRef(s string) DropCap   { d.StyleRef = s; return d }

func (DropCap) Kind() BlockKind         { return BlockDropCap }
func (d *DropCap) Visit(v Visitor) error { return v.VisitDropCap(d) }
func (DropCap) block()                  {}
