package ast

// NumberFormat enumerates the numbering formats a ListLevel can use.
type NumberFormat int

const (
	NumberFormatBullet NumberFormat = iota
	NumberFormatDecimal
	NumberFormatLowerLetter
	NumberFormatUpperLetter
	NumberFormatLowerRoman
	NumberFormatUpperRoman
)

// ListLevel describes one indentation level's numbering appearance.
type ListLevel struct {
	Format     NumberFormat
	BulletChar string // used when Format == NumberFormatBullet, e.g. "•"
	TextFormat string // e.g. "%1." or "%1.%2)"
	StartAt    int
	IndentTwips int
	FontFamily string // bullet glyph font, e.g. "Symbol", "Wingdings"
}

// ListStyle is a numbering definition shared across the ListItems
// that reference it by ID (abstractNumId/numId in OOXML terms).
type ListStyle struct {
	ID     int
	Levels []ListLevel // index 0 = level 0
	Ordered bool
}

func NewListStyle(id int, ordered bool, levels ...ListLevel) ListStyle {
	return ListStyle{ID: id, Ordered: ordered, Levels: levels}
}

// ListItem is one entry in a List, itself a paragraph at a given
// indentation level.
type ListItem struct {
	Paragraph Paragraph
	Level     int
}

func NewListItem(p Paragraph, level int) ListItem {
	return ListItem{Paragraph: p, Level: level}
}

// List is a block grouping a run of ListItems under one ListStyle.
// The Style's ID doubles as the numbering-ID every item references;
// StartIndex carries numbering continuity when the same list resumes
// after an interruption (1 when the list starts fresh). A ListItem's
// Paragraph.NumberingID/Level, when set, overrides this List's Style
// for that one item (direct formatting wins over the group default).
type List struct {
	Items      []ListItem
	Style      ListStyle
	StartIndex int
}

func NewList(style ListStyle, items ...ListItem) List {
	return List{Style: style, Items: items, StartIndex: 1}
}

func (l List) WithItems(items ...ListItem) List { l.Items = items; return l }
func (l List) WithStartIndex(n int) List        { l.StartIndex = n; return l }

func (List) Kind() BlockKind         { return BlockList }
func (l *List) Visit(v Visitor) error { return v.VisitList(l) }
func (List) block()                  {}
