package ast

// BlockKind identifies which concrete type a Block value holds.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockTable
	BlockList
	BlockImage
	BlockShape
	BlockSectionBreak
	BlockDropCap
	BlockTOC
)

func (k BlockKind) String() string {
	switch k {
	case BlockParagraph:
		return "Paragraph"
	case BlockTable:
		return "Table"
	case BlockList:
		return "List"
	case BlockImage:
		return "Image"
	case BlockShape:
		return "ShapeBlock"
	case BlockSectionBreak:
		return "SectionBreak"
	case BlockDropCap:
		return "DropCap"
	case BlockTOC:
		return "TableOfContents"
	default:
		return "Unknown"
	}
}

// Block is the closed sum type for top-level document content. The
// concrete types are Paragraph, Table, List, Image, ShapeBlock,
// SectionBreak, DropCap and TableOfContents; block() is unexported so
// no type outside this package can implement Block.
type Block interface {
	Kind() BlockKind
	Visit(v Visitor) error
	block()
}
