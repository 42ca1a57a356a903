package ast

// PageOrientation enumerates portrait/landscape.
type PageOrientation int

const (
	OrientationPortrait PageOrientation = iota
	OrientationLandscape
)

// SectionStartType enumerates how a section break begins a new page run.
type SectionStartType int

const (
	SectionContinuous SectionStartType = iota
	SectionNextPage
	SectionEvenPage
	SectionOddPage
	SectionNextColumn
)

// Margins holds the four page margins plus header/footer/gutter
// distances, all in twips.
type Margins struct {
	TopTwips    int
	BottomTwips int
	LeftTwips   int
	RightTwips  int
	HeaderTwips int
	FooterTwips int
	GutterTwips int
}

// Section describes page geometry and header/footer wiring for the
// body text that follows until the next SectionBreak.
type Section struct {
	WidthTwips  int
	HeightTwips int
	Orientation PageOrientation
	Margins     Margins
	StartType   SectionStartType

	ColumnCount      int
	ColumnSpaceTwips int

	// HeaderRefs/FooterRefs name a key into the Document's header/footer
	// registry (keyed by type: "default", "first", "even"); empty
	// means inherit from the previous section.
	HeaderRefs map[string]string
	FooterRefs map[string]string

	DifferentFirstPage bool
	DifferentOddEven   bool

	// BackgroundFill, when non-empty, is a page background color
	// (w:background) in 6-hex.
	BackgroundFill string

	PageNumberStart  int
	PageNumberFormat string // "decimal"|"upperRoman"|...
}

// DefaultSection returns a Letter-size portrait section with 1in
// margins, matching common word-processor defaults.
func DefaultSection() Section {
	return Section{
		WidthTwips:  12240,
		HeightTwips: 15840,
		Orientation: OrientationPortrait,
		Margins: Margins{
			TopTwips: 1440, BottomTwips: 1440,
			LeftTwips: 1440, RightTwips: 1440,
			HeaderTwips: 720, FooterTwips: 720,
		},
		StartType:   SectionNextPage,
		ColumnCount: 1,
	}
}

// SectionBreak is a block marking the end of the preceding section
// and carrying the Section descriptor for everything that follows.
type SectionBreak struct {
	Section Section
}

func NewSectionBreak(s Section) SectionBreak { return SectionBreak{Section: s} }

func (SectionBreak) Kind() BlockKind         { return BlockSectionBreak }
func (s *SectionBreak) Visit(v Visitor) error { return v.VisitSectionBreak(s) }
func (SectionBreak) block()                  {}
