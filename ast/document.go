package ast

// Document is the root of the AST: an ordered sequence of Blocks plus the
// section/theme/note/font state spec §3 describes.
type Document struct {
	Blocks []Block

	// Section is the section descriptor in effect at the start of the
	// document body; SectionBreak blocks further down the body override
	// it from that point onward.
	Section Section

	// Theme is the named color palette and major/minor font families
	// used to resolve theme-color references on runs and shading.
	Theme Theme

	// Footnotes and Endnotes are keyed by their integer note ID. Every
	// FootnoteRef/EndnoteRef inline in the body must resolve to an entry
	// here (invariant, spec §3).
	Footnotes map[int]Note
	Endnotes  map[int]Note

	// Fonts holds embedded font payloads registered for obfuscated
	// embedding, keyed by family name.
	Fonts map[string][]byte

	// Media holds image payloads keyed by the MediaKey an Image or
	// InlineImage block references. Keys are content-hash derived so
	// identical bytes are stored once.
	Media map[string][]byte

	// Preserved holds raw XML for parts the writer did not regenerate:
	// styles, numbering, settings, webSettings, fontTable, contentTypes,
	// rootRelationships. Keys are the part path (e.g. "word/styles.xml").
	Preserved map[string][]byte

	Metadata Metadata

	Warnings []Warning
}

// NewDocument returns an empty document with one default section.
func NewDocument() Document {
	return Document{
		Blocks:    nil,
		Section:   DefaultSection(),
		Theme:     DefaultTheme(),
		Footnotes: map[int]Note{},
		Endnotes:  map[int]Note{},
		Fonts:     map[string][]byte{},
		Media:     map[string][]byte{},
		Preserved: map[string][]byte{},
	}
}

// Warn appends a non-fatal diagnostic and returns the updated document.
func (d Document) Warn(w Warning) Document {
	d.Warnings = append(d.Warnings, w)
	return d
}

// Metadata contains document properties (docProps/core.xml, app.xml).
type Metadata struct {
	Title       string
	Subject     string
	Creator     string
	Keywords    []string
	Description string
	Created     string // ISO 8601
	Modified    string // ISO 8601
}

// Note is a footnote or endnote definition: its own block sequence.
type Note struct {
	ID     int
	Blocks []Block
}

// Theme is the document's named color palette and font scheme.
type Theme struct {
	Name       string
	Colors     map[string]string // theme color name ("accent1", "dk1", ...) -> 6-hex uppercased
	MajorFont  string
	MinorFont  string
	EastAsia   string
	ComplexScr string
}

// DefaultTheme mirrors the Office default theme palette.
func DefaultTheme() Theme {
	return Theme{
		Name: "Office",
		Colors: map[string]string{
			"dk1":     "000000",
			"lt1":     "FFFFFF",
			"dk2":     "44546A",
			"lt2":     "E7E6E6",
			"accent1": "4472C4",
			"accent2": "ED7D31",
			"accent3": "A5A5A5",
			"accent4": "FFC000",
			"accent5": "5B9BD5",
			"accent6": "70AD47",
			"hlink":   "0563C1",
			"folHlink": "954F72",
		},
		MajorFont: "Calibri Light",
		MinorFont: "Calibri",
	}
}

// ResolveThemeColor looks up a theme color by name and returns its
// base hex. The tint and shade arguments are not applied here: the
// result is the palette entry unchanged, and callers blend it with
// pkg/color Tint (toward white) or Shade (toward black) themselves.
func (t Theme) ResolveThemeColor(name string, tint, shade uint8) (string, bool) {
	hex, ok := t.Colors[name]
	if !ok {
		return "", false
	}
	if tint == 0 && shade == 0 {
		return hex, true
	}
	// Only the base hex is resolved; internal/astconv's
	// resolveTextColor applies the tint or shade to it.
	return hex, true
}
