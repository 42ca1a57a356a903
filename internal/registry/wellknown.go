package registry

import (
	"strings"

	"github.com/wordengine/docflow/pkg/constants"
)

// relTarget converts a part path to the document-part-relative form
// document.xml.rels targets use ("word/styles.xml" -> "styles.xml").
func relTarget(path string) string {
	return strings.TrimPrefix(path, "word/")
}

// wellKnownRels lists the document-part relationships every package
// reserves a fixed, low-numbered ID for. Word and other consumers
// tolerate any ID here, but real-world packages consistently number
// them in this order, and reusing that order keeps byte-for-byte
// comparisons against genuine packages meaningful.
var wellKnownRels = []struct {
	relType string
	target  string
}{
	{constants.RelTypeStyles, relTarget(constants.PathStyles)},
	{constants.RelTypeSettings, relTarget(constants.PathSettings)},
	{constants.RelTypeWebSettings, relTarget(constants.PathWebSettings)},
	{constants.RelTypeFontTable, relTarget(constants.PathFontTable)},
	{constants.RelTypeNumbering, relTarget(constants.PathNumbering)},
}

// ReserveWellKnown registers the styles/settings/webSettings/fontTable/
// numbering relationships in that fixed order, so they land on rId1
// through rId5 on a freshly created RelationshipManager. Call this
// once, immediately after NewRelationshipManager, before any other
// relationship is added.
func (rm *RelationshipManager) ReserveWellKnown() error {
	for _, wk := range wellKnownRels {
		if _, err := rm.Add(wk.relType, wk.target, "Internal"); err != nil {
			return err
		}
	}
	return nil
}

// ReserveNotes registers footnotes.xml/endnotes.xml relationships; kept
// separate from ReserveWellKnown because not every document has notes.
func (rm *RelationshipManager) ReserveNotes(hasFootnotes, hasEndnotes bool) error {
	if hasFootnotes {
		if _, err := rm.Add(constants.RelTypeFootnotes, relTarget(constants.PathFootnotes), "Internal"); err != nil {
			return err
		}
	}
	if hasEndnotes {
		if _, err := rm.Add(constants.RelTypeEndnotes, relTarget(constants.PathEndnotes), "Internal"); err != nil {
			return err
		}
	}
	return nil
}
