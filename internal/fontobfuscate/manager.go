package fontobfuscate

import (
	"fmt"
	"sync"

	"github.com/wordengine/docflow/internal/registry"
)

// Style distinguishes the four embedding slots OOXML allows per font
// family (w:embedRegular/Bold/Italic/BoldItalic).
type Style int

const (
	StyleRegular Style = iota
	StyleBold
	StyleItalic
	StyleBoldItalic
)

// Entry is one embedded, obfuscated font program ready to write to
// word/fonts/{GUID}.odttf.
type Entry struct {
	Family   string
	Style    Style
	GUID     GUID
	FontKey  string // w:fontKey value (same GUID, textual form)
	FileName string // "{GUID}.odttf"
	Data     []byte // obfuscated bytes
}

// Manager collects the font programs referenced by a document's
// fontTable so the writer can obfuscate and embed them. Embed does not
// deduplicate: every call adds a new entry with a fresh GUID. Font-key GUIDs come from the document's single seedable entropy
// source, so a seeded assembly run produces identical packages.
type Manager struct {
	mu      sync.Mutex
	entropy *registry.Entropy
	entries []Entry
	counter int
}

// NewManager returns an empty font manager drawing GUIDs from ent.
func NewManager(ent *registry.Entropy) *Manager {
	return &Manager{entropy: ent}
}

// Embed obfuscates raw and registers it under family/style, returning
// the Entry the writer should place at word/fonts/<FileName>.
func (m *Manager) Embed(family string, style Style, raw []byte) (Entry, error) {
	g := GUID(m.entropy.RawGUIDBytes())

	m.mu.Lock()
	defer m.mu.Unlock()

	m.counter++
	e := Entry{
		Family:   family,
		Style:    style,
		GUID:     g,
		FontKey:  g.String(),
		FileName: fmt.Sprintf("%s.odttf", g.String()),
		Data:     Obfuscate(raw, g),
	}
	m.entries = append(m.entries, e)
	return e, nil
}

// All returns every embedded font entry in registration order.
func (m *Manager) All() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}
