package registry

import (
	"fmt"
	"math/rand"
	"sync"
)

// Entropy generates GUIDs, RSIDs, and document IDs from a single
// seeded source so an entire assembly run is reproducible: two calls
// to NewEntropy with the same seed hand out the same sequence of
// GUIDs, RSIDs and document IDs.
type Entropy struct {
	mu         sync.Mutex
	rnd        *rand.Rand
	usedDocIDs map[string]bool
}

// NewEntropy returns an Entropy seeded deterministically. Pass the
// current time's UnixNano for production use, or a fixed constant in
// tests.
func NewEntropy(seed int64) *Entropy {
	return &Entropy{
		rnd:        rand.New(rand.NewSource(seed)),
		usedDocIDs: make(map[string]bool, 4),
	}
}

// GUID returns a random RFC 4122 version-4 GUID string in the
// "{XXXXXXXX-XXXX-4XXX-YXXX-XXXXXXXXXXXX}" form OOXML uses for
// w:rsid values' source data and font obfuscation keys.
func (e *Entropy) GUID() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	var b [16]byte
	e.rnd.Read(b[:])
	b[6] = (b[6] & 0x0f) | 0x40 // version 4
	b[8] = (b[8] & 0x3f) | 0x80 // variant 10

	return fmt.Sprintf("{%08X-%04X-%04X-%04X-%012X}",
		b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}

// RawGUIDBytes returns the 16 raw bytes behind a GUID() call, in the
// mixed-endian order Windows GUID structs store them on disk (the
// first three fields little-endian, the last two big-endian) — the
// byte layout internal/fontobfuscate needs to derive its XOR key from
// a font's <w:guid> attribute.
func (e *Entropy) RawGUIDBytes() [16]byte {
	e.mu.Lock()
	defer e.mu.Unlock()

	var b [16]byte
	e.rnd.Read(b[:])
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return b
}

// RSID returns an 8-hex-digit revision-save ID, as used in w:rsid*
// attributes to group edits made in one editing session.
func (e *Entropy) RSID() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fmt.Sprintf("%08X", e.rnd.Uint32())
}

// DocumentID returns an 8-hex-digit uppercased random 32-bit number,
// left-padded with zeros, for settings.xml's document identifier.
// A candidate already handed out is retried up to 100 times; after
// that the last candidate is returned anyway — duplicates are
// harmless at higher levels because the container imposes no
// uniqueness constraint across ID kinds.
func (e *Entropy) DocumentID() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	var id string
	for attempt := 0; attempt < 100; attempt++ {
		id = fmt.Sprintf("%08X", e.rnd.Uint32())
		if !e.usedDocIDs[id] {
			break
		}
	}
	e.usedDocIDs[id] = true
	return id
}
