package registry

import (
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// NumberingPool tracks which numbering definition IDs (abstractNumId/
// numId) are already taken, so a caller requesting a fresh one never
// collides with one a List explicitly pinned (spec's lists carry a
// caller-visible numeric ID, unlike the opaque string IDs id.go hands
// out for internal bookkeeping).
type NumberingPool struct {
	mu   sync.Mutex
	used *bitset.BitSet
	next uint
}

// NewNumberingPool returns an empty pool.
func NewNumberingPool() *NumberingPool {
	return &NumberingPool{used: bitset.New(64)}
}

// Reserve marks id as taken. Returns false if it was already taken.
func (p *NumberingPool) Reserve(id int) bool {
	if id < 0 {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	u := uint(id)
	if p.used.Test(u) {
		return false
	}
	p.used.Set(u)
	return true
}

// Next allocates the lowest unused ID at or above 1.
func (p *NumberingPool) Next() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	for p.used.Test(p.next) || p.next == 0 {
		p.next++
	}
	id := p.next
	p.used.Set(id)
	p.next++
	return int(id)
}

// Release frees id for reuse.
func (p *NumberingPool) Release(id int) {
	if id < 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.used.Clear(uint(id))
	if uint(id) < p.next {
		p.next = uint(id)
	}
}
