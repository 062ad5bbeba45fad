package testutil

import "sync"

// FixedRevisionGenerator returns predetermined catalog revisions in order.
//
// Store tests use it so synced rows are identical across runs and so a
// test can tell which sync stamped a type.
//
// Thread-safety: FixedRevisionGenerator is safe for concurrent use via internal mutex.
type FixedRevisionGenerator struct {
	mu        sync.Mutex
	revisions []string
	idx       int
}

// NewFixedRevisionGenerator creates a generator that returns revisions in order.
//
//	gen := NewFixedRevisionGenerator("rev-1", "rev-2")
//	gen.Generate() // "rev-1"
//	gen.Generate() // "rev-2"
//	gen.Generate() // panic: all revisions exhausted
func NewFixedRevisionGenerator(revisions ...string) *FixedRevisionGenerator {
	return &FixedRevisionGenerator{revisions: revisions}
}

// Generate returns the next predetermined revision.
//
// Implements store.RevisionGenerator. Panics once every revision has been
// consumed, which means the test synced more often than it planned.
func (g *FixedRevisionGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.revisions) {
		panic("FixedRevisionGenerator: all revisions exhausted")
	}
	rev := g.revisions[g.idx]
	g.idx++
	return rev
}
