package gameplay

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/lixenwraith/vi-recall/core"
)

// Generator draws uniformly distributed targets
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a deterministic generator for seed
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NewRandomGenerator creates a generator seeded from crypto/rand
// Falls back to the wall clock when the system entropy source fails
func NewRandomGenerator() *Generator {
	seed, err := NewSeed()
	if err != nil {
		seed = time.Now().UnixNano()
	}
	return NewGenerator(seed)
}

// NewSeed generates a random seed using crypto/rand
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Pick returns one target drawn uniformly from core.AllTargets
func (g *Generator) Pick() core.Target {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pickLocked()
}

// Extend returns a new sequence holding seq followed by one fresh pick
// seq itself is left untouched
func (g *Generator) Extend(seq []core.Target) []core.Target {
	next := make([]core.Target, len(seq), len(seq)+1)
	copy(next, seq)

	g.mu.Lock()
	defer g.mu.Unlock()
	return append(next, g.pickLocked())
}

// Sequence returns n independent picks; repeats are allowed
func (g *Generator) Sequence(n int) []core.Target {
	if n <= 0 {
		return nil
	}
	seq := make([]core.Target, n)

	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range seq {
		seq[i] = g.pickLocked()
	}
	return seq
}

func (g *Generator) pickLocked() core.Target {
	return core.AllTargets[g.rng.Intn(len(core.AllTargets))]
}
