// Package rng provides the dice-style random source used by level generation.
package rng

import (
	"math/rand"
	"time"
)

// Generator is a seeded random source. It is not safe for concurrent use;
// give every game its own.
type Generator struct {
	seed int64
	r    *rand.Rand
}

// New returns a Generator seeded with seed. A zero seed is replaced by the
// current time so every run differs.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{seed: seed, r: rand.New(rand.NewSource(seed))}
}

// Seed returns the seed this generator started from.
func (g *Generator) Seed() int64 { return g.seed }

// RollDice sums n rolls of a die with faces 1..sides.
// Dice with fewer than one side contribute nothing.
func (g *Generator) RollDice(n, sides int) int {
	if sides < 1 {
		return 0
	}
	total := 0
	for range n {
		total += g.r.Intn(sides) + 1
	}
	return total
}

// Range returns a uniform integer in [lo, hi). It returns lo when hi <= lo.
func (g *Generator) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.r.Intn(hi-lo)
}

// Intn exposes the underlying source for host code that needs plain draws.
func (g *Generator) Intn(n int) int {
	return g.r.Intn(n)
}
