// Package rng provides the uniform integer source shared by a simulation run.
//
// A run owns exactly one Generator. Behaviors, victim selection and the turn
// shuffle all draw from it, so a run is a deterministic function of the seed.
package rng

import (
	"fmt"
	"math/rand"
)

// Generator produces uniformly distributed integers over an inclusive range.
// Callers must pass min <= max.
type Generator interface {
	Generate(min, max int) int
}

// Source is a Generator backed by a seeded math/rand source.
// It is not safe for concurrent use.
type Source struct {
	seed int64
	rng  *rand.Rand
}

// NewSource creates a Source seeded with seed.
func NewSource(seed int64) *Source {
	return &Source{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() int64 {
	return s.seed
}

// Generate returns an integer in [min, max]. It panics if min > max.
func (s *Source) Generate(min, max int) int {
	if min > max {
		panic(fmt.Sprintf("rng: invalid range [%d, %d]", min, max))
	}
	return s.rng.Intn(max-min+1) + min
}
