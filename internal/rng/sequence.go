package rng

import "fmt"

// Sequence is a scripted Generator for tests. Each call to Generate returns
// the next queued value. It panics when the script runs out or when a queued
// value falls outside the requested range, so a test never silently drifts
// from the roll order it expects.
type Sequence struct {
	values []int
	calls  int
}

// NewSequence creates a Sequence that returns values in order.
func NewSequence(values ...int) *Sequence {
	v := make([]int, len(values))
	copy(v, values)
	return &Sequence{values: v}
}

// Generate returns the next scripted value.
func (s *Sequence) Generate(min, max int) int {
	if s.calls >= len(s.values) {
		panic(fmt.Sprintf("rng: sequence exhausted after %d calls (asked for [%d, %d])", s.calls, min, max))
	}
	v := s.values[s.calls]
	s.calls++
	if v < min || v > max {
		panic(fmt.Sprintf("rng: scripted value %d outside [%d, %d] on call %d", v, min, max, s.calls))
	}
	return v
}

// Calls returns how many values have been drawn.
func (s *Sequence) Calls() int {
	return s.calls
}

// Remaining returns how many scripted values are left.
func (s *Sequence) Remaining() int {
	return len(s.values) - s.calls
}
