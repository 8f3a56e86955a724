package world

import "testing"

// scriptedRNG returns queued values in order and ignores the requested range.
type scriptedRNG struct {
	values []int
	next   int
}

func (s *scriptedRNG) Range(low, high int) int {
	if s.next >= len(s.values) {
		panic("scriptedRNG: out of values")
	}
	v := s.values[s.next]
	s.next++
	return v
}

// constRNG always returns the same value.
type constRNG int

func (c constRNG) Range(low, high int) int { return int(c) }

func newTestBuilder(t *testing.T, params Params, rng RandomNumberGenerator) *MapBuilder {
	t.Helper()
	b, err := NewMapBuilder(params, rng)
	if err != nil {
		t.Fatalf("NewMapBuilder() error = %v", err)
	}
	return b
}
