// Package rng provides the deterministic pseudo-random source driving
// puzzle generation. The sequence must be reproducible bit-for-bit for a
// given seed across runs and platforms, so all intermediate state is
// fixed-width integer arithmetic; floats appear only in the final scaling
// step. math/rand carries no such cross-version stability guarantee,
// which is why this is not built on top of it.
package rng

// Source is a 32-bit mulberry32 generator. The zero value is a valid
// source seeded with 0; use New for explicit seeding. Source is not safe
// for concurrent use — construct one per consumer.
type Source struct {
	state uint32
}

// New returns a Source seeded with the given value.
func New(seed uint32) *Source {
	return &Source{state: seed}
}

// Next advances the state by a fixed odd increment, mixes it, and
// returns the result scaled into [0, 1).
func (s *Source) Next() float64 {
	s.state += 0x6D2B79F5
	z := s.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	z ^= z >> 14
	return float64(z) / (1 << 32)
}

// Int returns a uniformly drawn integer in the inclusive range [min, max],
// consuming exactly one draw.
func (s *Source) Int(min, max int) int {
	return min + int(s.Next()*float64(max-min+1))
}

// Shuffle permutes n elements in place via Fisher-Yates, walking from the
// last index down to 1 and consuming exactly one draw per swap.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i >= 1; i-- {
		j := s.Int(0, i)
		swap(i, j)
	}
}

// Perm returns a shuffled permutation of the integers [0, n).
func (s *Source) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	s.Shuffle(n, func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})
	return p
}
