// Package rng is the random source shared by every stochastic component:
// uniform draws, binomial counts and sampling without replacement.
//
// A Source is not safe for concurrent use. Goroutines that need randomness
// take their own stream with Split, the same way each worker in a study gets
// its own seeded generator.
package rng

import (
	"math/rand/v2"
	"time"

	"gaops/bits"

	"github.com/zeebo/xxh3"
)

const golden = 0x9e3779b97f4a7c15

type Source struct {
	pcg  *rand.PCG
	r    *rand.Rand
	mark *bits.BitVector
}

func New(seed uint64) *Source {
	pcg := rand.NewPCG(seed, seed^golden)
	return &Source{pcg: pcg, r: rand.New(pcg)}
}

var global = New(uint64(time.Now().UnixNano()))

// Global returns the process-wide source.
func Global() *Source {
	return global
}

// Split returns an independent stream. The child seed mixes a draw from s
// with label, so two splits with different labels never share a stream.
func (s *Source) Split(label string) *Source {
	return New(xxh3.HashStringSeed(label, s.pcg.Uint64()))
}

// Seed resets the stream.
func (s *Source) Seed(seed uint64) {
	s.pcg.Seed(seed, seed^golden)
}

func (s *Source) Uint64() uint64 {
	return s.pcg.Uint64()
}

// Float64 returns a uniform value in [0,1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// IntN returns a uniform value in [0,n). It panics if n <= 0.
func (s *Source) IntN(n int) int {
	return s.r.IntN(n)
}
