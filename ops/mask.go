package ops

import (
	"gaops/bits"
	"gaops/errutil"
	"gaops/rng"
)

// MaskGenerator builds bit masks in which every bit is 1 independently with
// probability U.
type MaskGenerator struct {
	u        float64
	strategy Strategy
	src      *rng.Source
	idx      []int
}

// NewMaskGenerator clamps u into [0,1].
func NewMaskGenerator(u float64, strategy Strategy, src *rng.Source) *MaskGenerator {
	return &MaskGenerator{u: clamp01(u), strategy: strategy, src: src}
}

func (g *MaskGenerator) U() float64 { return g.u }

func (g *MaskGenerator) Strategy() Strategy { return g.strategy }

// Generate returns a fresh mask of length n.
func (g *MaskGenerator) Generate(n int) *bits.BitVector {
	mask := bits.New(n)
	g.fill(mask)
	return mask
}

// Fill clears mask and refills it.
func (g *MaskGenerator) Fill(mask *bits.BitVector) {
	mask.Reset()
	g.fill(mask)
}

func (g *MaskGenerator) fill(mask *bits.BitVector) {
	n := mask.Len()
	words := mask.Words()
	if g.strategy == Naive {
		for i := 0; i < n; i++ {
			if g.src.Float64() < g.u {
				words[i>>6] |= uint64(1) << (uint(i) & 63)
			}
		}
		return
	}

	k := g.src.Binomial(n, g.u)
	var err error
	g.idx, err = g.src.Sample(n, k, g.idx)
	errutil.BugOn(err != nil, "binomial count %d exceeds %d: %v", k, n, err)
	for _, i := range g.idx {
		words[i>>6] |= uint64(1) << (uint(i) & 63)
	}
}

// Split returns a generator with the same configuration and its own random
// stream and scratch space.
func (g *MaskGenerator) Split() *MaskGenerator {
	return NewMaskGenerator(g.u, g.strategy, g.src.Split("mask"))
}
