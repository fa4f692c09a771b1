package ops

import (
	"errors"
	"fmt"

	"gaops/bits"
	"gaops/errutil"
	"gaops/rng"
)

var ErrMutationRate = errors.New("ops: mutation rate must lie strictly inside (0,1)")

// Mutation changes a single candidate in place.
type Mutation interface {
	Mutate(v *bits.BitVector)
	Split() Mutation
}

var _ Mutation = (*BitFlipMutation)(nil)

// BitFlipMutation flips every bit independently with probability M. There is
// no guarantee that any bit is flipped by a call.
type BitFlipMutation struct {
	m        float64
	strategy Strategy
	src      *rng.Source
	idx      []int
}

// NewBitFlipMutation rejects m <= 0 and m >= 1. A GA that never mutates
// should not install a mutation at all, and m == 1 is a plain complement.
func NewBitFlipMutation(m float64, strategy Strategy, src *rng.Source) (*BitFlipMutation, error) {
	if !(m > 0 && m < 1) {
		return nil, fmt.Errorf("%w: got %v", ErrMutationRate, m)
	}
	return &BitFlipMutation{m: m, strategy: strategy, src: src}, nil
}

func (b *BitFlipMutation) M() float64 { return b.m }

func (b *BitFlipMutation) Mutate(v *bits.BitVector) {
	n := v.Len()
	words := v.Words()
	if b.strategy == Naive {
		for i := 0; i < n; i++ {
			if b.src.Float64() < b.m {
				words[i>>6] ^= uint64(1) << (uint(i) & 63)
			}
		}
		return
	}

	k := b.src.Binomial(n, b.m)
	var err error
	b.idx, err = b.src.Sample(n, k, b.idx)
	errutil.BugOn(err != nil, "binomial count %d exceeds %d: %v", k, n, err)
	for _, i := range b.idx {
		words[i>>6] ^= uint64(1) << (uint(i) & 63)
	}
}

func (b *BitFlipMutation) Split() Mutation {
	return &BitFlipMutation{m: b.m, strategy: b.strategy, src: b.src.Split("mutation")}
}
