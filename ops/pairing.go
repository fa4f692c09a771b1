package ops

import (
	"gaops/errutil"
	"gaops/rng"
)

// PairSelector decides which adjacent pairs of a population undergo
// crossover during a generation. Each pair is chosen independently with
// probability C.
type PairSelector struct {
	c        float64
	strategy Strategy
	src      *rng.Source
	idx      []int
}

// NewPairSelector saturates c into [0,1].
func NewPairSelector(c float64, strategy Strategy, src *rng.Source) *PairSelector {
	return &PairSelector{c: clamp01(c), strategy: strategy, src: src}
}

func (p *PairSelector) C() float64 { return p.c }

// Select returns the indices in [0,pairs) of the chosen pairs. The slice is
// reused by the next call. The order is unspecified.
func (p *PairSelector) Select(pairs int) []int {
	p.idx = p.idx[:0]
	if pairs <= 0 {
		return p.idx
	}
	if p.strategy == Naive {
		for i := 0; i < pairs; i++ {
			if p.src.Float64() < p.c {
				p.idx = append(p.idx, i)
			}
		}
		return p.idx
	}

	k := p.src.Binomial(pairs, p.c)
	var err error
	p.idx, err = p.src.Sample(pairs, k, p.idx)
	errutil.BugOn(err != nil, "binomial count %d exceeds %d: %v", k, pairs, err)
	return p.idx
}

func (p *PairSelector) Split() *PairSelector {
	return NewPairSelector(p.c, p.strategy, p.src.Split("pairs"))
}
