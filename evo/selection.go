package evo

import (
	"gaops/errutil"
	"gaops/rng"
)

// Selection fills selected with population indices given each member's
// fitness. len(selected) is the number of parents wanted.
type Selection interface {
	Select(fitness []int, selected []int)
	Split() Selection
}

var (
	_ Selection = (*StochasticUniversalSampling)(nil)
	_ Selection = IdentitySelection{}
)

// StochasticUniversalSampling spins a fitness-proportional wheel once and
// reads len(selected) equally spaced pointers off it. The result is shuffled
// so that adjacent parents are not ordered by population index.
type StochasticUniversalSampling struct {
	src *rng.Source
}

func NewStochasticUniversalSampling(src *rng.Source) *StochasticUniversalSampling {
	return &StochasticUniversalSampling{src: src}
}

func (s *StochasticUniversalSampling) Select(fitness []int, selected []int) {
	if len(selected) == 0 {
		return
	}
	total := 0
	for _, f := range fitness {
		errutil.BugOn(f <= 0, "non-positive fitness %d", f)
		total += f
	}
	errutil.BugOn(total == 0, "empty population")

	step := float64(total) / float64(len(selected))
	pointer := s.src.Float64() * step
	cumulative := float64(fitness[0])
	member := 0
	for i := range selected {
		for pointer >= cumulative && member < len(fitness)-1 {
			member++
			cumulative += float64(fitness[member])
		}
		selected[i] = member
		pointer += step
	}

	for i := len(selected) - 1; i > 0; i-- {
		j := s.src.IntN(i + 1)
		selected[i], selected[j] = selected[j], selected[i]
	}
}

func (s *StochasticUniversalSampling) Split() Selection {
	return NewStochasticUniversalSampling(s.src.Split("sus"))
}

// IdentitySelection selects member i into slot i.
type IdentitySelection struct{}

func (IdentitySelection) Select(_ []int, selected []int) {
	for i := range selected {
		selected[i] = i
	}
}

func (IdentitySelection) Split() Selection { return IdentitySelection{} }
