// Package evo is a generational evolutionary algorithm over bit vectors,
// parameterised by the operator strategy so the naive and binomial
// generation loops can be timed against each other.
package evo

import "gaops/bits"

// Fitness scores a candidate. Fitness must be positive for
// fitness-proportional selection; Value is the problem-level quantity
// reported for the best solution.
type Fitness interface {
	Fitness(v *bits.BitVector) int
	Value(v *bits.BitVector) int
}

// OneMax counts ones. Fitness is shifted by one so the all-zero vector still
// has a positive share of the selection wheel.
type OneMax struct{}

func (OneMax) Fitness(v *bits.BitVector) int { return v.CountOnes() + 1 }

func (OneMax) Value(v *bits.BitVector) int { return v.CountOnes() }

// ConstantFitness scores every candidate 2. It takes fitness evaluation out
// of generation-loop timings.
type ConstantFitness struct{}

func (ConstantFitness) Fitness(*bits.BitVector) int { return 2 }

func (ConstantFitness) Value(*bits.BitVector) int { return 2 }
