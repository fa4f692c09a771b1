// Package ops holds the stochastic operators of a bit-string genetic
// algorithm. Each operator runs under one of two strategies with the same
// probability law over outcomes:
//
//   - Naive draws one Bernoulli trial per element, O(n) per call.
//   - Binomial draws the number of affected elements k ~ Binomial(n, p) and
//     then k distinct positions without replacement, O(k) per call.
package ops

import (
	"fmt"
)

type Strategy int

const (
	Naive Strategy = iota
	Binomial
)

var Strategies = []Strategy{Naive, Binomial}

func (s Strategy) String() string {
	switch s {
	case Naive:
		return "naive"
	case Binomial:
		return "binomial"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// clamp01 saturates p into [0,1]. NaN becomes 0.
func clamp01(p float64) float64 {
	if !(p > 0) {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
