package rng

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// smallMean is the largest n*p served by geometric waiting times. Their cost
// grows with the count itself, so below this mean they beat rejection.
const smallMean = 16

// Binomial returns the number of successes in n independent Bernoulli(p)
// trials. p <= 0 always gives 0 and p >= 1 always gives n.
//
// The expected cost is O(min(n*p, n*(1-p)) + 1) for small means and constant
// otherwise, so callers that act on every success never pay for the failures.
func (s *Source) Binomial(n int, p float64) int {
	switch {
	case n <= 0 || !(p > 0):
		return 0
	case p >= 1:
		return n
	case p > 0.5:
		return n - s.Binomial(n, 1-p)
	case float64(n)*p < smallMean:
		return s.binomialWaiting(n, p)
	}
	d := distuv.Binomial{N: float64(n), P: p, Src: s}
	return int(d.Rand())
}

// binomialWaiting counts successes by jumping over the geometric gaps between
// them.
func (s *Source) binomialWaiting(n int, p float64) int {
	lq := math.Log1p(-p)
	count := 0
	pos := -1
	for {
		u := 1 - s.Float64()
		gap := math.Floor(math.Log(u)/lq) + 1
		if gap > float64(n-1-pos) {
			return count
		}
		pos += int(gap)
		count++
	}
}
