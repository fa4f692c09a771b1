// Package stats compares two independent samples of measurements.
//
// Sign convention: Compare(a, b) reports t for mean(a) - mean(b). The
// experiments pass the naive sample as a and the binomial sample as b, so a
// positive t means the binomial variant took less time.
package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var ErrTooFewSamples = errors.New("stats: need at least two observations per sample")

// Comparison is the result of Welch's unequal-variance t-test.
type Comparison struct {
	MeanA, MeanB float64
	VarA, VarB   float64
	T            float64
	// DoF is the Welch-Satterthwaite degrees of freedom rounded down.
	DoF int
	// P is the two-tailed p-value.
	P float64
	// Degenerate is set when both samples have zero variance. T is then 0
	// with P = 1 for equal means, and +/-Inf with P = 0 otherwise; DoF falls
	// back to nA + nB - 2.
	Degenerate bool
}

func Compare(a, b []float64) (Comparison, error) {
	if len(a) < 2 || len(b) < 2 {
		return Comparison{}, fmt.Errorf("%w: got %d and %d", ErrTooFewSamples, len(a), len(b))
	}
	na, nb := float64(len(a)), float64(len(b))
	var c Comparison
	c.MeanA, c.VarA = stat.MeanVariance(a, nil)
	c.MeanB, c.VarB = stat.MeanVariance(b, nil)

	sa, sb := c.VarA/na, c.VarB/nb
	se2 := sa + sb
	if se2 == 0 {
		c.Degenerate = true
		c.DoF = len(a) + len(b) - 2
		switch diff := c.MeanA - c.MeanB; {
		case diff == 0:
			c.T, c.P = 0, 1
		default:
			c.T, c.P = math.Copysign(math.Inf(1), diff), 0
		}
		return c, nil
	}

	c.T = (c.MeanA - c.MeanB) / math.Sqrt(se2)
	dof := se2 * se2 / (sa*sa/(na-1) + sb*sb/(nb-1))
	c.DoF = max(1, int(math.Floor(dof)))
	c.P = TwoTailedP(c.T, c.DoF)
	return c, nil
}

// TwoTailedP is P(|T| >= |t|) for Student's t with dof degrees of freedom.
func TwoTailedP(t float64, dof int) float64 {
	if math.IsNaN(t) {
		return math.NaN()
	}
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(dof)}
	return math.Min(1, 2*dist.Survival(math.Abs(t)))
}

// PercentLess is how much smaller b is than a, in percent of a.
func PercentLess(a, b float64) float64 {
	if a == 0 {
		return 0
	}
	return 100 * (a - b) / a
}
