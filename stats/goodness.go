package stats

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

var ErrBadCells = errors.New("stats: observed and expected cells do not match")

// GoodnessOfFit is a Pearson chi-square test result.
type GoodnessOfFit struct {
	ChiSquare float64
	DoF       int
	P         float64
}

// ChiSquareGOF tests observed cell counts against expected ones. Every
// expected count must be positive; callers pool sparse cells first.
func ChiSquareGOF(observed, expected []float64) (GoodnessOfFit, error) {
	if len(observed) != len(expected) || len(observed) < 2 {
		return GoodnessOfFit{}, fmt.Errorf("%w: %d vs %d", ErrBadCells, len(observed), len(expected))
	}
	var g GoodnessOfFit
	for i, o := range observed {
		e := expected[i]
		if !(e > 0) {
			return GoodnessOfFit{}, fmt.Errorf("%w: expected[%d] = %v", ErrBadCells, i, e)
		}
		g.ChiSquare += (o - e) * (o - e) / e
	}
	g.DoF = len(observed) - 1
	g.P = distuv.ChiSquared{K: float64(g.DoF)}.Survival(g.ChiSquare)
	return g, nil
}
