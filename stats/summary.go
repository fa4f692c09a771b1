package stats

import (
	"github.com/montanaflynn/stats"
	"golang.org/x/exp/constraints"

	"gaops/errutil"
	"gaops/utils"
)

// Summary describes one sample beyond its mean.
type Summary struct {
	N      int
	Min    float64
	Median float64
	P95    float64
	Max    float64
	StdDev float64
}

func Describe(x []float64) (Summary, error) {
	lo, err1 := stats.Min(x)
	hi, err2 := stats.Max(x)
	median, err3 := stats.Median(x)
	p95, err4 := stats.Percentile(x, 95)
	if err := errutil.First(err1, err2, err3, err4); err != nil {
		return Summary{}, err
	}
	s := Summary{N: len(x), Min: lo, Median: median, P95: p95, Max: hi}
	if len(x) > 1 {
		s.StdDev, _ = stats.StandardDeviationSample(x)
	}
	return s, nil
}

// Floats converts integer measurements such as counts.
func Floats[T constraints.Integer](x []T) []float64 {
	return utils.Map(x, func(v T) float64 { return float64(v) })
}
