package stats

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompareKnownValues(t *testing.T) {
	t.Parallel()
	// Hand-computed: means 3 and 6, variances 2.5 and 10, n = 5 each.
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{2, 4, 6, 8, 10}

	c, err := Compare(a, b)
	require.NoError(t, err)
	require.InDelta(t, 3, c.MeanA, 1e-12)
	require.InDelta(t, 6, c.MeanB, 1e-12)
	require.InDelta(t, 2.5, c.VarA, 1e-12)
	require.InDelta(t, 10, c.VarB, 1e-12)
	require.InDelta(t, -3/math.Sqrt(2.5), c.T, 1e-12)
	// (0.5+2)^2 / (0.25/4 + 4/4) = 6.25/1.0625 = 5.88 -> 5
	require.Equal(t, 5, c.DoF)
	require.InDelta(t, 0.1163, c.P, 5e-4)
	require.False(t, c.Degenerate)
}

func TestCompareSignConvention(t *testing.T) {
	t.Parallel()
	slow := []float64{10, 11, 12, 10.5, 11.5}
	fast := []float64{5, 6, 5.5, 6.5, 5.2}

	c, err := Compare(slow, fast)
	require.NoError(t, err)
	require.Positive(t, c.T)
	require.Less(t, c.P, 0.001)

	r, err := Compare(fast, slow)
	require.NoError(t, err)
	require.InDelta(t, -c.T, r.T, 1e-12)
	require.Equal(t, c.DoF, r.DoF)
	require.InDelta(t, c.P, r.P, 1e-12)
}

func TestCompareZeroVariance(t *testing.T) {
	t.Parallel()
	same := []float64{4, 4, 4}

	c, err := Compare(same, []float64{4, 4})
	require.NoError(t, err)
	require.True(t, c.Degenerate)
	require.Zero(t, c.T)
	require.Equal(t, 1.0, c.P)
	require.Equal(t, 3, c.DoF)

	c, err = Compare(same, []float64{3, 3, 3})
	require.NoError(t, err)
	require.True(t, c.Degenerate)
	require.True(t, math.IsInf(c.T, 1))
	require.Zero(t, c.P)

	c, err = Compare([]float64{3, 3, 3}, same)
	require.NoError(t, err)
	require.True(t, math.IsInf(c.T, -1))

	// One constant sample is not degenerate.
	c, err = Compare(same, []float64{3, 5, 4})
	require.NoError(t, err)
	require.False(t, c.Degenerate)
	require.Zero(t, c.T)
	require.InDelta(t, 1, c.P, 1e-12)
}

func TestCompareTooFewSamples(t *testing.T) {
	t.Parallel()
	_, err := Compare([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, ErrTooFewSamples)
	_, err = Compare(nil, nil)
	require.ErrorIs(t, err, ErrTooFewSamples)
}

// Two samples from the same distribution reject at 5% about 5% of the time.
func TestCompareFalsePositiveRate(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(42, 43))
	const runs = 2000
	rejected := 0
	for i := 0; i < runs; i++ {
		a := make([]float64, 30)
		b := make([]float64, 50)
		for j := range a {
			a[j] = r.NormFloat64()
		}
		for j := range b {
			b[j] = 3 * r.NormFloat64()
		}
		c, err := Compare(a, b)
		require.NoError(t, err)
		if c.P < 0.05 {
			rejected++
		}
	}
	require.InDelta(t, 0.05, float64(rejected)/runs, 0.02)
}

func TestTwoTailedP(t *testing.T) {
	t.Parallel()
	require.InDelta(t, 1, TwoTailedP(0, 10), 1e-12)
	require.InDelta(t, 0.05, TwoTailedP(2.228138852, 10), 1e-6)
	require.InDelta(t, TwoTailedP(1.7, 30), TwoTailedP(-1.7, 30), 1e-15)
	require.True(t, math.IsNaN(TwoTailedP(math.NaN(), 3)))
}

func TestPercentLess(t *testing.T) {
	t.Parallel()
	require.InDelta(t, 25, PercentLess(4, 3), 1e-12)
	require.InDelta(t, -50, PercentLess(2, 3), 1e-12)
	require.Zero(t, PercentLess(0, 3))
}
