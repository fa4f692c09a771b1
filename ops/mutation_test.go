package ops

import (
	"testing"

	"gaops/bits"
	"gaops/rng"
	"gaops/stats"

	"github.com/stretchr/testify/require"
)

func TestBitFlipMutationRateBounds(t *testing.T) {
	t.Parallel()
	for _, strategy := range Strategies {
		for _, m := range []float64{0, 1, -0.1, 1.5} {
			_, err := NewBitFlipMutation(m, strategy, rng.New(1))
			require.ErrorIs(t, err, ErrMutationRate, "m=%v", m)
		}
		mut, err := NewBitFlipMutation(0.5, strategy, rng.New(1))
		require.NoError(t, err)
		require.Equal(t, 0.5, mut.M())
	}
}

// N=16, m=1/16: flip fraction per call is about 1/16 and the two strategies
// agree.
func TestBitFlipMutationFlipFraction(t *testing.T) {
	t.Parallel()
	const n, calls = 16, 100_000
	const m = 1.0 / n
	flips := make([][]float64, 2)
	for s, strategy := range Strategies {
		mut, err := NewBitFlipMutation(m, strategy, rng.New(uint64(61+s)))
		require.NoError(t, err)
		v := bits.New(n)
		prev := v.Copy()
		flips[s] = make([]float64, calls)
		total := 0
		for i := 0; i < calls; i++ {
			mut.Mutate(v)
			changed := 0
			for j := 0; j < n; j++ {
				if v.At(j) != prev.At(j) {
					changed++
				}
			}
			require.NoError(t, prev.CopyFrom(v))
			flips[s][i] = float64(changed)
			total += changed
		}
		require.InDelta(t, m, float64(total)/(n*calls), 0.002, "%v", strategy)
	}
	c, err := stats.Compare(flips[0], flips[1])
	require.NoError(t, err)
	require.Greater(t, c.P, 1e-3)
}

func TestBitFlipMutationPerBit(t *testing.T) {
	t.Parallel()
	const n, calls = 40, 20_000
	for _, strategy := range Strategies {
		mut, err := NewBitFlipMutation(0.1, strategy, rng.New(7))
		require.NoError(t, err)
		perBit := make([]float64, n)
		for i := 0; i < calls; i++ {
			v := bits.New(n)
			mut.Mutate(v)
			for j := 0; j < n; j++ {
				if v.At(j) {
					perBit[j]++
				}
			}
		}
		for j, c := range perBit {
			require.InDelta(t, 0.1*calls, c, 215, "%v bit %d", strategy, j)
		}
	}
}

func TestBitFlipMutationSplit(t *testing.T) {
	t.Parallel()
	mut, err := NewBitFlipMutation(0.25, Binomial, rng.New(9))
	require.NoError(t, err)
	c, ok := mut.Split().(*BitFlipMutation)
	require.True(t, ok)
	require.Equal(t, mut.M(), c.M())
	require.Equal(t, mut.strategy, c.strategy)
	require.NotSame(t, mut.src, c.src)
}
