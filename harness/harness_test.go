package harness

import (
	"testing"

	"gaops/cputime"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func spin(n int) uint64 {
	x := uint64(n)
	for i := 0; i < n; i++ {
		x = x*6364136223846793005 + 1442695040888963407
	}
	return x
}

func TestMeasureRecordsEveryTrial(t *testing.T) {
	t.Parallel()
	h := New(cputime.NewWithFallback(), zap.NewNop())
	require.Equal(t, Idle, h.Phase())

	naiveCalls, optCalls := 0, 0
	res := h.Measure(Config{Trials: 7, WarmupBatches: 2},
		func() Outcome { naiveCalls++; return Outcome{Sink: 1, Metric: 3} },
		func() Outcome { optCalls++; return Outcome{Sink: 10, Metric: 4} },
	)

	require.Equal(t, Done, h.Phase())
	require.Equal(t, 9, naiveCalls)
	require.Equal(t, 9, optCalls)
	require.Len(t, res.Naive.Nanos, 7)
	require.Len(t, res.Optimized.Nanos, 7)
	for j := 0; j < 7; j++ {
		require.GreaterOrEqual(t, res.Naive.Nanos[j], 0.0)
		require.Equal(t, 3.0, res.Naive.Metrics[j])
		require.Equal(t, 4.0, res.Optimized.Metrics[j])
	}
	require.Equal(t, uint64(9*1+9*10), h.Sink())
}

func TestMeasureOrder(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		order Order
		want  string
	}{
		{NaiveFirst, "nonononono"},
		{Alternate, "noonnoonno"},
	} {
		var trace []byte
		h := New(cputime.NewWithFallback(), zap.NewNop())
		h.Measure(Config{Trials: 5, Order: tc.order},
			func() Outcome { trace = append(trace, 'n'); return Outcome{} },
			func() Outcome { trace = append(trace, 'o'); return Outcome{} },
		)
		require.Equal(t, tc.want, string(trace), tc.order.String())
	}
}

func TestMeasureSeparatesCost(t *testing.T) {
	t.Parallel()
	h := New(cputime.NewWithFallback(), zap.NewNop())
	res := h.Measure(Config{Trials: 10, Order: Alternate},
		func() Outcome { return Outcome{Sink: spin(2_000_000)} },
		func() Outcome { return Outcome{Sink: spin(20_000)} },
	)
	var slow, fast float64
	for j := range res.Naive.Nanos {
		slow += res.Naive.Nanos[j]
		fast += res.Optimized.Nanos[j]
	}
	require.Greater(t, slow, fast)
}

func TestWarmupFoldsSink(t *testing.T) {
	t.Parallel()
	h := New(cputime.NewWithFallback(), zap.NewNop())
	h.Warmup(
		func() Outcome { return Outcome{Sink: 5} },
		func() Outcome { return Outcome{Sink: 6} },
	)
	require.Equal(t, uint64(11), h.Sink())
	require.Equal(t, Idle, h.Phase())
}

func TestMeasureZeroTrials(t *testing.T) {
	t.Parallel()
	h := New(cputime.NewWithFallback(), zap.NewNop())
	res := h.Measure(Config{}, func() Outcome { return Outcome{} }, func() Outcome { return Outcome{} })
	require.Empty(t, res.Naive.Nanos)
	require.Panics(t, func() { h.Measure(Config{Trials: -1}, nil, nil) })
}

func TestStrings(t *testing.T) {
	t.Parallel()
	require.Equal(t, "TIMED_TRIALS", TimedTrials.String())
	require.Equal(t, "Phase(9)", Phase(9).String())
	require.Equal(t, "naive-first", NaiveFirst.String())
	require.Equal(t, "alternate", Alternate.String())
}
