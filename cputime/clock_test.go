package cputime

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClockAdvancesWithWork(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	c := NewWithFallback()
	start := c.Now()
	x := uint64(1)
	for i := 0; i < 20_000_000; i++ {
		x = x*6364136223846793005 + 1442695040888963407
	}
	elapsed := c.Now() - start
	require.NotZero(t, x)
	require.Positive(t, elapsed)
	require.Less(t, elapsed, time.Minute)
}

func TestNewMatchesPlatform(t *testing.T) {
	t.Parallel()
	c, err := New()
	switch runtime.GOOS {
	case "linux", "darwin", "freebsd":
		require.NoError(t, err)
		require.False(t, c.Degraded())
		require.Equal(t, "thread CPU clock", c.String())
	default:
		require.ErrorIs(t, err, ErrUnavailable)
		require.True(t, NewWithFallback().Degraded())
	}
}

func TestCPUClockIgnoresSleep(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Skip("no thread CPU clock on this platform")
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	start := c.Now()
	time.Sleep(50 * time.Millisecond)
	require.Less(t, c.Now()-start, 25*time.Millisecond)
}

func TestDegradedClock(t *testing.T) {
	t.Parallel()
	c := &Clock{read: func() (time.Duration, error) { return 5, nil }, degraded: true}
	require.Equal(t, time.Duration(5), c.Now())
	require.Equal(t, "wall clock (degraded)", c.String())

	broken := &Clock{read: func() (time.Duration, error) { return 0, ErrUnavailable }}
	require.Panics(t, func() { broken.Now() })
}
