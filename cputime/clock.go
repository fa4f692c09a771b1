// Package cputime reads the CPU time consumed by the calling OS thread.
// Callers must pin their goroutine with runtime.LockOSThread for the
// duration of a measurement, otherwise the scheduler may move it between
// threads and the readings become meaningless.
package cputime

import (
	"errors"
	"time"

	"gaops/errutil"
)

var ErrUnavailable = errors.New("cputime: thread CPU clock unavailable")

type Clock struct {
	read     func() (time.Duration, error)
	degraded bool
}

// New returns the thread CPU clock, or ErrUnavailable when the platform does
// not provide one.
func New() (*Clock, error) {
	if _, err := threadCPU(); err != nil {
		return nil, err
	}
	return &Clock{read: threadCPU}, nil
}

// NewWithFallback is New, except that a missing thread clock is replaced by
// the wall clock. Degraded reports the substitution; wall-clock samples also
// include time spent by other threads and processes and are noisier.
func NewWithFallback() *Clock {
	if c, err := New(); err == nil {
		return c
	}
	start := time.Now()
	return &Clock{
		read:     func() (time.Duration, error) { return time.Since(start), nil },
		degraded: true,
	}
}

// Now returns the reading in nanoseconds since an arbitrary origin. A read
// failure after a successful probe is fatal.
func (c *Clock) Now() time.Duration {
	d, err := c.read()
	errutil.FatalIf(err)
	return d
}

func (c *Clock) Degraded() bool {
	return c.degraded
}

func (c *Clock) String() string {
	if c.degraded {
		return "wall clock (degraded)"
	}
	return "thread CPU clock"
}
