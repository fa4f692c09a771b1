//go:build linux || darwin || freebsd

package cputime

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

func threadCPU() (time.Duration, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_THREAD_CPUTIME_ID, &ts); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return time.Duration(ts.Nano()), nil
}
