//go:build !(linux || darwin || freebsd)

package cputime

import (
	"time"
)

func threadCPU() (time.Duration, error) {
	return 0, ErrUnavailable
}
