package errutil

import (
	"fmt"
)

// debug enables the internal consistency checks behind Bug and BugOn.
// Keep it off for timed runs: the checks sit on operator hot paths.
const debug = false

// First returns the first non-nil error.
func First(errs ...error) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// FatalIf panics when err is not nil. It is meant for conditions the caller
// cannot recover from, such as a missing CPU clock.
func FatalIf(err error) {
	if err == nil {
		return
	}
	panic(fmt.Sprintf("FATAL: %v", err))
}

func Bug(format string, msg ...any) {
	if debug {
		panic(fmt.Sprintf(format, msg...))
	}
}

func BugOn(cond bool, format string, msg ...any) {
	if debug && cond {
		Bug(format, msg...)
	}
}
