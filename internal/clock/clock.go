package clock

import (
	"errors"
	"time"
)

var ErrCPUTimeUnsupported = errors.New("cpu time clock is not supported on this platform")

// Clock reads elapsed time since an arbitrary fixed epoch.
type Clock interface {
	Now() (time.Duration, error)
}

// Func adapts a plain function to Clock
type Func func() (time.Duration, error)

func (f Func) Now() (time.Duration, error) {
	return f()
}

type realTime struct {
	epoch time.Time
}

// RealTime returns wall-clock time elapsed since the clock was created.
// Readings use the monotonic clock, so they never go backwards.
func RealTime() Clock {
	return &realTime{
		epoch: time.Now(),
	}
}

func (c *realTime) Now() (time.Duration, error) {
	return time.Since(c.epoch), nil
}

type cpuTime struct{}

// CPUTime returns processor time consumed by the whole process
// (user and system) since it started.
func CPUTime() Clock {
	return cpuTime{}
}

func (cpuTime) Now() (time.Duration, error) {
	return processCPUTime()
}
