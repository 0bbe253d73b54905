//go:build !unix && !windows

package clock

import "time"

func processCPUTime() (time.Duration, error) {
	return 0, ErrCPUTimeUnsupported
}
