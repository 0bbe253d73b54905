package stopwatch

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownTimer is returned for labels that were never started
	// (or were reset since).
	ErrUnknownTimer = errors.New("unknown timer")

	// ErrUninitializedClock is returned when time is taken before Init
	// selected a mode.
	ErrUninitializedClock = errors.New("stopwatch clock is not initialized")

	ErrInvalidMode = errors.New("invalid stopwatch mode")

	// ErrTimerNotRunning is returned by Stop and Pause when the timer
	// has no open segment.
	ErrTimerNotRunning = errors.New("timer is not running")
)

func labelError(err error, label string) error {
	return fmt.Errorf("%w: %q", err, label)
}
