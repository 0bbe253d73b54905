package stopwatch

import (
	"io"
	"log/slog"

	"github.com/ydb-platform/ydb-go-sdk-stopwatch/internal/clock"
)

// Clock reads elapsed time since an arbitrary fixed epoch. It replaces the
// mode-selected source when passed with WithClock.
type Clock = clock.Clock

type Option func(r *Registry)

// WithMode initializes the registry in the given mode. Invalid modes are
// ignored and leave the registry uninitialized.
func WithMode(mode Mode) Option {
	return func(r *Registry) {
		if mode.valid() {
			r.mode = mode
		}
	}
}

// WithOutput sets the sink Report and ReportAll write to when called with
// a nil writer.
func WithOutput(w io.Writer) Option {
	return func(r *Registry) {
		if w != nil {
			r.output = w
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithClock overrides the time source regardless of mode. The registry
// still has to be initialized with a mode before it measures anything.
func WithClock(c Clock) Option {
	return func(r *Registry) {
		r.clock = c
	}
}
