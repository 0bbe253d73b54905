package registry

import (
	"github.com/ydb-platform/ydb-go-sdk/v3/trace"
)

type Registry interface {
	// TimerVec returns TimerVec by name, subsystem and labels
	// Timers of the same name and label values share one stopwatch record
	TimerVec(name string, labelNames ...string) TimerVec
}

type Config interface {
	Registry

	// Details returns bitmask for customize details of traces
	Details() trace.Details

	// WithSystem returns new Config with subsystem scope
	// Separator for split scopes provided by Config implementation
	WithSystem(subsystem string) Config
}
