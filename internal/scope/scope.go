package scope

import (
	"time"

	"github.com/ydb-platform/ydb-go-sdk-stopwatch/internal/labels"
	"github.com/ydb-platform/ydb-go-sdk-stopwatch/internal/scope/config"
	"github.com/ydb-platform/ydb-go-sdk-stopwatch/internal/trace"
	"github.com/ydb-platform/ydb-go-sdk-stopwatch/registry"
)

type callScope struct {
	config  config.Config
	latency registry.TimerVec
	errs    registry.TimerVec
}

func (s *callScope) Start() trace.Trace {
	return trace.New(s)
}

func (s *callScope) RecordError(tags map[string]string, latency time.Duration) {
	if s.config.HasError() {
		s.errs.With(tags).Record(latency)
	}
}

func (s *callScope) RecordLatency(tags map[string]string, latency time.Duration) {
	if s.config.HasLatency() {
		s.latency.With(tags).Record(latency)
	}
}

// New registers "latency" and "errors" timers under c's subsystem name.
// Latency is split by success, errors by error kind.
func New(c registry.Config, name string, cfg config.Config, tags ...string) *callScope {
	c = c.WithSystem(name)
	s := &callScope{
		config: cfg,
	}

	if cfg.HasLatency() {
		s.latency = c.TimerVec("latency", append([]string{labels.TagSuccess, labels.TagVersion}, tags...)...)
	}

	if cfg.HasError() {
		s.errs = c.TimerVec("errors", append([]string{labels.TagVersion, labels.TagError}, tags...)...)
	}

	return s
}
