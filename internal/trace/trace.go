package trace

import (
	"path"
	"time"

	"github.com/ydb-platform/ydb-go-sdk/v3"

	"github.com/ydb-platform/ydb-go-sdk-stopwatch/internal/labels"
	"github.com/ydb-platform/ydb-go-sdk-stopwatch/internal/str"
)

var (
	Version = labels.Label{
		Tag: labels.TagVersion,
		Value: func() string {
			_, version := path.Split(ydb.Version)
			return version
		}(),
	}
)

// Trace measures one call from its Start. Every Sync records the time
// elapsed since Start, so intermediate stages of a stream report growing
// durations.
type Trace interface {
	Sync(e error, lbls ...labels.Label)
}

type Scope interface {
	RecordError(tags map[string]string, latency time.Duration)
	RecordLatency(tags map[string]string, latency time.Duration)
}

type callTrace struct {
	scope Scope
	start time.Time
}

func New(s Scope) Trace {
	return &callTrace{
		scope: s,
		start: time.Now(),
	}
}

func (t *callTrace) Sync(err error, lbls ...labels.Label) {
	latency := time.Since(t.start)
	if err != nil {
		t.scope.RecordError(labels.KeyValue(labels.Err(err, append([]labels.Label{Version}, lbls...)...)...), latency)
	}
	success := labels.Label{
		Tag:   labels.TagSuccess,
		Value: str.If(err == nil, "true", "false"),
	}
	t.scope.RecordLatency(labels.KeyValue(append([]labels.Label{Version, success}, lbls...)...), latency)
}
