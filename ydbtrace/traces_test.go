package ydbtrace

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ydb-platform/ydb-go-sdk/v3/trace"

	stopwatch "github.com/ydb-platform/ydb-go-sdk-stopwatch"
	"github.com/ydb-platform/ydb-go-sdk-stopwatch/registry"
)

func newTimers(t *testing.T) (*stopwatch.Registry, *registry.Stopwatch) {
	t.Helper()
	sw := stopwatch.New(stopwatch.WithMode(stopwatch.ModeRealTime))
	return sw, registry.New(sw)
}

func filter(labels []string, prefix string) (out []string) {
	for _, l := range labels {
		if strings.HasPrefix(l, prefix) {
			out = append(out, l)
		}
	}
	return out
}

func TestScripting(t *testing.T) {
	sw, timers := newTimers(t)
	tr := Scripting(timers)
	require.NotNil(t, tr.OnExecute)
	require.NotNil(t, tr.OnExplain)
	require.NotNil(t, tr.OnStreamExecute)

	tr.OnExecute(trace.ScriptingExecuteStartInfo{})(trace.ScriptingExecuteDoneInfo{})
	tr.OnExecute(trace.ScriptingExecuteStartInfo{})(trace.ScriptingExecuteDoneInfo{})
	tr.OnExplain(trace.ScriptingExplainStartInfo{})(trace.ScriptingExplainDoneInfo{Error: errors.New("syntax error")})

	execute := filter(sw.Labels(), "scripting/execute/latency{")
	require.Len(t, execute, 1)
	require.True(t, strings.HasSuffix(execute[0], "success=true}"))
	rec, err := sw.Record(execute[0])
	require.NoError(t, err)
	require.Equal(t, 2, rec.Stops)

	explain := filter(sw.Labels(), "scripting/explain/errors{")
	require.Len(t, explain, 1)
	require.Contains(t, explain[0], "error=unknown/syntax_error")
}

func TestScriptingStream(t *testing.T) {
	sw, timers := newTimers(t)
	tr := Scripting(timers)

	intermediate := tr.OnStreamExecute(trace.ScriptingStreamExecuteStartInfo{})
	intermediate(trace.ScriptingStreamExecuteIntermediateInfo{})
	done := intermediate(trace.ScriptingStreamExecuteIntermediateInfo{})
	done(trace.ScriptingStreamExecuteDoneInfo{})

	stream := filter(sw.Labels(), "scripting/stream/execute/latency{")
	require.Len(t, stream, 2)
	require.Contains(t, stream[0], "stage=finish")
	require.Contains(t, stream[1], "stage=intermediate")

	rec, err := sw.Record(stream[1])
	require.NoError(t, err)
	require.Equal(t, 2, rec.Stops)
}

func TestRetry(t *testing.T) {
	sw, timers := newTimers(t)
	tr := Retry(timers)
	require.NotNil(t, tr.OnRetry)

	intermediate := tr.OnRetry(trace.RetryLoopStartInfo{ID: "upsert", Idempotent: true})
	done := intermediate(trace.RetryLoopIntermediateInfo{Error: errors.New("overloaded")})
	done(trace.RetryLoopDoneInfo{Attempts: 2})

	latency := filter(sw.Labels(), "retry/latency{")
	require.Len(t, latency, 2)
	for _, l := range latency {
		require.Contains(t, l, "ID=upsert")
		require.Contains(t, l, "idempotent=true")
	}
	require.Contains(t, latency[0], "stage=finish")
	require.Contains(t, latency[0], "success=true")
	require.Contains(t, latency[1], "stage=intermediate")
	require.Contains(t, latency[1], "success=false")
	require.Len(t, filter(sw.Labels(), "retry/errors{"), 1)
}

func TestDetailsDisabled(t *testing.T) {
	sw := stopwatch.New(stopwatch.WithMode(stopwatch.ModeRealTime))
	timers := registry.New(sw, registry.WithDetails(0))
	require.Nil(t, Scripting(timers).OnExecute)
	require.Nil(t, Retry(timers).OnRetry)
	require.NotNil(t, WithTraces(timers))
}

func TestTurnedOffRegistry(t *testing.T) {
	sw, timers := newTimers(t)
	sw.TurnOff()
	Scripting(timers).OnExecute(trace.ScriptingExecuteStartInfo{})(trace.ScriptingExecuteDoneInfo{})
	require.Empty(t, sw.Labels())
}
