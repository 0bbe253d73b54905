package stopwatch

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestReport(t *testing.T) {
	r, c := newTestRegistry(t)
	require.NoError(t, r.Start("A"))
	c.advance(10 * time.Millisecond)
	require.NoError(t, r.Stop("A"))
	require.NoError(t, r.Start("A"))
	c.advance(30 * time.Millisecond)
	require.NoError(t, r.Stop("A"))

	var buf bytes.Buffer
	require.NoError(t, r.Report(&buf, "A"))
	require.Equal(t,
		"A: total 0.040000s, stops 2, avg 0.020000s, min 0.010000s, max 0.030000s\n",
		buf.String(),
	)
}

func TestReportWithoutStops(t *testing.T) {
	r, c := newTestRegistry(t)
	require.NoError(t, r.Start("A"))
	c.advance(time.Millisecond)
	require.NoError(t, r.Pause("A"))

	var buf bytes.Buffer
	require.NoError(t, r.Report(&buf, "A"))
	require.Contains(t, buf.String(), "stops 0, avg N/A,")
}

func TestReportDefaultOutput(t *testing.T) {
	var out bytes.Buffer
	c := &manualClock{}
	r := New(WithMode(ModeRealTime), WithClock(c), WithOutput(&out))
	require.NoError(t, r.Start("A"))
	require.NoError(t, r.Stop("A"))

	require.NoError(t, r.Report(nil, "A"))
	require.NoError(t, r.ReportAll(nil))
	require.Equal(t, 2, strings.Count(out.String(), "A: total"))
}

func TestReportAllSorted(t *testing.T) {
	r, c := newTestRegistry(t)
	for _, label := range []string{"zeta", "alpha", "mu"} {
		require.NoError(t, r.Start(label))
		c.advance(time.Millisecond)
		require.NoError(t, r.Stop(label))
	}

	var buf bytes.Buffer
	require.NoError(t, r.ReportAll(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "alpha:"))
	require.True(t, strings.HasPrefix(lines[1], "mu:"))
	require.True(t, strings.HasPrefix(lines[2], "zeta:"))

	r.ResetAll()
	buf.Reset()
	require.NoError(t, r.ReportAll(&buf))
	require.Empty(t, buf.String())
}

func exampleRegistry(t *testing.T) *Registry {
	t.Helper()
	r, c := newTestRegistry(t)
	require.NoError(t, r.Start("query"))
	c.advance(250 * time.Millisecond)
	require.NoError(t, r.Stop("query"))
	require.NoError(t, r.Start("parse"))
	c.advance(500 * time.Millisecond)
	require.NoError(t, r.Pause("parse"))
	return r
}

func TestSnapshot(t *testing.T) {
	s := exampleRegistry(t).Snapshot()
	require.Equal(t, "real_time", s.Mode)
	require.True(t, s.Active)
	require.Equal(t, []Entry{
		{Label: "parse", Total: 0.5},
		{Label: "query", Total: 0.25, Stops: 1, Average: 0.25, Min: 0.25, Max: 0.25},
	}, s.Entries)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, exampleRegistry(t).WriteYAML(&buf))

	var s Snapshot
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &s))
	require.Len(t, s.Entries, 2)
	require.Equal(t, "parse", s.Entries[0].Label)
	require.Equal(t, 1, s.Entries[1].Stops)
}

func TestWriteTOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, exampleRegistry(t).WriteTOML(&buf))
	require.Contains(t, buf.String(), "[[timers]]")

	var s Snapshot
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &s))
	require.Len(t, s.Entries, 2)
	require.Equal(t, "query", s.Entries[1].Label)
}

func TestWriteChart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, exampleRegistry(t).WriteChart(&buf, "stopwatch"))
	html := buf.String()
	require.Contains(t, html, "<html")
	require.Contains(t, html, "stopwatch")
	require.Contains(t, html, "query")
	require.Contains(t, html, "parse")
}
