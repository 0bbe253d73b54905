package registry

import (
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ydb-platform/ydb-go-sdk/v3/trace"

	stopwatch "github.com/ydb-platform/ydb-go-sdk-stopwatch"
)

// Stopwatch is a Config that feeds every recorded duration into a
// stopwatch.Registry. Unlike the registry itself it is safe for concurrent
// use, which trace callbacks require.
type Stopwatch struct {
	mu        *sync.Mutex
	sw        *stopwatch.Registry
	details   trace.Details
	namespace string
	separator string
}

type option func(s *Stopwatch)

func WithDetails(details trace.Details) option {
	return func(s *Stopwatch) {
		s.details = details
	}
}

func WithNamespace(namespace string) option {
	return func(s *Stopwatch) {
		s.namespace = namespace
	}
}

func WithSeparator(separator string) option {
	return func(s *Stopwatch) {
		s.separator = separator
	}
}

// New wraps sw. All trace details are enabled by default.
func New(sw *stopwatch.Registry, opts ...option) *Stopwatch {
	s := &Stopwatch{
		mu:        &sync.Mutex{},
		sw:        sw,
		details:   ^trace.Details(0),
		separator: "/",
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Stopwatch) Details() trace.Details {
	return s.details
}

func (s *Stopwatch) WithSystem(subsystem string) Config {
	c := *s
	c.namespace = s.join(subsystem)
	return &c
}

func (s *Stopwatch) TimerVec(name string, labelNames ...string) TimerVec {
	names := append([]string(nil), labelNames...)
	sort.Strings(names)
	return &timerVec{
		s:          s,
		name:       s.join(name),
		labelNames: names,
	}
}

// Locked runs f while holding the lock that guards the registry, so that
// reports and resets do not race with trace callbacks.
func (s *Stopwatch) Locked(f func(sw *stopwatch.Registry)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(s.sw)
}

func (s *Stopwatch) ReportAll(w io.Writer) (err error) {
	s.Locked(func(sw *stopwatch.Registry) {
		err = sw.ReportAll(w)
	})
	return err
}

func (s *Stopwatch) observe(label string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sw.Observe(label, d)
}

func (s *Stopwatch) join(name string) string {
	if s.namespace == "" {
		return name
	}
	return s.namespace + s.separator + name
}

type timerVec struct {
	s          *Stopwatch
	name       string
	labelNames []string
}

var valueEscaper = strings.NewReplacer(`\`, `\\`, `,`, `\,`, `=`, `\=`, `}`, `\}`)

// With builds the record label as name{k1=v1,k2=v2} over the declared
// label names. Undeclared keys are dropped, missing ones are left out.
// Separators inside values are backslash-escaped so distinct tag sets never
// share a record.
func (v *timerVec) With(kv map[string]string) Timer {
	if len(v.labelNames) == 0 {
		return &timer{s: v.s, label: v.name}
	}
	var b strings.Builder
	b.WriteString(v.name)
	b.WriteByte('{')
	first := true
	for _, name := range v.labelNames {
		value, ok := kv[name]
		if !ok {
			continue
		}
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteString(name)
		b.WriteByte('=')
		valueEscaper.WriteString(&b, value)
	}
	b.WriteByte('}')
	return &timer{s: v.s, label: b.String()}
}

type timer struct {
	s     *Stopwatch
	label string
}

func (t *timer) Record(d time.Duration) {
	t.s.observe(t.label, d)
}
