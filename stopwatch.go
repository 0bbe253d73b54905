// Package stopwatch times labeled sections of code.
//
// A Registry keeps one Record per label. Start opens a segment, Pause
// closes it and adds it to the total, Stop closes it and counts everything
// since the previous Stop as one interval for the min/max/average
// statistics:
//
//	sw := stopwatch.New(stopwatch.WithMode(stopwatch.ModeRealTime))
//	_ = sw.Start("setup")
//	// first part of setup
//	_ = sw.Pause("setup")
//	// ...
//	_ = sw.Start("setup")
//	// cleanup
//	_ = sw.Stop("setup")
//	_ = sw.ReportAll(os.Stdout)
//
// A Registry is not safe for concurrent use.
package stopwatch

import (
	"io"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/ydb-platform/ydb-go-sdk-stopwatch/internal/clock"
)

// Registry maps labels to their Records. The zero value is not usable,
// create registries with New.
type Registry struct {
	records map[string]*Record
	mode    Mode
	active  bool

	clock  Clock
	cpu    clock.Clock
	real   clock.Clock
	output io.Writer
	logger *slog.Logger
}

// New creates an empty, active Registry. Unless WithMode is given the
// clock stays uninitialized until Init.
func New(opts ...Option) *Registry {
	r := &Registry{
		records: make(map[string]*Record),
		mode:    ModeNone,
		active:  true,
		cpu:     clock.CPUTime(),
		real:    clock.RealTime(),
		output:  os.Stdout,
		logger:  slog.Default(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Init selects the time source.
func (r *Registry) Init(mode Mode) error {
	if !mode.valid() {
		return labelError(ErrInvalidMode, mode.String())
	}
	r.mode = mode
	r.logger.Debug("stopwatch initialized", slog.String("mode", mode.String()))
	return nil
}

func (r *Registry) Mode() Mode {
	return r.mode
}

func (r *Registry) Active() bool {
	return r.active
}

// TurnOff makes Start, Stop, Pause, Observe, Reset and ResetAll no-ops.
// Reports keep working on the data collected so far.
func (r *Registry) TurnOff() {
	r.active = false
	r.logger.Debug("stopwatch turned off")
}

func (r *Registry) TurnOn() {
	r.active = true
	r.logger.Debug("stopwatch turned on")
}

func (r *Registry) now() (time.Duration, error) {
	if r.mode == ModeNone {
		return 0, ErrUninitializedClock
	}
	if r.clock != nil {
		return r.clock.Now()
	}
	if r.mode == ModeCPUTime {
		return r.cpu.Now()
	}
	return r.real.Now()
}

// Start opens a new segment for label, creating its record on first use.
// Starting a running timer discards the open segment.
func (r *Registry) Start(label string) error {
	if !r.active {
		return nil
	}
	now, err := r.now()
	if err != nil {
		return err
	}
	rec, ok := r.records[label]
	if !ok {
		rec = &Record{}
		r.records[label] = rec
	} else if rec.running {
		r.logger.Debug("stopwatch restarted while running", slog.String("label", label))
	}
	rec.start = now
	rec.running = true
	return nil
}

// Stop closes the open segment and counts the time since the previous
// Stop, paused segments included, as one interval.
func (r *Registry) Stop(label string) error {
	if !r.active {
		return nil
	}
	rec, now, err := r.closing(label)
	if err != nil {
		return err
	}
	rec.closeSegment(now)
	rec.count(rec.pending)
	rec.pending = 0
	return nil
}

// Pause closes the open segment, adding it to the total without counting
// an interval. A later Start resumes the same interval; Stop on a paused
// timer returns ErrTimerNotRunning, so the paused time is only counted
// after another Start and Stop.
func (r *Registry) Pause(label string) error {
	if !r.active {
		return nil
	}
	rec, now, err := r.closing(label)
	if err != nil {
		return err
	}
	rec.closeSegment(now)
	return nil
}

func (r *Registry) closing(label string) (*Record, time.Duration, error) {
	rec, ok := r.records[label]
	if !ok {
		return nil, 0, labelError(ErrUnknownTimer, label)
	}
	if !rec.running {
		return nil, 0, labelError(ErrTimerNotRunning, label)
	}
	now, err := r.now()
	if err != nil {
		return nil, 0, err
	}
	return rec, now, nil
}

// Observe records an interval measured elsewhere as if it had been
// started and stopped on label.
func (r *Registry) Observe(label string, d time.Duration) {
	if !r.active {
		return
	}
	if d < 0 {
		d = 0
	}
	rec, ok := r.records[label]
	if !ok {
		rec = &Record{}
		r.records[label] = rec
	}
	rec.Total += d
	rec.count(d)
}

// Reset forgets label. Unknown labels are ignored.
func (r *Registry) Reset(label string) {
	if !r.active {
		return
	}
	if _, ok := r.records[label]; ok {
		delete(r.records, label)
		r.logger.Debug("stopwatch reset", slog.String("label", label))
	}
}

// ResetAll forgets every label. Mode and the on/off state are kept.
func (r *Registry) ResetAll() {
	if !r.active {
		return
	}
	r.records = make(map[string]*Record)
	r.logger.Debug("stopwatch reset all")
}

// Record returns a copy of the measurements for label.
func (r *Registry) Record(label string) (Record, error) {
	rec, ok := r.records[label]
	if !ok {
		return Record{}, labelError(ErrUnknownTimer, label)
	}
	return *rec, nil
}

// Labels returns all known labels in ascending order.
func (r *Registry) Labels() []string {
	labels := make([]string, 0, len(r.records))
	for label := range r.records {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
