package stopwatch

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Entry is an exported view of one Record, in seconds.
type Entry struct {
	Label   string  `yaml:"label" toml:"label"`
	Total   float64 `yaml:"total" toml:"total"`
	Stops   int     `yaml:"stops" toml:"stops"`
	Average float64 `yaml:"average" toml:"average"`
	Min     float64 `yaml:"min" toml:"min"`
	Max     float64 `yaml:"max" toml:"max"`
	Running bool    `yaml:"running,omitempty" toml:"running,omitempty"`
}

// Snapshot is the exported state of a Registry.
type Snapshot struct {
	Mode    string  `yaml:"mode" toml:"mode"`
	Active  bool    `yaml:"active" toml:"active"`
	Entries []Entry `yaml:"timers" toml:"timers"`
}

// Snapshot copies all records, ordered by label. Average is zero for
// labels that were never stopped.
func (r *Registry) Snapshot() Snapshot {
	s := Snapshot{
		Mode:    r.mode.String(),
		Active:  r.active,
		Entries: make([]Entry, 0, len(r.records)),
	}
	for _, label := range r.Labels() {
		rec := r.records[label]
		avg, _ := rec.Average()
		s.Entries = append(s.Entries, Entry{
			Label:   label,
			Total:   rec.Total.Seconds(),
			Stops:   rec.Stops,
			Average: avg.Seconds(),
			Min:     rec.Min.Seconds(),
			Max:     rec.Max.Seconds(),
			Running: rec.running,
		})
	}
	return s
}

func (r *Registry) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.Snapshot()); err != nil {
		return fmt.Errorf("encode yaml snapshot: %w", err)
	}
	return enc.Close()
}

func (r *Registry) WriteTOML(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(r.Snapshot()); err != nil {
		return fmt.Errorf("encode toml snapshot: %w", err)
	}
	return nil
}
