package stopwatch

import (
	"fmt"
	"io"
	"time"
)

// Report writes a single line describing label to w, or to the configured
// output when w is nil.
func (r *Registry) Report(w io.Writer, label string) error {
	rec, ok := r.records[label]
	if !ok {
		return labelError(ErrUnknownTimer, label)
	}
	if w == nil {
		w = r.output
	}
	avg := "N/A"
	if d, ok := rec.Average(); ok {
		avg = formatSeconds(d)
	}
	_, err := fmt.Fprintf(w,
		"%s: total %s, stops %d, avg %s, min %s, max %s\n",
		label,
		formatSeconds(rec.Total),
		rec.Stops,
		avg,
		formatSeconds(rec.Min),
		formatSeconds(rec.Max),
	)
	return err
}

// ReportAll reports every label in ascending order.
func (r *Registry) ReportAll(w io.Writer) error {
	for _, label := range r.Labels() {
		if err := r.Report(w, label); err != nil {
			return err
		}
	}
	return nil
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.6fs", d.Seconds())
}
