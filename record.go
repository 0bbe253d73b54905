package stopwatch

import "time"

// Record holds the accumulated measurements of a single label.
type Record struct {
	// Total is the time accumulated over all stopped and paused segments.
	Total time.Duration
	// Min and Max are the shortest and longest counted intervals. They
	// stay zero until the first Stop.
	Min time.Duration
	Max time.Duration
	// Stops counts intervals terminated by Stop (or Observe).
	Stops int

	start   time.Duration
	pending time.Duration
	running bool
}

// Average returns Total divided by Stops, and false if nothing was
// stopped yet.
func (r Record) Average() (time.Duration, bool) {
	if r.Stops == 0 {
		return 0, false
	}
	return r.Total / time.Duration(r.Stops), true
}

// Running reports whether the timer has an open segment.
func (r Record) Running() bool {
	return r.running
}

// closeSegment moves the open segment into Total and into the interval
// that the next Stop will count.
func (r *Record) closeSegment(now time.Duration) {
	elapsed := now - r.start
	if elapsed < 0 {
		elapsed = 0
	}
	r.Total += elapsed
	r.pending += elapsed
	r.running = false
}

// count folds one finished interval into Min, Max and Stops.
func (r *Record) count(interval time.Duration) {
	if r.Stops == 0 {
		r.Min = interval
		r.Max = interval
	} else {
		if interval < r.Min {
			r.Min = interval
		}
		if interval > r.Max {
			r.Max = interval
		}
	}
	r.Stops++
}
