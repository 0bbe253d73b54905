package stopwatch

// Mode selects the source Registry reads time from.
type Mode uint8

const (
	// ModeNone means the clock was never initialized; every clock read
	// fails with ErrUninitializedClock.
	ModeNone = Mode(iota)
	// ModeCPUTime measures processor time consumed by the process.
	ModeCPUTime
	// ModeRealTime measures wall-clock time.
	ModeRealTime
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeCPUTime:
		return "cpu_time"
	case ModeRealTime:
		return "real_time"
	default:
		return "unknown"
	}
}

func (m Mode) valid() bool {
	return m == ModeCPUTime || m == ModeRealTime
}
