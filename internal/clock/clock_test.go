package clock

import (
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRealTimeMonotonic(t *testing.T) {
	c := RealTime()
	first, err := c.Now()
	require.NoError(t, err)
	require.GreaterOrEqual(t, first, time.Duration(0))
	time.Sleep(5 * time.Millisecond)
	second, err := c.Now()
	require.NoError(t, err)
	require.GreaterOrEqual(t, second-first, 5*time.Millisecond)
}

func TestCPUTimeAdvancesUnderLoad(t *testing.T) {
	if runtime.GOOS == "js" || runtime.GOOS == "wasip1" || runtime.GOOS == "plan9" {
		t.Skip("no process cpu clock")
	}
	c := CPUTime()
	before, err := c.Now()
	require.NoError(t, err)

	deadline := time.Now().Add(50 * time.Millisecond)
	x := 0
	for time.Now().Before(deadline) {
		x++
	}
	require.NotZero(t, x)

	after, err := c.Now()
	require.NoError(t, err)
	require.Greater(t, after, before)
}

func TestFunc(t *testing.T) {
	errBroken := errors.New("broken")
	c := Func(func() (time.Duration, error) {
		return 0, errBroken
	})
	_, err := c.Now()
	require.ErrorIs(t, err, errBroken)
}
