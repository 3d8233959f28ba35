package visibility

import (
	"sync/atomic"
	"time"
)

// Timestamp is a point in time in milliseconds.
type Timestamp int64

var (
	processStart   = time.Now()
	processStartMs = processStart.UnixMilli()
)

// Now returns the current time as a Timestamp. It is anchored to the wall
// clock once at process start and advanced by the monotonic clock afterwards,
// so it never returns 0 and never goes backwards.
func Now() Timestamp {
	return Timestamp(processStartMs + time.Since(processStart).Milliseconds())
}

// DebounceClock records the instant of the most recent focus-loss hide.
// The zero value is ready to use and reads as "never recorded".
type DebounceClock struct {
	lastHide atomic.Int64
}

// RecordHide stores now, overwriting any previous value.
func (c *DebounceClock) RecordHide(now Timestamp) {
	c.lastHide.Store(int64(now))
}

// ElapsedSince reports how long ago the last hide was recorded.
// ok is false if no hide has been recorded yet.
func (c *DebounceClock) ElapsedSince(now Timestamp) (elapsed time.Duration, ok bool) {
	last := c.lastHide.Load()
	if last == 0 {
		return 0, false
	}
	return time.Duration(int64(now)-last) * time.Millisecond, true
}
