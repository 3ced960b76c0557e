package nexuslog

import (
	"sync"
	"time"
)

// Timestamp is a wall-clock instant with microsecond precision.
type Timestamp struct {
	Secs   uint64 // seconds since the Unix epoch
	Micros uint32 // microseconds within the second, < 1,000,000
}

// zoneOffset is the local UTC offset in seconds, captured once at process
// start. DST transitions during the process lifetime are ignored.
var zoneOffset = func() int {
	_, offset := time.Now().Zone()
	return offset
}()

// logZone is the fixed timezone used for all record formatting and rotation.
var logZone = time.FixedZone("nexuslog", zoneOffset)

// threadClock caches a wall-clock reading and advances it with the monotonic
// clock, so a producer pays at most one system-time read per second.
type threadClock struct {
	base       time.Time
	baseSecs   uint64
	baseMicros uint32
	lastSecs   uint64
	lastMicros uint32
}

// refresh realigns the base with the wall clock. A pre-epoch reading falls
// back to a zeroed base rather than panic.
func (c *threadClock) refresh() {
	now := time.Now()
	c.base = now
	if now.Unix() < 0 {
		c.baseSecs = 0
		c.baseMicros = 0
		return
	}
	c.baseSecs = uint64(now.Unix())
	c.baseMicros = uint32(now.Nanosecond() / 1000)
}

// now returns the current time, reading the system clock only on first use and
// when the monotonic elapsed since the base reaches one second. Results from
// the same clock are non-decreasing.
func (c *threadClock) now() Timestamp {
	if c.base.IsZero() || time.Since(c.base) >= time.Second {
		c.refresh()
	}
	total := uint64(c.baseMicros) + uint64(time.Since(c.base).Microseconds())
	ts := Timestamp{
		Secs:   c.baseSecs + total/1_000_000,
		Micros: uint32(total % 1_000_000),
	}
	if ts.Secs < c.lastSecs || (ts.Secs == c.lastSecs && ts.Micros < c.lastMicros) {
		ts.Secs, ts.Micros = c.lastSecs, c.lastMicros
	}
	c.lastSecs, c.lastMicros = ts.Secs, ts.Micros
	return ts
}

// clockPool hands each producer an exclusively owned clock for the duration of
// a single emit. Pooled values are cached per-P, which keeps the hot path off
// the system clock without ever sharing a clock between concurrent producers.
var clockPool = sync.Pool{
	New: func() interface{} { return new(threadClock) },
}

// stampNow reads the current time through a pooled clock.
func stampNow() Timestamp {
	c := clockPool.Get().(*threadClock)
	ts := c.now()
	clockPool.Put(c)
	return ts
}
