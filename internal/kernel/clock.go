package kernel

import "sync/atomic"

// Clock is the monotonic, externally maintained tick counter read by
// update_stats and by the gettime(2) syscall. A real port advances it from
// a hardware timer interrupt; this module advances it via Advance(), called
// from Kernel.TimerTick.
type Clock struct {
	ticks int64
}

// NewClock returns a Clock starting at tick 0.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the current tick count.
func (c *Clock) Now() int {
	return int(atomic.LoadInt64(&c.ticks))
}

// Advance moves the clock forward by one tick and returns the new value.
func (c *Clock) Advance() int {
	return int(atomic.AddInt64(&c.ticks, 1))
}
