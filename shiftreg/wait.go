package shiftreg

import (
	"time"

	"github.com/jonboulle/clockwork"
	"periph.io/x/host/v3/cpu"
)

// Waiter blocks the caller for at least the requested duration.
type Waiter interface {
	WaitMicros(n uint32)
	WaitMillis(n uint32)
}

// SpinWaiter busy waits for microsecond delays and sleeps for millisecond
// ones. The scheduler cannot be trusted with a 1µs sleep.
type SpinWaiter struct{}

// WaitMicros spins for n microseconds.
func (SpinWaiter) WaitMicros(n uint32) {
	cpu.Nanospin(time.Duration(n) * time.Microsecond)
}

// WaitMillis sleeps for n milliseconds.
func (SpinWaiter) WaitMillis(n uint32) {
	time.Sleep(time.Duration(n) * time.Millisecond)
}

// ClockWaiter waits on a clockwork.Clock.
type ClockWaiter struct {
	Clock clockwork.Clock
}

// NewClockWaiter returns a ClockWaiter on c, or on the real clock if c is nil.
func NewClockWaiter(c clockwork.Clock) ClockWaiter {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	return ClockWaiter{Clock: c}
}

// WaitMicros sleeps on the clock for n microseconds.
func (w ClockWaiter) WaitMicros(n uint32) {
	w.Clock.Sleep(time.Duration(n) * time.Microsecond)
}

// WaitMillis sleeps on the clock for n milliseconds.
func (w ClockWaiter) WaitMillis(n uint32) {
	w.Clock.Sleep(time.Duration(n) * time.Millisecond)
}
