// Package shiftreg bit-bangs a 74HC595 serial-in/parallel-out shift register
// over three GPIO lines.
//
// See doc.go for wiring and timing.
package shiftreg

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// BitOrder selects which end of a value is shifted out first.
type BitOrder bool

const (
	// LSBFirst shifts bit 0 first. It ends up on the highest output (QH).
	LSBFirst BitOrder = false
	// MSBFirst shifts the highest bit first so the value lands on QH..QA in
	// its natural order.
	MSBFirst BitOrder = true
)

func (o BitOrder) String() string {
	if o == MSBFirst {
		return "MSBFirst"
	}
	return "LSBFirst"
}

// HoldMicros is the data hold time and the duration of each clock and latch
// phase.
const HoldMicros = 1

// ErrBitCount is returned by ShiftN for a bit count outside [1, 64].
var ErrBitCount = errors.New("shiftreg: bit count must be between 1 and 64")

// Dev is a shift register driven through three output lines.
//
// Dev owns its lines. It is not safe for concurrent use.
type Dev struct {
	data  gpio.PinOut // SER
	clock gpio.PinOut // SRCLK
	latch gpio.PinOut // RCLK
	w     Waiter
}

// New returns a shift register driven by the given lines.
//
// Clock and latch are driven low before returning. w can be nil to busy wait
// with SpinWaiter.
func New(data, clock, latch gpio.PinOut, w Waiter) (*Dev, error) {
	if data == nil || clock == nil || latch == nil {
		return nil, errors.New("shiftreg: data, clock and latch lines are required")
	}
	if data == clock || data == latch || clock == latch {
		return nil, errors.New("shiftreg: data, clock and latch must be distinct lines")
	}
	if w == nil {
		w = SpinWaiter{}
	}
	d := &Dev{data: data, clock: clock, latch: latch, w: w}
	for _, p := range []gpio.PinOut{data, clock, latch} {
		if err := p.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("shiftreg: failed to drive %s low: %w", p, err)
		}
	}
	return d, nil
}

// Waiter returns the timing primitive the register waits with.
func (d *Dev) Waiter() Waiter {
	return d.w
}

// Reset drives the clock and latch lines low.
func (d *Dev) Reset() {
	_ = d.clock.Out(gpio.Low)
	_ = d.latch.Out(gpio.Low)
}

// Shift clocks the 8 bits of b into the register.
func (d *Dev) Shift(b byte, order BitOrder) {
	d.shift(uint64(b), 8, order)
}

// ShiftN clocks the low n bits of v into the register. n can exceed 8 when
// registers are daisy-chained through QH'.
func (d *Dev) ShiftN(v uint64, n int, order BitOrder) error {
	if n < 1 || n > 64 {
		return ErrBitCount
	}
	d.shift(v, n, order)
	return nil
}

func (d *Dev) shift(v uint64, n int, order BitOrder) {
	for i := 0; i < n; i++ {
		idx := i
		if order == MSBFirst {
			idx = n - 1 - i
		}
		_ = d.data.Out(gpio.Level(v>>uint(idx)&1 == 1))
		d.w.WaitMicros(HoldMicros)
		d.pulse(d.clock)
	}
}

// Latch copies the register's internal bits to its parallel outputs.
func (d *Dev) Latch() {
	d.pulse(d.latch)
}

// pulse drives p high then low, holding each level.
func (d *Dev) pulse(p gpio.PinOut) {
	_ = p.Out(gpio.High)
	d.w.WaitMicros(HoldMicros)
	_ = p.Out(gpio.Low)
	d.w.WaitMicros(HoldMicros)
}

// Halt drives all three lines low.
func (d *Dev) Halt() error {
	var errs []error
	for _, p := range []gpio.PinOut{d.data, d.clock, d.latch} {
		errs = append(errs, p.Out(gpio.Low))
	}
	return errors.Join(errs...)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("shiftreg.Dev{data: %s, clock: %s, latch: %s}", d.data, d.clock, d.latch)
}

var _ conn.Resource = &Dev{}
