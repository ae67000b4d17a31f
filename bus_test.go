package hd44780sr

import (
	"testing"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/devices/v3/hd44780sr/shiftreg"
)

const (
	pinSER   = "SER"
	pinSRCLK = "SRCLK"
	pinRCLK  = "RCLK"
	pinRS    = "RS"
)

// event is a level change on a named line, or a wait when pin is empty.
type event struct {
	pin   string
	level gpio.Level
	wait  time.Duration
}

type trace struct {
	events []event
}

type tracePin struct {
	*gpiotest.Pin
	t *trace
}

func (p *tracePin) Out(l gpio.Level) error {
	p.t.events = append(p.t.events, event{pin: p.N, level: l})
	return p.Pin.Out(l)
}

type traceWaiter struct {
	t *trace
}

func (w traceWaiter) WaitMicros(n uint32) {
	w.t.events = append(w.t.events, event{wait: time.Duration(n) * time.Microsecond})
}

func (w traceWaiter) WaitMillis(n uint32) {
	w.t.events = append(w.t.events, event{wait: time.Duration(n) * time.Millisecond})
}

// testBus is the four lines of a display plus their shared trace.
type testBus struct {
	trace *trace
	ser   *tracePin
	srclk *tracePin
	rclk  *tracePin
	rs    *tracePin
}

func newTestBus() *testBus {
	tr := &trace{}
	return &testBus{
		trace: tr,
		ser:   &tracePin{Pin: &gpiotest.Pin{N: pinSER, Num: 12}, t: tr},
		srclk: &tracePin{Pin: &gpiotest.Pin{N: pinSRCLK, Num: 14}, t: tr},
		rclk:  &tracePin{Pin: &gpiotest.Pin{N: pinRCLK, Num: 13}, t: tr},
		rs:    &tracePin{Pin: &gpiotest.Pin{N: pinRS, Num: 15}, t: tr},
	}
}

func (b *testBus) shiftRegister(t *testing.T) *shiftreg.Dev {
	t.Helper()
	sr, err := shiftreg.New(b.ser, b.srclk, b.rclk, traceWaiter{b.trace})
	if err != nil {
		t.Fatalf("shiftreg.New() failed: %v", err)
	}
	return sr
}

// newTestDev returns an initialized Dev whose trace starts after Init.
func newTestDev(t *testing.T, opts *Opts) (*Dev, *testBus) {
	t.Helper()
	b := newTestBus()
	dev, err := New(b.shiftRegister(t), b.rs, opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	b.trace.events = nil
	return dev, b
}

// transmission is one byte rebuilt from the trace.
type transmission struct {
	rs       gpio.Level
	value    byte
	bits     int
	latches  int
	rsStable bool
	settle   time.Duration // millisecond waits after the last latch
}

// decode rebuilds the bytes written to the display. A byte is the data level
// at each SRCLK rising edge, MSB first, closed by an RCLK rising edge. An
// RCLK pulse with no bits pending counts as an extra latch of the previous
// byte.
func decode(events []event) []transmission {
	var out []transmission
	var cur transmission
	var data, rs gpio.Level
	for _, e := range events {
		switch e.pin {
		case pinSER:
			data = e.level
		case pinRS:
			if cur.bits > 0 && e.level != rs {
				cur.rsStable = false
			}
			rs = e.level
		case pinSRCLK:
			if e.level != gpio.High {
				continue
			}
			if cur.bits == 0 {
				cur.rs = rs
				cur.rsStable = true
			}
			cur.value <<= 1
			if data {
				cur.value |= 1
			}
			cur.bits++
		case pinRCLK:
			if e.level != gpio.High {
				continue
			}
			if cur.bits > 0 {
				if rs != cur.rs {
					cur.rsStable = false
				}
				cur.latches = 1
				out = append(out, cur)
				cur = transmission{}
			} else if len(out) > 0 {
				out[len(out)-1].latches++
			}
		case "":
			if e.wait >= time.Millisecond && len(out) > 0 && cur.bits == 0 {
				out[len(out)-1].settle += e.wait
			}
		}
	}
	return out
}

// sent returns the decoded bytes and fails the test unless every one of them
// is a complete 8-bit write with RS held steady.
func sent(t *testing.T, b *testBus) []transmission {
	t.Helper()
	txs := decode(b.trace.events)
	for i, tx := range txs {
		if tx.bits != 8 {
			t.Errorf("transmission %d: %d bits, want 8", i, tx.bits)
		}
		if !tx.rsStable {
			t.Errorf("transmission %d: RS changed during the write", i)
		}
	}
	return txs
}

func values(txs []transmission) []byte {
	out := make([]byte, len(txs))
	for i, tx := range txs {
		out[i] = tx.value
	}
	return out
}
