package hd44780sr

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/devices/v3/hd44780sr/shiftreg"
)

// LatchMode selects how a byte is committed once it has been shifted in.
//
// The latch line drives both the register's RCLK and the display's E input,
// so which mode a board needs depends on its wiring.
type LatchMode int

const (
	// SingleLatch pulses the latch once, updating the register outputs and
	// strobing the display together, then waits SettleMillis.
	SingleLatch LatchMode = iota
	// DoubleLatch pulses the latch twice: the first commits the register,
	// the second strobes the display once the bus is stable. There is no
	// settle wait.
	DoubleLatch
)

// SettleMillis is the fixed wait after a SingleLatch write. It is shorter
// than the 1.52ms the datasheet gives Clear and Return Home at 270kHz.
const SettleMillis = 1

func (m LatchMode) String() string {
	switch m {
	case SingleLatch:
		return "SingleLatch"
	case DoubleLatch:
		return "DoubleLatch"
	default:
		return fmt.Sprintf("LatchMode(%d)", int(m))
	}
}

// channel writes single bytes to the display through the shift register.
type channel struct {
	sr   *shiftreg.Dev
	rs   gpio.PinOut
	mode LatchMode
}

// send writes b to register r. RS is settled before the first bit and stays
// put through the latch.
func (c *channel) send(r Register, b byte) {
	_ = c.rs.Out(gpio.Level(r))
	c.sr.Shift(b, shiftreg.MSBFirst)
	c.sr.Latch()
	if c.mode == DoubleLatch {
		c.sr.Latch()
		return
	}
	c.sr.Waiter().WaitMillis(SettleMillis)
}
