// Package shiftreg bit-bangs a 74HC595 shift register.
//
// # Wiring
//
//	74HC595    Host
//	SER        GPIO (data)
//	SRCLK      GPIO (clock)
//	RCLK       GPIO (latch)
//	!OE        GND
//	!SRCLR     VCC
//	QH'        next register's SER, or unconnected
//
// # Timing
//
// Each bit is written to SER and held for HoldMicros before SRCLK is pulsed
// high then low, each phase held for HoldMicros. Latch pulses RCLK the same
// way. All waits go through a Waiter:
//
//   - SpinWaiter busy waits with periph.io/x/host/v3/cpu.Nanospin.
//   - ClockWaiter sleeps on a github.com/jonboulle/clockwork Clock, which
//     makes the timing observable in tests with a fake clock.
//
// # Usage
//
//	sr, err := shiftreg.New(gpioreg.ByName("GPIO12"), gpioreg.ByName("GPIO14"), gpioreg.ByName("GPIO13"), nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	sr.Shift(0x0B, shiftreg.MSBFirst)
//	sr.Latch()
package shiftreg
