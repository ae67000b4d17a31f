// Package hd44780sr controls a 2x16 HD44780 character display through a
// 74HC595 shift register.
//
// The display's eight data lines hang off the shift register's parallel
// outputs, so the host only drives three lines for the bus (serial data,
// serial clock and latch) plus register select. Bytes are shifted in
// most-significant bit first so bit 7 lands on QH/DB7 and bit 0 on QA/DB0.
//
// This driver implements the display.TextDisplay interface from periph.io.
//
// # Hardware Connection
//
//	74HC595    Connection
//	QA..QH     1602 DB0..DB7
//	SER        GPIO (serial data)
//	SRCLK      GPIO (serial clock)
//	RCLK       GPIO (latch), also wired to 1602 E
//	!OE        GND
//	!SRCLR     VCC
//
//	1602       Connection
//	RS         GPIO (register select)
//	R/W        GND (write only)
//	VO         contrast potentiometer
//
// Because RCLK and E share a line, one latch pulse both updates the register
// outputs and strobes the display. Some boards need a second strobe after the
// bus has settled; select it with Opts.Latch:
//
//	dev, _ := hd44780sr.New(sr, rs, &hd44780sr.Opts{Latch: hd44780sr.DoubleLatch})
//
// # Basic Usage
//
//	package main
//
//	import (
//		"log"
//
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/devices/v3/hd44780sr"
//		"periph.io/x/devices/v3/hd44780sr/shiftreg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		if _, err := host.Init(); err != nil {
//			log.Fatal(err)
//		}
//		sr, err := shiftreg.New(gpioreg.ByName("GPIO12"), gpioreg.ByName("GPIO14"), gpioreg.ByName("GPIO13"), nil)
//		if err != nil {
//			log.Fatal(err)
//		}
//		dev, err := hd44780sr.New(sr, gpioreg.ByName("GPIO15"), nil)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Halt()
//
//		dev.Print("     Hello")
//		dev.SetCursor(hd44780sr.CursorPosition{Col: 0, Row: 1})
//		dev.Print("     World")
//	}
//
// # Instructions
//
// Every operation is a single byte write:
//
//	FunctionSet                0x38 (8-bit bus, 2 lines, 5x8 dots)
//	ClearDisplay               0x01
//	ReturnHome                 0x02
//	DisplayControl{d, c, b}    0x08 | d<<2 | c<<1 | b
//	CursorShift{target, dir}   0x10 | display<<3 | right<<2
//	SetDDRAMAddress{addr}      0x80 | addr
//	WriteData{char}            char, with RS high
//
// Instructions can also be sent directly with Dev.Send.
//
// # Addressing
//
// Row 0 covers DDRAM 0x00-0x0F and row 1 covers 0x40-0x4F. Positions are
// zero-based; SetCursor and MoveTo reject anything outside the 16x2 grid with
// ErrOutOfRange instead of sending a bogus address.
//
// # Timing
//
// Each bit is held 1µs before a 1µs high, 1µs low clock pulse; the latch is
// pulsed the same way. In SingleLatch mode every write is followed by a 1ms
// settle wait. Timing goes through the shift register's shiftreg.Waiter, so
// tests can record it instead of waiting.
//
// # Datasheet
//
// https://www.sparkfun.com/datasheets/LCD/HD44780.pdf
package hd44780sr
