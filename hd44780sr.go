// Package hd44780sr controls a 2x16 HD44780 character display wired behind a
// 74HC595 shift register.
//
// See doc.go for wiring and usage.
package hd44780sr

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/devices/v3/hd44780sr/charset"
	"periph.io/x/devices/v3/hd44780sr/shiftreg"
)

var errHalted = errors.New("hd44780sr: halted")

// Opts is the configuration for the display.
type Opts struct {
	// Latch selects single or double latch pulses per byte (default:
	// SingleLatch).
	Latch LatchMode
	// Charset maps text to ROM codes in Print and WriteString (default:
	// charset.A00).
	Charset *charset.Map
}

// Dev is the device handle for the display.
//
// Dev owns the shift register and the RS line. It is not safe for concurrent
// use.
type Dev struct {
	ch      channel
	charset *charset.Map

	// Last flags sent with DisplayControl. The display is never read back.
	power DisplayControl

	halted bool
}

// New returns an initialized display on sr with rs as the register select
// line.
//
// opts can be nil to use defaults.
func New(sr *shiftreg.Dev, rs gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	if sr == nil || rs == nil {
		return nil, errors.New("hd44780sr: shift register and RS line are required")
	}
	if opts.Latch != SingleLatch && opts.Latch != DoubleLatch {
		return nil, fmt.Errorf("hd44780sr: unknown latch mode %s", opts.Latch)
	}
	cs := opts.Charset
	if cs == nil {
		cs = charset.A00
	}
	if err := rs.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("hd44780sr: failed to drive RS low: %w", err)
	}

	d := &Dev{
		ch:      channel{sr: sr, rs: rs, mode: opts.Latch},
		charset: cs,
	}
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

// Init sends the initialization sequence: function set, clear, home, and
// display on with the cursor hidden. It also brings a halted display back.
func (d *Dev) Init() error {
	d.halted = false
	d.ch.sr.Reset()
	d.send(FunctionSet{})
	if err := d.Clear(); err != nil {
		return err
	}
	if err := d.Home(); err != nil {
		return err
	}
	return d.PowerControl(true, false, false)
}

// Send writes a single instruction. A DisplayControl becomes the state that
// Cursor and Display build on.
func (d *Dev) Send(ins Instruction) error {
	if d.halted {
		return errHalted
	}
	d.send(ins)
	if c, ok := ins.(DisplayControl); ok {
		d.power = c
	}
	return nil
}

func (d *Dev) send(ins Instruction) {
	b, r := ins.Encode()
	d.ch.send(r, b)
}

// Clear blanks the display and moves the cursor home.
func (d *Dev) Clear() error {
	return d.Send(ClearDisplay{})
}

// Home moves the cursor to (0,0) and undoes display shifts.
func (d *Dev) Home() error {
	return d.Send(ReturnHome{})
}

// PowerControl turns the display, the underline cursor and the blinking block
// on or off.
func (d *Dev) PowerControl(displayOn, cursorOn, blinkOn bool) error {
	return d.Send(DisplayControl{Display: displayOn, Cursor: cursorOn, Blink: blinkOn})
}

// Shift moves the cursor or the whole display one cell.
func (d *Dev) Shift(target ShiftTarget, dir Direction) error {
	return d.Send(CursorShift{Target: target, Direction: dir})
}

// SetAddress moves the address counter to DDRAM address addr.
func (d *Dev) SetAddress(addr byte) error {
	if addr > MaxAddress {
		return fmt.Errorf("%w: DDRAM address 0x%02X above 0x%02X", ErrOutOfRange, addr, MaxAddress)
	}
	return d.Send(SetDDRAMAddress{Addr: addr})
}

// SetCursor moves the cursor to p. Nothing is sent if p is off the grid.
func (d *Dev) SetCursor(p CursorPosition) error {
	if d.halted {
		return errHalted
	}
	addr, err := p.Address()
	if err != nil {
		return err
	}
	return d.SetAddress(addr)
}

// Print writes text at the cursor, one character per rune. The display
// advances the cursor itself; nothing wraps to the next row.
func (d *Dev) Print(text string) error {
	_, err := d.WriteString(text)
	return err
}

// Write writes raw character codes at the cursor. The charset is not
// applied, so fmt.Fprint(dev, ...) sends the UTF-8 bytes as they are; use
// Print or WriteString for text.
func (d *Dev) Write(p []byte) (int, error) {
	if d.halted {
		return 0, errHalted
	}
	for _, b := range p {
		d.send(WriteData{Char: b})
	}
	return len(p), nil
}

// WriteString writes text encoded with the configured charset, one
// character per rune. n is len(text) on success.
func (d *Dev) WriteString(text string) (int, error) {
	if _, err := d.Write(d.charset.Encode(nil, text)); err != nil {
		return 0, err
	}
	return len(text), nil
}

// AutoScroll is not supported: entry mode set is not part of the
// instruction set this driver sends. Returns display.ErrNotImplemented.
func (d *Dev) AutoScroll(enabled bool) error {
	return fmt.Errorf("hd44780sr: auto scroll: %w", display.ErrNotImplemented)
}

// Cols returns the number of columns.
func (d *Dev) Cols() int {
	return Cols
}

// Rows returns the number of rows.
func (d *Dev) Rows() int {
	return Rows
}

// MinCol returns the first column index. Positions are zero-based.
func (d *Dev) MinCol() int {
	return 0
}

// MinRow returns the first row index. Positions are zero-based.
func (d *Dev) MinRow() int {
	return 0
}

// Cursor sets the cursor style, keeping the display power as it is.
// CursorOff hides both cursors, CursorUnderline shows the underline and
// CursorBlock or CursorBlink show the blinking block.
func (d *Dev) Cursor(modes ...display.CursorMode) error {
	c := d.power
	for _, mode := range modes {
		switch mode {
		case display.CursorOff:
			c.Cursor = false
			c.Blink = false
		case display.CursorUnderline:
			c.Cursor = true
		case display.CursorBlock, display.CursorBlink:
			c.Blink = true
		default:
			return fmt.Errorf("hd44780sr: unexpected cursor mode %d: %w", mode, display.ErrInvalidCommand)
		}
	}
	return d.PowerControl(c.Display, c.Cursor, c.Blink)
}

// Move shifts the cursor one cell forward or backward.
func (d *Dev) Move(dir display.CursorDirection) error {
	switch dir {
	case display.Forward:
		return d.Shift(ShiftCursor, Right)
	case display.Backward:
		return d.Shift(ShiftCursor, Left)
	default:
		return fmt.Errorf("hd44780sr: move %d: %w", dir, display.ErrNotImplemented)
	}
}

// MoveTo moves the cursor to the zero-based row and col.
func (d *Dev) MoveTo(row, col int) error {
	return d.SetCursor(CursorPosition{Col: col, Row: row})
}

// Display turns the display on or off, keeping the cursor style.
func (d *Dev) Display(on bool) error {
	return d.PowerControl(on, d.power.Cursor, d.power.Blink)
}

// Halt turns the display off and drives every line low.
// After calling Halt, every operation fails until Init is called.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	if err := d.PowerControl(false, false, false); err != nil {
		return err
	}
	d.halted = true
	return errors.Join(d.ch.sr.Halt(), d.ch.rs.Out(gpio.Low))
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("hd44780sr.Dev{%dx%d}", Cols, Rows)
}

var _ display.TextDisplay = &Dev{}
var _ conn.Resource = &Dev{}
