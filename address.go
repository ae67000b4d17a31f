package hd44780sr

import (
	"errors"
	"fmt"
)

// Display geometry.
const (
	Rows = 2
	Cols = 16
)

// ErrOutOfRange is returned for a cursor position outside the Rows x Cols
// grid or a DDRAM address above MaxAddress.
var ErrOutOfRange = errors.New("hd44780sr: out of range")

// ddram maps [row][col] to the DDRAM address of that cell on a 1602 module.
// Row 1 starts at 0x40 whatever the column count.
var ddram = [Rows][Cols]byte{
	{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F},
	{0x40, 0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0x47, 0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x4D, 0x4E, 0x4F},
}

// CursorPosition is a zero-based cell on the display.
type CursorPosition struct {
	Col int
	Row int
}

// Valid reports whether p is on the grid.
func (p CursorPosition) Valid() bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Cols
}

// Address returns the DDRAM address of p.
func (p CursorPosition) Address() (byte, error) {
	if !p.Valid() {
		return 0, fmt.Errorf("%w: cursor position %s not on %dx%d grid", ErrOutOfRange, p, Cols, Rows)
	}
	return ddram[p.Row][p.Col], nil
}

func (p CursorPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// PositionOf returns the cell at DDRAM address addr. ok is false when addr
// is not visible on the grid.
func PositionOf(addr byte) (p CursorPosition, ok bool) {
	for row := range ddram {
		for col, a := range ddram[row] {
			if a == addr {
				return CursorPosition{Col: col, Row: row}, true
			}
		}
	}
	return CursorPosition{}, false
}
