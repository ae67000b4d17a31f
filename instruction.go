package hd44780sr

import "fmt"

// Register selects the controller register a byte is written to. It is the
// level of the RS line.
type Register bool

// Registers, by RS level: low for instructions, high for character data.
const (
	InstructionRegister Register = false
	DataRegister        Register = true
)

func (r Register) String() string {
	if r == DataRegister {
		return "data"
	}
	return "instruction"
}

// Instruction is one write to the display controller.
//
// The set is closed: FunctionSet, ClearDisplay, ReturnHome, DisplayControl,
// CursorShift, SetDDRAMAddress and WriteData. Names follow the HD44780
// datasheet.
type Instruction interface {
	// Encode returns the byte put on DB7..DB0 and the register it targets.
	Encode() (byte, Register)
	instruction()
}

// Instruction codes.
const (
	cmdClearDisplay   = 0x01
	cmdReturnHome     = 0x02
	cmdDisplayControl = 0x08
	cmdCursorShift    = 0x10
	cmdFunctionSet    = 0x20
	cmdSetDDRAMAddr   = 0x80

	// Flags for cmdFunctionSet.
	flag8BitBus   = 0x10
	flag2Lines    = 0x08
	functionSet8x = cmdFunctionSet | flag8BitBus | flag2Lines // 0x38, 5x8 dots

	// Flags for cmdDisplayControl.
	flagDisplayOn = 0x04
	flagCursorOn  = 0x02
	flagBlinkOn   = 0x01

	// Flags for cmdCursorShift.
	flagShiftDisplay = 0x08
	flagShiftRight   = 0x04

	// MaxAddress is the highest DDRAM address SetDDRAMAddress can carry.
	MaxAddress = 0x7F
)

// FunctionSet selects an 8-bit bus, 2 display lines and the 5x8 dot font.
type FunctionSet struct{}

func (FunctionSet) Encode() (byte, Register) { return functionSet8x, InstructionRegister }

// ClearDisplay blanks DDRAM and returns the cursor to address 0.
type ClearDisplay struct{}

func (ClearDisplay) Encode() (byte, Register) { return cmdClearDisplay, InstructionRegister }

// ReturnHome returns the cursor to address 0 and undoes any display shift.
type ReturnHome struct{}

func (ReturnHome) Encode() (byte, Register) { return cmdReturnHome, InstructionRegister }

// DisplayControl turns the display, the underline cursor and the blinking
// block on or off.
type DisplayControl struct {
	Display bool
	Cursor  bool
	Blink   bool
}

func (c DisplayControl) Encode() (byte, Register) {
	b := byte(cmdDisplayControl)
	if c.Display {
		b |= flagDisplayOn
	}
	if c.Cursor {
		b |= flagCursorOn
	}
	if c.Blink {
		b |= flagBlinkOn
	}
	return b, InstructionRegister
}

// ShiftTarget is what a CursorShift moves.
type ShiftTarget bool

const (
	ShiftCursor  ShiftTarget = false
	ShiftDisplay ShiftTarget = true
)

func (t ShiftTarget) String() string {
	if t == ShiftDisplay {
		return "display"
	}
	return "cursor"
}

// Direction is the direction of a CursorShift.
type Direction bool

const (
	Left  Direction = false
	Right Direction = true
)

func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

// CursorShift moves the cursor or the whole display by one cell without
// touching DDRAM.
type CursorShift struct {
	Target    ShiftTarget
	Direction Direction
}

func (s CursorShift) Encode() (byte, Register) {
	b := byte(cmdCursorShift)
	if s.Target == ShiftDisplay {
		b |= flagShiftDisplay
	}
	if s.Direction == Right {
		b |= flagShiftRight
	}
	return b, InstructionRegister
}

// SetDDRAMAddress moves the address counter. Only the low 7 bits of Addr are
// sent.
type SetDDRAMAddress struct {
	Addr byte
}

func (a SetDDRAMAddress) Encode() (byte, Register) {
	return cmdSetDDRAMAddr | a.Addr&MaxAddress, InstructionRegister
}

// WriteData writes a character code at the address counter, which the
// controller then advances.
type WriteData struct {
	Char byte
}

func (w WriteData) Encode() (byte, Register) { return w.Char, DataRegister }

func (FunctionSet) instruction() {}
func (ClearDisplay) instruction() {}
func (ReturnHome) instruction() {}
func (DisplayControl) instruction() {}
func (CursorShift) instruction() {}
func (SetDDRAMAddress) instruction() {}
func (WriteData) instruction() {}

func (FunctionSet) String() string { return "FunctionSet" }
func (ClearDisplay) String() string { return "ClearDisplay" }
func (ReturnHome) String() string { return "ReturnHome" }

func (c DisplayControl) String() string {
	return fmt.Sprintf("DisplayControl{display: %t, cursor: %t, blink: %t}", c.Display, c.Cursor, c.Blink)
}

func (s CursorShift) String() string {
	return fmt.Sprintf("CursorShift{%s %s}", s.Target, s.Direction)
}

func (a SetDDRAMAddress) String() string {
	return fmt.Sprintf("SetDDRAMAddress{0x%02X}", a.Addr)
}

func (w WriteData) String() string {
	return fmt.Sprintf("WriteData{0x%02X}", w.Char)
}
