package hd44780sr

import (
	"errors"
	"testing"
)

func TestCursorPositionAddress(t *testing.T) {
	tests := []struct {
		name    string
		pos     CursorPosition
		want    byte
		wantErr bool
	}{
		{"origin", CursorPosition{0, 0}, 0x00, false},
		{"end of row 0", CursorPosition{15, 0}, 0x0F, false},
		{"start of row 1", CursorPosition{0, 1}, 0x40, false},
		{"middle of row 1", CursorPosition{5, 1}, 0x45, false},
		{"end of row 1", CursorPosition{15, 1}, 0x4F, false},
		{"column 16", CursorPosition{16, 0}, 0, true},
		{"row 2", CursorPosition{0, 2}, 0, true},
		{"negative column", CursorPosition{-1, 0}, 0, true},
		{"negative row", CursorPosition{0, -1}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.pos.Address()
			if tt.wantErr {
				if !errors.Is(err, ErrOutOfRange) {
					t.Errorf("Address() error = %v, want ErrOutOfRange", err)
				}
				if tt.pos.Valid() {
					t.Error("Valid() = true for an off-grid position")
				}
				return
			}
			if err != nil {
				t.Fatalf("Address() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Address() = 0x%02X, want 0x%02X", got, tt.want)
			}
		})
	}
}

func TestAddressTableBijective(t *testing.T) {
	seen := make(map[byte]CursorPosition)
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			p := CursorPosition{Col: col, Row: row}
			addr, err := p.Address()
			if err != nil {
				t.Fatalf("%s: %v", p, err)
			}
			if prev, dup := seen[addr]; dup {
				t.Errorf("%s and %s share address 0x%02X", prev, p, addr)
			}
			seen[addr] = p

			back, ok := PositionOf(addr)
			if !ok || back != p {
				t.Errorf("PositionOf(0x%02X) = %s, %v; want %s", addr, back, ok, p)
			}
		}
	}
}

func TestPositionOfInvisible(t *testing.T) {
	for _, addr := range []byte{0x10, 0x27, 0x3F, 0x50, 0x7F} {
		if p, ok := PositionOf(addr); ok {
			t.Errorf("PositionOf(0x%02X) = %s, want not visible", addr, p)
		}
	}
}

func TestCursorPositionString(t *testing.T) {
	if got := (CursorPosition{Col: 3, Row: 1}).String(); got != "(3,1)" {
		t.Errorf("String() = %q, want %q", got, "(3,1)")
	}
}
