package board

import (
	"errors"
	"fmt"
	"testing"
)

func expectPanic(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("panic = %v, want error wrapping %v", r, target)
		}
	}()
	f()
}

func TestToggleRoundTrip(t *testing.T) {
	boards := []Bitboard{0, 0xff00, 0x0014220022140000, Universe}
	for _, b := range boards {
		for sq := A1; sq <= H8; sq++ {
			once := b.Toggle(sq)
			if once == b {
				t.Fatalf("Toggle(%s) left %#x unchanged", sq, uint64(b))
			}
			if twice := once.Toggle(sq); twice != b {
				t.Errorf("Toggle(%s) twice = %#x, want %#x", sq, uint64(twice), uint64(b))
			}
		}
	}
}

func TestToggleInvalidSquare(t *testing.T) {
	expectPanic(t, ErrInvalidIndex, func() {
		Bitboard(0).Toggle(NoSquare)
	})
}

func TestEmptyBitboardPanics(t *testing.T) {
	tests := []struct {
		name string
		f    func()
	}{
		{"LSB", func() { Bitboard(0).LSB() }},
		{"MSB", func() { Bitboard(0).MSB() }},
		{"PopLSB", func() {
			var b Bitboard
			b.PopLSB()
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			expectPanic(t, ErrMalformedBitboard, tc.f)
		})
	}
}

func TestLSBMSB(t *testing.T) {
	tests := []struct {
		b        Bitboard
		lsb, msb Square
	}{
		{SquareBB(A1), A1, A1},
		{SquareBB(H8), H8, H8},
		{0xff00, A2, H2},
		{SquareBB(C3) | SquareBB(F6), C3, F6},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%#x", uint64(tc.b)), func(t *testing.T) {
			if got := tc.b.LSB(); got != tc.lsb {
				t.Errorf("LSB = %s, want %s", got, tc.lsb)
			}
			if got := tc.b.MSB(); got != tc.msb {
				t.Errorf("MSB = %s, want %s", got, tc.msb)
			}
		})
	}
}

func TestPopLSBDrainsInOrder(t *testing.T) {
	b := SquareBB(E4) | SquareBB(B2) | SquareBB(H8)
	want := []Square{B2, E4, H8}
	for i, sq := range want {
		if got := b.PopLSB(); got != sq {
			t.Fatalf("pop %d = %s, want %s", i, got, sq)
		}
	}
	if b != 0 {
		t.Errorf("board after draining = %#x, want 0", uint64(b))
	}
}

func TestSquares(t *testing.T) {
	b := SquareBB(H8) | SquareBB(A1) | SquareBB(D4)
	got := b.Squares()
	want := []Square{A1, D4, H8}
	if len(got) != len(want) {
		t.Fatalf("Squares() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Squares()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	if b.PopCount() != 3 {
		t.Errorf("Squares modified the receiver: %#x", uint64(b))
	}
	if n := len(Empty.Squares()); n != 0 {
		t.Errorf("Empty.Squares() has %d squares", n)
	}
}

func TestShiftsDoNotWrap(t *testing.T) {
	if got := FileH.East(); got != 0 {
		t.Errorf("FileH.East() = %#x, want 0", uint64(got))
	}
	if got := FileA.West(); got != 0 {
		t.Errorf("FileA.West() = %#x, want 0", uint64(got))
	}
	if got := Rank8.North(); got != 0 {
		t.Errorf("Rank8.North() = %#x, want 0", uint64(got))
	}
	if got := SquareBB(H4).NorthEast(); got != 0 {
		t.Errorf("h4 NorthEast = %#x, want 0", uint64(got))
	}
	if got := SquareBB(A4).SouthWest(); got != 0 {
		t.Errorf("a4 SouthWest = %#x, want 0", uint64(got))
	}
}

func TestBitboardString(t *testing.T) {
	s := SquareBB(A1).String()
	want := "8 . . . . . . . . \n" +
		"7 . . . . . . . . \n" +
		"6 . . . . . . . . \n" +
		"5 . . . . . . . . \n" +
		"4 . . . . . . . . \n" +
		"3 . . . . . . . . \n" +
		"2 . . . . . . . . \n" +
		"1 1 . . . . . . . \n" +
		"  a b c d e f g h\n"
	if s != want {
		t.Errorf("String() =\n%s\nwant\n%s", s, want)
	}
}
