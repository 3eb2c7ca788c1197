package board

import (
	"errors"
	"testing"
)

func TestSquareFromIndex(t *testing.T) {
	for i := 0; i < 64; i++ {
		sq, err := SquareFromIndex(i)
		if err != nil {
			t.Fatalf("SquareFromIndex(%d): %v", i, err)
		}
		if sq.Rank() != i/8 || sq.File() != i%8 {
			t.Errorf("square %d: rank %d file %d", i, sq.Rank(), sq.File())
		}
	}
	for _, i := range []int{-1, 64, 255} {
		if _, err := SquareFromIndex(i); !errors.Is(err, ErrInvalidIndex) {
			t.Errorf("SquareFromIndex(%d) err = %v, want ErrInvalidIndex", i, err)
		}
	}
}

func TestSquareAt(t *testing.T) {
	sq, err := SquareAt(3, 4)
	if err != nil || sq != D5 || D5 != 35 {
		t.Errorf("SquareAt(3, 4) = %d, %v, want d5 (35)", sq, err)
	}
	if _, err := SquareAt(8, 0); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("SquareAt(8, 0) err = %v, want ErrInvalidIndex", err)
	}
	if _, err := SquareAt(0, -1); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("SquareAt(0, -1) err = %v, want ErrInvalidIndex", err)
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in   string
		want Square
		ok   bool
	}{
		{"a1", A1, true},
		{"h8", H8, true},
		{"e4", E4, true},
		{"i1", NoSquare, false},
		{"a9", NoSquare, false},
		{"e", NoSquare, false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseSquare(tc.in)
			if tc.ok != (err == nil) {
				t.Fatalf("ParseSquare(%q) err = %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseSquare(%q) = %s, want %s", tc.in, got, tc.want)
			}
			if tc.ok && got.String() != tc.in {
				t.Errorf("String() = %s, want %s", got, tc.in)
			}
		})
	}
}

func TestIndexConversions(t *testing.T) {
	if c, err := ColorFromIndex(1); err != nil || c != Black {
		t.Errorf("ColorFromIndex(1) = %v, %v", c, err)
	}
	if _, err := ColorFromIndex(2); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("ColorFromIndex(2) err = %v", err)
	}
	if pt, err := PieceTypeFromIndex(5); err != nil || pt != King {
		t.Errorf("PieceTypeFromIndex(5) = %v, %v", pt, err)
	}
	if _, err := PieceTypeFromIndex(6); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("PieceTypeFromIndex(6) err = %v", err)
	}
	if p, err := PieceFromChar('n'); err != nil || p != BlackKnight {
		t.Errorf("PieceFromChar('n') = %v, %v", p, err)
	}
	if _, err := PieceFromChar('x'); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("PieceFromChar('x') err = %v", err)
	}
}
