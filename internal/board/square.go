// Package board holds the bitboard position, attack tables, move generator
// and move applier.
package board

import "fmt"

// Square represents a square on the chess board (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank (row) of the square (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// SquareFromIndex converts a bit index into a Square. Indices outside 0-63
// fail instead of wrapping.
func SquareFromIndex(i int) (Square, error) {
	if i < 0 || i >= int(NoSquare) {
		return NoSquare, fmt.Errorf("%w: square index %d", ErrInvalidIndex, i)
	}
	return Square(i), nil
}

// SquareAt returns the square at the given file and rank (both 0-7).
func SquareAt(file, rank int) (Square, error) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("%w: file %d rank %d", ErrInvalidIndex, file, rank)
	}
	return newSquare(file, rank), nil
}

// newSquare skips the range check; callers loop over 0-7.
func newSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: square %q", ErrInvalidIndex, s)
	}
	sq, err := SquareAt(int(s[0])-'a', int(s[1])-'1')
	if err != nil {
		return NoSquare, fmt.Errorf("%w: square %q", ErrInvalidIndex, s)
	}
	return sq, nil
}
