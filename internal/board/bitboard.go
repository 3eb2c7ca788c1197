package board

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a set of squares, one bit per square.
// Bit 0 = A1, Bit 7 = H1, Bit 56 = A8, Bit 63 = H8.
type Bitboard uint64

// File masks
const (
	FileA Bitboard = 0x0101010101010101
	FileH Bitboard = FileA << 7
)

// Rank masks
const (
	Rank1 Bitboard = 0x00000000000000FF
	Rank2 Bitboard = Rank1 << 8
	Rank7 Bitboard = Rank1 << 48
	Rank8 Bitboard = Rank1 << 56
)

const (
	Empty    Bitboard = 0
	Universe Bitboard = 0xFFFFFFFFFFFFFFFF

	// Wraparound guards for horizontal shifts.
	NotFileA Bitboard = ^FileA
	NotFileH Bitboard = ^FileH
)

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) Bitboard {
	return 1 << sq
}

// IsSet returns true if the bit at the given square is set.
func (b Bitboard) IsSet(sq Square) bool {
	return sq < NoSquare && b&(1<<sq) != 0
}

// Toggle flips the bit at sq. Toggling twice restores the original board.
func (b Bitboard) Toggle(sq Square) Bitboard {
	if sq >= NoSquare {
		panic(fmt.Errorf("%w: toggle square %d", ErrInvalidIndex, sq))
	}
	return b ^ (1 << sq)
}

// PopCount returns the number of set bits (population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the lowest set square. It panics on an empty board.
func (b Bitboard) LSB() Square {
	if b == 0 {
		panic(fmt.Errorf("%w: LSB of empty bitboard", ErrMalformedBitboard))
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// MSB returns the highest set square. It panics on an empty board.
func (b Bitboard) MSB() Square {
	if b == 0 {
		panic(fmt.Errorf("%w: MSB of empty bitboard", ErrMalformedBitboard))
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLSB removes and returns the least significant bit.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Shift operations for move generation

// North shifts the bitboard one rank up (toward rank 8).
func (b Bitboard) North() Bitboard {
	return b << 8
}

// South shifts the bitboard one rank down (toward rank 1).
func (b Bitboard) South() Bitboard {
	return b >> 8
}

// East shifts the bitboard one file right (toward file h).
func (b Bitboard) East() Bitboard {
	return (b << 1) & NotFileA
}

// West shifts the bitboard one file left (toward file a).
func (b Bitboard) West() Bitboard {
	return (b >> 1) & NotFileH
}

func (b Bitboard) NorthEast() Bitboard {
	return (b << 9) & NotFileA
}

func (b Bitboard) NorthWest() Bitboard {
	return (b << 7) & NotFileH
}

func (b Bitboard) SouthEast() Bitboard {
	return (b >> 7) & NotFileA
}

func (b Bitboard) SouthWest() Bitboard {
	return (b >> 9) & NotFileH
}

// String draws the board with rank 8 on top.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			if b.IsSet(newSquare(file, rank)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// Squares returns a slice of all squares that are set.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for b != 0 {
		squares = append(squares, b.PopLSB())
	}
	return squares
}
