package board

import "fmt"

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// ColorFromIndex converts 0 or 1 to a Color.
func ColorFromIndex(i int) (Color, error) {
	if i < 0 || i >= int(NoColor) {
		return NoColor, fmt.Errorf("%w: color %d", ErrInvalidIndex, i)
	}
	return Color(i), nil
}

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceType represents the type of a chess piece.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType PieceType = 6
)

// PieceTypeFromIndex converts 0-5 to a PieceType.
func PieceTypeFromIndex(i int) (PieceType, error) {
	if i < 0 || i >= int(NoPieceType) {
		return NoPieceType, fmt.Errorf("%w: piece type %d", ErrInvalidIndex, i)
	}
	return PieceType(i), nil
}

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Piece combines PieceType and Color into a single value, pieceType + color*6.
// This is also the piece's slot in the canonical 12-board order.
type Piece uint8

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	NoPiece
)

// NewPiece creates a Piece from PieceType and Color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return NoPiece
	}
	return Piece(pt) + Piece(c)*6
}

// Type returns the PieceType of the piece.
func (p Piece) Type() PieceType {
	if p >= NoPiece {
		return NoPieceType
	}
	return PieceType(p % 6)
}

// Color returns the Color of the piece.
func (p Piece) Color() Color {
	if p >= NoPiece {
		return NoColor
	}
	return Color(p / 6)
}

// String returns the piece letter, uppercase for white and lowercase for black.
func (p Piece) String() string {
	if p >= NoPiece {
		return " "
	}
	return string("PNBRQKpnbrqk"[p])
}

// PieceFromChar converts a FEN letter to a Piece.
func PieceFromChar(c byte) (Piece, error) {
	for p := WhitePawn; p < NoPiece; p++ {
		if "PNBRQKpnbrqk"[p] == c {
			return p, nil
		}
	}
	return NoPiece, fmt.Errorf("%w: piece letter %q", ErrInvalidIndex, c)
}
