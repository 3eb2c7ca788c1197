package board

import (
	"fmt"
	"strings"
)

// CastlingRights represents the available castling options. The flags are
// carried through copies and undo but nothing generates castling moves yet.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// Position is the mutable game state: twelve piece bitboards plus side to
// move and the full-move turn counter.
type Position struct {
	// Piece bitboards: [Color][PieceType]
	Pieces [2][6]Bitboard

	// All pieces of each color, kept in sync with Pieces
	Occupied [2]Bitboard

	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Square // always NoSquare until en passant is generated
	Turn           int    // full moves played, bumped after Black moves
}

// Standard starting layout, indexed [Color][PieceType].
var startPieces = [2][6]Bitboard{
	{0x000000000000FF00, 0x0000000000000042, 0x0000000000000024, 0x0000000000000081, 0x0000000000000008, 0x0000000000000010},
	{0x00FF000000000000, 0x4200000000000000, 0x2400000000000000, 0x8100000000000000, 0x0800000000000000, 0x1000000000000000},
}

// NewPosition creates the starting position: White to move, all castling
// rights, turn 0.
func NewPosition() *Position {
	p := &Position{
		Pieces:         startPieces,
		SideToMove:     White,
		CastlingRights: AllCastling,
		EnPassant:      NoSquare,
	}
	p.updateOccupied()
	return p
}

// NewEmptyPosition returns a board with no pieces, White to move.
func NewEmptyPosition() *Position {
	return &Position{EnPassant: NoSquare}
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	newPos := *p
	return &newPos
}

// Piece returns the side to move's bitboard for pt.
func (p *Position) Piece(pt PieceType) Bitboard {
	return p.Pieces[p.SideToMove][pt]
}

// PieceOf returns the bitboard for pt of color c.
func (p *Position) PieceOf(pt PieceType, c Color) Bitboard {
	return p.Pieces[c][pt]
}

// Occupancy returns all squares held by c.
func (p *Position) Occupancy(c Color) Bitboard {
	return p.Occupied[c]
}

// Friends returns the pieces of the side to move.
func (p *Position) Friends() Bitboard {
	return p.Occupied[p.SideToMove]
}

// Enemies returns the pieces of the side not to move.
func (p *Position) Enemies() Bitboard {
	return p.Occupied[p.SideToMove.Other()]
}

// Blockers returns every occupied square.
func (p *Position) Blockers() Bitboard {
	return p.Occupied[White] | p.Occupied[Black]
}

// Bitboards returns the twelve boards in Piece order:
// WP WN WB WR WQ WK BP BN BB BR BQ BK.
func (p *Position) Bitboards() [12]Bitboard {
	var out [12]Bitboard
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			out[NewPiece(pt, c)] = p.Pieces[c][pt]
		}
	}
	return out
}

// SetPieces replaces the board for pt of color c.
func (p *Position) SetPieces(pt PieceType, c Color, bb Bitboard) {
	p.Pieces[c][pt] = bb
	p.updateOccupied()
}

// TogglePiece flips sq on the board for pt of color c.
func (p *Position) TogglePiece(pt PieceType, c Color, sq Square) {
	p.Pieces[c][pt] = p.Pieces[c][pt].Toggle(sq)
	p.Occupied[c] = p.Occupied[c].Toggle(sq)
}

// PieceAt returns the piece on sq, if any.
func (p *Position) PieceAt(sq Square) (Piece, bool) {
	bb := SquareBB(sq)
	if p.Blockers()&bb == 0 {
		return NoPiece, false
	}

	c := White
	if p.Occupied[Black]&bb != 0 {
		c = Black
	}
	for pt := Pawn; pt <= King; pt++ {
		if p.Pieces[c][pt]&bb != 0 {
			return NewPiece(pt, c), true
		}
	}
	return NoPiece, false
}

// IsEmpty returns true if the square is empty.
func (p *Position) IsEmpty(sq Square) bool {
	return !p.Blockers().IsSet(sq)
}

// updateOccupied recalculates occupancy bitboards from piece bitboards.
func (p *Position) updateOccupied() {
	p.Occupied[White] = Empty
	p.Occupied[Black] = Empty

	for pt := Pawn; pt <= King; pt++ {
		p.Occupied[White] |= p.Pieces[White][pt]
		p.Occupied[Black] |= p.Pieces[Black][pt]
	}
}

// kingSquare returns the square of c's king.
func (p *Position) kingSquare(c Color) (Square, error) {
	kings := p.Pieces[c][King]
	if kings.PopCount() != 1 {
		return NoSquare, fmt.Errorf("%w: %s has %d kings", ErrMalformedBitboard, c, kings.PopCount())
	}
	return kings.LSB(), nil
}

// Validate checks that no square sits on two boards, that the occupancy
// cache matches, and that neither side has more than one king.
func (p *Position) Validate() error {
	var seen Bitboard
	for c := White; c <= Black; c++ {
		var own Bitboard
		for pt := Pawn; pt <= King; pt++ {
			bb := p.Pieces[c][pt]
			if overlap := seen & bb; overlap != 0 {
				return fmt.Errorf("%w: %s %s overlaps on %s", ErrMalformedBitboard, c, pt, overlap.LSB())
			}
			seen |= bb
			own |= bb
		}
		if own != p.Occupied[c] {
			return fmt.Errorf("%w: %s occupancy out of sync", ErrMalformedBitboard, c)
		}
		if p.Pieces[c][King].PopCount() > 1 {
			return fmt.Errorf("%w: %s has %d kings", ErrMalformedBitboard, c, p.Pieces[c][King].PopCount())
		}
	}
	if p.SideToMove >= NoColor {
		return fmt.Errorf("%w: side to move %d", ErrInvalidIndex, p.SideToMove)
	}
	return nil
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			if piece, ok := p.PieceAt(newSquare(file, rank)); ok {
				sb.WriteString(piece.String() + " ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %s\n", p.SideToMove)
	fmt.Fprintf(&sb, "Castling: %s\n", p.CastlingRights)
	fmt.Fprintf(&sb, "Turn: %d\n", p.Turn)
	fmt.Fprintf(&sb, "Hash: %016x\n", p.Hash())
	return sb.String()
}
