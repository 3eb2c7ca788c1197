package board

import "fmt"

// Move encodes a chess move in 16 bits:
// bits 0-5:   from square (0-63)
// bits 6-11:  to square (0-63)
// bits 12-14: moving piece type (Pawn..King)
// bit 15:     capture flag
type Move uint16

const (
	moveSquareMask      = 0x3F
	movePieceShift      = 12
	movePieceMask       = 0x7
	FlagCapture    Move = 1 << 15
)

// NoMove represents an invalid or null move.
const NoMove Move = 0

// NewMove creates a move of piece type pt from one square to another.
func NewMove(from, to Square, pt PieceType, capture bool) Move {
	m := Move(from) | Move(to)<<6 | Move(pt)<<movePieceShift
	if capture {
		m |= FlagCapture
	}
	return m
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & moveSquareMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & moveSquareMask)
}

// Piece returns the type of the moving piece.
func (m Move) Piece() PieceType {
	return PieceType((m >> movePieceShift) & movePieceMask)
}

// IsCapture reports whether the destination held an enemy piece when the
// move was generated.
func (m Move) IsCapture() bool {
	return m&FlagCapture != 0
}

// String returns the UCI format of the move (e.g., "e2e4").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	return m.From().String() + m.To().String()
}

// ParseMove resolves a UCI string like "g1f3" against the legal moves of pos.
func ParseMove(s string, pos *Position) (Move, error) {
	if len(s) != 4 {
		return NoMove, fmt.Errorf("invalid move string: %s", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	moves, err := pos.GenerateLegalMoves()
	if err != nil {
		return NoMove, err
	}
	for _, m := range moves.Slice() {
		if m.From() == from && m.To() == to {
			return m, nil
		}
	}
	return NoMove, fmt.Errorf("%w: %s is not a legal move", ErrIllegalApply, s)
}

// MoveList collects generated moves. The first 256 moves live in a fixed
// buffer; positions with more spill over to the heap.
type MoveList struct {
	buf   [256]Move
	moves []Move
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	ml := &MoveList{}
	ml.moves = ml.buf[:0]
	return ml
}

// Add adds a move to the list.
func (ml *MoveList) Add(m Move) {
	if ml.moves == nil {
		ml.moves = ml.buf[:0]
	}
	ml.moves = append(ml.moves, m)
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return len(ml.moves)
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Contains returns true if the list contains the move.
func (ml *MoveList) Contains(m Move) bool {
	for _, x := range ml.moves {
		if x == m {
			return true
		}
	}
	return false
}

// Slice returns the moves as a slice.
func (ml *MoveList) Slice() []Move {
	return ml.moves
}
