package board

import (
	"fmt"
	"log"
)

// DebugMoveValidation logs positions that reach the generator or applier in
// a broken state.
var DebugMoveValidation = false

// GenerateLegalMoves generates the moves that do not leave the mover's king
// attacked. On error the list is nil.
func (p *Position) GenerateLegalMoves() (*MoveList, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if _, err := p.kingSquare(p.SideToMove); err != nil {
		return nil, err
	}

	pseudo := p.GeneratePseudoLegalMoves()
	result := NewMoveList()
	for _, m := range pseudo.Slice() {
		legal, err := p.IsMoveLegal(m)
		if err != nil {
			return nil, err
		}
		if legal {
			result.Add(m)
		}
	}
	return result, nil
}

// GeneratePseudoLegalMoves generates all pseudo-legal moves (may leave king in check).
func (p *Position) GeneratePseudoLegalMoves() *MoveList {
	if DebugMoveValidation {
		if err := p.Validate(); err != nil {
			log.Printf("MOVEGEN: %v to move on invalid position: %v", p.SideToMove, err)
		}
	}

	ml := NewMoveList()
	for pt := Pawn; pt <= King; pt++ {
		p.generate(ml, pt)
	}
	return ml
}

// GenerateMoves generates the pseudo-legal moves of one piece type.
func (p *Position) GenerateMoves(pt PieceType) (*MoveList, error) {
	if pt >= NoPieceType {
		return nil, fmt.Errorf("%w: piece type %d", ErrInvalidIndex, pt)
	}
	ml := NewMoveList()
	p.generate(ml, pt)
	return ml, nil
}

func (p *Position) generate(ml *MoveList, pt PieceType) {
	switch pt {
	case Pawn:
		p.generatePawnMoves(ml)
	case Knight:
		p.generateLeaperMoves(ml, Knight, KnightAttacks)
	case Bishop:
		p.generateSliderMoves(ml, Bishop, BishopAttacks)
	case Rook:
		p.generateSliderMoves(ml, Rook, RookAttacks)
	case Queen:
		p.generateSliderMoves(ml, Queen, QueenAttacks)
	case King:
		p.generateLeaperMoves(ml, King, KingAttacks)
	}
}

func (p *Position) GeneratePawnMoves() *MoveList {
	ml := NewMoveList()
	p.generatePawnMoves(ml)
	return ml
}

func (p *Position) GenerateKnightMoves() *MoveList {
	ml := NewMoveList()
	p.generateLeaperMoves(ml, Knight, KnightAttacks)
	return ml
}

func (p *Position) GenerateBishopMoves() *MoveList {
	ml := NewMoveList()
	p.generateSliderMoves(ml, Bishop, BishopAttacks)
	return ml
}

func (p *Position) GenerateRookMoves() *MoveList {
	ml := NewMoveList()
	p.generateSliderMoves(ml, Rook, RookAttacks)
	return ml
}

func (p *Position) GenerateQueenMoves() *MoveList {
	ml := NewMoveList()
	p.generateSliderMoves(ml, Queen, QueenAttacks)
	return ml
}

func (p *Position) GenerateKingMoves() *MoveList {
	ml := NewMoveList()
	p.generateLeaperMoves(ml, King, KingAttacks)
	return ml
}

// GenerateCastlingMoves is not available: castling rights are tracked but
// castling is never generated.
func (p *Position) GenerateCastlingMoves() (*MoveList, error) {
	return nil, fmt.Errorf("%w: castling", ErrNotImplemented)
}

// GenerateEnPassantMoves is not available: no en passant square is ever set.
func (p *Position) GenerateEnPassantMoves() (*MoveList, error) {
	return nil, fmt.Errorf("%w: en passant", ErrNotImplemented)
}

// addTargets adds one move per destination, flagging those on enemy squares.
func (p *Position) addTargets(ml *MoveList, pt PieceType, from Square, targets Bitboard) {
	enemies := p.Enemies()
	for targets != 0 {
		to := targets.PopLSB()
		ml.Add(NewMove(from, to, pt, enemies.IsSet(to)))
	}
}

func (p *Position) generatePawnMoves(ml *MoveList) {
	us := p.SideToMove
	occupied := p.Blockers()
	enemies := p.Enemies()

	pawns := p.Pieces[us][Pawn]
	for pawns != 0 {
		from := pawns.PopLSB()
		p.addTargets(ml, Pawn, from, PawnPushes(from, us, occupied))
		p.addTargets(ml, Pawn, from, PawnCaptures(from, us, enemies))
	}
}

func (p *Position) generateLeaperMoves(ml *MoveList, pt PieceType, attacks func(Square) Bitboard) {
	friends := p.Friends()
	pieces := p.Piece(pt)
	for pieces != 0 {
		from := pieces.PopLSB()
		p.addTargets(ml, pt, from, ExcludeFriends(attacks(from), friends))
	}
}

func (p *Position) generateSliderMoves(ml *MoveList, pt PieceType, attacks func(Square, Bitboard) Bitboard) {
	friends := p.Friends()
	occupied := p.Blockers()
	pieces := p.Piece(pt)
	for pieces != 0 {
		from := pieces.PopLSB()
		p.addTargets(ml, pt, from, ExcludeFriends(attacks(from, occupied), friends))
	}
}
