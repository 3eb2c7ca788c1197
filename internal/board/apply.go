package board

import (
	"fmt"
	"log"
)

// UndoInfo stores information needed to undo a move.
type UndoInfo struct {
	CapturedPiece  Piece
	CastlingRights CastlingRights
	EnPassant      Square
	Turn           int
}

// DoMove applies m to the position and returns undo information. It checks
// only that m fits the board, not that it is legal. On error the position is
// unchanged.
func (p *Position) DoMove(m Move) (UndoInfo, error) {
	us := p.SideToMove
	them := us.Other()
	from, to, pt := m.From(), m.To(), m.Piece()

	undo := UndoInfo{
		CapturedPiece:  NoPiece,
		CastlingRights: p.CastlingRights,
		EnPassant:      p.EnPassant,
		Turn:           p.Turn,
	}

	if pt >= NoPieceType || !p.Pieces[us][pt].IsSet(from) {
		return undo, fmt.Errorf("%w: %v has no %s on %s", ErrIllegalApply, us, pt, from)
	}

	if m.IsCapture() {
		captured := NoPieceType
		for t := Pawn; t <= King; t++ {
			if p.Pieces[them][t].IsSet(to) {
				captured = t
				break
			}
		}
		if captured == NoPieceType {
			return undo, fmt.Errorf("%w: capture %s finds no %v piece", ErrIllegalApply, m, them)
		}
		if captured == King && DebugMoveValidation {
			log.Printf("DOMOVE: %v captures the %v king with %s", us, them, m)
		}
		p.TogglePiece(captured, them, to)
		undo.CapturedPiece = NewPiece(captured, them)
	} else if !p.IsEmpty(to) {
		return undo, fmt.Errorf("%w: quiet move %s onto occupied square", ErrIllegalApply, m)
	}

	p.TogglePiece(pt, us, from)
	p.TogglePiece(pt, us, to)

	if us == Black {
		p.Turn++
	}
	p.SideToMove = them
	return undo, nil
}

// UndoMove reverses a DoMove of m.
func (p *Position) UndoMove(m Move, undo UndoInfo) {
	p.SideToMove = p.SideToMove.Other()
	us := p.SideToMove
	from, to, pt := m.From(), m.To(), m.Piece()

	p.TogglePiece(pt, us, to)
	p.TogglePiece(pt, us, from)
	if undo.CapturedPiece != NoPiece {
		p.TogglePiece(undo.CapturedPiece.Type(), undo.CapturedPiece.Color(), to)
	}

	p.CastlingRights = undo.CastlingRights
	p.EnPassant = undo.EnPassant
	p.Turn = undo.Turn
}
