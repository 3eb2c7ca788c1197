package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN of NewPosition.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN is not available yet; positions come from NewPosition or are
// assembled with SetPieces.
func ParseFEN(fen string) (*Position, error) {
	return nil, fmt.Errorf("%w: FEN parsing (%q)", ErrNotImplemented, fen)
}

// ToFEN returns the FEN representation of the position. The halfmove clock
// is not tracked and is written as 0.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece, ok := p.PieceAt(newSquare(file, rank))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.CastlingRights.String())
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())

	sb.WriteString(" 0 ")
	sb.WriteString(strconv.Itoa(p.Turn + 1))

	return sb.String()
}
