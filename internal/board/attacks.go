package board

// Pre-computed attack tables for non-sliding pieces
var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttacks   [2][64]Bitboard // [Color][Square]
)

func init() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)
		knightAttacks[sq] = knightFill(bb)
		kingAttacks[sq] = kingFill(bb)
		pawnAttacks[White][sq] = bb.NorthEast() | bb.NorthWest()
		pawnAttacks[Black][sq] = bb.SouthEast() | bb.SouthWest()
	}
}

// kingFill steps east and west, then moves that row north and south.
func kingFill(bb Bitboard) Bitboard {
	row := bb | bb.East() | bb.West()
	return (row | row.North() | row.South()) &^ bb
}

// knightFill combines one-file steps with two-rank shifts and two-file
// steps with one-rank shifts.
func knightFill(bb Bitboard) Bitboard {
	e1, w1 := bb.East(), bb.West()
	e2, w2 := e1.East(), w1.West()
	one := e1 | w1
	two := e2 | w2
	return one<<16 | one>>16 | two<<8 | two>>8
}

// KnightAttacks returns the knight attack bitboard for a square.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the king attack bitboard for a square.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// PawnAttacks returns the diagonal-forward squares of a pawn of color c,
// occupied or not.
func PawnAttacks(sq Square, c Color) Bitboard {
	return pawnAttacks[c][sq]
}

// PawnCaptures returns the squares a pawn of color c on sq can capture on.
func PawnCaptures(sq Square, c Color, enemies Bitboard) Bitboard {
	return pawnAttacks[c][sq] & enemies
}

// PawnPushes returns the single push and, from the home rank, the double
// push. Both squares must be empty.
func PawnPushes(sq Square, c Color, occupied Bitboard) Bitboard {
	bb := SquareBB(sq)
	if c == White {
		single := bb.North() &^ occupied
		if bb&Rank2 == 0 {
			return single
		}
		return single | single.North()&^occupied
	}
	single := bb.South() &^ occupied
	if bb&Rank7 == 0 {
		return single
	}
	return single | single.South()&^occupied
}

var (
	rookDirections   = [4]func(Bitboard) Bitboard{Bitboard.North, Bitboard.South, Bitboard.East, Bitboard.West}
	bishopDirections = [4]func(Bitboard) Bitboard{Bitboard.NorthEast, Bitboard.NorthWest, Bitboard.SouthEast, Bitboard.SouthWest}
)

// ray walks from sq in one direction. The first occupied square is included
// and ends the ray.
func ray(sq Square, occupied Bitboard, step func(Bitboard) Bitboard) Bitboard {
	var attacks Bitboard
	bb := SquareBB(sq)
	for {
		bb = step(bb)
		if bb == 0 {
			return attacks
		}
		attacks |= bb
		if bb&occupied != 0 {
			return attacks
		}
	}
}

// RookAttacks returns the rook attack bitboard for a square with given occupancy.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	var attacks Bitboard
	for _, dir := range rookDirections {
		attacks |= ray(sq, occupied, dir)
	}
	return attacks
}

// BishopAttacks returns the bishop attack bitboard for a square with given occupancy.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	var attacks Bitboard
	for _, dir := range bishopDirections {
		attacks |= ray(sq, occupied, dir)
	}
	return attacks
}

// QueenAttacks returns the queen attack bitboard for a square with given occupancy.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return BishopAttacks(sq, occupied) | RookAttacks(sq, occupied)
}

// ExcludeFriends drops the squares held by friends from attacks.
func ExcludeFriends(attacks, friends Bitboard) Bitboard {
	return attacks ^ (attacks & friends)
}

// AttackersByColor returns a bitboard of pieces of the given color attacking a square.
func (p *Position) AttackersByColor(sq Square, c Color, occupied Bitboard) Bitboard {
	enemy := c.Other()
	return (pawnAttacks[enemy][sq] & p.Pieces[c][Pawn]) |
		(knightAttacks[sq] & p.Pieces[c][Knight]) |
		(kingAttacks[sq] & p.Pieces[c][King]) |
		(BishopAttacks(sq, occupied) & (p.Pieces[c][Bishop] | p.Pieces[c][Queen])) |
		(RookAttacks(sq, occupied) & (p.Pieces[c][Rook] | p.Pieces[c][Queen]))
}

// IsSquareAttacked returns true if the square is attacked by the given color.
func (p *Position) IsSquareAttacked(sq Square, byColor Color) bool {
	return p.AttackersByColor(sq, byColor, p.Blockers()) != 0
}

// InCheck reports whether the side to move's king is attacked.
func (p *Position) InCheck() (bool, error) {
	ksq, err := p.kingSquare(p.SideToMove)
	if err != nil {
		return false, err
	}
	return p.IsSquareAttacked(ksq, p.SideToMove.Other()), nil
}
