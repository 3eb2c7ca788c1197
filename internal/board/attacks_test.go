package board

import (
	"math/rand"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func squares(sqs ...Square) Bitboard {
	var b Bitboard
	for _, sq := range sqs {
		b |= SquareBB(sq)
	}
	return b
}

func TestLeaperAttacks(t *testing.T) {
	tests := []struct {
		name  string
		f     func(Square) Bitboard
		sq    Square
		want  Bitboard
		count int
	}{
		{"knight d5", KnightAttacks, D5, 0x0014220022140000, 8},
		{"knight a1", KnightAttacks, A1, 0x0000000000020400, 2},
		{"knight h8", KnightAttacks, H8, 0x0020400000000000, 2},
		{"knight g1", KnightAttacks, G1, squares(E2, F3, H3), 3},
		{"king d5", KingAttacks, D5, 0x00001c141c000000, 8},
		{"king a1", KingAttacks, A1, 0x0000000000000302, 3},
		{"king h8", KingAttacks, H8, 0x40c0000000000000, 3},
		{"king e8", KingAttacks, E8, 0x2838000000000000, 5},
		{"king h1", KingAttacks, H1, 0x000000000000c040, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.f(tc.sq)
			if got != tc.want {
				t.Errorf("attacks = %#016x, want %#016x\n%s", uint64(got), uint64(tc.want), got)
			}
			if got.PopCount() != tc.count {
				t.Errorf("count = %d, want %d", got.PopCount(), tc.count)
			}
		})
	}
}

func TestSliderAttacks(t *testing.T) {
	tests := []struct {
		name     string
		f        func(Square, Bitboard) Bitboard
		sq       Square
		occupied Bitboard
		want     Bitboard
	}{
		{"rook c4 empty", RookAttacks, C4, 0, 0x04040404fb040404},
		{"bishop c4 empty", BishopAttacks, C4, 0, 0x4020110a000a1120},
		{"queen d4 empty", QueenAttacks, D4, 0, 0x88492a1cf71c2a49},
		{"rook c6 with h5", RookAttacks, C6, squares(C6, H5), 0x0404fb0404040404},
		{"rook h5 with c6", RookAttacks, H5, squares(C6, H5), 0x8080807f80808080},
		{"rook a1 blocked a4", RookAttacks, A1, squares(A4), 0x00000000010101fe},
		{"rook d4 blocked d6 f4", RookAttacks, D4, squares(D6, F4), 0x0000080837080808},
		{"bishop c1 blocked e3", BishopAttacks, C1, squares(E3), 0x0000000000110a00},
		{"bishop c4 boxed", BishopAttacks, C4, squares(B3, A6, F7, E6), 0x0000110a000a1020},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.f(tc.sq, tc.occupied); got != tc.want {
				t.Errorf("attacks = %#016x, want %#016x\n%s", uint64(got), uint64(tc.want), got)
			}
		})
	}
}

func TestExcludeFriends(t *testing.T) {
	attacks := RookAttacks(A1, squares(A4, C1))
	got := ExcludeFriends(attacks, squares(A4))
	if got.IsSet(A4) || !got.IsSet(C1) || got.IsSet(A5) || got.IsSet(D1) {
		t.Errorf("ExcludeFriends =\n%s", got)
	}
	if got != attacks&^squares(A4) {
		t.Errorf("ExcludeFriends = %#x, want %#x", uint64(got), uint64(attacks&^squares(A4)))
	}
}

func TestSlidersMatchOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for sq := A1; sq <= H8; sq++ {
		for i := 0; i < 32; i++ {
			occ := Bitboard(rng.Uint64() & rng.Uint64())
			if got, want := RookAttacks(sq, occ), Bitboard(dragontoothmg.CalculateRookMoveBitboard(uint8(sq), uint64(occ))); got != want {
				t.Fatalf("rook %s occ %#x = %#x, want %#x", sq, uint64(occ), uint64(got), uint64(want))
			}
			if got, want := BishopAttacks(sq, occ), Bitboard(dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), uint64(occ))); got != want {
				t.Fatalf("bishop %s occ %#x = %#x, want %#x", sq, uint64(occ), uint64(got), uint64(want))
			}
		}
	}
}

func TestPawnPushes(t *testing.T) {
	tests := []struct {
		name     string
		sq       Square
		c        Color
		occupied Bitboard
		want     Bitboard
	}{
		{"white home", E2, White, 0, squares(E3, E4)},
		{"white home blocked", E2, White, squares(E3), 0},
		{"white double blocked", E2, White, squares(E4), squares(E3)},
		{"white off home", E3, White, 0, squares(E4)},
		{"black home", E7, Black, 0, squares(E6, E5)},
		{"black double blocked", E7, Black, squares(E5), squares(E6)},
		{"black off home", D5, Black, 0, squares(D4)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PawnPushes(tc.sq, tc.c, tc.occupied); got != tc.want {
				t.Errorf("PawnPushes = %#x, want %#x", uint64(got), uint64(tc.want))
			}
		})
	}
}

func TestPawnCaptures(t *testing.T) {
	enemies := squares(C5, E5, B3, G5)
	tests := []struct {
		name string
		sq   Square
		c    Color
		want Bitboard
	}{
		{"white both sides", D4, White, squares(C5, E5)},
		{"white a-file", A4, White, 0},
		{"white h-file", H4, White, squares(G5)},
		{"black", C4, Black, squares(B3)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PawnCaptures(tc.sq, tc.c, enemies); got != tc.want {
				t.Errorf("PawnCaptures = %#x, want %#x", uint64(got), uint64(tc.want))
			}
		})
	}
	if got := PawnAttacks(A4, White); got != squares(B5) {
		t.Errorf("PawnAttacks(a4) = %#x, want b5", uint64(got))
	}
}

func TestIsSquareAttacked(t *testing.T) {
	pos := NewEmptyPosition()
	pos.SetPieces(King, White, squares(E1))
	pos.SetPieces(King, Black, squares(E8))
	pos.SetPieces(Rook, Black, squares(E5))
	pos.SetPieces(Pawn, White, squares(E3))

	if pos.IsSquareAttacked(E1, Black) {
		t.Error("e1 attacked through the e3 pawn")
	}
	if !pos.IsSquareAttacked(E3, Black) {
		t.Error("e3 not attacked by the e5 rook")
	}
	if !pos.IsSquareAttacked(D4, White) || !pos.IsSquareAttacked(F4, White) {
		t.Error("pawn attacks on d4/f4 missing")
	}
	if inCheck, err := pos.InCheck(); err != nil || inCheck {
		t.Errorf("InCheck = %v, %v, want false", inCheck, err)
	}
}
