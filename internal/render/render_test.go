package render

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/hailam/bitmove/internal/board"
)

func TestText(t *testing.T) {
	got := Text(board.NewPosition(), 0)
	want := "8 r n b q k b n r\n" +
		"7 p p p p p p p p\n" +
		"6 . . . . . . . .\n" +
		"5 . . . . . . . .\n" +
		"4 . . . . . . . .\n" +
		"3 . . . . . . . .\n" +
		"2 P P P P P P P P\n" +
		"1 R N B Q K B N R\n" +
		"  a b c d e f g h\n" +
		"White to move, turn 0\n"
	if got != want {
		t.Errorf("Text() =\n%s\nwant\n%s", got, want)
	}
}

func TestTextHighlight(t *testing.T) {
	pos := board.NewPosition()
	got := Text(pos, board.KnightAttacks(board.G1))
	if !strings.Contains(got, "3 . . . . . * . *\n") {
		t.Errorf("knight targets not marked:\n%s", got)
	}
	if !strings.Contains(got, "2 P P P P P P P P\n") {
		t.Errorf("occupied squares should keep their piece:\n%s", got)
	}
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := SVG(&buf, board.NewPosition(), Options{}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	tests := []struct {
		substr string
		count  int
	}{
		{"<rect", 64},
		{"<circle", 32},
		{"<text", 32},
		{`viewBox="0 0 384 384"`, 1},
		{"</svg>", 1},
	}
	for _, tc := range tests {
		if got := strings.Count(out, tc.substr); got != tc.count {
			t.Errorf("%q appears %d times, want %d", tc.substr, got, tc.count)
		}
	}
}

func near(a, b color.Color) bool {
	r1, g1, b1, _ := a.RGBA()
	r2, g2, b2, _ := b.RGBA()
	diff := func(x, y uint32) bool {
		d := int(x>>8) - int(y>>8)
		return d >= -3 && d <= 3
	}
	return diff(r1, r2) && diff(g1, g2) && diff(b1, b2)
}

func TestPNG(t *testing.T) {
	pos := board.NewPosition()
	size := 40
	var buf bytes.Buffer
	if err := PNG(&buf, pos, Options{SquareSize: size, Highlight: board.SquareBB(board.E4)}); err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8*size || b.Dy() != 8*size {
		t.Fatalf("bounds = %v", b)
	}

	tests := []struct {
		name string
		x, y int
		want color.Color
	}{
		{"a1 corner", 3, 7*size + 3, DarkSquare},
		{"h1 corner", 7*size + 3, 7*size + 3, LightSquare},
		{"e3 center", 4*size + size/2, 5*size + size/2, DarkSquare},
		{"e4 highlighted", 4*size + size/2, 4*size + size/2, HighlightSquare},
		{"e1 white disc", 4*size + size/2, 7*size + size/2 - size*3/10, WhitePiece},
		{"e8 black disc", 4*size + size/2, size/2 - size*3/10, BlackPiece},
	}
	for _, tc := range tests {
		if got := img.At(tc.x, tc.y); !near(got, tc.want) {
			t.Errorf("%s: pixel (%d,%d) = %v, want %v", tc.name, tc.x, tc.y, got, tc.want)
		}
	}
}
