// Package render draws positions for diagnostics: a text grid, an SVG
// diagram and a PNG rasterized from that diagram.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/hailam/bitmove/internal/board"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const defaultSquareSize = 48

// Board colors
var (
	LightSquare     = color.RGBA{0xF0, 0xD9, 0xB5, 0xFF}
	DarkSquare      = color.RGBA{0xB5, 0x88, 0x63, 0xFF}
	HighlightSquare = color.RGBA{0x9B, 0xC7, 0x00, 0xFF}
	WhitePiece      = color.RGBA{0xFA, 0xFA, 0xFA, 0xFF}
	BlackPiece      = color.RGBA{0x22, 0x22, 0x22, 0xFF}
)

// Options controls SVG and PNG output.
type Options struct {
	SquareSize int            // pixels per square, defaults to 48
	Highlight  board.Bitboard // squares drawn in the highlight color
}

func (o Options) squareSize() int {
	if o.SquareSize <= 0 {
		return defaultSquareSize
	}
	return o.SquareSize
}

// Text returns an 8x8 grid, rank 8 first, uppercase for White.
// Highlighted empty squares are drawn as '*'.
func Text(pos *board.Position, highlight board.Bitboard) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			sq, _ := board.SquareAt(file, rank)
			switch piece, ok := pos.PieceAt(sq); {
			case ok:
				sb.WriteString(piece.String())
			case highlight.IsSet(sq):
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	fmt.Fprintf(&sb, "%s to move, turn %d\n", pos.SideToMove, pos.Turn)
	return sb.String()
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func squareColor(sq board.Square, highlight board.Bitboard) color.RGBA {
	if highlight.IsSet(sq) {
		return HighlightSquare
	}
	if (sq.File()+sq.Rank())%2 == 0 {
		return DarkSquare
	}
	return LightSquare
}

// origin returns the top-left pixel of sq with rank 8 at the top.
func origin(sq board.Square, size int) (int, int) {
	return sq.File() * size, (7 - sq.Rank()) * size
}

// SVG writes the diagram: one rect per square, one disc per piece with its
// letter on top.
func SVG(w io.Writer, pos *board.Position, opts Options) error {
	return writeSVG(w, pos, opts, true)
}

func writeSVG(w io.Writer, pos *board.Position, opts Options, labels bool) error {
	size := opts.squareSize()
	side := 8 * size

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(side, side, 0, 0, side, side)

	for sq := board.A1; sq <= board.H8; sq++ {
		x, y := origin(sq, size)
		canvas.Rect(x, y, size, size, "fill:"+hex(squareColor(sq, opts.Highlight)))
	}

	for sq := board.A1; sq <= board.H8; sq++ {
		piece, ok := pos.PieceAt(sq)
		if !ok {
			continue
		}
		x, y := origin(sq, size)
		fill, ink := WhitePiece, BlackPiece
		if piece.Color() == board.Black {
			fill, ink = BlackPiece, WhitePiece
		}
		canvas.Circle(x+size/2, y+size/2, size*2/5,
			fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%d", hex(fill), hex(BlackPiece), max(1, size/24)))
		if labels {
			canvas.Text(x+size/2, y+size/2+size/6, strings.ToUpper(piece.String()),
				fmt.Sprintf("text-anchor:middle;font-family:sans-serif;font-size:%dpx;fill:%s", size/2, hex(ink)))
		}
	}

	canvas.End()
	_, err := w.Write(buf.Bytes())
	return err
}

// Image rasterizes the diagram and stamps the piece letters with a bitmap font.
func Image(pos *board.Position, opts Options) (*image.RGBA, error) {
	var buf bytes.Buffer
	if err := writeSVG(&buf, pos, opts, false); err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(&buf)
	if err != nil {
		return nil, fmt.Errorf("parse board svg: %w", err)
	}

	side := 8 * opts.squareSize()
	icon.SetTarget(0, 0, float64(side), float64(side))

	rgba := image.NewRGBA(image.Rect(0, 0, side, side))
	scanner := rasterx.NewScannerGV(side, side, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(side, side, scanner)
	icon.Draw(raster, 1.0)

	drawLabels(rgba, pos, opts.squareSize())
	return rgba, nil
}

func drawLabels(dst *image.RGBA, pos *board.Position, size int) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: dst, Face: face}
	metrics := face.Metrics()
	textHeight := (metrics.Ascent + metrics.Descent).Ceil()

	for sq := board.A1; sq <= board.H8; sq++ {
		piece, ok := pos.PieceAt(sq)
		if !ok {
			continue
		}
		ink := BlackPiece
		if piece.Color() == board.Black {
			ink = WhitePiece
		}
		label := strings.ToUpper(piece.String())
		x, y := origin(sq, size)
		width := d.MeasureString(label).Ceil()

		d.Src = image.NewUniform(ink)
		d.Dot = fixed.P(x+(size-width)/2, y+(size-textHeight)/2+metrics.Ascent.Ceil())
		d.DrawString(label)
	}
}

// PNG writes the rasterized diagram as a PNG image.
func PNG(w io.Writer, pos *board.Position, opts Options) error {
	img, err := Image(pos, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
