// Package image renders checkers boards as SVG images.
package image

import (
	"fmt"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/corentings/checkers"
)

const (
	sqSize    = 45
	boardSize = 8 * sqSize
)

// SVG writes the board SVG representation into the writer.
// An error is returned if there is there is an error writing data.
// SVG also takes options which can customize the image output.
func SVG(w io.Writer, b *checkers.Board, opts ...func(*encoder)) error {
	e := new(w, opts)
	return e.EncodeSVG(b)
}

// SquareColors is designed to be used as an optional argument
// to the SVG function.  It changes the default light and
// dark square colors to the colors given.
func SquareColors(light, dark string) func(*encoder) {
	return func(e *encoder) {
		e.light = light
		e.dark = dark
	}
}

// MarkSquares is designed to be used as an optional argument
// to the SVG function.  It marks the given squares with the
// color.  A possible usage includes marking the squares of
// the previous move.
func MarkSquares(color string, sqs ...checkers.Square) func(*encoder) {
	return func(e *encoder) {
		for _, sq := range sqs {
			e.marks[sq] = color
		}
	}
}

// Perspective is designed to be used as an optional argument
// to the SVG function.  It draws the board from the perspective
// of the given color.  White is the default.
func Perspective(c checkers.Color) func(*encoder) {
	return func(e *encoder) {
		e.perspective = c
	}
}

// ShowNumbers is designed to be used as an optional argument to
// the SVG function.  It writes the standard square numbers on the
// playable squares.
func ShowNumbers() func(*encoder) {
	return func(e *encoder) {
		e.numbers = true
	}
}

// A encoder encodes checkers boards into images.
type encoder struct {
	w           io.Writer
	light       string
	dark        string
	perspective checkers.Color
	marks       map[checkers.Square]string
	numbers     bool
}

// new returns an encoder that writes to the given writer.
// new also takes options which can customize the image
// output.
func new(w io.Writer, options []func(*encoder)) *encoder {
	e := &encoder{
		w:           w,
		light:       "#f0d9b5",
		dark:        "#7a5230",
		perspective: checkers.White,
		marks:       map[checkers.Square]string{},
	}
	for _, op := range options {
		op(e)
	}
	return e
}

var pieceStyles = map[checkers.Color]struct{ fill, stroke string }{
	checkers.White: {fill: "#fafafa", stroke: "#333333"},
	checkers.Black: {fill: "#202020", stroke: "#dddddd"},
}

// EncodeSVG writes the board SVG representation into
// the encoder's writer.  An error is returned if there
// is there is an error writing data.
func (e *encoder) EncodeSVG(b *checkers.Board) error {
	ew := &errWriter{w: e.w}
	canvas := svg.New(ew)
	canvas.Start(boardSize, boardSize)
	canvas.Rect(0, 0, boardSize, boardSize)

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := checkers.NewSquare(row, col)
			x, y := e.origin(sq)

			color := e.light
			if sq.Playable() {
				color = e.dark
			}
			if mark, ok := e.marks[sq]; ok {
				color = mark
			}
			canvas.Rect(x, y, sqSize, sqSize, "fill: "+color)

			if e.numbers && sq.Playable() {
				canvas.Text(x+3, y+11, strconv.Itoa(sq.Number()), "font-size:9px;fill:#eeeeee;font-family:sans-serif")
			}

			p := b.Piece(sq)
			if p == checkers.NoPiece {
				continue
			}
			style := pieceStyles[p.Color()]
			cx, cy := x+sqSize/2, y+sqSize/2
			canvas.Circle(cx, cy, sqSize*2/5, fmt.Sprintf("fill:%s;stroke:%s;stroke-width:2", style.fill, style.stroke))
			if p.Type() == checkers.King {
				canvas.Circle(cx, cy, sqSize/5, fmt.Sprintf("fill:none;stroke:%s;stroke-width:3", "#d4af37"))
			}
		}
	}
	canvas.End()
	return ew.err
}

// origin returns the top left corner of the square's cell.
func (e *encoder) origin(sq checkers.Square) (int, int) {
	row, col := sq.Row(), sq.Col()
	if e.perspective == checkers.Black {
		row, col = 7-row, 7-col
	}
	return col * sqSize, row * sqSize
}

// errWriter keeps the first write error since svgo ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
