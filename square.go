package checkers

import "fmt"

const (
	numRows    = 8
	numCols    = 8
	numSquares = numRows * numCols

	// numPlayable is the count of dark squares pieces may occupy.
	numPlayable = numSquares / 2
)

// A Square is one of the 64 squares on the board, indexed
// row by row from the top left corner (row 0, column 0).
// Row 0 is Black's back row and White's promotion row.
type Square int8

// NoSquare is returned for coordinates outside the board.
const NoSquare Square = -1

// NewSquare creates a new Square from a row and column.  Coordinates
// outside the board return NoSquare.
func NewSquare(row, col int) Square {
	if row < 0 || row >= numRows || col < 0 || col >= numCols {
		return NoSquare
	}
	return Square(row*numCols + col)
}

// Row returns the square's row, 0 through 7.
func (sq Square) Row() int {
	return int(sq) / numCols
}

// Col returns the square's column, 0 through 7.
func (sq Square) Col() int {
	return int(sq) % numCols
}

// Valid reports whether the square is on the board.
func (sq Square) Valid() bool {
	return sq >= 0 && sq < numSquares
}

// Playable reports whether the square is one of the 32 dark squares.
// Light squares are permanently empty.
func (sq Square) Playable() bool {
	return sq.Valid() && (sq.Row()+sq.Col())%2 == 1
}

// Number returns the square's standard draughts number, 1 through 32.
// Square 1 is row 0, column 1 and numbers increase left to right, top
// to bottom.  Unplayable squares return 0.
func (sq Square) Number() int {
	if !sq.Playable() {
		return 0
	}
	return sq.Row()*4 + sq.Col()/2 + 1
}

// SquareFromNumber returns the square with the given standard
// draughts number or NoSquare if n is not in 1..32.
func SquareFromNumber(n int) Square {
	if n < 1 || n > numPlayable {
		return NoSquare
	}
	i := n - 1
	row := i / 4
	col := 2 * (i % 4)
	if row%2 == 0 {
		col++
	}
	return NewSquare(row, col)
}

// String returns the algebraic name of the square ("a1" is the bottom
// left corner, row 7 column 0).
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+sq.Col(), numRows-sq.Row())
}

// Step returns the square one step away in the given direction or
// NoSquare at the board edge.
func (sq Square) Step(d Direction) Square {
	if !sq.Valid() {
		return NoSquare
	}
	dr, dc := d.delta()
	return NewSquare(sq.Row()+dr, sq.Col()+dc)
}

func parseAlgebraicSquare(s string) Square {
	if len(s) != 2 {
		return NoSquare
	}
	col := int(s[0] - 'a')
	rank := int(s[1] - '0')
	if col < 0 || col >= numCols || rank < 1 || rank > numRows {
		return NoSquare
	}
	return NewSquare(numRows-rank, col)
}

// Direction is one of the four diagonals.
type Direction int8

const (
	// NorthWest points toward row 0 and column 0.
	NorthWest Direction = iota
	// NorthEast points toward row 0 and column 7.
	NorthEast
	// SouthWest points toward row 7 and column 0.
	SouthWest
	// SouthEast points toward row 7 and column 7.
	SouthEast
)

var allDirections = []Direction{NorthWest, NorthEast, SouthWest, SouthEast}

func (d Direction) delta() (int, int) {
	switch d {
	case NorthWest:
		return -1, -1
	case NorthEast:
		return -1, 1
	case SouthWest:
		return 1, -1
	case SouthEast:
		return 1, 1
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case NorthWest:
		return "NW"
	case NorthEast:
		return "NE"
	case SouthWest:
		return "SW"
	case SouthEast:
		return "SE"
	}
	return "?"
}

// forwardDirections returns the two diagonals a man of color c moves along.
func forwardDirections(c Color) []Direction {
	if c.forward() < 0 {
		return []Direction{NorthWest, NorthEast}
	}
	return []Direction{SouthWest, SouthEast}
}

// directionsFor returns the diagonals a piece moves and captures along.
func directionsFor(p Piece) []Direction {
	if p.Type() == King {
		return allDirections
	}
	return forwardDirections(p.Color())
}
