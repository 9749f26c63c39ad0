package checkers

import (
	"strings"
)

// A Board represents a checkers board and its pieces.  It holds
// no rules: legality lives in the move generator.
type Board struct {
	squares [numSquares]Piece
}

// NewBoard returns a board from a square to piece mapping.
// Pieces placed on unplayable squares are ignored.
func NewBoard(m map[Square]Piece) *Board {
	b := &Board{}
	for sq, p := range m {
		if sq.Playable() {
			b.squares[sq] = p
		}
	}
	return b
}

// startingBoard fills the three rows nearest each edge with men.
func startingBoard() *Board {
	b := &Board{}
	for sq := Square(0); sq < numSquares; sq++ {
		if !sq.Playable() {
			continue
		}
		switch {
		case sq.Row() < 3:
			b.squares[sq] = BlackMan
		case sq.Row() > 4:
			b.squares[sq] = WhiteMan
		}
	}
	return b
}

// Piece returns the piece on the square or NoPiece.
func (b *Board) Piece(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.squares[sq]
}

// SquareMap returns a mapping of occupied squares to pieces.
func (b *Board) SquareMap() map[Square]Piece {
	m := make(map[Square]Piece)
	for sq, p := range b.squares {
		if p != NoPiece {
			m[Square(sq)] = p
		}
	}
	return m
}

// Squares returns the squares occupied by pieces of color c in
// ascending index order.
func (b *Board) Squares(c Color) []Square {
	var out []Square
	for sq, p := range b.squares {
		if p != NoPiece && p.Color() == c {
			out = append(out, Square(sq))
		}
	}
	return out
}

// Count returns the number of pieces of color c.
func (b *Board) Count(c Color) int {
	n := 0
	for _, p := range b.squares {
		if p != NoPiece && p.Color() == c {
			n++
		}
	}
	return n
}

// Neighbor returns the adjacent square along d or NoSquare at the edge.
func (b *Board) Neighbor(sq Square, d Direction) Square {
	return sq.Step(d)
}

// Ray returns the empty squares from sq along d, nearest first, and
// the occupied square that stops the ray.  The stop square is NoSquare
// when the ray runs off the board.
func (b *Board) Ray(sq Square, d Direction) ([]Square, Square) {
	var empty []Square
	for next := sq.Step(d); next != NoSquare; next = next.Step(d) {
		if b.squares[next] != NoPiece {
			return empty, next
		}
		empty = append(empty, next)
	}
	return empty, NoSquare
}

// apply relocates the piece on from to to, removes the pieces on
// removals and promotes the relocated piece when promote is set.
func (b *Board) apply(from, to Square, removals []Square, promote bool) {
	p := b.squares[from]
	b.squares[from] = NoPiece
	for _, sq := range removals {
		b.squares[sq] = NoPiece
	}
	if promote {
		p = p.promoted()
	}
	b.squares[to] = p
}

// Draw returns visual representation of the board useful for debugging.
func (b *Board) Draw() string {
	var sb strings.Builder
	sb.WriteString("\n  A B C D E F G H\n")
	for row := 0; row < numRows; row++ {
		sb.WriteByte(byte('0' + numRows - row))
		for col := 0; col < numCols; col++ {
			sq := NewSquare(row, col)
			sb.WriteByte(' ')
			switch p := b.squares[sq]; {
			case p != NoPiece:
				sb.WriteString(p.String())
			case sq.Playable():
				sb.WriteByte('.')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String implements the fmt.Stringer interface and returns the
// piece section of the board's FEN.
func (b *Board) String() string {
	return encodePieces(b)
}
