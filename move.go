package checkers

import (
	"slices"
	"strconv"
)

// A Move is one ply: a simple step or a full capture chain.  Path
// starts with the moving piece's square followed by every landing
// square in order.
type Move struct {
	path     []Square
	captures []Square
	promotes bool
}

// NewMove returns a move along the given path.  Captures are not
// known until the move is matched against a position's legal moves
// (see Position.Apply).
func NewMove(path ...Square) Move {
	return Move{path: slices.Clone(path)}
}

// From returns the square the moving piece starts on.
func (m Move) From() Square {
	if len(m.path) == 0 {
		return NoSquare
	}
	return m.path[0]
}

// To returns the square the moving piece ends on.
func (m Move) To() Square {
	if len(m.path) == 0 {
		return NoSquare
	}
	return m.path[len(m.path)-1]
}

// Path returns the start square followed by each landing square.
func (m Move) Path() []Square {
	return slices.Clone(m.path)
}

// Captures returns the captured squares in jump order.
func (m Move) Captures() []Square {
	return slices.Clone(m.captures)
}

// IsCapture reports whether the move captures at least one piece.
func (m Move) IsCapture() bool {
	return len(m.captures) > 0
}

// Promotes reports whether the moving man finishes the move as a king.
func (m Move) Promotes() bool {
	return m.promotes
}

// Equal reports whether both moves follow the same path.
func (m Move) Equal(o Move) bool {
	return slices.Equal(m.path, o.path)
}

// hasPrefix reports whether prefix is a strictly shorter start of m's path.
func (m Move) hasPrefix(prefix Move) bool {
	return len(prefix.path) < len(m.path) && slices.Equal(m.path[:len(prefix.path)], prefix.path)
}

// String returns the move in numeric notation, for example
// "11-15" or "22x15x6".
func (m Move) String() string {
	return encodeMove(m, func(sq Square) string {
		if n := sq.Number(); n > 0 {
			return strconv.Itoa(n)
		}
		return sq.String()
	})
}
