package checkers

import (
	"fmt"
	"strconv"
	"strings"
)

// Notation is the interface implemented by objects that can encode
// and decode moves for a position.
type Notation interface {
	String() string
	Encode(pos *Position, m Move) string
	Decode(pos *Position, s string) (Move, error)
}

// NumericNotation is the standard draughts notation using square
// numbers 1-32: "11-15" for a simple move and "22x15x6" for a capture.
// Decode also accepts a capture given by its start and end squares
// only ("22x6") when exactly one legal chain matches.
type NumericNotation struct{}

// String implements the fmt.Stringer interface.
func (NumericNotation) String() string {
	return "Numeric Notation"
}

// Encode implements the Notation interface.
func (NumericNotation) Encode(_ *Position, m Move) string {
	return encodeMove(m, func(sq Square) string { return strconv.Itoa(sq.Number()) })
}

// Decode implements the Notation interface.
func (NumericNotation) Decode(pos *Position, s string) (Move, error) {
	return decodeMove(pos, s, func(tok string) Square {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return NoSquare
		}
		return SquareFromNumber(n)
	})
}

// AlgebraicNotation names squares by file and rank: "c3-d4" for a
// simple move and "c3xe5xg7" for a capture.  Rank 1 is row 7.
type AlgebraicNotation struct{}

// String implements the fmt.Stringer interface.
func (AlgebraicNotation) String() string {
	return "Algebraic Notation"
}

// Encode implements the Notation interface.
func (AlgebraicNotation) Encode(_ *Position, m Move) string {
	return encodeMove(m, Square.String)
}

// Decode implements the Notation interface.
func (AlgebraicNotation) Decode(pos *Position, s string) (Move, error) {
	return decodeMove(pos, s, func(tok string) Square {
		sq := parseAlgebraicSquare(strings.ToLower(tok))
		if !sq.Playable() {
			return NoSquare
		}
		return sq
	})
}

func encodeMove(m Move, name func(Square) string) string {
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	parts := make([]string, len(m.path))
	for i, sq := range m.path {
		parts[i] = name(sq)
	}
	return strings.Join(parts, sep)
}

// decodeMove splits s on its separator, converts each square with
// parse and matches the result against pos's legal moves.
func decodeMove(pos *Position, s string, parse func(string) Square) (Move, error) {
	text := strings.TrimSpace(s)
	text = strings.TrimRight(text, "!?+#*")
	sep := "-"
	if strings.ContainsAny(text, "xX:") {
		sep = "x"
		text = strings.NewReplacer("X", "x", ":", "x").Replace(text)
	}
	tokens := strings.Split(text, sep)
	if len(tokens) < 2 {
		return Move{}, fmt.Errorf("checkers: invalid move %q", s)
	}
	path := make([]Square, len(tokens))
	for i, tok := range tokens {
		sq := parse(tok)
		if sq == NoSquare {
			return Move{}, fmt.Errorf("checkers: invalid square %q in move %q", tok, s)
		}
		path[i] = sq
	}
	m := NewMove(path...)

	if pos.status.Terminal() {
		return Move{}, &IllegalStateError{Outcome: pos.status.Outcome()}
	}
	var matches []Move
	for _, legal := range pos.moves {
		if legal.Equal(m) {
			return legal, nil
		}
		if len(path) == 2 && sep == "x" && legal.IsCapture() && legal.From() == m.From() && legal.To() == m.To() {
			matches = append(matches, legal)
		}
	}
	switch len(matches) {
	case 0:
		return Move{}, &IllegalMoveError{Move: m, Reason: pos.rejectReason(m)}
	case 1:
		return matches[0], nil
	}
	return Move{}, &IllegalMoveError{Move: m, Reason: fmt.Sprintf("ambiguous: %d capture chains match", len(matches))}
}
