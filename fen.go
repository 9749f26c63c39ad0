package checkers

import (
	"fmt"
	"strconv"
	"strings"
)

// FEN returns the position in PDN FEN form, for example
// "W:W21,22,K30:B1,2,K12".  The side to move comes first, then the
// white and black pieces by square number with kings prefixed by K.
func (pos *Position) FEN() string {
	return pos.turn.String() + ":" + encodePieces(&pos.board)
}

func encodePieces(b *Board) string {
	var sb strings.Builder
	for i, c := range []Color{White, Black} {
		if i > 0 {
			sb.WriteByte(':')
		}
		sb.WriteString(c.String())
		first := true
		for n := 1; n <= numPlayable; n++ {
			p := b.Piece(SquareFromNumber(n))
			if p == NoPiece || p.Color() != c {
				continue
			}
			if !first {
				sb.WriteByte(',')
			}
			first = false
			if p.Type() == King {
				sb.WriteByte('K')
			}
			sb.WriteString(strconv.Itoa(n))
		}
	}
	return sb.String()
}

// DecodeFEN parses a PDN FEN string into a position played under
// StandardRules.  Piece lists may use ranges ("W:W21-32:B1-12") and
// a trailing period is ignored.
func DecodeFEN(fen string) (*Position, error) {
	s := strings.TrimSpace(fen)
	s = strings.Trim(s, `"`)
	s = strings.TrimSuffix(s, ".")
	fields := strings.Split(s, ":")
	if len(fields) > 3 {
		return nil, fmt.Errorf("checkers: invalid FEN %q: too many fields", fen)
	}

	turn, ok := parseColor(strings.TrimSpace(fields[0]))
	if !ok {
		return nil, fmt.Errorf("checkers: invalid FEN %q: unknown side to move %q", fen, fields[0])
	}

	m := make(map[Square]Piece)
	seen := map[Color]bool{}
	for _, field := range fields[1:] {
		field = strings.TrimSpace(field)
		if field == "" {
			return nil, fmt.Errorf("checkers: invalid FEN %q: empty piece list", fen)
		}
		c, ok := parseColor(field[:1])
		if !ok || seen[c] {
			return nil, fmt.Errorf("checkers: invalid FEN %q: bad piece list %q", fen, field)
		}
		seen[c] = true
		if err := decodePieceList(field[1:], c, m); err != nil {
			return nil, fmt.Errorf("checkers: invalid FEN %q: %w", fen, err)
		}
	}
	return NewPosition(NewBoard(m), turn, StandardRules), nil
}

func decodePieceList(list string, c Color, m map[Square]Piece) error {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		t := Man
		if strings.HasPrefix(item, "K") {
			t = King
			item = item[1:]
		}
		lo, hi, err := parseSquareRange(item)
		if err != nil {
			return err
		}
		for n := lo; n <= hi; n++ {
			sq := SquareFromNumber(n)
			if _, dup := m[sq]; dup {
				return fmt.Errorf("square %d listed twice", n)
			}
			m[sq] = NewPiece(c, t)
		}
	}
	return nil
}

func parseSquareRange(s string) (int, int, error) {
	lo, hi, isRange := strings.Cut(s, "-")
	a, err := parseSquareNumber(lo)
	if err != nil {
		return 0, 0, err
	}
	if !isRange {
		return a, a, nil
	}
	b, err := parseSquareNumber(hi)
	if err != nil {
		return 0, 0, err
	}
	if b < a {
		return 0, 0, fmt.Errorf("descending range %q", s)
	}
	return a, b, nil
}

func parseSquareNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || SquareFromNumber(n) == NoSquare {
		return 0, fmt.Errorf("invalid square %q", s)
	}
	return n, nil
}

func parseColor(s string) (Color, bool) {
	switch s {
	case "W", "w":
		return White, true
	case "B", "b":
		return Black, true
	}
	return NoColor, false
}
