package checkers

// bitboard is a set of squares, one bit per square index.
type bitboard uint64

func (b bitboard) has(sq Square) bool {
	return sq.Valid() && b&(1<<uint(sq)) != 0
}

func (b bitboard) with(sq Square) bitboard {
	if !sq.Valid() {
		return b
	}
	return b | 1<<uint(sq)
}

