package checkers

// legalMoves returns every legal move for color c.  When any piece of
// c can capture, only maximal capture chains are returned; otherwise
// only simple moves are.  An empty result means c cannot move.
func (b *Board) legalMoves(c Color, rules Rules) []Move {
	squares := b.Squares(c)

	var capturing []Square
	for _, sq := range squares {
		if b.hasCapture(sq, rules) {
			capturing = append(capturing, sq)
		}
	}
	if len(capturing) > 0 {
		var moves []Move
		for _, sq := range capturing {
			moves = append(moves, b.captureChains(sq, rules)...)
		}
		return moves
	}

	var moves []Move
	for _, sq := range squares {
		moves = append(moves, b.simpleMoves(sq)...)
	}
	return moves
}

// simpleMoves returns the non-capturing moves of the piece on from:
// one forward step for a man, any distance along an empty diagonal
// for a king.
func (b *Board) simpleMoves(from Square) []Move {
	p := b.Piece(from)
	if p == NoPiece {
		return nil
	}
	var moves []Move
	for _, d := range directionsFor(p) {
		if p.Type() == Man {
			to := b.Neighbor(from, d)
			if to == NoSquare || b.Piece(to) != NoPiece {
				continue
			}
			moves = append(moves, Move{
				path:     []Square{from, to},
				promotes: to.Row() == p.Color().promotionRow(),
			})
			continue
		}
		empty, _ := b.Ray(from, d)
		for _, to := range empty {
			moves = append(moves, Move{path: []Square{from, to}})
		}
	}
	return moves
}
