package checkers

import "slices"

// jump is a single capture: the piece leaves its square, passes over
// the enemy on over and lands on land.
type jump struct {
	over Square
	land Square
}

// chainFrame is one node of the capture search.  captured and landed
// are the squares already used by the chain leading to it.
type chainFrame struct {
	at       Square
	piece    Piece
	path     []Square
	captures []Square
	captured bitboard
	landed   bitboard
}

// captureChains returns every maximal capture chain for the piece on
// from.  The search is a depth-first traversal over an explicit stack
// and never modifies the board: the moving piece's square counts as
// empty and captured pieces are tracked in the frame, not removed.
func (b *Board) captureChains(from Square, rules Rules) []Move {
	piece := b.Piece(from)
	if piece == NoPiece {
		return nil
	}
	var chains []Move
	stack := []chainFrame{{at: from, piece: piece, path: []Square{from}}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		jumps := b.jumps(from, f, rules)
		if len(jumps) == 0 {
			if len(f.captures) > 0 {
				chains = append(chains, Move{
					path:     f.path,
					captures: f.captures,
					promotes: piece.Type() == Man && f.piece.Type() == King,
				})
			}
			continue
		}
		// pushed in reverse so chains come out in direction order
		for i := len(jumps) - 1; i >= 0; i-- {
			j := jumps[i]
			next := chainFrame{
				at:       j.land,
				piece:    f.piece,
				path:     append(slices.Clip(f.path), j.land),
				captures: append(slices.Clip(f.captures), j.over),
				captured: f.captured.with(j.over),
				landed:   f.landed.with(j.land),
			}
			// promotion takes effect immediately and changes what the
			// rest of the chain may do
			if next.piece.Type() == Man && j.land.Row() == next.piece.Color().promotionRow() {
				next.piece = next.piece.promoted()
			}
			stack = append(stack, next)
		}
	}
	return chains
}

// hasCapture reports whether the piece on from has at least one jump.
func (b *Board) hasCapture(from Square, rules Rules) bool {
	piece := b.Piece(from)
	if piece == NoPiece {
		return false
	}
	return len(b.jumps(from, chainFrame{at: from, piece: piece}, rules)) > 0
}

// jumps returns the single jumps available to the frame's piece.
// origin is where the chain started; it is empty for the whole chain.
func (b *Board) jumps(origin Square, f chainFrame, rules Rules) []jump {
	color := f.piece.Color()
	var out []jump
	for _, d := range directionsFor(f.piece) {
		if f.piece.Type() == Man {
			over := f.at.Step(d)
			land := over.Step(d)
			if land == NoSquare || f.captured.has(over) || f.landed.has(land) {
				continue
			}
			if enemy := b.Piece(over); enemy == NoPiece || enemy.Color() == color {
				continue
			}
			if !b.vacant(land, origin) || f.captured.has(land) {
				continue
			}
			out = append(out, jump{over: over, land: land})
			continue
		}

		over := NoSquare
		for sq := f.at.Step(d); sq != NoSquare; sq = sq.Step(d) {
			if f.captured.has(sq) {
				if rules.CapturedPiecesBlock {
					break
				}
				continue
			}
			if b.vacant(sq, origin) {
				if over != NoSquare && !f.landed.has(sq) {
					out = append(out, jump{over: over, land: sq})
				}
				continue
			}
			if over != NoSquare || b.Piece(sq).Color() == color {
				break
			}
			over = sq
		}
	}
	return out
}

// vacant reports whether sq is empty once the moving piece has left origin.
func (b *Board) vacant(sq, origin Square) bool {
	return sq == origin || b.Piece(sq) == NoPiece
}
