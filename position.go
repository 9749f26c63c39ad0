package checkers

// Status is the terminal status of a position.  The zero value is
// InProgress; otherwise Winner is the side that won.
type Status struct {
	Winner Color
}

// InProgress is the status of a position whose side to move has at
// least one legal move.
var InProgress = Status{}

// Won returns the status of a position won by c.
func Won(c Color) Status {
	return Status{Winner: c}
}

// Terminal reports whether the game is decided.
func (s Status) Terminal() bool {
	return s.Winner != NoColor
}

// Outcome converts the status to a game outcome.
func (s Status) Outcome() Outcome {
	switch s.Winner {
	case White:
		return WhiteWon
	case Black:
		return BlackWon
	}
	return NoOutcome
}

func (s Status) String() string {
	if !s.Terminal() {
		return "in progress"
	}
	return s.Winner.Name() + " won"
}

// Position is the state of a game between moves: the board, the side
// to move and the rules in force.  A Position is never modified once
// created; Apply returns a new one.
type Position struct {
	board  Board
	turn   Color
	rules  Rules
	moves  []Move
	status Status
}

// StartingPosition returns the standard initial position: twelve men
// per side on the three rows nearest their edge, White to move.
func StartingPosition() *Position {
	return NewPosition(startingBoard(), White, StandardRules)
}

// NewPosition returns a position for an arbitrary board.  The board is
// copied.  If turn has no legal move the position is already won by
// the other side.
func NewPosition(b *Board, turn Color, rules Rules) *Position {
	pos := &Position{turn: turn, rules: rules}
	if b != nil {
		pos.board = *b
	}
	pos.moves = pos.board.legalMoves(turn, rules)
	if len(pos.moves) == 0 {
		pos.status = Won(turn.Other())
	}
	return pos
}

// WithRules returns a copy of the position under different rules.
func (pos *Position) WithRules(r Rules) *Position {
	if r == pos.rules {
		return pos
	}
	return NewPosition(&pos.board, pos.turn, r)
}

// Board returns a copy of the position's board.
func (pos *Position) Board() *Board {
	b := pos.board
	return &b
}

// Turn returns the color to move.
func (pos *Position) Turn() Color {
	return pos.turn
}

// Rules returns the rules the position is played under.
func (pos *Position) Rules() Rules {
	return pos.rules
}

// Status returns InProgress or the winner.  The side to move loses
// when it has no legal move, including when it has no pieces left.
func (pos *Position) Status() Status {
	return pos.status
}

// ValidMoves returns the legal moves for the side to move.  In capture
// mode every move is a maximal capture chain.  A won position has no
// valid moves.
func (pos *Position) ValidMoves() []Move {
	moves := make([]Move, len(pos.moves))
	copy(moves, pos.moves)
	return moves
}

// Apply applies a legal move and returns the resulting position.
// Captured pieces are removed once the whole chain has been walked,
// the piece is promoted if it reached the far row and the turn passes
// to the opponent.  On error the receiver is returned unchanged: an
// *IllegalStateError if the position is won, an *IllegalMoveError if
// the move is not one of ValidMoves.
func (pos *Position) Apply(m Move) (*Position, error) {
	legal, err := pos.resolve(m)
	if err != nil {
		return pos, err
	}
	b := pos.board
	b.apply(legal.From(), legal.To(), legal.captures, legal.promotes)
	return NewPosition(&b, pos.turn.Other(), pos.rules), nil
}

// resolve returns the legal move following m's path.
func (pos *Position) resolve(m Move) (Move, error) {
	if pos.status.Terminal() {
		return Move{}, &IllegalStateError{Outcome: pos.status.Outcome()}
	}
	for _, legal := range pos.moves {
		if legal.Equal(m) {
			return legal, nil
		}
	}
	return Move{}, &IllegalMoveError{Move: m, Reason: pos.rejectReason(m)}
}

// rejectReason explains why m is not a legal move.
func (pos *Position) rejectReason(m Move) string {
	if len(m.path) < 2 {
		return "move needs a start and a destination"
	}
	for _, sq := range m.path {
		if !sq.Playable() {
			return "square " + sq.String() + " is not playable"
		}
	}
	p := pos.board.Piece(m.From())
	switch {
	case p == NoPiece:
		return "no piece on " + m.From().String()
	case p.Color() != pos.turn:
		return "piece on " + m.From().String() + " belongs to " + p.Color().Name()
	}
	capturing := len(pos.moves) > 0 && pos.moves[0].IsCapture()
	if !capturing {
		return "not a legal move"
	}
	for _, legal := range pos.moves {
		if legal.hasPrefix(m) {
			return "capture chain must continue"
		}
	}
	return "a capture is mandatory"
}

// String implements the fmt.Stringer interface and returns the
// position's FEN.
func (pos *Position) String() string {
	return pos.FEN()
}
