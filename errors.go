package checkers

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalMove matches every *IllegalMoveError with errors.Is.
	ErrIllegalMove = errors.New("checkers: illegal move")
	// ErrIllegalState matches every *IllegalStateError with errors.Is.
	ErrIllegalState = errors.New("checkers: game is over")
)

// IllegalMoveError is returned when a move is not in the legal move
// set of the position it is applied to.  The position is unchanged.
type IllegalMoveError struct {
	Move   Move
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("checkers: illegal move %s: %s", e.Move, e.Reason)
}

// Is reports whether target is ErrIllegalMove.
func (e *IllegalMoveError) Is(target error) bool {
	return target == ErrIllegalMove
}

// IllegalStateError is returned when a move is applied to a game
// that already has an outcome.
type IllegalStateError struct {
	Outcome Outcome
}

func (e *IllegalStateError) Error() string {
	return fmt.Sprintf("checkers: game is over (%s)", e.Outcome)
}

// Is reports whether target is ErrIllegalState.
func (e *IllegalStateError) Is(target error) bool {
	return target == ErrIllegalState
}
