package apperror

import "errors"

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrSessionBusy  = errors.New("another move is in progress")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrSearchInvariant is returned when the search is asked to move on a board that is
	// already decided. The state machine never does that.
	ErrSearchInvariant = errors.New("search invoked on a terminal board")

	ErrInvalidAssertion = errors.New("invalid identity assertion")
	ErrAssertionExpired = errors.New("identity assertion expired")
)
