package apperror

import (
	"errors"
	"fmt"
)

// ErrMoveRejected - the only error kind of the engine, the caller ignores the move and keeps its state.
var ErrMoveRejected = errors.New("move rejected")

var (
	ErrGameFinished = fmt.Errorf("%w: game is already finished", ErrMoveRejected)
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrMoveRejected)
	ErrInvalidCell  = fmt.Errorf("%w: invalid cell index", ErrMoveRejected)
	ErrInvalidMark  = fmt.Errorf("%w: invalid mark", ErrMoveRejected)
	ErrNotYourTurn  = fmt.Errorf("%w: it's not your turn", ErrMoveRejected)
	ErrNoGameMode   = fmt.Errorf("%w: game mode is not selected", ErrMoveRejected)
)

var (
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrInvalidMode      = errors.New("invalid game mode")
	ErrSessionClosed    = errors.New("session is closed")
)
