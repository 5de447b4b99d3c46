package apperror

import "errors"

var (
	ErrInvalidSymbol  = errors.New("invalid symbol, expected X or O")
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrBoardFull      = errors.New("board has no empty cells")
	ErrGameNotStarted = errors.New("game is not started")
)
