package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// BoardSize is the side length of the playing board.
const BoardSize = 3

// Symbol is the content of a single board cell.
type Symbol uint8

const (
	Empty Symbol = iota
	X
	O
)

func (that Symbol) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "-"
	}
}

// Valid reports whether the symbol is a player mark.
func (that Symbol) Valid() bool {
	return that == X || that == O
}

// Other returns the opposing mark. Empty has no opponent.
func (that Symbol) Other() Symbol {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// ParseSymbol - parses a player mark from user supplied text.
func ParseSymbol(raw string) (Symbol, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "X":
		return X, nil
	case "O":
		return O, nil
	default:
		return Empty, fmt.Errorf("%w: %q", apperror.ErrInvalidSymbol, raw)
	}
}
