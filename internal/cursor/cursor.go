package cursor

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// ResetMode decides where the cursor lands when a new game starts.
type ResetMode uint8

const (
	ResetNone ResetMode = iota
	ResetOrigin
	ResetCenter
)

// ParseResetMode - maps the config value to a ResetMode.
func ParseResetMode(raw string) (ResetMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "none", "keep":
		return ResetNone, nil
	case "origin":
		return ResetOrigin, nil
	case "center", "":
		return ResetCenter, nil
	default:
		return ResetNone, fmt.Errorf("%w: unknown cursor reset mode %q", apperror.ErrInvalidConfig, raw)
	}
}

// Cursor is a row/column pair kept inside the board. It knows nothing about the cells.
type Cursor struct {
	size int
	row  int
	col  int
}

func New(size int) *Cursor {
	return &Cursor{size: size}
}

// Move - shifts the cursor one cell, stopping at the board edge.
func (that *Cursor) Move(direction entity.Direction) {
	switch direction {
	case entity.Up:
		that.row = that.clamp(that.row - 1)
	case entity.Down:
		that.row = that.clamp(that.row + 1)
	case entity.Left:
		that.col = that.clamp(that.col - 1)
	case entity.Right:
		that.col = that.clamp(that.col + 1)
	}
}

func (that *Cursor) Position() entity.Position {
	return entity.Position{Row: that.row, Col: that.col}
}

func (that *Cursor) Reset(mode ResetMode) {
	switch mode {
	case ResetOrigin:
		that.row, that.col = 0, 0
	case ResetCenter:
		that.row, that.col = that.size/2, that.size/2
	case ResetNone:
	}
}

func (that *Cursor) clamp(value int) int {
	return max(0, min(value, that.size-1))
}
