package tictactoe

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// GameState owns the board, the symbol assignment and the turn counter of one game.
// The turn counter parity is the only record of whose move is next.
type GameState struct {
	rng *rand.Rand

	size     int
	board    []entity.Symbol
	player   entity.Symbol
	opponent entity.Symbol
	turn     int
}

// NewGameState - creates a state manager for the standard board.
func NewGameState(rng *rand.Rand) *GameState {
	return NewGameStateSize(entity.BoardSize, rng)
}

// NewGameStateSize - creates a state manager for a size x size board.
// A nil rng is replaced with a time seeded source.
func NewGameStateSize(size int, rng *rand.Rand) *GameState {
	if size < 1 {
		panic(fmt.Sprintf("tictactoe: board size must be positive, got %d", size))
	}

	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1)) //nolint: gosec // it's ok
	}

	return &GameState{
		rng:   rng,
		size:  size,
		board: make([]entity.Symbol, size*size),
	}
}

// StartNewGame - replaces the board and fixes the symbol assignment.
// X always moves first, so a player choosing O starts at turn 1 and the opponent opens.
func (that *GameState) StartNewGame(player entity.Symbol) error {
	if !player.Valid() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidSymbol, player)
	}

	that.board = make([]entity.Symbol, that.size*that.size)
	that.player = player
	that.opponent = player.Other()

	that.turn = 0
	if player != entity.X {
		that.turn = 1
	}

	return nil
}

// PlacePlayerMark - writes the player's mark into an empty cell.
// It returns false without touching the board when the cell is taken or outside the board.
// The turn counter is left to the caller.
func (that *GameState) PlacePlayerMark(pos entity.Position) bool {
	if !that.started() || !pos.InBounds(that.size) {
		return false
	}

	index := pos.Index(that.size)
	if that.board[index] != entity.Empty {
		return false
	}

	that.board[index] = that.player

	return true
}

// PlaceOpponentMark - probes the center cell, then samples random cells until an empty one comes up.
// The turn counter is left to the caller.
func (that *GameState) PlaceOpponentMark() (entity.Position, error) {
	if !that.started() {
		return entity.Position{}, apperror.ErrGameNotStarted
	}

	if !slices.Contains(that.board, entity.Empty) {
		return entity.Position{}, apperror.ErrBoardFull
	}

	cells := len(that.board)
	index := cells / 2
	for that.board[index] != entity.Empty {
		index = that.rng.IntN(cells)
	}

	that.board[index] = that.opponent

	return entity.PositionFromIndex(index, that.size), nil
}

// AdvanceTurn - counts one completed placement.
func (that *GameState) AdvanceTurn() {
	that.turn++
}

// IsOpponentTurn reports whether the next placement belongs to the opponent.
func (that *GameState) IsOpponentTurn() bool {
	return that.turn%2 == 1
}

// CheckWinner - tests every win mask for X, then for O.
func (that *GameState) CheckWinner() entity.Result {
	for _, candidate := range []entity.Symbol{entity.X, entity.O} {
		for mask := range WinMasks(that.size) {
			if covers(that.board, mask, candidate) {
				return entity.WinResult(candidate)
			}
		}
	}

	if that.started() && !slices.Contains(that.board, entity.Empty) {
		return entity.DrawResult()
	}

	return entity.NoResult()
}

// Board returns a copy of the cells in row-major order.
func (that *GameState) Board() []entity.Symbol {
	return slices.Clone(that.board)
}

func (that *GameState) Cell(pos entity.Position) entity.Symbol {
	if !pos.InBounds(that.size) {
		return entity.Empty
	}

	return that.board[pos.Index(that.size)]
}

func (that *GameState) Size() int {
	return that.size
}

func (that *GameState) Turn() int {
	return that.turn
}

func (that *GameState) PlayerSymbol() entity.Symbol {
	return that.player
}

func (that *GameState) OpponentSymbol() entity.Symbol {
	return that.opponent
}

func (that *GameState) started() bool {
	return that.player.Valid()
}

// covers reports whether candidate occupies every cell selected by mask.
func covers(board []entity.Symbol, mask []bool, candidate entity.Symbol) bool {
	for i, selected := range mask {
		if selected && board[i] != candidate {
			return false
		}
	}

	return true
}
