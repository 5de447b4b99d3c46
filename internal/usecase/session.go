package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-cli/internal/cursor"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	MessagePlayerWon   = "You have vanquished your foe! Congratulations!"
	MessageOpponentWon = "You have been defeated by AI! Good luck next time!"
	MessageDraw        = "It's a draw! Not bad!"
)

type Renderer interface {
	Greeting() error
	Render(snapshot entity.Snapshot) error
}

type InputSource interface {
	Next(ctx context.Context) (Event, error)
}

type gameEngine interface {
	StartNewGame(player entity.Symbol) error
	PlacePlayerMark(pos entity.Position) bool
	PlaceOpponentMark() (entity.Position, error)
	AdvanceTurn()
	IsOpponentTurn() bool
	CheckWinner() entity.Result
	Board() []entity.Symbol
	Size() int
	Turn() int
	PlayerSymbol() entity.Symbol
	OpponentSymbol() entity.Symbol
}

type boardCursor interface {
	Move(direction entity.Direction)
	Position() entity.Position
	Reset(mode cursor.ResetMode)
}

// Options tune a Session. A valid PlayerSymbol skips the symbol prompt.
type Options struct {
	ResetMode    cursor.ResetMode
	PlayerSymbol entity.Symbol
}

// Session drives games from logical key events: player placement, the automatic
// opponent reply, and the end-of-game result.
type Session struct {
	logger *slog.Logger
	engine gameEngine
	cursor boardCursor
	opts   Options

	log      *slog.Logger
	gameID   string
	rejected bool
	result   entity.Result
	score    entity.Score
}

func NewSession(logger *slog.Logger, engine gameEngine, cur boardCursor, opts Options) *Session {
	logger = logger.With("component", "session")

	return &Session{
		logger: logger,
		engine: engine,
		cursor: cur,
		opts:   opts,

		log: logger,
	}
}

// Begin - starts a new game and lets the opponent open when the player chose O.
func (that *Session) Begin(player entity.Symbol) error {
	if err := that.engine.StartNewGame(player); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.gameID = uuid.NewString()
	that.log = that.logger.With("game_id", that.gameID)
	that.cursor.Reset(that.opts.ResetMode)
	that.rejected = false
	that.result = entity.NoResult()

	that.log.Info("game started",
		"player", that.engine.PlayerSymbol().String(),
		"opponent", that.engine.OpponentSymbol().String(),
		"turn", that.engine.Turn(),
	)

	if that.engine.IsOpponentTurn() {
		if err := that.opponentTurn(); err != nil {
			return err
		}
	}

	return nil
}

// Handle - applies one event. It reports true once the session should stop.
func (that *Session) Handle(event Event) (bool, error) {
	switch event.Kind {
	case EventExit:
		that.log.Info("exit requested")
		return true, nil
	case EventRestart:
		if err := that.Begin(that.engine.PlayerSymbol()); err != nil {
			return false, err
		}
	case EventMove:
		that.rejected = false
		that.cursor.Move(event.Direction)
	case EventPlace:
		if that.result.IsTerminal() {
			return false, nil
		}

		if err := that.playerTurn(); err != nil {
			return false, err
		}
	case EventNone, EventSelectX, EventSelectO:
	}

	return false, nil
}

// Run - prompts for a symbol, then feeds events to Handle until exit or cancellation.
func (that *Session) Run(ctx context.Context, renderer Renderer, input InputSource) error {
	player := that.opts.PlayerSymbol
	if !player.Valid() {
		if err := renderer.Greeting(); err != nil {
			return fmt.Errorf("failed to render greeting: %w", err)
		}

		event, err := input.Next(ctx)
		if err != nil {
			return ignoreCanceled(err)
		}

		switch event.Kind {
		case EventExit:
			return nil
		case EventSelectO:
			player = entity.O
		default:
			player = entity.X
		}
	}

	if err := that.Begin(player); err != nil {
		return err
	}

	for {
		if err := renderer.Render(that.Snapshot()); err != nil {
			return fmt.Errorf("failed to render board: %w", err)
		}

		event, err := input.Next(ctx)
		if err != nil {
			return ignoreCanceled(err)
		}

		done, err := that.Handle(event)
		if err != nil {
			return err
		}

		if done {
			return nil
		}
	}
}

// Snapshot returns a read-only view of the current game for the renderer.
func (that *Session) Snapshot() entity.Snapshot {
	return entity.Snapshot{
		Board:    that.engine.Board(),
		Size:     that.engine.Size(),
		Player:   that.engine.PlayerSymbol(),
		Opponent: that.engine.OpponentSymbol(),
		Turn:     that.engine.Turn(),
		Cursor:   that.cursor.Position(),
		Rejected: that.rejected,
		Result:   that.result,
		Message:  that.Message(),
		Score:    that.score,
	}
}

// Message returns the end-of-game text, or "" while the game is running.
func (that *Session) Message() string {
	switch {
	case that.result.Kind == entity.Draw:
		return MessageDraw
	case that.result.Kind != entity.Win:
		return ""
	case that.result.Winner == that.engine.PlayerSymbol():
		return MessagePlayerWon
	default:
		return MessageOpponentWon
	}
}

func (that *Session) Result() entity.Result {
	return that.result
}

func (that *Session) Score() entity.Score {
	return that.score
}

func (that *Session) GameID() string {
	return that.gameID
}

func (that *Session) playerTurn() error {
	pos := that.cursor.Position()

	that.rejected = !that.engine.PlacePlayerMark(pos)
	if that.rejected {
		that.log.Debug("placement rejected", "row", pos.Row, "col", pos.Col)
		return nil
	}

	that.log.Debug("player placed mark", "row", pos.Row, "col", pos.Col, "turn", that.engine.Turn())
	that.engine.AdvanceTurn()

	if that.updateResult() {
		return nil
	}

	if that.engine.IsOpponentTurn() {
		return that.opponentTurn()
	}

	return nil
}

func (that *Session) opponentTurn() error {
	pos, err := that.engine.PlaceOpponentMark()
	if err != nil {
		return fmt.Errorf("opponent failed to make turn: %w", err)
	}

	that.log.Debug("opponent placed mark", "row", pos.Row, "col", pos.Col, "turn", that.engine.Turn())
	that.engine.AdvanceTurn()
	that.updateResult()

	return nil
}

// updateResult refreshes the result and reports whether the game is over.
func (that *Session) updateResult() bool {
	that.result = that.engine.CheckWinner()
	if !that.result.IsTerminal() {
		return false
	}

	switch {
	case that.result.Kind == entity.Draw:
		that.score.Draws++
	case that.result.Winner == that.engine.PlayerSymbol():
		that.score.Wins++
	default:
		that.score.Losses++
	}

	that.log.Info("game finished",
		"result", that.Message(),
		"winner", that.result.Winner.String(),
		"turns", that.engine.Turn(),
	)

	return true
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return fmt.Errorf("failed to read input: %w", err)
}
