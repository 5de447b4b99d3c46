package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/cursor"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/terminal"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	session, err := NewSession(logger, conf)
	if err != nil {
		return err
	}

	term, err := terminal.Open(logger)
	if err != nil {
		return fmt.Errorf("could not open terminal: %w", err)
	}
	defer term.Close()

	log.Info("Starting game session", "seed", conf.Seed, "cursor_reset", conf.CursorReset)

	if err = session.Run(ctx, term, term); err != nil {
		return fmt.Errorf("game session failed: %w", err)
	}

	log.Info("Game session finished",
		"wins", session.Score().Wins,
		"losses", session.Score().Losses,
		"draws", session.Score().Draws,
	)

	return nil
}

// NewSession - wires the game state, cursor and session from the configuration.
func NewSession(logger *slog.Logger, conf *config.Config) (*usecase.Session, error) {
	resetMode, err := conf.ResetMode()
	if err != nil {
		return nil, err
	}

	symbol, err := conf.Symbol()
	if err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if conf.Seed != 0 {
		rng = rand.New(rand.NewPCG(conf.Seed, conf.Seed)) //nolint: gosec // it's ok
	}

	state := tictactoe.NewGameState(rng)

	return usecase.NewSession(logger, state, cursor.New(state.Size()), usecase.Options{
		ResetMode:    resetMode,
		PlayerSymbol: symbol,
	}), nil
}
