package suite

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"
)

const (
	maxWaitDuration = 10 * time.Second

	// Seed keeps opponent moves reproducible across runs.
	Seed uint64 = 20241014
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Rand *rand.Rand
}

// New - builds a fixture with a silent logger and a fixed seed rng.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Rand:   NewRand(Seed),
	}
}

// NewRand returns a deterministic rng for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint: gosec // it's ok
}
