package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/cursor"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type Config struct {
	LogLevel     string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile      string `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:"tictactoe.log"`
	Seed         uint64 `yaml:"seed" env:"TICTACTOE_SEED" env-default:"0"`
	CursorReset  string `yaml:"cursor-reset" env:"TICTACTOE_CURSOR_RESET" env-default:"center"`
	PlayerSymbol string `yaml:"player-symbol" env:"TICTACTOE_PLAYER_SYMBOL" env-default:""`
}

// MustLoad - load all configurations in config.yml file, falling back to the environment when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("could not read environment: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate - checks values that cleanenv can not express as types.
func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", apperror.ErrInvalidConfig, that.LogLevel)
	}

	if _, err := that.ResetMode(); err != nil {
		return err
	}

	if _, err := that.Symbol(); err != nil {
		return err
	}

	return nil
}

func (that *Config) ResetMode() (cursor.ResetMode, error) {
	mode, err := cursor.ParseResetMode(that.CursorReset)
	if err != nil {
		return cursor.ResetNone, fmt.Errorf("cursor-reset: %w", err)
	}

	return mode, nil
}

// Symbol returns the preselected player symbol, or Empty when the player should be asked.
func (that *Config) Symbol() (entity.Symbol, error) {
	if that.PlayerSymbol == "" {
		return entity.Empty, nil
	}

	symbol, err := entity.ParseSymbol(that.PlayerSymbol)
	if err != nil {
		return entity.Empty, fmt.Errorf("player-symbol: %w", err)
	}

	return symbol, nil
}
