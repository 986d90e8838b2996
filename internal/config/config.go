package config

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
)

// Game variants
const (
	VariantClassic  = "classic"
	VariantUltimate = "ultimate"
	VariantCube     = "cube"
)

// Who plays O
const (
	OpponentHuman = "human"
	OpponentBot   = "bot"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Variant       string `env:"VARIANT" envDefault:"classic"`
	Opponent      string `env:"OPPONENT" envDefault:"human"`
	BotCycles     uint32 `env:"BOT_CYCLES" envDefault:"20000"`
	BotMovetimeMs int    `env:"BOT_MOVETIME_MS" envDefault:"1000"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile       string `env:"LOG_FILE"`
	NoColor       bool   `env:"NO_COLOR"`

	// Bot against bot, player 1 uses BotCycles and player 2 ArenaCycles
	ArenaGames   int    `env:"ARENA_GAMES" envDefault:"0"`
	ArenaWorkers int    `env:"ARENA_WORKERS" envDefault:"2"`
	ArenaCycles  uint32 `env:"ARENA_CYCLES" envDefault:"2000"`
}

// Load the config from the TICTACTOE_ prefixed environment variables
func Load() (Config, error) {
	return parse(env.Options{Prefix: "TICTACTOE_"})
}

func parse(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Register command line flags, defaulting to the current values.
// After fs.Parse the flags override the environment
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Variant, "variant", c.Variant, "game variant: classic, ultimate or cube")
	fs.StringVar(&c.Opponent, "opponent", c.Opponent, "who plays O: human or bot")
	uint32Var(fs, &c.BotCycles, "cycles", "bot search cycles, 0 for no limit")
	fs.IntVar(&c.BotMovetimeMs, "movetime", c.BotMovetimeMs, "bot thinking time in milliseconds, 0 for no limit")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: trace, debug, info, warn, error")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write logs to this file, discarded if empty")
	fs.BoolVar(&c.NoColor, "no-color", c.NoColor, "disable colors and screen clearing")
	fs.IntVar(&c.ArenaGames, "arena", c.ArenaGames, "play this many bot against bot games instead of an interactive one")
	fs.IntVar(&c.ArenaWorkers, "arena-workers", c.ArenaWorkers, "number of arena games played at once")
	uint32Var(fs, &c.ArenaCycles, "arena-cycles", "search cycles of the second arena player, 0 for no limit")
}

func uint32Var(fs *flag.FlagSet, p *uint32, name, usage string) {
	fs.Func(name, fmt.Sprintf("%s (default %d)", usage, *p), func(s string) error {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return err
		}
		*p = uint32(v)
		return nil
	})
}

func (c Config) Validate() error {
	switch c.Variant {
	case VariantClassic, VariantUltimate, VariantCube:
	default:
		return fmt.Errorf("%w: unknown variant %q", ErrInvalidConfig, c.Variant)
	}

	switch c.Opponent {
	case OpponentHuman, OpponentBot:
	default:
		return fmt.Errorf("%w: unknown opponent %q", ErrInvalidConfig, c.Opponent)
	}

	if c.BotMovetimeMs < 0 {
		return fmt.Errorf("%w: negative movetime %d", ErrInvalidConfig, c.BotMovetimeMs)
	}
	if (c.Opponent == OpponentBot || c.ArenaGames > 0) && c.BotCycles == 0 && c.BotMovetimeMs == 0 {
		return fmt.Errorf("%w: the bot needs a cycle or movetime limit", ErrInvalidConfig)
	}

	if c.ArenaGames < 0 {
		return fmt.Errorf("%w: negative arena games %d", ErrInvalidConfig, c.ArenaGames)
	}
	if c.ArenaGames > 0 {
		if c.ArenaWorkers < 1 {
			return fmt.Errorf("%w: arena needs at least one worker", ErrInvalidConfig)
		}
		if c.ArenaCycles == 0 && c.BotMovetimeMs == 0 {
			return fmt.Errorf("%w: the second arena player needs a cycle or movetime limit", ErrInvalidConfig)
		}
	}
	return nil
}

func (c Config) BotMovetime() time.Duration {
	return time.Duration(c.BotMovetimeMs) * time.Millisecond
}
