package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/IlikeChooros/go-tictactoe/internal/config"
	"github.com/IlikeChooros/go-tictactoe/internal/game"
	"github.com/IlikeChooros/go-tictactoe/internal/logging"
	"github.com/IlikeChooros/go-tictactoe/internal/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "tictactoe:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("tictactoe", flag.ExitOnError)
	cfg.RegisterFlags(fs)
	_ = fs.Parse(os.Args[1:])

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.ArenaGames > 0 {
		summary, err := game.RunArena(ctx, cfg, logger)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(summary); encErr != nil {
			return encErr
		}
		return err
	}

	session := game.NewSession(os.Stdin, render.New(os.Stdout, !cfg.NoColor), logger, game.OptionsFromConfig(cfg))
	logger.Info().
		Str("variant", cfg.Variant).
		Str("opponent", cfg.Opponent).
		Str("session", session.ID.String()).
		Msg("starting")

	_, err = session.Run(ctx, cfg.Variant)
	if errors.Is(err, game.ErrQuit) {
		return nil
	}
	return err
}
