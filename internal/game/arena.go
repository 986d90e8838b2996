package game

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/IlikeChooros/go-tictactoe/internal/config"
	"github.com/IlikeChooros/go-tictactoe/pkg/bench"
	"github.com/IlikeChooros/go-tictactoe/pkg/bot"
	"github.com/IlikeChooros/go-tictactoe/pkg/cube"
	"github.com/IlikeChooros/go-tictactoe/pkg/ttt"
	"github.com/IlikeChooros/go-tictactoe/pkg/ultimate"
)

// Play cfg.ArenaGames bot against bot games on the configured variant
func RunArena(ctx context.Context, cfg config.Config, logger zerolog.Logger) (bench.VersusSummaryInfo, error) {
	p1 := bench.Player{
		Name:    fmt.Sprintf("cycles=%d", cfg.BotCycles),
		Options: bot.Options{Cycles: cfg.BotCycles, Movetime: cfg.BotMovetime()},
	}
	p2 := bench.Player{
		Name:    fmt.Sprintf("cycles=%d", cfg.ArenaCycles),
		Options: bot.Options{Cycles: cfg.ArenaCycles, Movetime: cfg.BotMovetime()},
	}
	logger = logger.With().Str("variant", cfg.Variant).Logger()

	switch cfg.Variant {
	case config.VariantClassic:
		return bench.NewVersusArena(func() bot.Position[int] {
			return bot.NewClassic(ttt.NewGame())
		}, p1, p2).Setup(cfg.ArenaGames, cfg.ArenaWorkers).WithLogger(logger).Run(ctx)
	case config.VariantUltimate:
		return bench.NewVersusArena(func() bot.Position[bot.UltimateMove] {
			return bot.NewUltimate(ultimate.New())
		}, p1, p2).Setup(cfg.ArenaGames, cfg.ArenaWorkers).WithLogger(logger).Run(ctx)
	case config.VariantCube:
		return bench.NewVersusArena(func() bot.Position[bot.CubeMove] {
			return bot.NewCube(cube.New())
		}, p1, p2).Setup(cfg.ArenaGames, cfg.ArenaWorkers).WithLogger(logger).Run(ctx)
	default:
		return bench.VersusSummaryInfo{}, fmt.Errorf("%w: unknown variant %q", config.ErrInvalidConfig, cfg.Variant)
	}
}
