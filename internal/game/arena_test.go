package game

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IlikeChooros/go-tictactoe/internal/config"
)

func TestRunArena(t *testing.T) {
	for _, variant := range []string{config.VariantClassic, config.VariantCube} {
		t.Run(variant, func(t *testing.T) {
			cfg := config.Config{
				Variant:      variant,
				Opponent:     config.OpponentHuman,
				BotCycles:    40,
				ArenaGames:   2,
				ArenaWorkers: 2,
				ArenaCycles:  10,
			}
			require.NoError(t, cfg.Validate())

			summary, err := RunArena(context.Background(), cfg, zerolog.Nop())
			require.NoError(t, err)
			assert.Equal(t, 2, summary.TotalGames)
			assert.Equal(t, "cycles=40", summary.P1Name)
			assert.Equal(t, "cycles=10", summary.P2Name)
		})
	}
}

func TestRunArenaUnknownVariant(t *testing.T) {
	_, err := RunArena(context.Background(), config.Config{Variant: "hex"}, zerolog.Nop())
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
