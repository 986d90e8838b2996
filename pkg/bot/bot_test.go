package bot

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IlikeChooros/go-tictactoe/pkg/cube"
	"github.com/IlikeChooros/go-tictactoe/pkg/mcts"
	"github.com/IlikeChooros/go-tictactoe/pkg/ttt"
	"github.com/IlikeChooros/go-tictactoe/pkg/ultimate"
)

func TestMain(m *testing.M) {
	mcts.SetSeedGeneratorFn(func() int64 {
		return 42
	})
	os.Exit(m.Run())
}

func _classic(t *testing.T, moves ...int) *ttt.Game {
	t.Helper()
	g := ttt.NewGame()
	for _, m := range moves {
		require.NoError(t, g.Play(m))
		g.NextTurn()
	}
	return g
}

func TestClassicWinInOne(t *testing.T) {
	// X: a1 a2, O: b1 b2, X to move
	g := _classic(t, 0, 3, 1, 4)

	move, stats, err := Think(context.Background(), NewClassic(g), Options{Cycles: 5000})
	require.NoError(t, err)
	assert.Equal(t, 2, move)
	assert.Equal(t, 5000, stats.Cycles)
	assert.Equal(t, mcts.StopCycles, stats.StopReason)
}

func TestClassicBlock(t *testing.T) {
	// X: a1 a2, O: b2, O to move and has to take a3
	g := _classic(t, 0, 4, 1)

	move, _, err := Think(context.Background(), NewClassic(g), Options{Cycles: 20000})
	require.NoError(t, err)
	assert.Equal(t, 2, move)
}

func TestClassicGameOver(t *testing.T) {
	g := _classic(t, 0, 3, 1, 4, 2)
	_, _, err := Think(context.Background(), NewClassic(g), Options{Cycles: 100})
	assert.ErrorIs(t, err, ErrNoMoves)
}

func TestPositionIsRestored(t *testing.T) {
	g := _classic(t, 4)
	pos := NewClassic(g)

	_, _, err := Think(context.Background(), pos, Options{Cycles: 2000})
	require.NoError(t, err)

	cp := pos.(*classicPosition)
	assert.Equal(t, 0, cp.depth())
	assert.Equal(t, *g, *cp.top())
	assert.Equal(t, ttt.O, pos.Turn())
}

func TestUltimateMoveFollowsFocus(t *testing.T) {
	b := ultimate.New()
	require.NoError(t, b.Focus(ultimate.Selected(4)))
	_, err := b.Step(7)
	require.NoError(t, err)

	move, _, err := Think(context.Background(), NewUltimate(b), Options{Cycles: 1000})
	require.NoError(t, err)
	assert.Equal(t, 7, move.Board)

	require.NoError(t, b.Focus(ultimate.Selected(move.Board)))
	_, err = b.Step(move.Cell)
	assert.NoError(t, err)
}

func TestUltimateMovesUnfocused(t *testing.T) {
	b := ultimate.New()
	moves := NewUltimate(b).Moves()
	assert.Len(t, moves, 81)

	move, _, err := Think(context.Background(), NewUltimate(b), Options{Cycles: 500})
	require.NoError(t, err)
	assert.True(t, b.Playable(move.Board))
}

func TestCubeWinInOne(t *testing.T) {
	b := cube.New()
	for _, m := range []CubeMove{{0, 0}, {2, 5}, {0, 1}, {2, 7}} {
		require.NoError(t, b.Play(m.Layer, m.Cell))
		b.NextTurn()
	}

	move, _, err := Think(context.Background(), NewCube(b), Options{Cycles: 5000})
	require.NoError(t, err)

	require.NoError(t, b.Play(move.Layer, move.Cell))
	assert.Equal(t, ttt.X, b.WinCheck(), "move %+v should win", move)
}

func TestCubeTerminated(t *testing.T) {
	b := cube.New()
	for _, m := range []CubeMove{{0, 0}, {2, 5}, {1, 4}, {2, 7}, {2, 8}} {
		require.NoError(t, b.Play(m.Layer, m.Cell))
		b.NextTurn()
	}

	pos := NewCube(b)
	terminal, winner := pos.Terminated()
	assert.True(t, terminal)
	assert.Equal(t, ttt.X, winner)
	assert.Empty(t, pos.Moves())
}

func TestThinkCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, stats, err := Think(ctx, NewClassic(ttt.NewGame()), Options{})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, mcts.StopInterrupt, stats.StopReason)
}

func TestScore(t *testing.T) {
	assert.Equal(t, mcts.Result(1), score(ttt.X, ttt.X))
	assert.Equal(t, mcts.Result(0), score(ttt.O, ttt.X))
	assert.Equal(t, mcts.Result(0.5), score(ttt.Empty, ttt.O))
}
