package bot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IlikeChooros/go-tictactoe/pkg/cube"
	"github.com/IlikeChooros/go-tictactoe/pkg/ttt"
)

func TestEngineReusesTree(t *testing.T) {
	e := NewEngine(NewClassic(ttt.NewGame()))
	opts := Options{Cycles: 2000}

	move, stats, err := e.Think(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, uint32(10), stats.Reused, "fresh tree is the root and its 9 children")

	require.True(t, e.Play(move))

	require.Len(t, e.tree.Root.Children, 8)
	require.True(t, e.Play(e.tree.Root.Children[0].Move))

	// Both moves are in the position, and the subtree was searched already
	assert.Equal(t, ttt.X, e.position.Turn())
	assert.Equal(t, 2, e.position.(*classicPosition).depth())
	assert.Positive(t, e.tree.Root.Visits())
	assert.Len(t, e.tree.Root.Children, 7)

	_, stats, err = e.Think(context.Background(), opts)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.Reused, uint32(8))
	assert.Equal(t, 2000, stats.Cycles)
}

func TestEngineGameOver(t *testing.T) {
	// X: a1 a2, O: b1 b2, X to move and wins with a3
	e := NewEngine(NewClassic(_classic(t, 0, 3, 1, 4)))

	move, _, err := e.Think(context.Background(), Options{Cycles: 3000})
	require.NoError(t, err)
	require.Equal(t, 2, move)

	assert.True(t, e.Play(move))
	_, _, err = e.Think(context.Background(), Options{Cycles: 100})
	assert.ErrorIs(t, err, ErrNoMoves)
}

func TestEngineFollowsPosition(t *testing.T) {
	e := NewEngine(NewCube(cube.New()))
	first := CubeMove{Layer: 1, Cell: 4}
	assert.True(t, e.Play(first))
	assert.Len(t, e.tree.Root.Children, 26)

	move, _, err := e.Think(context.Background(), Options{Cycles: 300})
	require.NoError(t, err)
	assert.NotEqual(t, first, move)
	assert.Equal(t, ttt.O, e.position.Turn())
}
