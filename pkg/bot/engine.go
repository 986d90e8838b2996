package bot

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/IlikeChooros/go-tictactoe/pkg/mcts"
)

// Bot for a whole game. The search tree is kept between moves, so the
// subtree of every played move is reused by the next search
type Engine[T mcts.MoveLike] struct {
	position Position[T]
	tree     *mcts.MCTS[T]
}

// The engine owns the position from now on, moves reach it through Play
func NewEngine[T mcts.MoveLike](position Position[T]) *Engine[T] {
	terminal, _ := position.Terminated()
	return &Engine[T]{
		position: position,
		tree:     mcts.NewMCTS[T](NewOperations(position), terminal),
	}
}

// Apply a move made by either side. Returns whether the tree under
// the move was kept, otherwise the search starts from scratch
func (e *Engine[T]) Play(move T) bool {
	e.position.Make(move)
	if e.tree.MakeMove(move) {
		return true
	}

	terminal, _ := e.position.Terminated()
	e.tree.Reset(terminal)
	return false
}

// Search the current position and pick a move, the position itself doesn't change
func (e *Engine[T]) Think(ctx context.Context, opts Options) (T, Stats, error) {
	var move T
	if terminal, _ := e.position.Terminated(); terminal {
		return move, Stats{}, ErrNoMoves
	}

	tree := e.tree
	tree.SetContext(ctx)
	tree.SetLimits(opts.limits())

	reused := tree.Size()
	start := time.Now()
	tree.Search()

	stats := Stats{
		Cycles:     tree.Cycles(),
		Size:       tree.Size(),
		MaxDepth:   tree.MaxDepth(),
		Score:      tree.RootScore(),
		Reused:     reused,
		StopReason: tree.StopReason(),
		Elapsed:    time.Since(start),
	}

	move, ok := tree.RootMove()
	if !ok {
		// No child got visited
		if ctx.Err() != nil {
			return move, stats, ctx.Err()
		}
		move = tree.Root.Children[0].Move
	}

	pv, _ := tree.Pv(tree.Root, mcts.BestChildMostVisits)
	zerolog.Ctx(ctx).Debug().
		Interface("move", move).
		Interface("pv", pv).
		Stringer("limits", tree.Limits()).
		EmbedObject(stats).
		Msg("search finished")
	return move, stats, nil
}
