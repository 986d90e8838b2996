package bot

import (
	"math/rand"
	"time"

	"github.com/IlikeChooros/go-tictactoe/pkg/mcts"
	"github.com/IlikeChooros/go-tictactoe/pkg/ttt"
)

// Implements mcts.RandGameOperations on top of any Position, with light
// (random) playouts
type Operations[T mcts.MoveLike] struct {
	position Position[T]
	random   *rand.Rand
}

func NewOperations[T mcts.MoveLike](position Position[T]) *Operations[T] {
	return &Operations[T]{
		position: position,
		random:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (ops *Operations[T]) Reset() {}

func (ops *Operations[T]) ExpandNode(node *mcts.NodeBase[T]) uint32 {
	moves := ops.position.Moves()
	node.Children = make([]mcts.NodeBase[T], len(moves))

	for i, m := range moves {
		ops.position.Make(m)
		terminal, _ := ops.position.Terminated()
		ops.position.Undo()

		node.Children[i] = *mcts.NewBaseNode(node, m, terminal)
	}

	return uint32(len(moves))
}

func (ops *Operations[T]) Traverse(move T) {
	ops.position.Make(move)
}

func (ops *Operations[T]) BackTraverse() {
	ops.position.Undo()
}

// Play random moves until the game ends, the result is relative
// to the side to move at the start of the rollout
func (ops *Operations[T]) Rollout() mcts.Result {
	leafTurn := ops.position.Turn()
	moveCount := 0

	terminal, winner := ops.position.Terminated()
	for !terminal {
		moves := ops.position.Moves()
		ops.position.Make(moves[ops.random.Intn(len(moves))])
		moveCount++
		terminal, winner = ops.position.Terminated()
	}

	for range moveCount {
		ops.position.Undo()
	}

	return score(winner, leafTurn)
}

func (ops *Operations[T]) SetRand(r *rand.Rand) {
	ops.random = r
}

func score(winner, side ttt.Piece) mcts.Result {
	switch winner {
	case ttt.Empty:
		return 0.5
	case side:
		return 1.0
	default:
		return 0.0
	}
}
