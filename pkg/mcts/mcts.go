package mcts

import (
	"context"
	"fmt"
	"math"
	"math/rand"
)

type MCTS[T MoveLike] struct {
	Limiter  *Limiter
	Root     *NodeBase[T]
	ops      GameOperations[T]
	random   *rand.Rand
	size     uint32
	cycles   uint32
	maxdepth int
}

// Create new tree, the root is expanded right away unless it's terminal
func NewMCTS[T MoveLike](operations GameOperations[T], terminal bool) *MCTS[T] {
	mcts := &MCTS[T]{
		Limiter: NewLimiter(),
		ops:     operations,
		random:  rand.New(rand.NewSource(SeedGeneratorFn())),
	}

	// If that's random-based playouts, attach random number generator
	if rg, ok := operations.(RandGameOperations[T]); ok {
		rg.SetRand(mcts.random)
	}

	mcts.newRoot(terminal)
	return mcts
}

func (mcts *MCTS[T]) newRoot(terminal bool) {
	mcts.Root = newRootNode[T](terminal)
	mcts.size = 1
	if !terminal {
		mcts.size += mcts.ops.ExpandNode(mcts.Root)
		mcts.Root.expanded = true
	}
}

// Adds custom context to the limiter, enabling cancellation through it
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
//	defer cancel()
//
//	tree.SetContext(ctx)
//	tree.Search()
func (mcts *MCTS[T]) SetContext(ctx context.Context) {
	mcts.Limiter.SetContext(ctx)
}

func (mcts *MCTS[T]) SetLimits(limits *Limits) {
	mcts.Limiter.SetLimits(limits)
}

func (mcts *MCTS[T]) Limits() *Limits {
	return mcts.Limiter.Limits()
}

// Maxiumum depth reach during the search, note that usually MaxDepth != len(pv)
func (mcts *MCTS[T]) MaxDepth() int {
	return mcts.maxdepth
}

// Total number of 'iterations', 'cycles', 'simluations' ran during the last search
func (mcts *MCTS[T]) Cycles() int {
	return int(mcts.cycles)
}

// Get the size of the tree
func (mcts *MCTS[T]) Size() uint32 {
	return mcts.size
}

// Get the reason why the search was stopped, valid after search ends
func (mcts *MCTS[T]) StopReason() StopReason {
	return mcts.Limiter.StopReason()
}

func (mcts *MCTS[T]) String() string {
	return fmt.Sprintf("MCTS={Size=%d, Stats:{maxdepth=%d, cycles=%d}, Stop=%v}",
		mcts.Size(), mcts.MaxDepth(), mcts.Cycles(), mcts.StopReason())
}

// Remove previous tree & update game ops state
func (mcts *MCTS[T]) Reset(terminal bool) {
	mcts.ops.Reset()
	mcts.maxdepth = 0
	mcts.cycles = 0
	mcts.newRoot(terminal)
}

// Tries to make given 'move' a new root, if it failes, does nothing.
// The game operations must already be at the position after the move,
// a root that was never expanded gets its children here.
// Returns whether the root changed
func (mcts *MCTS[T]) MakeMove(move T) bool {
	var newRoot *NodeBase[T]
	for i := range mcts.Root.Children {
		if mcts.Root.Children[i].Move == move {
			newRoot = &mcts.Root.Children[i]
			break
		}
	}

	if newRoot == nil {
		return false
	}

	oldRoot := mcts.Root
	mcts.Root = newRoot
	mcts.maxdepth = max(0, mcts.maxdepth-1)

	// Detach the new root from its parent
	newRoot.Parent = nil
	oldRoot.Children = nil

	if !newRoot.Expanded() && !newRoot.Terminal() {
		mcts.ops.ExpandNode(newRoot)
		newRoot.expanded = true
	}
	mcts.size = uint32(countTreeNodes(newRoot))
	return true
}

// 'the best move' in the position, ok is false if the root has no visited children
func (mcts *MCTS[T]) RootMove() (move T, ok bool) {
	if bestChild := mcts.BestChild(mcts.Root, BestChildMostVisits); bestChild != nil {
		return bestChild.Move, true
	}
	return move, false
}

// Current evaluation of the position, from the side to move perspective
func (mcts *MCTS[T]) RootScore() Result {
	if bestChild := mcts.BestChild(mcts.Root, BestChildMostVisits); bestChild != nil {
		return bestChild.AvgOutcome()
	}
	return Result(math.NaN())
}

// Return best child, based on the policy
func (mcts *MCTS[T]) BestChild(node *NodeBase[T], policy BestChildPolicy) *NodeBase[T] {
	var bestChild *NodeBase[T]

	switch policy {
	case BestChildMostVisits:
		maxVisits := int32(0)
		for i := range node.Children {
			child := &node.Children[i]
			if v := child.Visits(); v > maxVisits {
				maxVisits = v
				bestChild = child
			}
		}
	case BestChildWinRate:
		const minVisitsThreshold = 10
		bestWinRate := Result(-1.0)

		for i := range node.Children {
			child := &node.Children[i]
			if child.Visits() > minVisitsThreshold {
				if winRate := child.AvgOutcome(); winRate > bestWinRate {
					bestWinRate = winRate
					bestChild = child
				}
			}
		}
	}

	return bestChild
}

// Get the pricipal variation (ie. the best sequence of moves) from given
// starting 'root' node, returns (moves, terminal)
func (mcts *MCTS[T]) Pv(root *NodeBase[T], policy BestChildPolicy) ([]T, bool) {
	if root == nil {
		return nil, false
	}

	pv := make([]T, 0, mcts.MaxDepth()+1)
	node := root
	for len(node.Children) > 0 {
		node = mcts.BestChild(node, policy)
		if node == nil {
			break
		}

		pv = append(pv, node.Move)
		if node.Terminal() {
			return pv, true
		}
	}

	return pv, root.Terminal()
}
