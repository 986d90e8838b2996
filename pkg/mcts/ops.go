package mcts

import "math/rand"

type GameOperations[T MoveLike] interface {
	// Generate moves here, and add them as children to given node
	ExpandNode(parent *NodeBase[T]) uint32
	// Make a move on the internal position definition, with given
	// signature value (move)
	Traverse(T)
	// Go back up 1 time in the game tree (undo previous move, which was played in traverse)
	BackTraverse()
	// Play the game until it ends, returns the result for the side to move
	// at the position the rollout started from
	Rollout() Result
	// Reset game state to current internal position, called after changing
	// the position
	Reset()
}

// Random-based rollout
type RandGameOperations[T MoveLike] interface {
	GameOperations[T]
	// Sets the random generator
	SetRand(*rand.Rand)
}
