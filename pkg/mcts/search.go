package mcts

// Run the search until the limiter says stop:
//
// 1. selection - to choose the most promising node
//
// 2. rollout - to simulate the user-defined game, and get the result of a playout
//
// 3. backpropagate - to increment counters up to the root
func (mcts *MCTS[T]) Search() {
	mcts.Limiter.Reset()
	mcts.cycles = 0

	if mcts.Root.Terminal() || len(mcts.Root.Children) == 0 {
		mcts.Limiter.Ok(mcts.size, mcts.cycles)
		return
	}

	for mcts.Limiter.Ok(mcts.size, mcts.cycles) {
		node := mcts.Selection()
		mcts.Backpropagate(node, mcts.ops.Rollout())
		mcts.cycles++
	}
}

// Walk down the tree with UCB1, grows the tree by one level
// at a leaf that was already visited
func (mcts *MCTS[T]) Selection() *NodeBase[T] {
	node := mcts.Root
	depth := 0
	for node.Expanded() && len(node.Children) > 0 {
		node = UCB1(node)
		mcts.ops.Traverse(node.Move)
		depth++
	}

	if node.Visits() > 0 && !node.Terminal() {
		mcts.size += mcts.ops.ExpandNode(node)
		node.expanded = true

		if len(node.Children) > 0 {
			node = &node.Children[mcts.random.Intn(len(node.Children))]
			mcts.ops.Traverse(node.Move)
			depth++
		}
	}

	mcts.maxdepth = max(mcts.maxdepth, depth)
	return node
}

// Add the rollout result up to the root, undoing every traversed move.
// The result is given from the perspective of the side to move at the leaf
func (mcts *MCTS[T]) Backpropagate(node *NodeBase[T], result Result) {
	for node != nil {
		// Each node holds the outcomes of the player who moved into it
		result = 1 - result
		node.AddOutcome(result)

		if node.Parent != nil {
			mcts.ops.BackTraverse()
		}
		node = node.Parent
	}
}
