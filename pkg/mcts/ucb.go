package mcts

import "math"

// UCB1 selection: wins/visits + C * sqrt(ln(parent_visits)/visits),
// unvisited children are picked first
func UCB1[T MoveLike](parent *NodeBase[T]) *NodeBase[T] {
	best := math.Inf(-1)
	index := 0
	lnParentVisits := math.Log(float64(parent.Visits()))

	for i := range parent.Children {
		child := &parent.Children[i]
		visits := child.Visits()

		// Pick the unvisited one
		if visits == 0 {
			return child
		}

		// Since the game is zero-sum, the child's outcomes are from
		// the perspective of the parent's side to move
		ucb1 := float64(child.Outcomes())/float64(visits) +
			ExplorationParam*math.Sqrt(lnParentVisits/float64(visits))

		if ucb1 > best {
			best = ucb1
			index = i
		}
	}

	return &parent.Children[index]
}
