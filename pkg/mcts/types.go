package mcts

// Rollout outcome in [0, 1], from the perspective of the side to move
// at the leaf: 0 is a loss, 0.5 a draw and 1 a win
type Result float64
type MoveLike comparable

type SeedGeneratorFnType func() int64

type BestChildPolicy int

const (
	// Most visited child, the robust choice
	BestChildMostVisits BestChildPolicy = iota
	// Highest average outcome among children with enough visits
	BestChildWinRate
)
