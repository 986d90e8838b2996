package mcts

import "time"

// UCB1 exploration constant. sqrt(2) is the textbook value, tic-tac-toe
// variants play better with a smaller one
const ExplorationParam = 0.75

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// Replace the seed source of new trees, nil is ignored
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}
