package mcts

import (
	"fmt"
	"math"
	"time"
)

// Search budget. Unbounded limits keep their sentinel values, a search
// with Infinite set ignores all of them and ends only when interrupted
type Limits struct {
	Nodes    uint32
	Cycles   uint32
	Movetime time.Duration
	Infinite bool
}

const (
	NoNodeLimit     uint32        = math.MaxUint32
	NoCycleLimit    uint32        = math.MaxUint32
	NoMovetimeLimit time.Duration = -1
)

func DefaultLimits() *Limits {
	return &Limits{
		Nodes:    NoNodeLimit,
		Cycles:   NoCycleLimit,
		Movetime: NoMovetimeLimit,
		Infinite: true,
	}
}

func (l Limits) String() string {
	if l.Infinite {
		return "infinite"
	}

	movetime := "none"
	if l.Movetime >= 0 {
		movetime = l.Movetime.String()
	}
	return fmt.Sprintf("nodes=%s cycles=%s movetime=%s", _bound(l.Nodes), _bound(l.Cycles), movetime)
}

func _bound(v uint32) string {
	if v == math.MaxUint32 {
		return "none"
	}
	return fmt.Sprint(v)
}

// Stop once the tree holds this many nodes
func (l *Limits) SetNodes(nodes uint32) *Limits {
	l.Nodes = nodes
	l.Infinite = false
	return l
}

// Stop after this many rollouts were backpropagated
func (l *Limits) SetCycles(cycles uint32) *Limits {
	l.Cycles = cycles
	l.Infinite = false
	return l
}

func (l *Limits) SetMovetime(movetime time.Duration) *Limits {
	l.Movetime = movetime
	l.Infinite = false
	return l
}
