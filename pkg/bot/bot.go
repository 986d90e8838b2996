package bot

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/IlikeChooros/go-tictactoe/pkg/mcts"
)

var ErrNoMoves = errors.New("bot: the game is already over")

// Summary of a finished search
type Stats struct {
	Cycles     int
	Size       uint32
	MaxDepth   int
	Score      mcts.Result
	Reused     uint32 // nodes kept from the previous search
	StopReason mcts.StopReason
	Elapsed    time.Duration
}

func (s Stats) MarshalZerologObject(e *zerolog.Event) {
	e.Int("cycles", s.Cycles).
		Uint32("size", s.Size).
		Int("depth", s.MaxDepth).
		Float64("score", float64(s.Score)).
		Uint32("reused", s.Reused).
		Stringer("stop", s.StopReason).
		Dur("elapsed", s.Elapsed)
}

// Search limits, zero values mean 'no limit'. With no limits at all
// the search runs until ctx is done
type Options struct {
	Cycles   uint32
	Movetime time.Duration
}

func (o Options) limits() *mcts.Limits {
	limits := mcts.DefaultLimits()
	if o.Cycles > 0 {
		limits.SetCycles(o.Cycles)
	}
	if o.Movetime > 0 {
		limits.SetMovetime(o.Movetime)
	}
	return limits
}

// Pick a move for the side to move with a fresh search tree.
// The position is back in its starting state when this returns
func Think[T mcts.MoveLike](ctx context.Context, position Position[T], opts Options) (T, Stats, error) {
	return NewEngine(position).Think(ctx, opts)
}
