package bench

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/IlikeChooros/go-tictactoe/pkg/bot"
	"github.com/IlikeChooros/go-tictactoe/pkg/mcts"
	"github.com/IlikeChooros/go-tictactoe/pkg/ttt"
)

/*
Arena benchmark subpackage, plays a series of games between two
bot configurations on any variant.
*/

type VersusArena[T mcts.MoveLike] struct {
	VersusArenaStats
	Player1     Player
	Player2     Player
	NGames      int
	NWorkers    int
	newPosition func() bot.Position[T]
	log         zerolog.Logger
}

// newPosition creates the starting position, it's called once per game
func NewVersusArena[T mcts.MoveLike](newPosition func() bot.Position[T], p1, p2 Player) *VersusArena[T] {
	return &VersusArena[T]{
		Player1:     p1,
		Player2:     p2,
		NGames:      100,
		NWorkers:    2,
		newPosition: newPosition,
		log:         zerolog.Nop(),
	}
}

func (va *VersusArena[T]) WithLogger(logger zerolog.Logger) *VersusArena[T] {
	va.log = logger
	return va
}

func (va *VersusArena[T]) Setup(nGames, nWorkers int) *VersusArena[T] {
	va.NGames = max(0, nGames)
	va.NWorkers = max(1, nWorkers)
	return va
}

// Play all the games, blocks until they are done or ctx is cancelled.
// Players swap sides every game, player 1 starts the even ones
func (va *VersusArena[T]) Run(ctx context.Context) (VersusSummaryInfo, error) {
	games := make(chan int)
	errs := make(chan error, va.NWorkers)
	var wg sync.WaitGroup

	for id := range va.NWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := va.worker(ctx, id, games); err != nil {
				errs <- err
			}
		}()
	}

Loop:
	for i := range va.NGames {
		select {
		case games <- i:
		case <-ctx.Done():
			break Loop
		}
	}
	close(games)
	wg.Wait()
	close(errs)

	summary := va.Summary()
	va.log.Info().Interface("summary", summary).Msg("arena finished")

	if err := <-errs; err != nil {
		return summary, err
	}
	return summary, ctx.Err()
}

func (va *VersusArena[T]) Summary() VersusSummaryInfo {
	return VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Draws:            va.Draws(),
		AvgMoves:         va.AvgMoves(),
		Workers:          va.NWorkers,
		P1Name:           va.Player1.Name,
		P2Name:           va.Player2.Name,
	}
}

func (va *VersusArena[T]) worker(ctx context.Context, id int, games <-chan int) error {
	for i := range games {
		p1WentFirst := i%2 == 0
		first, second := va.Player1, va.Player2
		if !p1WentFirst {
			first, second = second, first
		}

		outcome, err := playGame(ctx, va.newPosition(), first.Options, second.Options)
		if err != nil {
			// Drain the rest, the arena is stopping anyway
			for range games {
			}
			return fmt.Errorf("worker %d, game %d: %w", id, i, err)
		}

		result := va.add(outcome, p1WentFirst)
		va.log.Debug().
			Int("worker", id).
			Int("game", i).
			Int("moves", outcome.Moves).
			Stringer("winner", result).
			Msg("game finished")
	}
	return nil
}

// determines winner of a single game, first player moves as X
func playGame[T mcts.MoveLike](ctx context.Context, pos bot.Position[T], first, second bot.Options) (GameOutcome, error) {
	moves := 0
	for {
		terminal, winner := pos.Terminated()
		if terminal {
			return GameOutcome{
				FirstPlayerWon: winner == ttt.X,
				IsDraw:         winner == ttt.Empty,
				Moves:          moves,
			}, nil
		}

		opts := first
		if pos.Turn() == ttt.O {
			opts = second
		}

		move, _, err := bot.Think(ctx, pos, opts)
		if err != nil {
			return GameOutcome{}, err
		}
		pos.Make(move)
		moves++
	}
}
