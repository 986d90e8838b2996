package bench

import (
	"sync/atomic"

	"github.com/IlikeChooros/go-tictactoe/pkg/bot"
)

type VersusMatchResult int

const (
	VersusPl1Win VersusMatchResult = 1
	VersusPl2Win VersusMatchResult = -1
	VersusDraw   VersusMatchResult = 0
)

func (r VersusMatchResult) String() string {
	switch r {
	case VersusPl1Win:
		return "player1"
	case VersusPl2Win:
		return "player2"
	default:
		return "draw"
	}
}

// A bot configuration taking part in the arena
type Player struct {
	Name    string
	Options bot.Options
}

// Game counters, safe to update from many workers
type VersusArenaStats struct {
	results [3]atomic.Int32 // indexed by VersusMatchResult + 1
	// decisive games won by the side that moved first / second
	bySide [2]atomic.Int32
	moves  atomic.Int64
}

func (vas *VersusArenaStats) count(r VersusMatchResult) int {
	return int(vas.results[r+1].Load())
}

func (vas *VersusArenaStats) Total() int {
	return vas.P1Wins() + vas.P2Wins() + vas.Draws()
}

func (vas *VersusArenaStats) P1Wins() int           { return vas.count(VersusPl1Win) }
func (vas *VersusArenaStats) P2Wins() int           { return vas.count(VersusPl2Win) }
func (vas *VersusArenaStats) Draws() int            { return vas.count(VersusDraw) }
func (vas *VersusArenaStats) FirstToMoveWins() int  { return int(vas.bySide[0].Load()) }
func (vas *VersusArenaStats) SecondToMoveWins() int { return int(vas.bySide[1].Load()) }

// Average game length in plies, 0 before any game finished
func (vas *VersusArenaStats) AvgMoves() float64 {
	total := vas.Total()
	if total == 0 {
		return 0
	}
	return float64(vas.moves.Load()) / float64(total)
}

func (vas *VersusArenaStats) add(outcome GameOutcome, p1WentFirst bool) VersusMatchResult {
	result := toAgentResult(outcome, p1WentFirst)
	vas.results[result+1].Add(1)
	vas.moves.Add(int64(outcome.Moves))

	if !outcome.IsDraw {
		side := 1
		if outcome.FirstPlayerWon {
			side = 0
		}
		vas.bySide[side].Add(1)
	}
	return result
}

type VersusSummaryInfo struct {
	TotalGames       int     `json:"total_games"`
	P1Wins           int     `json:"player1_wins"`
	P2Wins           int     `json:"player2_wins"`
	FirstToMoveWins  int     `json:"first_to_move_wins"`
	SecondToMoveWins int     `json:"second_to_move_wins"`
	Draws            int     `json:"draws"`
	AvgMoves         float64 `json:"avg_moves"`
	Workers          int     `json:"workers"`
	P1Name           string  `json:"player1_name"`
	P2Name           string  `json:"player2_name"`
}

// Single game result, seen from the side that moved first
type GameOutcome struct {
	FirstPlayerWon bool
	IsDraw         bool
	Moves          int
}

// Which player won, given whether player 1 made the first move
func toAgentResult(outcome GameOutcome, p1WentFirst bool) VersusMatchResult {
	switch {
	case outcome.IsDraw:
		return VersusDraw
	case p1WentFirst == outcome.FirstPlayerWon:
		return VersusPl1Win
	default:
		return VersusPl2Win
	}
}
