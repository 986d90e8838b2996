package game

import (
	"context"

	"github.com/IlikeChooros/go-tictactoe/pkg/bot"
	"github.com/IlikeChooros/go-tictactoe/pkg/cube"
	"github.com/IlikeChooros/go-tictactoe/pkg/notation"
	"github.com/IlikeChooros/go-tictactoe/pkg/ttt"
)

func cubeState(board *cube.Board) ttt.EndState {
	if winner := board.WinCheck(); winner != ttt.Empty {
		return ttt.Winner(winner)
	}
	if board.Full() {
		return ttt.StateCatsGame
	}
	return ttt.StateInPlay
}

// Play the cube game from the given board (a new one if nil). The cube
// itself has no draws, a full cube without a line ends as a cat's game here
func (s *Session) Cube(ctx context.Context, board *cube.Board) (ttt.EndState, error) {
	if board == nil {
		board = cube.New()
	}
	s.log = s.log.With().Str("variant", "cube").Logger()
	s.log.Info().Msg("game started")

	var engine *bot.Engine[bot.CubeMove]
	if s.bot != nil {
		engine = bot.NewEngine(bot.NewCube(board))
	}

	for {
		if err := ctx.Err(); err != nil {
			return cubeState(board), err
		}

		s.out.Clear()
		s.out.Cube(board)

		if state := cubeState(board); state.Decided() {
			return s.finish(state)
		}

		turn := board.Turn()
		if s.botTurn(turn) {
			move, _, err := engine.Think(s.think(ctx), *s.bot)
			if err != nil {
				return cubeState(board), err
			}
			if err := board.Play(move.Layer, move.Cell); err != nil {
				return cubeState(board), err
			}
			board.NextTurn()
			engine.Play(move)
			s.played(turn, notation.EncodeLayered(move.Layer, move.Cell), true)
			continue
		}

		input, err := s.ask("(%s) Make your move! (Example move: xa1 - moves to layer x, row a, and column 1) ",
			s.out.Piece(turn))
		if err != nil {
			return cubeState(board), err
		}

		layer, index, err := notation.Layered(input)
		if err == nil {
			err = board.Play(layer, index)
		}
		if err != nil {
			if err := s.reject(input, err); err != nil {
				return cubeState(board), err
			}
			continue
		}

		board.NextTurn()
		if engine != nil {
			engine.Play(bot.CubeMove{Layer: layer, Cell: index})
		}
		s.played(turn, input, false)
	}
}
