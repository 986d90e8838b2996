package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/IlikeChooros/go-tictactoe/pkg/bot"
	"github.com/IlikeChooros/go-tictactoe/pkg/notation"
	"github.com/IlikeChooros/go-tictactoe/pkg/ttt"
	"github.com/IlikeChooros/go-tictactoe/pkg/ultimate"
)

var (
	ErrBoardFinished = errors.New("that board is already finished")
	ErrWrongBoard    = errors.New("that board is not active")
)

// Play ultimate from the given board (a new one if nil). With no board
// focused the player picks one first ('b2'), or plays the full move ('b2a1')
func (s *Session) Ultimate(ctx context.Context, board *ultimate.Board) (ttt.EndState, error) {
	if board == nil {
		board = ultimate.New()
	}
	s.log = s.log.With().Str("variant", "ultimate").Logger()
	s.log.Info().Msg("game started")

	var engine *bot.Engine[bot.UltimateMove]
	if s.bot != nil {
		engine = bot.NewEngine(bot.NewUltimate(board))
	}

	for {
		if err := ctx.Err(); err != nil {
			return board.State(), err
		}

		s.header("Welcome to Ultimate TicTacToe!")
		s.out.Ultimate(board)

		if state := board.State(); state.Decided() {
			return s.finish(state)
		}

		turn := board.Turn()
		if s.botTurn(turn) {
			move, _, err := engine.Think(s.think(ctx), *s.bot)
			if err != nil {
				return board.State(), err
			}
			if err := s.stepUltimate(board, move.Board, move.Cell); err != nil {
				return board.State(), err
			}
			engine.Play(move)
			s.played(turn, notation.EncodeUltimate(move.Board, move.Cell), true)
			continue
		}

		input, move, err := s.ultimateTurn(board, turn)
		if errors.Is(err, ErrQuit) {
			return board.State(), err
		}
		if err != nil {
			if err := s.reject(input, err); err != nil {
				return board.State(), err
			}
			continue
		}
		if move == nil {
			// Only picked a board
			continue
		}

		if engine != nil {
			engine.Play(*move)
		}
		s.played(turn, notation.EncodeUltimate(move.Board, move.Cell), false)
	}
}

// Handle one line of input. The returned move is nil if the player only
// picked a board. A full move ('b2a1') is accepted with or without a focused board
func (s *Session) ultimateTurn(board *ultimate.Board, turn ttt.Piece) (string, *bot.UltimateMove, error) {
	var input string
	var err error

	index, focused := board.GetFocus().Index()
	if focused {
		input, err = s.ask("(%s) Your move on %s: ", s.out.Piece(turn), notation.Encode(index))
	} else {
		input, err = s.ask("(%s) Choose a board: ", s.out.Piece(turn))
	}
	if err != nil {
		return input, nil, err
	}

	if len(input) > 2 {
		b, cell, err := notation.Ultimate(input)
		if err != nil {
			return input, nil, err
		}
		if err := s.stepUltimate(board, b, cell); err != nil {
			return input, nil, err
		}
		return input, &bot.UltimateMove{Board: b, Cell: cell}, nil
	}

	if focused {
		cell, err := notation.Index(input)
		if err != nil {
			return input, nil, err
		}
		if err := s.stepUltimate(board, index, cell); err != nil {
			return input, nil, err
		}
		return input, &bot.UltimateMove{Board: index, Cell: cell}, nil
	}

	b, err := notation.Index(input)
	if err != nil {
		return input, nil, err
	}
	if err := board.Focus(ultimate.Selected(b)); err != nil {
		return input, nil, err
	}
	if !board.GetFocus().IsSelected() {
		return input, nil, ErrBoardFinished
	}
	return input, nil, nil
}

// Focus the sub-board and play on it, on error the focus is restored
func (s *Session) stepUltimate(board *ultimate.Board, index, cell int) error {
	prev := board.GetFocus()
	if !board.Playable(index) {
		return ErrBoardFinished
	}
	if focused, ok := prev.Index(); ok && focused != index {
		return fmt.Errorf("%w, you have to play on %s", ErrWrongBoard, notation.Encode(focused))
	}

	if err := board.Focus(ultimate.Selected(index)); err != nil {
		return err
	}
	if _, err := board.Step(cell); err != nil {
		_ = board.Focus(prev)
		return err
	}
	return nil
}
