package game

import (
	"context"

	"github.com/IlikeChooros/go-tictactoe/pkg/bot"
	"github.com/IlikeChooros/go-tictactoe/pkg/notation"
	"github.com/IlikeChooros/go-tictactoe/pkg/ttt"
)

// Play a classic game from the given position until it ends or the player quits
func (s *Session) Classic(ctx context.Context, game *ttt.Game) (ttt.EndState, error) {
	s.log = s.log.With().Str("variant", "classic").Logger()
	s.log.Info().Msg("game started")

	var engine *bot.Engine[int]
	if s.bot != nil {
		engine = bot.NewEngine(bot.NewClassic(game))
	}

	for {
		if err := ctx.Err(); err != nil {
			return game.WinCheck(), err
		}

		s.header("Welcome to TicTacToe!")
		s.out.Classic(game.Board())

		if state := game.WinCheck(); state.Decided() {
			return s.finish(state)
		}

		turn := game.Turn()
		if s.botTurn(turn) {
			move, _, err := engine.Think(s.think(ctx), *s.bot)
			if err != nil {
				return game.WinCheck(), err
			}
			if err := game.Play(move); err != nil {
				return game.WinCheck(), err
			}
			game.NextTurn()
			engine.Play(move)
			s.played(turn, notation.Encode(move), true)
			continue
		}

		input, err := s.ask("(%s) Your move: ", s.out.Piece(turn))
		if err != nil {
			return game.WinCheck(), err
		}

		index, err := notation.Index(input)
		if err == nil {
			err = game.Play(index)
		}
		if err != nil {
			if err := s.reject(input, err); err != nil {
				return game.WinCheck(), err
			}
			continue
		}

		game.NextTurn()
		if engine != nil {
			engine.Play(index)
		}
		s.played(turn, input, false)
	}
}
