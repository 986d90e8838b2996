package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/IlikeChooros/go-tictactoe/internal/config"
	"github.com/IlikeChooros/go-tictactoe/internal/render"
	"github.com/IlikeChooros/go-tictactoe/pkg/bot"
	"github.com/IlikeChooros/go-tictactoe/pkg/ttt"
)

// Returned when the player quits with 'q' or the input ends
var ErrQuit = errors.New("game: quit")

// One game played on a terminal
type Session struct {
	ID    uuid.UUID
	in    *bufio.Scanner
	out   *render.Renderer
	log   zerolog.Logger
	bot   *bot.Options
	moves int
}

type Options struct {
	// When set, O is played by the bot with these limits
	Bot *bot.Options
}

// Options matching the config, the bot is enabled only for the bot opponent
func OptionsFromConfig(cfg config.Config) Options {
	if cfg.Opponent != config.OpponentBot {
		return Options{}
	}
	return Options{Bot: &bot.Options{
		Cycles:   cfg.BotCycles,
		Movetime: cfg.BotMovetime(),
	}}
}

func NewSession(in io.Reader, out *render.Renderer, logger zerolog.Logger, opts Options) *Session {
	id := uuid.New()
	return &Session{
		ID:  id,
		in:  bufio.NewScanner(in),
		out: out,
		log: logger.With().Str("session", id.String()).Logger(),
		bot: opts.Bot,
	}
}

// Play the given variant from the starting position
func (s *Session) Run(ctx context.Context, variant string) (ttt.EndState, error) {
	switch variant {
	case config.VariantClassic:
		return s.Classic(ctx, ttt.NewGame())
	case config.VariantUltimate:
		return s.Ultimate(ctx, nil)
	case config.VariantCube:
		return s.Cube(ctx, nil)
	default:
		return ttt.StateInPlay, fmt.Errorf("%w: unknown variant %q", config.ErrInvalidConfig, variant)
	}
}

// Number of moves played in this session
func (s *Session) Moves() int {
	return s.moves
}

func (s *Session) botTurn(turn ttt.Piece) bool {
	return s.bot != nil && turn == ttt.O
}

// Read the next line, trimmed and lowercase. Reports ErrQuit on 'q' or end of input
func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrQuit
	}

	line := strings.ToLower(strings.TrimSpace(s.in.Text()))
	if line == "q" {
		return "", ErrQuit
	}
	return line, nil
}

func (s *Session) ask(format string, args ...any) (string, error) {
	fmt.Fprintf(s.out, format, args...)
	return s.readLine()
}

// Show the error and wait for the player to acknowledge it, the state doesn't change
func (s *Session) reject(input string, err error) error {
	s.log.Debug().Str("input", input).Err(err).Msg("move rejected")
	fmt.Fprintf(s.out, "%v. Press 'Enter' to continue.\n", err)
	_, rerr := s.readLine()
	return rerr
}

func (s *Session) header(welcome string) {
	s.out.Clear()
	fmt.Fprintf(s.out, "%s Please input to make your move! 'q' to quit\n\n", welcome)
}

func (s *Session) finish(state ttt.EndState) (ttt.EndState, error) {
	fmt.Fprintln(s.out, state)
	s.log.Info().Stringer("result", state).Int("moves", s.moves).Msg("game over")
	return state, nil
}

func (s *Session) played(turn ttt.Piece, move string, byBot bool) {
	s.moves++
	s.log.Debug().
		Stringer("turn", turn).
		Str("move", move).
		Bool("bot", byBot).
		Int("ply", s.moves).
		Msg("move played")
}

func (s *Session) think(ctx context.Context) context.Context {
	return s.log.WithContext(ctx)
}
