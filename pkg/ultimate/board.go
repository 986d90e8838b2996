package ultimate

import (
	"fmt"

	"github.com/IlikeChooros/go-tictactoe/pkg/ttt"
)

// Ultimate tic tac toe board: 9 classic boards arranged in a 3x3 grid,
// a player has to win 3 of them in a row
type Board struct {
	boards [9]ttt.Board
	states [9]ttt.EndState
	focus  Focus
	turn   ttt.Piece
	state  ttt.EndState
}

// Create an empty board, X to move and nothing focused
func New() *Board {
	return &Board{
		focus: Unselected,
		turn:  ttt.X,
	}
}

// Change the playable sub-board. Selecting a finished sub-board silently
// resets the focus to Unselected. Out of range index is an error and keeps the focus
func (b *Board) Focus(sel Focus) error {
	index, ok := sel.Index()
	if !ok {
		b.focus = Unselected
		return nil
	}

	if index < 0 || index > ttt.BoardLen {
		return fmt.Errorf("%w: sub-board %d", ttt.ErrOutOfBounds, index)
	}

	if b.states[index] != ttt.StateInPlay {
		b.focus = Unselected
		return nil
	}

	b.focus = sel
	return nil
}

// Put current turn's piece on the focused sub-board.
//
// Panics if there is no focused sub-board or if the focused one is already
// finished, the caller must select a board with Focus first
func (b *Board) Play(position int) error {
	if position < 0 || position > ttt.BoardLen {
		return ttt.ErrOutOfBounds
	}

	index, ok := b.focus.Index()
	if !ok {
		panic("ultimate: no board is active")
	}

	if b.states[index] != ttt.StateInPlay {
		panic(fmt.Sprintf("ultimate: board %d is already finished (%v)", index, b.states[index]))
	}

	return b.boards[index].Play(position, b.turn)
}

// Re-evaluate every unfinished sub-board and the whole board.
// Won sub-boards get painted with the winner's piece, if the focused
// sub-board gets finished, the focus is reset
func (b *Board) WinCheck() ttt.EndState {
	for i := range b.boards {
		if b.states[i] == ttt.StateInPlay {
			b.states[i] = b.boards[i].Settle()
		}
	}

	if index, ok := b.focus.Index(); ok && b.states[index] != ttt.StateInPlay {
		b.focus = Unselected
	}

	b.state = b.checkMeta()
	return b.state
}

// Fold the sub-board results into 'meta' masks and check them with the same winlines
func (b *Board) checkMeta() ttt.EndState {
	var xs, os uint16
	decided := 0
	for _, s := range b.states {
		xs, os = ttt.PushCell(xs, os, s.Winner())
		if s.Decided() {
			decided++
		}
	}

	if winner := ttt.MaskWinner(xs, os); winner != ttt.Empty {
		return ttt.Winner(winner)
	}

	// Every sub-board is finished, but there is no winning pattern
	if decided == len(b.states) {
		return ttt.StateCatsGame
	}
	return ttt.StateInPlay
}

// Switch the side to move
func (b *Board) NextTurn() {
	switch b.turn {
	case ttt.X:
		b.turn = ttt.O
	case ttt.O:
		b.turn = ttt.X
	default:
		panic(fmt.Sprintf("ultimate: invalid turn %d", b.turn))
	}
}

// Make a full move on the focused sub-board: play, evaluate the board,
// pass the turn and send the opponent to the sub-board matching the position.
// On error nothing changes
func (b *Board) Step(position int) (ttt.EndState, error) {
	if err := b.Play(position); err != nil {
		return b.state, err
	}

	state := b.WinCheck()
	b.NextTurn()

	// Position is in range after a successful Play
	_ = b.Focus(Selected(position))
	return state, nil
}

// Getters
func (b *Board) Turn() ttt.Piece {
	return b.turn
}

func (b *Board) GetFocus() Focus {
	return b.focus
}

// Result of the last WinCheck
func (b *Board) State() ttt.EndState {
	return b.state
}

func (b *Board) BoardState(index int) ttt.EndState {
	return b.states[index]
}

// Copy of the sub-board with given index
func (b *Board) SubBoard(index int) ttt.Board {
	return b.boards[index]
}

// Whether the sub-board can be still played on
func (b *Board) Playable(index int) bool {
	return b.states[index] == ttt.StateInPlay
}

// A sub-board is active only when it's focused
func (b *Board) Active(index int) bool {
	i, ok := b.focus.Index()
	return ok && i == index
}

// Make a deep copy of the board
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}
