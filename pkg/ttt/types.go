package ttt

import "errors"

// Last cell index
const BoardLen = 8

type Piece uint8
type EndState uint8

// Enum for the piece type
const (
	Empty Piece = iota
	X
	O
)

const (
	StateInPlay EndState = iota
	StateCatsGame
	StateXWon
	StateOWon
)

var (
	ErrSpaceTaken  = errors.New("this space is already occupied")
	ErrOutOfBounds = errors.New("that space does not exist")
)

func (p Piece) String() string {
	switch p {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Get the other side, Empty stays Empty
func (p Piece) Opponent() Piece {
	switch p {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Create the 'won' state for given piece, Empty results in StateInPlay
func Winner(p Piece) EndState {
	switch p {
	case X:
		return StateXWon
	case O:
		return StateOWon
	default:
		return StateInPlay
	}
}

// Get the winning piece, or Empty if there is none
func (s EndState) Winner() Piece {
	switch s {
	case StateXWon:
		return X
	case StateOWon:
		return O
	default:
		return Empty
	}
}

// Whether the board is finished (won or cats game)
func (s EndState) Decided() bool {
	return s != StateInPlay
}

func (s EndState) String() string {
	switch s {
	case StateXWon:
		return "X wins!"
	case StateOWon:
		return "O wins!"
	case StateCatsGame:
		return "Cat's game!"
	default:
		return "in play"
	}
}
