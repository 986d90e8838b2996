package ttt

import "fmt"

// Classic 3x3 board, cells are stored row-major (row*3 + col)
type Board struct {
	cells [9]Piece
}

// Create an empty board
func NewBoard() Board {
	return Board{}
}

// Put the piece on given position, fails if the position is outside
// the board or the space is already occupied, doesn't modify the board on error.
// Panics if the piece is neither X nor O
func (b *Board) Play(position int, piece Piece) error {
	if piece != X && piece != O {
		panic(fmt.Sprintf("ttt: cannot play piece %d", piece))
	}

	if position < 0 || position > BoardLen {
		return ErrOutOfBounds
	}

	if b.cells[position] != Empty {
		return ErrSpaceTaken
	}

	b.cells[position] = piece
	return nil
}

// Evaluate the board: winner, cats game or still in play
func (b Board) WinCheck() EndState {
	return CheckMasks(b.Bitboards())
}

// Get the (cross, circle) bitboards, see Winlines for the bit layout
func (b Board) Bitboards() (xs, os uint16) {
	return Masks(b.cells)
}

// Getters
func (b Board) Cell(position int) Piece {
	return b.cells[position]
}

func (b Board) Cells() [9]Piece {
	return b.cells
}

// Get the indexes of the empty cells, in ascending order
func (b Board) Empty() []int {
	free := make([]int, 0, 9)
	for i, p := range b.cells {
		if p == Empty {
			free = append(free, i)
		}
	}
	return free
}

// Same as WinCheck, but if the board is won, every cell gets overwritten
// with the winner's piece. Cats game leaves the cells as they are
func (b *Board) Settle() EndState {
	state := b.WinCheck()
	if winner := state.Winner(); winner != Empty {
		for i := range b.cells {
			b.cells[i] = winner
		}
	}
	return state
}

// Classic game: a board and the side to move
type Game struct {
	board Board
	turn  Piece
}

func NewGame() *Game {
	return &Game{turn: X}
}

// Play current turn's piece on the given position
func (g *Game) Play(position int) error {
	return g.board.Play(position, g.turn)
}

func (g *Game) WinCheck() EndState {
	return g.board.WinCheck()
}

func (g *Game) Turn() Piece {
	return g.turn
}

// Switch the side to move
func (g *Game) NextTurn() {
	g.turn = g.turn.Opponent()
}

func (g *Game) Board() Board {
	return g.board
}
