package cube

import (
	"fmt"

	"github.com/IlikeChooros/go-tictactoe/pkg/ttt"
)

const Layers = 3

// Space diagonals going through the center of the cube, as (layer, position) triples
var _spaceDiagonals = [4][3][2]int{
	{{0, 0}, {1, 4}, {2, 8}},
	{{0, 2}, {1, 4}, {2, 6}},
	{{0, 6}, {1, 4}, {2, 2}},
	{{0, 8}, {1, 4}, {2, 0}},
}

// Bit of the cell in a layer mask, cell 0 is the highest bit
func _bit(position int) uint16 {
	return 1 << (ttt.BoardLen - position)
}

// 3x3x3 tic tac toe, three classic boards stacked on top of each other
type Board struct {
	layers [Layers]ttt.Board
	turn   ttt.Piece
}

func New() *Board {
	return &Board{turn: ttt.X}
}

// Put current turn's piece on the given layer and position.
// Panics if the layer is outside the cube
func (b *Board) Play(layer, position int) error {
	if layer < 0 || layer >= Layers {
		panic(fmt.Sprintf("cube: layer %d out of range", layer))
	}
	return b.layers[layer].Play(position, b.turn)
}

// Get the winner, or ttt.Empty if there is none. Empty doesn't tell
// whether the game can go on, a full cube without a line also returns Empty
func (b *Board) WinCheck() ttt.Piece {
	// Each plane is checked with the flat winlines:
	// the layers, then rows across the layers, then columns across the layers
	var planes [3 * Layers][2]uint16
	for l := range Layers {
		planes[l][0], planes[l][1] = b.layers[l].Bitboards()
	}

	for r := range 3 {
		xs, os := uint16(0), uint16(0)
		for l := range Layers {
			for c := range 3 {
				xs, os = ttt.PushCell(xs, os, b.layers[l].Cell(r*3+c))
			}
		}
		planes[Layers+r] = [2]uint16{xs, os}
	}

	for c := range 3 {
		xs, os := uint16(0), uint16(0)
		for l := range Layers {
			for r := range 3 {
				xs, os = ttt.PushCell(xs, os, b.layers[l].Cell(r*3+c))
			}
		}
		planes[2*Layers+c] = [2]uint16{xs, os}
	}

	for _, plane := range planes {
		if winner := ttt.MaskWinner(plane[0], plane[1]); winner != ttt.Empty {
			return winner
		}
	}

	// These don't lie on any single plane, test the layer bits directly
	for _, diagonal := range _spaceDiagonals {
		for side, piece := range [2]ttt.Piece{ttt.X, ttt.O} {
			if planes[diagonal[0][0]][side]&_bit(diagonal[0][1]) != 0 &&
				planes[diagonal[1][0]][side]&_bit(diagonal[1][1]) != 0 &&
				planes[diagonal[2][0]][side]&_bit(diagonal[2][1]) != 0 {
				return piece
			}
		}
	}

	return ttt.Empty
}

// Switch the side to move
func (b *Board) NextTurn() {
	b.turn = b.turn.Opponent()
}

func (b *Board) Turn() ttt.Piece {
	return b.turn
}

// Copy of the layer with given index
func (b *Board) Layer(index int) ttt.Board {
	return b.layers[index]
}

// Whether every cell of the cube is taken
func (b *Board) Full() bool {
	for l := range b.layers {
		if len(b.layers[l].Empty()) > 0 {
			return false
		}
	}
	return true
}
