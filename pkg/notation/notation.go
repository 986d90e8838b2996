package notation

/*

Move notation for all the variants.

A cell is written as <row><column>, rows are 'a'..'c' from the top,
columns '1'..'3' from the left:

	     1   2   3
	a    0 | 1 | 2
	    -----------
	b    3 | 4 | 5
	    -----------
	c    6 | 7 | 8

Cube moves prefix the cell with the layer 'x'..'z' (xa1, zc3), ultimate moves
are the sub-board followed by the cell, both in the cell notation (b2a1).
Tokens should be trimmed and lowercase, anything after the expected
characters is ignored.

*/

import (
	"errors"
	"fmt"
)

var ErrInvalidInput = errors.New("invalid input")

// Check if the byte at given index is in [first, first+2]
func _inRange(token string, i int, first byte) bool {
	return i < len(token) && token[i] >= first && token[i] <= first+2
}

func _invalid(token string) error {
	return fmt.Errorf("%w: %q", ErrInvalidInput, token)
}

func _cellAt(token string, i int) (row, col int, err error) {
	// Reject before subtracting, so there is no wrap around
	if !_inRange(token, i, 'a') || !_inRange(token, i+1, '1') {
		return 0, 0, _invalid(token)
	}
	return int(token[i] - 'a'), int(token[i+1] - '1'), nil
}

// Decode 'a1' like token into (row, column)
func Cell(token string) (row, col int, err error) {
	return _cellAt(token, 0)
}

// Decode 'a1' like token into the board index (row*3 + column)
func Index(token string) (int, error) {
	row, col, err := Cell(token)
	if err != nil {
		return 0, err
	}
	return row*3 + col, nil
}

// Decode cube move 'xa1' into (layer, index)
func Layered(token string) (layer, index int, err error) {
	if !_inRange(token, 0, 'x') {
		return 0, 0, _invalid(token)
	}

	row, col, err := _cellAt(token, 1)
	if err != nil {
		return 0, 0, err
	}
	return int(token[0] - 'x'), row*3 + col, nil
}

// Decode ultimate move 'b2a1' into (sub-board index, cell index)
func Ultimate(token string) (board, index int, err error) {
	bRow, bCol, err := _cellAt(token, 0)
	if err != nil {
		return 0, 0, err
	}

	row, col, err := _cellAt(token, 2)
	if err != nil {
		return 0, 0, err
	}
	return bRow*3 + bCol, row*3 + col, nil
}

// Get the string representation of the board index, for example 4 -> b2
func Encode(index int) string {
	if index < 0 || index > 8 {
		return "(none)"
	}
	return string([]byte{'a' + byte(index/3), '1' + byte(index%3)})
}

// Cube move string, for example (2, 0) -> za1
func EncodeLayered(layer, index int) string {
	if layer < 0 || layer > 2 || index < 0 || index > 8 {
		return "(none)"
	}
	return string('x'+byte(layer)) + Encode(index)
}

// Ultimate move string, for example (4, 0) -> b2a1
func EncodeUltimate(board, index int) string {
	if board < 0 || board > 8 || index < 0 || index > 8 {
		return "(none)"
	}
	return Encode(board) + Encode(index)
}
