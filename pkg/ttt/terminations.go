package ttt

// Bit i of a mask (counting from the least significant bit) is the cell 8-i,
// so the top left corner is the highest bit:
//
//	8 | 7 | 6
//	---------
//	5 | 4 | 3
//	---------
//	2 | 1 | 0
const (
	WinTopRow     uint16 = 0b111000000
	WinMiddleRow  uint16 = 0b000111000
	WinBottomRow  uint16 = 0b000000111
	WinLeftCol    uint16 = 0b100100100
	WinMiddleCol  uint16 = 0b010010010
	WinRightCol   uint16 = 0b001001001
	WinDiagonal   uint16 = 0b100010001
	WinAntiDiag   uint16 = 0b001010100
	FullBoardMask uint16 = 0b111111111
)

// horizontal, vertical and diagonal patterns, in the order they are checked
var Winlines = [8]uint16{
	WinTopRow, WinMiddleRow, WinBottomRow,
	WinLeftCol, WinMiddleCol, WinRightCol,
	WinDiagonal, WinAntiDiag,
}

// Append one cell to the pair of masks: shift both left, then set the low bit
// of the mask matching the piece
func PushCell(xs, os uint16, p Piece) (uint16, uint16) {
	xs <<= 1
	os <<= 1
	switch p {
	case X:
		xs |= 1
	case O:
		os |= 1
	}
	return xs, os
}

// Encode 9 pieces (scanned from index 0 to 8) into (cross, circle) masks
func Masks(cells [9]Piece) (xs, os uint16) {
	for _, p := range cells {
		xs, os = PushCell(xs, os, p)
	}
	return xs, os
}

// Get the first winner of the masks, checking X before O on each winline,
// returns Empty if none of the winlines is complete
func MaskWinner(xs, os uint16) Piece {
	for _, line := range Winlines {
		if xs&line == line {
			return X
		}
		if os&line == line {
			return O
		}
	}
	return Empty
}

// Evaluate a pair of masks, same rules as the flat board
func CheckMasks(xs, os uint16) EndState {
	if winner := MaskWinner(xs, os); winner != Empty {
		return Winner(winner)
	}

	// If not, check if that's a draw (this square is fully filled)
	if xs|os == FullBoardMask {
		return StateCatsGame
	}
	return StateInPlay
}
