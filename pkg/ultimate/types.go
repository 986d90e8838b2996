package ultimate

import "fmt"

// Which sub-board is currently playable. The zero value is Unselected
type Focus struct {
	index    int
	selected bool
}

var Unselected = Focus{}

// Select the sub-board with given index, Board.Focus validates the range
func Selected(index int) Focus {
	return Focus{index: index, selected: true}
}

// Get the selected index, ok is false when nothing is selected
func (f Focus) Index() (index int, ok bool) {
	return f.index, f.selected
}

func (f Focus) IsSelected() bool {
	return f.selected
}

func (f Focus) String() string {
	if !f.selected {
		return "unselected"
	}
	return fmt.Sprintf("selected(%d)", f.index)
}
