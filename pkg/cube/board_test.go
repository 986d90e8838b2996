package cube

import (
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/IlikeChooros/go-tictactoe/pkg/ttt"
)

type _cell struct{ layer, position int }

// Every line of 3 cells inside the cube
func _allLines() [][3]_cell {
	seen := map[[3]int]bool{}
	lines := make([][3]_cell, 0, 49)

	inside := func(v int) bool { return v >= 0 && v < 3 }
	for l := range 3 {
		for r := range 3 {
			for c := range 3 {
				for dl := -1; dl <= 1; dl++ {
					for dr := -1; dr <= 1; dr++ {
						for dc := -1; dc <= 1; dc++ {
							if dl == 0 && dr == 0 && dc == 0 {
								continue
							}
							if !inside(l+2*dl) || !inside(r+2*dr) || !inside(c+2*dc) {
								continue
							}

							var line [3]_cell
							var key [3]int
							for k := range 3 {
								line[k] = _cell{l + k*dl, (r+k*dr)*3 + c + k*dc}
								key[k] = line[k].layer*9 + line[k].position
							}
							sort.Ints(key[:])
							if !seen[key] {
								seen[key] = true
								lines = append(lines, line)
							}
						}
					}
				}
			}
		}
	}
	return lines
}

func _place(t *testing.T, b *Board, cells ...[2]int) {
	t.Helper()
	for _, c := range cells {
		if err := b.Play(c[0], c[1]); err != nil {
			t.Fatalf("play %v: %v", c, err)
		}
	}
}

func TestEveryLineIsDetected(t *testing.T) {
	lines := _allLines()
	if len(lines) != 49 {
		t.Fatalf("got %d lines, a 3x3x3 cube has 49", len(lines))
	}

	for _, piece := range []ttt.Piece{ttt.X, ttt.O} {
		for _, line := range lines {
			t.Run(fmt.Sprintf("%v-%v", piece, line), func(t *testing.T) {
				b := New()
				if piece == ttt.O {
					b.NextTurn()
				}

				for i, c := range line {
					if got := b.WinCheck(); got != ttt.Empty {
						t.Fatalf("winner=%v after %d cells", got, i)
					}
					_place(t, b, [2]int{c.layer, c.position})
				}

				if got := b.WinCheck(); got != piece {
					t.Fatalf("winner=%v, want=%v", got, piece)
				}
			})
		}
	}
}

func TestLayerWin(t *testing.T) {
	b := New()
	_place(t, b, [2]int{1, 3}, [2]int{1, 4}, [2]int{1, 5})
	if got := b.WinCheck(); got != ttt.X {
		t.Fatalf("winner=%v, want X", got)
	}
}

func TestPillarWin(t *testing.T) {
	b := New()
	_place(t, b, [2]int{0, 7}, [2]int{1, 7}, [2]int{2, 7})
	if got := b.WinCheck(); got != ttt.X {
		t.Fatalf("winner=%v, want X", got)
	}
}

func TestSpaceDiagonalWin(t *testing.T) {
	b := New()
	_place(t, b, [2]int{0, 0}, [2]int{1, 4}, [2]int{2, 8})
	if got := b.WinCheck(); got != ttt.X {
		t.Fatalf("winner=%v, want X", got)
	}

	// Same cells but not a line
	b = New()
	_place(t, b, [2]int{0, 0}, [2]int{1, 4}, [2]int{2, 6})
	if got := b.WinCheck(); got != ttt.Empty {
		t.Fatalf("winner=%v, want none", got)
	}
}

func TestAlternatingGame(t *testing.T) {
	b := New()
	moves := [][2]int{
		{0, 0}, {0, 1},
		{1, 4}, {1, 1},
		{2, 8},
	}

	for i, mv := range moves {
		if got := b.WinCheck(); got != ttt.Empty {
			t.Fatalf("move %d: winner=%v too early", i, got)
		}
		_place(t, b, mv)
		b.NextTurn()
	}

	if got := b.WinCheck(); got != ttt.X {
		t.Fatalf("winner=%v, want X", got)
	}
	if b.Layer(0).Cell(1) != ttt.O || b.Layer(1).Cell(1) != ttt.O {
		t.Fatal("O pieces are missing")
	}
}

func TestPlayErrors(t *testing.T) {
	b := New()
	_place(t, b, [2]int{2, 2})

	if err := b.Play(2, 2); !errors.Is(err, ttt.ErrSpaceTaken) {
		t.Errorf("err=%v, want space taken", err)
	}
	if err := b.Play(0, 9); !errors.Is(err, ttt.ErrOutOfBounds) {
		t.Errorf("err=%v, want out of bounds", err)
	}

	// The failed moves didn't touch anything
	for l := range Layers {
		for pos, p := range b.Layer(l).Cells() {
			want := ttt.Empty
			if l == 2 && pos == 2 {
				want = ttt.X
			}
			if p != want {
				t.Errorf("layer %d cell %d = %v, want %v", l, pos, p, want)
			}
		}
	}
}

func TestPlayInvalidLayerPanics(t *testing.T) {
	for _, layer := range []int{-1, 3} {
		t.Run(fmt.Sprint(layer), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected a panic")
				}
			}()
			_ = New().Play(layer, 0)
		})
	}
}

func TestTurnAndFull(t *testing.T) {
	b := New()
	for n := range 27 {
		want := ttt.X
		if n%2 == 1 {
			want = ttt.O
		}
		if b.Turn() != want {
			t.Fatalf("after %d turns: %v, want %v", n, b.Turn(), want)
		}
		if b.Full() {
			t.Fatalf("cube full after %d moves", n)
		}
		if err := b.Play(n/9, n%9); err != nil {
			t.Fatal(err)
		}
		b.NextTurn()
	}

	if !b.Full() {
		t.Fatal("cube should be full")
	}
}
