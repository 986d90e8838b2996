package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/IlikeChooros/go-tictactoe/pkg/cube"
	"github.com/IlikeChooros/go-tictactoe/pkg/notation"
	"github.com/IlikeChooros/go-tictactoe/pkg/ttt"
	"github.com/IlikeChooros/go-tictactoe/pkg/ultimate"
)

// Draws the boards on a terminal, X in bright red and O in green
type Renderer struct {
	out   *termenv.Output
	clear bool
}

// Renderer with the color profile detected from w, or plain text if color is false
func New(w io.Writer, color bool) *Renderer {
	if !color {
		return Plain(w)
	}
	return &Renderer{out: termenv.NewOutput(w), clear: true}
}

// No colors and no screen clearing, the output is plain text
func Plain(w io.Writer) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
}

func (r *Renderer) Write(p []byte) (int, error) {
	return r.out.Write(p)
}

// Clear the screen and move the cursor to the top left corner
func (r *Renderer) Clear() {
	if r.clear {
		r.out.ClearScreen()
	}
}

func (r *Renderer) Piece(p ttt.Piece) string {
	switch p {
	case ttt.X:
		return r.out.String("X").Foreground(termenv.ANSIBrightRed).String()
	case ttt.O:
		return r.out.String("O").Foreground(termenv.ANSIGreen).String()
	default:
		return "."
	}
}

func (r *Renderer) row(b ttt.Board, row int, sep string) string {
	return strings.Join([]string{
		r.Piece(b.Cell(row * 3)),
		r.Piece(b.Cell(row*3 + 1)),
		r.Piece(b.Cell(row*3 + 2)),
	}, sep)
}

// Classic draws the board:
//
//	    1   2   3
//	a   X | . | .
//	   ---+---+---
//	b   . | O | .
//	   ---+---+---
//	c   . | . | .
func (r *Renderer) Classic(b ttt.Board) {
	var sb strings.Builder
	sb.WriteString("    1   2   3\n")
	for row := range 3 {
		if row > 0 {
			sb.WriteString("   ---+---+---\n")
		}
		fmt.Fprintf(&sb, "%c   %s\n", 'a'+row, r.row(b, row, " | "))
	}
	_, _ = r.out.WriteString(sb.String())
}

// Sub-boards are laid out the same way the cells are, the sub-board
// row label comes first, then the cell row label
func (r *Renderer) Ultimate(b *ultimate.Board) {
	var sb strings.Builder
	sb.WriteString("        1       2       3\n")
	sb.WriteString("      1 2 3 | 1 2 3 | 1 2 3\n")

	for bRow := range 3 {
		if bRow > 0 {
			sb.WriteString("      ------+-------+------\n")
		}
		for row := range 3 {
			label := ' '
			if row == 0 {
				label = 'a' + rune(bRow)
			}

			rows := make([]string, 3)
			for bCol := range 3 {
				rows[bCol] = r.row(b.SubBoard(bRow*3+bCol), row, " ")
			}
			fmt.Fprintf(&sb, "%c  %c  %s\n", label, 'a'+row, strings.Join(rows, " | "))
		}
	}

	if index, ok := b.GetFocus().Index(); ok {
		fmt.Fprintf(&sb, "Board: %s\n", notation.Encode(index))
	} else {
		sb.WriteString("Board: any\n")
	}
	_, _ = r.out.WriteString(sb.String())
}

// Layers side by side, x is the bottom one
func (r *Renderer) Cube(b *cube.Board) {
	var sb strings.Builder
	sb.WriteString("     x       y       z\n")
	sb.WriteString("   1 2 3   1 2 3   1 2 3\n")
	for row := range 3 {
		layers := make([]string, cube.Layers)
		for l := range cube.Layers {
			layers[l] = r.row(b.Layer(l), row, " ")
		}
		fmt.Fprintf(&sb, "%c  %s\n", 'a'+row, strings.Join(layers, "   "))
	}
	_, _ = r.out.WriteString(sb.String())
}
