package bot

import (
	"github.com/IlikeChooros/go-tictactoe/pkg/cube"
	"github.com/IlikeChooros/go-tictactoe/pkg/mcts"
	"github.com/IlikeChooros/go-tictactoe/pkg/ttt"
	"github.com/IlikeChooros/go-tictactoe/pkg/ultimate"
)

// Game state the search can walk through. Every Make is matched by exactly one Undo
type Position[T mcts.MoveLike] interface {
	// Legal moves of the side to move, empty when the game is over
	Moves() []T
	Make(T)
	Undo()
	Turn() ttt.Piece
	// Whether the game is over, and who won (Empty on a draw)
	Terminated() (bool, ttt.Piece)
}

// Ultimate move: the sub-board and the cell on it
type UltimateMove struct {
	Board int
	Cell  int
}

// Cube move: the layer and the cell on it
type CubeMove struct {
	Layer int
	Cell  int
}

// History of snapshots, the last one is the current state.
// The boards are small arrays, copying them is cheaper than undo bookkeeping
type _stack[S any] struct {
	history []S
}

func (s *_stack[S]) top() *S {
	return &s.history[len(s.history)-1]
}

func (s *_stack[S]) push(state S) {
	s.history = append(s.history, state)
}

func (s *_stack[S]) pop() {
	if len(s.history) == 1 {
		panic("bot: undo past the root position")
	}
	s.history = s.history[:len(s.history)-1]
}

func (s *_stack[S]) depth() int {
	return len(s.history) - 1
}

type classicPosition struct {
	_stack[ttt.Game]
}

// Search position for the classic game, the game itself is never modified
func NewClassic(game *ttt.Game) Position[int] {
	return &classicPosition{_stack[ttt.Game]{history: []ttt.Game{*game}}}
}

func (p *classicPosition) Moves() []int {
	g := p.top()
	if g.WinCheck().Decided() {
		return nil
	}
	return g.Board().Empty()
}

func (p *classicPosition) Make(move int) {
	g := *p.top()
	if err := g.Play(move); err != nil {
		panic("bot: illegal classic move: " + err.Error())
	}
	g.NextTurn()
	p.push(g)
}

func (p *classicPosition) Undo() {
	p.pop()
}

func (p *classicPosition) Turn() ttt.Piece {
	return p.top().Turn()
}

func (p *classicPosition) Terminated() (bool, ttt.Piece) {
	state := p.top().WinCheck()
	return state.Decided(), state.Winner()
}

type ultimatePosition struct {
	_stack[ultimate.Board]
}

// Search position for the ultimate game. The board's State must be up to
// date, which holds for any board driven by Step
func NewUltimate(board *ultimate.Board) Position[UltimateMove] {
	return &ultimatePosition{_stack[ultimate.Board]{history: []ultimate.Board{*board}}}
}

func (p *ultimatePosition) Moves() []UltimateMove {
	b := p.top()
	if b.State().Decided() {
		return nil
	}

	moves := make([]UltimateMove, 0, 81)
	add := func(index int) {
		for _, cell := range b.SubBoard(index).Empty() {
			moves = append(moves, UltimateMove{Board: index, Cell: cell})
		}
	}

	if index, ok := b.GetFocus().Index(); ok {
		add(index)
		return moves
	}

	for i := range 9 {
		if b.Playable(i) {
			add(i)
		}
	}
	return moves
}

func (p *ultimatePosition) Make(move UltimateMove) {
	b := *p.top()
	if err := b.Focus(ultimate.Selected(move.Board)); err != nil {
		panic("bot: illegal ultimate move: " + err.Error())
	}
	if _, err := b.Step(move.Cell); err != nil {
		panic("bot: illegal ultimate move: " + err.Error())
	}
	p.push(b)
}

func (p *ultimatePosition) Undo() {
	p.pop()
}

func (p *ultimatePosition) Turn() ttt.Piece {
	return p.top().Turn()
}

func (p *ultimatePosition) Terminated() (bool, ttt.Piece) {
	state := p.top().State()
	return state.Decided(), state.Winner()
}

type cubePosition struct {
	_stack[cube.Board]
}

// Search position for the cube game. The game ends on the first line
// or when the cube is full
func NewCube(board *cube.Board) Position[CubeMove] {
	return &cubePosition{_stack[cube.Board]{history: []cube.Board{*board}}}
}

func (p *cubePosition) Moves() []CubeMove {
	b := p.top()
	if b.WinCheck() != ttt.Empty {
		return nil
	}

	moves := make([]CubeMove, 0, 27)
	for l := range cube.Layers {
		for _, cell := range b.Layer(l).Empty() {
			moves = append(moves, CubeMove{Layer: l, Cell: cell})
		}
	}
	return moves
}

func (p *cubePosition) Make(move CubeMove) {
	b := *p.top()
	if err := b.Play(move.Layer, move.Cell); err != nil {
		panic("bot: illegal cube move: " + err.Error())
	}
	b.NextTurn()
	p.push(b)
}

func (p *cubePosition) Undo() {
	p.pop()
}

func (p *cubePosition) Turn() ttt.Piece {
	return p.top().Turn()
}

func (p *cubePosition) Terminated() (bool, ttt.Piece) {
	b := p.top()
	if winner := b.WinCheck(); winner != ttt.Empty {
		return true, winner
	}
	return b.Full(), ttt.Empty
}
