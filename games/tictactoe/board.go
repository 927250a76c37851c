// Package tictactoe is a two-player mouse-driven tic-tac-toe on the engine's timed loop.
package tictactoe

import "errors"

// Size is the board dimension
const Size = 3

// Mark is the content of a cell, doubling as player identity
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// other returns the opposing player
func (m Mark) other() Mark {
	if m == X {
		return O
	}
	return X
}

var (
	ErrOccupied   = errors.New("cell occupied")
	ErrGameOver   = errors.New("game over")
	ErrOutOfRange = errors.New("cell out of range")
)

// Cell addresses a board cell by row and column
type Cell struct {
	Row, Col int
}

// lines lists every winning row, column and diagonal
var lines = [][Size]Cell{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is the game state; X always moves first
type Board struct {
	cells  [Size][Size]Mark
	turn   Mark
	moves  int
	winner Mark
	line   [Size]Cell
}

// NewBoard returns an empty board with X to move
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset clears every cell and gives the move to X
func (b *Board) Reset() {
	*b = Board{turn: X}
}

// Place puts the current player's mark at (row, col) and passes the turn
func (b *Board) Place(row, col int) error {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return ErrOutOfRange
	}
	if b.Over() {
		return ErrGameOver
	}
	if b.cells[row][col] != Empty {
		return ErrOccupied
	}

	b.cells[row][col] = b.turn
	b.moves++
	b.checkWin(b.turn)
	b.turn = b.turn.other()
	return nil
}

func (b *Board) checkWin(m Mark) {
	for _, line := range lines {
		won := true
		for _, c := range line {
			if b.cells[c.Row][c.Col] != m {
				won = false
				break
			}
		}
		if won {
			b.winner = m
			b.line = line
			return
		}
	}
}

// At returns the mark in a cell; Empty when out of range
func (b *Board) At(row, col int) Mark {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return Empty
	}
	return b.cells[row][col]
}

// Turn returns the player to move next
func (b *Board) Turn() Mark { return b.turn }

// Moves returns the number of marks placed
func (b *Board) Moves() int { return b.moves }

// Winner returns the winning player or Empty
func (b *Board) Winner() Mark { return b.winner }

// Tie reports a full board without a winner
func (b *Board) Tie() bool { return b.winner == Empty && b.moves == Size*Size }

// Over reports whether further moves are refused
func (b *Board) Over() bool { return b.winner != Empty || b.moves == Size*Size }

// WinLine reports whether a cell belongs to the winning line
func (b *Board) WinLine(row, col int) bool {
	if b.winner == Empty {
		return false
	}
	for _, c := range b.line {
		if c.Row == row && c.Col == col {
			return true
		}
	}
	return false
}
