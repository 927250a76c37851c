package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func play(t *testing.T, b *Board, cells ...Cell) {
	t.Helper()
	for _, c := range cells {
		require.NoError(t, b.Place(c.Row, c.Col), "place %v", c)
	}
}

func TestBoardAlternatesTurns(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, X, b.Turn())

	play(t, b, Cell{0, 0})
	assert.Equal(t, X, b.At(0, 0))
	assert.Equal(t, O, b.Turn())

	play(t, b, Cell{1, 1})
	assert.Equal(t, O, b.At(1, 1))
	assert.Equal(t, X, b.Turn())
	assert.Equal(t, 2, b.Moves())
}

func TestBoardRejects(t *testing.T) {
	b := NewBoard()
	play(t, b, Cell{0, 0})

	assert.ErrorIs(t, b.Place(0, 0), ErrOccupied)
	assert.ErrorIs(t, b.Place(3, 0), ErrOutOfRange)
	assert.ErrorIs(t, b.Place(0, -1), ErrOutOfRange)
	assert.Equal(t, O, b.Turn(), "rejected moves keep the turn")
	assert.Equal(t, Empty, b.At(5, 5))
}

func TestBoardWinLines(t *testing.T) {
	for i, line := range lines {
		b := NewBoard()
		// O answers off the line
		var spare []Cell
		for r := 0; r < Size; r++ {
			for c := 0; c < Size; c++ {
				on := false
				for _, lc := range line {
					on = on || (lc == Cell{r, c})
				}
				if !on {
					spare = append(spare, Cell{r, c})
				}
			}
		}
		oMoves := []Cell{spare[0], spare[len(spare)-1]}
		play(t, b, line[0], oMoves[0], line[1], oMoves[1], line[2])

		require.Equal(t, X, b.Winner(), "line %d", i)
		for _, c := range line {
			assert.True(t, b.WinLine(c.Row, c.Col), "line %d cell %v", i, c)
		}
		assert.True(t, b.Over())
		assert.False(t, b.Tie())
	}
}

func TestBoardTie(t *testing.T) {
	b := NewBoard()
	// X O X / X O O / O X X
	play(t, b,
		Cell{0, 0}, Cell{0, 1}, Cell{0, 2},
		Cell{1, 1}, Cell{1, 0}, Cell{1, 2},
		Cell{2, 1}, Cell{2, 0}, Cell{2, 2},
	)
	assert.Equal(t, Empty, b.Winner())
	assert.True(t, b.Tie())
	assert.True(t, b.Over())
}

func TestBoardLockedAfterWin(t *testing.T) {
	b := NewBoard()
	play(t, b, Cell{0, 0}, Cell{0, 1}, Cell{1, 1}, Cell{0, 2}, Cell{2, 2})
	require.Equal(t, X, b.Winner())

	assert.ErrorIs(t, b.Place(2, 0), ErrGameOver)
	assert.Equal(t, Empty, b.At(2, 0))

	b.Reset()
	assert.Equal(t, Empty, b.Winner())
	assert.Equal(t, X, b.Turn())
	assert.Zero(t, b.Moves())
}
