package tictactoe

import (
	"bytes"

	"github.com/lixenwraith/termgrid/boxdraw"
	"github.com/lixenwraith/termgrid/terminal"
	"github.com/lixenwraith/termgrid/theme"
)

// Cell geometry in terminal cells, grid lines excluded
const (
	cellWidth  = 3
	cellHeight = 1
	pitchX     = cellWidth + 1
	pitchY     = cellHeight + 1
)

// pulsePeriod is the win highlight cycle in frames
const pulsePeriod = 40

// BoardView draws a board and turns presses into cell placements
// Col and Row are the 1-based position of the top-left corner glyph
type BoardView struct {
	Col, Row int

	board   *Board
	palette *theme.Palette
	mode    terminal.ColorMode
	onCell  func(row, col int)

	grid  []byte // line work, built once
	frame int
}

// NewBoardView lays out the grid at (col, row); onCell receives left presses on cells
func NewBoardView(col, row int, board *Board, palette *theme.Palette, mode terminal.ColorMode, onCell func(row, col int)) *BoardView {
	v := &BoardView{Col: col, Row: row, board: board, palette: palette, mode: mode, onCell: onCell}
	v.grid = v.buildGrid()
	return v
}

// Width and Height of the drawn grid including the border
func (v *BoardView) Width() int  { return Size*pitchX + 1 }
func (v *BoardView) Height() int { return Size*pitchY + 1 }

// CellAt maps a 1-based terminal position to a board cell
// Positions on grid lines or outside the board report ok=false
func (v *BoardView) CellAt(col, row int) (r, c int, ok bool) {
	dx, dy := col-v.Col, row-v.Row
	if dx <= 0 || dy <= 0 || dx >= v.Width()-1 || dy >= v.Height()-1 {
		return 0, 0, false
	}
	if dx%pitchX == 0 || dy%pitchY == 0 {
		return 0, 0, false
	}
	return dy / pitchY, dx / pitchX, true
}

// CellPos returns the terminal position of a cell's center, where its mark is drawn
func (v *BoardView) CellPos(r, c int) (col, row int) {
	return v.Col + c*pitchX + 1 + cellWidth/2, v.Row + r*pitchY + 1
}

// Input forwards left presses on cells
func (v *BoardView) Input(ev terminal.Event) {
	if !ev.IsPress(terminal.MouseBtnLeft) || v.onCell == nil {
		return
	}
	if r, c, ok := v.CellAt(ev.Col, ev.Row); ok {
		v.onCell(r, c)
	}
}

// Render draws the grid, then every mark; winning marks pulse
func (v *BoardView) Render(buf *bytes.Buffer) error {
	v.frame++
	buf.Write(v.grid)

	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			m := v.board.At(r, c)
			color := v.palette.X
			if m == O {
				color = v.palette.O
			}
			if v.board.WinLine(r, c) {
				color = theme.Pulse(v.palette.WinFrom, v.palette.WinTo, v.frame, pulsePeriod)
				terminal.Bold(buf)
			}
			col, row := v.CellPos(r, c)
			terminal.SetFg(buf, v.mode, color)
			terminal.PutString(buf, col, row, m.String())
			terminal.Reset(buf)
		}
	}
	return nil
}

// buildGrid renders the lattice: heavy border, light interior
func (v *BoardView) buildGrid() []byte {
	var buf bytes.Buffer

	for i := 0; i <= Size; i++ {
		// Lattice row i: junctions joined by horizontal runs
		weight := boxdraw.Light
		if i == 0 || i == Size {
			weight = boxdraw.Heavy
		}
		color := v.palette.Grid
		if weight == boxdraw.Heavy {
			color = v.palette.Frame
		}
		terminal.SetFg(&buf, v.mode, color)
		terminal.MoveTo(&buf, v.Col, v.Row+i*pitchY)
		for j := 0; j <= Size; j++ {
			buf.WriteRune(boxdraw.Compose(boxdraw.Lattice(i, j, Size, Size, boxdraw.Heavy, boxdraw.Light)))
			if j < Size {
				run := boxdraw.HorizontalRun(weight)
				for k := 0; k < cellWidth; k++ {
					buf.WriteRune(run)
				}
			}
		}

		if i == Size {
			break
		}
		// Cell row i: vertical runs at every lattice column
		for j := 0; j <= Size; j++ {
			vw := boxdraw.Light
			vc := v.palette.Grid
			if j == 0 || j == Size {
				vw, vc = boxdraw.Heavy, v.palette.Frame
			}
			terminal.SetFg(&buf, v.mode, vc)
			terminal.PutRune(&buf, v.Col+j*pitchX, v.Row+i*pitchY+1, boxdraw.VerticalRun(vw))
		}
	}
	terminal.Reset(&buf)
	return buf.Bytes()
}
