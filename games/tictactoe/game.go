package tictactoe

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/termgrid/audio"
	"github.com/lixenwraith/termgrid/engine"
	"github.com/lixenwraith/termgrid/terminal"
	"github.com/lixenwraith/termgrid/theme"
	"github.com/lixenwraith/termgrid/widget"
)

// Options configures a Game; zero values select defaults
type Options struct {
	FPS     float64
	Mode    terminal.ColorMode
	Palette *theme.Palette
	Player  audio.Player
	Now     func() time.Time
	// Col and Row place the board's top-left corner, 1-based
	Col, Row int
}

// Game implements engine.Game
type Game struct {
	board   *Board
	view    *BoardView
	newBtn  *widget.Button
	quitBtn *widget.Button
	status  *widget.Label
	clock   *widget.Label
	objects engine.Group

	palette theme.Palette
	player  audio.Player
	now     func() time.Time
	fps     float64
	running bool

	// Play time, refreshed once per second of frames
	started time.Time
	elapsed time.Duration
	frame   int
}

// New lays out a fresh game
func New(opts Options) *Game {
	g := &Game{
		fps:     opts.FPS,
		player:  opts.Player,
		now:     opts.Now,
		running: true,
		board:   NewBoard(),
	}
	if g.fps <= 0 {
		g.fps = engine.DefaultFPS
	}
	if g.player == nil {
		g.player = audio.Nop{}
	}
	if g.now == nil {
		g.now = time.Now
	}
	g.palette = theme.Default()
	if opts.Palette != nil {
		g.palette = *opts.Palette
	}
	col, row := max(opts.Col, 1), max(opts.Row, 1)
	mode := opts.Mode

	// Status line on top, board below, buttons under the board
	g.clock = &widget.Label{Col: col, Row: row, Width: 20, Fg: g.palette.Text, Mode: mode}
	g.status = &widget.Label{Col: col, Row: row + 1, Width: 20, Fg: g.palette.Text, Mode: mode}
	g.view = NewBoardView(col, row+3, g.board, &g.palette, mode, g.place)
	btnRow := row + 3 + g.view.Height() + 1
	g.newBtn = &widget.Button{Col: col, Row: btnRow, Label: "New", Fg: g.palette.ButtonText, Bg: g.palette.Button, Mode: mode, OnPress: g.Reset}
	g.quitBtn = &widget.Button{Col: col + g.newBtn.Width() + 1, Row: btnRow, Label: "Quit", Fg: g.palette.ButtonText, Bg: g.palette.Button, Mode: mode, OnPress: g.Quit}

	g.objects = engine.Group{g.clock, g.status, g.view, g.newBtn, g.quitBtn}
	g.started = g.now()
	return g
}

// Board exposes the game state
func (g *Game) Board() *Board { return g.board }

// View exposes the board layout for hit testing
func (g *Game) View() *BoardView { return g.view }

// Buttons returns the New and Quit buttons
func (g *Game) Buttons() (newGame, quit *widget.Button) { return g.newBtn, g.quitBtn }

// Elapsed returns the play time last shown
func (g *Game) Elapsed() time.Duration { return g.elapsed }

// Reset starts a new round with X to move and the timer at zero
func (g *Game) Reset() {
	g.board.Reset()
	g.started = g.now()
	g.elapsed = 0
	g.frame = 0
}

// Quit stops the loop after the current frame
func (g *Game) Quit() { g.running = false }

func (g *Game) place(row, col int) {
	err := g.board.Place(row, col)
	switch {
	case err == nil:
		switch {
		case g.board.Winner() != Empty:
			g.player.Play(audio.CueWin)
		case g.board.Tie():
			g.player.Play(audio.CueTie)
		default:
			g.player.Play(audio.CuePlace)
		}
	case errors.Is(err, ErrOccupied):
		g.player.Play(audio.CueReject)
	}
	// ErrGameOver: presses after the round ends are ignored
}

// Input handles keys directly and routes mouse events to the objects
func (g *Game) Input(ev terminal.Event) {
	if ev.Type == terminal.EventKey {
		switch {
		case ev.Key == terminal.KeyEscape, ev.Key == terminal.KeyRune && ev.Rune == 'q':
			g.Quit()
		case ev.Key == terminal.KeyRune && ev.Rune == 'r':
			g.Reset()
		}
		return
	}
	g.objects.Input(ev)
}

// Update refreshes the play-time counter on the first frame and every FPS frames after
// The counter freezes once the round is decided
func (g *Game) Update() error {
	every := max(int(g.fps), 1)
	if g.frame%every == 0 && !g.board.Over() {
		g.elapsed = g.now().Sub(g.started)
		g.frame = 0
	}
	g.frame++

	g.clock.Text = fmt.Sprintf("Time %.0fs", g.elapsed.Seconds())
	switch {
	case g.board.Winner() != Empty:
		g.status.Text = g.board.Winner().String() + " wins"
	case g.board.Tie():
		g.status.Text = "Tie"
	default:
		g.status.Text = g.board.Turn().String() + " to move"
	}
	return nil
}

// Render draws every object in layout order
func (g *Game) Render(buf *bytes.Buffer) error {
	return g.objects.Render(buf)
}

// Running reports whether the loop should continue
func (g *Game) Running() bool { return g.running }

// FPS is the target frame rate
func (g *Game) FPS() float64 { return g.fps }
