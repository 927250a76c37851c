package tictactoe

import (
	"bytes"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termgrid/audio"
	"github.com/lixenwraith/termgrid/engine"
	"github.com/lixenwraith/termgrid/terminal"
)

// scriptConsole has no live input; events arrive through Driver.Post
type scriptConsole struct {
	closeOnce sync.Once
	closed    chan struct{}
	writes    []string
	finis     int
}

func newScriptConsole() *scriptConsole {
	return &scriptConsole{closed: make(chan struct{})}
}

func (c *scriptConsole) Init() error { return nil }

func (c *scriptConsole) Fini() {
	c.finis++
	c.closeOnce.Do(func() { close(c.closed) })
}

func (c *scriptConsole) Write(p []byte) (int, error) {
	c.writes = append(c.writes, string(p))
	return len(p), nil
}

func (c *scriptConsole) PollEvent() (terminal.Event, error) {
	<-c.closed
	return terminal.Event{}, io.EOF
}

type recordingPlayer struct{ cues []audio.Cue }

func (p *recordingPlayer) Play(c audio.Cue) { p.cues = append(p.cues, c) }

func newTestDriver(c engine.Console) *engine.Driver {
	return engine.NewDriver(c,
		engine.WithClock(engine.NewMockClock(time.Unix(0, 0))),
		engine.WithLogger(log.New(io.Discard, "", 0)),
	)
}

func press(g *Game, r, c int) terminal.Event {
	col, row := g.View().CellPos(r, c)
	return terminal.MouseEvent(terminal.MouseActionPress, terminal.MouseBtnLeft, col, row)
}

func runScript(t *testing.T, g *Game, events ...terminal.Event) *scriptConsole {
	t.Helper()
	c := newScriptConsole()
	d := newTestDriver(c)
	for _, ev := range events {
		require.True(t, d.Post(ev))
	}
	require.True(t, d.Post(terminal.KeyEvent(terminal.KeyEscape)))
	require.NoError(t, d.Run(g))
	assert.Equal(t, 1, c.finis)
	return c
}

func TestTwoPressesAlternateMarks(t *testing.T) {
	player := &recordingPlayer{}
	g := New(Options{Player: player})

	runScript(t, g, press(g, 0, 0), press(g, 1, 1))

	b := g.Board()
	assert.Equal(t, X, b.At(0, 0))
	assert.Equal(t, O, b.At(1, 1))
	assert.Equal(t, X, b.Turn(), "turn flipped twice back to the first player")
	assert.Equal(t, []audio.Cue{audio.CuePlace, audio.CuePlace}, player.cues)
	assert.False(t, g.Running())
}

func TestDiagonalWinLocksBoard(t *testing.T) {
	player := &recordingPlayer{}
	g := New(Options{Player: player})

	runScript(t, g,
		press(g, 0, 0), press(g, 0, 1),
		press(g, 1, 1), press(g, 0, 2),
		press(g, 2, 2),
		press(g, 2, 0), // after the win: ignored
	)

	b := g.Board()
	require.Equal(t, X, b.Winner())
	assert.Equal(t, Empty, b.At(2, 0))
	assert.Equal(t, 5, b.Moves())
	assert.Equal(t, audio.CueWin, player.cues[len(player.cues)-1])
	assert.Len(t, player.cues, 5, "ignored press plays nothing")
}

func TestOccupiedCellRejected(t *testing.T) {
	player := &recordingPlayer{}
	g := New(Options{Player: player})

	runScript(t, g, press(g, 1, 1), press(g, 1, 1))

	assert.Equal(t, X, g.Board().At(1, 1))
	assert.Equal(t, O, g.Board().Turn())
	assert.Equal(t, []audio.Cue{audio.CuePlace, audio.CueReject}, player.cues)
}

func TestButtonsAndKeys(t *testing.T) {
	g := New(Options{})
	newBtn, quitBtn := g.Buttons()

	g.Input(press(g, 0, 0))
	require.Equal(t, 1, g.Board().Moves())

	g.Input(terminal.MouseEvent(terminal.MouseActionPress, terminal.MouseBtnLeft, newBtn.Col, newBtn.Row))
	assert.Zero(t, g.Board().Moves())

	g.Input(press(g, 0, 0))
	g.Input(terminal.RuneEvent('r'))
	assert.Zero(t, g.Board().Moves())

	assert.True(t, g.Running())
	g.Input(terminal.MouseEvent(terminal.MouseActionPress, terminal.MouseBtnLeft, quitBtn.Col+1, quitBtn.Row))
	assert.False(t, g.Running())

	g = New(Options{})
	g.Input(terminal.RuneEvent('q'))
	assert.False(t, g.Running())
}

func TestNotRunningRendersNothing(t *testing.T) {
	g := New(Options{})
	g.Quit()

	c := newScriptConsole()
	require.NoError(t, newTestDriver(c).Run(g))

	clear := "\x1b[2J\x1b[H"
	assert.Equal(t, []string{clear, clear}, c.writes)
	assert.Equal(t, 1, c.finis)
}

func TestPlayTimeRefreshesOncePerSecondOfFrames(t *testing.T) {
	now := time.Unix(100, 0)
	g := New(Options{FPS: 4, Now: func() time.Time { return now }})

	step := func() {
		now = now.Add(250 * time.Millisecond)
		require.NoError(t, g.Update())
	}

	step()
	assert.Equal(t, 250*time.Millisecond, g.Elapsed(), "first frame refreshes")
	step()
	step()
	step()
	assert.Equal(t, 250*time.Millisecond, g.Elapsed(), "held between refreshes")
	step()
	assert.Equal(t, 1250*time.Millisecond, g.Elapsed())

	var buf bytes.Buffer
	require.NoError(t, g.Render(&buf))
	assert.Contains(t, buf.String(), "Time 1s")
	assert.Contains(t, buf.String(), "X to move")
}

func TestStatusShowsWinner(t *testing.T) {
	g := New(Options{})
	for _, c := range []Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}} {
		g.Input(press(g, c.Row, c.Col))
	}
	require.NoError(t, g.Update())

	var buf bytes.Buffer
	require.NoError(t, g.Render(&buf))
	assert.Contains(t, buf.String(), "X wins")
}
