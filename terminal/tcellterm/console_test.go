package tcellterm

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termgrid/terminal"
)

func newSimConsole(t *testing.T) (*Console, tcell.SimulationScreen, *bytes.Buffer) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	var out bytes.Buffer
	c := NewWithScreen(screen, &out)
	require.NoError(t, c.Init())
	screen.SetSize(80, 24)
	return c, screen, &out
}

func TestConsoleKeys(t *testing.T) {
	c, screen, _ := newSimConsole(t)
	defer c.Fini()

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyUp, 0, tcell.ModCtrl)

	ev, err := c.PollEvent()
	require.NoError(t, err)
	assert.Equal(t, terminal.KeyRune, ev.Key)
	assert.Equal(t, 'x', ev.Rune)

	ev, err = c.PollEvent()
	require.NoError(t, err)
	assert.Equal(t, terminal.KeyEscape, ev.Key)

	ev, err = c.PollEvent()
	require.NoError(t, err)
	assert.Equal(t, terminal.KeyUp, ev.Key)
	assert.Equal(t, terminal.ModCtrl, ev.Modifiers)
}

func TestConsoleMouseTransitions(t *testing.T) {
	c, screen, _ := newSimConsole(t)
	defer c.Fini()

	screen.InjectMouse(4, 2, tcell.ButtonNone, tcell.ModNone) // motion only, dropped
	screen.InjectMouse(4, 2, tcell.Button1, tcell.ModNone)
	screen.InjectMouse(5, 2, tcell.Button1, tcell.ModNone)
	screen.InjectMouse(5, 2, tcell.ButtonNone, tcell.ModNone)
	screen.InjectMouse(0, 0, tcell.Button2, tcell.ModNone)

	want := []terminal.Event{
		terminal.MouseEvent(terminal.MouseActionPress, terminal.MouseBtnLeft, 5, 3),
		terminal.MouseEvent(terminal.MouseActionHold, terminal.MouseBtnLeft, 6, 3),
		terminal.MouseEvent(terminal.MouseActionRelease, terminal.MouseBtnLeft, 6, 3),
		terminal.MouseEvent(terminal.MouseActionPress, terminal.MouseBtnRight, 1, 1),
	}
	for i, w := range want {
		ev, err := c.PollEvent()
		require.NoError(t, err, "event %d", i)
		assert.Equal(t, w, ev, "event %d", i)
	}
}

func TestConsoleUnmappedKeyIsMalformed(t *testing.T) {
	c, screen, _ := newSimConsole(t)
	defer c.Fini()

	screen.InjectKey(tcell.KeyPrint, 0, tcell.ModNone)
	_, err := c.PollEvent()
	assert.True(t, errors.Is(err, terminal.ErrMalformed))
}

func TestConsoleFiniEndsInput(t *testing.T) {
	c, _, out := newSimConsole(t)

	n, err := c.Write([]byte("frame"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "frame", out.String())

	c.Fini()
	c.Fini()

	_, err = c.PollEvent()
	assert.ErrorIs(t, err, io.EOF)
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) { return len(p) / 2, nil }

func TestConsoleShortWrite(t *testing.T) {
	c := NewWithScreen(tcell.NewSimulationScreen("UTF-8"), shortWriter{})
	_, err := c.Write([]byte("frame"))
	assert.ErrorIs(t, err, io.ErrShortWrite)
	c.Fini() // never initialized
}
