// Package tcellterm implements the engine console on top of a tcell screen.
//
// tcell owns terminal acquisition and input decoding; frame bytes produced by
// the game are written to a separate writer, normally stdout, in one call.
package tcellterm

import (
	"fmt"
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termgrid/terminal"
)

// Console adapts a tcell.Screen to the engine console contract
type Console struct {
	screen tcell.Screen
	out    io.Writer

	mu     sync.Mutex
	active bool

	// Ingestion goroutine only
	buttons tcell.ButtonMask
	pending []terminal.Event
}

// New creates a console on the process terminal writing frames to out
func New(out io.Writer) (*Console, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(screen, out), nil
}

// NewWithScreen wraps an existing screen, such as a simulation screen in tests
func NewWithScreen(screen tcell.Screen, out io.Writer) *Console {
	return &Console{screen: screen, out: out}
}

// Init acquires the terminal and enables click and drag reporting
func (c *Console) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active {
		return nil
	}
	if err := c.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	c.screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	c.screen.HideCursor()
	c.active = true
	return nil
}

// Fini restores the terminal; safe to call repeatedly or after a failed Init
// PollEvent returns io.EOF once the screen is finalized
func (c *Console) Fini() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.active {
		return
	}
	c.active = false
	c.screen.DisableMouse()
	c.screen.Fini()
}

// Write sends a full frame to the output writer
func (c *Console) Write(p []byte) (int, error) {
	n, err := c.out.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return n, err
}

// Size returns the screen dimensions in cells
func (c *Console) Size() (int, int) {
	return c.screen.Size()
}

// PollEvent blocks for the next key or mouse event
// Unmapped keys return terminal.ErrMalformed; resize and other screen events are skipped
func (c *Console) PollEvent() (terminal.Event, error) {
	for {
		if len(c.pending) > 0 {
			ev := c.pending[0]
			c.pending = c.pending[1:]
			return ev, nil
		}

		raw := c.screen.PollEvent()
		if raw == nil {
			return terminal.Event{}, io.EOF
		}

		switch ev := raw.(type) {
		case *tcell.EventKey:
			out, ok := convertKey(ev)
			if !ok {
				return terminal.Event{}, terminal.ErrMalformed
			}
			return out, nil
		case *tcell.EventMouse:
			c.pending = append(c.pending, c.convertMouse(ev)...)
		}
	}
}
