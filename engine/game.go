package engine

import (
	"bytes"

	"github.com/lixenwraith/termgrid/terminal"
)

// Game is the timed-variant contract driven by Driver.Run
// All methods are called on the driver goroutine only
type Game interface {
	// Input receives one queued event, in arrival order
	Input(ev terminal.Event)
	// Update advances game state once per frame after all input is delivered
	Update() error
	// Render appends the frame's terminal output to buf; buf is empty on entry
	Render(buf *bytes.Buffer) error
	// Running reports whether the loop should continue; checked before every frame
	Running() bool
	// FPS is the target frame rate, read once when the run starts
	FPS() float64
}

// StaticGame is the untimed-variant contract driven by Driver.RunStatic
// Step receives every event drained this frame and renders into buf
type StaticGame interface {
	Step(events []terminal.Event, buf *bytes.Buffer) error
	Running() bool
}

// Object is a renderable element that can react to input
type Object interface {
	Input(ev terminal.Event)
	Render(buf *bytes.Buffer) error
}

// Group is an ordered composite of objects
type Group []Object

// Input delivers ev to every member in slice order
func (g Group) Input(ev terminal.Event) {
	for _, o := range g {
		o.Input(ev)
	}
}

// Render draws members in slice order, stopping at the first error
func (g Group) Render(buf *bytes.Buffer) error {
	for _, o := range g {
		if err := o.Render(buf); err != nil {
			return err
		}
	}
	return nil
}

// Source yields decoded terminal events; io.EOF marks closure
type Source interface {
	PollEvent() (terminal.Event, error)
}

// Console is the terminal collaborator the driver runs against
// Fini must be idempotent and safe after a failed Init
type Console interface {
	Source
	Init() error
	Fini()
	Write(p []byte) (int, error)
}
