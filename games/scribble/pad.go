// Package scribble is a drawing pad on the engine's static loop.
//
// Left press or drag draws an x under the pointer, typed characters echo at
// the start of row 2, a right press clears the screen and Escape quits. Keys
// are ignored while the right button is held.
package scribble

import (
	"bytes"
	"unicode"

	"github.com/lixenwraith/termgrid/terminal"
	"github.com/lixenwraith/termgrid/theme"
)

const (
	brush   = 'x'
	echoCol = 1
	echoRow = 2
	help    = "left: draw  right: clear  esc: quit"
)

// Pad implements engine.StaticGame
type Pad struct {
	mode    terminal.ColorMode
	palette theme.Palette

	running   bool
	rightHeld bool
	needHelp  bool
	strokes   int
}

// New creates a pad drawing in the given color mode
func New(mode terminal.ColorMode, palette *theme.Palette) *Pad {
	p := &Pad{mode: mode, palette: theme.Default(), running: true, needHelp: true}
	if palette != nil {
		p.palette = *palette
	}
	return p
}

// Strokes returns the number of brush marks drawn since the last clear
func (p *Pad) Strokes() int { return p.strokes }

// Step applies one frame's events in order
func (p *Pad) Step(events []terminal.Event, buf *bytes.Buffer) error {
	if p.needHelp {
		p.drawHelp(buf)
		p.needHelp = false
	}

	for _, ev := range events {
		if !p.running {
			break
		}
		switch ev.Type {
		case terminal.EventMouse:
			p.mouse(ev, buf)
		case terminal.EventKey:
			p.key(ev, buf)
		}
	}
	return nil
}

func (p *Pad) mouse(ev terminal.Event, buf *bytes.Buffer) {
	switch ev.MouseBtn {
	case terminal.MouseBtnLeft:
		if ev.MouseAction == terminal.MouseActionPress || ev.MouseAction == terminal.MouseActionHold {
			terminal.SetFg(buf, p.mode, p.palette.X)
			terminal.PutRune(buf, ev.Col, ev.Row, brush)
			terminal.Reset(buf)
			p.strokes++
		}
	case terminal.MouseBtnRight:
		switch ev.MouseAction {
		case terminal.MouseActionPress:
			p.rightHeld = true
			terminal.ClearScreen(buf)
			p.strokes = 0
			p.drawHelp(buf)
		case terminal.MouseActionRelease:
			p.rightHeld = false
		}
	}
}

func (p *Pad) key(ev terminal.Event, buf *bytes.Buffer) {
	if ev.Key == terminal.KeyEscape {
		p.running = false
		return
	}
	if p.rightHeld || ev.Key != terminal.KeyRune || !unicode.IsPrint(ev.Rune) {
		return
	}
	terminal.SetFg(buf, p.mode, p.palette.Text)
	terminal.PutRune(buf, echoCol, echoRow, ev.Rune)
	terminal.Reset(buf)
}

func (p *Pad) drawHelp(buf *bytes.Buffer) {
	terminal.Dim(buf)
	terminal.PutString(buf, 1, 1, help)
	terminal.Reset(buf)
}

// Running reports whether Escape has been pressed
func (p *Pad) Running() bool { return p.running }
