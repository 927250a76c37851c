// Package widget provides small reusable game objects.
package widget

import (
	"bytes"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termgrid/terminal"
)

// Button is a one-row clickable label
// Position is the 1-based column and row of its left edge
type Button struct {
	Col, Row int
	Label    string
	Fg, Bg   terminal.RGB
	Mode     terminal.ColorMode
	OnPress  func()
}

// Width is the label's display width plus one cell of padding per side
func (b *Button) Width() int {
	return runewidth.StringWidth(b.Label) + 2
}

// Contains reports whether a 1-based cell lies on the button
func (b *Button) Contains(col, row int) bool {
	return row == b.Row && col >= b.Col && col < b.Col+b.Width()
}

// Input fires OnPress for a left press inside the button
func (b *Button) Input(ev terminal.Event) {
	if b.OnPress != nil && ev.IsPress(terminal.MouseBtnLeft) && b.Contains(ev.Col, ev.Row) {
		b.OnPress()
	}
}

// Render draws the padded label in the button colors
func (b *Button) Render(buf *bytes.Buffer) error {
	terminal.SetFg(buf, b.Mode, b.Fg)
	terminal.SetBg(buf, b.Mode, b.Bg)
	terminal.PutString(buf, b.Col, b.Row, " "+b.Label+" ")
	terminal.Reset(buf)
	return nil
}
