package widget

import (
	"bytes"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termgrid/terminal"
)

// Label draws text at a fixed position, padded to Width to erase previous content
type Label struct {
	Col, Row int
	Width    int
	Text     string
	Fg       terminal.RGB
	Mode     terminal.ColorMode
}

// Input ignores events
func (l *Label) Input(terminal.Event) {}

// Render writes the text truncated or padded to Width display cells
func (l *Label) Render(buf *bytes.Buffer) error {
	text := l.Text
	if l.Width > 0 {
		text = runewidth.FillRight(runewidth.Truncate(text, l.Width, ""), l.Width)
	}
	terminal.SetFg(buf, l.Mode, l.Fg)
	terminal.PutString(buf, l.Col, l.Row, text)
	terminal.Reset(buf)
	return nil
}
