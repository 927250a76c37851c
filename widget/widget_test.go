package widget

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lixenwraith/termgrid/terminal"
)

func TestButtonHitTest(t *testing.T) {
	b := &Button{Col: 10, Row: 5, Label: "New"}
	if b.Width() != 5 {
		t.Fatalf("Expected width 5, got %d", b.Width())
	}

	tests := []struct {
		col, row int
		want     bool
	}{
		{10, 5, true},
		{14, 5, true},
		{15, 5, false},
		{9, 5, false},
		{12, 4, false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.col, tt.row); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.col, tt.row, got, tt.want)
		}
	}
}

func TestButtonWideLabel(t *testing.T) {
	b := &Button{Label: "新"}
	if b.Width() != 4 {
		t.Errorf("Expected wide rune to count two cells, width %d", b.Width())
	}
}

func TestButtonPress(t *testing.T) {
	pressed := 0
	b := &Button{Col: 1, Row: 1, Label: "Quit", OnPress: func() { pressed++ }}

	b.Input(terminal.MouseEvent(terminal.MouseActionPress, terminal.MouseBtnLeft, 3, 1))
	b.Input(terminal.MouseEvent(terminal.MouseActionRelease, terminal.MouseBtnLeft, 3, 1))
	b.Input(terminal.MouseEvent(terminal.MouseActionPress, terminal.MouseBtnRight, 3, 1))
	b.Input(terminal.MouseEvent(terminal.MouseActionPress, terminal.MouseBtnLeft, 3, 2))
	b.Input(terminal.RuneEvent('q'))

	if pressed != 1 {
		t.Errorf("Expected exactly one press, got %d", pressed)
	}
}

func TestButtonRender(t *testing.T) {
	var buf bytes.Buffer
	b := &Button{Col: 4, Row: 2, Label: "New", Mode: terminal.ColorModeTrueColor}
	if err := b.Render(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[2;4H New ") {
		t.Errorf("Expected padded label at 4,2, got %q", buf.String())
	}
	if !strings.HasSuffix(buf.String(), "\x1b[0m") {
		t.Errorf("Expected attributes reset after label, got %q", buf.String())
	}
}

func TestLabelPadsAndTruncates(t *testing.T) {
	var buf bytes.Buffer
	l := &Label{Col: 1, Row: 3, Width: 6, Text: "Time: 12345s"}
	l.Render(&buf)
	if !strings.Contains(buf.String(), "\x1b[3;1HTime: ") || strings.Contains(buf.String(), "123") {
		t.Errorf("Expected truncation to 6 cells, got %q", buf.String())
	}

	buf.Reset()
	l.Text = "ab"
	l.Render(&buf)
	if !strings.Contains(buf.String(), "\x1b[3;1Hab    ") {
		t.Errorf("Expected padding to 6 cells, got %q", buf.String())
	}
}
