package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lixenwraith/termgrid/terminal"
)

func TestViewerLogsAndScrolls(t *testing.T) {
	v := newViewer(terminal.ColorMode256)
	var buf bytes.Buffer

	var batch []terminal.Event
	for i := 0; i < logLines+2; i++ {
		batch = append(batch, terminal.RuneEvent(rune('a'+i)))
	}
	if err := v.Step(batch, &buf); err != nil {
		t.Fatal(err)
	}

	if len(v.lines) != logLines {
		t.Fatalf("Expected %d retained lines, got %d", logLines, len(v.lines))
	}
	if v.lines[0] != "KEY   'c'" {
		t.Errorf("Expected oldest entries dropped, first is %q", v.lines[0])
	}
	if !strings.Contains(buf.String(), "┌") || !strings.Contains(buf.String(), "┘") {
		t.Error("Expected boxed panel on first step")
	}
}

func TestViewerDragHandle(t *testing.T) {
	v := newViewer(terminal.ColorMode256)
	var buf bytes.Buffer
	startCol, startRow := v.objCol, v.objRow

	v.Step([]terminal.Event{
		terminal.MouseEvent(terminal.MouseActionPress, terminal.MouseBtnLeft, startCol+1, startRow),
		terminal.MouseEvent(terminal.MouseActionHold, terminal.MouseBtnLeft, 30, 20),
	}, &buf)
	if !v.dragging || v.objCol != 30 || v.objRow != 20 {
		t.Fatalf("Expected handle dragged to 30,20, got %d,%d dragging=%v", v.objCol, v.objRow, v.dragging)
	}
	if !strings.Contains(buf.String(), "\x1b[20;30H[X]") {
		t.Error("Expected handle redrawn at new position")
	}

	v.Step([]terminal.Event{terminal.MouseEvent(terminal.MouseActionRelease, terminal.MouseBtnLeft, 30, 20)}, &buf)
	if v.dragging {
		t.Error("Expected release to end drag")
	}

	// Hold without grabbing the handle moves nothing
	v.Step([]terminal.Event{terminal.MouseEvent(terminal.MouseActionHold, terminal.MouseBtnLeft, 5, 5)}, &buf)
	if v.objCol != 30 {
		t.Error("Expected handle to stay put")
	}
}

func TestViewerQuit(t *testing.T) {
	v := newViewer(terminal.ColorMode256)
	var buf bytes.Buffer
	v.Step([]terminal.Event{terminal.KeyEvent(terminal.KeyEscape), terminal.KeyEvent(terminal.KeyCtrlC)}, &buf)
	if v.Running() {
		t.Error("Expected Ctrl+C to quit")
	}
	if len(v.lines) != 1 || !strings.Contains(v.lines[0], "escape") {
		t.Errorf("Expected escape logged before quitting, got %v", v.lines)
	}
}

func TestDescribeModifiers(t *testing.T) {
	ev := terminal.KeyEvent(terminal.KeyUp)
	ev.Modifiers = terminal.ModCtrl | terminal.ModShift
	if got := describe(ev); got != "KEY   Shift+Ctrl+up" {
		t.Errorf("Unexpected description %q", got)
	}
	if got := describe(terminal.RuneEvent('é')); got != "KEY   U+00E9" {
		t.Errorf("Unexpected description %q", got)
	}
}
