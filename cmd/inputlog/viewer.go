package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termgrid/boxdraw"
	"github.com/lixenwraith/termgrid/terminal"
)

const (
	logLines  = 10
	panelCol  = 1
	panelRow  = 2
	panelW    = 60
	handle    = "[X]"
	handleLen = 3
)

// viewer logs every decoded event and lets the pointer drag a handle around
type viewer struct {
	mode terminal.ColorMode

	lines   []string
	running bool

	objCol, objRow int
	prevCol        int
	prevRow        int
	dragging       bool

	drawn bool
}

func newViewer(mode terminal.ColorMode) *viewer {
	return &viewer{
		mode:    mode,
		running: true,
		objCol:  panelCol + 2,
		objRow:  panelRow + logLines + 3,
	}
}

func (v *viewer) Running() bool { return v.running }

// Step records the batch, moves the handle and redraws what changed
func (v *viewer) Step(events []terminal.Event, buf *bytes.Buffer) error {
	if !v.drawn {
		v.drawFrame(buf)
		v.drawn = true
	}
	if len(events) == 0 {
		return nil
	}

	v.prevCol, v.prevRow = v.objCol, v.objRow
	for _, ev := range events {
		if ev.Type == terminal.EventKey && (ev.Key == terminal.KeyCtrlC || ev.Key == terminal.KeyCtrlQ) {
			v.running = false
			return nil
		}
		v.record(describe(ev))
		if ev.Type == terminal.EventMouse {
			v.drag(ev)
		}
	}

	v.drawLog(buf)
	v.drawHandle(buf)
	return nil
}

func (v *viewer) record(line string) {
	if len(v.lines) == logLines {
		copy(v.lines, v.lines[1:])
		v.lines = v.lines[:logLines-1]
	}
	v.lines = append(v.lines, line)
}

func (v *viewer) onHandle(col, row int) bool {
	return row == v.objRow && col >= v.objCol && col < v.objCol+handleLen
}

func (v *viewer) drag(ev terminal.Event) {
	switch ev.MouseAction {
	case terminal.MouseActionPress:
		if ev.MouseBtn == terminal.MouseBtnLeft && v.onHandle(ev.Col, ev.Row) {
			v.dragging = true
		}
	case terminal.MouseActionHold:
		if v.dragging {
			v.objCol, v.objRow = max(ev.Col, 1), max(ev.Row, 1)
		}
	case terminal.MouseActionRelease:
		v.dragging = false
	}
}

// describe formats an event with its modifiers
func describe(ev terminal.Event) string {
	var mods strings.Builder
	if ev.Modifiers&terminal.ModShift != 0 {
		mods.WriteString("Shift+")
	}
	if ev.Modifiers&terminal.ModAlt != 0 {
		mods.WriteString("Alt+")
	}
	if ev.Modifiers&terminal.ModCtrl != 0 {
		mods.WriteString("Ctrl+")
	}

	switch ev.Type {
	case terminal.EventKey:
		if ev.Key == terminal.KeyRune {
			if ev.Rune >= 0x20 && ev.Rune < 0x7f {
				return fmt.Sprintf("KEY   %s'%c'", mods.String(), ev.Rune)
			}
			return fmt.Sprintf("KEY   %sU+%04X", mods.String(), ev.Rune)
		}
		return fmt.Sprintf("KEY   %s%s", mods.String(), ev.Key)
	case terminal.EventMouse:
		return fmt.Sprintf("MOUSE %s%s %s @ (%d,%d)", mods.String(), ev.MouseBtn, ev.MouseAction, ev.Col, ev.Row)
	}
	return ev.String()
}

// drawFrame boxes the log panel with light lines
func (v *viewer) drawFrame(buf *bytes.Buffer) {
	top, bottom := panelRow, panelRow+logLines+1
	right := panelCol + panelW + 1
	horiz := string(boxdraw.HorizontalRun(boxdraw.Light))

	terminal.Bold(buf)
	terminal.PutString(buf, panelCol, 1, "Input log: keys, clicks and drags. Drag the [X]. Ctrl+C quits")
	terminal.Reset(buf)

	terminal.PutString(buf, panelCol, top, string(boxdraw.Compose(boxdraw.Junction{Right: boxdraw.Light, Bottom: boxdraw.Light}))+
		strings.Repeat(horiz, panelW)+
		string(boxdraw.Compose(boxdraw.Junction{Left: boxdraw.Light, Bottom: boxdraw.Light})))
	for row := top + 1; row < bottom; row++ {
		terminal.PutRune(buf, panelCol, row, boxdraw.VerticalRun(boxdraw.Light))
		terminal.PutRune(buf, right, row, boxdraw.VerticalRun(boxdraw.Light))
	}
	terminal.PutString(buf, panelCol, bottom, string(boxdraw.Compose(boxdraw.Junction{Top: boxdraw.Light, Right: boxdraw.Light}))+
		strings.Repeat(horiz, panelW)+
		string(boxdraw.Compose(boxdraw.Junction{Top: boxdraw.Light, Left: boxdraw.Light})))
}

func (v *viewer) drawLog(buf *bytes.Buffer) {
	for i := 0; i < logLines; i++ {
		line := ""
		if i < len(v.lines) {
			line = v.lines[i]
		}
		terminal.PutString(buf, panelCol+1, panelRow+1+i, runewidth.FillRight(runewidth.Truncate(line, panelW, "…"), panelW))
	}
}

func (v *viewer) drawHandle(buf *bytes.Buffer) {
	if v.prevCol != v.objCol || v.prevRow != v.objRow {
		terminal.PutString(buf, v.prevCol, v.prevRow, strings.Repeat(" ", handleLen))
	}
	fg := terminal.RGB{R: 100, G: 255, B: 100}
	if v.dragging {
		fg = terminal.RGB{R: 255, G: 255, B: 100}
	}
	terminal.SetFg(buf, v.mode, fg)
	terminal.Bold(buf)
	terminal.PutString(buf, v.objCol, v.objRow, handle)
	terminal.Reset(buf)
}
