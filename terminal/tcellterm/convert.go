package tcellterm

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termgrid/terminal"
)

var keyMap = map[tcell.Key]terminal.Key{
	tcell.KeyEscape:     terminal.KeyEscape,
	tcell.KeyEnter:      terminal.KeyEnter,
	tcell.KeyTab:        terminal.KeyTab,
	tcell.KeyBacktab:    terminal.KeyBacktab,
	tcell.KeyBackspace:  terminal.KeyBackspace,
	tcell.KeyBackspace2: terminal.KeyBackspace,
	tcell.KeyDelete:     terminal.KeyDelete,

	tcell.KeyUp:     terminal.KeyUp,
	tcell.KeyDown:   terminal.KeyDown,
	tcell.KeyLeft:   terminal.KeyLeft,
	tcell.KeyRight:  terminal.KeyRight,
	tcell.KeyHome:   terminal.KeyHome,
	tcell.KeyEnd:    terminal.KeyEnd,
	tcell.KeyPgUp:   terminal.KeyPageUp,
	tcell.KeyPgDn:   terminal.KeyPageDown,
	tcell.KeyInsert: terminal.KeyInsert,

	tcell.KeyF1:  terminal.KeyF1,
	tcell.KeyF2:  terminal.KeyF2,
	tcell.KeyF3:  terminal.KeyF3,
	tcell.KeyF4:  terminal.KeyF4,
	tcell.KeyF5:  terminal.KeyF5,
	tcell.KeyF6:  terminal.KeyF6,
	tcell.KeyF7:  terminal.KeyF7,
	tcell.KeyF8:  terminal.KeyF8,
	tcell.KeyF9:  terminal.KeyF9,
	tcell.KeyF10: terminal.KeyF10,
	tcell.KeyF11: terminal.KeyF11,
	tcell.KeyF12: terminal.KeyF12,

	tcell.KeyCtrlA: terminal.KeyCtrlA,
	tcell.KeyCtrlB: terminal.KeyCtrlB,
	tcell.KeyCtrlC: terminal.KeyCtrlC,
	tcell.KeyCtrlD: terminal.KeyCtrlD,
	tcell.KeyCtrlE: terminal.KeyCtrlE,
	tcell.KeyCtrlF: terminal.KeyCtrlF,
	tcell.KeyCtrlG: terminal.KeyCtrlG,
	tcell.KeyCtrlK: terminal.KeyCtrlK,
	tcell.KeyCtrlL: terminal.KeyCtrlL,
	tcell.KeyCtrlN: terminal.KeyCtrlN,
	tcell.KeyCtrlO: terminal.KeyCtrlO,
	tcell.KeyCtrlP: terminal.KeyCtrlP,
	tcell.KeyCtrlQ: terminal.KeyCtrlQ,
	tcell.KeyCtrlR: terminal.KeyCtrlR,
	tcell.KeyCtrlS: terminal.KeyCtrlS,
	tcell.KeyCtrlT: terminal.KeyCtrlT,
	tcell.KeyCtrlU: terminal.KeyCtrlU,
	tcell.KeyCtrlV: terminal.KeyCtrlV,
	tcell.KeyCtrlW: terminal.KeyCtrlW,
	tcell.KeyCtrlX: terminal.KeyCtrlX,
	tcell.KeyCtrlY: terminal.KeyCtrlY,
	tcell.KeyCtrlZ: terminal.KeyCtrlZ,

	tcell.KeyCtrlSpace:      terminal.KeyCtrlSpace,
	tcell.KeyCtrlBackslash:  terminal.KeyCtrlBackslash,
	tcell.KeyCtrlRightSq:    terminal.KeyCtrlBracketRight,
	tcell.KeyCtrlCarat:      terminal.KeyCtrlCaret,
	tcell.KeyCtrlUnderscore: terminal.KeyCtrlUnderscore,
}

func convertMods(m tcell.ModMask) terminal.Modifier {
	var out terminal.Modifier
	if m&tcell.ModShift != 0 {
		out |= terminal.ModShift
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		out |= terminal.ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		out |= terminal.ModCtrl
	}
	return out
}

func convertKey(ev *tcell.EventKey) (terminal.Event, bool) {
	if ev.Key() == tcell.KeyRune {
		out := terminal.RuneEvent(ev.Rune())
		out.Modifiers = convertMods(ev.Modifiers())
		return out, true
	}
	k, ok := keyMap[ev.Key()]
	if !ok {
		return terminal.Event{}, false
	}
	out := terminal.KeyEvent(k)
	out.Modifiers = convertMods(ev.Modifiers())
	return out, true
}

// Primary buttons in the order transitions are reported
var buttonOrder = []struct {
	mask tcell.ButtonMask
	btn  terminal.MouseButton
}{
	{tcell.Button1, terminal.MouseBtnLeft},
	{tcell.Button3, terminal.MouseBtnMiddle},
	{tcell.Button2, terminal.MouseBtnRight},
}

// convertMouse derives press, hold and release from the change in button state
// tcell reports state, not transitions; motion with no button held yields nothing
func (c *Console) convertMouse(ev *tcell.EventMouse) []terminal.Event {
	x, y := ev.Position()
	col, row := x+1, y+1
	mods := convertMods(ev.Modifiers())
	state := ev.Buttons()

	var out []terminal.Event
	emit := func(action terminal.MouseAction, btn terminal.MouseButton) {
		e := terminal.MouseEvent(action, btn, col, row)
		e.Modifiers = mods
		out = append(out, e)
	}

	if state&tcell.WheelUp != 0 {
		emit(terminal.MouseActionPress, terminal.MouseBtnWheelUp)
	}
	if state&tcell.WheelDown != 0 {
		emit(terminal.MouseActionPress, terminal.MouseBtnWheelDown)
	}

	for _, b := range buttonOrder {
		was := c.buttons&b.mask != 0
		now := state&b.mask != 0
		switch {
		case !was && now:
			emit(terminal.MouseActionPress, b.btn)
		case was && now:
			emit(terminal.MouseActionHold, b.btn)
		case was && !now:
			emit(terminal.MouseActionRelease, b.btn)
		}
	}

	c.buttons = state & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	return out
}
