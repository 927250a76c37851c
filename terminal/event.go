package terminal

import "fmt"

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventMouse
	eventInvalid // decoder marker for an undecodable record, never leaves the package
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
)

// MouseAction represents the kind of mouse event
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionHold // button held while the pointer moves
	MouseActionRelease
)

// Event is a decoded terminal input event
// Mouse coordinates are 1-based terminal columns and rows
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier

	Col         int
	Row         int
	MouseBtn    MouseButton
	MouseAction MouseAction
}

// KeyEvent builds a key event for a non-rune key
func KeyEvent(k Key) Event {
	return Event{Type: EventKey, Key: k}
}

// RuneEvent builds a key event for a printable character
func RuneEvent(r rune) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r}
}

// MouseEvent builds a mouse event at a 1-based column and row
func MouseEvent(action MouseAction, btn MouseButton, col, row int) Event {
	return Event{Type: EventMouse, MouseAction: action, MouseBtn: btn, Col: col, Row: row}
}

// IsPress reports whether the event is a press of the given button
func (e Event) IsPress(btn MouseButton) bool {
	return e.Type == EventMouse && e.MouseAction == MouseActionPress && e.MouseBtn == btn
}

// String returns human-readable button name
func (b MouseButton) String() string {
	switch b {
	case MouseBtnLeft:
		return "Left"
	case MouseBtnMiddle:
		return "Middle"
	case MouseBtnRight:
		return "Right"
	case MouseBtnWheelUp:
		return "WheelUp"
	case MouseBtnWheelDown:
		return "WheelDown"
	default:
		return "None"
	}
}

// String returns human-readable action name
func (a MouseAction) String() string {
	switch a {
	case MouseActionPress:
		return "Press"
	case MouseActionHold:
		return "Hold"
	case MouseActionRelease:
		return "Release"
	default:
		return "None"
	}
}

func (e Event) String() string {
	switch e.Type {
	case EventKey:
		if e.Key == KeyRune {
			return fmt.Sprintf("Key(%q)", e.Rune)
		}
		return fmt.Sprintf("Key(%s)", e.Key)
	case EventMouse:
		return fmt.Sprintf("Mouse(%s,%d,%d,%s)", e.MouseAction, e.Col, e.Row, e.MouseBtn)
	default:
		return "Invalid"
	}
}
