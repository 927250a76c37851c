package terminal

import "unicode/utf8"

// Scan limits for escape sequences; longer runs are treated as garbage
const (
	maxCSILen      = 16
	maxSGRMouseLen = 32
)

// decoder assembles a raw input byte stream into events
// Partial sequences at a read boundary stay buffered until the next feed
type decoder struct {
	buf []byte
	out []Event
}

func newDecoder() *decoder {
	return &decoder{
		buf: make([]byte, 0, 256),
		out: make([]Event, 0, 16),
	}
}

// feed appends data and decodes every complete record
// Returned slice is valid until the next feed or flushEscape call
func (d *decoder) feed(data []byte) []Event {
	d.out = d.out[:0]
	d.buf = append(d.buf, data...)

	consumed := d.parse(d.buf)
	if consumed >= len(d.buf) {
		d.buf = d.buf[:0]
	} else if consumed > 0 {
		n := copy(d.buf, d.buf[consumed:])
		d.buf = d.buf[:n]
	}
	return d.out
}

// flushEscape resolves a lone buffered ESC into an Escape key once input goes idle
func (d *decoder) flushEscape() []Event {
	d.out = d.out[:0]
	if len(d.buf) == 1 && d.buf[0] == 0x1b {
		d.out = append(d.out, KeyEvent(KeyEscape))
		d.buf = d.buf[:0]
	}
	return d.out
}

func (d *decoder) emit(ev Event) {
	d.out = append(d.out, ev)
}

// parse decodes as much as possible and returns bytes consumed, stopping on an incomplete sequence
func (d *decoder) parse(data []byte) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		switch {
		case b >= 0x20 && b < 0x7f:
			d.emit(RuneEvent(rune(b)))
			i++

		case b == 0x1b:
			if i+1 >= n {
				return i
			}
			consumed, ev := parseEscape(data[i:])
			if consumed == 0 {
				return i
			}
			d.emit(ev)
			i += consumed

		case b < 0x20:
			d.emit(parseControl(b))
			i++

		case b == 0x7f:
			d.emit(KeyEvent(KeyBackspace))
			i++

		default:
			if !utf8.FullRune(data[i:]) {
				return i
			}
			r, size := utf8.DecodeRune(data[i:])
			if r == utf8.RuneError && size <= 1 {
				d.emit(Event{Type: eventInvalid})
				i++
				continue
			}
			d.emit(RuneEvent(r))
			i += size
		}
	}
	return i
}

// parseEscape parses a sequence starting with ESC, returns 0 on incomplete
func parseEscape(data []byte) (int, Event) {
	if len(data) < 2 {
		return 0, Event{}
	}

	switch {
	case data[1] == 0x1b:
		return 2, Event{Type: EventKey, Key: KeyEscape, Modifiers: ModAlt}
	case data[1] == '[':
		return parseCSI(data)
	case data[1] == 'O':
		return parseSS3(data)
	case data[1] < 0x20:
		ev := parseControl(data[1])
		ev.Modifiers |= ModAlt
		return 2, ev
	case data[1] < 0x7f:
		return 2, Event{Type: EventKey, Key: KeyRune, Rune: rune(data[1]), Modifiers: ModAlt}
	}

	// ESC followed by a non-ASCII byte: drop the ESC, leave the byte for the next pass
	return 1, Event{Type: eventInvalid}
}

func isCSIFinal(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~'
}

func parseCSI(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}

	if data[2] == '<' {
		return parseSGRMouse(data)
	}

	for end := 2; end < len(data); end++ {
		if end >= maxCSILen {
			return end, Event{Type: eventInvalid}
		}
		b := data[end]
		if isCSIFinal(b) {
			if key, mod, ok := lookupCSI(data[2 : end+1]); ok {
				return end + 1, Event{Type: EventKey, Key: key, Modifiers: mod}
			}
			return end + 1, Event{Type: eventInvalid}
		}
		if b < 0x20 || b > 0x7e {
			return end, Event{Type: eventInvalid}
		}
	}
	return 0, Event{}
}

func parseSS3(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}
	if key, mod, ok := lookupSS3(data[2:3]); ok {
		return 3, Event{Type: EventKey, Key: key, Modifiers: mod}
	}
	return 3, Event{Type: eventInvalid}
}

// parseSGRMouse parses ESC [ < Btn ; Col ; Row M|m
func parseSGRMouse(data []byte) (int, Event) {
	end := 3
	for ; end < len(data); end++ {
		if data[end] == 'M' || data[end] == 'm' {
			break
		}
		if end >= maxSGRMouseLen {
			return end, Event{Type: eventInvalid}
		}
	}
	if end >= len(data) {
		return 0, Event{}
	}

	btn, col, row, ok := parseSGRParams(data[3:end])
	if !ok || col < 1 || row < 1 {
		return end + 1, Event{Type: eventInvalid}
	}

	ev := Event{Type: EventMouse, Col: col, Row: row}

	// Bits 0-1 button (3 = none), bit 5 motion, bit 6 wheel, bits 2-4 modifiers
	buttonID := btn & 0x03
	isMotion := btn&32 != 0
	isWheel := btn&64 != 0

	switch {
	case isWheel:
		if buttonID == 0 {
			ev.MouseBtn = MouseBtnWheelUp
		} else {
			ev.MouseBtn = MouseBtnWheelDown
		}
		ev.MouseAction = MouseActionPress

	default:
		switch buttonID {
		case 0:
			ev.MouseBtn = MouseBtnLeft
		case 1:
			ev.MouseBtn = MouseBtnMiddle
		case 2:
			ev.MouseBtn = MouseBtnRight
		default:
			ev.MouseBtn = MouseBtnNone
		}

		switch {
		case data[end] == 'm':
			ev.MouseAction = MouseActionRelease
		case isMotion && ev.MouseBtn == MouseBtnNone:
			// Bare motion is not part of the event model
			return end + 1, Event{Type: eventInvalid}
		case isMotion:
			ev.MouseAction = MouseActionHold
		default:
			ev.MouseAction = MouseActionPress
		}
	}

	if btn&4 != 0 {
		ev.Modifiers |= ModShift
	}
	if btn&8 != 0 {
		ev.Modifiers |= ModAlt
	}
	if btn&16 != 0 {
		ev.Modifiers |= ModCtrl
	}

	return end + 1, ev
}

// parseSGRParams extracts btn, col, row from "Btn;Col;Row"
func parseSGRParams(data []byte) (btn, col, row int, ok bool) {
	state := 0
	val := 0
	digits := 0

	for _, b := range data {
		switch {
		case b == ';':
			if digits == 0 {
				return 0, 0, 0, false
			}
			switch state {
			case 0:
				btn = val
			case 1:
				col = val
			default:
				return 0, 0, 0, false
			}
			state++
			val = 0
			digits = 0
		case b >= '0' && b <= '9':
			val = val*10 + int(b-'0')
			digits++
			if val > 9999 {
				return 0, 0, 0, false
			}
		default:
			return 0, 0, 0, false
		}
	}

	if state != 2 || digits == 0 {
		return 0, 0, 0, false
	}
	return btn, col, val, true
}

// parseControl maps C0 control bytes to keys
func parseControl(b byte) Event {
	switch b {
	case 0x00:
		return KeyEvent(KeyCtrlSpace)
	case 0x08:
		return KeyEvent(KeyBackspace)
	case 0x09:
		return KeyEvent(KeyTab)
	case 0x0a, 0x0d:
		return KeyEvent(KeyEnter)
	case 0x1b:
		return KeyEvent(KeyEscape)
	case 0x1c:
		return KeyEvent(KeyCtrlBackslash)
	case 0x1d:
		return KeyEvent(KeyCtrlBracketRight)
	case 0x1e:
		return KeyEvent(KeyCtrlCaret)
	case 0x1f:
		return KeyEvent(KeyCtrlUnderscore)
	}
	if k, ok := ctrlLetters[b]; ok {
		return KeyEvent(k)
	}
	return Event{Type: eventInvalid}
}

var ctrlLetters = map[byte]Key{
	0x01: KeyCtrlA,
	0x02: KeyCtrlB,
	0x03: KeyCtrlC,
	0x04: KeyCtrlD,
	0x05: KeyCtrlE,
	0x06: KeyCtrlF,
	0x07: KeyCtrlG,
	0x0b: KeyCtrlK,
	0x0c: KeyCtrlL,
	0x0e: KeyCtrlN,
	0x0f: KeyCtrlO,
	0x10: KeyCtrlP,
	0x11: KeyCtrlQ,
	0x12: KeyCtrlR,
	0x13: KeyCtrlS,
	0x14: KeyCtrlT,
	0x15: KeyCtrlU,
	0x16: KeyCtrlV,
	0x17: KeyCtrlW,
	0x18: KeyCtrlX,
	0x19: KeyCtrlY,
	0x1a: KeyCtrlZ,
}
