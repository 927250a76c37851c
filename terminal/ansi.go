package terminal

import "io"

// Writer is the sink escape helpers write into
// Satisfied by *bytes.Buffer and *bufio.Writer
type Writer interface {
	io.Writer
	io.ByteWriter
	io.StringWriter
}

// Pre-allocated ANSI sequence fragments
var (
	csi       = []byte("\x1b[")
	csiSGR0   = []byte("\x1b[0m")
	csiClear  = []byte("\x1b[2J\x1b[H")
	csiRIS    = []byte("\x1bc") // Reset to Initial State (emergency)
	csiBold   = []byte("\x1b[1m")
	csiDim    = []byte("\x1b[2m")
	csiRevers = []byte("\x1b[7m")

	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	// DECAWM off keeps a write to the bottom-right cell from scrolling the screen
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")

	// Mouse reporting: 1000 press/release, 1002 drag, 1006 SGR extended coordinates
	csiMouseClickOn  = []byte("\x1b[?1000h")
	csiMouseClickOff = []byte("\x1b[?1000l")
	csiMouseDragOn   = []byte("\x1b[?1002h")
	csiMouseDragOff  = []byte("\x1b[?1002l")
	csiMouseSGROn    = []byte("\x1b[?1006h")
	csiMouseSGROff   = []byte("\x1b[?1006l")

	csiFg256     = []byte("\x1b[38;5;")
	csiBg256     = []byte("\x1b[48;5;")
	csiFgRGB     = []byte("\x1b[38;2;")
	csiBgRGB     = []byte("\x1b[48;2;")
	csiDefaultFg = []byte("\x1b[39m")
	csiDefaultBg = []byte("\x1b[49m")
)

// ClearScreen erases the screen and homes the cursor
func ClearScreen(w io.Writer) {
	w.Write(csiClear)
}

// Reset clears all colors and attributes
func Reset(w io.Writer) {
	w.Write(csiSGR0)
}

// Bold enables bold text until Reset
func Bold(w io.Writer) {
	w.Write(csiBold)
}

// Dim enables faint text until Reset
func Dim(w io.Writer) {
	w.Write(csiDim)
}

// Reverse swaps foreground and background until Reset
func Reverse(w io.Writer) {
	w.Write(csiRevers)
}

// DefaultColors restores the terminal's default foreground and background
func DefaultColors(w io.Writer) {
	w.Write(csiDefaultFg)
	w.Write(csiDefaultBg)
}

// MoveTo positions the cursor at a 1-based column and row
func MoveTo(w Writer, col, row int) {
	w.Write(csi)
	writeInt(w, row)
	w.WriteByte(';')
	writeInt(w, col)
	w.WriteByte('H')
}

// PutRune writes r at a 1-based column and row
func PutRune(w Writer, col, row int, r rune) {
	MoveTo(w, col, row)
	writeRune(w, r)
}

// PutString writes s starting at a 1-based column and row
func PutString(w Writer, col, row int, s string) {
	MoveTo(w, col, row)
	w.WriteString(s)
}

func writeRune(w Writer, r rune) {
	if r < 0x80 {
		w.WriteByte(byte(r))
		return
	}
	w.WriteString(string(r))
}

// writeInt writes a non-negative integer without allocation
func writeInt(w Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	w.Write(buf[i:])
}
