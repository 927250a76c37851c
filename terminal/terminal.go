package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	// ErrMalformed marks an input record that could not be decoded; callers drop it and keep reading
	ErrMalformed = errors.New("malformed input record")
	// ErrNotTerminal is returned by Init when the input is not a tty
	ErrNotTerminal = errors.New("not a terminal")
)

// Terminal is a raw ANSI console on the process tty
// Init and Fini bracket a session; PollEvent is meant for a single reader goroutine
type Terminal struct {
	backend   Backend
	colorMode ColorMode

	dec     *decoder
	pending []Event
	stopCh  chan struct{}

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a terminal on stdin/stdout
// Color mode is detected from the environment unless given
func New(colorMode ...ColorMode) *Terminal {
	c := DetectColorMode()
	if len(colorMode) > 0 {
		c = colorMode[0]
	}
	return newWithBackend(newBackend(), c)
}

func newWithBackend(b Backend, c ColorMode) *Terminal {
	return &Terminal{
		backend:   b,
		colorMode: c,
		dec:       newDecoder(),
		stopCh:    make(chan struct{}),
	}
}

// Init enters raw mode, the alternate screen, hides the cursor and enables mouse reporting
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return err
	}

	t.writeRaw(csiAltScreenEnter, csiCursorHide, csiAutoWrapOff,
		csiMouseSGROn, csiMouseClickOn, csiMouseDragOn)

	t.initialized = true
	return nil
}

// Fini restores the terminal state saved by Init. Safe to call multiple times
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	// Unblock the reader before tearing down the mode it reads under
	close(t.stopCh)

	t.writeRaw(csiMouseDragOff, csiMouseClickOff, csiMouseSGROff,
		csiSGR0, csiCursorShow, csiAltScreenExit, csiAutoWrapOn)

	t.backend.Fini()
	t.finalized = true
}

// Size returns current terminal dimensions
func (t *Terminal) Size() (int, int) {
	return t.backend.Size()
}

// ColorMode returns the color capability output should target
func (t *Terminal) ColorMode() ColorMode {
	return t.colorMode
}

// Write sends p to the terminal in a single backend write
func (t *Terminal) Write(p []byte) (int, error) {
	n, err := t.backend.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return n, err
}

// PollEvent blocks until the next decoded event
// Returns an error wrapping ErrMalformed for an undecodable record, io.EOF once the input closes
func (t *Terminal) PollEvent() (Event, error) {
	for {
		if len(t.pending) > 0 {
			ev := t.pending[0]
			t.pending = t.pending[1:]
			if ev.Type == eventInvalid {
				return Event{}, ErrMalformed
			}
			return ev, nil
		}

		data, err := t.backend.Read(t.stopCh)
		if err != nil {
			return Event{}, err
		}

		if len(data) == 0 {
			// Idle poll: a lone ESC is the Escape key, not a sequence prefix
			t.queue(t.dec.flushEscape())
			continue
		}
		t.queue(t.dec.feed(data))
	}
}

func (t *Terminal) queue(evs []Event) {
	if len(evs) == 0 {
		return
	}
	// Events are copied out; the decoder reuses its output slice
	t.pending = append(t.pending, evs...)
}

func (t *Terminal) writeRaw(seqs ...[]byte) {
	for _, s := range seqs {
		t.backend.Write(s)
	}
}

// EmergencyReset attempts to restore the terminal to a sane state
// Call from panic recovery when Fini cannot run normally
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseDragOff)
	w.Write(csiMouseClickOff)
	w.Write(csiMouseSGROff)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}

// Describe is a short human-readable summary used in startup logs
func (t *Terminal) Describe() string {
	w, h := t.Size()
	return fmt.Sprintf("ansi %dx%d %s", w, h, t.colorMode)
}
