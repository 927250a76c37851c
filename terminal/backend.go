package terminal

// Backend abstracts the platform-specific tty operations
type Backend interface {
	// Init enters raw mode
	Init() error
	// Fini restores the mode saved by Init
	Fini()

	// Size returns the terminal dimensions in cells
	Size() (width, height int)

	// Write writes raw bytes to the terminal output in one call
	Write(p []byte) (int, error)

	// Read blocks until input is available, the poll interval elapses, or stopCh is closed
	// Returns (nil, nil) on an idle poll, io.EOF once stopped or the input is closed
	Read(stopCh <-chan struct{}) ([]byte, error)
}
