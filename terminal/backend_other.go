//go:build !unix

package terminal

import "io"

// otherBackend reports the missing tty capability on platforms without a raw-mode implementation
type otherBackend struct{}

func newBackend() Backend { return otherBackend{} }

func (otherBackend) Init() error                          { return ErrNotTerminal }
func (otherBackend) Fini()                                {}
func (otherBackend) Size() (int, int)                     { return 80, 24 }
func (otherBackend) Write(p []byte) (int, error)          { return 0, ErrNotTerminal }
func (otherBackend) Read(<-chan struct{}) ([]byte, error) { return nil, io.EOF }

func resetTerminalMode() {}
