// Package core holds process-wide crash handling shared by the engine and binaries.
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/termgrid/terminal"
)

// Finalizer restores terminal state; satisfied by every console
type Finalizer interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finalizer

	// Overridable for tests
	crashOut  io.Writer = os.Stderr
	crashExit           = os.Exit
)

// RegisterTerminal sets the console HandleCrash finalizes before reporting
// Passing nil falls back to EmergencyReset on stdout
func RegisterTerminal(f Finalizer) {
	crashMu.Lock()
	crashTerminal = f
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler: restores the terminal, prints the stack trace, exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	f := crashTerminal
	crashMu.Unlock()

	if f != nil {
		f.Fini()
	} else {
		terminal.EmergencyReset(os.Stdout)
	}

	// \r\n keeps the trace readable if raw mode survived the reset
	fmt.Fprintf(crashOut, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())

	crashExit(1)
}

// Go runs fn in a new goroutine with panic recovery
// handler receives the recovered value; nil selects HandleCrash
func Go(fn func(), handler func(any)) {
	if handler == nil {
		handler = HandleCrash
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				handler(r)
			}
		}()
		fn()
	}()
}
