package engine

import (
	"errors"
	"io"
	"log"

	"github.com/lixenwraith/termgrid/core"
	"github.com/lixenwraith/termgrid/terminal"
)

// Ingest starts the goroutine moving events from src into q
// Malformed input is dropped and reading continues; io.EOF or any other
// error ends the goroutine and closes the queue's done signal
// onPanic receives a recovered panic; nil selects core.HandleCrash
func Ingest(src Source, q *Queue, logger *log.Logger, onPanic func(any)) {
	if logger == nil {
		logger = log.Default()
	}
	core.Go(func() {
		defer q.Close()
		pump(src, q, logger)
	}, onPanic)
}

func pump(src Source, q *Queue, logger *log.Logger) {
	var dropped uint64
	for {
		ev, err := src.PollEvent()
		if err != nil {
			if errors.Is(err, terminal.ErrMalformed) {
				dropped++
				continue
			}
			if !errors.Is(err, io.EOF) {
				logger.Printf("ingest: source failed: %v", err)
			}
			if dropped > 0 {
				logger.Printf("ingest: dropped %d malformed sequences", dropped)
			}
			return
		}
		if !q.Push(ev) {
			return
		}
	}
}
