package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/termgrid/terminal"
)

// DefaultStaticInterval paces the static variant when no interval is set
const DefaultStaticInterval = 50 * time.Millisecond

// ErrAlreadyRun is returned when a driver is started a second time
var ErrAlreadyRun = errors.New("driver already run")

// Driver owns the interaction loop: input delivery, update, render, flush, pacing
type Driver struct {
	console  Console
	logger   *log.Logger
	clock    Clock
	interval time.Duration
	onPanic  func(any)

	queueSize int
	queue     *Queue

	// Render buffer, main goroutine only
	buf bytes.Buffer

	started atomic.Bool
	frames  atomic.Uint64
}

// Option configures a Driver
type Option func(*Driver)

// WithLogger sets the logger for lifecycle and ingestion messages
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithClock replaces the system clock used for frame pacing
func WithClock(c Clock) Option {
	return func(d *Driver) {
		if c != nil {
			d.clock = c
		}
	}
}

// WithQueueSize sets the event queue capacity
func WithQueueSize(n int) Option {
	return func(d *Driver) { d.queueSize = n }
}

// WithCrashHandler receives panics recovered in the ingestion goroutine
func WithCrashHandler(fn func(any)) Option {
	return func(d *Driver) { d.onPanic = fn }
}

// WithInterval fixes the frame interval, overriding the game's FPS
func WithInterval(interval time.Duration) Option {
	return func(d *Driver) { d.interval = interval }
}

// NewDriver creates a driver for one run against console
func NewDriver(console Console, opts ...Option) *Driver {
	d := &Driver{
		console:   console,
		logger:    log.Default(),
		clock:     SystemClock{},
		queueSize: DefaultQueueSize,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.queue = NewQueue(d.queueSize)
	return d
}

// Post injects a synthetic event behind any already queued input
// Events posted before Run are delivered on the first frame
// Returns false if the queue is full
func (d *Driver) Post(ev terminal.Event) bool {
	return d.queue.TryPush(ev)
}

// Frames returns the number of frames completed by the current or last run
func (d *Driver) Frames() uint64 {
	return d.frames.Load()
}

// Run drives a timed game until Running reports false or a callback fails
func (d *Driver) Run(game Game) error {
	interval := d.interval
	if interval <= 0 {
		interval = IntervalForFPS(game.FPS())
	}

	return d.loop(interval, game.Running, func(buf *bytes.Buffer) error {
		d.queue.Drain(game.Input)
		if err := game.Update(); err != nil {
			return fmt.Errorf("update: %w", err)
		}
		if err := game.Render(buf); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		return nil
	})
}

// RunStatic drives a static game, handing it each frame's events as one batch
func (d *Driver) RunStatic(game StaticGame) error {
	interval := d.interval
	if interval <= 0 {
		interval = DefaultStaticInterval
	}

	var batch []terminal.Event
	collect := func(ev terminal.Event) { batch = append(batch, ev) }

	return d.loop(interval, game.Running, func(buf *bytes.Buffer) error {
		batch = batch[:0]
		d.queue.Drain(collect)
		if err := game.Step(batch, buf); err != nil {
			return fmt.Errorf("step: %w", err)
		}
		return nil
	})
}

// loop is the skeleton shared by both variants
// Console release is deferred so it runs on every exit path, panics included
func (d *Driver) loop(interval time.Duration, running func() bool, frame func(*bytes.Buffer) error) (err error) {
	if !d.started.CompareAndSwap(false, true) {
		return ErrAlreadyRun
	}

	runID := uuid.NewString()

	if err := d.console.Init(); err != nil {
		return fmt.Errorf("acquire terminal: %w", err)
	}
	defer d.console.Fini()
	defer d.queue.Stop()

	d.logger.Printf("run %s: started, interval %s", runID, interval)
	defer func() {
		if err != nil {
			d.logger.Printf("run %s: stopped after %d frames: %v", runID, d.frames.Load(), err)
		} else {
			d.logger.Printf("run %s: finished after %d frames", runID, d.frames.Load())
		}
	}()

	Ingest(d.console, d.queue, d.logger, d.onPanic)

	if err := d.clearScreen(); err != nil {
		return err
	}

	sched := NewSchedulerWithClock(interval, d.clock)
	for running() {
		d.buf.Reset()
		if err := frame(&d.buf); err != nil {
			d.buf.Reset()
			return err
		}
		if err := d.flush(); err != nil {
			return err
		}
		d.frames.Add(1)
		sched.Tick()
	}

	if ticks, overruns := sched.Stats(); overruns > 0 {
		d.logger.Printf("run %s: %d of %d frames overran the interval", runID, overruns, ticks)
	}

	return d.clearScreen()
}

// flush writes the whole render buffer in one call and resets it
func (d *Driver) flush() error {
	defer d.buf.Reset()
	if d.buf.Len() == 0 {
		return nil
	}
	n, err := d.console.Write(d.buf.Bytes())
	if err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	if n < d.buf.Len() {
		return fmt.Errorf("write frame: %w", io.ErrShortWrite)
	}
	return nil
}

func (d *Driver) clearScreen() error {
	d.buf.Reset()
	terminal.ClearScreen(&d.buf)
	return d.flush()
}
