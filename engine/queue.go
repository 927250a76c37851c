package engine

import (
	"sync"

	"github.com/lixenwraith/termgrid/terminal"
)

// DefaultQueueSize is the event queue capacity when none is configured
const DefaultQueueSize = 1024

// Queue is the FIFO channel between the ingestion goroutine and the driver
// Producers block when full; events are never dropped while the consumer runs
type Queue struct {
	ch chan terminal.Event

	done     chan struct{}
	doneOnce sync.Once

	stop     chan struct{}
	stopOnce sync.Once
}

// NewQueue creates a queue holding up to size pending events
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{
		ch:   make(chan terminal.Event, size),
		done: make(chan struct{}),
		stop: make(chan struct{}),
	}
}

// Push enqueues ev, blocking while the queue is full
// Returns false if the consumer has stopped
func (q *Queue) Push(ev terminal.Event) bool {
	select {
	case <-q.stop:
		return false
	default:
	}
	select {
	case q.ch <- ev:
		return true
	case <-q.stop:
		return false
	}
}

// TryPush enqueues ev without blocking, reporting whether it was accepted
func (q *Queue) TryPush(ev terminal.Event) bool {
	select {
	case q.ch <- ev:
		return true
	default:
		return false
	}
}

// Drain delivers every currently queued event to fn in FIFO order without blocking
func (q *Queue) Drain(fn func(terminal.Event)) int {
	n := 0
	for {
		select {
		case ev := <-q.ch:
			fn(ev)
			n++
		default:
			return n
		}
	}
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	return len(q.ch)
}

// Close marks the producer finished; pending events stay drainable
func (q *Queue) Close() {
	q.doneOnce.Do(func() { close(q.done) })
}

// Done is closed once the producer has finished
func (q *Queue) Done() <-chan struct{} {
	return q.done
}

// Stop releases producers blocked in Push; the consumer will not drain again
func (q *Queue) Stop() {
	q.stopOnce.Do(func() { close(q.stop) })
}
