package engine

import (
	"bytes"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termgrid/terminal"
)

// scriptedSource returns queued results, then io.EOF
type scriptedSource struct {
	results chan pollResult
}

type pollResult struct {
	ev  terminal.Event
	err error
}

func newScriptedSource(results ...pollResult) *scriptedSource {
	s := &scriptedSource{results: make(chan pollResult, len(results))}
	for _, r := range results {
		s.results <- r
	}
	close(s.results)
	return s
}

func (s *scriptedSource) PollEvent() (terminal.Event, error) {
	r, ok := <-s.results
	if !ok {
		return terminal.Event{}, io.EOF
	}
	return r.ev, r.err
}

func waitDone(t *testing.T, q *Queue) {
	t.Helper()
	select {
	case <-q.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("ingestion did not finish")
	}
}

func TestQueueDrainFIFO(t *testing.T) {
	q := NewQueue(8)
	for _, r := range "abc" {
		require.True(t, q.Push(terminal.RuneEvent(r)))
	}
	assert.Equal(t, 3, q.Len())

	var got []rune
	n := q.Drain(func(ev terminal.Event) { got = append(got, ev.Rune) })
	assert.Equal(t, 3, n)
	assert.Equal(t, []rune("abc"), got)
	assert.Zero(t, q.Drain(func(terminal.Event) { t.Fatal("queue should be empty") }))
}

func TestQueueTryPushFull(t *testing.T) {
	q := NewQueue(1)
	assert.True(t, q.TryPush(terminal.RuneEvent('a')))
	assert.False(t, q.TryPush(terminal.RuneEvent('b')))
}

func TestQueueStopReleasesBlockedProducer(t *testing.T) {
	q := NewQueue(1)
	require.True(t, q.Push(terminal.RuneEvent('a')))

	result := make(chan bool)
	go func() { result <- q.Push(terminal.RuneEvent('b')) }()

	q.Stop()
	select {
	case ok := <-result:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("Push stayed blocked after Stop")
	}
}

func TestIngestDropsMalformedAndPreservesOrder(t *testing.T) {
	src := newScriptedSource(
		pollResult{ev: terminal.RuneEvent('a')},
		pollResult{err: terminal.ErrMalformed},
		pollResult{ev: terminal.MouseEvent(terminal.MouseActionPress, terminal.MouseBtnLeft, 4, 2)},
		pollResult{err: terminal.ErrMalformed},
		pollResult{ev: terminal.KeyEvent(terminal.KeyEscape)},
	)
	q := NewQueue(16)
	var logBuf bytes.Buffer

	Ingest(src, q, log.New(&logBuf, "", 0), nil)
	waitDone(t, q)

	var got []terminal.Event
	q.Drain(func(ev terminal.Event) { got = append(got, ev) })
	require.Len(t, got, 3)
	assert.Equal(t, 'a', got[0].Rune)
	assert.True(t, got[1].IsPress(terminal.MouseBtnLeft))
	assert.Equal(t, terminal.KeyEscape, got[2].Key)
	assert.Contains(t, logBuf.String(), "dropped 2 malformed")
}

func TestIngestStopsOnSourceError(t *testing.T) {
	boom := errors.New("read failed")
	src := newScriptedSource(
		pollResult{ev: terminal.RuneEvent('a')},
		pollResult{err: boom},
		pollResult{ev: terminal.RuneEvent('b')},
	)
	q := NewQueue(16)
	var logBuf bytes.Buffer

	Ingest(src, q, log.New(&logBuf, "", 0), nil)
	waitDone(t, q)

	assert.Equal(t, 1, q.Len(), "events after the failure must not be read")
	assert.True(t, strings.Contains(logBuf.String(), "read failed"))
}

type panickingSource struct{}

func (panickingSource) PollEvent() (terminal.Event, error) { panic("decoder bug") }

func TestIngestPanicGoesToHandler(t *testing.T) {
	recovered := make(chan any, 1)
	q := NewQueue(1)

	Ingest(panickingSource{}, q, log.New(io.Discard, "", 0), func(r any) { recovered <- r })

	select {
	case r := <-recovered:
		assert.Equal(t, "decoder bug", r)
	case <-time.After(2 * time.Second):
		t.Fatal("panic was not handed to the crash handler")
	}
	waitDone(t, q)
}
