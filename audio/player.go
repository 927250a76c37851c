package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the output rate cues are synthesized at
const SampleRate = beep.SampleRate(48000)

// Player plays cues without blocking the caller
type Player interface {
	Play(c Cue)
}

// Nop discards every cue; used when muted or no audio device is present
type Nop struct{}

func (Nop) Play(Cue) {}

// Speaker plays cues on the system audio device through a shared mixer
type Speaker struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	volume  float64
	active  bool
	started bool
	rate    beep.SampleRate
	cache   [cueCount]*beep.Buffer
}

// NewSpeaker creates a speaker player at the given linear volume in [0,1]
func NewSpeaker(volume float64) *Speaker {
	return &Speaker{
		mixer:  &beep.Mixer{},
		volume: min(max(volume, 0), 1),
		rate:   SampleRate,
	}
}

// Init opens the audio device and starts the mixer
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return nil
	}
	if !s.started {
		if err := speaker.Init(s.rate, s.rate.N(50*time.Millisecond)); err != nil {
			return fmt.Errorf("init speaker: %w", err)
		}
		s.started = true
	}
	speaker.Play(gain(s.mixer, s.volume))
	s.active = true
	return nil
}

// Play queues the cue on the mixer; cues overlap rather than interrupt
func (s *Speaker) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}
	buf := s.buffer(c)
	if buf == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// buffer renders a cue once and replays it from memory afterwards
func (s *Speaker) buffer(c Cue) *beep.Buffer {
	if c < 0 || c >= cueCount {
		return nil
	}
	if s.cache[c] == nil {
		buf := beep.NewBuffer(beep.Format{SampleRate: s.rate, NumChannels: 2, Precision: 2})
		buf.Append(c.Stream(s.rate))
		s.cache[c] = buf
	}
	return s.cache[c]
}

// Close silences pending cues and releases the device
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}
	speaker.Clear()
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.active = false
	s.started = false
}
