package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue identifies a game sound
type Cue int

const (
	CuePlace  Cue = iota // Mark placed
	CueReject            // Press on an occupied cell
	CueWin               // Line completed
	CueTie               // Board full without a winner
	cueCount
)

var cueNames = [cueCount]string{"place", "reject", "win", "tie"}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// cueNotes lists each cue as a sequence of chords; notes in a chord are mixed
var cueNotes = [cueCount][][]note{
	CuePlace: {
		{{freq: 660, length: 60 * time.Millisecond, wave: WaveSquare, attack: 2 * time.Millisecond, release: 40 * time.Millisecond}},
	},
	CueReject: {
		{{freq: 110, length: 120 * time.Millisecond, wave: WaveSaw, attack: 5 * time.Millisecond, release: 60 * time.Millisecond}},
	},
	CueWin: {
		{{freq: 523.25, length: 90 * time.Millisecond, wave: WaveSquare, attack: 2 * time.Millisecond, release: 50 * time.Millisecond}},
		{{freq: 659.25, length: 90 * time.Millisecond, wave: WaveSquare, attack: 2 * time.Millisecond, release: 50 * time.Millisecond}},
		{
			{freq: 783.99, length: 220 * time.Millisecond, wave: WaveSine, attack: 2 * time.Millisecond, release: 180 * time.Millisecond},
			{freq: 1567.98, length: 220 * time.Millisecond, wave: WaveSine, attack: 2 * time.Millisecond, release: 120 * time.Millisecond},
		},
	},
	CueTie: {
		{{freq: 392, length: 100 * time.Millisecond, wave: WaveSine, attack: 5 * time.Millisecond, release: 60 * time.Millisecond}},
		{{freq: 330, length: 160 * time.Millisecond, wave: WaveSine, attack: 5 * time.Millisecond, release: 120 * time.Millisecond}},
	},
}

// Duration returns the cue's total play time
func (c Cue) Duration() time.Duration {
	if c < 0 || c >= cueCount {
		return 0
	}
	var total time.Duration
	for _, chord := range cueNotes[c] {
		var longest time.Duration
		for _, n := range chord {
			longest = max(longest, n.length)
		}
		total += longest
	}
	return total
}

// Stream builds a fresh streamer for the cue at unity gain; nil for an unknown cue
func (c Cue) Stream(rate beep.SampleRate) beep.Streamer {
	if c < 0 || c >= cueCount {
		return nil
	}

	chords := make([]beep.Streamer, 0, len(cueNotes[c]))
	for _, chord := range cueNotes[c] {
		if len(chord) == 1 {
			chords = append(chords, chord[0].stream(rate))
			continue
		}
		// Equal share keeps the mix within [-1, 1]
		share := 1.0 / float64(len(chord))
		parts := make([]beep.Streamer, len(chord))
		for i, n := range chord {
			parts[i] = gain(n.stream(rate), share)
		}
		chords = append(chords, beep.Mix(parts...))
	}
	return beep.Seq(chords...)
}
