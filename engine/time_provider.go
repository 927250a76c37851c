package engine

import "time"

// Clock is the time source frame pacing runs against
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock provides real time with monotonic clock readings
type SystemClock struct{}

// Now returns the current time with monotonic clock reading
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks the calling goroutine for d
func (SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
