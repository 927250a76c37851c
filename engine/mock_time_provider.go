package engine

import (
	"sync"
	"time"
)

// MockClock is a controllable Clock for tests; Sleep advances time instantly
type MockClock struct {
	mu          sync.RWMutex
	currentTime time.Time
	slept       time.Duration
	sleeps      int
}

// NewMockClock creates a mock clock starting at the given time
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{currentTime: startTime}
}

// Now returns the current mocked time
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Sleep advances the mocked time by d and records the wait
func (m *MockClock) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
	m.slept += d
	m.sleeps++
}

// Advance moves time forward without counting as a sleep, simulating frame work
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// Slept returns the total duration passed to Sleep and the number of calls
func (m *MockClock) Slept() (time.Duration, int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.slept, m.sleeps
}
