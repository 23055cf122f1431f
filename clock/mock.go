package clock

import (
	"sync"
	"time"
)

// Mock provides a controllable time source for testing
// Sleep returns immediately after advancing the mocked time, and records the requested duration
type Mock struct {
	mu          sync.RWMutex
	currentTime time.Time
	sleeps      []time.Duration
}

// NewMock creates a new mock clock at the given start time
func NewMock(startTime time.Time) *Mock {
	return &Mock{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *Mock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time for the mock
func (m *Mock) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance advances the current time by the given duration
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// Sleep advances the mocked time by d without blocking
func (m *Mock) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sleeps = append(m.sleeps, d)
	if d > 0 {
		m.currentTime = m.currentTime.Add(d)
	}
}

// Sleeps returns a copy of every duration passed to Sleep, in call order
func (m *Mock) Sleeps() []time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]time.Duration, len(m.sleeps))
	copy(out, m.sleeps)
	return out
}

// ResetSleeps clears the recorded sleep history
func (m *Mock) ResetSleeps() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sleeps = nil
}
