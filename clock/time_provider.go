// Package clock supplies time sources, sleepers and a pausable stopwatch
// Game code never calls time.Now or time.Sleep directly so pacing can be driven by Mock in tests
package clock

import "time"

// TimeProvider is a source of the current time
type TimeProvider interface {
	Now() time.Time
}

// Sleeper suspends the calling goroutine
type Sleeper interface {
	Sleep(d time.Duration)
}

// System is the real wall clock with monotonic readings
type System struct{}

// NewSystem creates the real time source
func NewSystem() *System {
	return &System{}
}

// Now returns the current time with monotonic clock reading
func (System) Now() time.Time {
	return time.Now()
}

// Sleep blocks for d
func (System) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	time.Sleep(d)
}
