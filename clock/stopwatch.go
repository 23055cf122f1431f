package clock

import (
	"sync"
	"time"
)

// Stopwatch measures elapsed time that can be paused, resumed and frozen
// Elapsed = (now - start) - total paused time, evaluated against the injected TimeProvider
type Stopwatch struct {
	mu sync.RWMutex

	source TimeProvider

	running bool
	paused  bool
	stopped bool

	startTime       time.Time
	pauseStartTime  time.Time
	totalPausedTime time.Duration
	frozenElapsed   time.Duration
}

// NewStopwatch creates an idle stopwatch reading from tp
func NewStopwatch(tp TimeProvider) *Stopwatch {
	if tp == nil {
		tp = NewSystem()
	}
	return &Stopwatch{source: tp}
}

// Start resets the stopwatch and begins measuring
func (sw *Stopwatch) Start() {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	sw.startTime = sw.source.Now()
	sw.pauseStartTime = time.Time{}
	sw.totalPausedTime = 0
	sw.frozenElapsed = 0
	sw.running = true
	sw.paused = false
	sw.stopped = false
}

// Pause stops time advancement; no-op unless running and not paused
func (sw *Stopwatch) Pause() {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if !sw.running || sw.paused {
		return
	}
	sw.paused = true
	sw.pauseStartTime = sw.source.Now()
}

// Resume continues time advancement after Pause
func (sw *Stopwatch) Resume() {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if !sw.running || !sw.paused {
		return
	}
	sw.totalPausedTime += sw.source.Now().Sub(sw.pauseStartTime)
	sw.pauseStartTime = time.Time{}
	sw.paused = false
}

// Stop freezes the current elapsed value until the next Start
func (sw *Stopwatch) Stop() {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if !sw.running {
		return
	}
	sw.frozenElapsed = sw.elapsedLocked()
	sw.running = false
	sw.paused = false
	sw.stopped = true
}

// Elapsed returns measured time excluding pauses
func (sw *Stopwatch) Elapsed() time.Duration {
	sw.mu.RLock()
	defer sw.mu.RUnlock()

	if sw.stopped {
		return sw.frozenElapsed
	}
	if !sw.running {
		return 0
	}
	return sw.elapsedLocked()
}

// IsRunning reports whether the stopwatch is measuring (paused counts as running)
func (sw *Stopwatch) IsRunning() bool {
	sw.mu.RLock()
	defer sw.mu.RUnlock()
	return sw.running
}

// IsPaused returns current pause state
func (sw *Stopwatch) IsPaused() bool {
	sw.mu.RLock()
	defer sw.mu.RUnlock()
	return sw.paused
}

func (sw *Stopwatch) elapsedLocked() time.Duration {
	end := sw.source.Now()
	if sw.paused {
		// Frozen at pause point
		end = sw.pauseStartTime
	}
	elapsed := end.Sub(sw.startTime) - sw.totalPausedTime
	if elapsed < 0 {
		return 0
	}
	return elapsed
}
