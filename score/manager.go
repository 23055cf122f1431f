// Package score times a level and turns level, lost lives and time into points
package score

import (
	"time"

	"github.com/lixenwraith/vi-recall/clock"
)

// Formula parameters
const (
	// PointsPerTarget is awarded for every target in the level
	PointsPerTarget = 100

	// LostLifePenalty is deducted per wrong selection in the level
	LostLifePenalty = 40

	// ParTimePerTarget is the time budget per target before the time penalty starts
	ParTimePerTarget = 1500 * time.Millisecond

	// OvertimePenalty is deducted per started second over par
	OvertimePenalty = 10

	// ThreeStarRatio is the share of the perfect score required for three stars (percent)
	ThreeStarRatio = 80
)

// Manager measures the current level and computes its score
type Manager struct {
	stopwatch *clock.Stopwatch
}

// NewManager creates a score manager timing against tp
func NewManager(tp clock.TimeProvider) *Manager {
	return &Manager{stopwatch: clock.NewStopwatch(tp)}
}

// StartTimer restarts level timing
func (m *Manager) StartTimer() { m.stopwatch.Start() }

// PauseTimer suspends timing, e.g. while the sequence is replayed
func (m *Manager) PauseTimer() { m.stopwatch.Pause() }

// ResumeTimer continues after PauseTimer
func (m *Manager) ResumeTimer() { m.stopwatch.Resume() }

// StopTimer freezes the elapsed time of the finished level
func (m *Manager) StopTimer() { m.stopwatch.Stop() }

// Elapsed returns the time spent on the level excluding pauses
func (m *Manager) Elapsed() time.Duration { return m.stopwatch.Elapsed() }

// Score returns the points for a level given the lives lost in it and the measured time
// Never negative
func (m *Manager) Score(level, lostLives int) int {
	return Compute(level, lostLives, m.Elapsed())
}

// ThreeStarScore returns the minimum score for three stars on level
func (m *Manager) ThreeStarScore(level int) int {
	return ThreeStarThreshold(level)
}

// Compute is the score formula
func Compute(level, lostLives int, elapsed time.Duration) int {
	if level <= 0 {
		return 0
	}
	if lostLives < 0 {
		lostLives = 0
	}

	points := level * PointsPerTarget
	points -= lostLives * LostLifePenalty

	par := time.Duration(level) * ParTimePerTarget
	if over := elapsed - par; over > 0 {
		// Started seconds
		seconds := int((over + time.Second - 1) / time.Second)
		points -= seconds * OvertimePenalty
	}

	if points < 0 {
		return 0
	}
	return points
}

// ThreeStarThreshold is ThreeStarRatio percent of a perfect level
func ThreeStarThreshold(level int) int {
	if level <= 0 {
		return 0
	}
	return level * PointsPerTarget * ThreeStarRatio / 100
}

// Stars rates a level score from 0 to 3
func Stars(level, points int) int {
	threshold := ThreeStarThreshold(level)
	switch {
	case threshold == 0 || points <= 0:
		return 0
	case points >= threshold:
		return 3
	case points*2 >= threshold:
		return 2
	default:
		return 1
	}
}
