package gameplay

import (
	"time"

	"github.com/lixenwraith/vi-recall/accessibility"
	"github.com/lixenwraith/vi-recall/core"
)

// Snapshot is a consistent copy of the session state and every derived value
type Snapshot struct {
	SessionID string
	Phase     core.Phase

	Level              int
	Lives              int
	MaxLives           int
	InfiniteLives      bool
	LostLivesTotal     int
	LostLivesThisLevel int

	TakenTips     int
	TipAllowance  int
	RemainingTips int

	TotalScore     int
	Attempts       int
	RefIndex       int
	SequenceLength int

	IsPlayingSequence bool
	IsCountingDown    bool
	IsLevelStarted    bool
	IsExtremeMode     bool
	IsGameOver        bool
	IsLevelCompleted  bool
}

// Snapshot returns the current state
func (s *Session) Snapshot() Snapshot {
	settings := s.settings.Settings()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(settings)
}

func (s *Session) snapshotLocked(settings accessibility.Settings) Snapshot {
	return Snapshot{
		SessionID:          s.id,
		Phase:              s.phase,
		Level:              s.level,
		Lives:              s.lives,
		MaxLives:           settings.MaxLives,
		InfiniteLives:      settings.HasInfiniteLives(),
		LostLivesTotal:     s.lostLivesTotal,
		LostLivesThisLevel: s.lostLivesThisLevel,
		TakenTips:          s.takenTips,
		TipAllowance:       settings.TipAllowance,
		RemainingTips:      remainingTips(settings, s.takenTips),
		TotalScore:         s.totalScore,
		Attempts:           len(s.clickedSequence),
		RefIndex:           s.refIndex,
		SequenceLength:     len(s.randomSequence),
		IsPlayingSequence:  s.isPlayingSequence,
		IsCountingDown:     s.isCountingDown,
		IsLevelStarted:     s.isLevelStarted,
		IsExtremeMode:      s.isExtremeMode,
		IsGameOver:         s.lives <= 0,
		IsLevelCompleted:   s.levelCompletedLocked(),
	}
}

func remainingTips(settings accessibility.Settings, taken int) int {
	remaining := settings.TipAllowance - taken
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (s *Session) levelCompletedLocked() bool {
	return s.isLevelStarted && s.refIndex == len(s.randomSequence)
}

// Phase returns the current lifecycle phase
func (s *Session) Phase() core.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Level returns the current level
func (s *Session) Level() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// Lives returns the remaining lives
func (s *Session) Lives() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lives
}

// TotalScore returns the score accumulated by finished rounds
func (s *Session) TotalScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalScore
}

// RemainingTips returns the configured allowance minus taken tips, never negative
func (s *Session) RemainingTips() int {
	settings := s.settings.Settings()
	s.mu.Lock()
	defer s.mu.Unlock()
	return remainingTips(settings, s.takenTips)
}

// Attempts returns the number of selections made this round
func (s *Session) Attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clickedSequence)
}

// IsGameOver reports whether all lives are lost
func (s *Session) IsGameOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lives <= 0
}

// IsLevelCompleted reports whether every target of the started level was selected
func (s *Session) IsLevelCompleted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.levelCompletedLocked()
}

// IsExtremeMode reports the difficulty variant
func (s *Session) IsExtremeMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isExtremeMode
}

// RandomSequence returns a copy of the current ground-truth sequence
func (s *Session) RandomSequence() []core.Target {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTargets(s.randomSequence)
}

// ClickedSequence returns a copy of this round's selections
func (s *Session) ClickedSequence() []core.Target {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTargets(s.clickedSequence)
}

// RoundScore returns the score of the current level as measured so far
func (s *Session) RoundScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scorer.Score(s.level, s.lostLivesThisLevel)
}

// ThreeStarScore returns the score needed for three stars on the current level
func (s *Session) ThreeStarScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scorer.ThreeStarScore(s.level)
}

// ElapsedRoundTime returns the time spent on the current level
func (s *Session) ElapsedRoundTime() time.Duration {
	return s.scorer.Elapsed()
}
