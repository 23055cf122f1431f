// Package gameplay implements the round lifecycle of the sequence memorization game
//
// A Session owns all mutable game state. StartRound and ReplayRound block while the
// sequence is shown and are meant to run on their own goroutine; SubmitSelection and the
// tip operations are synchronous and may be called from the input goroutine meanwhile.
// The state mutex is never held across a sleep, a presentation, a cue or an event
// dispatch.
package gameplay

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/vi-recall/accessibility"
	"github.com/lixenwraith/vi-recall/clock"
	"github.com/lixenwraith/vi-recall/core"
	"github.com/lixenwraith/vi-recall/event"
)

// Session is one game session
type Session struct {
	id string

	presenter Presenter
	display   Display
	feedback  Feedback
	labels    LabelProvider
	audio     AudioCue
	scorer    ScoreManager
	settings  SettingsSource

	sleeper   clock.Sleeper
	now       clock.TimeProvider
	router    *event.Router
	generator *Generator

	roundInFlight atomic.Bool

	mu sync.Mutex

	level              int
	lives              int
	lostLivesTotal     int
	lostLivesThisLevel int
	takenTips          int
	totalScore         int

	// randomSequence is replaced wholesale on generation, never mutated in place
	randomSequence  []core.Target
	clickedSequence []core.Target
	refIndex        int

	isPlayingSequence bool
	isCountingDown    bool
	isLevelStarted    bool
	isExtremeMode     bool

	phase core.Phase
}

// Option configures a Session
type Option func(*Session)

// WithSleeper replaces the real sleeper used for pacing delays
func WithSleeper(s clock.Sleeper) Option {
	return func(sess *Session) { sess.sleeper = s }
}

// WithTimeProvider sets the source of event timestamps
func WithTimeProvider(tp clock.TimeProvider) Option {
	return func(sess *Session) { sess.now = tp }
}

// WithRouter publishes session events to r
func WithRouter(r *event.Router) Option {
	return func(sess *Session) { sess.router = r }
}

// WithGenerator replaces the crypto-seeded target generator
func WithGenerator(g *Generator) Option {
	return func(sess *Session) { sess.generator = g }
}

// WithExtremeMode sets the initial difficulty variant
func WithExtremeMode(on bool) Option {
	return func(sess *Session) { sess.isExtremeMode = on }
}

// WithID overrides the generated session identifier
func WithID(id string) Option {
	return func(sess *Session) { sess.id = id }
}

// NewSession creates an idle session with lives taken from the current settings
func NewSession(c Collaborators, opts ...Option) *Session {
	c = c.withDefaults()
	s := &Session{
		presenter: c.Presenter,
		display:   c.Display,
		feedback:  c.Feedback,
		labels:    c.Labels,
		audio:     c.Audio,
		scorer:    c.Score,
		settings:  c.Settings,
		phase:     core.PhaseIdle,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.id == "" {
		s.id = uuid.NewString()
	}
	if s.sleeper == nil {
		s.sleeper = clock.NewSystem()
	}
	if s.now == nil {
		s.now = clock.NewSystem()
	}
	if s.generator == nil {
		s.generator = NewRandomGenerator()
	}

	s.lives = s.settings.Settings().MaxLives
	return s
}

// ID returns the session identifier used for log correlation
func (s *Session) ID() string {
	return s.id
}

// SetExtremeMode toggles the extreme difficulty variant
// Takes effect at the next round start
func (s *Session) SetExtremeMode(on bool) {
	s.mu.Lock()
	changed := s.isExtremeMode != on
	s.isExtremeMode = on
	snap := s.snapshotLocked(s.settings.Settings())
	s.mu.Unlock()

	if changed {
		s.publish(event.EventModeChanged, snap)
	}
}

// UpdatePlayerLives recomputes lives after the configured maximum changed mid-game
// Lives become newMax minus all lives lost so far, never negative. Dropping to zero
// during a round ends the game; raising lives above zero after such a game over
// resumes the round where it stood.
func (s *Session) UpdatePlayerLives(newMax int) {
	s.mu.Lock()
	lives := newMax - s.lostLivesTotal
	if lives < 0 {
		lives = 0
	}
	s.lives = lives

	ended := false
	switch {
	case s.lives == 0 && s.phase != core.PhaseIdle && s.phase != core.PhaseGameOver:
		s.scorer.StopTimer()
		s.phase = core.PhaseGameOver
		ended = true
	case s.lives > 0 && s.phase == core.PhaseGameOver:
		s.resumeLocked()
	}
	snap := s.snapshotLocked(s.settings.Settings())
	s.mu.Unlock()

	s.publish(event.EventSettingsChanged, snap)
	if ended {
		s.publish(event.EventGameOver, snap)
	}
}

// resumeLocked leaves game over for the phase the round flags describe
// A level in progress restarts its timer since the stopped one cannot continue
func (s *Session) resumeLocked() {
	switch {
	case s.isCountingDown:
		s.phase = core.PhaseCountingDown
	case s.isPlayingSequence && !s.isLevelStarted:
		s.phase = core.PhasePresenting
	case s.levelCompletedLocked():
		s.phase = core.PhaseLevelCompleted
	case s.isLevelStarted:
		s.scorer.StartTimer()
		if s.isPlayingSequence {
			// Replay in progress, it resumes the timer when done
			s.scorer.PauseTimer()
			s.phase = core.PhasePresenting
		} else {
			s.phase = core.PhaseAwaitingInput
		}
	default:
		s.phase = core.PhaseIdle
	}
}

// WatchSettings keeps lives in step with the lives setting of store
func (s *Session) WatchSettings(store *accessibility.Store) {
	store.Subscribe(func(current, previous accessibility.Settings) {
		if current.MaxLives != previous.MaxLives {
			s.UpdatePlayerLives(current.MaxLives)
		}
	})
}

func (s *Session) publish(t event.EventType, payload any) {
	if s.router == nil {
		return
	}
	s.router.Publish(event.GameEvent{
		Type:      t,
		Payload:   payload,
		Timestamp: s.now.Now(),
	})
}

func (s *Session) sleep(d time.Duration) {
	s.sleeper.Sleep(d)
}

func cloneTargets(seq []core.Target) []core.Target {
	if seq == nil {
		return nil
	}
	out := make([]core.Target, len(seq))
	copy(out, seq)
	return out
}
