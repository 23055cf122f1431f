package gameplay

import (
	"fmt"
	"strconv"

	"github.com/lixenwraith/vi-recall/constants"
	"github.com/lixenwraith/vi-recall/core"
	"github.com/lixenwraith/vi-recall/event"
)

// StartRound runs one round start: settle, countdown, generation and presentation
// It blocks until the sequence was presented and input is awaited.
//
// Precondition: no other StartRound call is in flight. A concurrent call returns
// ErrRoundInFlight without touching state. A non-reset start after game over returns
// ErrGameOver. With reset, lives/level/tips/lost lives/score and both sequences are
// reinitialized from the current accessibility settings. If lives are taken away while
// the round is presenting, it ends in game over instead of awaiting input.
//
// The score of the previous round is added to the total here, not when it completed.
func (s *Session) StartRound(reset bool) error {
	if !s.roundInFlight.CompareAndSwap(false, true) {
		return ErrRoundInFlight
	}
	defer s.roundInFlight.Store(false)

	// Read once; later settings changes do not affect this round start
	settings := s.settings.Settings()

	s.mu.Lock()
	if !reset && s.lives <= 0 {
		s.mu.Unlock()
		return ErrGameOver
	}

	if reset {
		s.lives = settings.MaxLives
		s.level = 0
		s.takenTips = 0
		s.lostLivesTotal = 0
		s.totalScore = 0
		s.randomSequence = nil
	}

	if s.isLevelStarted && !reset {
		s.totalScore += s.scorer.Score(s.level, s.lostLivesThisLevel)
	}

	s.lostLivesThisLevel = 0
	s.isCountingDown = true
	s.isLevelStarted = false
	s.clickedSequence = nil
	if s.isExtremeMode {
		s.randomSequence = nil
	}
	s.isPlayingSequence = true
	s.refIndex = 0
	s.phase = core.PhaseSettling
	snap := s.snapshotLocked(settings)
	s.mu.Unlock()

	s.publish(event.EventRoundReset, snap)

	s.sleep(constants.SettleDelay)
	s.countDown(settings.CountdownSteps)

	s.mu.Lock()
	previous := cloneTargets(s.randomSequence)
	s.level++
	s.generateLocked()
	s.advanceLocked(core.PhasePresenting)
	sequence := cloneTargets(s.randomSequence)
	snap = s.snapshotLocked(settings)
	s.mu.Unlock()

	s.publish(event.EventSequenceGenerated, snap)

	if err := s.present(sequence); err != nil {
		s.abortRound(previous)
		s.publish(event.EventRoundFailed, &event.FailurePayload{Operation: "start", Err: err})
		return fmt.Errorf("present sequence: %w", err)
	}

	s.mu.Lock()
	s.isLevelStarted = true
	s.isPlayingSequence = false
	// Lives may have been taken away by a settings change while presenting
	gameOver := s.lives <= 0
	s.advanceLocked(core.PhaseAwaitingInput)
	if !gameOver {
		s.scorer.StartTimer()
	}
	snap = s.snapshotLocked(settings)
	s.mu.Unlock()

	s.display.ClearSubtitle()
	if !gameOver {
		s.publish(event.EventLevelStarted, snap)
	}
	return nil
}

// ReplayRound shows the current sequence again without touching progress
// No-op until a level has started and after game over. The score timer is paused for the replay.
// Overlapping replays are not guarded; callers gate them.
func (s *Session) ReplayRound() error {
	settings := s.settings.Settings()

	s.mu.Lock()
	if !s.isLevelStarted || s.lives <= 0 {
		s.mu.Unlock()
		return nil
	}
	s.scorer.PauseTimer()
	s.isPlayingSequence = true
	resumePhase := s.phase
	s.phase = core.PhasePresenting
	sequence := cloneTargets(s.randomSequence)
	snap := s.snapshotLocked(settings)
	s.mu.Unlock()

	s.publish(event.EventReplayStarted, snap)

	s.sleep(constants.ReplayDelay)
	err := s.present(sequence)

	s.mu.Lock()
	s.isPlayingSequence = false
	if s.lives <= 0 {
		s.scorer.StopTimer()
		s.phase = core.PhaseGameOver
	} else {
		// A selection during the replay may have moved the phase on
		if s.phase == core.PhasePresenting {
			s.phase = resumePhase
		}
		s.scorer.ResumeTimer()
	}
	snap = s.snapshotLocked(settings)
	s.mu.Unlock()

	s.publish(event.EventReplayFinished, snap)

	if err != nil {
		s.publish(event.EventRoundFailed, &event.FailurePayload{Operation: "replay", Err: err})
		return fmt.Errorf("replay sequence: %w", err)
	}
	return nil
}

// countDown displays steps..1 then the start cue; not cancellable once begun
func (s *Session) countDown(steps int) {
	s.mu.Lock()
	s.isCountingDown = true
	s.advanceLocked(core.PhaseCountingDown)
	s.mu.Unlock()

	for step := steps; step > 0; step-- {
		s.display.ShowCountdown(strconv.Itoa(step))
		s.audio.Play(core.CueCountdown)
		s.publish(event.EventCountdownTick, &event.CountdownPayload{Step: step})
		s.sleep(constants.CountdownTick)
	}

	s.audio.Play(core.CueRoundStarted)
	s.display.ShowCountdown("")
	s.sleep(constants.CountdownTail)

	s.mu.Lock()
	s.isCountingDown = false
	s.mu.Unlock()
}

// generateLocked builds the sequence for the current level
// Normal mode keeps the previous sequence and appends one pick; extreme mode draws level fresh picks
func (s *Session) generateLocked() {
	s.refIndex = 0
	if s.isExtremeMode {
		s.randomSequence = s.generator.Sequence(s.level)
		return
	}
	s.randomSequence = s.generator.Extend(s.randomSequence)
}

// present highlights every target in order, one suspension per target
func (s *Session) present(sequence []core.Target) error {
	for i, target := range sequence {
		if err := s.presenter.Highlight(target); err != nil {
			return fmt.Errorf("highlight %s at %d: %w", target, i, err)
		}
	}
	return nil
}

// abortRound unwinds a round whose presentation failed
// The level and its sequence are rolled back so the next start retries the same level
func (s *Session) abortRound(previous []core.Target) {
	s.mu.Lock()
	s.level--
	s.randomSequence = previous
	s.refIndex = 0
	s.isPlayingSequence = false
	s.isCountingDown = false
	s.isLevelStarted = false
	s.phase = core.PhaseIdle
	s.mu.Unlock()
}

// advanceLocked moves the round to p unless lives ran out, which pins it at game over
func (s *Session) advanceLocked(p core.Phase) {
	if s.lives <= 0 {
		s.phase = core.PhaseGameOver
		return
	}
	s.phase = p
}
