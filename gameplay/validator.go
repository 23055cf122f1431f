package gameplay

import (
	"github.com/lixenwraith/vi-recall/core"
	"github.com/lixenwraith/vi-recall/event"
)

// SubmitSelection validates one player selection and reports whether it was correct
//
// Selections after the level completed are accepted as no-ops and report true.
// Selections after game over are ignored and report false until a reset or restored lives.
// Every other selection is recorded, including wrong ones. A wrong selection costs a
// life unless lives are infinite, and always counts towards the lives lost this level.
// A selection at a position past the end of the sequence counts as wrong.
func (s *Session) SubmitSelection(target core.Target) bool {
	settings := s.settings.Settings()

	s.mu.Lock()
	if s.levelCompletedLocked() {
		s.mu.Unlock()
		return true
	}
	if s.lives <= 0 {
		s.mu.Unlock()
		return false
	}

	s.clickedSequence = append(s.clickedSequence, target)

	correct := s.refIndex < len(s.randomSequence) && s.randomSequence[s.refIndex] == target
	if correct {
		s.refIndex++
	} else {
		if !settings.HasInfiniteLives() {
			if s.lives > 0 {
				s.lives--
			}
			s.lostLivesTotal++
		}
		s.lostLivesThisLevel++
	}

	completed := s.levelCompletedLocked()
	if completed {
		s.scorer.StopTimer()
		s.phase = core.PhaseLevelCompleted
	}

	gameOver := !correct && s.lives <= 0 && s.phase != core.PhaseGameOver
	if gameOver {
		s.scorer.StopTimer()
		s.phase = core.PhaseGameOver
	}
	snap := s.snapshotLocked(settings)
	s.mu.Unlock()

	s.feedback.ShowTapFeedback(correct)
	if correct {
		s.audio.Play(core.CueCorrectSelection)
	} else {
		s.audio.Play(core.CueWrongSelection)
	}
	s.publish(event.EventSelection, &event.SelectionPayload{Target: target, Correct: correct, Snapshot: snap})

	if completed {
		s.audio.Play(core.CueLevelCompleted)
		s.publish(event.EventLevelCompleted, snap)
	}
	if gameOver {
		s.publish(event.EventGameOver, snap)
	}
	return correct
}

// NextTip returns the tip for the next expected target without consuming it
// Reports false when the sequence is empty or fully consumed
func (s *Session) NextTip() (Tip, bool) {
	s.mu.Lock()
	if len(s.randomSequence) == 0 || s.refIndex >= len(s.randomSequence) {
		s.mu.Unlock()
		return Tip{}, false
	}
	target := s.randomSequence[s.refIndex]
	s.mu.Unlock()

	return Tip{
		Target:   target,
		Label:    s.labels.Label(target),
		Location: Location(target),
	}, true
}

// RequestTip returns the next tip and counts it against the allowance
// Tips are not counted when the allowance is unlimited or disabled, and the counter
// never exceeds a finite allowance
func (s *Session) RequestTip() (Tip, bool) {
	tip, ok := s.NextTip()
	if !ok {
		return Tip{}, false
	}

	settings := s.settings.Settings()
	s.mu.Lock()
	counted := settings.CountsTips() && s.takenTips < settings.TipAllowance
	if counted {
		s.takenTips++
	}
	s.mu.Unlock()

	s.publish(event.EventTipTaken, &event.TipPayload{
		Target:   tip.Target,
		Label:    tip.Label,
		Location: tip.Location,
		Counted:  counted,
	})
	return tip, true
}
