package gameplay

import (
	"time"

	"github.com/lixenwraith/vi-recall/accessibility"
	"github.com/lixenwraith/vi-recall/core"
)

// Presenter shows one target of the sequence
// Highlight blocks until the visual and audio cue for the target has finished
type Presenter interface {
	Highlight(target core.Target) error
}

// Display owns the transient text areas of the board
type Display interface {
	// ShowCountdown shows a countdown step; empty text clears it
	ShowCountdown(text string)
	ClearSubtitle()
}

// Feedback flashes the result of a selection
type Feedback interface {
	ShowTapFeedback(correct bool)
}

// LabelProvider returns the accessible label of the element rendering target
type LabelProvider interface {
	Label(target core.Target) string
}

// AudioCue plays a notification sound without blocking
type AudioCue interface {
	Play(cue core.Cue)
}

// ScoreManager times a level and computes its score
// Implementations must not call back into the Session: methods are invoked with session state locked
type ScoreManager interface {
	StartTimer()
	PauseTimer()
	ResumeTimer()
	StopTimer()
	Elapsed() time.Duration
	Score(level, lostLives int) int
	ThreeStarScore(level int) int
}

// SettingsSource exposes the current accessibility profile
type SettingsSource interface {
	Settings() accessibility.Settings
}

// Collaborators bundles everything a Session talks to
// Nil members are replaced by silent implementations
type Collaborators struct {
	Presenter Presenter
	Display   Display
	Feedback  Feedback
	Labels    LabelProvider
	Audio     AudioCue
	Score     ScoreManager
	Settings  SettingsSource
}

func (c Collaborators) withDefaults() Collaborators {
	if c.Presenter == nil {
		c.Presenter = nopPresenter{}
	}
	if c.Display == nil {
		c.Display = nopDisplay{}
	}
	if c.Feedback == nil {
		c.Feedback = nopFeedback{}
	}
	if c.Labels == nil {
		c.Labels = nopLabels{}
	}
	if c.Audio == nil {
		c.Audio = nopAudio{}
	}
	if c.Score == nil {
		c.Score = nopScore{}
	}
	if c.Settings == nil {
		c.Settings = accessibility.NewStore(accessibility.Default())
	}
	return c
}

type nopPresenter struct{}

func (nopPresenter) Highlight(core.Target) error { return nil }

type nopDisplay struct{}

func (nopDisplay) ShowCountdown(string) {}
func (nopDisplay) ClearSubtitle()       {}

type nopFeedback struct{}

func (nopFeedback) ShowTapFeedback(bool) {}

type nopLabels struct{}

func (nopLabels) Label(core.Target) string { return "" }

type nopAudio struct{}

func (nopAudio) Play(core.Cue) {}

type nopScore struct{}

func (nopScore) StartTimer()            {}
func (nopScore) PauseTimer()            {}
func (nopScore) ResumeTimer()           {}
func (nopScore) StopTimer()             {}
func (nopScore) Elapsed() time.Duration { return 0 }
func (nopScore) Score(int, int) int     { return 0 }
func (nopScore) ThreeStarScore(int) int { return 0 }
