// Package controller maps decoded player commands onto a game session
package controller

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/vi-recall/accessibility"
	"github.com/lixenwraith/vi-recall/core"
	"github.com/lixenwraith/vi-recall/event"
	"github.com/lixenwraith/vi-recall/gameplay"
	"github.com/lixenwraith/vi-recall/score"
	"github.com/lixenwraith/vi-recall/terminal"
)

// Setting cycles offered in game; 7 is the infinite/unlimited sentinel
var (
	LivesOptions     = []int{1, 2, 3, 4, 5, 6, accessibility.InfiniteLives}
	TipOptions       = []int{accessibility.TipsDisabled, 1, 2, 3, 4, 5, 6, accessibility.UnlimitedTips}
	CountdownOptions = []int{0, 1, 2, 3, 5}
)

// Display is the surface the controller reports to
type Display interface {
	ShowSubtitle(text string)
	Render(status terminal.Status)
}

// Muter toggles sound output
type Muter interface {
	ToggleMute() bool
	IsMuted() bool
}

// Metrics summarizes debug counters
type Metrics interface {
	Summary() string
}

// Controller gates commands by session phase and runs rounds off the input goroutine
// At most one StartRound or ReplayRound runs at a time; commands arriving meanwhile are dropped
type Controller struct {
	session *gameplay.Session
	store   *accessibility.Store
	display Display
	audio   Muter
	metrics Metrics

	busy atomic.Bool
	wg   sync.WaitGroup
}

// Option configures a Controller
type Option func(*Controller)

// WithAudio enables the mute toggle
func WithAudio(m Muter) Option {
	return func(c *Controller) { c.audio = m }
}

// WithMetrics shows m in the HUD
func WithMetrics(m Metrics) Option {
	return func(c *Controller) { c.metrics = m }
}

// New creates a controller for session, changing settings through store
func New(session *gameplay.Session, store *accessibility.Store, display Display, opts ...Option) *Controller {
	c := &Controller{
		session: session,
		store:   store,
		display: display,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Handle applies cmd and redraws; returns false when the player quits
func (c *Controller) Handle(cmd core.Command) bool {
	switch cmd.Action {
	case core.ActionQuit:
		return false
	case core.ActionSelect:
		c.selectTarget(cmd.Target)
	case core.ActionReplay:
		c.replay()
	case core.ActionTip:
		c.tip()
	case core.ActionNext:
		c.next()
	case core.ActionNewGame:
		c.startRound(true)
	case core.ActionToggleExtreme:
		c.toggleExtreme()
	case core.ActionCycleLives:
		s := c.store.Modify(func(s *accessibility.Settings) {
			s.MaxLives = accessibility.Cycle(s.MaxLives, LivesOptions)
		})
		c.display.ShowSubtitle("lives: " + livesText(s.MaxLives))
	case core.ActionCycleTips:
		s := c.store.Modify(func(s *accessibility.Settings) {
			s.TipAllowance = accessibility.Cycle(s.TipAllowance, TipOptions)
		})
		c.display.ShowSubtitle("tips: " + tipsText(s.TipAllowance))
	case core.ActionCycleCountdown:
		s := c.store.Modify(func(s *accessibility.Settings) {
			s.CountdownSteps = accessibility.Cycle(s.CountdownSteps, CountdownOptions)
		})
		c.display.ShowSubtitle(fmt.Sprintf("countdown: %d (next round)", s.CountdownSteps))
	case core.ActionToggleMute:
		if c.audio != nil {
			if c.audio.ToggleMute() {
				c.display.ShowSubtitle("sound on")
			} else {
				c.display.ShowSubtitle("sound off")
			}
		}
	}

	c.Refresh()
	return true
}

func (c *Controller) selectTarget(target core.Target) {
	if !c.session.Phase().AcceptsSelections() {
		return
	}
	c.session.SubmitSelection(target)
}

func (c *Controller) next() {
	snap := c.session.Snapshot()
	switch {
	case snap.Level == 0 && snap.Phase == core.PhaseIdle:
		c.startRound(true)
	case snap.IsGameOver:
		c.display.ShowSubtitle("game over: n for a new game")
	case snap.Phase == core.PhaseLevelCompleted, snap.Phase == core.PhaseIdle:
		c.startRound(false)
	}
}

func (c *Controller) tip() {
	snap := c.session.Snapshot()
	if snap.Phase != core.PhaseAwaitingInput {
		return
	}

	switch {
	case snap.TipAllowance == accessibility.TipsDisabled:
		c.display.ShowSubtitle("tips are disabled")
		return
	case snap.TipAllowance != accessibility.UnlimitedTips && snap.RemainingTips == 0:
		c.display.ShowSubtitle("no tips left")
		return
	}

	if tip, ok := c.session.RequestTip(); ok {
		c.display.ShowSubtitle(tip.String())
	}
}

func (c *Controller) toggleExtreme() {
	on := !c.session.IsExtremeMode()
	c.session.SetExtremeMode(on)
	if on {
		c.display.ShowSubtitle("extreme mode on (next round)")
	} else {
		c.display.ShowSubtitle("extreme mode off (next round)")
	}
}

func (c *Controller) startRound(reset bool) {
	c.run("start round", func() error {
		return c.session.StartRound(reset)
	})
}

func (c *Controller) replay() {
	if c.session.Phase() != core.PhaseAwaitingInput {
		return
	}
	c.run("replay", c.session.ReplayRound)
}

// run executes a blocking session operation on its own goroutine unless one is in flight
func (c *Controller) run(op string, fn func() error) {
	if !c.busy.CompareAndSwap(false, true) {
		return
	}

	c.wg.Add(1)
	terminal.Go(func() {
		defer c.wg.Done()
		defer c.busy.Store(false)

		if err := fn(); err != nil {
			log.Printf("session %s: %s: %v", c.session.ID(), op, err)
			if errors.Is(err, gameplay.ErrGameOver) {
				c.display.ShowSubtitle("game over: n for a new game")
			} else {
				c.display.ShowSubtitle(op + " failed")
			}
		}
		c.Refresh()
	})
}

// Busy reports whether a round start or replay is running
func (c *Controller) Busy() bool {
	return c.busy.Load()
}

// Wait blocks until running round operations have returned
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Status assembles the HUD state
func (c *Controller) Status() terminal.Status {
	snap := c.session.Snapshot()
	round := c.session.RoundScore()

	st := terminal.Status{
		Snapshot:       snap,
		RoundScore:     round,
		ThreeStarScore: c.session.ThreeStarScore(),
		Stars:          score.Stars(snap.Level, round),
	}
	if c.audio != nil {
		st.Muted = c.audio.IsMuted()
	}
	if c.metrics != nil {
		st.Metrics = c.metrics.Summary()
	}
	return st
}

// Refresh redraws the HUD from the current session state
func (c *Controller) Refresh() {
	c.display.Render(c.Status())
}

// EventTypes implements event.Handler
func (c *Controller) EventTypes() []event.EventType {
	return event.AllTypes()
}

// HandleEvent implements event.Handler: announces round outcomes and redraws
func (c *Controller) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventLevelCompleted:
		c.display.ShowSubtitle("level complete: enter for the next round")
	case event.EventGameOver:
		c.display.ShowSubtitle("game over: n for a new game")
	}
	c.Refresh()
}

func livesText(n int) string {
	if n == accessibility.InfiniteLives {
		return "∞"
	}
	return fmt.Sprintf("%d", n)
}

func tipsText(n int) string {
	switch n {
	case accessibility.UnlimitedTips:
		return "∞"
	case accessibility.TipsDisabled:
		return "off"
	default:
		return fmt.Sprintf("%d", n)
	}
}
