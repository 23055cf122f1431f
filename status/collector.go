package status

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-recall/event"
)

// Metric keys written by Collector
const (
	MetricRounds          = "rounds"
	MetricCorrect         = "correct"
	MetricWrong           = "wrong"
	MetricLevelsCompleted = "completed"
	MetricGamesOver       = "game_over"
	MetricTips            = "tips"
	MetricReplays         = "replays"
	MetricFailures        = "failures"
	MetricLastEvent       = "last"
)

// Collector counts session events into a Registry
type Collector struct {
	rounds    *atomic.Int64
	correct   *atomic.Int64
	wrong     *atomic.Int64
	completed *atomic.Int64
	gameOver  *atomic.Int64
	tips      *atomic.Int64
	replays   *atomic.Int64
	failures  *atomic.Int64
	last      *AtomicString
}

// NewCollector caches metric pointers from reg
func NewCollector(reg *Registry) *Collector {
	return &Collector{
		rounds:    reg.Ints.Get(MetricRounds),
		correct:   reg.Ints.Get(MetricCorrect),
		wrong:     reg.Ints.Get(MetricWrong),
		completed: reg.Ints.Get(MetricLevelsCompleted),
		gameOver:  reg.Ints.Get(MetricGamesOver),
		tips:      reg.Ints.Get(MetricTips),
		replays:   reg.Ints.Get(MetricReplays),
		failures:  reg.Ints.Get(MetricFailures),
		last:      reg.Strings.Get(MetricLastEvent),
	}
}

// EventTypes implements event.Handler
func (c *Collector) EventTypes() []event.EventType {
	return event.AllTypes()
}

// HandleEvent implements event.Handler
func (c *Collector) HandleEvent(ev event.GameEvent) {
	c.last.Store(ev.Type.String())

	switch ev.Type {
	case event.EventLevelStarted:
		c.rounds.Add(1)
	case event.EventSelection:
		if p, ok := ev.Payload.(*event.SelectionPayload); ok {
			if p.Correct {
				c.correct.Add(1)
			} else {
				c.wrong.Add(1)
			}
		}
	case event.EventLevelCompleted:
		c.completed.Add(1)
	case event.EventGameOver:
		c.gameOver.Add(1)
	case event.EventTipTaken:
		c.tips.Add(1)
	case event.EventReplayStarted:
		c.replays.Add(1)
	case event.EventRoundFailed:
		c.failures.Add(1)
	}
}
