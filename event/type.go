package event

import "time"

// EventType represents the type of session event
type EventType int

const (
	// EventRoundReset signals per-round state was cleared at round start
	// Trigger: StartRound before the settle delay
	// Payload: gameplay.Snapshot
	EventRoundReset EventType = iota

	// EventCountdownTick signals one displayed countdown step
	// Payload: *CountdownPayload
	EventCountdownTick

	// EventSequenceGenerated signals a new ground-truth sequence
	// Trigger: StartRound after the countdown, before presentation
	// Payload: gameplay.Snapshot
	EventSequenceGenerated

	// EventLevelStarted signals presentation finished and input is awaited
	// Payload: gameplay.Snapshot
	EventLevelStarted

	// EventSelection signals a validated player selection
	// Payload: *SelectionPayload
	EventSelection

	// EventLevelCompleted signals the last expected target was selected
	// Payload: gameplay.Snapshot
	EventLevelCompleted

	// EventGameOver signals lives reached zero
	// Payload: gameplay.Snapshot
	EventGameOver

	// EventTipTaken signals a tip was revealed
	// Payload: *TipPayload
	EventTipTaken

	// EventReplayStarted and EventReplayFinished bracket a replayed presentation
	// Payload: gameplay.Snapshot
	EventReplayStarted
	EventReplayFinished

	// EventSettingsChanged signals lives were recomputed after an accessibility update
	// Payload: gameplay.Snapshot
	EventSettingsChanged

	// EventModeChanged signals extreme mode was toggled
	// Payload: gameplay.Snapshot
	EventModeChanged

	// EventRoundFailed signals a collaborator error aborted StartRound or ReplayRound
	// Payload: *FailurePayload
	EventRoundFailed

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventRoundReset:        "round-reset",
	EventCountdownTick:     "countdown-tick",
	EventSequenceGenerated: "sequence-generated",
	EventLevelStarted:      "level-started",
	EventSelection:         "selection",
	EventLevelCompleted:    "level-completed",
	EventGameOver:          "game-over",
	EventTipTaken:          "tip-taken",
	EventReplayStarted:     "replay-started",
	EventReplayFinished:    "replay-finished",
	EventSettingsChanged:   "settings-changed",
	EventModeChanged:       "mode-changed",
	EventRoundFailed:       "round-failed",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "unknown"
	}
	return eventNames[t]
}

// AllTypes returns every declared event type
func AllTypes() []EventType {
	types := make([]EventType, 0, eventTypeCount)
	for t := EventType(0); t < eventTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

// GameEvent is one notification published by a session
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
