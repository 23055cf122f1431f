package constants

import "time"

// Round Pacing
// These values are load-bearing: players with motor or cognitive accessibility needs rely on them
const (
	// SettleDelay precedes the countdown at every round start
	SettleDelay = 250 * time.Millisecond

	// CountdownTick is the pause after each displayed countdown step
	CountdownTick = 1200 * time.Millisecond

	// CountdownTail follows the "round started" cue before presentation begins
	CountdownTail = 1400 * time.Millisecond

	// ReplayDelay precedes a replayed presentation
	ReplayDelay = 125 * time.Millisecond
)

// Presentation Timing
const (
	// HighlightDuration is how long a target stays lit while the sequence is shown
	HighlightDuration = 500 * time.Millisecond

	// HighlightGap separates two consecutive highlights so repeated targets stay distinguishable
	HighlightGap = 200 * time.Millisecond

	// TapFeedbackDuration is how long the board border flashes after a selection
	TapFeedbackDuration = 150 * time.Millisecond
)

// EnvPrefix namespaces every environment variable read at startup
const EnvPrefix = "VI_RECALL_"
