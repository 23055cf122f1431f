package core

// Cue represents a one-shot audio notification emitted by the session
type Cue int

const (
	CueCorrectSelection Cue = iota // Selection matched the expected target
	CueWrongSelection              // Selection did not match
	CueLevelCompleted              // Last target of the sequence selected
	CueCountdown                   // One countdown step
	CueRoundStarted                // Countdown reached zero
	CueCount
)

var cueNames = [CueCount]string{
	CueCorrectSelection: "correct",
	CueWrongSelection:   "wrong",
	CueLevelCompleted:   "level-completed",
	CueCountdown:        "countdown",
	CueRoundStarted:     "round-started",
}

func (c Cue) String() string {
	if c < 0 || c >= CueCount {
		return "unknown"
	}
	return cueNames[c]
}
