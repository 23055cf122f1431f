package core

// Phase is the position of a session in the round lifecycle
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseSettling
	PhaseCountingDown
	PhasePresenting
	PhaseAwaitingInput
	PhaseLevelCompleted
	PhaseGameOver
)

var phaseNames = map[Phase]string{
	PhaseIdle:           "idle",
	PhaseSettling:       "settling",
	PhaseCountingDown:   "counting-down",
	PhasePresenting:     "presenting",
	PhaseAwaitingInput:  "awaiting-input",
	PhaseLevelCompleted: "level-completed",
	PhaseGameOver:       "game-over",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// AcceptsSelections reports whether player selections are meaningful in this phase
func (p Phase) AcceptsSelections() bool {
	return p == PhaseAwaitingInput
}
