package core

// Action is a player intent decoded from input
type Action uint8

const (
	ActionNone Action = iota
	ActionSelect
	ActionReplay
	ActionTip
	ActionNext
	ActionNewGame
	ActionToggleExtreme
	ActionCycleLives
	ActionCycleTips
	ActionCycleCountdown
	ActionToggleMute
	ActionRedraw
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:           "none",
	ActionSelect:         "select",
	ActionReplay:         "replay",
	ActionTip:            "tip",
	ActionNext:           "next",
	ActionNewGame:        "new-game",
	ActionToggleExtreme:  "toggle-extreme",
	ActionCycleLives:     "cycle-lives",
	ActionCycleTips:      "cycle-tips",
	ActionCycleCountdown: "cycle-countdown",
	ActionToggleMute:     "toggle-mute",
	ActionRedraw:         "redraw",
	ActionQuit:           "quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Command is one decoded input; Target is only meaningful for ActionSelect
type Command struct {
	Action Action
	Target Target
}
