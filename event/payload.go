package event

import "github.com/lixenwraith/vi-recall/core"

// CountdownPayload carries the step being displayed
type CountdownPayload struct {
	Step int
}

// SelectionPayload describes one validated selection
// Snapshot holds the session state after the selection was applied
type SelectionPayload struct {
	Target   core.Target
	Correct  bool
	Snapshot any
}

// TipPayload describes a revealed tip
type TipPayload struct {
	Target   core.Target
	Label    string
	Location string
	Counted  bool
}

// FailurePayload carries the error that aborted a round operation
type FailurePayload struct {
	Operation string
	Err       error
}
