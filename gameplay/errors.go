package gameplay

import "errors"

var (
	// ErrRoundInFlight reports a StartRound call made while another one is still running
	// Callers are expected to gate round starts; this is a contract violation, not a retryable condition
	ErrRoundInFlight = errors.New("round start already in progress")

	// ErrGameOver reports a non-reset round start after all lives were lost
	ErrGameOver = errors.New("game over: reset required")
)
