package accessibility

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/lixenwraith/vi-recall/constants"
)

// EnvPrefix namespaces every accessibility variable
const EnvPrefix = constants.EnvPrefix

// LoadFromEnv reads VI_RECALL_MAX_LIVES, VI_RECALL_TIP_ALLOWANCE and VI_RECALL_COUNTDOWN_STEPS
// Missing variables fall back to defaults; out-of-range values are clamped
func LoadFromEnv() (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, env.Options{Prefix: EnvPrefix}); err != nil {
		return Default(), fmt.Errorf("parse env: %w", err)
	}
	return s.Normalize(), nil
}
