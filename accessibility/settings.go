// Package accessibility holds the difficulty parameters supplied by the player's accessibility profile
package accessibility

// Sentinel values shared with the settings UI
const (
	// InfiniteLives as MaxLives disables life deduction
	InfiniteLives = 7

	// UnlimitedTips as TipAllowance disables tip counting
	UnlimitedTips = 7

	// TipsDisabled as TipAllowance means no tips are offered; tips are not counted either
	TipsDisabled = 0
)

// Accepted ranges, values outside are clamped by Normalize
const (
	MinLives          = 1
	MaxLives          = InfiniteLives
	MaxTipAllowance   = UnlimitedTips
	MaxCountdownSteps = 10
)

// Defaults match the stock profile
const (
	DefaultMaxLives       = 5
	DefaultTipAllowance   = 3
	DefaultCountdownSteps = 3
)

// Settings is a read-only snapshot of the accessibility profile
type Settings struct {
	MaxLives       int `env:"MAX_LIVES" envDefault:"5"`
	TipAllowance   int `env:"TIP_ALLOWANCE" envDefault:"3"`
	CountdownSteps int `env:"COUNTDOWN_STEPS" envDefault:"3"`
}

// Default returns the stock profile
func Default() Settings {
	return Settings{
		MaxLives:       DefaultMaxLives,
		TipAllowance:   DefaultTipAllowance,
		CountdownSteps: DefaultCountdownSteps,
	}
}

// Normalize clamps every field into its accepted range
func (s Settings) Normalize() Settings {
	s.MaxLives = clamp(s.MaxLives, MinLives, MaxLives)
	s.TipAllowance = clamp(s.TipAllowance, 0, MaxTipAllowance)
	s.CountdownSteps = clamp(s.CountdownSteps, 0, MaxCountdownSteps)
	return s
}

// HasInfiniteLives reports whether wrong selections cost lives
func (s Settings) HasInfiniteLives() bool {
	return s.MaxLives == InfiniteLives
}

// CountsTips reports whether taken tips are tracked against the allowance
func (s Settings) CountsTips() bool {
	return s.TipAllowance != TipsDisabled && s.TipAllowance != UnlimitedTips
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
