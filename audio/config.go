package audio

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/gopxl/beep"
	"github.com/lixenwraith/vi-recall/constants"
)

// Accepted ranges, values outside are clamped by Normalize
const (
	DefaultSampleRate   = 44100
	DefaultMasterVolume = 70
	MinSampleRate       = 8000
	MaxSampleRate       = 192000
)

// Config holds the audio settings read at startup
type Config struct {
	Enabled      bool `env:"AUDIO_ENABLED" envDefault:"true"`
	MasterVolume int  `env:"MASTER_VOLUME" envDefault:"70"` // Percent, 0-100
	SampleRate   int  `env:"SAMPLE_RATE" envDefault:"44100"`
}

// DefaultConfig returns audio enabled at default volume
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: DefaultMasterVolume,
		SampleRate:   DefaultSampleRate,
	}
}

// LoadConfig loads audio configuration from VI_RECALL_AUDIO_ENABLED, VI_RECALL_MASTER_VOLUME
// and VI_RECALL_SAMPLE_RATE
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: constants.EnvPrefix}); err != nil {
		return DefaultConfig(), fmt.Errorf("parse env: %w", err)
	}
	return cfg.Normalize(), nil
}

// Normalize clamps volume and sample rate into their accepted ranges
func (c Config) Normalize() Config {
	if c.MasterVolume < 0 {
		c.MasterVolume = 0
	}
	if c.MasterVolume > 100 {
		c.MasterVolume = 100
	}
	if c.SampleRate < MinSampleRate || c.SampleRate > MaxSampleRate {
		c.SampleRate = DefaultSampleRate
	}
	return c
}

// Volume returns the master volume as a 0.0-1.0 factor
func (c Config) Volume() float64 {
	return float64(c.MasterVolume) / 100.0
}

// Rate returns the sample rate for beep
func (c Config) Rate() beep.SampleRate {
	return beep.SampleRate(c.SampleRate)
}
