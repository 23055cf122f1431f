package constants

import (
	"testing"
	"time"
)

// TestRoundPacingValues guards the pacing contract relied upon by accessibility settings
func TestRoundPacingValues(t *testing.T) {
	tests := []struct {
		name     string
		actual   time.Duration
		expected time.Duration
	}{
		{"Settle delay", SettleDelay, 250 * time.Millisecond},
		{"Countdown tick", CountdownTick, 1200 * time.Millisecond},
		{"Countdown tail", CountdownTail, 1400 * time.Millisecond},
		{"Replay delay", ReplayDelay, 125 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.actual != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.actual)
			}
		})
	}
}

// TestSoundEnvelopesFitDurations verifies attack + release never exceed the sound length
func TestSoundEnvelopesFitDurations(t *testing.T) {
	tests := []struct {
		name           string
		duration, a, r time.Duration
	}{
		{"Error", ErrorSoundDuration, ErrorSoundAttack, ErrorSoundRelease},
		{"Bell", BellSoundDuration, BellSoundAttack, BellSoundFundamentalRelease},
		{"Coin note 1", CoinSoundNote1Duration, CoinSoundAttack, CoinSoundNote1Release},
		{"Coin note 2", CoinSoundNote2Duration, CoinSoundAttack, CoinSoundNote2Release},
		{"Blip", BlipSoundDuration, BlipSoundAttack, BlipSoundRelease},
		{"Tone", HighlightDuration, ToneAttack, ToneRelease},
	}

	for _, tt := range tests {
		if tt.a+tt.r > tt.duration {
			t.Errorf("%s: attack %v + release %v exceeds duration %v", tt.name, tt.a, tt.r, tt.duration)
		}
	}
}
