package constants

import "time"

// Audio Engine Timing
const (
	// AudioBufferDuration is the speaker buffer length handed to the audio device
	AudioBufferDuration = 100 * time.Millisecond
)

// Wrong Selection Sound Timing
const (
	ErrorSoundDuration = 180 * time.Millisecond
	ErrorSoundAttack   = 5 * time.Millisecond
	ErrorSoundRelease  = 40 * time.Millisecond
)

// Correct Selection Bell Timing
const (
	BellSoundDuration           = 350 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 300 * time.Millisecond
	BellSoundOvertoneRelease    = 120 * time.Millisecond
)

// Level Completed Chime Timing
const (
	CoinSoundNote1Duration = 80 * time.Millisecond
	CoinSoundNote2Duration = 280 * time.Millisecond
	CoinSoundAttack        = 5 * time.Millisecond
	CoinSoundNote1Release  = 40 * time.Millisecond
	CoinSoundNote2Release  = 200 * time.Millisecond
)

// Countdown Blip Timing
const (
	BlipSoundDuration = 90 * time.Millisecond
	BlipSoundAttack   = 3 * time.Millisecond
	BlipSoundRelease  = 40 * time.Millisecond
)

// Target tones, one per quadrant (classic four-tone board, in Hz)
const (
	ToneTopLeft     = 415.30 // G#4
	ToneTopRight    = 310.00 // D#4
	ToneBottomLeft  = 252.00 // B3
	ToneBottomRight = 209.00 // G#3

	ToneAttack  = 10 * time.Millisecond
	ToneRelease = 120 * time.Millisecond
)
