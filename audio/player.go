package audio

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/vi-recall/constants"
	"github.com/lixenwraith/vi-recall/core"
)

// Player renders game cues and target tones through the system speaker
//
// Without an audio device the player degrades to silent mode: every call stays safe
// and the game runs without sound.
type Player struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool

	muted      atomic.Bool
	silentMode atomic.Bool
	played     atomic.Uint64
}

// NewPlayer creates a player; the speaker is opened by Start
func NewPlayer(cfg Config) *Player {
	p := &Player{
		cfg:   cfg.Normalize(),
		mixer: &beep.Mixer{},
	}
	return p
}

// Name implements service.Service
func (p *Player) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (p *Player) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: bool start muted (optional)
func (p *Player) Init(args ...any) error {
	if len(args) > 0 {
		if muted, ok := args[0].(bool); ok {
			p.muted.Store(muted)
		}
	}
	return nil
}

// Start opens the speaker, falling back to silent mode when audio is disabled or unavailable
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if !p.cfg.Enabled {
		p.silentMode.Store(true)
		return nil
	}

	rate := p.cfg.Rate()
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		log.Printf("audio: speaker init failed: %v (continuing without audio)", err)
		p.silentMode.Store(true)
		return nil
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Stop silences all playing sounds
// beep has no speaker shutdown that is safe to repeat, clearing the mixer ensures no artifacts
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return nil
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	p.initialized = false
	return nil
}

// Play queues the sound effect of cue
// Dropped without synthesis when muted or silent; Played counts only queued sounds
func (p *Player) Play(cue core.Cue) {
	if !p.IsEnabled() {
		return
	}
	p.enqueue(CueEffect(cue, p.cfg))
}

// PlayTone queues the pitch of target for duration
func (p *Player) PlayTone(target core.Target, duration time.Duration) {
	if !p.IsEnabled() {
		return
	}
	p.enqueue(CreateTone(p.cfg, target, duration))
}

func (p *Player) enqueue(s beep.Streamer) bool {
	if s == nil {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return false
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()

	p.played.Add(1)
	return true
}

// ToggleMute toggles mute state, returns true if sound is now on
func (p *Player) ToggleMute() bool {
	newMute := !p.muted.Load()
	p.muted.Store(newMute)
	return !newMute
}

// IsMuted returns current mute state
func (p *Player) IsMuted() bool {
	return p.muted.Load()
}

// IsEnabled returns true if the player produces sound
func (p *Player) IsEnabled() bool {
	return !p.muted.Load() && !p.silentMode.Load()
}

// IsSilent reports whether the player fell back to silent mode
func (p *Player) IsSilent() bool {
	return p.silentMode.Load()
}

// Played returns the number of sounds handed to the speaker
func (p *Player) Played() uint64 {
	return p.played.Load()
}
