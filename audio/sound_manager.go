// Package audio plays short synthesized cues for frog events
// Every Play call is a no-op until Initialize succeeds, so the game runs
// without an audio device
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/frog/game"
	"github.com/lixenwraith/frog/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetMuted silences or restores cue playback
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports whether cues are silenced
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayGrow plays a short high blip
func (sm *SoundManager) PlayGrow() {
	sm.play(beep.Take(sampleRate.N(parameter.GrowSoundDuration), NewBlipGenerator(sampleRate, parameter.GrowSoundFrequency)))
}

// PlayGameOver plays a falling crackle
func (sm *SoundManager) PlayGameOver() {
	sm.play(beep.Take(sampleRate.N(parameter.GameOverSoundDuration), NewDecayGenerator(sampleRate)))
}

// OnEvents plays the cue for a session step; game over wins over growth
func (sm *SoundManager) OnEvents(ev game.Events) {
	switch {
	case ev.Has(game.EventDied):
		sm.PlayGameOver()
	case ev.Has(game.EventGrew):
		sm.PlayGrow()
	}
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// BlipGenerator generates a sine tone with a fast attack and exponential release
type BlipGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBlipGenerator creates a blip sound generator
func NewBlipGenerator(sr beep.SampleRate, freq float64) *BlipGenerator {
	return &BlipGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	attack := float64(g.sr.N(5 * time.Millisecond))
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Min(float64(g.pos)/attack, 1.0) * math.Exp(-t*30)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error {
	return nil
}

// DecayGenerator generates a breaking/crackling sound with a falling rumble
type DecayGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewDecayGenerator creates a decay sound generator
func NewDecayGenerator(sr beep.SampleRate) *DecayGenerator {
	return &DecayGenerator{
		sr:   sr,
		seed: time.Now().UnixNano(),
	}
}

func (g *DecayGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, slower decay
		envelope := math.Exp(-t * 6)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		// Rumble slides down from 160Hz
		freq := 160 * math.Exp(-t*3)
		rumble := 0.3 * math.Sin(2*math.Pi*freq*t)

		sample := envelope * (0.2*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *DecayGenerator) Err() error {
	return nil
}
