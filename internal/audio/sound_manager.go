package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"gold-miner/internal/event"
)

const sampleRate = beep.SampleRate(44100)

const (
	fireFreq    = 330.0
	stopFreq    = 196.0
	effectLevel = 0.3
)

// captureNotes — короткое арпеджио на поимку минерала
var captureNotes = []float64{523.25, 659.25, 783.99}

// SoundManager plays the game's sound effects. It listens to session events
// and is safe to call before Initialize or after Close: it just stays quiet.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	dispatcher  *event.Dispatcher // откуда отписаться в Close
}

func NewSoundManager(muted bool) *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		muted: muted,
	}
}

// Initialize opens the audio device. A muted manager never touches it.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || sm.muted {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio init: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Subscribe registers the manager for the events that make a sound.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	d.Subscribe(sm, event.HookFired, event.MineralCaptured, event.SessionStopped)
	sm.mu.Lock()
	sm.dispatcher = d
	sm.mu.Unlock()
}

func (sm *SoundManager) OnEvent(e event.Event) {
	if s := Effect(e.Type); s != nil {
		sm.play(s)
	}
}

// Effect returns the sound for an event, or nil if the event is silent.
func Effect(t event.EventType) beep.Streamer {
	switch t {
	case event.HookFired:
		return Tone(sampleRate, fireFreq, 60*time.Millisecond, effectLevel)
	case event.MineralCaptured:
		return Chime(sampleRate, 70*time.Millisecond, effectLevel, captureNotes...)
	case event.SessionStopped:
		return Tone(sampleRate, stopFreq, 400*time.Millisecond, effectLevel)
	}
	return nil
}

func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Close unsubscribes the manager and silences everything still playing.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.dispatcher != nil {
		sm.dispatcher.Unsubscribe(sm)
		sm.dispatcher = nil
	}
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
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
