package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"gold-miner/internal/event"
)

// drain counts the samples a finite streamer yields.
func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestToneLength(t *testing.T) {
	got := drain(Tone(sampleRate, 440, 100*time.Millisecond, 0.5))
	if want := sampleRate.N(100 * time.Millisecond); got != want {
		t.Fatalf("tone produced %d samples, want %d", got, want)
	}
}

func TestToneStaysInRange(t *testing.T) {
	s := Tone(sampleRate, 440, 50*time.Millisecond, 1)
	buf := make([][2]float64, sampleRate.N(50*time.Millisecond))
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] < -1 || buf[i][0] > 1 || buf[i][0] != buf[i][1] {
			t.Fatalf("sample %d = %v", i, buf[i])
		}
	}
	if last := buf[n-1][0]; last > 0.01 || last < -0.01 {
		t.Fatalf("tone should fade out, last sample %v", last)
	}
}

func TestChimeIsSequential(t *testing.T) {
	got := drain(Chime(sampleRate, 20*time.Millisecond, 0.5, 400, 500, 600))
	if want := 3 * sampleRate.N(20*time.Millisecond); got != want {
		t.Fatalf("chime produced %d samples, want %d", got, want)
	}
}

func TestEffects(t *testing.T) {
	for _, et := range []event.EventType{event.HookFired, event.MineralCaptured, event.SessionStopped} {
		if Effect(et) == nil {
			t.Errorf("%s has no sound", et)
		}
	}
	if Effect(event.SessionStarted) != nil {
		t.Error("SessionStarted should be silent")
	}
}

// Without a device the manager must stay quiet instead of failing.
func TestSoundManagerWithoutDevice(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("uninitialised manager panicked: %v", r)
		}
	}()

	sm := NewSoundManager(true)
	if err := sm.Initialize(); err != nil {
		t.Fatalf("muted Initialize: %v", err)
	}
	d := event.NewDispatcher()
	sm.Subscribe(d)
	d.Dispatch(event.Event{Type: event.HookFired})
	d.Dispatch(event.Event{Type: event.MineralCaptured})
	sm.SetMuted(false)
	if sm.Muted() {
		t.Fatal("SetMuted(false) ignored")
	}
	d.Dispatch(event.Event{Type: event.SessionStopped})
	sm.Close()
}

func TestSoundManagerCloseUnsubscribes(t *testing.T) {
	sm := NewSoundManager(true)
	d := event.NewDispatcher()
	sm.Subscribe(d)
	if sm.dispatcher != d {
		t.Fatal("Subscribe did not remember the dispatcher")
	}

	sm.Close()
	if sm.dispatcher != nil {
		t.Fatal("Close kept the dispatcher")
	}
	d.Dispatch(event.Event{Type: event.SessionStopped})
	sm.Close()
}
