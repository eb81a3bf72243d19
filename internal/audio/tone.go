package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// tone is a sine wave of fixed length with a linear fade-out over its
// last quarter, so short blips do not click.
type tone struct {
	freq     float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	fadeStart := t.total * 3 / 4
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}
		val := math.Sin(2 * math.Pi * t.phase)
		if t.position >= fadeStart {
			val *= float64(t.total-t.position) / float64(t.total-fadeStart)
		}
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Tone returns a sine blip at freq lasting d, scaled to vol in [0, 1].
func Tone(rate beep.SampleRate, freq float64, d time.Duration, vol float64) beep.Streamer {
	return withVolume(&tone{freq: freq, total: rate.N(d), rate: rate}, vol)
}

// Chime plays the notes one after another, each lasting d.
func Chime(rate beep.SampleRate, d time.Duration, vol float64, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		notes = append(notes, Tone(rate, f, d, vol))
	}
	return beep.Seq(notes...)
}

// log2(0) — минус бесконечность, поэтому ноль делаем тишиной
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
