// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"gold-miner/internal/config"
	"gold-miner/internal/utils"
	"gold-miner/pkg/render"
)

// PauseButton — круглая кнопка паузы: две полоски или треугольник «play»
type PauseButton struct {
	X, Y           float64
	Size           float64
	LastClickTime  time.Time
	LastToggleTime time.Time
	IsPaused       bool
	PauseColor     color.Color
	PlayColor      color.Color
}

func NewPauseButton(x, y, size float64, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(surface render.Surface) {
	rectSize := b.Size * utils.Pulse(time.Since(b.LastClickTime).Seconds())

	surface.BeginPath()
	if b.IsPaused {
		// Треугольник (play)
		surface.MoveTo(b.X-rectSize, b.Y-rectSize*1.2)
		surface.LineTo(b.X-rectSize, b.Y+rectSize*1.2)
		surface.LineTo(b.X+rectSize, b.Y)
		surface.ClosePath()
		surface.Fill(b.PlayColor)
	} else {
		// Две полоски (pause)
		width := rectSize * 0.6
		height := rectSize * 2.0
		spacing := rectSize * 0.4
		surface.Rect(b.X-width-spacing/2, b.Y-height/2, width, height)
		surface.Rect(b.X+spacing/2, b.Y-height/2, width, height)
		surface.Fill(b.PauseColor)
	}
	surface.Stroke(config.ButtonStrokeColor, 1)
}

// Contains проверяет попадание в круг радиуса Size
func (b *PauseButton) Contains(x, y float64) bool {
	return math.Hypot(x-b.X, y-b.Y) <= b.Size
}

// Ready reports whether the click cooldown has passed since the last toggle.
func (b *PauseButton) Ready() bool {
	return time.Since(b.LastToggleTime) >= time.Duration(config.ClickCooldown)*time.Millisecond
}

func (b *PauseButton) TogglePause() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}
