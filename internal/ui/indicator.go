// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"gold-miner/internal/config"
	"gold-miner/internal/utils"
	"gold-miner/pkg/render"
)

// StateIndicator — кружок в углу, цвет показывает состояние сессии
type StateIndicator struct {
	X, Y          float64
	Radius        float64
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float64) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(surface render.Surface, stateColor color.Color) {
	r := i.Radius * utils.Pulse(time.Since(i.LastClickTime).Seconds())

	surface.BeginPath()
	surface.Arc(i.X, i.Y, r, 0, 2*math.Pi)
	surface.Fill(stateColor)
	surface.Stroke(config.ButtonStrokeColor, 1)
}

// Flash restarts the pulse, e.g. when the state changes.
func (i *StateIndicator) Flash() {
	i.LastClickTime = time.Now()
}
