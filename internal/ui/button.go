// internal/ui/button.go
package ui

import (
	"image/color"
	"time"

	"gold-miner/internal/config"
	"gold-miner/internal/utils"
	"gold-miner/pkg/render"
)

// Button — прямоугольная кнопка с подписью
type Button struct {
	X, Y          float64
	Width, Height float64
	Text          string
	Color         color.RGBA
	Disabled      bool
	LastClickTime time.Time
}

// NewButton создаёт кнопку с левым верхним углом в (x, y)
func NewButton(x, y float64, text string, c color.RGBA) *Button {
	return &Button{
		X:      x,
		Y:      y,
		Width:  config.ButtonWidth,
		Height: config.ButtonHeight,
		Text:   text,
		Color:  c,
	}
}

// Contains проверяет, попадает ли точка в кнопку
func (b *Button) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.Width && y >= b.Y && y <= b.Y+b.Height
}

// Click registers a click at (x, y). It reports false for a miss, for a
// disabled button and for a repeat click inside the cooldown.
func (b *Button) Click(x, y float64) bool {
	if b.Disabled || !b.Contains(x, y) {
		return false
	}
	if time.Since(b.LastClickTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return false
	}
	b.LastClickTime = time.Now()
	return true
}

func (b *Button) Draw(surface render.Surface) {
	// Кнопка слегка «вспухает» после клика
	scale := utils.Pulse(time.Since(b.LastClickTime).Seconds())
	w, h := b.Width*scale, b.Height*scale
	x := b.X + (b.Width-w)/2
	y := b.Y + (b.Height-h)/2

	if b.Disabled {
		surface.SetAlpha(0.4)
		defer surface.ResetAlpha()
	}

	fill := b.Color
	if scale > 1.05 {
		fill = render.DarkenColor(fill)
	}

	surface.BeginPath()
	surface.Rect(x, y, w, h)
	surface.Fill(fill)
	surface.Stroke(config.ButtonStrokeColor, 1)

	textW := TextWidth(b.Text, config.ButtonFontSize)
	surface.FillText(b.Text, b.X+(b.Width-textW)/2, b.Y+b.Height/2+config.ButtonFontSize/3, config.ButtonFontSize, config.TextLightColor)
}

// TextWidth estimates the width of s at the given size. Backends measure
// differently, so layout uses an average glyph width.
func TextWidth(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * config.TextCharWidth
}
