package ui

import (
	"fmt"

	"gold-miner/internal/config"
	"gold-miner/internal/event"
	"gold-miner/pkg/render"
)

// ScoreBoard shows the running score next to the field. It follows the
// session through events instead of reading game state.
type ScoreBoard struct {
	X, Y  float64
	Size  float64
	score int
	text  string
}

func NewScoreBoard(x, y, size float64) *ScoreBoard {
	b := &ScoreBoard{X: x, Y: y, Size: size}
	b.set(0)
	return b
}

// Subscribe registers the board for score-changing events.
func (b *ScoreBoard) Subscribe(d *event.Dispatcher) {
	d.Subscribe(b, event.SessionStarted, event.MineralCaptured)
}

func (b *ScoreBoard) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.Capture:
		b.set(data.Score)
	case event.Summary:
		b.set(data.Score)
	}
}

func (b *ScoreBoard) Score() int { return b.score }
func (b *ScoreBoard) Text() string { return b.text }

func (b *ScoreBoard) Draw(surface render.Surface) {
	surface.FillText(b.text, b.X, b.Y, b.Size, config.ScoreColor)
}

func (b *ScoreBoard) set(score int) {
	b.score = score
	b.text = fmt.Sprintf("Score: %d", score)
}
