// internal/system/render.go
package system

import (
	"fmt"
	"image/color"
	"math"

	"gold-miner/internal/config"
	"gold-miner/internal/defs"
	"gold-miner/internal/entity"
	"gold-miner/pkg/render"
)

type mineralStyle struct {
	shape  defs.Shape
	fill   color.RGBA
	stroke color.Color // nil - без обводки
}

// RenderSystem рисует поле: минералы, крюк, всплывающие очки и счёт.
// Besides drawing it only fades and lifts feedback labels.
type RenderSystem struct {
	world     *entity.World
	styles    map[string]mineralStyle
	showScore bool
}

// NewRenderSystem builds the kind → look mapping from a validated catalog.
func NewRenderSystem(world *entity.World, catalog defs.Catalog, showScore bool) *RenderSystem {
	styles := make(map[string]mineralStyle, len(catalog.Minerals))
	for _, def := range catalog.Minerals {
		st := mineralStyle{shape: def.Shape, fill: render.MustParseHex(def.Fill)}
		if def.Stroke != "" {
			st.stroke = render.MustParseHex(def.Stroke)
		}
		styles[def.ID] = st
	}
	return &RenderSystem{world: world, styles: styles, showScore: showScore}
}

func (s *RenderSystem) Draw(surface render.Surface) {
	surface.Clear()
	s.drawMinerals(surface)
	s.drawHook(surface)
	s.drawFeedback(surface)
	if s.showScore {
		surface.FillText(fmt.Sprintf("Score: %d", s.world.Score), config.ScoreX, config.ScoreY, config.ScoreFontSize, config.ScoreColor)
	}
}

func (s *RenderSystem) drawMinerals(surface render.Surface) {
	for i := range s.world.Minerals {
		m := &s.world.Minerals[i]
		st, ok := s.styles[m.Kind]
		if !ok {
			st = mineralStyle{shape: defs.ShapeCircle, fill: config.GoldColor}
		}
		x, y, r := m.Position.X, m.Position.Y, m.Radius()

		surface.BeginPath()
		switch st.shape {
		case defs.ShapeSquare:
			surface.Rect(x-r, y-r, m.Size, m.Size)
		case defs.ShapeTriangle:
			surface.MoveTo(x, y-r)
			surface.LineTo(x-r, y+r)
			surface.LineTo(x+r, y+r)
			surface.ClosePath()
		default:
			surface.Arc(x, y, r, 0, 2*math.Pi)
		}
		surface.Fill(st.fill)
		if st.stroke != nil {
			surface.Stroke(st.stroke, config.MineralStroke)
		}
	}
}

func (s *RenderSystem) drawHook(surface render.Surface) {
	h := &s.world.Hook
	tipX, tipY := h.Tip()

	surface.BeginPath()
	surface.MoveTo(h.X, h.Y)
	surface.LineTo(tipX, tipY)
	surface.Stroke(config.HookColor, config.HookLineWidth)

	surface.BeginPath()
	surface.Arc(tipX, tipY, config.HookTipRadius, 0, 2*math.Pi)
	surface.Fill(config.HookColor)
}

// drawFeedback draws every label at its current opacity, then fades it and
// moves it up. Faded labels are dropped.
func (s *RenderSystem) drawFeedback(surface render.Surface) {
	alive := s.world.Labels[:0]
	for _, label := range s.world.Labels {
		surface.SetAlpha(label.Opacity)
		surface.FillText(label.Text, label.Position.X, label.Position.Y, config.FeedbackFontSize, config.FeedbackColor)
		surface.ResetAlpha()

		label.Opacity -= config.FeedbackFade
		label.Position.Y -= config.FeedbackRise
		if label.Opacity > 0 {
			alive = append(alive, label)
		}
	}
	s.world.Labels = alive
}
