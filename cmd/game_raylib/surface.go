package main

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gold-miner/internal/config"
	"gold-miner/pkg/render"
)

// raylibSurface paints render.Surface calls with raylib immediate-mode
// primitives. Paths are flattened by render.Path; fills are triangle fans.
type raylibSurface struct {
	width, height int
	path          render.Path
	alpha         float32
}

var _ render.Surface = (*raylibSurface)(nil)

func newRaylibSurface(width, height int) *raylibSurface {
	return &raylibSurface{width: width, height: height, alpha: 1}
}

func (s *raylibSurface) Size() (int, int) { return s.width, s.height }

func (s *raylibSurface) Clear() {
	rl.ClearBackground(colorToRL(config.BackgroundColor))
}

func (s *raylibSurface) BeginPath() { s.path.Reset() }
func (s *raylibSurface) ClosePath() { s.path.Close() }
func (s *raylibSurface) MoveTo(x, y float64) { s.path.MoveTo(x, y) }
func (s *raylibSurface) LineTo(x, y float64) { s.path.LineTo(x, y) }
func (s *raylibSurface) Rect(x, y, w, h float64) { s.path.Rect(x, y, w, h) }
func (s *raylibSurface) SetAlpha(a float64) { s.alpha = float32(a) }
func (s *raylibSurface) ResetAlpha() { s.alpha = 1 }

func (s *raylibSurface) Arc(x, y, radius, startAngle, endAngle float64) {
	s.path.Arc(x, y, radius, startAngle, endAngle)
}

// Fill draws each sub-path as a triangle fan from its first point. Every
// shape the game fills is convex.
func (s *raylibSurface) Fill(c color.Color) {
	col := rl.Fade(colorToRL(c), s.alpha)
	for _, poly := range s.path.Polygons() {
		if len(poly) < 3 {
			continue
		}
		p0 := toVec(poly[0])
		for i := 1; i+1 < len(poly); i++ {
			p1, p2 := toVec(poly[i]), toVec(poly[i+1])
			// raylib ждёт обход против часовой стрелки на экране
			if (p1.X-p0.X)*(p2.Y-p0.Y)-(p1.Y-p0.Y)*(p2.X-p0.X) > 0 {
				p1, p2 = p2, p1
			}
			rl.DrawTriangle(p0, p1, p2, col)
		}
	}
}

func (s *raylibSurface) Stroke(c color.Color, width float64) {
	col := rl.Fade(colorToRL(c), s.alpha)
	for _, seg := range s.path.Segments() {
		rl.DrawLineEx(toVec(seg[0]), toVec(seg[1]), float32(width), col)
	}
}

// FillText converts the baseline position to raylib's top-left origin.
func (s *raylibSurface) FillText(str string, x, y, size float64, c color.Color) {
	rl.DrawText(str, int32(x), int32(y-size*0.8), int32(size), rl.Fade(colorToRL(c), s.alpha))
}

func toVec(p render.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

// colorToRL преобразует стандартный color.Color в rl.Color
func colorToRL(c color.Color) rl.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rl.NewColor(n.R, n.G, n.B, n.A)
}
