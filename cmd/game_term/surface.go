package main

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"gold-miner/internal/config"
	"gold-miner/internal/utils"
	"gold-miner/pkg/render"
)

// termSurface rasterises render.Surface calls onto terminal cells. The
// logical canvas keeps the field size; each cell covers a block of it.
type termSurface struct {
	screen        tcell.Screen
	width, height int
	sx, sy        float64 // клеток на пиксель
	path          render.Path
	alpha         float64
}

var _ render.Surface = (*termSurface)(nil)

func newTermSurface(screen tcell.Screen, width, height int) *termSurface {
	s := &termSurface{screen: screen, width: width, height: height, alpha: 1}
	s.resize()
	return s
}

// resize recomputes the cell scale after a terminal resize.
func (s *termSurface) resize() {
	cols, rows := s.screen.Size()
	s.sx = float64(cols) / float64(s.width)
	s.sy = float64(rows) / float64(s.height)
}

// toCanvas maps a cell to the canvas point at its centre.
func (s *termSurface) toCanvas(col, row int) (float64, float64) {
	return (float64(col) + 0.5) / s.sx, (float64(row) + 0.5) / s.sy
}

func (s *termSurface) Size() (int, int) { return s.width, s.height }

func (s *termSurface) Clear() {
	s.screen.Fill(' ', tcell.StyleDefault.Background(toTcell(config.BackgroundColor)).Foreground(toTcell(config.TextDarkColor)))
}

func (s *termSurface) BeginPath() { s.path.Reset() }
func (s *termSurface) ClosePath() { s.path.Close() }
func (s *termSurface) MoveTo(x, y float64) { s.path.MoveTo(x, y) }
func (s *termSurface) LineTo(x, y float64) { s.path.LineTo(x, y) }
func (s *termSurface) Rect(x, y, w, h float64) { s.path.Rect(x, y, w, h) }
func (s *termSurface) SetAlpha(a float64) { s.alpha = a }
func (s *termSurface) ResetAlpha() { s.alpha = 1 }

func (s *termSurface) Arc(x, y, radius, startAngle, endAngle float64) {
	s.path.Arc(x, y, radius, startAngle, endAngle)
}

// Fill paints every cell whose centre lies inside a sub-path. Shapes smaller
// than a cell still mark the cell under their centre.
func (s *termSurface) Fill(c color.Color) {
	cols, rows := s.screen.Size()
	for _, poly := range s.path.Polygons() {
		minX, minY, maxX, maxY := render.Bounds(poly)
		c0, r0 := int(math.Floor(minX*s.sx)), int(math.Floor(minY*s.sy))
		c1, r1 := int(math.Ceil(maxX*s.sx)), int(math.Ceil(maxY*s.sy))
		painted := false
		for row := max(r0, 0); row <= min(r1, rows-1); row++ {
			for col := max(c0, 0); col <= min(c1, cols-1); col++ {
				x, y := s.toCanvas(col, row)
				if render.ContainsPoint(poly, x, y) {
					s.paint(col, row, c)
					painted = true
				}
			}
		}
		if !painted {
			s.paint(int((minX+maxX)/2*s.sx), int((minY+maxY)/2*s.sy), c)
		}
	}
}

// Stroke paints the cells along each segment; width is below cell
// resolution and is ignored.
func (s *termSurface) Stroke(c color.Color, width float64) {
	for _, seg := range s.path.Segments() {
		a, b := seg[0], seg[1]
		steps := int(math.Max(math.Abs(b.X-a.X)*s.sx, math.Abs(b.Y-a.Y)*s.sy)*2) + 1
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			s.paint(int(utils.Lerp(a.X, b.X, t)*s.sx), int(utils.Lerp(a.Y, b.Y, t)*s.sy), c)
		}
	}
}

// FillText writes s from the cell under (x, y). The baseline sits on the
// lower part of a glyph, so the row is taken a third of the size above it.
func (s *termSurface) FillText(str string, x, y, size float64, c color.Color) {
	cols, rows := s.screen.Size()
	row := int((y - size/3) * s.sy)
	col := int(x * s.sx)
	if row < 0 || row >= rows {
		return
	}
	fg := toTcell(render.WithAlpha(c, s.alpha))
	for _, r := range str {
		if col >= 0 && col < cols {
			_, _, style, _ := s.screen.GetContent(col, row)
			s.screen.SetContent(col, row, r, nil, style.Foreground(fg))
		}
		col++
	}
}

// paint blends c over the cell background at the current alpha.
func (s *termSurface) paint(col, row int, c color.Color) {
	cols, rows := s.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	mainc, combc, style, _ := s.screen.GetContent(col, row)
	_, bg, _ := style.Decompose()
	s.screen.SetContent(col, row, mainc, combc, style.Background(blend(c, bg, s.alpha)))
}

func blend(c color.Color, under tcell.Color, alpha float64) tcell.Color {
	src := render.ToRGBA(c)
	a := alpha * float64(src.A) / 255
	if a >= 1 || !under.Valid() {
		return toTcell(src)
	}
	ur, ug, ub := under.RGB()
	// src уже premultiplied
	mix := func(s uint8, d int32) int32 {
		return int32(float64(s)*alpha + float64(d)*(1-a))
	}
	return tcell.NewRGBColor(mix(src.R, ur), mix(src.G, ug), mix(src.B, ub))
}

func toTcell(c color.Color) tcell.Color {
	rgba := render.ToRGBA(c)
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}
