package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"gold-miner/internal/config"
	"gold-miner/pkg/render"
)

// ebitenSurface paints render.Surface calls onto an ebiten image with
// vector paths and DrawTriangles.
type ebitenSurface struct {
	target  *ebiten.Image
	fillImg *ebiten.Image
	path    vector.Path
	alpha   float64
	vs      []ebiten.Vertex
	is      []uint16
	font    *opentype.Font
	faces   map[int]font.Face
}

var _ render.Surface = (*ebitenSurface)(nil)

func newEbitenSurface() *ebitenSurface {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	// Встроенный шрифт Go, без файлов ассетов
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Printf("font: %v, falling back to basicfont", err)
	}
	return &ebitenSurface{
		fillImg: fillImg,
		alpha:   1,
		vs:      make([]ebiten.Vertex, 0, 64),
		is:      make([]uint16, 0, 96),
		font:    tt,
		faces:   make(map[int]font.Face),
	}
}

// bind sets the image the next calls paint on.
func (s *ebitenSurface) bind(target *ebiten.Image) {
	s.target = target
	s.alpha = 1
}

func (s *ebitenSurface) Size() (int, int) {
	b := s.target.Bounds()
	return b.Dx(), b.Dy()
}

func (s *ebitenSurface) Clear() {
	s.target.Fill(config.BackgroundColor)
}

func (s *ebitenSurface) BeginPath() { s.path = vector.Path{} }
func (s *ebitenSurface) ClosePath() { s.path.Close() }

func (s *ebitenSurface) MoveTo(x, y float64) {
	s.path.MoveTo(float32(x), float32(y))
}

func (s *ebitenSurface) LineTo(x, y float64) {
	s.path.LineTo(float32(x), float32(y))
}

func (s *ebitenSurface) Arc(x, y, radius, startAngle, endAngle float64) {
	s.path.Arc(float32(x), float32(y), float32(radius), float32(startAngle), float32(endAngle), vector.Clockwise)
}

func (s *ebitenSurface) Rect(x, y, w, h float64) {
	s.path.MoveTo(float32(x), float32(y))
	s.path.LineTo(float32(x+w), float32(y))
	s.path.LineTo(float32(x+w), float32(y+h))
	s.path.LineTo(float32(x), float32(y+h))
	s.path.Close()
}

func (s *ebitenSurface) Fill(c color.Color) {
	s.vs, s.is = s.path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	s.draw(c)
}

func (s *ebitenSurface) Stroke(c color.Color, width float64) {
	s.vs, s.is = s.path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
		Width: float32(width),
	})
	s.draw(c)
}

func (s *ebitenSurface) FillText(str string, x, y, size float64, c color.Color) {
	text.Draw(s.target, str, s.face(size), int(x), int(y), render.WithAlpha(c, s.alpha))
}

func (s *ebitenSurface) SetAlpha(a float64) { s.alpha = a }
func (s *ebitenSurface) ResetAlpha() { s.alpha = 1 }

func (s *ebitenSurface) draw(c color.Color) {
	clr := render.WithAlpha(c, s.alpha)
	for i := range s.vs {
		s.vs[i].SrcX, s.vs[i].SrcY = 0, 0
		s.vs[i].ColorR = float32(clr.R) / 255
		s.vs[i].ColorG = float32(clr.G) / 255
		s.vs[i].ColorB = float32(clr.B) / 255
		s.vs[i].ColorA = float32(clr.A) / 255
	}
	s.target.DrawTriangles(s.vs, s.is, s.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}

// face returns a cached face for the size, rounded to whole points.
func (s *ebitenSurface) face(size float64) font.Face {
	key := int(size + 0.5)
	if f, ok := s.faces[key]; ok {
		return f
	}
	var f font.Face = basicfont.Face7x13
	if s.font != nil {
		face, err := opentype.NewFace(s.font, &opentype.FaceOptions{
			Size:    float64(key),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			log.Printf("font size %d: %v", key, err)
		} else {
			f = face
		}
	}
	s.faces[key] = f
	return f
}
