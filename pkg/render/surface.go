package render

import "image/color"

// Surface is the set of canvas-like primitives the game issues each tick.
// Path operations follow the usual 2D canvas semantics: BeginPath starts an
// empty path, Arc connects to the current point, Rect adds a closed
// sub-path, and Fill/Stroke paint whatever has been built since BeginPath.
type Surface interface {
	Size() (width, height int)
	Clear()

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, radius, startAngle, endAngle float64)
	Rect(x, y, w, h float64)
	ClosePath()
	Fill(c color.Color)
	Stroke(c color.Color, width float64)

	// FillText draws s with its baseline starting at (x, y).
	FillText(s string, x, y, size float64, c color.Color)

	SetAlpha(a float64)
	ResetAlpha()
}
