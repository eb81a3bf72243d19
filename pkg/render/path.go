package render

import "math"

// Point is a position in canvas pixels.
type Point struct {
	X, Y float64
}

// arcStep is the maximum length of a flattened arc segment, in pixels.
const arcStep = 3.0

// Path flattens canvas path calls into polygons. Backends without native
// path support (raylib, terminal) build one of these and paint the result.
type Path struct {
	closed  [][]Point
	open    [][]Point
	current []Point
}

// Reset empties the path.
func (p *Path) Reset() {
	p.closed = p.closed[:0]
	p.open = p.open[:0]
	p.current = nil
}

func (p *Path) MoveTo(x, y float64) {
	p.flush()
	p.current = []Point{{x, y}}
}

func (p *Path) LineTo(x, y float64) {
	p.current = append(p.current, Point{x, y})
}

// Arc appends a clockwise (in screen space) arc. Like a canvas, it is
// connected to the current sub-path by a straight line.
func (p *Path) Arc(x, y, radius, startAngle, endAngle float64) {
	sweep := endAngle - startAngle
	steps := ArcSegments(radius, sweep)
	for i := 0; i <= steps; i++ {
		a := startAngle + sweep*float64(i)/float64(steps)
		p.current = append(p.current, Point{x + radius*math.Cos(a), y + radius*math.Sin(a)})
	}
}

// Rect adds a closed rectangle as its own sub-path.
func (p *Path) Rect(x, y, w, h float64) {
	p.flush()
	p.closed = append(p.closed, []Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}})
}

// Close closes the current sub-path.
func (p *Path) Close() {
	if len(p.current) > 0 {
		p.closed = append(p.closed, p.current)
	}
	p.current = nil
}

func (p *Path) flush() {
	if len(p.current) > 1 {
		p.open = append(p.open, p.current)
	}
	p.current = nil
}

// Polygons returns every sub-path as a polygon, which is what Fill paints:
// open sub-paths are implicitly closed.
func (p *Path) Polygons() [][]Point {
	out := make([][]Point, 0, len(p.closed)+len(p.open)+1)
	out = append(out, p.closed...)
	out = append(out, p.open...)
	if len(p.current) > 1 {
		out = append(out, p.current)
	}
	return out
}

// Segments returns the line segments Stroke paints.
func (p *Path) Segments() [][2]Point {
	var segs [][2]Point
	chain := func(pts []Point, closed bool) {
		for i := 1; i < len(pts); i++ {
			segs = append(segs, [2]Point{pts[i-1], pts[i]})
		}
		if closed && len(pts) > 2 {
			segs = append(segs, [2]Point{pts[len(pts)-1], pts[0]})
		}
	}
	for _, poly := range p.closed {
		chain(poly, true)
	}
	for _, poly := range p.open {
		chain(poly, false)
	}
	chain(p.current, false)
	return segs
}

// ArcSegments returns how many straight segments approximate an arc.
func ArcSegments(radius, sweep float64) int {
	n := int(math.Ceil(math.Abs(sweep) * radius / arcStep))
	if n < 8 {
		n = 8
	}
	return n
}

// ContainsPoint reports whether (x, y) lies inside poly (even-odd rule).
func ContainsPoint(poly []Point, x, y float64) bool {
	inside := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		pi, pj := poly[i], poly[j]
		if (pi.Y > y) != (pj.Y > y) && x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// Bounds returns the bounding box of poly.
func Bounds(poly []Point) (minX, minY, maxX, maxY float64) {
	if len(poly) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = poly[0].X, poly[0].Y
	maxX, maxY = minX, minY
	for _, pt := range poly[1:] {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return minX, minY, maxX, maxY
}
