package render

import "image/color"

// Op identifies a recorded surface call.
type Op int

const (
	OpClear Op = iota
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpArc
	OpRect
	OpClosePath
	OpFill
	OpStroke
	OpFillText
	OpSetAlpha
	OpResetAlpha
)

var opNames = [...]string{
	OpClear:      "Clear",
	OpBeginPath:  "BeginPath",
	OpMoveTo:     "MoveTo",
	OpLineTo:     "LineTo",
	OpArc:        "Arc",
	OpRect:       "Rect",
	OpClosePath:  "ClosePath",
	OpFill:       "Fill",
	OpStroke:     "Stroke",
	OpFillText:   "FillText",
	OpSetAlpha:   "SetAlpha",
	OpResetAlpha: "ResetAlpha",
}

func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return "Unknown"
	}
	return opNames[o]
}

// Command is one recorded surface call. Only the fields relevant to Op are set.
type Command struct {
	Op         Op
	X, Y       float64
	W, H       float64 // Rect
	Radius     float64 // Arc
	Start, End float64 // Arc angles
	Color      color.Color
	Width      float64 // Stroke width
	Text       string
	TextSize   float64
	Alpha      float64
}

// Recorder is a Surface that stores commands instead of painting them.
// The game ticks into a Recorder; a backend replays the last frame every
// display refresh. Clear drops the previous frame.
type Recorder struct {
	width, height int
	commands      []Command
	frames        int
}

var _ Surface = (*Recorder)(nil)

func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) Size() (int, int) { return r.width, r.height }

// Clear starts a new frame.
func (r *Recorder) Clear() {
	r.commands = r.commands[:0]
	r.frames++
	r.add(Command{Op: OpClear})
}

func (r *Recorder) BeginPath() { r.add(Command{Op: OpBeginPath}) }
func (r *Recorder) MoveTo(x, y float64) { r.add(Command{Op: OpMoveTo, X: x, Y: y}) }
func (r *Recorder) LineTo(x, y float64) { r.add(Command{Op: OpLineTo, X: x, Y: y}) }
func (r *Recorder) ClosePath() { r.add(Command{Op: OpClosePath}) }
func (r *Recorder) ResetAlpha() { r.add(Command{Op: OpResetAlpha}) }

func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64) {
	r.add(Command{Op: OpArc, X: x, Y: y, Radius: radius, Start: startAngle, End: endAngle})
}

func (r *Recorder) Rect(x, y, w, h float64) {
	r.add(Command{Op: OpRect, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) Fill(c color.Color) { r.add(Command{Op: OpFill, Color: c}) }

func (r *Recorder) Stroke(c color.Color, width float64) {
	r.add(Command{Op: OpStroke, Color: c, Width: width})
}

func (r *Recorder) FillText(s string, x, y, size float64, c color.Color) {
	r.add(Command{Op: OpFillText, Text: s, X: x, Y: y, TextSize: size, Color: c})
}

func (r *Recorder) SetAlpha(a float64) { r.add(Command{Op: OpSetAlpha, Alpha: a}) }

func (r *Recorder) add(c Command) {
	r.commands = append(r.commands, c)
}

// Frames returns how many frames were started with Clear.
func (r *Recorder) Frames() int { return r.frames }

// Commands returns a copy of the current frame.
func (r *Recorder) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Texts returns the strings drawn in the current frame, in order.
func (r *Recorder) Texts() []string {
	var texts []string
	for _, c := range r.commands {
		if c.Op == OpFillText {
			texts = append(texts, c.Text)
		}
	}
	return texts
}

// Count returns how many commands of the given kind the current frame holds.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Replay issues the current frame against dst.
func (r *Recorder) Replay(dst Surface) {
	for _, c := range r.commands {
		switch c.Op {
		case OpClear:
			dst.Clear()
		case OpBeginPath:
			dst.BeginPath()
		case OpMoveTo:
			dst.MoveTo(c.X, c.Y)
		case OpLineTo:
			dst.LineTo(c.X, c.Y)
		case OpArc:
			dst.Arc(c.X, c.Y, c.Radius, c.Start, c.End)
		case OpRect:
			dst.Rect(c.X, c.Y, c.W, c.H)
		case OpClosePath:
			dst.ClosePath()
		case OpFill:
			dst.Fill(c.Color)
		case OpStroke:
			dst.Stroke(c.Color, c.Width)
		case OpFillText:
			dst.FillText(c.Text, c.X, c.Y, c.TextSize, c.Color)
		case OpSetAlpha:
			dst.SetAlpha(c.Alpha)
		case OpResetAlpha:
			dst.ResetAlpha()
		}
	}
}
