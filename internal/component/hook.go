package component

import "math"

// Hook is the player's rotating, extending grabber.
type Hook struct {
	X, Y       float64 // Точка крепления
	Length     int     // Текущая длина троса
	Angle      float64 // Угол в радианах
	AngleSpeed float64 // Скорость качания, знак - направление
	Direction  int     // +1 - выдвигается, -1 - втягивается
	IsFiring   bool
}

// Tip returns the position of the end of the hook.
func (h *Hook) Tip() (x, y float64) {
	l := float64(h.Length)
	return h.X + l*math.Cos(h.Angle), h.Y + l*math.Sin(h.Angle)
}

// Retract puts the hook back into sweeping at the given length without
// touching its angle.
func (h *Hook) Retract(length int) {
	h.IsFiring = false
	h.Length = length
}
