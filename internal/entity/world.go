package entity

import (
	"gold-miner/internal/component"
	"gold-miner/internal/config"
	"gold-miner/internal/types"
)

// World is everything a session owns: the hook, the minerals left to catch,
// the floating labels and the score. Minerals keep insertion order.
type World struct {
	NextID   types.EntityID
	Hook     component.Hook
	Minerals []component.Mineral
	Labels   []component.FeedbackLabel
	Score    int
}

func NewWorld(width int) *World {
	w := &World{NextID: 1}
	w.ResetHook(width)
	return w
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// ResetHook puts the hook back to its initial pose, anchored at the top
// centre of a field of the given width.
func (w *World) ResetHook(width int) {
	w.Hook = component.Hook{
		X:          float64(width) / 2,
		Y:          config.HookAnchorY,
		Length:     config.HookMinLength,
		Angle:      config.HookInitialAngle,
		AngleSpeed: config.HookAngleSpeed,
		Direction:  1,
	}
}

// Reset clears the session state for a new round.
func (w *World) Reset(width int) {
	w.Score = 0
	w.Minerals = w.Minerals[:0]
	w.Labels = w.Labels[:0]
	w.ResetHook(width)
}

// RemoveMineralAt removes the i-th mineral, preserving the order of the rest.
func (w *World) RemoveMineralAt(i int) component.Mineral {
	m := w.Minerals[i]
	w.Minerals = append(w.Minerals[:i], w.Minerals[i+1:]...)
	return m
}
