package system

import (
	"math"

	"gold-miner/internal/config"
	"gold-miner/internal/entity"
)

// HookSystem swings the hook while it sweeps and moves it along its cable
// while it fires.
//
// The tick after the hook reaches the maximum length would overshoot; it is
// clamped back to the bound and only reverses the direction. The hook
// therefore stays at the bound for that turn tick, and a full round trip
// takes 2*travel/step+1 ticks (221 with a 600px canvas and the default step).
//
// Retraction ends on an exact integer compare with the minimum length. That
// is only reachable because the step divides maxLength-minLength, which
// config.Settings.Validate enforces.
type HookSystem struct {
	world     *entity.World
	minLength int
	maxLength int
	step      int
}

func NewHookSystem(world *entity.World, maxLength, step int) *HookSystem {
	return &HookSystem{
		world:     world,
		minLength: config.HookMinLength,
		maxLength: maxLength,
		step:      step,
	}
}

// Fire starts extending the hook. It reports false if the hook was already
// firing.
func (s *HookSystem) Fire() bool {
	h := &s.world.Hook
	if h.IsFiring {
		return false
	}
	h.IsFiring = true
	h.Direction = 1
	return true
}

// Update advances the hook by one tick.
func (s *HookSystem) Update() {
	h := &s.world.Hook
	if !h.IsFiring {
		h.Angle += h.AngleSpeed
		// Отражаемся от границ дуги
		if h.Angle > math.Pi {
			h.Angle = math.Pi
			h.AngleSpeed = -math.Abs(h.AngleSpeed)
		} else if h.Angle < 0 {
			h.Angle = 0
			h.AngleSpeed = math.Abs(h.AngleSpeed)
		}
		return
	}

	h.Length += h.Direction * s.step
	if h.Length > s.maxLength {
		h.Length = s.maxLength
		h.Direction = -1
	} else if h.Length < s.minLength {
		h.Length = s.minLength
		h.Direction = 1
	}
	if h.Length == s.minLength {
		h.IsFiring = false
	}
}
