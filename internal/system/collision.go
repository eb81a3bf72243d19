package system

import (
	"fmt"
	"math"

	"gold-miner/internal/component"
	"gold-miner/internal/config"
	"gold-miner/internal/entity"
	"gold-miner/internal/event"
)

// CollisionSystem catches minerals with the tip of a firing hook.
type CollisionSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	feedback        bool // показывать "+N" над пойманным минералом
}

func NewCollisionSystem(world *entity.World, eventDispatcher *event.Dispatcher, feedback bool) *CollisionSystem {
	return &CollisionSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		feedback:        feedback,
	}
}

// Resolve captures at most one mineral: the first one, in insertion order,
// whose centre is strictly closer to the hook tip than its radius.
func (s *CollisionSystem) Resolve() (component.Mineral, bool) {
	h := &s.world.Hook
	if !h.IsFiring {
		return component.Mineral{}, false
	}

	tipX, tipY := h.Tip()
	hit := -1
	for i := range s.world.Minerals {
		m := &s.world.Minerals[i]
		if math.Hypot(tipX-m.Position.X, tipY-m.Position.Y) < m.Radius() {
			hit = i
			break
		}
	}
	if hit < 0 {
		return component.Mineral{}, false
	}

	m := s.world.RemoveMineralAt(hit)
	s.world.Score += m.Value
	h.Retract(config.HookMinLength)

	if s.feedback {
		s.world.Labels = append(s.world.Labels, component.FeedbackLabel{
			Text:     fmt.Sprintf("+%d", m.Value),
			Position: m.Position,
			Opacity:  1,
		})
	}

	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.MineralCaptured,
			Data: event.Capture{
				MineralID: m.ID,
				Kind:      m.Kind,
				Value:     m.Value,
				Score:     s.world.Score,
				X:         m.Position.X,
				Y:         m.Position.Y,
			},
		})
	}
	return m, true
}
