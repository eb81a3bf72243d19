package system

import (
	"testing"

	"gold-miner/internal/component"
	"gold-miner/internal/config"
	"gold-miner/internal/entity"
	"gold-miner/internal/event"
)

type captureLog struct {
	captures []event.Capture
}

func (c *captureLog) OnEvent(e event.Event) {
	if capture, ok := e.Data.(event.Capture); ok {
		c.captures = append(c.captures, capture)
	}
}

// firingWorld points the hook straight right so the tip lands exactly on
// (500, 50).
func firingWorld() *entity.World {
	w := entity.NewWorld(800)
	w.Hook.Angle = 0
	w.Hook.Length = 100
	w.Hook.IsFiring = true
	return w
}

func addMineral(w *entity.World, x, y float64, value int) component.Mineral {
	m := component.Mineral{
		ID:       w.NewEntity(),
		Position: component.Position{X: x, Y: y},
		Kind:     "circle",
		Value:    value,
		Size:     config.MineralSize,
	}
	w.Minerals = append(w.Minerals, m)
	return m
}

func TestCaptureAtDistanceZero(t *testing.T) {
	w := firingWorld()
	w.Score = 5
	target := addMineral(w, 500, 50, 17)
	addMineral(w, 200, 400, 11)

	got, ok := NewCollisionSystem(w, nil, false).Resolve()
	if !ok || got.ID != target.ID {
		t.Fatalf("Resolve = %+v, %v; want capture of %d", got, ok, target.ID)
	}
	if w.Score != 22 {
		t.Errorf("score = %d, want 22", w.Score)
	}
	if len(w.Minerals) != 1 || w.Minerals[0].ID == target.ID {
		t.Errorf("captured mineral still present: %+v", w.Minerals)
	}
	if w.Hook.IsFiring || w.Hook.Length != config.HookMinLength {
		t.Errorf("hook not reset: %+v", w.Hook)
	}
	if len(w.Labels) != 0 {
		t.Errorf("classic rules must not add labels, got %d", len(w.Labels))
	}
}

func TestNoCaptureAtExactlyRadius(t *testing.T) {
	w := firingWorld()
	addMineral(w, 515, 50, 17)

	if _, ok := NewCollisionSystem(w, nil, false).Resolve(); ok {
		t.Fatal("tip exactly one radius away must not capture")
	}
	if len(w.Minerals) != 1 || w.Score != 0 || !w.Hook.IsFiring {
		t.Fatalf("state changed without a capture: %+v", w)
	}
}

func TestFirstInOrderWinsOverNearest(t *testing.T) {
	w := firingWorld()
	first := addMineral(w, 510, 50, 3)
	addMineral(w, 500, 50, 30)

	got, ok := NewCollisionSystem(w, nil, false).Resolve()
	if !ok || got.ID != first.ID {
		t.Fatalf("captured %+v, want the first mineral in order", got)
	}
	if len(w.Minerals) != 1 || w.Score != 3 {
		t.Fatalf("exactly one capture expected, minerals=%d score=%d", len(w.Minerals), w.Score)
	}
}

func TestNoCaptureWhileSweeping(t *testing.T) {
	w := firingWorld()
	w.Hook.IsFiring = false
	addMineral(w, 500, 50, 10)

	if _, ok := NewCollisionSystem(w, nil, false).Resolve(); ok {
		t.Fatal("sweeping hook must not capture")
	}
}

func TestCaptureAddsFeedbackAndDispatches(t *testing.T) {
	w := firingWorld()
	m := addMineral(w, 500, 50, 7)

	d := event.NewDispatcher()
	log := &captureLog{}
	d.Subscribe(log, event.MineralCaptured)

	NewCollisionSystem(w, d, true).Resolve()

	if len(w.Labels) != 1 {
		t.Fatalf("labels = %d, want 1", len(w.Labels))
	}
	label := w.Labels[0]
	if label.Text != "+7" || label.Opacity != 1 || label.Position != m.Position {
		t.Errorf("label = %+v", label)
	}

	if len(log.captures) != 1 {
		t.Fatalf("captures dispatched = %d, want 1", len(log.captures))
	}
	c := log.captures[0]
	if c.MineralID != m.ID || c.Value != 7 || c.Score != 7 || c.X != 500 || c.Y != 50 {
		t.Errorf("capture payload = %+v", c)
	}
}

func TestEmptyFieldKeepsFiring(t *testing.T) {
	w := firingWorld()
	if _, ok := NewCollisionSystem(w, nil, true).Resolve(); ok {
		t.Fatal("nothing to capture")
	}
	if !w.Hook.IsFiring {
		t.Fatal("hook should keep firing over an empty field")
	}
}
