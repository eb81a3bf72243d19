package system

import (
	"math"
	"testing"

	"gold-miner/internal/config"
	"gold-miner/internal/entity"
)

func newHookFixture() (*entity.World, *HookSystem) {
	world := entity.NewWorld(config.ScreenWidth)
	return world, NewHookSystem(world, config.ScreenHeight, config.HookStep)
}

func TestSweepStaysWithinArcAndBounces(t *testing.T) {
	world, hooks := newHookFixture()

	flips := 0
	for i := 0; i < 1000; i++ {
		before := world.Hook.AngleSpeed
		hooks.Update()
		h := world.Hook
		if h.Angle < 0 || h.Angle > math.Pi {
			t.Fatalf("tick %d: angle %v left [0, pi]", i, h.Angle)
		}
		if math.Signbit(before) != math.Signbit(h.AngleSpeed) {
			flips++
			if h.Angle != 0 && h.Angle != math.Pi {
				t.Fatalf("tick %d: speed flipped away from a bound, angle %v", i, h.Angle)
			}
		}
	}
	if flips == 0 {
		t.Fatal("hook never bounced in 1000 ticks")
	}
}

func TestSweepFlipsAtUpperBound(t *testing.T) {
	world, hooks := newHookFixture()
	world.Hook.Angle = math.Pi - 0.01

	hooks.Update()
	if world.Hook.Angle != math.Pi || world.Hook.AngleSpeed != -config.HookAngleSpeed {
		t.Fatalf("after crossing pi: angle %v speed %v", world.Hook.Angle, world.Hook.AngleSpeed)
	}
	hooks.Update()
	if math.Abs(world.Hook.Angle-(math.Pi-config.HookAngleSpeed)) > 1e-12 {
		t.Fatalf("hook did not swing back, angle %v", world.Hook.Angle)
	}
}

func TestSweepFlipsAtLowerBound(t *testing.T) {
	world, hooks := newHookFixture()
	world.Hook.Angle = 0.01
	world.Hook.AngleSpeed = -config.HookAngleSpeed

	hooks.Update()
	if world.Hook.Angle != 0 || world.Hook.AngleSpeed != config.HookAngleSpeed {
		t.Fatalf("after crossing 0: angle %v speed %v", world.Hook.Angle, world.Hook.AngleSpeed)
	}
}

func TestFireExtendsAndRetractsToExactlyMinLength(t *testing.T) {
	world, hooks := newHookFixture()
	angle := world.Hook.Angle

	if !hooks.Fire() {
		t.Fatal("Fire on a sweeping hook should succeed")
	}

	maxSeen := 0
	ticks := 0
	for world.Hook.IsFiring {
		hooks.Update()
		ticks++
		l := world.Hook.Length
		if l < config.HookMinLength || l > config.ScreenHeight {
			t.Fatalf("tick %d: length %d outside [%d, %d]", ticks, l, config.HookMinLength, config.ScreenHeight)
		}
		if world.Hook.Angle != angle {
			t.Fatalf("angle changed while firing")
		}
		if l > maxSeen {
			maxSeen = l
		}
		if ticks > 1000 {
			t.Fatal("hook never retracted")
		}
	}

	if world.Hook.Length != config.HookMinLength {
		t.Fatalf("final length %d, want %d", world.Hook.Length, config.HookMinLength)
	}
	if maxSeen != config.ScreenHeight {
		t.Fatalf("hook reached %d, want %d", maxSeen, config.ScreenHeight)
	}
	// 110 steps down, one tick turning at the bottom, 110 steps back.
	if ticks != 221 {
		t.Fatalf("round trip took %d ticks, want 221", ticks)
	}
}

func TestFireIgnoredWhileFiring(t *testing.T) {
	world, hooks := newHookFixture()
	hooks.Fire()
	world.Hook.Direction = -1
	world.Hook.Length = 300

	if hooks.Fire() {
		t.Fatal("second Fire should be ignored")
	}
	if world.Hook.Direction != -1 {
		t.Fatal("ignored Fire must not change direction")
	}
}

func TestHookHoldsAtMaxLengthForTurnTick(t *testing.T) {
	world, hooks := newHookFixture()
	hooks.Fire()
	world.Hook.Length = config.ScreenHeight - config.HookStep

	hooks.Update()
	if world.Hook.Length != config.ScreenHeight || world.Hook.Direction != 1 {
		t.Fatalf("reaching the bound: length %d direction %v", world.Hook.Length, world.Hook.Direction)
	}
	hooks.Update()
	if world.Hook.Length != config.ScreenHeight || world.Hook.Direction != -1 {
		t.Fatalf("turn tick: length %d direction %v, want clamped at %d going up", world.Hook.Length, world.Hook.Direction, config.ScreenHeight)
	}
	hooks.Update()
	if world.Hook.Length != config.ScreenHeight-config.HookStep {
		t.Fatalf("after turn: length %d", world.Hook.Length)
	}
}
