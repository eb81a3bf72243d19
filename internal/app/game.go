// internal/app/game.go
package app

import (
	"gold-miner/internal/config"
	"gold-miner/internal/defs"
	"gold-miner/internal/entity"
	"gold-miner/internal/event"
	"gold-miner/internal/loop"
	"gold-miner/internal/system"
	"gold-miner/internal/utils"
	"gold-miner/pkg/render"
)

// Game is one player's session: it owns the world, the systems that advance
// it and the frame scheduler that drives them.
type Game struct {
	Settings        config.Settings
	Catalog         defs.Catalog
	World           *entity.World
	HookSystem      *system.HookSystem
	CollisionSystem *system.CollisionSystem
	RenderSystem    *system.RenderSystem
	EventDispatcher *event.Dispatcher
	Scheduler       *loop.Scheduler
	Rng             *utils.PRNGService

	surface       render.Surface
	logger        *SessionLogger
	running       bool
	fireRequested bool
}

// NewGame wires a session that ticks into surface. The catalog must be
// valid (defs.Catalog.Validate).
func NewGame(settings config.Settings, catalog defs.Catalog, surface render.Surface, eventDispatcher *event.Dispatcher) *Game {
	world := entity.NewWorld(settings.Width)
	colors := settings.Variant == config.VariantColors
	return &Game{
		Settings:        settings,
		Catalog:         catalog,
		World:           world,
		HookSystem:      system.NewHookSystem(world, settings.MaxHookLength(), settings.HookStep),
		CollisionSystem: system.NewCollisionSystem(world, eventDispatcher, colors),
		RenderSystem:    system.NewRenderSystem(world, catalog, colors),
		EventDispatcher: eventDispatcher,
		Scheduler:       loop.NewScheduler(),
		Rng:             utils.NewPRNGService(settings.Seed),
		surface:         surface,
	}
}

// Start begins a new session: score 0, no labels, a fresh batch of
// minerals, the hook back at rest, and the tick armed.
func (g *Game) Start() {
	g.World.Reset(g.Settings.Width)
	GenerateMinerals(g.World, g.Catalog, g.Rng, g.Settings.Width, g.Settings.Height)
	g.fireRequested = false
	g.running = true
	g.Scheduler.RequestFrame(g.tick)
	g.dispatch(event.SessionStarted, event.Summary{Score: 0, Remaining: len(g.World.Minerals)})
}

// Stop ends the session and drops the pending tick, so no frame runs after it.
func (g *Game) Stop() {
	if !g.running {
		return
	}
	g.running = false
	g.Scheduler.Cancel()
	g.dispatch(event.SessionStopped, event.Summary{Score: g.World.Score, Remaining: len(g.World.Minerals)})
}

// Close stops the session and detaches the session logger, if any.
func (g *Game) Close() {
	g.Stop()
	if g.logger != nil {
		g.logger.Close()
		g.logger = nil
	}
}

// Fire asks for the hook to drop on the next tick. Ignored when no session
// is running; a hook already firing ignores it too.
func (g *Game) Fire() {
	if g.running {
		g.fireRequested = true
	}
}

// Frame runs the scheduled tick, if any. Hosts call it once per display
// frame.
func (g *Game) Frame() bool {
	return g.Scheduler.RunFrame()
}

func (g *Game) Running() bool { return g.running }
func (g *Game) Score() int { return g.World.Score }
func (g *Game) Remaining() int { return len(g.World.Minerals) }
func (g *Game) Variant() config.Variant { return g.Settings.Variant }

func (g *Game) tick() {
	if !g.running {
		return
	}

	if g.fireRequested {
		g.fireRequested = false
		if g.HookSystem.Fire() {
			g.dispatch(event.HookFired, nil)
		}
	}
	g.HookSystem.Update()
	g.CollisionSystem.Resolve()
	g.RenderSystem.Draw(g.surface)

	// слушатель мог остановить сессию посреди тика
	if g.running {
		g.Scheduler.RequestFrame(g.tick)
	}
}

func (g *Game) dispatch(t event.EventType, data event.Payload) {
	if g.EventDispatcher != nil {
		g.EventDispatcher.Dispatch(event.Event{Type: t, Data: data})
	}
}
