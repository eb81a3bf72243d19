package app

import (
	"fmt"
	"log"

	"gold-miner/internal/config"
	"gold-miner/internal/defs"
	"gold-miner/internal/event"
	"gold-miner/pkg/render"
)

// NewSession loads the mineral catalog for settings and returns a game that
// ticks into a fresh recorder. Frontends replay the recorder every frame.
func NewSession(settings config.Settings) (*Game, *render.Recorder, error) {
	catalog, err := defs.LoadFor(settings.Variant, settings.Catalog)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load minerals: %w", err)
	}

	dispatcher := event.NewDispatcher()
	field := render.NewRecorder(settings.Width, settings.Height)
	game := NewGame(settings, catalog, field, dispatcher)
	if settings.Verbose {
		game.logger = NewSessionLogger(log.Default())
		game.logger.Subscribe(dispatcher)
	}
	log.Printf("gold-miner: variant %s, seed %d", settings.Variant, game.Rng.Seed())
	return game, field, nil
}
