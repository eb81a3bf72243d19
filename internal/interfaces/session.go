// internal/interfaces/session.go
package interfaces

import "gold-miner/internal/config"

// Session is the game as seen by the screens.
type Session interface {
	Start()
	Stop()
	Fire()
	Frame() bool
	Running() bool
	Score() int
	Variant() config.Variant
}
