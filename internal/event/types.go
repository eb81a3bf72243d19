package event

import "gold-miner/internal/types"

const (
	SessionStarted  EventType = "SessionStarted"  // Новая сессия, счёт обнулён
	SessionStopped  EventType = "SessionStopped"  // Игрок остановил сессию
	HookFired       EventType = "HookFired"       // Крюк пошёл вниз
	MineralCaptured EventType = "MineralCaptured" // Минерал пойман
)

// Capture is the payload of MineralCaptured.
type Capture struct {
	MineralID types.EntityID
	Kind      string
	Value     int
	Score     int // счёт после поимки
	X, Y      float64
}

// Summary is the payload of SessionStarted and SessionStopped.
type Summary struct {
	Score     int
	Remaining int
}

func (Capture) payload() {}
func (Summary) payload() {}
