package state

import (
	"gold-miner/internal/config"
	"gold-miner/internal/event"
	"gold-miner/internal/interfaces"
	"gold-miner/internal/ui"
	"gold-miner/pkg/render"
)

// Shared is what every screen of one game needs.
type Shared struct {
	Session interfaces.Session
	Field   *render.Recorder
	Board   *ui.ScoreBoard // только в классическом варианте
}

// NewRoot builds the screen machine for a session. The classic variant
// starts playing at once; the colour variant waits on a menu for Start.
// dispatcher may be nil.
func NewRoot(session interfaces.Session, field *render.Recorder, dispatcher *event.Dispatcher) *StateMachine {
	sm := NewStateMachine()
	shared := &Shared{Session: session, Field: field}

	if session.Variant() == config.VariantClassic {
		shared.Board = ui.NewScoreBoard(config.ScoreX, config.ScoreY, config.ScoreFontSize)
		if dispatcher != nil {
			shared.Board.Subscribe(dispatcher)
		}
		session.Start()
		sm.SetState(NewGameState(sm, shared))
		return sm
	}

	sm.SetState(NewMenuState(sm, shared))
	return sm
}

func (s *Shared) width() float64 {
	w, _ := s.Field.Size()
	return float64(w)
}
