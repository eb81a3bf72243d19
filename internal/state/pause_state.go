// internal/state/pause_state.go
package state

import (
	"gold-miner/internal/config"
	"gold-miner/internal/input"
	"gold-miner/internal/ui"
	"gold-miner/pkg/render"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState freezes the session: no frames run until the player resumes.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
	notice        ui.Notice
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		notice:        ui.Notice{Title: "PAUSED", Lines: []string{"Press P to resume"}},
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64, in input.Commands) {
	button := s.previousState.pauseButton
	unpause := in.Pause || (in.Clicked && button.Contains(in.ClickX, in.ClickY) && button.Ready())
	if unpause {
		// Отжимаем кнопку паузы в игровом состоянии
		button.TogglePause()
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(surface render.Surface) {
	s.previousState.drawWith(surface, config.PausedColor)
	s.notice.Draw(surface)
	s.previousState.pauseButton.Draw(surface)
}

func (s *PauseState) Exit() {}
