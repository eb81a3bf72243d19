package state

import (
	"fmt"

	"gold-miner/internal/config"
	"gold-miner/internal/input"
	"gold-miner/internal/ui"
	"gold-miner/pkg/render"
)

// GameOverState shows the final score of a stopped session over its last
// frame. Start begins a new session.
type GameOverState struct {
	sm          *StateMachine
	shared      *Shared
	indicator   *ui.StateIndicator
	startButton *ui.Button
	notice      ui.Notice
}

func NewGameOverState(sm *StateMachine, shared *Shared, score int) *GameOverState {
	w := shared.width()
	return &GameOverState{
		sm:          sm,
		shared:      shared,
		indicator:   ui.NewStateIndicator(w-config.IndicatorOffsetX, config.PauseButtonY, config.IndicatorRadius),
		startButton: ui.NewButton(w-config.StartButtonOffsetX, config.ButtonY, "Start", config.ButtonColor),
		notice: ui.Notice{
			Title: "Game over",
			Lines: []string{fmt.Sprintf("Score: %d", score), "Press Enter to play again"},
		},
	}
}

func (s *GameOverState) Enter() {
	s.indicator.Flash()
}

func (s *GameOverState) Update(deltaTime float64, in input.Commands) {
	if in.Start || (in.Clicked && s.startButton.Click(in.ClickX, in.ClickY)) {
		s.shared.Session.Start()
		s.sm.SetState(NewGameState(s.sm, s.shared))
	}
}

func (s *GameOverState) Draw(surface render.Surface) {
	s.shared.Field.Replay(surface)
	s.notice.Draw(surface)
	s.startButton.Draw(surface)
	s.indicator.Draw(surface, config.StoppedColor)
}

func (s *GameOverState) Exit() {}
