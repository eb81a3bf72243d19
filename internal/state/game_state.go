// internal/state/game_state.go
package state

import (
	"image/color"

	"gold-miner/internal/config"
	"gold-miner/internal/input"
	"gold-miner/internal/ui"
	"gold-miner/pkg/render"
)

// GameState — идущая сессия: поле, кнопки и индикатор
type GameState struct {
	sm          *StateMachine
	shared      *Shared
	indicator   *ui.StateIndicator
	pauseButton *ui.PauseButton
	startButton *ui.Button // nil в классическом варианте
	stopButton  *ui.Button
}

func NewGameState(sm *StateMachine, shared *Shared) *GameState {
	w := shared.width()
	gs := &GameState{
		sm:          sm,
		shared:      shared,
		indicator:   ui.NewStateIndicator(w-config.IndicatorOffsetX, config.PauseButtonY, config.IndicatorRadius),
		pauseButton: ui.NewPauseButton(w-config.PauseButtonOffsetX, config.PauseButtonY, config.PauseButtonR, config.PausedColor, config.RunningColor),
	}
	if shared.Session.Variant() == config.VariantColors {
		gs.startButton = ui.NewButton(w-config.StartButtonOffsetX, config.ButtonY, "Start", config.ButtonColor)
		gs.stopButton = ui.NewButton(w-config.StopButtonOffsetX, config.ButtonY, "Stop", config.ButtonStopColor)
	}
	return gs
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
	g.indicator.Flash()
}

func (g *GameState) Update(deltaTime float64, in input.Commands) {
	session := g.shared.Session

	if in.Pause || (in.Clicked && g.pauseButton.Contains(in.ClickX, in.ClickY) && g.pauseButton.Ready()) {
		g.pauseButton.TogglePause()
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	if g.stopButton != nil {
		if in.Stop || (in.Clicked && g.stopButton.Click(in.ClickX, in.ClickY)) {
			session.Stop()
			g.sm.SetState(NewGameOverState(g.sm, g.shared, session.Score()))
			return
		}
		// Start во время игры начинает сессию заново
		if in.Start || (in.Clicked && g.startButton.Click(in.ClickX, in.ClickY)) {
			session.Start()
			g.indicator.Flash()
		}
	}

	if in.Fire {
		session.Fire()
	}
	session.Frame()
}

func (g *GameState) Draw(surface render.Surface) {
	g.drawWith(surface, config.RunningColor)
}

// drawWith draws the field and the controls with the indicator in the
// given colour. Pause and game-over screens reuse it.
func (g *GameState) drawWith(surface render.Surface, stateColor color.Color) {
	g.shared.Field.Replay(surface)
	if g.shared.Board != nil {
		g.shared.Board.Draw(surface)
	}
	if g.startButton != nil {
		g.startButton.Draw(surface)
		g.stopButton.Draw(surface)
	}
	g.pauseButton.Draw(surface)
	g.indicator.Draw(surface, stateColor)
}

func (g *GameState) Exit() {}
