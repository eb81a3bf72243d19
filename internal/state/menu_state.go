// internal/state/menu_state.go
package state

import (
	"gold-miner/internal/config"
	"gold-miner/internal/input"
	"gold-miner/internal/ui"
	"gold-miner/pkg/render"
)

// MenuState — экран перед первой сессией (цветной вариант)
type MenuState struct {
	sm          *StateMachine
	shared      *Shared
	startButton *ui.Button
}

func NewMenuState(sm *StateMachine, shared *Shared) *MenuState {
	w := shared.width()
	return &MenuState{
		sm:          sm,
		shared:      shared,
		startButton: ui.NewButton(w-config.StartButtonOffsetX, config.ButtonY, "Start", config.ButtonColor),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64, in input.Commands) {
	if in.Start || (in.Clicked && m.startButton.Click(in.ClickX, in.ClickY)) {
		m.shared.Session.Start()
		m.sm.SetState(NewGameState(m.sm, m.shared))
	}
}

func (m *MenuState) Draw(surface render.Surface) {
	surface.Clear()
	w, h := surface.Size()
	title := config.WindowTitle
	hint := "Press Enter or Start, then Down to fire"
	surface.FillText(title, float64(w)/2-ui.TextWidth(title, config.NoticeTitleSize)/2, float64(h)/2-10, config.NoticeTitleSize, config.TextDarkColor)
	surface.FillText(hint, float64(w)/2-ui.TextWidth(hint, config.NoticeTextSize)/2, float64(h)/2+30, config.NoticeTextSize, config.TextDarkColor)
	m.startButton.Draw(surface)
}

func (m *MenuState) Exit() {}
