// internal/state/state.go
package state

import (
	"gold-miner/internal/input"
	"gold-miner/pkg/render"
)

// State — интерфейс для всех экранов
type State interface {
	Enter()
	Update(deltaTime float64, in input.Commands)
	Draw(surface render.Surface)
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current возвращает активное состояние
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64, in input.Commands) {
	if sm.current != nil {
		sm.current.Update(deltaTime, in)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(surface render.Surface) {
	if sm.current != nil {
		sm.current.Draw(surface)
	}
}
