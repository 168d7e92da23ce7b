// internal/state/state.go
package state

import (
	"go-dungeon-platformer/internal/component"
	"go-dungeon-platformer/internal/event"
	"go-dungeon-platformer/internal/render"
)

// State - интерфейс для всех состояний (экранов) игры
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw()
	Exit()
	Screen() Screen
}

// Context - то, с чем работают состояния: рендер, мир и события
type Context struct {
	Renderer *render.Renderer
	World    *component.World
	Events   *event.Dispatcher
}

// StateMachine - структура для управления состояниями
type StateMachine struct {
	current State
	events  *event.Dispatcher
}

// NewStateMachine создаёт машину состояний без начального состояния.
// events может быть nil.
func NewStateMachine(events *event.Dispatcher) *StateMachine {
	return &StateMachine{events: events}
}

// Current возвращает текущее состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// SetState устанавливает новое состояние и сообщает о смене экрана
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current == nil {
		return
	}
	sm.current.Enter()
	if sm.events != nil {
		sm.events.Emit(event.ScreenChanged, sm.current.Screen())
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw() {
	if sm.current != nil {
		sm.current.Draw()
	}
}
