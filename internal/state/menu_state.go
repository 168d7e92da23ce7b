// internal/state/menu_state.go
package state

// Убеждаемся, что состояния соответствуют интерфейсу State
var (
	_ State = (*MenuState)(nil)
	_ State = (*DefeatState)(nil)
)

// MenuState - главное меню: заголовок и подзаголовок
type MenuState struct {
	ctx Context
}

func NewMenuState(ctx Context) *MenuState {
	return &MenuState{ctx: ctx}
}

func (m *MenuState) Enter()                   {}
func (m *MenuState) Update(deltaTime float64) {}
func (m *MenuState) Exit()                    {}
func (m *MenuState) Screen() Screen           { return ScreenMenu }

func (m *MenuState) Draw() {
	m.ctx.Renderer.ClearBackground()
	m.ctx.Renderer.DrawMenu()
}

// DefeatState - экран поражения
type DefeatState struct {
	ctx Context
}

func NewDefeatState(ctx Context) *DefeatState {
	return &DefeatState{ctx: ctx}
}

func (s *DefeatState) Enter()                   {}
func (s *DefeatState) Update(deltaTime float64) {}
func (s *DefeatState) Exit()                    {}
func (s *DefeatState) Screen() Screen           { return ScreenDefeat }

func (s *DefeatState) Draw() {
	s.ctx.Renderer.ClearBackground()
	s.ctx.Renderer.DrawDefeatScreen()
}
