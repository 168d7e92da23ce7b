package state

var _ State = (*VictoryState)(nil)

// VictoryState - экран победы с прыгающими шариками.
// Экран не очищается между кадрами: шарики оставляют следы.
type VictoryState struct {
	ctx Context
}

func NewVictoryState(ctx Context) *VictoryState {
	return &VictoryState{ctx: ctx}
}

// Enter разбрасывает шарики и очищает оба буфера
func (s *VictoryState) Enter() {
	s.ctx.Renderer.CreateVictoryMenuBackground()
}

func (s *VictoryState) Update(deltaTime float64) {}
func (s *VictoryState) Exit()                    {}
func (s *VictoryState) Screen() Screen           { return ScreenVictory }

func (s *VictoryState) Draw() {
	s.ctx.Renderer.DrawVictoryMenu()
}
