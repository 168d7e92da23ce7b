// internal/state/pause_state.go
package state

var _ State = (*PauseState)(nil)

// PauseState - пауза. С hint=true игра остановлена ради подсказки.
type PauseState struct {
	ctx  Context
	hint bool
}

func NewPauseState(ctx Context, hint bool) *PauseState {
	return &PauseState{ctx: ctx, hint: hint}
}

func (s *PauseState) Enter()                   {}
func (s *PauseState) Update(deltaTime float64) {}
func (s *PauseState) Exit()                    {}

func (s *PauseState) Screen() Screen {
	if s.hint {
		return ScreenPauseHint
	}
	return ScreenPause
}

func (s *PauseState) Draw() {
	s.ctx.Renderer.ClearBackground()
	if s.hint {
		s.ctx.Renderer.DrawPauseHintMenu()
		return
	}
	s.ctx.Renderer.DrawPauseMenu()
}
