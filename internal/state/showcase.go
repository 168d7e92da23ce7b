package state

// Showcase по очереди показывает все экраны, каждый interval секунд.
// При interval <= 0 экран не меняется.
type Showcase struct {
	sm       *StateMachine
	ctx      Context
	interval float64
	elapsed  float64
	index    int
}

// NewShowcase запускает показ с экрана start.
func NewShowcase(sm *StateMachine, ctx Context, start Screen, interval float64) *Showcase {
	s := &Showcase{sm: sm, ctx: ctx, interval: interval}
	for i, screen := range Screens {
		if screen == start {
			s.index = i
		}
	}
	sm.SetState(New(Screens[s.index], ctx))
	return s
}

// Update обновляет текущий экран и переключает его по таймеру
func (s *Showcase) Update(deltaTime float64) {
	s.sm.Update(deltaTime)
	if s.interval <= 0 {
		return
	}
	s.elapsed += deltaTime
	if s.elapsed < s.interval {
		return
	}
	s.elapsed = 0
	s.index = (s.index + 1) % len(Screens)
	s.sm.SetState(New(Screens[s.index], s.ctx))
}

func (s *Showcase) Draw() {
	s.sm.Draw()
}

// Screen возвращает текущий экран.
func (s *Showcase) Screen() Screen {
	return Screens[s.index]
}
