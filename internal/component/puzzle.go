package component

// Puzzle - состояние рычагов и двери текущего уровня
type Puzzle struct {
	Levers   []bool
	DoorOpen bool
}

// NewPuzzle создаёт головоломку с count выключенными рычагами.
func NewPuzzle(count int) *Puzzle {
	return &Puzzle{Levers: make([]bool, count)}
}

// Lever возвращает состояние рычага. Несуществующий рычаг считается выключенным.
func (p *Puzzle) Lever(index int) bool {
	if index < 0 || index >= len(p.Levers) {
		return false
	}
	return p.Levers[index]
}

// SetLever задаёт состояние рычага, расширяя список при необходимости.
func (p *Puzzle) SetLever(index int, on bool) {
	if index < 0 {
		return
	}
	for len(p.Levers) <= index {
		p.Levers = append(p.Levers, false)
	}
	p.Levers[index] = on
}
