package component

import "go-dungeon-platformer/internal/level"

// World - всё состояние игры, которое читает рендер
type World struct {
	Level  *level.Level
	Player *Player
	Puzzle *Puzzle
}

// NewWorld создаёт мир для уровня. Игрок ставится на клетку '@',
// количество рычагов берётся из уровня.
func NewWorld(lvl *level.Level) *World {
	player := &Player{}
	if pos, ok := lvl.Find(level.Player); ok {
		player.Pos.X = float32(pos.Column)
		player.Pos.Y = float32(pos.Row)
	}
	return &World{
		Level:  lvl,
		Player: player,
		Puzzle: NewPuzzle(lvl.LeverCount()),
	}
}
