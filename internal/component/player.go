package component

import "go-dungeon-platformer/internal/gfx"

// Player - позиция игрока в клетках уровня и набранные очки
type Player struct {
	Pos   gfx.Vec2
	Score int
}
