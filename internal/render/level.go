package render

import (
	"go-dungeon-platformer/internal/component"
	"go-dungeon-platformer/internal/gfx"
	"go-dungeon-platformer/internal/level"
)

// Scene is the game state a level draw reads.
type Scene struct {
	Level  *level.Level
	Player *component.Player
	Puzzle *component.Puzzle
}

// SceneOf returns the scene of a world.
func SceneOf(w *component.World) Scene {
	return Scene{Level: w.Level, Player: w.Player, Puzzle: w.Puzzle}
}

// DrawLevel draws every cell in two layers and then the player on top.
func (r *Renderer) DrawLevel(s Scene) {
	lvl := s.Level
	puzzle := s.Puzzle
	if puzzle == nil {
		puzzle = &component.Puzzle{}
	}

	for row := 0; row < lvl.Rows; row++ {
		for column := 0; column < lvl.Columns; column++ {
			pos := r.metrics.CellPos(float32(column), float32(row))
			cell := lvl.At(row, column)
			tile, ok := r.tiles[cell.Kind()]
			if !ok {
				continue
			}
			r.drawLayer(tile.Base, puzzle, cell, pos)
			r.drawLayer(tile.Overlay, puzzle, cell, pos)
		}
	}

	if s.Player != nil {
		r.DrawPlayer(s.Player.Pos)
	}
}

// DrawPlayer draws the player sprite at a cell coordinate.
func (r *Renderer) DrawPlayer(pos gfx.Vec2) {
	r.DrawSprite(SpritePlayer, r.metrics.CellPos(pos.X, pos.Y))
}

// DrawImage draws an image as a cell-sized square with its top-left corner
// at pos, in screen pixels.
func (r *Renderer) DrawImage(id gfx.ImageID, pos gfx.Vec2) {
	r.canvas.DrawImage(id, gfx.Square(pos, r.metrics.CellSize))
}

// DrawSprite draws the current frame of a named sprite like DrawImage. The
// sprite advances at most once per game frame. Unknown sprites draw nothing.
func (r *Renderer) DrawSprite(name string, pos gfx.Vec2) {
	s, ok := r.sprites[name]
	if !ok {
		return
	}
	s.Advance(r.frame)
	if id, ok := s.Current(); ok {
		r.DrawImage(id, pos)
	}
}

func (r *Renderer) drawLayer(l Layer, p *component.Puzzle, c level.Cell, pos gfx.Vec2) {
	image, sprite, ok := l.Resolve(p, c)
	if !ok {
		return
	}
	if sprite != "" {
		r.DrawSprite(sprite, pos)
		return
	}
	r.DrawImage(image, pos)
}
