// internal/state/game_state.go
package state

import "go-dungeon-platformer/internal/render"

var _ State = (*GameState)(nil)

// GameState - идёт игра: уровень, игрок и счёт поверх
type GameState struct {
	ctx Context
}

func NewGameState(ctx Context) *GameState {
	return &GameState{ctx: ctx}
}

func (g *GameState) Enter()                   {}
func (g *GameState) Update(deltaTime float64) {}
func (g *GameState) Exit()                    {}
func (g *GameState) Screen() Screen           { return ScreenGame }

func (g *GameState) Draw() {
	r := g.ctx.Renderer
	r.ClearBackground()
	r.DrawLevel(render.SceneOf(g.ctx.World))
	r.DrawGameOverlay(g.ctx.World.Player.Score)
}
