package render

import (
	"fmt"

	"go-dungeon-platformer/internal/config"
	"go-dungeon-platformer/internal/gfx"
)

// ClearBackground fills the screen with the theme background.
func (r *Renderer) ClearBackground() {
	r.canvas.Clear(r.theme.Background)
}

func (r *Renderer) DrawMenu() {
	r.DrawText(r.theme.Title)
	r.DrawText(r.theme.Subtitle)
}

func (r *Renderer) DrawDefeatScreen() {
	r.DrawText(r.theme.Defeat)
}

func (r *Renderer) DrawPauseMenu() {
	r.DrawText(r.theme.Paused)
}

func (r *Renderer) DrawPauseHintMenu() {
	r.DrawText(r.theme.PausedForHint)
}

// DrawGameOverlay draws the score with a drop shadow beneath it.
func (r *Renderer) DrawGameOverlay(score int) {
	str := fmt.Sprintf(r.theme.ScoreFormat, score)

	text := NewText(str, gfx.Vec2{X: config.ScoreX, Y: config.ScoreY}, config.ScoreTextSize)
	text.Color = r.theme.TextColor

	shadow := text
	shadow.Position = gfx.Vec2{X: config.ScoreX + config.ScoreShadowDX, Y: config.ScoreY + config.ScoreShadowDY}
	shadow.Color = r.theme.ScoreShadow

	r.DrawText(shadow)
	r.DrawText(text)
}

// CreateVictoryMenuBackground scatters the victory balls and clears both
// render buffers, so the trail effect does not start from a stale frame of
// the previous screen.
func (r *Renderer) CreateVictoryMenuBackground() {
	r.victory.Randomize(r.metrics.ScreenSize, r.metrics.ScreenScale)
	r.canvas.ClearBuffers(gfx.Black)
}

// DrawVictoryMenu advances and draws the ball animation, then the victory
// texts. The screen must not be cleared between frames.
func (r *Renderer) DrawVictoryMenu() {
	r.victory.Animate(r.metrics.ScreenSize)
	r.victory.Draw(r.canvas, r.metrics.ScreenSize)

	r.DrawText(r.theme.VictoryTitle)
	r.DrawText(r.theme.VictorySubtitle)
}
