// Package render draws the game: menus, the level grid with its sprites,
// the score overlay and the victory screen. It only reads game state.
package render

import (
	"image/color"

	"go-dungeon-platformer/internal/config"
	"go-dungeon-platformer/internal/event"
	"go-dungeon-platformer/internal/gfx"
	"go-dungeon-platformer/internal/level"
	"go-dungeon-platformer/internal/utils"
)

// Theme holds the texts and colors of every screen.
type Theme struct {
	Title           Text
	Subtitle        Text
	Paused          Text
	PausedForHint   Text
	Defeat          Text
	VictoryTitle    Text
	VictorySubtitle Text
	ScoreFormat     string

	Background  color.RGBA
	TextColor   color.RGBA
	ScoreShadow color.RGBA
	VictoryBall color.RGBA
}

// ThemeFromConfig builds the theme of the configured screens.
func ThemeFromConfig(cfg *config.Config) Theme {
	s := cfg.Screens
	textColor := cfg.Colors.Text.RGBA()
	format := s.ScoreFormat
	if format == "" {
		format = "Score %d"
	}
	return Theme{
		Title:           TextFromDef(s.Title, textColor),
		Subtitle:        TextFromDef(s.Subtitle, textColor),
		Paused:          TextFromDef(s.Paused, textColor),
		PausedForHint:   TextFromDef(s.PausedForHint, textColor),
		Defeat:          TextFromDef(s.Defeat, textColor),
		VictoryTitle:    TextFromDef(s.VictoryTitle, textColor),
		VictorySubtitle: TextFromDef(s.VictorySubtitle, textColor),
		ScoreFormat:     format,
		Background:      cfg.Colors.Background.RGBA(),
		TextColor:       textColor,
		ScoreShadow:     cfg.Colors.ScoreShadow.RGBA(),
		VictoryBall:     cfg.Colors.VictoryBall.RGBA(),
	}
}

// SpritesFromConfig creates one animation per configured sprite.
func SpritesFromConfig(defs map[string]config.SpriteDef) map[string]*gfx.Sprite {
	sprites := make(map[string]*gfx.Sprite, len(defs))
	for name, def := range defs {
		frames := make([]gfx.ImageID, len(def.Frames))
		for i, f := range def.Frames {
			frames[i] = gfx.ImageID(f)
		}
		sprites[name] = gfx.NewSprite(frames, def.FramesToSkip, def.Loop)
	}
	return sprites
}

// Renderer is the render context: the canvas, the metrics of the current
// screen and level, and the per-frame animation state.
type Renderer struct {
	canvas  gfx.Canvas
	theme   Theme
	tiles   map[level.Kind]Tile
	sprites map[string]*gfx.Sprite
	victory *VictoryBackground

	level   *level.Level
	metrics Metrics
	frame   uint64
}

// New creates a renderer drawing to canvas. Metrics are derived for the
// current canvas size with no level loaded.
func New(canvas gfx.Canvas, theme Theme, sprites map[string]*gfx.Sprite, balls int, rng *utils.PRNGService) *Renderer {
	if sprites == nil {
		sprites = make(map[string]*gfx.Sprite)
	}
	r := &Renderer{
		canvas:  canvas,
		theme:   theme,
		tiles:   DefaultTiles(),
		sprites: sprites,
		victory: NewVictoryBackground(balls, theme.VictoryBall, rng),
	}
	r.UpdateMetrics()
	return r
}

// SetLevel makes lvl the level metrics are derived for and re-derives them.
func (r *Renderer) SetLevel(lvl *level.Level) {
	r.level = lvl
	r.UpdateMetrics()
}

// UpdateMetrics re-derives metrics from the canvas size and the current
// level.
func (r *Renderer) UpdateMetrics() {
	r.metrics = DeriveMetrics(r.canvas.Size(), r.level)
}

func (r *Renderer) Metrics() Metrics {
	return r.metrics
}

func (r *Renderer) Victory() *VictoryBackground {
	return r.victory
}

// NextFrame advances the game frame counter sprites animate by.
func (r *Renderer) NextFrame() {
	r.frame++
}

// OnEvent re-derives metrics when a level is loaded or the window resized.
func (r *Renderer) OnEvent(e event.Event) {
	switch e.Type {
	case event.LevelLoaded:
		if lvl, ok := e.Data.(*level.Level); ok {
			r.SetLevel(lvl)
		}
	case event.WindowResized:
		r.UpdateMetrics()
	}
}
