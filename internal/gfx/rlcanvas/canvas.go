// Package rlcanvas draws through raylib.
package rlcanvas

import (
	"image/color"

	"go-dungeon-platformer/internal/assets"
	"go-dungeon-platformer/internal/config"
	"go-dungeon-platformer/internal/gfx"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

// Canvas is a gfx.Canvas over the raylib window. Create it after
// rl.InitWindow and draw only between rl.BeginDrawing and rl.EndDrawing.
type Canvas struct {
	textures *assets.Cache[rl.Texture2D]
	fonts    *assets.Cache[rl.Font]
}

var _ gfx.Canvas = (*Canvas)(nil)

// New creates a canvas with empty texture and font caches rooted at dir.
func New(dir string) *Canvas {
	return &Canvas{
		textures: assets.NewCache[rl.Texture2D]("image", dir, loadTexture, rl.UnloadTexture),
		fonts:    assets.NewCache[rl.Font]("font", dir, loadFont, rl.UnloadFont),
	}
}

func loadTexture(path string) (rl.Texture2D, error) {
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return tex, errors.Errorf("raylib could not load texture %s", path)
	}
	return tex, nil
}

func loadFont(path string) (rl.Font, error) {
	font := rl.LoadFont(path)
	if font.Texture.ID == 0 {
		return font, errors.Errorf("raylib could not load font %s", path)
	}
	return font, nil
}

// LoadAssets loads every image and font of the manifest. Missing files are
// logged and skipped.
func (c *Canvas) LoadAssets(a config.Assets) {
	c.textures.LoadAll(a.Images)
	c.fonts.LoadAll(a.Fonts)
}

// Unload frees every loaded texture and font.
func (c *Canvas) Unload() {
	c.textures.Cleanup()
	c.fonts.Cleanup()
}

func (c *Canvas) font(id gfx.FontID) rl.Font {
	if font, ok := c.fonts.Get(string(id)); ok {
		return font
	}
	return rl.GetFontDefault()
}

func (c *Canvas) Size() gfx.Vec2 {
	return gfx.Vec2{X: float32(rl.GetScreenWidth()), Y: float32(rl.GetScreenHeight())}
}

func (c *Canvas) Clear(col color.RGBA) {
	rl.ClearBackground(colorToRL(col))
}

// ClearBuffers clears the back buffer, swaps, and clears the other one.
// The frame loop's own BeginDrawing/EndDrawing pair stays balanced.
func (c *Canvas) ClearBuffers(col color.RGBA) {
	rl.ClearBackground(colorToRL(col))
	rl.EndDrawing()
	rl.BeginDrawing()
	rl.ClearBackground(colorToRL(col))
	rl.EndDrawing()
	rl.BeginDrawing()
}

func (c *Canvas) MeasureText(font gfx.FontID, s string, size, spacing float32) gfx.Vec2 {
	v := rl.MeasureTextEx(c.font(font), s, size, spacing)
	return gfx.Vec2{X: v.X, Y: v.Y}
}

func (c *Canvas) DrawText(font gfx.FontID, s string, pos gfx.Vec2, size, spacing float32, col color.RGBA) {
	rl.DrawTextEx(c.font(font), s, rl.NewVector2(pos.X, pos.Y), size, spacing, colorToRL(col))
}

func (c *Canvas) DrawImage(id gfx.ImageID, dest gfx.Rect) {
	tex, ok := c.textures.Get(string(id))
	if !ok {
		return
	}
	source := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
	rl.DrawTexturePro(tex, source, rectToRL(dest), rl.NewVector2(0, 0), 0, rl.White)
}

func (c *Canvas) DrawRectangle(r gfx.Rect, col color.RGBA) {
	rl.DrawRectangleRec(rectToRL(r), colorToRL(col))
}

func (c *Canvas) DrawCircle(center gfx.Vec2, radius float32, col color.RGBA) {
	rl.DrawCircleV(rl.NewVector2(center.X, center.Y), radius, colorToRL(col))
}

func rectToRL(r gfx.Rect) rl.Rectangle {
	return rl.NewRectangle(r.X, r.Y, r.Width, r.Height)
}

// colorToRL преобразует color.RGBA в rl.Color
func colorToRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
