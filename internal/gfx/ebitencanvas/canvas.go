// Package ebitencanvas draws through ebiten.
package ebitencanvas

import (
	"bytes"
	"image/color"
	"os"

	"go-dungeon-platformer/internal/assets"
	"go-dungeon-platformer/internal/config"
	"go-dungeon-platformer/internal/gfx"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"
)

// Canvas is a gfx.Canvas over the ebiten screen image. Bind must be called
// at the start of every Game.Draw; the game should run with
// ebiten.SetScreenClearedEveryFrame(false) so the victory trails survive.
type Canvas struct {
	screen   *ebiten.Image
	size     gfx.Vec2
	images   *assets.Cache[*ebiten.Image]
	fonts    *assets.Cache[*text.GoTextFaceSource]
	fallback *text.GoTextFaceSource

	clearNext  bool
	clearColor color.RGBA
}

var _ gfx.Canvas = (*Canvas)(nil)

// New creates a canvas with asset caches rooted at dir. Texts whose font is
// not loaded use Go Regular.
func New(dir string) (*Canvas, error) {
	fallback, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse fallback font")
	}
	return &Canvas{
		images:   assets.NewCache[*ebiten.Image]("image", dir, loadImage, (*ebiten.Image).Deallocate),
		fonts:    assets.NewCache[*text.GoTextFaceSource]("font", dir, loadFont, nil),
		fallback: fallback,
	}, nil
}

func loadImage(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	return img, err
}

func loadFont(path string) (*text.GoTextFaceSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return text.NewGoTextFaceSource(bytes.NewReader(data))
}

// LoadAssets loads every image and font of the manifest. Missing files are
// logged and skipped.
func (c *Canvas) LoadAssets(a config.Assets) {
	c.images.LoadAll(a.Images)
	c.fonts.LoadAll(a.Fonts)
}

func (c *Canvas) Unload() {
	c.images.Cleanup()
	c.fonts.Cleanup()
}

// Bind sets the image the next frame draws to and applies a pending
// ClearBuffers.
func (c *Canvas) Bind(screen *ebiten.Image) {
	c.screen = screen
	if c.clearNext {
		screen.Fill(c.clearColor)
		c.clearNext = false
	}
}

// SetSize records the layout size reported to ebiten.
func (c *Canvas) SetSize(width, height int) {
	c.size = gfx.Vec2{X: float32(width), Y: float32(height)}
}

func (c *Canvas) Size() gfx.Vec2 {
	if c.size == (gfx.Vec2{}) && c.screen != nil {
		b := c.screen.Bounds()
		return gfx.Vec2{X: float32(b.Dx()), Y: float32(b.Dy())}
	}
	return c.size
}

func (c *Canvas) Clear(col color.RGBA) {
	if c.screen != nil {
		c.screen.Fill(col)
	}
}

// ClearBuffers clears the screen at the start of the next Draw. The screen
// image keeps its content between frames, so one clear covers it.
func (c *Canvas) ClearBuffers(col color.RGBA) {
	c.clearNext = true
	c.clearColor = col
}

func (c *Canvas) face(id gfx.FontID, size float32) *text.GoTextFace {
	src, ok := c.fonts.Get(string(id))
	if !ok {
		src = c.fallback
	}
	return &text.GoTextFace{Source: src, Size: float64(size)}
}

// MeasureText returns the advance width of s and the font size as its
// height. DrawText is then called with that height as the face size.
func (c *Canvas) MeasureText(font gfx.FontID, s string, size, spacing float32) gfx.Vec2 {
	face := c.face(font, size)
	return gfx.TextExtent(s, size, spacing, func(r rune) float32 {
		return float32(text.Advance(string(r), face))
	})
}

// DrawText draws glyph by glyph so letter spacing matches MeasureText.
func (c *Canvas) DrawText(font gfx.FontID, s string, pos gfx.Vec2, size, spacing float32, col color.RGBA) {
	if c.screen == nil {
		return
	}
	face := c.face(font, size)
	x := float64(pos.X)
	for _, r := range s {
		glyph := string(r)
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, float64(pos.Y))
		op.ColorScale.ScaleWithColor(color.NRGBA(col))
		text.Draw(c.screen, glyph, face, op)
		x += text.Advance(glyph, face) + float64(spacing)
	}
}

func (c *Canvas) DrawImage(id gfx.ImageID, dest gfx.Rect) {
	img, ok := c.images.Get(string(id))
	if !ok || c.screen == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dest.Width)/float64(b.Dx()), float64(dest.Height)/float64(b.Dy()))
	op.GeoM.Translate(float64(dest.X), float64(dest.Y))
	c.screen.DrawImage(img, op)
}

func (c *Canvas) DrawRectangle(r gfx.Rect, col color.RGBA) {
	if c.screen != nil {
		vector.DrawFilledRect(c.screen, r.X, r.Y, r.Width, r.Height, color.NRGBA(col), false)
	}
}

func (c *Canvas) DrawCircle(center gfx.Vec2, radius float32, col color.RGBA) {
	if c.screen != nil {
		vector.DrawFilledCircle(c.screen, center.X, center.Y, radius, color.NRGBA(col), true)
	}
}
