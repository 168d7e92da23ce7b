// Package termcanvas draws into a terminal with tcell. One terminal cell is
// one pixel; images become glyphs and translucent fills are blended into the
// cell colors.
package termcanvas

import (
	"image/color"
	"math"
	"unicode/utf8"

	"go-dungeon-platformer/internal/config"
	"go-dungeon-platformer/internal/gfx"

	"github.com/gdamore/tcell/v2"
)

const ballRune = '•'

type glyph struct {
	r     rune
	style tcell.Style
}

// Canvas is a gfx.Canvas over a tcell screen. Call Show after each frame.
type Canvas struct {
	screen tcell.Screen
	glyphs map[gfx.ImageID]glyph
}

var _ gfx.Canvas = (*Canvas)(nil)

// New creates a canvas drawing to an initialized screen. glyphs says how
// each image ID is shown.
func New(screen tcell.Screen, glyphs map[string]config.Glyph) *Canvas {
	c := &Canvas{screen: screen, glyphs: make(map[gfx.ImageID]glyph, len(glyphs))}
	for id, g := range glyphs {
		r, _ := utf8.DecodeRuneInString(g.Rune)
		if r == utf8.RuneError {
			r = ' '
		}
		c.glyphs[gfx.ImageID(id)] = glyph{
			r:     r,
			style: tcell.StyleDefault.Foreground(toTcell(g.FG.RGBA())).Background(toTcell(g.BG.RGBA())),
		}
	}
	return c
}

// Show flushes the frame to the terminal.
func (c *Canvas) Show() {
	c.screen.Show()
}

func (c *Canvas) Size() gfx.Vec2 {
	w, h := c.screen.Size()
	return gfx.Vec2{X: float32(w), Y: float32(h)}
}

func (c *Canvas) Clear(col color.RGBA) {
	style := tcell.StyleDefault.Background(toTcell(col)).Foreground(toTcell(col))
	w, h := c.screen.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// ClearBuffers clears the screen and forces a full repaint of the terminal.
func (c *Canvas) ClearBuffers(col color.RGBA) {
	c.Clear(col)
	c.screen.Sync()
}

// MeasureText ignores size and spacing: terminal text is one row high and
// one cell per rune.
func (c *Canvas) MeasureText(_ gfx.FontID, s string, _, _ float32) gfx.Vec2 {
	return gfx.Vec2{X: float32(utf8.RuneCountInString(s)), Y: 1}
}

func (c *Canvas) DrawText(_ gfx.FontID, s string, pos gfx.Vec2, _, _ float32, col color.RGBA) {
	x := round(pos.X)
	y := round(pos.Y)
	for _, r := range s {
		_, bg := c.colorsAt(x, y)
		c.screen.SetContent(x, y, r, nil, tcell.StyleDefault.Foreground(toTcell(col)).Background(bg))
		x++
	}
}

func (c *Canvas) DrawImage(id gfx.ImageID, dest gfx.Rect) {
	g, ok := c.glyphs[id]
	if !ok {
		return
	}
	c.forCells(dest, func(x, y int) {
		c.screen.SetContent(x, y, g.r, nil, g.style)
	})
}

// DrawRectangle fills opaque rectangles and blends translucent ones into
// the existing foreground and background colors.
func (c *Canvas) DrawRectangle(r gfx.Rect, col color.RGBA) {
	c.forCells(r, func(x, y int) {
		if col.A == 255 {
			c.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(toTcell(col)))
			return
		}
		primary, _, style, _ := c.screen.GetContent(x, y)
		fg, bg, _ := style.Decompose()
		style = style.
			Foreground(toTcell(gfx.Blend(fromTcell(fg), col))).
			Background(toTcell(gfx.Blend(fromTcell(bg), col)))
		c.screen.SetContent(x, y, primary, nil, style)
	})
}

func (c *Canvas) DrawCircle(center gfx.Vec2, radius float32, col color.RGBA) {
	bounds := gfx.Rect{X: center.X - radius, Y: center.Y - radius, Width: 2 * radius, Height: 2 * radius}
	c.forCells(bounds, func(x, y int) {
		dx := float64(x) + 0.5 - float64(center.X)
		dy := float64(y) + 0.5 - float64(center.Y)
		if math.Hypot(dx, dy) > float64(radius) && (x != floor(center.X) || y != floor(center.Y)) {
			return
		}
		_, bg := c.colorsAt(x, y)
		c.screen.SetContent(x, y, ballRune, nil, tcell.StyleDefault.Foreground(toTcell(col)).Background(bg))
	})
}

// forCells calls fn for every on-screen cell whose center lies in r. A
// rectangle smaller than a cell covers the cell holding its center.
func (c *Canvas) forCells(r gfx.Rect, fn func(x, y int)) {
	w, h := c.screen.Size()
	x0 := int(math.Ceil(float64(r.X) - 0.5))
	y0 := int(math.Ceil(float64(r.Y) - 0.5))
	x1 := int(math.Ceil(float64(r.X+r.Width)-0.5)) - 1
	y1 := int(math.Ceil(float64(r.Y+r.Height)-0.5)) - 1
	if x1 < x0 {
		x0 = floor(r.X + r.Width/2)
		x1 = x0
	}
	if y1 < y0 {
		y0 = floor(r.Y + r.Height/2)
		y1 = y0
	}
	for y := max(y0, 0); y <= y1 && y < h; y++ {
		for x := max(x0, 0); x <= x1 && x < w; x++ {
			fn(x, y)
		}
	}
}

func (c *Canvas) colorsAt(x, y int) (fg, bg tcell.Color) {
	_, _, style, _ := c.screen.GetContent(x, y)
	fg, bg, _ = style.Decompose()
	return fg, bg
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func fromTcell(c tcell.Color) color.RGBA {
	if c == tcell.ColorDefault {
		return gfx.Black
	}
	r, g, b := c.RGB()
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}

func floor(v float32) int {
	return int(math.Floor(float64(v)))
}
