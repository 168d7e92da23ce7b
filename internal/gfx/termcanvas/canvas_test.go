package termcanvas

import (
	"image/color"
	"testing"

	"go-dungeon-platformer/internal/config"
	"go-dungeon-platformer/internal/gfx"

	"github.com/gdamore/tcell/v2"
)

func newTestCanvas(t *testing.T) (*Canvas, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(20, 10)
	return New(screen, config.Default().Assets.Glyphs), screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestSize(t *testing.T) {
	c, _ := newTestCanvas(t)
	if got := c.Size(); got != (gfx.Vec2{X: 20, Y: 10}) {
		t.Errorf("Size() = %v, want 20x10", got)
	}
}

func TestDrawImageFillsCoveredCells(t *testing.T) {
	c, screen := newTestCanvas(t)
	c.DrawImage("wall", gfx.Rect{X: 0, Y: 0, Width: 3, Height: 2})

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := runeAt(screen, x, y); got != '█' {
				t.Errorf("cell (%d,%d) = %q, want wall", x, y, got)
			}
		}
	}
	if got := runeAt(screen, 3, 0); got == '█' {
		t.Error("cell (3,0) is outside the rectangle but was drawn")
	}
}

func TestDrawImageSmallerThanCell(t *testing.T) {
	c, screen := newTestCanvas(t)
	c.DrawImage("exit", gfx.Rect{X: 5.1, Y: 5.1, Width: 0.4, Height: 0.4})
	if got := runeAt(screen, 5, 5); got != 'E' {
		t.Errorf("cell (5,5) = %q, want 'E'", got)
	}
}

func TestDrawImageUnknownIDDrawsNothing(t *testing.T) {
	c, screen := newTestCanvas(t)
	c.Clear(gfx.Black)
	c.DrawImage("missing", gfx.Rect{X: 0, Y: 0, Width: 2, Height: 2})
	if got := runeAt(screen, 0, 0); got != ' ' {
		t.Errorf("cell (0,0) = %q, want blank", got)
	}
}

func TestDrawImageClipsToScreen(t *testing.T) {
	c, screen := newTestCanvas(t)
	c.DrawImage("wall", gfx.Rect{X: -2, Y: 8, Width: 4, Height: 5})
	if got := runeAt(screen, 1, 9); got != '█' {
		t.Errorf("cell (1,9) = %q, want wall", got)
	}
}

func TestDrawTextAndMeasure(t *testing.T) {
	c, screen := newTestCanvas(t)
	if got := c.MeasureText("menu", "Hi!", 48, 4); got != (gfx.Vec2{X: 3, Y: 1}) {
		t.Errorf("MeasureText = %v, want 3x1", got)
	}
	c.DrawText("menu", "Hi", gfx.Vec2{X: 1, Y: 1}, 1, 0, gfx.White)
	if runeAt(screen, 1, 1) != 'H' || runeAt(screen, 2, 1) != 'i' {
		t.Errorf("text not drawn at (1,1): %q%q", runeAt(screen, 1, 1), runeAt(screen, 2, 1))
	}
}

func TestDrawRectangleBlendsTranslucentFill(t *testing.T) {
	c, screen := newTestCanvas(t)
	red := color.RGBA{200, 0, 0, 255}
	shade := color.RGBA{0, 0, 0, 128}
	c.DrawRectangle(gfx.Rect{X: 0, Y: 0, Width: 20, Height: 10}, red)
	c.DrawRectangle(gfx.Rect{X: 0, Y: 0, Width: 20, Height: 10}, shade)

	_, _, style, _ := screen.GetContent(4, 4)
	_, bg, _ := style.Decompose()
	r, g, b := bg.RGB()
	want := gfx.Blend(red, shade)
	if uint8(r) != want.R || uint8(g) != want.G || uint8(b) != want.B {
		t.Errorf("background = (%d,%d,%d), want %v", r, g, b, want)
	}
}

func TestDrawCircle(t *testing.T) {
	c, screen := newTestCanvas(t)
	c.DrawCircle(gfx.Vec2{X: 10.5, Y: 5.5}, 0.3, gfx.White)
	if got := runeAt(screen, 10, 5); got != ballRune {
		t.Errorf("cell (10,5) = %q, want ball", got)
	}
	if got := runeAt(screen, 11, 5); got == ballRune {
		t.Error("small ball spilled into the next cell")
	}
}

func TestClearBuffers(t *testing.T) {
	c, screen := newTestCanvas(t)
	c.DrawImage("wall", gfx.Rect{X: 0, Y: 0, Width: 20, Height: 10})
	c.ClearBuffers(gfx.Black)
	for _, p := range [][2]int{{0, 0}, {19, 9}, {7, 3}} {
		if got := runeAt(screen, p[0], p[1]); got != ' ' {
			t.Errorf("cell %v = %q after ClearBuffers, want blank", p, got)
		}
	}
}
