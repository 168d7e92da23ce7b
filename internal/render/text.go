package render

import (
	"image/color"

	"go-dungeon-platformer/internal/config"
	"go-dungeon-platformer/internal/gfx"
)

// MenuFont is the font texts use unless they name another one.
const MenuFont gfx.FontID = "menu"

// Text is a string centered on a normalized (0..1) screen position.
type Text struct {
	Str      string
	Position gfx.Vec2
	// Size is scaled by the screen scale when drawn.
	Size    float32
	Color   color.RGBA
	Spacing float32
	Font    gfx.FontID
}

// NewText creates a text with the default color, spacing and font.
func NewText(s string, pos gfx.Vec2, size float32) Text {
	if size <= 0 {
		size = config.DefaultTextSize
	}
	return Text{
		Str:      s,
		Position: pos,
		Size:     size,
		Color:    config.TextColor,
		Spacing:  config.DefaultTextSpacing,
		Font:     MenuFont,
	}
}

// TextFromDef builds a text from its config definition, falling back to
// fallback for the color when the definition has none.
func TextFromDef(def config.TextDef, fallback color.RGBA) Text {
	t := NewText(def.Text, gfx.Vec2{X: def.X, Y: def.Y}, def.Size)
	t.Color = fallback
	if def.Color != nil {
		t.Color = def.Color.RGBA()
	}
	if def.Spacing != nil {
		t.Spacing = *def.Spacing
	}
	if def.Font != "" {
		t.Font = gfx.FontID(def.Font)
	}
	return t
}

// DrawText measures the text at the current screen scale and draws it
// centered on its position.
func (r *Renderer) DrawText(t Text) {
	dims := r.canvas.MeasureText(t.Font, t.Str, t.Size*r.metrics.ScreenScale, t.Spacing)
	pos := gfx.Vec2{
		X: r.metrics.ScreenSize.X*t.Position.X - 0.5*dims.X,
		Y: r.metrics.ScreenSize.Y*t.Position.Y - 0.5*dims.Y,
	}
	r.canvas.DrawText(t.Font, t.Str, pos, dims.Y, t.Spacing, t.Color)
}
