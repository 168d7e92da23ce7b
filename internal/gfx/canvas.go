// Package gfx is the drawing contract between the rendering layer and a
// concrete graphics backend (raylib, ebiten or a terminal).
package gfx

import "image/color"

// Vec2 is a screen or world coordinate.
type Vec2 struct {
	X, Y float32
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, Width, Height float32
}

// Square returns a size x size rectangle with its top-left corner at pos.
func Square(pos Vec2, size float32) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: size, Height: size}
}

// ImageID names a loaded image (texture).
type ImageID string

// FontID names a loaded font.
type FontID string

// Canvas is an immediate-mode drawing surface. All methods are called from
// the frame loop between the backend's begin-frame and end-frame.
type Canvas interface {
	// Size returns the current drawable size in pixels.
	Size() Vec2
	// Clear fills the whole surface with c.
	Clear(c color.RGBA)
	// ClearBuffers clears both the front and the back buffer so that a
	// screen which never clears itself does not show stale frames.
	ClearBuffers(c color.RGBA)
	// MeasureText returns the extent of s drawn with font at size.
	MeasureText(font FontID, s string, size, spacing float32) Vec2
	DrawText(font FontID, s string, pos Vec2, size, spacing float32, c color.RGBA)
	// DrawImage stretches the image over dest. Unknown images draw nothing.
	DrawImage(id ImageID, dest Rect)
	DrawRectangle(r Rect, c color.RGBA)
	DrawCircle(center Vec2, radius float32, c color.RGBA)
}
