// Package gfxtest provides a gfx.Canvas that records draw calls so tests can
// assert on what a renderer drew and in which order.
package gfxtest

import (
	"image/color"

	"go-dungeon-platformer/internal/gfx"
)

// OpKind identifies a recorded draw call.
type OpKind int

const (
	OpClear OpKind = iota
	OpClearBuffers
	OpText
	OpImage
	OpRectangle
	OpCircle
)

// Op is one recorded call.
type Op struct {
	Kind    OpKind
	Image   gfx.ImageID
	Font    gfx.FontID
	Text    string
	Pos     gfx.Vec2
	Rect    gfx.Rect
	Size    float32
	Spacing float32
	Radius  float32
	Color   color.RGBA
}

// Recorder is a gfx.Canvas of fixed size that records every call.
// Text is measured as a monospace font whose glyphs are half as wide as
// they are tall.
type Recorder struct {
	Width, Height float32
	Ops           []Op
}

var _ gfx.Canvas = (*Recorder)(nil)

// NewRecorder creates a recorder with the given screen size.
func NewRecorder(width, height float32) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() gfx.Vec2 { return gfx.Vec2{X: r.Width, Y: r.Height} }

func (r *Recorder) Clear(c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Color: c})
}

func (r *Recorder) ClearBuffers(c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpClearBuffers, Color: c})
}

func (r *Recorder) MeasureText(_ gfx.FontID, s string, size, spacing float32) gfx.Vec2 {
	return gfx.TextExtent(s, size, spacing, func(rune) float32 { return size * 0.5 })
}

func (r *Recorder) DrawText(font gfx.FontID, s string, pos gfx.Vec2, size, spacing float32, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Font: font, Text: s, Pos: pos, Size: size, Spacing: spacing, Color: c})
}

func (r *Recorder) DrawImage(id gfx.ImageID, dest gfx.Rect) {
	r.Ops = append(r.Ops, Op{Kind: OpImage, Image: id, Rect: dest})
}

func (r *Recorder) DrawRectangle(rect gfx.Rect, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpRectangle, Rect: rect, Color: c})
}

func (r *Recorder) DrawCircle(center gfx.Vec2, radius float32, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, Pos: center, Radius: radius, Color: c})
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Filter returns the recorded calls of the given kind, in order.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// ImagesAt returns the images drawn with their top-left corner at pos, in
// draw order.
func (r *Recorder) ImagesAt(pos gfx.Vec2) []gfx.ImageID {
	var out []gfx.ImageID
	for _, op := range r.Ops {
		if op.Kind == OpImage && op.Rect.X == pos.X && op.Rect.Y == pos.Y {
			out = append(out, op.Image)
		}
	}
	return out
}

// Texts returns the strings drawn, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Filter(OpText) {
		out = append(out, op.Text)
	}
	return out
}
