package gfx

// TextExtent lays s out on one line: glyph advances plus spacing between
// glyphs. The height is the font size, so drawing at the measured height
// draws at the size that was measured.
func TextExtent(s string, size, spacing float32, advance func(r rune) float32) Vec2 {
	var width float32
	n := 0
	for _, r := range s {
		width += advance(r)
		n++
	}
	if n > 1 {
		width += spacing * float32(n-1)
	}
	return Vec2{X: width, Y: size}
}
