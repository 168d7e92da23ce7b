package gfx

import "image/color"

var (
	White = color.RGBA{255, 255, 255, 255}
	Black = color.RGBA{0, 0, 0, 255}
	Gray  = color.RGBA{130, 130, 130, 255}
)

// Fade returns c with its alpha replaced.
func Fade(c color.RGBA, alpha uint8) color.RGBA {
	c.A = alpha
	return c
}

// Blend mixes src over dst using src's alpha and returns an opaque color.
func Blend(dst, src color.RGBA) color.RGBA {
	a := uint32(src.A)
	mix := func(d, s uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*(255-a)) / 255)
	}
	return color.RGBA{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 255}
}
