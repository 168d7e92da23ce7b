package render

import (
	"image/color"

	"go-dungeon-platformer/internal/config"
	"go-dungeon-platformer/internal/gfx"
	"go-dungeon-platformer/internal/utils"
)

// Ball is a decorative bouncing circle of the victory screen.
type Ball struct {
	Pos    gfx.Vec2
	Vel    gfx.Vec2
	Radius float32
}

// VictoryBackground animates balls bouncing off the screen edges over a
// slowly fading previous frame, which leaves motion trails.
type VictoryBackground struct {
	Balls      []Ball
	Color      color.RGBA
	TrailAlpha uint8

	rng *utils.PRNGService
}

// NewVictoryBackground creates count balls. They stay at the origin until
// Randomize is called.
func NewVictoryBackground(count int, c color.RGBA, rng *utils.PRNGService) *VictoryBackground {
	return &VictoryBackground{
		Balls:      make([]Ball, count),
		Color:      c,
		TrailAlpha: config.VictoryBallTrailAlpha,
		rng:        rng,
	}
}

// Randomize scatters the balls over the screen with random velocities and
// radii scaled by the screen scale. No velocity component is left zero.
func (v *VictoryBackground) Randomize(screen gfx.Vec2, scale float32) {
	for i := range v.Balls {
		b := &v.Balls[i]
		b.Pos.X = v.rng.RandUpTo(screen.X)
		b.Pos.Y = v.rng.RandUpTo(screen.Y)
		b.Vel.X = clampSpeed(v.rng.RandFromTo(-config.VictoryBallMaxSpeed, config.VictoryBallMaxSpeed)*scale, scale)
		b.Vel.Y = clampSpeed(v.rng.RandFromTo(-config.VictoryBallMaxSpeed, config.VictoryBallMaxSpeed)*scale, scale)
		b.Radius = v.rng.RandFromTo(config.VictoryBallMinRadius, config.VictoryBallMaxRadius) * scale
	}
}

// clampSpeed replaces a near-zero speed with the fixed minimum speed,
// keeping its direction. The minimum does not depend on the screen scale.
func clampSpeed(speed, scale float32) float32 {
	if utils.Abs32(speed) >= config.VictoryBallMinSpeed*scale && speed != 0 {
		return speed
	}
	if speed < 0 {
		return -config.VictoryBallClampedSpeed
	}
	return config.VictoryBallClampedSpeed
}

// Animate moves every ball by its velocity and reverses the velocity on the
// axis where the ball's edge left the screen.
func (v *VictoryBackground) Animate(screen gfx.Vec2) {
	for i := range v.Balls {
		b := &v.Balls[i]
		b.Pos.X += b.Vel.X
		if b.Pos.X-b.Radius < 0 || b.Pos.X+b.Radius >= screen.X {
			b.Vel.X = -b.Vel.X
		}
		b.Pos.Y += b.Vel.Y
		if b.Pos.Y-b.Radius < 0 || b.Pos.Y+b.Radius >= screen.Y {
			b.Vel.Y = -b.Vel.Y
		}
	}
}

// Draw fades the previous frame with a translucent black rectangle and
// draws the balls over it.
func (v *VictoryBackground) Draw(c gfx.Canvas, screen gfx.Vec2) {
	c.DrawRectangle(gfx.Rect{Width: screen.X, Height: screen.Y}, gfx.Fade(gfx.Black, v.TrailAlpha))
	for _, b := range v.Balls {
		c.DrawCircle(b.Pos, b.Radius, v.Color)
	}
}
