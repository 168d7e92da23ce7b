package render

import (
	"go-dungeon-platformer/internal/config"
	"go-dungeon-platformer/internal/gfx"
	"go-dungeon-platformer/internal/level"
	"go-dungeon-platformer/internal/utils"
)

// Metrics are the screen-dependent sizes every draw call uses. They must be
// derived again whenever the window size or the loaded level changes.
type Metrics struct {
	ScreenSize gfx.Vec2
	// CellSize is the pixel size of one level tile.
	CellSize float32
	// ScreenScale scales text and decorations with the smaller screen side.
	ScreenScale float32
	// Shift centers the level grid in the window.
	Shift gfx.Vec2
}

// DeriveMetrics computes metrics for a screen and a level. A nil level
// yields a zero cell size; the screen scale is still valid.
func DeriveMetrics(screen gfx.Vec2, lvl *level.Level) Metrics {
	m := Metrics{
		ScreenSize:  screen,
		ScreenScale: utils.Min32(screen.X, screen.Y) / config.ScreenScaleDivisor,
	}
	if lvl == nil || lvl.Rows == 0 || lvl.Columns == 0 {
		return m
	}

	m.CellSize = utils.Min32(
		screen.X/float32(lvl.Columns),
		screen.Y/float32(lvl.Rows),
	) * config.CellScale

	levelWidth := float32(lvl.Columns) * m.CellSize
	levelHeight := float32(lvl.Rows) * m.CellSize
	m.Shift = gfx.Vec2{
		X: (screen.X - levelWidth) * 0.5,
		Y: (screen.Y - levelHeight) * 0.5,
	}
	return m
}

// CellPos returns the top-left pixel of a (possibly fractional) cell
// coordinate, x being the column and y the row.
func (m Metrics) CellPos(x, y float32) gfx.Vec2 {
	return m.Shift.Add(gfx.Vec2{X: x, Y: y}.Scale(m.CellSize))
}
