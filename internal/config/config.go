// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	TargetFPS    = 60
	MaxDeltaTime = 0.06

	// CellScale - доля экрана, которую занимает сетка уровня
	CellScale = 0.6
	// ScreenScaleDivisor - делитель минимальной стороны экрана для масштаба UI
	ScreenScaleDivisor = 700.0

	VictoryBallCount        = 2000
	VictoryBallMaxSpeed     = 2.0
	VictoryBallMinRadius    = 2.0
	VictoryBallMaxRadius    = 3.0
	VictoryBallTrailAlpha   = 10
	VictoryBallMinSpeed     = 0.1 // ниже этого скорость считается нулевой
	VictoryBallClampedSpeed = 1.0

	DefaultTextSize    = 32.0
	DefaultTextSpacing = 4.0

	ScoreTextSize = 48.0
	ScoreX        = 0.50
	ScoreY        = 0.05
	ScoreShadowDX = 0.003
	ScoreShadowDY = 0.005

	ShowcaseInterval = 4.0 // секунд на каждый экран в режиме показа
)

var (
	BackgroundColor  = color.RGBA{0, 0, 0, 255}
	TextColor        = color.RGBA{255, 255, 255, 255}
	ScoreShadowColor = color.RGBA{130, 130, 130, 255}
	VictoryBallColor = color.RGBA{180, 180, 180, 255}
)
