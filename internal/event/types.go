// internal/event/types.go
package event

const (
	LevelLoaded   EventType = "LevelLoaded"   // Загружен уровень, Data - *level.Level
	WindowResized EventType = "WindowResized" // Изменился размер окна, Data - gfx.Vec2
	ScreenChanged EventType = "ScreenChanged" // Сменился экран, Data - название экрана
)
