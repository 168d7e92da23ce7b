package app

import (
	"time"

	"go-dungeon-platformer/internal/config"
	"go-dungeon-platformer/internal/gfx/rlcanvas"
	"go-dungeon-platformer/internal/settings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RunRaylib opens a raylib window and runs the game until it is closed.
func RunRaylib(cfg *config.Config, st *settings.Manager, opts Options) error {
	if cfg.Window.Resizable {
		rl.SetConfigFlags(rl.FlagWindowResizable)
	}
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Window.TargetFPS))
	if st != nil && st.Get().Fullscreen {
		rl.ToggleFullscreen()
	}

	canvas := rlcanvas.New(cfg.Assets.Dir)
	canvas.LoadAssets(cfg.Assets)
	defer canvas.Unload()

	// Экран победы очищает буферы уже при входе, поэтому всё
	// обновление идёт между BeginDrawing и EndDrawing.
	rl.BeginDrawing()
	a, err := New(cfg, canvas, st, opts)
	rl.EndDrawing()
	if err != nil {
		return err
	}

	lastUpdateTime := time.Now()
	for !rl.WindowShouldClose() {
		now := time.Now()
		deltaTime := now.Sub(lastUpdateTime).Seconds()
		lastUpdateTime = now

		if rl.IsWindowResized() {
			a.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
		}

		rl.BeginDrawing()
		a.Update(deltaTime)
		a.Draw()
		rl.EndDrawing()
	}
	return nil
}
