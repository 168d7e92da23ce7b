// Package app wires configuration, game state, the renderer and the screen
// state machine together and runs them on a graphics backend.
package app

import (
	"log"

	"go-dungeon-platformer/internal/component"
	"go-dungeon-platformer/internal/config"
	"go-dungeon-platformer/internal/event"
	"go-dungeon-platformer/internal/gfx"
	"go-dungeon-platformer/internal/level"
	"go-dungeon-platformer/internal/render"
	"go-dungeon-platformer/internal/settings"
	"go-dungeon-platformer/internal/state"
	"go-dungeon-platformer/internal/utils"

	"github.com/pkg/errors"
)

// Options choose what the app shows.
type Options struct {
	// Screen is the first screen shown.
	Screen state.Screen
	// Interval is how many seconds each screen is shown before the next one.
	// Zero keeps the first screen.
	Interval float64
}

// App - корень композиции: мир, рендер, события и экраны
type App struct {
	cfg      *config.Config
	settings *settings.Manager
	events   *event.Dispatcher
	world    *component.World
	renderer *render.Renderer
	showcase *state.Showcase
}

// New builds the game world from cfg and a renderer drawing to canvas.
// st may be nil.
func New(cfg *config.Config, canvas gfx.Canvas, st *settings.Manager, opts Options) (*App, error) {
	lvl, err := level.New(cfg.Level)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build level")
	}
	world := NewWorld(lvl, cfg.Puzzle)

	rng := utils.NewPRNGService(cfg.Seed)
	renderer := render.New(
		canvas,
		render.ThemeFromConfig(cfg),
		render.SpritesFromConfig(cfg.Assets.Sprites),
		config.VictoryBallCount,
		rng,
	)

	events := event.NewDispatcher()
	events.Subscribe(renderer, event.LevelLoaded, event.WindowResized)
	events.Subscribe(event.ListenerFunc(func(e event.Event) {
		log.Printf("[App] Screen changed: %v", e.Data)
	}), event.ScreenChanged)
	events.Emit(event.LevelLoaded, lvl)

	a := &App{
		cfg:      cfg,
		settings: st,
		events:   events,
		world:    world,
		renderer: renderer,
	}

	start := opts.Screen
	if start == "" {
		start = state.ScreenMenu
	}
	ctx := state.Context{Renderer: renderer, World: world, Events: events}
	a.showcase = state.NewShowcase(state.NewStateMachine(events), ctx, start, opts.Interval)
	return a, nil
}

// NewWorld creates the world of lvl with the configured puzzle start state.
func NewWorld(lvl *level.Level, start config.PuzzleStart) *component.World {
	world := component.NewWorld(lvl)
	for i, on := range start.Levers {
		world.Puzzle.SetLever(i, on)
	}
	world.Puzzle.DoorOpen = start.DoorOpen
	world.Player.Score = start.Score
	return world
}

// Update advances one game frame.
func (a *App) Update(deltaTime float64) {
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.renderer.NextFrame()
	a.showcase.Update(deltaTime)
}

// Draw draws the current screen.
func (a *App) Draw() {
	a.showcase.Draw()
}

// Resize re-derives the render metrics for the new window size and
// remembers the size in the settings.
func (a *App) Resize(width, height int) {
	a.events.Emit(event.WindowResized, gfx.Vec2{X: float32(width), Y: float32(height)})
	if a.settings == nil {
		return
	}
	a.settings.SetWindowSize(width, height)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] WARNING: %v", err)
	}
}

func (a *App) World() *component.World {
	return a.world
}

func (a *App) Renderer() *render.Renderer {
	return a.renderer
}

func (a *App) Events() *event.Dispatcher {
	return a.events
}

// Screen returns the screen currently shown.
func (a *App) Screen() state.Screen {
	return a.showcase.Screen()
}
