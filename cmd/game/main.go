// cmd/game/main.go
package main

import (
	"flag"
	"log"

	"go-dungeon-platformer/internal/app"
	"go-dungeon-platformer/internal/config"
	"go-dungeon-platformer/internal/settings"
	"go-dungeon-platformer/internal/state"
)

func main() {
	// --- Флаги командной строки ---
	configPath := flag.String("config", "", "Path to a YAML config file (built-in defaults if empty)")
	backend := flag.String("backend", "", "Graphics backend: raylib, ebiten or terminal")
	screen := flag.String("screen", string(state.ScreenMenu), "Screen to start on: menu, game, pause, pause_hint, victory, defeat")
	cycle := flag.Bool("cycle", false, "Cycle through every screen")
	seed := flag.Int64("seed", 0, "Seed for the victory screen balls (0 keeps the config value)")
	fullscreen := flag.Bool("fullscreen", false, "Start in fullscreen; remembered for the next runs")
	flag.Parse()

	overrides := app.Overrides{Backend: *backend, Seed: *seed}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "fullscreen" {
			overrides.Fullscreen = fullscreen
		}
	})

	// --- Конфигурация ---
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	st, err := settings.Open()
	if err != nil {
		log.Printf("[Settings] WARNING: %v (settings will not be saved)", err)
	}
	if err := app.Configure(cfg, st, overrides); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	start, err := state.ParseScreen(*screen)
	if err != nil {
		log.Fatal(err)
	}
	opts := app.Options{Screen: start}
	if *cycle {
		opts.Interval = config.ShowcaseInterval
	}

	// --- Запуск ---
	log.Printf("[App] Starting %s backend on screen %s", cfg.Backend, start)
	switch cfg.Backend {
	case config.BackendEbiten:
		err = app.RunEbiten(cfg, st, opts)
	case config.BackendTerminal:
		err = app.RunTerminal(cfg, opts)
	default:
		err = app.RunRaylib(cfg, st, opts)
	}
	if err != nil {
		log.Fatal(err)
	}
	if err := st.Save(); err != nil {
		log.Printf("[Settings] WARNING: %v", err)
	}
}
