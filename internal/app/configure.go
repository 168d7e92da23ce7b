package app

import (
	"go-dungeon-platformer/internal/config"
	"go-dungeon-platformer/internal/settings"
)

// Overrides are command line values. Zero values leave the config alone.
type Overrides struct {
	Backend string
	Seed    int64
	// Fullscreen is nil unless the flag was given.
	Fullscreen *bool
}

// Configure merges saved settings and overrides into cfg and remembers the
// overrides in the settings. Saved settings win over the config file,
// overrides win over both. st may be nil.
func Configure(cfg *config.Config, st *settings.Manager, o Overrides) error {
	if st != nil {
		saved := st.Get()
		if saved.WindowWidth > 0 && saved.WindowHeight > 0 {
			cfg.Window.Width, cfg.Window.Height = saved.WindowWidth, saved.WindowHeight
		}
		if saved.Backend != "" {
			cfg.Backend = saved.Backend
		}
	}
	if o.Backend != "" {
		cfg.Backend = o.Backend
	}
	if o.Seed != 0 {
		cfg.Seed = o.Seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if st != nil {
		if o.Backend != "" {
			st.SetBackend(o.Backend)
		}
		if o.Fullscreen != nil {
			st.SetFullscreen(*o.Fullscreen)
		}
	}
	return nil
}
