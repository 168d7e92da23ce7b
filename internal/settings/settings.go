// Package settings persists user settings between runs.
package settings

import (
	"log"

	"github.com/pkg/errors"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application name settings are stored under.
const AppName = "go_dungeon_platformer"

const (
	settingsObject   = "settings"
	settingsProperty = "window"
)

// Settings are the values remembered between runs. Zero values mean
// "use the config file".
type Settings struct {
	WindowWidth  int    `yaml:"windowWidth"`
	WindowHeight int    `yaml:"windowHeight"`
	Fullscreen   bool   `yaml:"fullscreen"`
	Backend      string `yaml:"backend"`
}

// Manager loads and saves Settings. A nil gdata manager keeps settings in
// memory only.
type Manager struct {
	gdataManager *gdata.Manager
	settings     *Settings
}

// Open opens the platform storage for AppName. If storage is unavailable the
// returned manager works in memory-only mode and the error says why.
func Open() (*Manager, error) {
	gm, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return NewManager(nil), errors.Wrap(err, "failed to open settings storage")
	}
	return NewManager(gm), nil
}

// NewManager creates a manager and loads saved settings. Load failures are
// logged and defaults are used.
func NewManager(gm *gdata.Manager) *Manager {
	m := &Manager{gdataManager: gm, settings: &Settings{}}
	if err := m.Load(); err != nil {
		log.Printf("[Settings] WARNING: %v (using defaults)", err)
	}
	return m
}

// Load reads saved settings. Missing settings are not an error.
func (m *Manager) Load() error {
	m.settings = &Settings{}
	if m.gdataManager == nil {
		return nil
	}
	if !m.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := m.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return errors.Wrap(err, "failed to load settings")
	}
	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return errors.Wrap(err, "failed to unmarshal settings")
	}
	m.settings = &loaded
	log.Printf("[Settings] Settings loaded successfully")
	return nil
}

// Save writes the settings. In memory-only mode it does nothing.
func (m *Manager) Save() error {
	if m.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return errors.Wrap(err, "failed to marshal settings")
	}
	if err := m.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return errors.Wrap(err, "failed to save settings")
	}
	return nil
}

// Get returns the current settings.
func (m *Manager) Get() *Settings {
	return m.settings
}

// SetWindowSize remembers the window size. Non-positive sizes are ignored.
// Call Save to persist.
func (m *Manager) SetWindowSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	m.settings.WindowWidth = width
	m.settings.WindowHeight = height
}

func (m *Manager) SetFullscreen(enabled bool) {
	m.settings.Fullscreen = enabled
}

func (m *Manager) SetBackend(backend string) {
	m.settings.Backend = backend
}
