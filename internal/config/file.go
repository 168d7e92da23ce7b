package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the game configuration loaded from a YAML file over Default().
type Config struct {
	Window  Window      `yaml:"window"`
	Backend string      `yaml:"backend"`
	Seed    int64       `yaml:"seed"`
	Assets  Assets      `yaml:"assets"`
	Screens Screens     `yaml:"screens"`
	Colors  Colors      `yaml:"colors"`
	Level   []string    `yaml:"level"`
	Puzzle  PuzzleStart `yaml:"puzzle"`
}

type Window struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
	Resizable bool   `yaml:"resizable"`
}

// Assets maps asset IDs to files relative to Dir.
type Assets struct {
	Dir     string               `yaml:"dir"`
	Images  map[string]string    `yaml:"images"`
	Fonts   map[string]string    `yaml:"fonts"`
	Sprites map[string]SpriteDef `yaml:"sprites"`
	// Glyphs is how the terminal backend shows each image.
	Glyphs map[string]Glyph `yaml:"glyphs"`
}

// SpriteDef lists the image IDs of an animation.
type SpriteDef struct {
	Frames       []string `yaml:"frames"`
	FramesToSkip int      `yaml:"frames_to_skip"`
	Loop         bool     `yaml:"loop"`
}

type Glyph struct {
	Rune string `yaml:"rune"`
	FG   Color  `yaml:"fg"`
	BG   Color  `yaml:"bg"`
}

// TextDef is a text placed at a normalized screen position.
// Zero Size, Color or Spacing fall back to the defaults.
type TextDef struct {
	Text    string   `yaml:"text"`
	X       float32  `yaml:"x"`
	Y       float32  `yaml:"y"`
	Size    float32  `yaml:"size"`
	Color   *Color   `yaml:"color,omitempty"`
	Spacing *float32 `yaml:"spacing,omitempty"`
	Font    string   `yaml:"font,omitempty"`
}

type Screens struct {
	Title           TextDef `yaml:"title"`
	Subtitle        TextDef `yaml:"subtitle"`
	Paused          TextDef `yaml:"paused"`
	PausedForHint   TextDef `yaml:"paused_for_hint"`
	Defeat          TextDef `yaml:"defeat"`
	VictoryTitle    TextDef `yaml:"victory_title"`
	VictorySubtitle TextDef `yaml:"victory_subtitle"`
	ScoreFormat     string  `yaml:"score_format"`
}

type Colors struct {
	Background  Color `yaml:"background"`
	Text        Color `yaml:"text"`
	ScoreShadow Color `yaml:"score_shadow"`
	VictoryBall Color `yaml:"victory_ball"`
}

// PuzzleStart is the puzzle state the level starts with.
type PuzzleStart struct {
	Levers   []bool `yaml:"levers"`
	DoorOpen bool   `yaml:"door_open"`
	Score    int    `yaml:"score"`
}

// Load reads a YAML config file. Fields missing from the file keep their
// Default() values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}
	return Parse(data)
}

// Parse decodes YAML config data over Default().
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values the game cannot start without.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size %dx%d is not positive", c.Window.Width, c.Window.Height)
	}
	if len(c.Level) == 0 {
		return errors.New("config has no level")
	}
	switch c.Backend {
	case BackendRaylib, BackendEbiten, BackendTerminal:
	default:
		return errors.Errorf("unknown backend %q", c.Backend)
	}
	return nil
}
