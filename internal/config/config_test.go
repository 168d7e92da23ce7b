package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
	for name, def := range cfg.Assets.Sprites {
		for _, frame := range def.Frames {
			if _, ok := cfg.Assets.Images[frame]; !ok {
				t.Errorf("sprite %q uses frame %q which has no image", name, frame)
			}
		}
	}
	for id := range cfg.Assets.Images {
		if _, ok := cfg.Assets.Glyphs[id]; !ok {
			t.Errorf("image %q has no terminal glyph", id)
		}
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	data := []byte(`
backend: terminal
window:
  width: 800
screens:
  title:
    text: "Another Dungeon"
    x: 0.5
    y: 0.4
    color: "#ff000080"
colors:
  victory_ball: "#102030"
level:
  - "###"
  - "#@#"
  - "###"
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Backend != BackendTerminal {
		t.Errorf("Backend = %q, want terminal", cfg.Backend)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != ScreenHeight {
		t.Errorf("Window = %dx%d, want 800x%d", cfg.Window.Width, cfg.Window.Height, ScreenHeight)
	}
	if cfg.Screens.Title.Text != "Another Dungeon" {
		t.Errorf("Title = %q", cfg.Screens.Title.Text)
	}
	if c := cfg.Screens.Title.Color; c == nil || *c != (Color{255, 0, 0, 128}) {
		t.Errorf("Title color = %v, want #ff000080", c)
	}
	if cfg.Colors.VictoryBall != (Color{0x10, 0x20, 0x30, 255}) {
		t.Errorf("VictoryBall = %v", cfg.Colors.VictoryBall)
	}
	if len(cfg.Level) != 3 {
		t.Errorf("Level rows = %d, want 3", len(cfg.Level))
	}
	if cfg.Screens.Subtitle.Text == "" {
		t.Error("Subtitle lost its default")
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "window: ["},
		{"bad backend", "backend: vulkan"},
		{"bad size", "window:\n  width: -1"},
		{"bad color", "colors:\n  text: \"#zzzzzz\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Errorf("Parse(%q) returned no error", tt.data)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file returned no error")
	}
}

func TestColorString(t *testing.T) {
	c, err := ParseColor("#0a0b0c")
	if err != nil {
		t.Fatal(err)
	}
	if c.String() != "#0a0b0c" {
		t.Errorf("String() = %q", c.String())
	}
	c.A = 16
	if c.String() != "#0a0b0c10" {
		t.Errorf("String() = %q", c.String())
	}
}
