package settings

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func openTestStorage(t *testing.T, name string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	gm, err := gdata.Open(gdata.Config{AppName: name})
	if err != nil {
		t.Fatalf("gdata.Open: %v", err)
	}
	return gm
}

func TestManagerSaveAndLoad(t *testing.T) {
	gm := openTestStorage(t, "test_dungeon_settings")

	m := NewManager(gm)
	if *m.Get() != (Settings{}) {
		t.Fatalf("fresh settings = %+v, want zero", *m.Get())
	}
	m.SetWindowSize(1024, 768)
	m.SetFullscreen(true)
	m.SetBackend("ebiten")
	if err := m.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded := NewManager(gm)
	want := Settings{WindowWidth: 1024, WindowHeight: 768, Fullscreen: true, Backend: "ebiten"}
	if *reloaded.Get() != want {
		t.Errorf("reloaded settings = %+v, want %+v", *reloaded.Get(), want)
	}
}

func TestManagerIgnoresBadWindowSize(t *testing.T) {
	m := NewManager(nil)
	m.SetWindowSize(800, 600)
	m.SetWindowSize(0, 600)
	m.SetWindowSize(800, -1)
	if s := m.Get(); s.WindowWidth != 800 || s.WindowHeight != 600 {
		t.Errorf("window = %dx%d, want 800x600", s.WindowWidth, s.WindowHeight)
	}
}

func TestManagerMemoryOnly(t *testing.T) {
	m := NewManager(nil)
	m.SetBackend("terminal")
	if err := m.Save(); err != nil {
		t.Errorf("Save() in memory-only mode returned %v", err)
	}
	if err := m.Load(); err != nil {
		t.Errorf("Load() in memory-only mode returned %v", err)
	}
	if m.Get().Backend != "" {
		t.Error("Load() in memory-only mode kept unsaved settings")
	}
}

func TestManagerCorruptData(t *testing.T) {
	gm := openTestStorage(t, "test_dungeon_corrupt")
	if err := gm.SaveObjectProp(settingsObject, settingsProperty, []byte("windowWidth: [")); err != nil {
		t.Fatal(err)
	}
	m := NewManager(gm)
	if *m.Get() != (Settings{}) {
		t.Errorf("corrupt settings = %+v, want defaults", *m.Get())
	}
	if err := m.Load(); err == nil {
		t.Error("Load() of corrupt data returned no error")
	}
}
