package assets

import (
	"errors"
	"path/filepath"
	"testing"
)

type fakeTexture struct {
	path string
}

func newFakeCache(t *testing.T) (*Cache[*fakeTexture], *[]string) {
	t.Helper()
	var unloaded []string
	load := func(path string) (*fakeTexture, error) {
		switch filepath.Base(path) {
		case "broken.png":
			return nil, errors.New("corrupt file")
		case "panic.png":
			panic("driver crashed")
		}
		return &fakeTexture{path: path}, nil
	}
	unload := func(tex *fakeTexture) {
		unloaded = append(unloaded, tex.path)
	}
	return NewCache[*fakeTexture]("image", "data", load, unload), &unloaded
}

func TestCacheLoadAllSkipsFailures(t *testing.T) {
	cache, _ := newFakeCache(t)

	loaded := cache.LoadAll(map[string]string{
		"wall":   "images/wall.png",
		"broken": "images/broken.png",
		"panic":  "images/panic.png",
	})
	if loaded != 1 || cache.Len() != 1 {
		t.Fatalf("loaded = %d, Len() = %d, want 1", loaded, cache.Len())
	}
	tex, ok := cache.Get("wall")
	if !ok {
		t.Fatal("Get(wall) not found")
	}
	if want := filepath.Join("data", "images", "wall.png"); tex.path != want {
		t.Errorf("path = %q, want %q", tex.path, want)
	}
	if _, ok := cache.Get("broken"); ok {
		t.Error("broken asset was cached")
	}
}

func TestCacheLoadReportsPanic(t *testing.T) {
	cache, _ := newFakeCache(t)
	if err := cache.Load("panic", "panic.png"); err == nil {
		t.Error("Load() of a panicking loader returned no error")
	}
}

func TestCacheLoadIsIdempotent(t *testing.T) {
	cache, _ := newFakeCache(t)
	if err := cache.Load("wall", "wall.png"); err != nil {
		t.Fatal(err)
	}
	first, _ := cache.Get("wall")
	if err := cache.Load("wall", "other.png"); err != nil {
		t.Fatal(err)
	}
	second, _ := cache.Get("wall")
	if first != second {
		t.Error("second Load() replaced a cached asset")
	}
}

func TestCacheCleanupAndReload(t *testing.T) {
	cache, unloaded := newFakeCache(t)
	manifest := map[string]string{"a": "a.png", "b": "b.png"}
	cache.LoadAll(manifest)

	cache.Cleanup()
	if cache.Len() != 0 {
		t.Errorf("Len() after Cleanup = %d", cache.Len())
	}
	if len(*unloaded) != 2 {
		t.Errorf("unloaded %d assets, want 2", len(*unloaded))
	}

	if n := cache.Reload(manifest); n != 2 {
		t.Errorf("Reload() = %d, want 2", n)
	}
	if len(*unloaded) != 2 {
		t.Errorf("Reload of an empty cache unloaded again: %v", *unloaded)
	}
}
