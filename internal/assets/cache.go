package assets

import (
	"log"
	"path/filepath"

	"github.com/pkg/errors"
)

// LoadFunc загружает ресурс из файла.
type LoadFunc[T any] func(path string) (T, error)

// UnloadFunc освобождает ресурс.
type UnloadFunc[T any] func(T)

// Cache управляет загрузкой, кэшированием и выгрузкой ресурсов бэкенда
// (текстур, шрифтов) по их ID.
type Cache[T any] struct {
	kind   string
	dir    string
	items  map[string]T
	load   LoadFunc[T]
	unload UnloadFunc[T]
}

// NewCache создает кэш. dir - каталог, относительно которого заданы пути.
// unload может быть nil, если ресурс не требует явного освобождения.
func NewCache[T any](kind, dir string, load LoadFunc[T], unload UnloadFunc[T]) *Cache[T] {
	return &Cache[T]{
		kind:   kind,
		dir:    dir,
		items:  make(map[string]T),
		load:   load,
		unload: unload,
	}
}

// Load безопасно загружает один ресурс. Уже загруженный ресурс не
// перезагружается.
func (c *Cache[T]) Load(id, file string) (err error) {
	if _, ok := c.items[id]; ok {
		return nil
	}

	path := filepath.Join(c.dir, file)
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("loader panicked on %s %q (%s): %v", c.kind, id, path, r)
		}
	}()

	item, err := c.load(path)
	if err != nil {
		return errors.Wrapf(err, "failed to load %s %q from %s", c.kind, id, path)
	}
	c.items[id] = item
	return nil
}

// LoadAll загружает все ресурсы манифеста (ID -> файл). Ошибки логируются,
// ресурс пропускается. Возвращает число загруженных ресурсов.
func (c *Cache[T]) LoadAll(manifest map[string]string) int {
	loaded := 0
	for id, file := range manifest {
		if err := c.Load(id, file); err != nil {
			log.Printf("[Assets] WARNING: %v. Skipping.", err)
			continue
		}
		loaded++
	}
	log.Printf("[Assets] Loaded %d of %d %s assets", loaded, len(manifest), c.kind)
	return loaded
}

// Get возвращает ресурс по ID.
func (c *Cache[T]) Get(id string) (T, bool) {
	item, ok := c.items[id]
	return item, ok
}

// Len возвращает число загруженных ресурсов.
func (c *Cache[T]) Len() int {
	return len(c.items)
}

// Cleanup выгружает все загруженные ресурсы.
func (c *Cache[T]) Cleanup() {
	for id, item := range c.items {
		if c.unload != nil {
			c.unload(item)
		}
		delete(c.items, id)
	}
	log.Printf("[Assets] All %s assets unloaded.", c.kind)
}

// Reload выгружает все ресурсы и загружает манифест заново.
func (c *Cache[T]) Reload(manifest map[string]string) int {
	log.Printf("[Assets] Reloading all %s assets...", c.kind)
	c.Cleanup()
	return c.LoadAll(manifest)
}
