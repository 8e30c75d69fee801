package raster

import (
	"fmt"
	"sync"

	"github.com/disintegration/imaging"
)

// Cache provides thread-safe caching of decoded rasters to avoid redundant
// disk reads: cache-by-path semantics, returning this package's own
// Raster type instead of a raw image.Image.
//
// Cache is safe for concurrent use by multiple goroutines.
type Cache struct {
	mu      sync.RWMutex
	rasters map[string]*Raster
}

// NewCache creates an empty, ready-to-use raster cache.
func NewCache() *Cache {
	return &Cache{rasters: make(map[string]*Raster)}
}

// Load decodes the image at path (PNG, JPEG, GIF, BMP, TIFF — anything
// github.com/disintegration/imaging supports) and returns it as a Raster,
// reusing a previously cached decode for the same path string.
func (c *Cache) Load(path string) (*Raster, error) {
	c.mu.RLock()
	if r, ok := c.rasters[path]; ok {
		c.mu.RUnlock()
		return r, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("raster: failed to open %q: %w", path, err)
	}
	r := FromImage(img)

	c.mu.Lock()
	c.rasters[path] = r
	c.mu.Unlock()

	return r, nil
}

// Evict removes path's cached raster, if any.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.rasters, path)
	c.mu.Unlock()
}

// Clear removes every cached raster, freeing the associated memory.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.rasters = make(map[string]*Raster)
	c.mu.Unlock()
}
