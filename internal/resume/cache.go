package resume

import (
	"os"
	"sync"
	"time"

	"github.com/evanqhuang/resume-tailor/internal/types"
)

// Cache serves the parsed resume and reloads it when the file on disk
// changes. Safe for concurrent use by HTTP handlers.
type Cache struct {
	mu      sync.Mutex
	path    string
	resume  *types.Resume
	modTime time.Time
}

// NewCache creates a cache over the resume file at path. Nothing is loaded
// until the first Get.
func NewCache(path string) *Cache {
	return &Cache{path: path}
}

// Get returns the cached resume, reloading from disk if the file has been
// modified since the last load or when force is set.
func (c *Cache) Get(force bool) (*types.Resume, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stat, err := os.Stat(c.path)
	if err != nil {
		return nil, err
	}

	if !force && c.resume != nil && !stat.ModTime().After(c.modTime) {
		return c.resume, nil
	}

	r, err := Load(c.path)
	if err != nil {
		return nil, err
	}

	c.resume = r
	c.modTime = stat.ModTime()
	return r, nil
}
