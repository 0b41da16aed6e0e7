package chapter

import (
	"sync"

	"github.com/takak2166/chapterseg/internal/models"
)

// Entry is a parsed chapter together with its sections.
// Entries are shared by every reader of the cache and are never modified.
type Entry struct {
	Chapter  *models.Chapter
	Sections []models.Section
}

// Cache keeps parsed chapters keyed by chapter id
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewCache creates an empty cache
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*Entry)}
}

// Get returns the entry for id
func (c *Cache) Get(id string) (*Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[id]
	return e, ok
}

// Put stores the entry for id, replacing any previous one
func (c *Cache) Put(id string, e *Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[id] = e
}

// Invalidate drops the entry for id
func (c *Cache) Invalidate(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
}

// Len returns the number of cached chapters
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
