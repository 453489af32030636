package catalog

import (
	"sync"
	"time"

	"github.com/advisehq/advisor/internal/survey"
)

// Set bundles the reference tables loaded for one session.
type Set struct {
	Programmes   *Programmes
	Questions    []survey.Question
	Descriptions DimensionDescriptions
}

// Loader produces a fresh reference-data set.
type Loader func() (*Set, error)

// Cache memoizes reference-data loads with an explicit lifetime. A TTL
// of zero means session scope: load once and keep until the process
// exits. The cache is injected into callers as a dependency, never held
// as package state.
type Cache struct {
	ttl  time.Duration
	load Loader

	// now is swapped out in tests.
	now func() time.Time

	mu       sync.Mutex
	cached   *Set
	loadedAt time.Time
}

func NewCache(ttl time.Duration, load Loader) *Cache {
	return &Cache{
		ttl:  ttl,
		load: load,
		now:  time.Now,
	}
}

// Get returns the cached set, reloading when the TTL has elapsed. A
// failed reload is returned to the caller and leaves the cache empty so
// the next Get retries.
func (c *Cache) Get() (*Set, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil && !c.expired() {
		return c.cached, nil
	}

	set, err := c.load()
	if err != nil {
		c.cached = nil
		return nil, err
	}

	c.cached = set
	c.loadedAt = c.now()
	return set, nil
}

func (c *Cache) expired() bool {
	if c.ttl <= 0 {
		return false
	}
	return c.now().Sub(c.loadedAt) >= c.ttl
}
