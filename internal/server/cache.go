package server

import (
	"sync"
	"time"

	"github.com/mj1618/captvty-nav/internal/model"
	"github.com/mj1618/captvty-nav/internal/platform"
)

// TreeCache is a TTL cache in front of a Reader. Locating an element reads
// the foreground window several times in a row; inputs and actions change the
// window, so they invalidate the cache.
type TreeCache struct {
	mu     sync.Mutex
	reader platform.Reader
	ttl    time.Duration
	window *model.Element
	at     time.Time
	now    func() time.Time
}

// NewTreeCache creates a new cache. A ttl of 0 disables caching.
func NewTreeCache(reader platform.Reader, ttl time.Duration) *TreeCache {
	return &TreeCache{reader: reader, ttl: ttl, now: time.Now}
}

// ForegroundWindow returns the cached window if within TTL, otherwise reads fresh.
func (c *TreeCache) ForegroundWindow() (*model.Element, error) {
	if c.ttl == 0 {
		return c.reader.ForegroundWindow()
	}

	c.mu.Lock()
	if c.window != nil && c.now().Sub(c.at) < c.ttl {
		w := c.window
		c.mu.Unlock()
		return w, nil
	}
	c.mu.Unlock()

	w, err := c.reader.ForegroundWindow()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.window = w
	c.at = c.now()
	c.mu.Unlock()
	return w, nil
}

// Invalidate drops the cached window.
func (c *TreeCache) Invalidate() {
	c.mu.Lock()
	c.window = nil
	c.mu.Unlock()
}

// Wrap returns a copy of p reading through the cache. Clicks, scrolls and
// actions issued through the copy invalidate it.
func (c *TreeCache) Wrap(p *platform.Provider) *platform.Provider {
	wrapped := *p
	if p.Reader != nil {
		wrapped.Reader = c
	}
	if p.Inputter != nil {
		wrapped.Inputter = invalidatingInputter{inner: p.Inputter, cache: c}
	}
	if p.ActionPerformer != nil {
		wrapped.ActionPerformer = invalidatingPerformer{inner: p.ActionPerformer, cache: c}
	}
	return &wrapped
}

type invalidatingInputter struct {
	inner platform.Inputter
	cache *TreeCache
}

func (i invalidatingInputter) Click(x, y int, button platform.MouseButton) error {
	defer i.cache.Invalidate()
	return i.inner.Click(x, y, button)
}

func (i invalidatingInputter) Scroll(x, y, dx, dy int) error {
	defer i.cache.Invalidate()
	return i.inner.Scroll(x, y, dx, dy)
}

type invalidatingPerformer struct {
	inner platform.ActionPerformer
	cache *TreeCache
}

func (a invalidatingPerformer) PerformAction(el *model.Element, action string) error {
	defer a.cache.Invalidate()
	return a.inner.PerformAction(el, action)
}
