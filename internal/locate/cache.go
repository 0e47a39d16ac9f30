package locate

// IndexCache remembers the foreground-window child index where the mode
// buttons were last found. It holds a positional hint only; element
// references do not survive across window lifetimes.
type IndexCache struct {
	index int
	set   bool
}

// Get returns the cached index and whether one is set.
func (c *IndexCache) Get() (int, bool) {
	return c.index, c.set
}

// Set records a successful lookup at index i.
func (c *IndexCache) Set(i int) {
	c.index = i
	c.set = true
}

// Invalidate clears the hint.
func (c *IndexCache) Invalidate() {
	c.index = 0
	c.set = false
}
