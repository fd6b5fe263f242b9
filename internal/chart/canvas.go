package chart

import "sync"

// Canvas is a named drawing target. It holds at most one figure; every Plot
// replaces it.
type Canvas struct {
	id string

	mu      sync.RWMutex
	figure  *Figure
	version uint64
}

// NewCanvas creates an empty canvas with the given target id.
func NewCanvas(id string) *Canvas {
	return &Canvas{id: id}
}

// ID returns the target id.
func (c *Canvas) ID() string { return c.id }

// Replace swaps in a new figure.
func (c *Canvas) Replace(fig *Figure) {
	c.mu.Lock()
	c.figure = fig.Clone()
	c.version++
	c.mu.Unlock()
}

// Figure returns a copy of the current figure, or nil.
func (c *Canvas) Figure() *Figure {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.figure.Clone()
}

// Version increments on every Replace.
func (c *Canvas) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}
