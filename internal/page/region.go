package page

import (
	"strings"
	"sync"
)

// Region is a block of text content on the page.
type Region struct {
	id string

	mu         sync.RWMutex
	visible    bool
	blocks     []string
	rendered   []string
	generation uint64
}

// NewRegion creates an empty region.
func NewRegion(id string, visible bool) *Region {
	return &Region{id: id, visible: visible}
}

// ID returns the element id.
func (r *Region) ID() string { return r.id }

// Show makes the region visible.
func (r *Region) Show() { r.setVisible(true) }

// Hide hides the region without touching its content.
func (r *Region) Hide() { r.setVisible(false) }

func (r *Region) setVisible(v bool) {
	r.mu.Lock()
	r.visible = v
	r.mu.Unlock()
}

// Visible reports whether the region is shown.
func (r *Region) Visible() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.visible
}

// SetText replaces the content with a single block.
func (r *Region) SetText(text string) {
	r.mu.Lock()
	r.blocks = []string{text}
	r.touch()
	r.mu.Unlock()
}

// Clear removes all content.
func (r *Region) Clear() {
	r.mu.Lock()
	r.blocks = nil
	r.touch()
	r.mu.Unlock()
}

// Append adds a block after the existing ones.
func (r *Region) Append(block string) {
	r.mu.Lock()
	r.blocks = append(r.blocks, block)
	r.touch()
	r.mu.Unlock()
}

// touch must be called with mu held.
func (r *Region) touch() {
	r.rendered = nil
	r.generation++
}

// Blocks returns a copy of the raw blocks.
func (r *Region) Blocks() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.blocks...)
}

// Text returns the raw content, blocks separated by new lines.
func (r *Region) Text() string {
	return strings.Join(r.Blocks(), "\n")
}

// Snapshot returns the raw blocks together with the generation they belong to.
func (r *Region) Snapshot() ([]string, uint64) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.blocks...), r.generation
}

// ApplyRendered stores typeset output for the given generation. It reports
// false, and changes nothing, when the content has moved on since the
// snapshot was taken.
func (r *Region) ApplyRendered(generation uint64, rendered []string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if generation != r.generation || len(rendered) != len(r.blocks) {
		return false
	}
	r.rendered = append([]string(nil), rendered...)
	return true
}

// Display returns the blocks to draw: typeset output when it is current,
// the raw blocks otherwise.
func (r *Region) Display() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.rendered != nil {
		return append([]string(nil), r.rendered...)
	}
	return append([]string(nil), r.blocks...)
}

// Typeset reports whether the current content has been typeset.
func (r *Region) Typeset() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rendered != nil
}
