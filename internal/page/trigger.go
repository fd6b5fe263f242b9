package page

import "sync"

// Trigger is the button that starts a calculation.
type Trigger struct {
	id string

	mu      sync.RWMutex
	label   string
	enabled bool
}

// NewTrigger creates an enabled trigger with the given label.
func NewTrigger(id, label string) *Trigger {
	return &Trigger{id: id, label: label, enabled: true}
}

// ID returns the element id.
func (t *Trigger) ID() string { return t.id }

// Disable blocks activation and shows label.
func (t *Trigger) Disable(label string) {
	t.mu.Lock()
	t.enabled = false
	t.label = label
	t.mu.Unlock()
}

// Enable allows activation and shows label.
func (t *Trigger) Enable(label string) {
	t.mu.Lock()
	t.enabled = true
	t.label = label
	t.mu.Unlock()
}

// Enabled reports whether the trigger can be activated.
func (t *Trigger) Enabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.enabled
}

// Label returns the current label.
func (t *Trigger) Label() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.label
}
