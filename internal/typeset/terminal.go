package typeset

import (
	"context"
	"sync"

	"github.com/agbru/intcalc/internal/page"
	"github.com/agbru/intcalc/internal/render"
)

// Terminal typesets regions for display in a terminal.
type Terminal struct {
	notify func(regionID string)
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithNotify registers a callback invoked after a job applies its output to
// a region. It runs on the job's goroutine.
func WithNotify(fn func(regionID string)) Option {
	return func(t *Terminal) { t.notify = fn }
}

// NewTerminal creates a terminal typesetter.
func NewTerminal(opts ...Option) *Terminal {
	t := &Terminal{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var _ render.Typesetter = (*Terminal)(nil)

// Typeset snapshots the region and renders it on a new goroutine. The output
// is applied only if the region content has not changed in the meantime.
func (t *Terminal) Typeset(ctx context.Context, region *page.Region) render.Job {
	ctx, cancel := context.WithCancel(ctx)
	task := &Task{cancel: cancel, done: make(chan struct{})}
	blocks, gen := region.Snapshot()

	go func() {
		defer close(task.done)
		defer cancel()
		out := make([]string, len(blocks))
		for i, b := range blocks {
			if err := ctx.Err(); err != nil {
				task.setErr(err)
				return
			}
			out[i] = RenderBlock(b)
		}
		if err := ctx.Err(); err != nil {
			task.setErr(err)
			return
		}
		if !region.ApplyRendered(gen, out) {
			task.setErr(ErrStale)
			return
		}
		if t.notify != nil {
			t.notify(region.ID())
		}
	}()
	return task
}

// Task is a running typeset job.
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}

	mu  sync.Mutex
	err error
}

var _ render.Job = (*Task)(nil)

// Wait blocks until the task settles. It returns the task's own error, or
// ctx.Err() if ctx ends first.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		t.mu.Lock()
		defer t.mu.Unlock()
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Cancel stops the task if it has not applied its output yet.
func (t *Task) Cancel() { t.cancel() }

func (t *Task) setErr(err error) {
	t.mu.Lock()
	t.err = err
	t.mu.Unlock()
}
