package cli

import (
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/intcalc/internal/controller"
	"github.com/agbru/intcalc/internal/page"
)

// PendingIndicator shows a spinner while the controller is Pending. It is
// meant to be registered with controller.WithObserver.
type PendingIndicator struct {
	out io.Writer

	mu      sync.Mutex
	spinner Spinner
	started time.Time
	elapsed time.Duration
}

// NewPendingIndicator creates an indicator writing to out.
func NewPendingIndicator(out io.Writer) *PendingIndicator {
	return &PendingIndicator{out: out}
}

// Observe implements controller.Observer.
func (p *PendingIndicator) Observe(from, to controller.UIState) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, pending := to.(controller.Pending); pending {
		p.spinner = newSpinner(spinner.WithWriter(p.out), spinner.WithHiddenCursor(true))
		p.spinner.UpdateSuffix(" " + page.LabelPending)
		p.started = time.Now()
		p.spinner.Start()
		return
	}
	if _, wasPending := from.(controller.Pending); wasPending && p.spinner != nil {
		p.spinner.Stop()
		p.spinner = nil
		p.elapsed = time.Since(p.started)
	}
}

// Elapsed returns the duration of the last settled submission.
func (p *PendingIndicator) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.elapsed
}
