package tui

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/intcalc/internal/calc"
	"github.com/agbru/intcalc/internal/controller"
)

// Bridge is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, background work such
// as typesetting needs a pointer that survives copies to reach the program.
type Bridge struct {
	mu      sync.RWMutex
	program *tea.Program
}

// NewBridge returns a bridge with no program attached. Messages sent before
// SetProgram are dropped.
func NewBridge() *Bridge {
	return &Bridge{}
}

// SetProgram sets the tea.Program reference (thread-safe).
func (b *Bridge) SetProgram(p *tea.Program) {
	b.mu.Lock()
	b.program = p
	b.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe).
func (b *Bridge) Send(msg tea.Msg) {
	b.mu.RLock()
	p := b.program
	b.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// NotifyTypeset tells the dashboard that a region has fresh typeset output.
// It matches the typeset.WithNotify callback.
func (b *Bridge) NotifyTypeset(regionID string) {
	b.Send(TypesetDoneMsg{RegionID: regionID})
}

// TypesetDoneMsg reports that a region's typeset output is ready.
type TypesetDoneMsg struct {
	RegionID string
}

// ResultMsg carries the outcome of one submission back to the update loop.
type ResultMsg struct {
	Generation uint64
	Request    calc.Request
	Result     *calc.Result
	Err        error
	Elapsed    time.Duration
}

// submitCmd returns a tea.Cmd that sends req and reports the outcome.
func submitCmd(ctx context.Context, s controller.Submitter, req calc.Request, gen uint64) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		res, err := s.Submit(ctx, req)
		return ResultMsg{
			Generation: gen,
			Request:    req,
			Result:     res,
			Err:        err,
			Elapsed:    time.Since(start),
		}
	}
}
