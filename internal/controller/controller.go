package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/agbru/intcalc/internal/calc"
	apperrors "github.com/agbru/intcalc/internal/errors"
	"github.com/agbru/intcalc/internal/logging"
	"github.com/agbru/intcalc/internal/page"
)

// Renderer draws a successful result.
type Renderer interface {
	Render(ctx context.Context, res *calc.Result, req calc.Request) error
}

// Submitter sends a request to the calculation service.
type Submitter interface {
	Submit(ctx context.Context, req calc.Request) (*calc.Result, error)
}

// Observer is told about every state change. It runs synchronously on the
// goroutine that caused the change and must not call back into the
// controller.
type Observer func(from, to UIState)

// Controller drives the page through the request lifecycle.
type Controller struct {
	page      *page.Page
	renderer  Renderer
	submitter Submitter
	logger    logging.Logger
	observers []Observer

	mu    sync.Mutex
	state UIState
	// idleLabel is the trigger label captured by Begin.
	idleLabel string
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default discards output.
func WithLogger(l logging.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithObserver adds a transition observer.
func WithObserver(o Observer) Option {
	return func(c *Controller) { c.observers = append(c.observers, o) }
}

// New creates a controller in the Idle state.
func New(p *page.Page, r Renderer, s Submitter, opts ...Option) *Controller {
	c := &Controller{
		page:      p,
		renderer:  r,
		submitter: s,
		logger:    logging.NewNopLogger(),
		state:     Idle{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state.
func (c *Controller) State() UIState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Begin enters Pending for req. It clears and hides the error region, hides
// the summary and steps, and disables the trigger with its working label
// after remembering the current one.
// It fails with apperrors.ErrSubmissionInFlight, changing nothing, when a
// submission is already pending.
func (c *Controller) Begin(req calc.Request) error {
	c.mu.Lock()
	if _, pending := c.state.(Pending); pending {
		c.mu.Unlock()
		return apperrors.ErrSubmissionInFlight
	}
	from := c.state
	c.state = Pending{Request: req}

	c.page.Error.Clear()
	c.page.Error.Hide()
	c.page.Summary.Hide()
	c.page.Steps.Hide()
	c.idleLabel = c.page.Trigger.Label()
	c.page.Trigger.Disable(page.LabelPending)
	c.mu.Unlock()

	c.logger.Debug("submission started",
		logging.String("function", req.Function),
		logging.String("lower", req.Lower),
		logging.String("upper", req.Upper),
	)
	c.notify(from, Pending{Request: req})
	return nil
}

// Complete settles the pending submission. A nil err hands res to the
// renderer; otherwise, or when rendering fails or panics, the failure
// message is shown and the result regions are hidden. Whatever happens the
// trigger is re-enabled exactly once with the label it had before Begin.
func (c *Controller) Complete(ctx context.Context, req calc.Request, res *calc.Result, err error) UIState {
	c.mu.Lock()
	label := c.idleLabel
	c.mu.Unlock()
	if label == "" {
		label = page.LabelIdle
	}
	defer c.page.Trigger.Enable(label)

	if err == nil {
		err = c.render(ctx, res, req)
	}
	if err != nil {
		return c.fail(err)
	}

	c.page.Error.Hide()
	next := Success{Result: res, Request: req}
	c.transition(next)
	c.logger.Info("result displayed", logging.String("result", string(res.Result)))
	return next
}

// Submit runs a whole lifecycle: build the request from form, Begin, send,
// Complete. The returned error is the failure behind a Failed state, or
// ErrSubmissionInFlight if Begin refused.
func (c *Controller) Submit(ctx context.Context, form calc.Form) (UIState, error) {
	req := calc.BuildRequest(form)
	if err := c.Begin(req); err != nil {
		return c.State(), err
	}
	res, err := c.submitter.Submit(ctx, req)
	st := c.Complete(ctx, req, res, err)
	if f, ok := st.(Failed); ok {
		return st, f.Err
	}
	return st, nil
}

func (c *Controller) render(ctx context.Context, res *calc.Result, req calc.Request) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = apperrors.RenderError{Cause: fmt.Errorf("panic: %v", r)}
		}
	}()
	if err := c.renderer.Render(ctx, res, req); err != nil {
		var renderErr apperrors.RenderError
		if errors.As(err, &renderErr) {
			return err
		}
		return apperrors.RenderError{Cause: err}
	}
	return nil
}

func (c *Controller) fail(err error) UIState {
	msg := apperrors.UserMessage(err)
	c.page.Error.SetText(msg)
	c.page.Error.Show()
	c.page.Summary.Hide()
	c.page.Steps.Hide()

	next := Failed{Message: msg, Err: err}
	c.transition(next)
	c.logger.Error("submission failed", err, logging.String("message", msg))
	return next
}

func (c *Controller) transition(next UIState) {
	c.mu.Lock()
	from := c.state
	c.state = next
	c.mu.Unlock()
	c.notify(from, next)
}

func (c *Controller) notify(from, to UIState) {
	for _, o := range c.observers {
		o(from, to)
	}
}
