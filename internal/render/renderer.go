package render

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/intcalc/internal/calc"
	apperrors "github.com/agbru/intcalc/internal/errors"
	"github.com/agbru/intcalc/internal/logging"
	"github.com/agbru/intcalc/internal/page"
)

// Renderer writes results into a page.
type Renderer struct {
	page       *page.Page
	typesetter Typesetter
	charter    Charter
	logger     logging.Logger

	mu   sync.Mutex
	jobs []Job
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger. The default discards output.
func WithLogger(l logging.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// New creates a renderer drawing into p.
func New(p *page.Page, typesetter Typesetter, charter Charter, opts ...Option) *Renderer {
	r := &Renderer{
		page:       p,
		typesetter: typesetter,
		charter:    charter,
		logger:     logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render replaces the summary, steps and plot with the content of res and
// shows the summary and steps regions. Typesetting is started but not
// awaited; use Wait for that. Any typesetting still running from a previous
// call is cancelled first.
func (r *Renderer) Render(ctx context.Context, res *calc.Result, req calc.Request) error {
	r.cancelJobs()
	if res == nil {
		return apperrors.RenderError{Cause: errNilResult}
	}

	summary, steps := r.page.Summary, r.page.Steps

	summary.SetText(FormulaMarkup(req, res))
	r.track(r.typesetter.Typeset(ctx, summary))

	steps.Clear()
	for _, s := range res.Steps {
		steps.Append(s)
	}
	r.track(r.typesetter.Typeset(ctx, steps))

	if err := Plot(r.charter, page.PlotID, res.PlotData, req.Lower, req.Upper); err != nil {
		return apperrors.RenderError{Cause: err}
	}

	summary.Show()
	steps.Show()

	r.logger.Debug("result rendered",
		logging.String("result", string(res.Result)),
		logging.Int("steps", len(res.Steps)),
		logging.Int("points", len(res.PlotData.X)),
	)
	return nil
}

// Wait blocks until the typesetting started by the last Render settles.
func (r *Renderer) Wait(ctx context.Context) error {
	r.mu.Lock()
	jobs := append([]Job(nil), r.jobs...)
	r.mu.Unlock()

	var g errgroup.Group
	for _, j := range jobs {
		g.Go(func() error { return j.Wait(ctx) })
	}
	return g.Wait()
}

func (r *Renderer) track(j Job) {
	if j == nil {
		return
	}
	r.mu.Lock()
	r.jobs = append(r.jobs, j)
	r.mu.Unlock()
}

func (r *Renderer) cancelJobs() {
	r.mu.Lock()
	jobs := r.jobs
	r.jobs = nil
	r.mu.Unlock()
	for _, j := range jobs {
		j.Cancel()
	}
}
