package app

import (
	"fmt"

	"github.com/agbru/intcalc/internal/chart"
	"github.com/agbru/intcalc/internal/client"
	"github.com/agbru/intcalc/internal/controller"
	"github.com/agbru/intcalc/internal/logging"
	"github.com/agbru/intcalc/internal/metrics"
	"github.com/agbru/intcalc/internal/page"
	"github.com/agbru/intcalc/internal/render"
	"github.com/agbru/intcalc/internal/typeset"
)

// pipeline is one page with everything that acts on it.
type pipeline struct {
	page       *page.Page
	renderer   *render.Renderer
	client     *client.Client
	controller *controller.Controller
}

// newPipeline wires page, typesetter, charter, renderer, client and
// controller. notify, when not nil, is told about finished typeset jobs.
// Every state change is counted on recorder, then passed to observers.
func (a *Application) newPipeline(logger logging.Logger, recorder *metrics.Recorder, notify func(string), observers ...controller.Observer) *pipeline {
	p := page.New()

	var typesetOpts []typeset.Option
	if notify != nil {
		typesetOpts = append(typesetOpts, typeset.WithNotify(notify))
	}

	var charter render.Charter = chart.NewTerminal(p.Plot)
	if a.Config.PlotOut != "" {
		// A failed export never fails the render; the terminal plot is the
		// result the user asked for.
		charter = chart.Tee(
			chart.NewTerminal(p.Plot),
			func(err error) {
				logger.Warn("plot export failed", logging.Err(err))
				if !a.Config.TUI {
					fmt.Fprintf(a.ErrWriter, "Warning: %v\n", err)
				}
			},
			chart.NewExport(page.PlotID, a.Config.PlotOut, a.Config.PlotWidth, a.Config.PlotHeight),
		)
	}

	r := render.New(p, typeset.NewTerminal(typesetOpts...), charter, render.WithLogger(logger))
	c := client.New(a.Config.URL,
		client.WithTimeout(a.Config.Timeout),
		client.WithLogger(logger),
		client.WithMetrics(recorder),
	)

	opts := []controller.Option{
		controller.WithLogger(logger),
		controller.WithObserver(func(_, to controller.UIState) {
			recorder.ObserveTransition(to.String())
		}),
	}
	for _, o := range observers {
		opts = append(opts, controller.WithObserver(o))
	}

	return &pipeline{
		page:       p,
		renderer:   r,
		client:     c,
		controller: controller.New(p, r, c, opts...),
	}
}
