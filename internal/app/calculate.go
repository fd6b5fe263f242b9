package app

import (
	"context"
	"fmt"
	"io"

	"github.com/agbru/intcalc/internal/calc"
	"github.com/agbru/intcalc/internal/cli"
	apperrors "github.com/agbru/intcalc/internal/errors"
	"github.com/agbru/intcalc/internal/logging"
	"github.com/agbru/intcalc/internal/metrics"
	"github.com/agbru/intcalc/internal/page"
	"github.com/agbru/intcalc/internal/ui"
)

// runCalculate submits the configured integral once and prints the page.
func (a *Application) runCalculate(ctx context.Context, out io.Writer, logger logging.Logger, recorder *metrics.Recorder) int {
	form := a.form()
	if form.Get(calc.FieldFunction) == "" && form.Get(calc.FieldLower) == "" && form.Get(calc.FieldUpper) == "" {
		err := apperrors.NewConfigError("nothing to calculate: set -function, -lower and -upper, or start the dashboard with -tui")
		a.printError(err)
		return apperrors.ExitErrorConfig
	}

	indicator := cli.NewPendingIndicator(out)
	pl := a.newPipeline(logger, recorder, nil, indicator.Observe)

	cli.PrintRequest(calc.BuildRequest(form), pl.client.Endpoint(), out)

	_, err := pl.controller.Submit(ctx, form)
	if waitErr := pl.renderer.Wait(ctx); waitErr != nil {
		logger.Warn("typesetting did not finish", logging.Err(waitErr))
	}
	for _, r := range []*page.Region{pl.page.Summary, pl.page.Steps} {
		if r.Visible() && !r.Typeset() {
			logger.Debug("showing raw markup", logging.String("region", r.ID()))
		}
	}

	cli.DisplayPage(pl.page, out, cli.DisplayOptions{})
	if err != nil {
		return apperrors.ExitCode(err)
	}

	cli.PrintCompletion(indicator.Elapsed(), out)
	return apperrors.ExitSuccess
}

func (a *Application) printError(err error) {
	theme := ui.GetCurrentTheme()
	fmt.Fprintln(a.ErrWriter, theme.Wrap(theme.Error, "Error: "+err.Error()))
}
