//go:generate mockgen -source=capabilities.go -destination=mocks/mock_capabilities.go -package=mocks

package render

import (
	"context"

	"github.com/agbru/intcalc/internal/chart"
	"github.com/agbru/intcalc/internal/page"
)

// Job is a unit of asynchronous typesetting work.
type Job interface {
	// Wait blocks until the job settles or ctx is done.
	Wait(ctx context.Context) error
	// Cancel abandons the job. Output of a cancelled job is never applied.
	Cancel()
}

// Typesetter re-renders math markup found in a region, asynchronously.
type Typesetter interface {
	Typeset(ctx context.Context, region *page.Region) Job
}

// Charter draws a chart on a named target, replacing whatever was there.
type Charter interface {
	Plot(target string, series []chart.Series, layout chart.Layout, cfg chart.Config) error
}
