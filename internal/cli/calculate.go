package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/agbru/intcalc/internal/calc"
	"github.com/agbru/intcalc/internal/ui"
)

// PrintRequest displays what is about to be submitted and where.
func PrintRequest(req calc.Request, endpoint string, out io.Writer) {
	theme := ui.GetCurrentTheme()
	fmt.Fprintf(out, "--- Integral ---\n")
	fmt.Fprintf(out, "Service:  %s\n", theme.Wrap(theme.Axis, endpoint))
	fmt.Fprintf(out, "Function: %s\n", theme.Wrap(theme.Primary, quoteEmpty(req.Function)))
	fmt.Fprintf(out, "Bounds:   [%s, %s]\n", quoteEmpty(req.Lower), quoteEmpty(req.Upper))
}

// PrintCompletion displays how long the submission took.
func PrintCompletion(d time.Duration, out io.Writer) {
	theme := ui.GetCurrentTheme()
	fmt.Fprintf(out, "\n%s\n", theme.Wrap(theme.Axis, "Completed in "+FormatExecutionDuration(d)))
}

func quoteEmpty(s string) string {
	if s == "" {
		return `""`
	}
	return s
}
