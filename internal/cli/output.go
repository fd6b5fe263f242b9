// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//
//   - Format* functions return formatted strings without performing I/O.

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agbru/intcalc/internal/chart"
	"github.com/agbru/intcalc/internal/page"
	"github.com/agbru/intcalc/internal/ui"
)

// DisplayOptions sizes the terminal plot.
type DisplayOptions struct {
	PlotColumns int
	PlotRows    int
}

// DisplayPage writes every visible element of p: the error message, the
// formula summary, the numbered steps and the plot.
func DisplayPage(p *page.Page, out io.Writer, opts DisplayOptions) {
	theme := ui.GetCurrentTheme()

	if p.Error.Visible() {
		fmt.Fprintf(out, "%s\n", theme.Wrap(theme.Error, "❌ "+p.Error.Text()))
	}
	if p.Summary.Visible() {
		DisplaySummary(p.Summary, out)
	}
	if p.Steps.Visible() {
		DisplaySteps(p.Steps, out)
	}
	if p.Summary.Visible() {
		if fig := p.Plot.Figure(); fig != nil {
			DisplayPlot(fig, out, opts)
		}
	}
}

// DisplaySummary writes the formula panel.
func DisplaySummary(r *page.Region, out io.Writer) {
	theme := ui.GetCurrentTheme()
	fmt.Fprintf(out, "\n%s\n", theme.Wrap(theme.Success, "✅ Result"))
	for _, b := range r.Display() {
		fmt.Fprintf(out, "  %s\n", theme.Wrap(theme.Bold, b))
	}
}

// DisplaySteps writes one numbered entry per step block. Multi-line steps
// are indented under their number.
func DisplaySteps(r *page.Region, out io.Writer) {
	theme := ui.GetCurrentTheme()
	blocks := r.Display()
	fmt.Fprintf(out, "\n%s\n", theme.Wrap(theme.Underline, "Steps"))
	if len(blocks) == 0 {
		fmt.Fprintf(out, "  %s\n", theme.Wrap(theme.Axis, "(none)"))
		return
	}
	width := len(strconv.Itoa(len(blocks)))
	for i, b := range blocks {
		fmt.Fprint(out, FormatStep(i+1, width, b))
	}
}

// FormatStep renders step n with its number right-aligned to width digits.
func FormatStep(n, width int, block string) string {
	prefix := fmt.Sprintf("  %*d. ", width, n)
	indent := strings.Repeat(" ", len(prefix))
	var b strings.Builder
	for i, line := range strings.Split(block, "\n") {
		if i == 0 {
			b.WriteString(prefix)
		} else {
			b.WriteString(indent)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// DisplayPlot writes the figure title, its braille raster and the axis
// ranges.
func DisplayPlot(fig *chart.Figure, out io.Writer, opts DisplayOptions) {
	theme := ui.GetCurrentTheme()
	cols, rows := opts.PlotColumns, opts.PlotRows
	if cols <= 0 {
		cols = DefaultPlotColumns
	}
	if rows <= 0 {
		rows = DefaultPlotRows
	}

	fmt.Fprintf(out, "\n%s\n", theme.Wrap(theme.Underline, fig.Layout.Title))
	r := chart.Rasterize(fig, cols, rows)
	if r == nil {
		fmt.Fprintf(out, "  %s\n", theme.Wrap(theme.Axis, "(no points to plot)"))
		return
	}
	for _, line := range FormatPlot(r, theme) {
		fmt.Fprintf(out, "  %s\n", line)
	}
	fmt.Fprintf(out, "  %s\n", theme.Wrap(theme.Axis, FormatRanges(fig, r)))
}

// FormatPlot paints the raster rows with the theme colors.
func FormatPlot(r *chart.Raster, theme ui.Theme) []string {
	return r.Lines(func(l chart.Layer, s string) string {
		switch l {
		case chart.LayerLine:
			return theme.Wrap(theme.Primary, s)
		case chart.LayerFill:
			return theme.Wrap(theme.Area, s)
		case chart.LayerAxis:
			return theme.Wrap(theme.Axis, s)
		}
		return s
	})
}

// FormatRanges describes the visible x and y ranges using the axis titles.
func FormatRanges(fig *chart.Figure, r *chart.Raster) string {
	return fmt.Sprintf("%s ∈ [%s, %s]   %s ∈ [%s, %s]",
		axisName(fig.Layout.XAxis.Title, "x"), formatFloat(r.XMin), formatFloat(r.XMax),
		axisName(fig.Layout.YAxis.Title, "y"), formatFloat(r.YMin), formatFloat(r.YMax))
}

func axisName(title, fallback string) string {
	if title == "" {
		return fallback
	}
	return title
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
