package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/intcalc/internal/chart"
	"github.com/agbru/intcalc/internal/cli"
	"github.com/agbru/intcalc/internal/page"
)

// stepsContent renders the steps region for the viewport: one numbered
// entry per block, continuation lines indented under the number. Long
// lines wrap at width.
func stepsContent(r *page.Region, width int) string {
	blocks := r.Display()
	if len(blocks) == 0 {
		return dimStyle.Render("(no steps)")
	}
	digits := len(strconv.Itoa(len(blocks)))
	var b strings.Builder
	for i, block := range blocks {
		b.WriteString(cli.FormatStep(i+1, digits, block))
	}
	content := strings.TrimRight(b.String(), "\n")
	if width <= 0 {
		return content
	}
	return lipgloss.NewStyle().Width(width).Render(content)
}

// summaryView renders the formula panel content.
func summaryView(r *page.Region) string {
	blocks := r.Display()
	lines := make([]string, len(blocks))
	for i, b := range blocks {
		lines[i] = summaryStyle.Render(b)
	}
	return strings.Join(lines, "\n")
}

// errorView renders the error message.
func errorView(r *page.Region) string {
	return errorStyle.Render("✗ " + r.Text())
}

// plotView draws the canvas figure into cols × rows braille cells followed
// by the axis ranges.
func plotView(c *chart.Canvas, cols, rows int) string {
	fig := c.Figure()
	if fig == nil {
		return ""
	}
	r := chart.Rasterize(fig, cols, rows)
	if r == nil {
		return dimStyle.Render("(no points to plot)")
	}
	lines := r.Lines(func(l chart.Layer, s string) string {
		switch l {
		case chart.LayerLine:
			return plotLineStyle.Render(s)
		case chart.LayerFill:
			return plotAreaStyle.Render(s)
		case chart.LayerAxis:
			return plotAxisStyle.Render(s)
		}
		return s
	})
	lines = append(lines, dimStyle.Render(cli.FormatRanges(fig, r)))
	return titleStyle.Render(fig.Layout.Title) + "\n" + strings.Join(lines, "\n")
}

// plotCache holds the last drawn plot. It is redrawn only when the canvas
// version or the panel size changes.
type plotCache struct {
	version    uint64
	cols, rows int
	out        string
	ok         bool
}

func (pc *plotCache) view(c *chart.Canvas, cols, rows int) string {
	v := c.Version()
	if pc.ok && pc.version == v && pc.cols == cols && pc.rows == rows {
		return pc.out
	}
	pc.out = plotView(c, cols, rows)
	pc.version, pc.cols, pc.rows, pc.ok = v, cols, rows, true
	return pc.out
}
