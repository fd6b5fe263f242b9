package render

import (
	"github.com/agbru/intcalc/internal/calc"
	"github.com/agbru/intcalc/internal/chart"
)

// Plot palette.
const (
	LineColor     = "#6366f1"
	AreaColor     = "rgba(99, 102, 241, 0.3)"
	ZeroLineColor = "#94a3b8"
	GridColor     = "#e2e8f0"
	FontFamily    = "Outfit, sans-serif"
)

// Figure builds the chart for a result: the function curve over (x, y) and
// the shaded area over (x_area, y_area). Point order is kept as received.
func Figure(data calc.PlotData, lower, upper string) chart.Figure {
	axis := func(title string) chart.Axis {
		return chart.Axis{Title: title, ZeroLine: true, ZeroLineColor: ZeroLineColor, GridColor: GridColor}
	}
	return chart.Figure{
		Series: []chart.Series{
			{
				Name: "f(x)",
				X:    data.X,
				Y:    data.Y,
				Mode: chart.ModeLines,
				Line: chart.Line{Color: LineColor, Width: 3},
			},
			{
				Name:      "Area",
				X:         data.XArea,
				Y:         data.YArea,
				Mode:      chart.ModeNone,
				Fill:      chart.FillToZeroY,
				FillColor: AreaColor,
			},
		},
		Layout: chart.Layout{
			Title:      "Graph of f(x) from " + lower + " to " + upper,
			FontFamily: FontFamily,
			XAxis:      axis("x"),
			YAxis:      axis("f(x)"),
			Margin:     chart.Margin{T: 40, R: 20, L: 50, B: 40},
			HoverMode:  chart.HoverClosest,
		},
		Config: chart.Config{Responsive: true},
	}
}

// Plot draws the figure for data on target, replacing any previous chart.
func Plot(charter Charter, target string, data calc.PlotData, lower, upper string) error {
	fig := Figure(data, lower, upper)
	return charter.Plot(target, fig.Series, fig.Layout, fig.Config)
}
