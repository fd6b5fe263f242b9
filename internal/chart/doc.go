// Package chart is the charting capability: a small plotly-like figure
// model, canvases that hold the current figure of a named target, a terminal
// charter that draws figures as braille rasters, and PNG/SVG export through
// go-chart.
package chart
