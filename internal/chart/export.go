package chart

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format selects the image encoding of an exported chart.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// FormatFromPath picks the encoding from a file extension. Anything other
// than .svg is written as PNG.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return FormatSVG
	}
	return FormatPNG
}

// ErrNothingToDraw is returned when no series has at least two finite points.
var ErrNothingToDraw = errors.New("no series with enough points to draw")

// Export writes every figure plotted on its target to an image file.
type Export struct {
	Target string
	Path   string
	Width  int
	Height int
}

// NewExport creates a file charter for target.
func NewExport(target, path string, width, height int) *Export {
	return &Export{Target: target, Path: path, Width: width, Height: height}
}

// Plot renders the figure and overwrites the file.
func (e *Export) Plot(target string, series []Series, layout Layout, cfg Config) error {
	if target != e.Target {
		return ErrUnknownTarget{Target: target}
	}
	var buf bytes.Buffer
	fig := &Figure{Series: series, Layout: layout, Config: cfg}
	if err := Render(&buf, fig, FormatFromPath(e.Path), e.Width, e.Height); err != nil {
		return err
	}
	if err := os.WriteFile(e.Path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing chart to %s: %w", e.Path, err)
	}
	return nil
}

// Render encodes fig as an image of the given size.
// The y range always includes 0 so filled areas start from the axis.
func Render(w io.Writer, fig *Figure, format Format, width, height int) error {
	if fig == nil {
		return ErrNothingToDraw
	}
	var series []gochart.Series
	for _, s := range fig.Series {
		xs, ys := finitePoints(s)
		if len(xs) < 2 {
			continue
		}
		series = append(series, gochart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   seriesStyle(s),
		})
	}
	if len(series) == 0 {
		return ErrNothingToDraw
	}

	_, _, ymin, ymax, _ := bounds(fig)
	ymin, ymax = math.Min(ymin, 0), math.Max(ymax, 0)

	grid := gochart.Style{StrokeColor: parseColor(fig.Layout.XAxis.GridColor), StrokeWidth: 1}
	m := fig.Layout.Margin
	ch := gochart.Chart{
		Title:      fig.Layout.Title,
		Width:      width,
		Height:     height,
		Background: gochart.Style{Padding: gochart.Box{Top: m.T, Left: m.L, Right: m.R, Bottom: m.B}},
		XAxis: gochart.XAxis{
			Name:           fig.Layout.XAxis.Title,
			GridMajorStyle: grid,
		},
		YAxis: gochart.YAxis{
			Name:           fig.Layout.YAxis.Title,
			Range:          &gochart.ContinuousRange{Min: ymin, Max: ymax},
			GridMajorStyle: grid,
		},
		Series: series,
	}
	if fig.Layout.ShowLegend {
		ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}
	}

	provider := gochart.PNG
	if format == FormatSVG {
		provider = gochart.SVG
	}
	if err := ch.Render(provider, w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}

func seriesStyle(s Series) gochart.Style {
	st := gochart.Style{
		StrokeColor: drawing.ColorTransparent,
		StrokeWidth: 1,
	}
	if s.Stroked() {
		st.StrokeColor = parseColor(s.Line.Color)
		if s.Line.Width > 0 {
			st.StrokeWidth = s.Line.Width
		}
	}
	if s.Filled() {
		st.FillColor = parseColor(s.FillColor)
	}
	return st
}

func finitePoints(s Series) (xs, ys []float64) {
	n := min(len(s.X), len(s.Y))
	for i := 0; i < n; i++ {
		if finite(s.X[i], s.Y[i]) {
			xs = append(xs, s.X[i])
			ys = append(ys, s.Y[i])
		}
	}
	return xs, ys
}

// parseColor understands "#rrggbb", "#rgb" and "rgba(r, g, b, a)".
// Unknown input yields a transparent color.
func parseColor(s string) drawing.Color {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		return drawing.ColorFromHex(strings.TrimPrefix(s, "#"))
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		parts := strings.Split(s[len("rgba("):len(s)-1], ",")
		if len(parts) != 4 {
			return drawing.ColorTransparent
		}
		var c [3]uint8
		for i := range c {
			v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
			if err != nil || v < 0 || v > 255 {
				return drawing.ColorTransparent
			}
			c[i] = uint8(v)
		}
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return drawing.ColorTransparent
		}
		return drawing.Color{R: c[0], G: c[1], B: c[2], A: uint8(math.Round(a * 255))}
	}
	return drawing.ColorTransparent
}
