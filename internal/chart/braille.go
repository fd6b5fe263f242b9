package chart

import (
	"math"
	"strings"
)

// Layer identifies what was drawn into a braille cell. Higher layers win
// when several are drawn into the same cell.
type Layer int

const (
	LayerEmpty Layer = iota
	LayerAxis
	LayerFill
	LayerLine
)

// brailleDots maps (col 0-1, row 0-3) to the braille dot bit offsets.
// Braille character = U+2800 + sum of activated dot bits.
// Column 0: dots 1,2,3,7 (bits 0,1,2,6)
// Column 1: dots 4,5,6,8 (bits 3,4,5,7)
var brailleDots = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40}, // left column
	{0x08, 0x10, 0x20, 0x80}, // right column
}

const brailleBlank = 0x2800

// Raster is a figure drawn into a grid of braille cells.
type Raster struct {
	Width, Height          int
	XMin, XMax, YMin, YMax float64

	cells  [][]rune
	layers [][]Layer
}

// Rasterize draws fig into width × height braille cells. Each cell is a
// 2 × 4 dot block. Filled series are shaded down to y=0, stroked series are
// drawn as connected lines, and enabled zero lines are dotted.
// Returns nil when there is nothing to draw.
func Rasterize(fig *Figure, width, height int) *Raster {
	if fig == nil || width <= 0 || height <= 0 {
		return nil
	}
	xmin, xmax, ymin, ymax, ok := bounds(fig)
	if !ok {
		return nil
	}

	r := &Raster{
		Width: width, Height: height,
		XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax,
		cells:  make([][]rune, height),
		layers: make([][]Layer, height),
	}
	for i := range r.cells {
		r.cells[i] = make([]rune, width)
		r.layers[i] = make([]Layer, width)
		for j := range r.cells[i] {
			r.cells[i][j] = brailleBlank
		}
	}

	if fig.Layout.YAxis.ZeroLine && ymin <= 0 && ymax >= 0 {
		zr := r.dotRow(0)
		for dc := 0; dc < r.dotCols(); dc += 2 {
			r.set(dc, zr, LayerAxis)
		}
	}
	if fig.Layout.XAxis.ZeroLine && xmin <= 0 && xmax >= 0 {
		zc := r.dotCol(0)
		for dr := 0; dr < r.dotRows(); dr += 2 {
			r.set(zc, dr, LayerAxis)
		}
	}

	for _, s := range fig.Series {
		if s.Filled() {
			r.fill(s)
		}
	}
	for _, s := range fig.Series {
		if s.Stroked() {
			r.stroke(s)
		}
	}
	return r
}

// Lines returns one string per text row. paint, when non-nil, styles each
// run of cells that share a layer.
func (r *Raster) Lines(paint func(Layer, string) string) []string {
	if r == nil {
		return nil
	}
	out := make([]string, r.Height)
	for row := range r.cells {
		if paint == nil {
			out[row] = string(r.cells[row])
			continue
		}
		var b strings.Builder
		start := 0
		for col := 1; col <= r.Width; col++ {
			if col == r.Width || r.layers[row][col] != r.layers[row][start] {
				b.WriteString(paint(r.layers[row][start], string(r.cells[row][start:col])))
				start = col
			}
		}
		out[row] = b.String()
	}
	return out
}

// LayerAt returns the layer drawn in the given cell.
func (r *Raster) LayerAt(row, col int) Layer {
	if r == nil || row < 0 || row >= r.Height || col < 0 || col >= r.Width {
		return LayerEmpty
	}
	return r.layers[row][col]
}

func (r *Raster) dotCols() int { return r.Width * 2 }
func (r *Raster) dotRows() int { return r.Height * 4 }

func (r *Raster) dotCol(x float64) int {
	return int(math.Round((x - r.XMin) / (r.XMax - r.XMin) * float64(r.dotCols()-1)))
}

func (r *Raster) dotRow(y float64) int {
	return int(math.Round((r.YMax - y) / (r.YMax - r.YMin) * float64(r.dotRows()-1)))
}

func (r *Raster) set(dc, dr int, layer Layer) {
	if dc < 0 || dc >= r.dotCols() || dr < 0 || dr >= r.dotRows() {
		return
	}
	row, col := dr/4, dc/2
	r.cells[row][col] |= brailleDots[dc%2][dr%4]
	if layer > r.layers[row][col] {
		r.layers[row][col] = layer
	}
}

func (r *Raster) fill(s Series) {
	zero := r.dotRow(0)
	n := min(len(s.X), len(s.Y))
	column := func(dc, dr int) {
		lo, hi := dr, zero
		if lo > hi {
			lo, hi = hi, lo
		}
		for y := lo; y <= hi; y++ {
			r.set(dc, y, LayerFill)
		}
	}
	if n == 1 && finite(s.X[0], s.Y[0]) {
		column(r.dotCol(s.X[0]), r.dotRow(s.Y[0]))
		return
	}
	for i := 1; i < n; i++ {
		x0, y0, x1, y1 := s.X[i-1], s.Y[i-1], s.X[i], s.Y[i]
		if !finite(x0, y0) || !finite(x1, y1) {
			continue
		}
		c0, c1 := r.dotCol(x0), r.dotCol(x1)
		if c0 > c1 {
			c0, c1 = c1, c0
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		for dc := c0; dc <= c1; dc++ {
			y := y0
			if c1 != c0 {
				y = y0 + (y1-y0)*float64(dc-c0)/float64(c1-c0)
			}
			column(dc, r.dotRow(y))
		}
	}
}

func (r *Raster) stroke(s Series) {
	n := min(len(s.X), len(s.Y))
	for i := 0; i < n; i++ {
		if !finite(s.X[i], s.Y[i]) {
			continue
		}
		c, d := r.dotCol(s.X[i]), r.dotRow(s.Y[i])
		if i == 0 || !finite(s.X[i-1], s.Y[i-1]) {
			r.set(c, d, LayerLine)
			continue
		}
		r.line(r.dotCol(s.X[i-1]), r.dotRow(s.Y[i-1]), c, d)
	}
}

// line draws a Bresenham segment between two dot coordinates.
func (r *Raster) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		r.set(x0, y0, LayerLine)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func bounds(fig *Figure) (xmin, xmax, ymin, ymax float64, ok bool) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	anchorZero := fig.Layout.YAxis.ZeroLine
	for _, s := range fig.Series {
		if s.Filled() {
			anchorZero = true
		}
		n := min(len(s.X), len(s.Y))
		for i := 0; i < n; i++ {
			if !finite(s.X[i], s.Y[i]) {
				continue
			}
			ok = true
			xmin, xmax = math.Min(xmin, s.X[i]), math.Max(xmax, s.X[i])
			ymin, ymax = math.Min(ymin, s.Y[i]), math.Max(ymax, s.Y[i])
		}
	}
	if !ok {
		return 0, 0, 0, 0, false
	}
	if anchorZero {
		ymin, ymax = math.Min(ymin, 0), math.Max(ymax, 0)
	}
	if xmax == xmin {
		xmin, xmax = xmin-1, xmax+1
	}
	if ymax == ymin {
		ymin, ymax = ymin-1, ymax+1
	}
	return xmin, xmax, ymin, ymax, true
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
