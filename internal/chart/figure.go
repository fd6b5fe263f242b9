package chart

// Series render modes.
const (
	ModeLines = "lines"
	ModeNone  = "none"
)

// FillToZeroY fills the area between a series and the y=0 line.
const FillToZeroY = "tozeroy"

// HoverClosest reports the point closest to the cursor.
const HoverClosest = "closest"

// Series is one trace of a figure.
type Series struct {
	Name      string
	X         []float64
	Y         []float64
	Mode      string
	Fill      string
	Line      Line
	FillColor string
}

// Line styles a series stroke.
type Line struct {
	Color string
	Width float64
}

// Filled reports whether the series is shaded down to y=0.
func (s Series) Filled() bool { return s.Fill == FillToZeroY }

// Stroked reports whether the series draws a connecting line.
func (s Series) Stroked() bool { return s.Mode == ModeLines }

// Axis configures one axis.
type Axis struct {
	Title         string
	ZeroLine      bool
	ZeroLineColor string
	GridColor     string
}

// Margin is the space around the plot area, in pixels.
type Margin struct {
	T, R, L, B int
}

// Layout holds titles, axes and decoration of a figure.
type Layout struct {
	Title      string
	FontFamily string
	ShowLegend bool
	XAxis      Axis
	YAxis      Axis
	Margin     Margin
	HoverMode  string
}

// Config holds behaviour settings.
type Config struct {
	Responsive bool
}

// Figure is everything a charter needs to draw one chart.
type Figure struct {
	Series []Series
	Layout Layout
	Config Config
}

// Clone returns a deep copy so callers cannot mutate a stored figure.
func (f *Figure) Clone() *Figure {
	if f == nil {
		return nil
	}
	out := &Figure{Layout: f.Layout, Config: f.Config}
	out.Series = make([]Series, len(f.Series))
	for i, s := range f.Series {
		s.X = append([]float64(nil), s.X...)
		s.Y = append([]float64(nil), s.Y...)
		out.Series[i] = s
	}
	return out
}
