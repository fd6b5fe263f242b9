package chart

import "fmt"

// ErrUnknownTarget is returned when Plot names a canvas the charter does not own.
type ErrUnknownTarget struct {
	Target string
}

func (e ErrUnknownTarget) Error() string {
	return fmt.Sprintf("unknown plot target %q", e.Target)
}

// Terminal stores figures on canvases; front ends rasterize them on draw.
type Terminal struct {
	canvases map[string]*Canvas
}

// NewTerminal creates a charter owning the given canvases.
func NewTerminal(canvases ...*Canvas) *Terminal {
	m := make(map[string]*Canvas, len(canvases))
	for _, c := range canvases {
		m[c.ID()] = c
	}
	return &Terminal{canvases: m}
}

// Plot renders (or fully replaces) the chart on the target canvas.
func (t *Terminal) Plot(target string, series []Series, layout Layout, cfg Config) error {
	c, ok := t.canvases[target]
	if !ok {
		return ErrUnknownTarget{Target: target}
	}
	c.Replace(&Figure{Series: series, Layout: layout, Config: cfg})
	return nil
}
