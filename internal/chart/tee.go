package chart

// Plotter is anything that can draw a figure onto a named target.
type Plotter interface {
	Plot(target string, series []Series, layout Layout, cfg Config) error
}

type tee struct {
	primary     Plotter
	secondaries []Plotter
	onError     func(error)
}

// Tee returns a Plotter that draws on primary and then mirrors the figure to
// every secondary. Only primary's error is returned; secondary errors are
// passed to onError, which may be nil. Secondaries are skipped when primary
// fails.
func Tee(primary Plotter, onError func(error), secondaries ...Plotter) Plotter {
	return tee{primary: primary, secondaries: secondaries, onError: onError}
}

func (t tee) Plot(target string, series []Series, layout Layout, cfg Config) error {
	if err := t.primary.Plot(target, series, layout, cfg); err != nil {
		return err
	}
	for _, p := range t.secondaries {
		if err := p.Plot(target, series, layout, cfg); err != nil && t.onError != nil {
			t.onError(err)
		}
	}
	return nil
}
