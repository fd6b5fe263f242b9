package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/intcalc/internal/calc"
	"github.com/agbru/intcalc/internal/chart"
	"github.com/agbru/intcalc/internal/controller"
	"github.com/agbru/intcalc/internal/page"
	"github.com/agbru/intcalc/internal/render"
	"github.com/agbru/intcalc/internal/typeset"
	"github.com/agbru/intcalc/internal/ui"
)

// MockSpinner for testing
type MockSpinner struct {
	mu      sync.Mutex
	started bool
	stopped bool
	suffix  string
}

func (m *MockSpinner) Start() {
	m.mu.Lock()
	m.started = true
	m.mu.Unlock()
}

func (m *MockSpinner) Stop() {
	m.mu.Lock()
	m.stopped = true
	m.mu.Unlock()
}

func (m *MockSpinner) UpdateSuffix(suffix string) {
	m.mu.Lock()
	m.suffix = suffix
	m.mu.Unlock()
}

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{250 * time.Millisecond, "250ms"},
		{1500 * time.Millisecond, "1.5s"},
	}
	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.d); got != tt.want {
			t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestRealSpinner(t *testing.T) {
	t.Parallel()
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(&bytes.Buffer{}))
	rs := &realSpinner{s}

	// Just verify these methods don't panic
	rs.Start()
	rs.UpdateSuffix(" test")
	rs.Stop()
}

// TestPendingIndicator replaces the package spinner factory and must not
// run in parallel.
func TestPendingIndicator(t *testing.T) {
	originalNewSpinner := newSpinner
	defer func() { newSpinner = originalNewSpinner }()

	mockS := &MockSpinner{}
	newSpinner = func(options ...spinner.Option) Spinner {
		return mockS
	}

	ind := NewPendingIndicator(&bytes.Buffer{})
	req := calc.Request{Function: "x"}

	ind.Observe(controller.Idle{}, controller.Pending{Request: req})
	if !mockS.started || mockS.stopped {
		t.Fatal("spinner should start when entering pending")
	}
	if mockS.suffix != " "+page.LabelPending {
		t.Errorf("suffix = %q", mockS.suffix)
	}

	ind.Observe(controller.Pending{Request: req}, controller.Success{Request: req})
	if !mockS.stopped {
		t.Error("spinner should stop when leaving pending")
	}

	// Transitions between resting states are ignored.
	mockS.stopped = false
	ind.Observe(controller.Success{}, controller.Failed{})
	if mockS.stopped {
		t.Error("no spinner is running outside pending")
	}
}

func TestFormatStep(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		n     int
		width int
		block string
		want  string
	}{
		{"single line", 1, 1, "a", "  1. a\n"},
		{"padded number", 3, 2, "c", "   3. c\n"},
		{"multi line", 2, 1, "first\nsecond", "  2. first\n     second\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatStep(tt.n, tt.width, tt.block); got != tt.want {
				t.Errorf("FormatStep() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Output tests switch the global theme and do not run in parallel.

func TestDisplayPage_Success(t *testing.T) {
	saved := ui.GetCurrentTheme()
	defer ui.SetCurrentTheme(saved)
	ui.SetTheme("none")

	p := page.New()
	r := render.New(p, typeset.NewTerminal(), chart.NewTerminal(p.Plot))
	res := &calc.Result{
		Result:      "2.66666666666667",
		LatexResult: `\frac{8}{3}`,
		Steps:       []string{"Apply $$x^3/3$$", "Evaluate<br>at the bounds"},
		PlotData: calc.PlotData{
			X: []float64{0, 1, 2}, Y: []float64{0, 1, 4},
			XArea: []float64{0, 1, 2}, YArea: []float64{0, 1, 4},
		},
	}
	if err := r.Render(context.Background(), res, calc.Request{Function: "x^2", Lower: "0", Upper: "2"}); err != nil {
		t.Fatal(err)
	}
	if err := r.Wait(context.Background()); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	DisplayPage(p, &buf, DisplayOptions{PlotColumns: 20, PlotRows: 4})
	out := buf.String()

	for _, want := range []string{
		"∫₀² (x²) dx = 8/3 ≈ 2.6667",
		"1. Apply x³/3",
		"2. Evaluate\n     at the bounds",
		"Graph of f(x) from 0 to 2",
		"x ∈ [0, 2]",
		"f(x) ∈ [0, 4]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "❌") {
		t.Error("no error should be displayed on success")
	}
	if strings.Contains(out, "\033[") {
		t.Error("no-color theme should not emit escape codes")
	}
}

func TestDisplayPage_Failure(t *testing.T) {
	saved := ui.GetCurrentTheme()
	defer ui.SetCurrentTheme(saved)
	ui.SetTheme("none")

	p := page.New()
	p.Error.SetText("Invalid function")
	p.Error.Show()

	var buf bytes.Buffer
	DisplayPage(p, &buf, DisplayOptions{})
	out := buf.String()
	if out != "❌ Invalid function\n" {
		t.Errorf("output = %q", out)
	}
}

func TestDisplaySteps_Empty(t *testing.T) {
	saved := ui.GetCurrentTheme()
	defer ui.SetCurrentTheme(saved)
	ui.SetTheme("none")

	var buf bytes.Buffer
	DisplaySteps(page.NewRegion(page.StepsID, true), &buf)
	if !strings.Contains(buf.String(), "(none)") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestFormatPlot_Colors(t *testing.T) {
	t.Parallel()

	fig := &chart.Figure{Series: []chart.Series{
		{X: []float64{0, 1}, Y: []float64{0, 1}, Mode: chart.ModeLines},
	}}
	r := chart.Rasterize(fig, 4, 2)
	lines := FormatPlot(r, ui.DarkTheme)
	if !strings.Contains(strings.Join(lines, ""), ui.DarkTheme.Primary) {
		t.Error("line cells should be painted with the primary color")
	}
}

func TestPrintRequest(t *testing.T) {
	saved := ui.GetCurrentTheme()
	defer ui.SetCurrentTheme(saved)
	ui.SetTheme("none")

	var buf bytes.Buffer
	PrintRequest(calc.Request{Function: "x^2", Lower: "0"}, "http://svc/calculate", &buf)
	PrintCompletion(1500*time.Millisecond, &buf)
	out := buf.String()
	for _, want := range []string{"http://svc/calculate", "Function: x^2", `Bounds:   [0, ""]`, "Completed in 1.5s"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got:\n%s", want, out)
		}
	}
}
