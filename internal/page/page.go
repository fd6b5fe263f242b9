package page

import "github.com/agbru/intcalc/internal/chart"

// Element ids.
const (
	ErrorID   = "error-message"
	SummaryID = "result-summary"
	StepsID   = "steps-section"
	PlotID    = "plot-container"
	TriggerID = "calculate-btn"
)

// Trigger labels.
const (
	LabelIdle    = "Calculate Integral"
	LabelPending = "Calculating..."
)

// Page groups every element of the surface.
type Page struct {
	Error   *Region
	Summary *Region
	Steps   *Region
	Plot    *chart.Canvas
	Trigger *Trigger
}

// New creates a page in its initial state: every region hidden and empty,
// the trigger enabled with its idle label.
func New() *Page {
	return &Page{
		Error:   NewRegion(ErrorID, false),
		Summary: NewRegion(SummaryID, false),
		Steps:   NewRegion(StepsID, false),
		Plot:    chart.NewCanvas(PlotID),
		Trigger: NewTrigger(TriggerID, LabelIdle),
	}
}
