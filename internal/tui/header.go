package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/intcalc/internal/cli"
	"github.com/agbru/intcalc/internal/controller"
)

// HeaderModel renders the top bar: title, version, service and status.
type HeaderModel struct {
	version  string
	endpoint string
	state    controller.UIState
	elapsed  time.Duration
	width    int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version, endpoint string) HeaderModel {
	return HeaderModel{
		version:  version,
		endpoint: endpoint,
		state:    controller.Idle{},
	}
}

// SetState records the controller state to show.
func (h *HeaderModel) SetState(st controller.UIState) {
	h.state = st
}

// SetElapsed records how long the last submission took.
func (h *HeaderModel) SetElapsed(d time.Duration) {
	h.elapsed = d
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "Integral Calculator"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	pipe := versionStyle.Render(" | ")

	left := titleStyle.Render(titleText) + pipe + versionStyle.Render(h.endpoint)
	right := h.status()

	gap := h.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return headerStyle.Width(h.width).Render(left + spaces(gap) + right)
}

func (h HeaderModel) status() string {
	switch h.state.(type) {
	case controller.Pending:
		return statusBusyStyle.Render("● Calculating")
	case controller.Success:
		return statusOKStyle.Render("● Done in " + cli.FormatExecutionDuration(h.elapsed))
	case controller.Failed:
		return statusFailStyle.Render("● Failed")
	default:
		return statusIdleStyle.Render("● Ready")
	}
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
