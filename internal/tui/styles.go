package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/intcalc/internal/ui"
)

// Style variables for the dashboard.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle        lipgloss.Style
	focusedPanelStyle lipgloss.Style
	headerStyle       lipgloss.Style
	titleStyle        lipgloss.Style
	versionStyle      lipgloss.Style
	labelStyle        lipgloss.Style
	buttonStyle       lipgloss.Style
	buttonBusyStyle   lipgloss.Style
	errorStyle        lipgloss.Style
	summaryStyle      lipgloss.Style
	dimStyle          lipgloss.Style
	plotLineStyle     lipgloss.Style
	plotAreaStyle     lipgloss.Style
	plotAxisStyle     lipgloss.Style
	statusIdleStyle   lipgloss.Style
	statusBusyStyle   lipgloss.Style
	statusOKStyle     lipgloss.Style
	statusFailStyle   lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	focusedPanelStyle = panelStyle.
		BorderForeground(t.Accent)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	labelStyle = lipgloss.NewStyle().
		Foreground(t.Dim).
		Width(labelWidth)

	buttonStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Text).
		Border(lipgloss.NormalBorder()).
		BorderForeground(t.Accent).
		Padding(0, 2)

	buttonBusyStyle = buttonStyle.
		Foreground(t.Dim).
		BorderForeground(t.Dim)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	summaryStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	dimStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	plotLineStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	plotAreaStyle = lipgloss.NewStyle().
		Foreground(t.Area)

	plotAxisStyle = lipgloss.NewStyle().
		Foreground(t.ZeroLine)

	statusIdleStyle = lipgloss.NewStyle().
		Foreground(t.Dim).
		Bold(true)

	statusBusyStyle = lipgloss.NewStyle().
		Foreground(t.Warning).
		Bold(true)

	statusOKStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	statusFailStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)
}
