package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/intcalc/internal/calc"
	"github.com/agbru/intcalc/internal/controller"
	apperrors "github.com/agbru/intcalc/internal/errors"
	"github.com/agbru/intcalc/internal/page"
)

// Layout constants for the dashboard.
const (
	headerHeight          = 1
	footerHeight          = 1
	minBodyHeight         = 8
	FormPanelWidthPercent = 45
	formPanelHeight       = 8 // three inputs, a blank line, the 3-line button and borders
	minPlotRows           = 4
)

// LayoutManager holds terminal dimensions and provides layout calculations.
type LayoutManager struct {
	width  int
	height int
}

// bodyHeight returns the available height for the panels.
func (l LayoutManager) bodyHeight() int {
	h := l.height - headerHeight - footerHeight
	if h < minBodyHeight {
		h = minBodyHeight
	}
	return h
}

// leftWidth returns the width of the form column.
func (l LayoutManager) leftWidth() int {
	return l.width * FormPanelWidthPercent / 100
}

// rightWidth returns the width of the plot column.
func (l LayoutManager) rightWidth() int {
	return l.width - l.leftWidth()
}

// plotSize returns the braille grid size that fits the plot panel: borders,
// padding, the title and the ranges line are subtracted.
func (l LayoutManager) plotSize() (cols, rows int) {
	cols = l.rightWidth() - 4
	rows = l.bodyHeight() - 4
	if rows < minPlotRows {
		rows = minPlotRows
	}
	if cols < 1 {
		cols = 1
	}
	return cols, rows
}

// Deps wires the dashboard to the calculation pipeline. Controller must be
// built over Page and its renderer must typeset and plot into Page.
type Deps struct {
	Page       *page.Page
	Controller *controller.Controller
	Submitter  controller.Submitter
	Endpoint   string
	// Initial prefills the inputs. May be nil.
	Initial calc.Form
}

// Model is the root bubbletea model for the dashboard.
type Model struct {
	header  HeaderModel
	form    FormModel
	spinner spinner.Model
	steps   viewport.Model
	help    help.Model
	keymap  KeyMap

	LayoutManager

	ctx        context.Context
	page       *page.Page
	ctrl       *controller.Controller
	submitter  controller.Submitter
	state      controller.UIState
	generation uint64
	plots      *plotCache
}

// NewModel creates a new dashboard model.
func NewModel(ctx context.Context, deps Deps, version string) Model {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = statusBusyStyle

	return Model{
		header:    NewHeaderModel(version, deps.Endpoint),
		form:      NewFormModel(deps.Initial),
		spinner:   sp,
		steps:     viewport.New(0, 0),
		help:      help.New(),
		keymap:    DefaultKeyMap(),
		ctx:       ctx,
		page:      deps.Page,
		ctrl:      deps.Controller,
		submitter: deps.Submitter,
		state:     controller.Idle{},
		plots:     &plotCache{},
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case ResultMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from a previous submission
		}
		m.state = m.ctrl.Complete(m.ctx, msg.Request, msg.Result, msg.Err)
		m.header.SetState(m.state)
		m.header.SetElapsed(msg.Elapsed)
		m.refreshSteps()
		m.steps.GotoTop()
		return m, nil

	case TypesetDoneMsg:
		if msg.RegionID == page.StepsID {
			m.refreshSteps()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.pending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Submit):
		return m.submit()

	case key.Matches(msg, m.keymap.Next):
		m.form = m.form.Next()
		return m, nil

	case key.Matches(msg, m.keymap.Prev):
		m.form = m.form.Prev()
		return m, nil

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.Up), key.Matches(msg, m.keymap.Down),
		key.Matches(msg, m.keymap.PageUp), key.Matches(msg, m.keymap.PageDown):
		if !m.page.Steps.Visible() {
			return m, nil
		}
		var cmd tea.Cmd
		m.steps, cmd = m.steps.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// submit starts a submission unless the trigger is disabled.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if !m.page.Trigger.Enabled() {
		return m, nil
	}
	req := calc.BuildRequest(m.form)
	if err := m.ctrl.Begin(req); err != nil {
		return m, nil
	}

	m.generation++
	m.state = controller.Pending{Request: req}
	m.header.SetState(m.state)
	return m, tea.Batch(
		m.spinner.Tick,
		submitCmd(m.ctx, m.submitter, req, m.generation),
	)
}

func (m Model) pending() bool {
	_, ok := m.state.(controller.Pending)
	return ok
}

// State returns the state of the last transition the dashboard drove.
func (m Model) State() controller.UIState {
	return m.state
}

// ExitCode maps the final state to a process exit code.
func (m Model) ExitCode() int {
	if f, ok := m.state.(controller.Failed); ok {
		return apperrors.ExitCode(f.Err)
	}
	return apperrors.ExitSuccess
}

func (m *Model) refreshSteps() {
	m.steps.SetContent(stepsContent(m.page.Steps, m.steps.Width))
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.help.Width = m.width
	m.steps.Width = m.leftWidth() - 4
	m.steps.Height = m.bodyHeight() - formPanelHeight - 2
	if m.steps.Height < 1 {
		m.steps.Height = 1
	}
	m.refreshSteps()
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	left := m.leftColumn()
	right := m.rightColumn(lipgloss.Height(left))
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, m.help.View(m.keymap))
}

func (m Model) leftColumn() string {
	w := m.leftWidth() - 2
	panels := []string{focusedPanelStyle.Width(w).Render(m.form.View() + "\n\n" + m.button())}

	if m.page.Error.Visible() {
		panels = append(panels, panelStyle.Width(w).Render(errorView(m.page.Error)))
	}
	if m.page.Summary.Visible() {
		panels = append(panels, panelStyle.Width(w).Render(summaryView(m.page.Summary)))
	}
	if m.page.Steps.Visible() {
		used := 0
		for _, p := range panels {
			used += lipgloss.Height(p)
		}
		vp := m.steps
		if h := m.bodyHeight() - used - 3; h < vp.Height {
			vp.Height = max(h, 1)
		}
		panels = append(panels, panelStyle.Width(w).Render(titleStyle.Render("Steps")+"\n"+vp.View()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}

func (m Model) rightColumn(height int) string {
	w := m.rightWidth() - 2
	content := dimStyle.Render("Enter a function and bounds, then press enter.")
	if m.page.Summary.Visible() {
		cols, rows := m.plotSize()
		if plot := m.plots.view(m.page.Plot, cols, rows); plot != "" {
			content = plot
		}
	}
	return panelStyle.Width(w).Height(max(height-2, 1)).Render(content)
}

func (m Model) button() string {
	label := m.page.Trigger.Label()
	if !m.page.Trigger.Enabled() {
		return buttonBusyStyle.Render(m.spinner.View() + " " + label)
	}
	return buttonStyle.Render(label)
}

// Run is the public entry point for the dashboard. bridge must be the one
// whose NotifyTypeset was handed to the typesetter.
func Run(ctx context.Context, deps Deps, bridge *Bridge, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, deps, version)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	// Inject the program reference before running so typeset goroutines can Send.
	bridge.SetProgram(p)
	defer bridge.SetProgram(nil)

	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		return m.ExitCode()
	}
	return apperrors.ExitSuccess
}
