package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/intcalc/internal/calc"
)

const (
	labelWidth = 14
	inputWidth = 32
)

// field is one labelled text input of the form.
type field struct {
	name  string
	label string
	input textinput.Model
}

// FormModel holds the three integral inputs. It implements calc.Form, so
// the request is read straight from what the user typed.
type FormModel struct {
	fields []field
	focus  int
}

var _ calc.Form = FormModel{}

// NewFormModel creates the form with initial values and focuses the
// function input.
func NewFormModel(initial calc.Form) FormModel {
	specs := []struct{ name, label, placeholder string }{
		{calc.FieldFunction, "Function f(x)", "x^2"},
		{calc.FieldLower, "Lower bound", "0"},
		{calc.FieldUpper, "Upper bound", "2"},
	}

	f := FormModel{fields: make([]field, len(specs))}
	for i, s := range specs {
		in := textinput.New()
		in.Prompt = "› "
		in.Placeholder = s.placeholder
		in.Width = inputWidth
		if initial != nil {
			in.SetValue(initial.Get(s.name))
		}
		f.fields[i] = field{name: s.name, label: s.label, input: in}
	}
	f.fields[0].input.Focus()
	return f
}

// Get returns the raw text of the named input.
func (f FormModel) Get(name string) string {
	for _, fd := range f.fields {
		if fd.name == name {
			return fd.input.Value()
		}
	}
	return ""
}

// Focused returns the name of the input receiving keys.
func (f FormModel) Focused() string {
	return f.fields[f.focus].name
}

// Next moves the focus forward, wrapping around.
func (f FormModel) Next() FormModel {
	return f.move(1)
}

// Prev moves the focus backward, wrapping around.
func (f FormModel) Prev() FormModel {
	return f.move(len(f.fields) - 1)
}

func (f FormModel) move(delta int) FormModel {
	fields := make([]field, len(f.fields))
	copy(fields, f.fields)
	fields[f.focus].input.Blur()
	f.focus = (f.focus + delta) % len(fields)
	fields[f.focus].input.Focus()
	f.fields = fields
	return f
}

// Update forwards msg to the focused input.
func (f FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	fields := make([]field, len(f.fields))
	copy(fields, f.fields)
	var cmd tea.Cmd
	fields[f.focus].input, cmd = fields[f.focus].input.Update(msg)
	f.fields = fields
	return f, cmd
}

// View renders one labelled line per input.
func (f FormModel) View() string {
	rows := make([]string, len(f.fields))
	for i, fd := range f.fields {
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(fd.label), fd.input.View())
	}
	return strings.Join(rows, "\n")
}
