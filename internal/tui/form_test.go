package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/intcalc/internal/calc"
)

func typeText(f FormModel, s string) FormModel {
	for _, r := range s {
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return f
}

func TestFormModel_InitialValues(t *testing.T) {
	t.Parallel()
	f := NewFormModel(calc.Values{calc.FieldFunction: "sin(x)", calc.FieldUpper: "pi"})

	tests := []struct{ field, want string }{
		{calc.FieldFunction, "sin(x)"},
		{calc.FieldLower, ""},
		{calc.FieldUpper, "pi"},
		{"unknown", ""},
	}
	for _, tt := range tests {
		if got := f.Get(tt.field); got != tt.want {
			t.Errorf("Get(%q) = %q, want %q", tt.field, got, tt.want)
		}
	}
	if f.Focused() != calc.FieldFunction {
		t.Errorf("initial focus = %q", f.Focused())
	}
}

func TestFormModel_NilInitial(t *testing.T) {
	t.Parallel()
	f := NewFormModel(nil)
	if req := calc.BuildRequest(f); req != (calc.Request{}) {
		t.Errorf("BuildRequest() = %+v, want empty", req)
	}
}

func TestFormModel_FocusCycles(t *testing.T) {
	t.Parallel()
	f := NewFormModel(nil)

	order := []string{calc.FieldLower, calc.FieldUpper, calc.FieldFunction}
	for _, want := range order {
		f = f.Next()
		if f.Focused() != want {
			t.Fatalf("Next() focus = %q, want %q", f.Focused(), want)
		}
	}
	f = f.Prev()
	if f.Focused() != calc.FieldUpper {
		t.Errorf("Prev() from function = %q, want upper", f.Focused())
	}
}

func TestFormModel_TypingGoesToFocusedInput(t *testing.T) {
	t.Parallel()
	f := NewFormModel(nil)

	f = typeText(f, "x^2 ")
	f = f.Next()
	f = typeText(f, " 0")
	f = f.Next()
	f = typeText(f, "2")

	// Values are read verbatim, whitespace included.
	want := calc.Request{Function: "x^2 ", Lower: " 0", Upper: "2"}
	if got := calc.BuildRequest(f); got != want {
		t.Errorf("BuildRequest() = %+v, want %+v", got, want)
	}
}

func TestFormModel_NextDoesNotAliasPrevious(t *testing.T) {
	t.Parallel()
	f := NewFormModel(nil)
	g := f.Next()

	if f.Focused() != calc.FieldFunction || g.Focused() != calc.FieldLower {
		t.Errorf("focus f=%q g=%q", f.Focused(), g.Focused())
	}
	typeText(f, "a")
	if g.Get(calc.FieldFunction) != "" {
		t.Error("typing into f leaked into g")
	}
}

func TestFormModel_View(t *testing.T) {
	t.Parallel()
	view := NewFormModel(calc.Values{calc.FieldFunction: "x^2"}).View()
	for _, want := range []string{"Function f(x)", "Lower bound", "Upper bound", "x^2"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() should contain %q:\n%s", want, view)
		}
	}
}
