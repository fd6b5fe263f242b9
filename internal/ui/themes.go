package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a set of ANSI escape codes for plain terminal output.
type Theme struct {
	Name string
	// Primary is the accent used for the formula and the plot line.
	Primary string
	// Area shades the region under the curve.
	Area string
	// Axis draws zero lines and secondary text.
	Axis      string
	Success   string
	Warning   string
	Error     string
	Bold      string
	Underline string
	Reset     string
}

// Wrap surrounds s with code and Reset. Empty codes leave s untouched.
func (t Theme) Wrap(code, s string) string {
	if code == "" || s == "" {
		return s
	}
	return code + s + t.Reset
}

var (
	// DarkTheme uses the indigo palette of the plot on dark backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;105m", // indigo
		Area:      "\033[38;5;61m",  // muted indigo
		Axis:      "\033[38;5;247m", // slate
		Success:   "\033[38;5;78m",
		Warning:   "\033[38;5;221m",
		Error:     "\033[38;5;203m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// LightTheme uses darker tones for light backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;62m",
		Area:      "\033[38;5;146m",
		Axis:      "\033[38;5;244m",
		Success:   "\033[38;5;28m",
		Warning:   "\033[38;5;130m",
		Error:     "\033[38;5;124m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all escape codes.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// TUITheme defines lipgloss colors for the dashboard.
type TUITheme struct {
	Text     lipgloss.TerminalColor
	Border   lipgloss.TerminalColor
	Accent   lipgloss.TerminalColor
	Area     lipgloss.TerminalColor
	ZeroLine lipgloss.TerminalColor
	Success  lipgloss.TerminalColor
	Warning  lipgloss.TerminalColor
	Error    lipgloss.TerminalColor
	Dim      lipgloss.TerminalColor
}

var (
	// DarkTUITheme follows the web palette: indigo accents on slate.
	DarkTUITheme = TUITheme{
		Text:     lipgloss.Color("#E2E8F0"),
		Border:   lipgloss.Color("#475569"),
		Accent:   lipgloss.Color("#6366F1"),
		Area:     lipgloss.Color("#4F46E5"),
		ZeroLine: lipgloss.Color("#94A3B8"),
		Success:  lipgloss.Color("#22C55E"),
		Warning:  lipgloss.Color("#F59E0B"),
		Error:    lipgloss.Color("#EF4444"),
		Dim:      lipgloss.Color("#64748B"),
	}

	// NoColorTUITheme renders everything in the terminal's default colors.
	NoColorTUITheme = TUITheme{
		Text:     lipgloss.NoColor{},
		Border:   lipgloss.NoColor{},
		Accent:   lipgloss.NoColor{},
		Area:     lipgloss.NoColor{},
		ZeroLine: lipgloss.NoColor{},
		Success:  lipgloss.NoColor{},
		Warning:  lipgloss.NoColor{},
		Error:    lipgloss.NoColor{},
		Dim:      lipgloss.NoColor{},
	}
)

// GetCurrentTUITheme returns the dashboard palette matching the active theme.
func GetCurrentTUITheme() TUITheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()

	if currentTheme.Name == NoColorTheme.Name {
		return NoColorTUITheme
	}
	return DarkTUITheme
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme activates a theme by name: "dark", "light" or "none".
// Unknown names select dark.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case LightTheme.Name:
		currentTheme = LightTheme
	case NoColorTheme.Name:
		currentTheme = NoColorTheme
	default:
		currentTheme = DarkTheme
	}
}

// InitTheme picks the theme for this run. noColor or a NO_COLOR environment
// variable (https://no-color.org/) disable colors.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if _, exists := os.LookupEnv("NO_COLOR"); noColor || exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = DarkTheme
}
