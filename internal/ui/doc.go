// Package ui holds the color themes shared by the one-shot output and the
// dashboard: ANSI escape codes for plain terminal writes and lipgloss colors
// for the dashboard. NO_COLOR and -no-color switch both to plain text.
package ui
