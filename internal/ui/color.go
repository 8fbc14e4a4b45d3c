// Package ui holds the colours and table helpers shared by the terminal
// surfaces
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/tempus/internal/models"
)

var DarkTheme = true

// accentHex maps each accent colour to its hex value.
var accentHex = map[models.AccentColor]string{
	"rose":    "#F43F5E",
	"violet":  "#8B5CF6",
	"cyan":    "#06B6D4",
	"amber":   "#F59E0B",
	"emerald": "#10B981",
	"blue":    "#3B82F6",
}

// Accent returns the lipgloss colour of an accent, falling back to rose.
func Accent(c models.AccentColor) lipgloss.Color {
	if hex, ok := accentHex[c]; ok {
		return lipgloss.Color(hex)
	}

	return lipgloss.Color(accentHex["rose"])
}

// HeatmapColor returns the colour of a heatmap intensity level (0-4).
func HeatmapColor(level int) pterm.Color {
	switch level {
	case 1:
		return pterm.FgGreen
	case 2:
		return pterm.FgLightGreen
	case 3:
		return pterm.FgYellow
	case 4:
		return pterm.FgLightYellow
	}

	return pterm.FgGray
}

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Magenta(a any) string {
	if DarkTheme {
		return pterm.LightMagenta(a)
	}

	return pterm.Magenta(a)
}

func Blue(a any) string {
	if DarkTheme {
		return pterm.LightBlue(a)
	}

	return pterm.Blue(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// PhaseColor renders s in the colour of Pomodoro phase p.
func PhaseColor(p models.Phase, s string) string {
	switch p {
	case models.PhaseShortBreak:
		return Blue(s)
	case models.PhaseLongBreak:
		return Magenta(s)
	default:
		return Green(s)
	}
}
