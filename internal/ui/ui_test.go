package ui

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/tempus/internal/models"
)

func TestAccent(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#06B6D4"), Accent("cyan"))
	assert.Equal(t, lipgloss.Color("#F43F5E"), Accent("neon"))

	for _, c := range models.AccentColors {
		_, ok := accentHex[c]
		assert.True(t, ok, "missing hex value for %s", c)
	}
}

func TestPrintTable(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var buf bytes.Buffer

	PrintTable([][]string{
		{"#", "TAG"},
		{"1", "work"},
	}, &buf)

	out := buf.String()

	assert.Contains(t, out, "TAG")
	assert.Contains(t, out, "work")
}
