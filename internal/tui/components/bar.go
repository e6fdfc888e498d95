// Package components provides shared UI components for the TUI.
package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	barFill  = "█"
	barTrack = "░"
)

// FilledCells returns how many of width cells represent percent (0-100).
// Any non-zero percentage fills at least one cell.
func FilledCells(width int, percent float64) int {
	if width <= 0 || percent <= 0 {
		return 0
	}
	if percent >= 100 {
		return width
	}
	n := int(math.Round(float64(width) * percent / 100))
	return min(max(n, 1), width)
}

// Bar renders a horizontal meter width cells wide.
func Bar(width int, percent float64, fill, track lipgloss.Style) string {
	if width <= 0 {
		return ""
	}
	n := FilledCells(width, percent)
	return fill.Render(strings.Repeat(barFill, n)) + track.Render(strings.Repeat(barTrack, width-n))
}

// PadLeft right-aligns s in a field width cells wide.
func PadLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}

// PadRight left-aligns s in a field width cells wide, truncating with an
// ellipsis when s is wider.
func PadRight(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}
