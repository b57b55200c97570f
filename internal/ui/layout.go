package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// columnCount decides the list layout for a given terminal width:
// a single column below minWidth, two columns at or above it.
func columnCount(width, minWidth int) int {
	if width >= minWidth {
		return 2
	}
	return 1
}

// splitColumns distributes lines over cols columns, filling the first
// column before the second so reading order is preserved top-down.
func splitColumns(lines []string, cols int) [][]string {
	if cols < 1 {
		cols = 1
	}
	if cols == 1 || len(lines) < 2 {
		return [][]string{lines}
	}
	half := (len(lines) + 1) / 2
	return [][]string{lines[:half], lines[half:]}
}

// renderColumns lays the line groups out side by side.
func renderColumns(groups [][]string, colWidth int) string {
	if len(groups) == 1 {
		return strings.Join(groups[0], "\n")
	}
	blocks := make([]string, 0, len(groups))
	style := lipgloss.NewStyle().Width(colWidth)
	for _, g := range groups {
		blocks = append(blocks, style.Render(strings.Join(g, "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// progressBar renders completion as a fixed-width bar with counts.
func progressBar(done, total, width int) string {
	if total == 0 {
		total = 1
	}
	if width <= 0 {
		width = 28
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + fmt.Sprintf("] %d/%d", done, total)
}
