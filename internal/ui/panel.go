package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Panel frames inner with the current theme's border.
func Panel(inner string) string {
	return PanelStyle().Render(inner)
}

// PanelStyle is the bordered box shared by the list frame and the overlays.
func PanelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(current.BorderColor).
		Padding(0, 1)
}

// Overlay composites fg centered on top of bg. Both are treated as line
// grids; width and height bound the canvas (0 means use bg's size).
func Overlay(bg, fg string, width, height int) string {
	bgLines := splitLines(bg)
	fgLines := splitLines(fg)
	if width <= 0 {
		width = maxLineWidth(bgLines)
	}
	if height <= 0 {
		height = len(bgLines)
	}
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	fgWidth := maxLineWidth(fgLines)
	x := max((width-fgWidth)/2, 0)
	y := max((height-len(fgLines))/2, 0)

	for i, line := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		target := padRight(bgLines[row], width)
		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		line = padRight(line, fgWidth)
		right := ansi.TruncateLeft(target, x+ansi.StringWidth(line), "")
		bgLines[row] = left + line + right
	}
	return strings.Join(bgLines, "\n")
}

func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
