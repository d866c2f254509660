package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All views pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Button, ButtonFocused               lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	SymOK, SymFail, Cursor string
}

var current Theme

func init() { SetTheme("classic") }

// SetTheme switches the palette. Unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:        lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Selected:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Button:        lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("14")),
			ButtonFocused: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("13")),
			Border:        lipgloss.RoundedBorder(),
			BorderColor:   lipgloss.Color("13"),
			SymOK:         "✔", SymFail: "✖", Cursor: "▸ ",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Title: plain.Bold(true), Muted: plain, Accent: plain,
			Success: plain, Error: plain.Bold(true), Pending: plain,
			Selected:      plain.Reverse(true),
			Button:        plain.Padding(0, 1),
			ButtonFocused: plain.Padding(0, 1).Reverse(true),
			Border:        lipgloss.ASCIIBorder(),
			BorderColor:   lipgloss.NoColor{},
			SymOK:         "ok", SymFail: "x", Cursor: "> ",
		}
	default: // classic
		current = Theme{
			Title:         lipgloss.NewStyle().Bold(true),
			Muted:         lipgloss.NewStyle().Faint(true),
			Accent:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Selected:      lipgloss.NewStyle().Bold(true).Reverse(true),
			Button:        lipgloss.NewStyle().Padding(0, 1),
			ButtonFocused: lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true),
			Border:        lipgloss.RoundedBorder(),
			BorderColor:   lipgloss.Color("8"),
			SymOK:         "✔", SymFail: "✖", Cursor: "> ",
		}
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }
