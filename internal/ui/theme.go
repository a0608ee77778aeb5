package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error lipgloss.Style

	// Surface is the greeting row background; Button the toggle caption.
	Surface, Button, Selected lipgloss.Style
	Card                      lipgloss.Style
	Emphasis                  lipgloss.Style

	Border                 lipgloss.Border
	IconMore, IconLess     string
	SymOK, SymFail, Cursor string
}

var current = classic()

// SetTheme switches the palette; unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = neon()
	case "mono":
		current = mono()
	default:
		current = classic()
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }

func classic() Theme {
	primary := lipgloss.AdaptiveColor{Light: "#6650a4", Dark: "#D0BCFF"}
	onPrimary := lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#381E72"}
	return Theme{
		Name:     "classic",
		Title:    lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Faint(true),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Surface:  lipgloss.NewStyle().Background(primary).Foreground(onPrimary),
		Button:   lipgloss.NewStyle().Background(onPrimary).Foreground(primary).Bold(true),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(primary),
		Emphasis: lipgloss.NewStyle().Bold(true),
		Border:   lipgloss.RoundedBorder(),
		IconMore: "▼", IconLess: "▲",
		SymOK: "✔", SymFail: "✖", Cursor: "> ",
	}
}

func neon() Theme {
	t := classic()
	t.Name = "neon"
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	t.Surface = lipgloss.NewStyle().Background(lipgloss.Color("53")).Foreground(lipgloss.Color("219"))
	t.Button = lipgloss.NewStyle().Background(lipgloss.Color("219")).Foreground(lipgloss.Color("53")).Bold(true)
	t.Card = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("14"))
	return t
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:    "mono",
		Title:   plain, Muted: plain, Accent: plain, Success: plain, Error: plain,
		Surface: plain, Button: plain, Selected: plain, Emphasis: plain,
		Card:     lipgloss.NewStyle().Border(lipgloss.NormalBorder()),
		Border:   lipgloss.NormalBorder(),
		IconMore: "v", IconLess: "^",
		SymOK: "ok", SymFail: "x", Cursor: "> ",
	}
}
