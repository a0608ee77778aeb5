package ui

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/greetings/internal/content"
	"github.com/Makepad-fr/greetings/internal/model"
)

var (
	mdRendererMu sync.Mutex
	// Renderers are cached by style + wrap width; building one is not free.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

func markdownStyle() string {
	if current.Name == "mono" {
		return "notty"
	}
	// Fixed style: auto-detection queries the terminal and can block.
	return "dark"
}

func renderMarkdown(md string, width int) (string, error) {
	md = strings.TrimSpace(md)
	if md == "" {
		return "", nil
	}
	if width < 10 {
		width = 10
	}
	style := markdownStyle()
	key := style + ":" + strconv.Itoa(width)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			mdRendererMu.Unlock()
			return "", fmt.Errorf("markdown renderer: %w", err)
		}
		mdRenderers[key] = rr
		r = rr
	}
	mdRendererMu.Unlock()

	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}

// WateringText is the plural "every day" / "every N days" suffix.
func WateringText(interval int) string {
	if interval == 1 {
		return "every day"
	}
	return fmt.Sprintf("every %d days", interval)
}

// PlantDetail renders the plant screen: centred name, watering needs, and
// the HTML description converted for the terminal.
func PlantDetail(p model.Plant, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	name := center.Render(current.Title.Render(p.Name))
	watering := lipgloss.JoinVertical(lipgloss.Center,
		center.Render(current.Accent.Bold(true).Render("Watering needs")),
		center.Render(WateringText(p.WateringInterval)),
	)

	md, err := content.DescriptionToMarkdown(p.Description)
	if err != nil {
		return "", err
	}
	desc, err := renderMarkdown(md, width)
	if err != nil {
		return "", err
	}
	return lipgloss.JoinVertical(lipgloss.Left, name, "", watering, "", desc), nil
}
