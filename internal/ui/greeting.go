package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/greetings/internal/model"
)

// LoremBody is the extra text a card reveals when expanded.
var LoremBody = strings.Repeat("Composem ipsum color sit lazy, padding theme elit, sed do bouncy. ", 4)

// RowState is everything a row renderer needs besides the item itself.
// The caller derives it from the expand controller; renderers never decide
// state on their own.
type RowState struct {
	Expanded     bool
	ExtraPadding int    // blank rows under the name, possibly mid-animation
	Label        string // "Show more" / "Show less"
	Selected     bool
	Width        int
}

func (s RowState) width() int {
	if s.Width < 24 {
		return 24
	}
	return s.Width
}

// GreetingRow renders the plain variant: a filled surface holding
// "Hello," and the name on the left and the toggle button on the right.
func GreetingRow(it model.Item, st RowState) string {
	w := st.width()
	button := current.Button.Render(" " + st.Label + " ")
	textW := w - lipgloss.Width(button) - 4
	if textW < 1 {
		textW = 1
	}

	lines := []string{
		fit("Hello,", textW),
		fit(it.Label, textW),
	}
	for i := 0; i < st.ExtraPadding; i++ {
		lines = append(lines, strings.Repeat(" ", textW))
	}
	left := lipgloss.NewStyle().Width(textW).Render(strings.Join(lines, "\n"))
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", button)
	row = current.Surface.Padding(0, 1).Render(row)
	return prefix(row, st.Selected)
}

// GreetingCard renders the card variant: name in bold, an expand icon, and
// the lorem body only while expanded.
func GreetingCard(it model.Item, st RowState) string {
	w := st.width()
	icon := current.IconMore
	if st.Expanded {
		icon = current.IconLess
	}
	iconCell := current.Accent.Render(icon)
	textW := w - 8
	if textW < 1 {
		textW = 1
	}

	body := []string{"Hello, ", current.Emphasis.Render(fit(it.Label, textW))}
	if st.Expanded {
		body = append(body, lipgloss.NewStyle().Width(textW).Render(LoremBody))
	}
	for i := 0; i < st.ExtraPadding; i++ {
		body = append(body, "")
	}
	inner := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(textW).Render(strings.Join(body, "\n")),
		" ", iconCell,
	)
	card := current.Card.Padding(0, 1).Render(inner)
	return prefix(card, st.Selected)
}

// prefix draws the selection cursor in front of the first line and
// indents the rest to match.
func prefix(block string, selected bool) string {
	lines := strings.Split(block, "\n")
	for i := range lines {
		switch {
		case i == 0 && selected:
			lines[i] = current.Selected.Render(current.Cursor) + lines[i]
		default:
			lines[i] = strings.Repeat(" ", lipgloss.Width(current.Cursor)) + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

func fit(s string, w int) string {
	if lipgloss.Width(s) <= w {
		return s
	}
	r := []rune(s)
	if w <= 1 || len(r) <= 1 {
		return string(r[:1])
	}
	for lipgloss.Width(string(r)) > w-1 {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
