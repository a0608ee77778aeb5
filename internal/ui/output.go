package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// OK prints a success line to w.
func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Success.Render(current.SymOK+" "+msg))
}

// Fail prints an error line to w (normally stderr).
func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Error.Render(current.SymFail+" "+msg))
}

// Panel frames lines in the theme border.
func Panel(lines []string) string {
	border := lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// ProgressBar renders "[███░░░] n/total".
func ProgressBar(n, total, width int) string {
	if width <= 0 {
		width = 28
	}
	denom := total
	if denom <= 0 {
		denom = 1
	}
	filled := int(float64(n) / float64(denom) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + fmt.Sprintf("] %d/%d", n, total)
}
