package ui

import "github.com/charmbracelet/lipgloss"

// Onboarding renders the welcome screen centred in width x height.
func Onboarding(width, height int) string {
	title := current.Title.Render("Welcome to the Basics Codelab!")
	button := current.Button.Padding(0, 2).Render("Continue")
	hint := current.Muted.Render("enter to continue · q to quit")
	block := lipgloss.JoinVertical(lipgloss.Center, title, "", button, "", hint)
	if width <= 0 || height <= 0 {
		return block
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
