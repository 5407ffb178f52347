package summary

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/shizi/internal/session"
	"github.com/abhisek/shizi/internal/ui/components"
	"github.com/abhisek/shizi/internal/ui/theme"
)

// Buttons on the finished screen, in order.
const (
	ButtonMenu = iota
	ButtonReplay
)

var buttonLabels = []string{"Main Menu", "Replay"}

// View renders the end-of-game summary with the button at selected
// highlighted.
func View(sum session.Summary, selected, width int) string {
	cw := components.ContentWidth(width)
	center := func(s string) string { return lipgloss.PlaceHorizontal(width, lipgloss.Center, s) }

	mood := components.MoodIdle
	if sum.Percentage >= 80 {
		mood = components.MoodHappy
	}

	var b strings.Builder
	b.WriteString(center(sum.Rating.Emoji))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(sum.Rating.Title)))
	b.WriteString("\n\n")
	b.WriteString(center(components.Panda(mood)))
	b.WriteString("\n\n")

	stats := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(
			fmt.Sprintf("You scored %d out of %d", sum.Score, sum.Total)),
		"",
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(
			fmt.Sprintf("★ %d points   %d%%", sum.Points, sum.Percentage)),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(sum.Mode.Label()),
	)
	b.WriteString(center(components.ArcadeCard(stats, cw)))
	b.WriteString("\n\n")
	b.WriteString(center(components.ButtonRow(buttonLabels, selected, cw)))

	return b.String()
}
