package welcome

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/shizi/internal/ui/layout"
	"github.com/abhisek/shizi/internal/ui/theme"
)

const bannerRomanized = "M E N G · M E N G · S H I · Z I"

// RenderBanner returns the app name framed in the primary color, with
// its romanization underneath on wide terminals.
func RenderBanner(width int) string {
	name := strings.Join(strings.Split(layout.AppName, ""), "  ")
	boxed := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Padding(1, 6).
		Render(name)

	if width < 52 {
		return lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(layout.AppName)
	}
	roman := lipgloss.NewStyle().Foreground(theme.Primary).Render(bannerRomanized)
	return lipgloss.JoinVertical(lipgloss.Center, boxed, roman)
}
