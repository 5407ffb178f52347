package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/shizi/internal/ui/theme"
)

// ContentWidth returns the uniform inner width for boxed sections, so
// stacked boxes line up.
func ContentWidth(frameWidth int) int {
	// cabinet border (2) + inner padding (4)
	return min(max(frameWidth-6, 20), 60)
}

// CabinetFrame wraps content in a double-border frame, centered in the
// given dimensions.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard wraps content in a rounded card at content width cw.
func ArcadeCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// ArcadeButton renders a single button.
func ArcadeButton(label string, selected bool, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if selected {
		return style.
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow).
			Render("▸ " + label)
	}
	return style.
		Foreground(theme.Text).
		BorderForeground(theme.Border).
		Render(label)
}

// ButtonRow renders labels side by side with the selected one
// highlighted, fitting the row into cw columns.
func ButtonRow(labels []string, selected, cw int) string {
	if len(labels) == 0 {
		return ""
	}
	gap := 2
	w := max((cw-gap*(len(labels)-1))/len(labels)-2, 6)

	buttons := make([]string, 0, len(labels)*2)
	for i, l := range labels {
		if i > 0 {
			buttons = append(buttons, strings.Repeat(" ", gap))
		}
		buttons = append(buttons, ArcadeButton(l, i == selected, w))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
}
