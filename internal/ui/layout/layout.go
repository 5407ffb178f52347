package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/shizi/internal/ui/theme"
)

// AppName is shown at the left of the header.
const AppName = "萌萌识字"

const (
	MinWidth  = 80
	MinHeight = 24

	// CompactHeightThreshold is the terminal height below which screens
	// drop decorative art.
	CompactHeightThreshold = 30
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

var barStyle = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// ScoreStatus formats the header status for a running game.
func ScoreStatus(score int) string {
	return fmt.Sprintf("★ %d", score)
}

func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks for a bigger terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("窗口太小啦！\n\nPlease make the terminal at\nleast %d x %d\n\nNow: %d x %d",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(msg))
}

// RenderHeader draws the app name on the left, title centered and status
// (usually the score) on the right.
func RenderHeader(title, status string, width int) string {
	inner := max(width-4, 0)

	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  " + AppName)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status + "  ")
	mid := lipgloss.PlaceHorizontal(
		max(inner-lipgloss.Width(left)-lipgloss.Width(right), 0),
		lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(title),
	)

	return barStyle.Width(width).Render(left + mid + right)
}

// RenderFooter lists key hints separated by dots.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return barStyle.Width(width).Render("  " + strings.Join(parts, desc.Render("  ·  ")))
}

// RenderFrame stacks header, content and footer, giving the content
// whatever height is left.
func RenderFrame(header, content, footer string, width, height int) string {
	rest := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rest).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
