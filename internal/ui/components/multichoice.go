package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shizi/internal/ui/theme"
)

var choiceLabels = []string{"A", "B", "C", "D"}

// MultiChoice is a two-column grid of answer options. It does not know
// the correct answer; Reveal tells it afterwards.
type MultiChoice struct {
	Options  []string
	Selected int

	// Chosen is the submitted index, -1 until the player picks.
	Chosen int

	// Correct is the index to highlight green after Reveal, -1 if none.
	Correct  int
	revealed bool
}

// NewMultiChoice creates a grid over options.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{Options: options, Chosen: -1, Correct: -1}
}

// Submitted reports whether an option has been picked.
func (m MultiChoice) Submitted() bool { return m.Chosen >= 0 }

// Value returns the picked option, or "" before submission.
func (m MultiChoice) Value() string {
	if !m.Submitted() {
		return ""
	}
	return m.Options[m.Chosen]
}

// Reveal marks the option equal to answer as correct.
func (m MultiChoice) Reveal(answer string) MultiChoice {
	m.revealed = true
	m.Correct = -1
	for i, o := range m.Options {
		if o == answer {
			m.Correct = i
		}
	}
	return m
}

// Update handles navigation and selection. Keys 1-4 and a-d pick an
// option directly.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted() || len(m.Options) == 0 {
		return m, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	n := len(m.Options)
	switch key := kmsg.String(); key {
	case "left", "h":
		if m.Selected%2 == 1 {
			m.Selected--
		}
	case "right", "l":
		if m.Selected%2 == 0 && m.Selected+1 < n {
			m.Selected++
		}
	case "up", "k":
		if m.Selected >= 2 {
			m.Selected -= 2
		}
	case "down", "j":
		if m.Selected+2 < n {
			m.Selected += 2
		}
	case "enter", "space":
		m.Chosen = m.Selected
	default:
		if i := optionIndex(key); i >= 0 && i < n {
			m.Selected = i
			m.Chosen = i
		}
	}
	return m, nil
}

func optionIndex(key string) int {
	if len(key) != 1 {
		return -1
	}
	switch c := key[0]; {
	case c >= '1' && c <= '4':
		return int(c - '1')
	case c >= 'a' && c <= 'd':
		return int(c - 'a')
	}
	return -1
}

// View renders the grid at content width cw.
func (m MultiChoice) View(cw int) string {
	cellWidth := max((cw-2)/2-2, 8)

	cells := make([]string, len(m.Options))
	for i, opt := range m.Options {
		cells[i] = m.cell(i, opt, cellWidth)
	}

	var rows []string
	for i := 0; i < len(cells); i += 2 {
		if i+1 < len(cells) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[i], "  ", cells[i+1]))
		} else {
			rows = append(rows, cells[i])
		}
	}
	return strings.Join(rows, "\n")
}

func (m MultiChoice) cell(i int, opt string, width int) string {
	label := opt
	if i < len(choiceLabels) {
		label = choiceLabels[i] + "  " + opt
	}
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	switch {
	case m.revealed && i == m.Correct:
		return style.Foreground(theme.Success).BorderForeground(theme.Success).Bold(true).Render(label + "  ✓")
	case m.revealed && i == m.Chosen:
		return style.Foreground(theme.Error).BorderForeground(theme.Error).Bold(true).Render(label + "  ✗")
	case m.revealed:
		return style.Foreground(theme.TextDim).BorderForeground(theme.Border).Render(label)
	case i == m.Selected:
		return style.Foreground(theme.BgDark).Background(theme.ArcadeYellow).BorderForeground(theme.ArcadeYellow).Bold(true).Render(label)
	default:
		return style.Foreground(theme.Text).BorderForeground(theme.Border).Render(label)
	}
}
