package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shizi/internal/audio"
	"github.com/abhisek/shizi/internal/quiz"
	"github.com/abhisek/shizi/internal/router"
	"github.com/abhisek/shizi/internal/screen"
	"github.com/abhisek/shizi/internal/screens/game"
	"github.com/abhisek/shizi/internal/session"
	"github.com/abhisek/shizi/internal/ui/components"
	"github.com/abhisek/shizi/internal/ui/layout"
	"github.com/abhisek/shizi/internal/ui/theme"
)

// HomeScreen lets the player pick a quiz mode.
type HomeScreen struct {
	sess *session.Session
	cues session.CuePlayer
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the mode menu. Both modes share sess.
func New(sess *session.Session, cues session.CuePlayer) *HomeScreen {
	if cues == nil {
		cues = audio.NewPlayer(audio.Discard)
	}
	h := &HomeScreen{sess: sess, cues: cues}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: quiz.ModeCharacterToSound.Label(), Detail: "Character → Pinyin", Action: h.play(quiz.ModeCharacterToSound)},
		{Label: quiz.ModeSoundToCharacter.Label(), Detail: "Pinyin → Character", Action: h.play(quiz.ModeSoundToCharacter)},
		{Label: "Exit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return h
}

func (h *HomeScreen) play(mode quiz.Mode) func() tea.Cmd {
	return func() tea.Cmd {
		h.cues.Play(audio.CueClick)
		g := game.New(h.sess, h.cues, mode)
		return func() tea.Msg { return router.PushScreenMsg{Screen: g} }
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "1-3", Description: "Pick"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	compact := layout.IsCompactHeight(height + 8)

	title := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(layout.AppName)
	sub := theme.Subtitle.Render("Choose a game")

	sections := []string{
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(title + "\n" + sub),
	}
	if !compact {
		sections = append(sections,
			lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(components.Panda(components.MoodIdle)))
	}
	sections = append(sections, components.ArcadeCard(h.menu.View(), cw))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}
