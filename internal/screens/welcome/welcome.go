// Package welcome is the splash screen shown at launch.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shizi/internal/router"
	"github.com/abhisek/shizi/internal/screen"
	"github.com/abhisek/shizi/internal/ui/components"
	"github.com/abhisek/shizi/internal/ui/theme"
)

const frameRate = 100 * time.Millisecond

// Frame counts at which each part of the splash appears. The animation
// stops advancing at lastFrame but keeps sparkling until a key is pressed.
const (
	sparkleFrame = 5
	bannerFrame  = 15
	lastFrame    = 30
)

var sparkles = []string{"字", "✿", "★", "✦"}

type frameMsg struct{}

// WelcomeScreen animates the panda and banner, then hands over to the
// screen built by next on the first key press.
type WelcomeScreen struct {
	next  func() screen.Screen
	frame int
	beat  int
	done  bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return nextFrame() }

func nextFrame() tea.Cmd {
	return tea.Tick(frameRate, func(time.Time) tea.Msg { return frameMsg{} })
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case frameMsg:
		if w.done {
			return w, nil
		}
		w.frame = min(w.frame+1, lastFrame)
		w.beat++
		return w, nextFrame()
	case tea.KeyPressMsg:
		return w, w.leave()
	}
	return w, nil
}

func (w *WelcomeScreen) leave() tea.Cmd {
	if w.done {
		return nil
	}
	w.done = true
	home := w.next()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: home} }
}

func (w *WelcomeScreen) View(width, height int) string {
	panda := components.Panda(components.MoodIdle)
	if w.frame >= sparkleFrame {
		panda = w.decorate(panda)
	}

	parts := []string{panda}
	if w.frame >= bannerFrame {
		tagline := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("Learn Chinese characters the fun way!")
		hint := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("press any key to continue")
		parts = append(parts, "", RenderBanner(width), "", tagline, "", hint)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, parts...))
}

// decorate puts two rotating sparkles beside the panda's ears and paws.
func (w *WelcomeScreen) decorate(panda string) string {
	i := w.beat % len(sparkles)
	left := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkles[i])
	right := lipgloss.NewStyle().Foreground(theme.Secondary).Render(sparkles[(i+2)%len(sparkles)])

	lines := strings.Split(panda, "\n")
	for n, row := range map[int][2]string{1: {left, right}, 4: {right, left}} {
		if n < len(lines) {
			lines[n] = row[0] + "  " + lines[n] + "  " + row[1]
		}
	}
	return strings.Join(lines, "\n")
}
