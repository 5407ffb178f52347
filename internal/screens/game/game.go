package game

import (
	"context"
	"errors"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shizi/internal/audio"
	"github.com/abhisek/shizi/internal/quiz"
	"github.com/abhisek/shizi/internal/router"
	"github.com/abhisek/shizi/internal/screen"
	"github.com/abhisek/shizi/internal/screens/summary"
	"github.com/abhisek/shizi/internal/session"
	"github.com/abhisek/shizi/internal/ui/components"
	"github.com/abhisek/shizi/internal/ui/layout"
	"github.com/abhisek/shizi/internal/ui/theme"
)

// DefaultLoadTimeout bounds one batch load, including provider retries.
const DefaultLoadTimeout = 3 * time.Minute

// GameScreen drives one session from loading to the finished summary.
type GameScreen struct {
	sess        *session.Session
	cues        session.CuePlayer
	mode        quiz.Mode
	loadTimeout time.Duration

	spinner  spinner.Model
	choice   components.MultiChoice
	question int // position the choice grid was built for, -1 if none
	button   int // selected button on the finished screen
	startErr error
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)
var _ screen.StatusProvider = (*GameScreen)(nil)
var _ screen.BackHandler = (*GameScreen)(nil)

// New creates a GameScreen that starts a game in mode when pushed.
func New(sess *session.Session, cues session.CuePlayer, mode quiz.Mode) *GameScreen {
	if cues == nil {
		cues = audio.NewPlayer(audio.Discard)
	}
	return &GameScreen{
		sess:        sess,
		cues:        cues,
		mode:        mode,
		loadTimeout: DefaultLoadTimeout,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
		question: -1,
		button:   summary.ButtonReplay,
	}
}

func (g *GameScreen) Init() tea.Cmd {
	return g.start()
}

func (g *GameScreen) Title() string {
	return g.mode.Label()
}

func (g *GameScreen) Status() string {
	st := g.sess.State()
	if len(st.Items) == 0 {
		return ""
	}
	return layout.ScoreStatus(st.Score)
}

func (g *GameScreen) KeyHints() []layout.KeyHint {
	if g.startErr != nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Home"},
			{Key: "R", Description: "Retry now"},
		}
	}
	switch g.sess.Phase() {
	case session.PhaseActive:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "←↑↓→", Description: "Move"},
			{Key: "Enter", Description: "Pick"},
			{Key: "Esc", Description: "Home"},
		}
	case session.PhaseAnswerRevealed:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Home"},
		}
	case session.PhaseError:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Try again"},
			{Key: "R", Description: "Retry now"},
		}
	case session.PhaseFinished:
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Select"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Home"},
		}
	}
}

// Back leaves the game for the mode menu.
func (g *GameScreen) Back() tea.Cmd {
	return g.home()
}

// start begins a new game and loads its batch in the background.
func (g *GameScreen) start() tea.Cmd {
	t, err := g.sess.StartGame(g.mode)
	if errors.Is(err, session.ErrInvalidTransition) {
		g.sess.Reset()
		t, err = g.sess.StartGame(g.mode)
	}
	g.startErr = err
	if err != nil {
		return nil
	}
	g.question = -1
	g.button = summary.ButtonReplay

	sess, timeout := g.sess, g.loadTimeout
	load := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		batch, err := sess.Load(ctx, t)
		return batchLoadedMsg{Ticket: t, Batch: batch, Err: err}
	}
	return tea.Batch(g.spinner.Tick, load)
}

// home resets the session and returns to the mode menu.
func (g *GameScreen) home() tea.Cmd {
	g.cues.Play(audio.CueClick)
	g.sess.Reset()
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (g *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case batchLoadedMsg:
		if g.sess.Complete(msg.Ticket, msg.Batch, msg.Err) {
			g.syncQuestion()
		}
		return g, nil

	case spinner.TickMsg:
		if g.sess.Phase() != session.PhaseLoading {
			return g, nil
		}
		var cmd tea.Cmd
		g.spinner, cmd = g.spinner.Update(msg)
		return g, cmd

	case tea.KeyPressMsg:
		return g, g.handleKey(msg)
	}
	return g, nil
}

// syncQuestion builds the option grid once per question so the order
// stays put while the player looks at it.
func (g *GameScreen) syncQuestion() {
	st := g.sess.State()
	if st.Phase != session.PhaseActive || g.question == st.Position {
		return
	}
	g.question = st.Position
	g.choice = components.NewMultiChoice(g.sess.CurrentOptions())
}

func (g *GameScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()

	if g.startErr != nil {
		switch key {
		case "enter", "space", "esc":
			g.startErr = nil
			return g.home()
		case "r":
			g.cues.Play(audio.CueClick)
			return g.start()
		}
		return nil
	}

	switch g.sess.Phase() {
	case session.PhaseActive:
		g.choice, _ = g.choice.Update(msg)
		if !g.choice.Submitted() {
			return nil
		}
		if err := g.sess.SubmitAnswer(g.choice.Value()); err != nil {
			return nil
		}
		g.choice = g.choice.Reveal(g.sess.State().Expected())

	case session.PhaseAnswerRevealed:
		switch key {
		case "enter", "space", "right", "n":
			g.cues.Play(audio.CueClick)
			if err := g.sess.Advance(); err != nil {
				return nil
			}
			g.syncQuestion()
		}

	case session.PhaseError:
		switch key {
		case "enter", "space":
			return g.home()
		case "r":
			g.cues.Play(audio.CueClick)
			return g.start()
		}

	case session.PhaseFinished:
		switch key {
		case "left", "h", "shift+tab":
			g.button = summary.ButtonMenu
		case "right", "l", "tab":
			g.button = summary.ButtonReplay
		case "enter", "space":
			if g.button == summary.ButtonMenu {
				return g.home()
			}
			g.cues.Play(audio.CueClick)
			return g.start()
		}
	}
	return nil
}
