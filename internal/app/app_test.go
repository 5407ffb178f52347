package app

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/shizi/internal/quizgen"
	"github.com/abhisek/shizi/internal/router"
	"github.com/abhisek/shizi/internal/screens/game"
	"github.com/abhisek/shizi/internal/screens/home"
	"github.com/abhisek/shizi/internal/screens/welcome"
	"github.com/abhisek/shizi/internal/session"
)

func newTestModel(t *testing.T, skipSplash bool) (AppModel, *session.Session) {
	t.Helper()
	gen, err := quizgen.NewSampleGenerator(rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatalf("sample generator: %v", err)
	}
	sess := session.New(gen, nil)
	m := newAppModel(Options{Session: sess, SkipSplash: skipSplash})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(AppModel), sess
}

func send(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(AppModel), cmd
}

func TestStartsAtSplash(t *testing.T) {
	m, _ := newTestModel(t, false)
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Fatalf("active = %T, want splash", m.router.Active())
	}

	m, cmd := send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected replace command")
	}
	m, _ = send(m, cmd())
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Fatalf("active = %T, want home", m.router.Active())
	}
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}
}

func TestSkipSplash(t *testing.T) {
	m, _ := newTestModel(t, true)
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Fatalf("active = %T, want home", m.router.Active())
	}
}

func TestEscLeavesGameAndResetsSession(t *testing.T) {
	m, sess := newTestModel(t, true)

	m, cmd := send(m, tea.KeyPressMsg{Code: '1', Text: "1"})
	m, _ = send(m, cmd())
	if _, ok := m.router.Active().(*game.GameScreen); !ok {
		t.Fatalf("active = %T, want game", m.router.Active())
	}
	if sess.Phase() != session.PhaseLoading {
		t.Fatalf("phase = %v, want loading", sess.Phase())
	}

	m, cmd = send(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected back command")
	}
	msg := cmd()
	if _, ok := msg.(router.PopScreenMsg); !ok {
		t.Fatalf("got %T, want PopScreenMsg", msg)
	}
	m, _ = send(m, msg)
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}
	if sess.Phase() != session.PhaseWelcome {
		t.Errorf("phase = %v, want welcome", sess.Phase())
	}
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t, true)
	_, cmd := send(m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected QuitMsg")
	}
}

func TestViewFrame(t *testing.T) {
	m, _ := newTestModel(t, true)
	content := m.render()
	if !strings.Contains(content, "Home") {
		t.Error("header missing screen title")
	}
	if !strings.Contains(content, "看字选音") {
		t.Error("menu missing from view")
	}

	small, _ := send(m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(small.render(), "窗口太小啦") {
		t.Error("expected too-small message")
	}
}
