package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/shizi/internal/router"
	"github.com/abhisek/shizi/internal/screen"
)

type homeStub struct{}

func (h *homeStub) Init() tea.Cmd                           { return nil }
func (h *homeStub) Update(tea.Msg) (screen.Screen, tea.Cmd) { return h, nil }
func (h *homeStub) View(int, int) string                    { return "home" }
func (h *homeStub) Title() string                           { return "Home" }

func newSplash() (*WelcomeScreen, *int) {
	built := 0
	return New(func() screen.Screen {
		built++
		return &homeStub{}
	}), &built
}

func advance(w *WelcomeScreen, frames int) {
	for range frames {
		w.Update(frameMsg{})
	}
}

func TestBannerAppearsAfterDelay(t *testing.T) {
	w, _ := newSplash()
	if strings.Contains(w.View(80, 24), "fun way") {
		t.Fatal("tagline shown on the first frame")
	}

	advance(w, bannerFrame-1)
	if strings.Contains(w.View(80, 24), "fun way") {
		t.Fatal("tagline shown too early")
	}

	advance(w, 1)
	view := w.View(80, 24)
	if !strings.Contains(view, "fun way") || !strings.Contains(view, "萌") {
		t.Errorf("banner missing at frame %d", w.frame)
	}
}

func TestFramesStopAtLast(t *testing.T) {
	w, built := newSplash()
	advance(w, lastFrame+20)
	if w.frame != lastFrame {
		t.Errorf("frame = %d, want %d", w.frame, lastFrame)
	}
	if *built != 0 {
		t.Error("splash left without a key press")
	}
}

func TestKeyPressReplacesOnce(t *testing.T) {
	w, built := newSplash()
	advance(w, 2)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("no command after key press")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok || msg.Screen == nil {
		t.Fatalf("got %#v, want ReplaceScreenMsg", cmd())
	}

	if _, cmd := w.Update(tea.KeyPressMsg{Code: 'x'}); cmd != nil {
		t.Error("second key press produced a command")
	}
	if _, cmd := w.Update(frameMsg{}); cmd != nil {
		t.Error("animation kept running after leaving")
	}
	if *built != 1 {
		t.Errorf("home built %d times", *built)
	}
}

func TestCompactBanner(t *testing.T) {
	if strings.Contains(RenderBanner(40), "M E N G") {
		t.Error("compact banner should omit romanization")
	}
	if !strings.Contains(RenderBanner(80), "M E N G") {
		t.Error("wide banner should include romanization")
	}
}
