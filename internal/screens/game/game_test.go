package game

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/shizi/internal/audio"
	"github.com/abhisek/shizi/internal/quiz"
	"github.com/abhisek/shizi/internal/quizgen"
	"github.com/abhisek/shizi/internal/router"
	"github.com/abhisek/shizi/internal/session"
)

type recordingCues struct {
	mu     sync.Mutex
	played []audio.Cue
}

func (r *recordingCues) Play(c audio.Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.played = append(r.played, c)
}

func (r *recordingCues) count(c audio.Cue) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, p := range r.played {
		if p == c {
			n++
		}
	}
	return n
}

type failingGen struct{}

func (failingGen) FetchBatch(context.Context) (quiz.Batch, error) {
	return nil, errors.New("service unavailable")
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestGame(t *testing.T, gen quizgen.Generator, mode quiz.Mode) (*GameScreen, *session.Session, *recordingCues) {
	t.Helper()
	if gen == nil {
		sample, err := quizgen.NewSampleGenerator(rand.New(rand.NewPCG(7, 7)))
		if err != nil {
			t.Fatalf("sample generator: %v", err)
		}
		gen = sample
	}
	cues := &recordingCues{}
	sess := session.New(gen, cues)
	return New(sess, cues, mode), sess, cues
}

// findLoaded runs cmd and returns the batchLoadedMsg it produces.
func findLoaded(t *testing.T, cmd tea.Cmd) batchLoadedMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	switch msg := cmd().(type) {
	case batchLoadedMsg:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if m, ok := c().(batchLoadedMsg); ok {
				return m
			}
		}
	}
	t.Fatal("no batchLoadedMsg produced")
	return batchLoadedMsg{}
}

func startLoaded(t *testing.T, g *GameScreen) {
	t.Helper()
	g.Update(findLoaded(t, g.Init()))
}

// answerCurrent presses the number key for the correct option, or for a
// wrong one.
func answerCurrent(t *testing.T, g *GameScreen, sess *session.Session, correct bool) {
	t.Helper()
	want := sess.State().Expected()
	idx := slices.Index(g.choice.Options, want)
	if idx < 0 {
		t.Fatalf("answer %q not among options %v", want, g.choice.Options)
	}
	if !correct {
		idx = (idx + 1) % len(g.choice.Options)
	}
	g.Update(keyPress(rune('1' + idx)))
}

func TestLoadingView(t *testing.T) {
	g, sess, cues := newTestGame(t, nil, quiz.ModeCharacterToSound)
	cmd := g.Init()
	if sess.Phase() != session.PhaseLoading {
		t.Fatalf("phase = %v, want loading", sess.Phase())
	}
	if cues.count(audio.CueStart) != 1 {
		t.Error("expected start cue")
	}
	view := g.View(100, 40)
	if !strings.Contains(view, "AI老师正在出题中") || !strings.Contains(view, "Gathering 10 fun words") {
		t.Errorf("loading view missing text:\n%s", view)
	}

	g.Update(findLoaded(t, cmd))
	if sess.Phase() != session.PhaseActive {
		t.Fatalf("phase = %v, want active", sess.Phase())
	}
}

func TestQuestionView(t *testing.T) {
	g, sess, _ := newTestGame(t, nil, quiz.ModeCharacterToSound)
	startLoaded(t, g)

	view := g.View(100, 40)
	it, _ := sess.State().Current()
	for _, want := range []string{"Question 1 / 10", "请选择对应的拼音", it.Character} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if g.Title() != "看字选音" {
		t.Errorf("Title = %q", g.Title())
	}
	if g.Status() != "★ 0" {
		t.Errorf("Status = %q", g.Status())
	}
}

func TestOptionsStablePerQuestion(t *testing.T) {
	g, _, _ := newTestGame(t, nil, quiz.ModeSoundToCharacter)
	startLoaded(t, g)

	first := slices.Clone(g.choice.Options)
	for range 5 {
		g.View(100, 40)
		g.Update(specialKey(tea.KeyRight))
	}
	if !slices.Equal(first, g.choice.Options) {
		t.Errorf("options changed within a question: %v -> %v", first, g.choice.Options)
	}
}

func TestCorrectAnswerShowsFeedback(t *testing.T) {
	g, sess, cues := newTestGame(t, nil, quiz.ModeSoundToCharacter)
	startLoaded(t, g)

	answerCurrent(t, g, sess, true)
	st := sess.State()
	if st.Phase != session.PhaseAnswerRevealed || !st.LastAnswerCorrect {
		t.Fatalf("unexpected state: phase=%v correct=%v", st.Phase, st.LastAnswerCorrect)
	}
	if cues.count(audio.CueCorrect) != 1 {
		t.Error("expected correct cue")
	}

	it, _ := st.Current()
	view := g.View(100, 50)
	for _, want := range []string{"答对啦！", it.Pinyin, it.Examples[0].Word, "继续下一题 ➔"} {
		if !strings.Contains(view, want) {
			t.Errorf("feedback missing %q", want)
		}
	}

	g.Update(specialKey(tea.KeyEnter))
	if sess.State().Position != 1 || sess.Phase() != session.PhaseActive {
		t.Fatalf("expected next question, got position %d phase %v", sess.State().Position, sess.Phase())
	}
	if cues.count(audio.CueClick) != 1 {
		t.Error("expected click cue on continue")
	}
}

func TestWrongAnswerShowsFeedback(t *testing.T) {
	g, sess, cues := newTestGame(t, nil, quiz.ModeCharacterToSound)
	startLoaded(t, g)

	answerCurrent(t, g, sess, false)
	if sess.State().LastAnswerCorrect {
		t.Fatal("expected wrong answer")
	}
	if cues.count(audio.CueWrong) != 1 {
		t.Error("expected wrong cue")
	}
	if !strings.Contains(g.View(100, 50), "再接再厉！") {
		t.Error("expected encouragement text")
	}
}

func TestFullGameAndReplay(t *testing.T) {
	g, sess, _ := newTestGame(t, nil, quiz.ModeCharacterToSound)
	startLoaded(t, g)

	for i := range quiz.BatchSize {
		answerCurrent(t, g, sess, i != 0)
		g.Update(specialKey(tea.KeyEnter))
	}
	if sess.Phase() != session.PhaseFinished {
		t.Fatalf("phase = %v, want finished", sess.Phase())
	}
	view := g.View(100, 50)
	for _, want := range []string{"Great Job!", "You scored 9 out of 10", "90 points"} {
		if !strings.Contains(view, want) {
			t.Errorf("finished view missing %q", want)
		}
	}

	// Replay is selected by default.
	_, cmd := g.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected load command")
	}
	if sess.Phase() != session.PhaseLoading {
		t.Fatalf("phase = %v, want loading after replay", sess.Phase())
	}
}

func TestFinishedMainMenu(t *testing.T) {
	g, sess, _ := newTestGame(t, nil, quiz.ModeCharacterToSound)
	startLoaded(t, g)
	for range quiz.BatchSize {
		answerCurrent(t, g, sess, true)
		g.Update(specialKey(tea.KeyEnter))
	}

	g.Update(specialKey(tea.KeyLeft))
	_, cmd := g.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg")
	}
	if sess.Phase() != session.PhaseWelcome {
		t.Fatalf("phase = %v, want welcome", sess.Phase())
	}
}

func TestErrorScreen(t *testing.T) {
	g, sess, _ := newTestGame(t, failingGen{}, quiz.ModeCharacterToSound)
	startLoaded(t, g)

	if sess.Phase() != session.PhaseError {
		t.Fatalf("phase = %v, want error", sess.Phase())
	}
	view := g.View(100, 40)
	if !strings.Contains(view, "Oops! Something went wrong.") || !strings.Contains(view, "Try Again") {
		t.Errorf("error view:\n%s", view)
	}

	_, cmd := g.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg")
	}
	if sess.Phase() != session.PhaseWelcome {
		t.Fatalf("phase = %v, want welcome", sess.Phase())
	}
}

func TestErrorRetry(t *testing.T) {
	g, sess, _ := newTestGame(t, failingGen{}, quiz.ModeCharacterToSound)
	startLoaded(t, g)

	_, cmd := g.Update(keyPress('r'))
	if sess.Phase() != session.PhaseLoading {
		t.Fatalf("phase = %v, want loading", sess.Phase())
	}
	g.Update(findLoaded(t, cmd))
	if sess.Phase() != session.PhaseError {
		t.Fatalf("phase = %v, want error again", sess.Phase())
	}
}

func TestBackDuringLoadDropsResult(t *testing.T) {
	g, sess, _ := newTestGame(t, nil, quiz.ModeCharacterToSound)
	cmd := g.Init()

	back := g.Back()
	if _, ok := back().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg")
	}
	g.Update(findLoaded(t, cmd))
	if sess.Phase() != session.PhaseWelcome {
		t.Fatalf("stale load applied: phase = %v", sess.Phase())
	}
}

func TestKeyHintsPerPhase(t *testing.T) {
	g, sess, _ := newTestGame(t, nil, quiz.ModeCharacterToSound)
	startLoaded(t, g)
	if got := g.KeyHints()[0].Key; got != "1-4" {
		t.Errorf("active hints start with %q", got)
	}
	answerCurrent(t, g, sess, true)
	if got := g.KeyHints()[0].Description; got != "Next" {
		t.Errorf("revealed hints start with %q", got)
	}
}

func TestStartFailureShownOnScreen(t *testing.T) {
	g, sess, _ := newTestGame(t, nil, quiz.ModeCharacterToSound)
	g.startErr = errors.New("could not start game")

	view := g.View(100, 40)
	if !strings.Contains(view, "could not start game") || !strings.Contains(view, "Try Again") {
		t.Errorf("start failure view:\n%s", view)
	}
	if got := g.KeyHints()[0].Description; got != "Home" {
		t.Errorf("start failure hints start with %q", got)
	}

	g.Update(keyPress('r'))
	if g.startErr != nil {
		t.Fatalf("retry kept start error: %v", g.startErr)
	}
	if sess.Phase() != session.PhaseLoading {
		t.Fatalf("phase = %v, want loading", sess.Phase())
	}
}

func TestStartFailureEnterGoesHome(t *testing.T) {
	g, sess, _ := newTestGame(t, nil, quiz.ModeCharacterToSound)
	g.startErr = errors.New("could not start game")

	_, cmd := g.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg")
	}
	if g.startErr != nil || sess.Phase() != session.PhaseWelcome {
		t.Fatalf("startErr = %v, phase = %v", g.startErr, sess.Phase())
	}
}
