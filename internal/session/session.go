package session

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/shizi/internal/audio"
	"github.com/abhisek/shizi/internal/llm"
	"github.com/abhisek/shizi/internal/quiz"
	"github.com/abhisek/shizi/internal/quizgen"
)

// VictoryDelay is the pause between finishing a game and the victory cue.
const VictoryDelay = 300 * time.Millisecond

// CuePlayer plays sound cues without blocking. *audio.Player satisfies it.
type CuePlayer interface {
	Play(c audio.Cue)
}

// Timer is a pending scheduled call. *time.Timer satisfies it.
type Timer interface {
	Stop() bool
}

// Ticket names one load started by StartGame. Results carrying an old
// ticket are ignored by Complete.
type Ticket struct {
	seq    uint64
	GameID string
}

// Session is the quiz state machine. It is not safe for concurrent use;
// the UI loop owns it. Load is the exception and may run on any
// goroutine.
type Session struct {
	gen   quizgen.Generator
	cues  CuePlayer
	after func(time.Duration, func()) Timer

	st      State
	seq     uint64
	victory Timer
}

// Option configures a Session.
type Option func(*Session)

// WithScheduler replaces time.AfterFunc for the delayed victory cue.
func WithScheduler(after func(d time.Duration, f func()) Timer) Option {
	return func(s *Session) { s.after = after }
}

// New creates a session in PhaseWelcome. A nil cues plays nothing.
func New(gen quizgen.Generator, cues CuePlayer, opts ...Option) *Session {
	if cues == nil {
		cues = audio.NewPlayer(audio.Discard)
	}
	s := &Session{
		gen:  gen,
		cues: cues,
		after: func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, f)
		},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	st := s.st
	st.Items = slices.Clone(s.st.Items)
	return st
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.st.Phase }

// StartGame begins a new game in mode and returns the ticket for its
// load. It is allowed from Welcome, Error and Finished.
func (s *Session) StartGame(mode quiz.Mode) (Ticket, error) {
	switch s.st.Phase {
	case PhaseWelcome, PhaseError, PhaseFinished:
	default:
		return Ticket{}, invalidTransition("start game", s.st.Phase)
	}

	s.cues.Play(audio.CueStart)
	s.cancelVictory()
	s.seq++
	s.st = State{
		Mode:   mode,
		Phase:  PhaseLoading,
		GameID: uuid.NewString(),
	}
	return Ticket{seq: s.seq, GameID: s.st.GameID}, nil
}

// Load fetches and validates a batch for t. Every failure is returned as
// a *ProviderFailure.
func (s *Session) Load(ctx context.Context, t Ticket) (quiz.Batch, error) {
	ctx = llm.WithGameID(ctx, t.GameID)
	batch, err := s.gen.FetchBatch(ctx)
	if err != nil {
		return nil, &ProviderFailure{Err: err}
	}
	if err := batch.Validate(); err != nil {
		return nil, &ProviderFailure{Err: err}
	}
	return batch, nil
}

// Complete applies the result of Load. It returns false, changing
// nothing, when t is not the current ticket.
func (s *Session) Complete(t Ticket, batch quiz.Batch, err error) bool {
	if t.seq != s.seq || s.st.Phase != PhaseLoading {
		return false
	}
	if err == nil {
		if verr := batch.Validate(); verr != nil {
			err = &ProviderFailure{Err: verr}
		}
	}
	if err != nil {
		s.st.Phase = PhaseError
		s.st.Items = nil
		s.st.Err = err
		return true
	}

	s.st.Items = slices.Clone(batch)
	s.st.Position = 0
	s.st.Score = 0
	s.st.Phase = PhaseActive
	return true
}

// Start runs StartGame, Load and Complete in one call.
func (s *Session) Start(ctx context.Context, mode quiz.Mode) error {
	t, err := s.StartGame(mode)
	if err != nil {
		return err
	}
	batch, err := s.Load(ctx, t)
	s.Complete(t, batch, err)
	return err
}

// SubmitAnswer checks value against the current item. Matching is exact.
func (s *Session) SubmitAnswer(value string) error {
	if s.st.Phase != PhaseActive {
		return invalidTransition("submit answer", s.st.Phase)
	}

	correct := value == s.st.Expected()
	if correct {
		s.st.Score++
		s.cues.Play(audio.CueCorrect)
	} else {
		s.cues.Play(audio.CueWrong)
	}
	s.st.LastAnswer = value
	s.st.LastAnswerCorrect = correct
	s.st.Phase = PhaseAnswerRevealed
	return nil
}

// Advance moves past the revealed answer, finishing the game after the
// last item.
func (s *Session) Advance() error {
	if s.st.Phase != PhaseAnswerRevealed {
		return invalidTransition("advance", s.st.Phase)
	}

	s.st.LastAnswer = ""
	s.st.LastAnswerCorrect = false
	if s.st.Position >= len(s.st.Items)-1 {
		s.st.Phase = PhaseFinished
		s.cancelVictory()
		cues := s.cues
		s.victory = s.after(VictoryDelay, func() { cues.Play(audio.CueVictory) })
		return nil
	}
	s.st.Position++
	s.st.Phase = PhaseActive
	return nil
}

// Reset returns to Welcome from any phase, dropping the current game and
// any load still in flight.
func (s *Session) Reset() {
	s.cancelVictory()
	s.seq++
	s.st = State{Mode: s.st.Mode}
}

// CurrentOptions returns the answer choices for the active item in a
// fresh random order on every call.
func (s *Session) CurrentOptions() []string {
	if s.st.Phase != PhaseActive && s.st.Phase != PhaseAnswerRevealed {
		return nil
	}
	it, ok := s.st.Current()
	if !ok {
		return nil
	}
	return quiz.ShuffleOptions(s.st.Mode.Answer(it), s.st.Mode.Distractors(it))
}

// Percentage returns the rounded score percentage of a finished game, or
// 0 in any other phase.
func (s *Session) Percentage() int {
	if s.st.Phase != PhaseFinished {
		return 0
	}
	return quiz.Percentage(s.st.Score, len(s.st.Items))
}

// Points returns the game points for the current score.
func (s *Session) Points() int {
	return quiz.Points(s.st.Score)
}

func (s *Session) cancelVictory() {
	if s.victory != nil {
		s.victory.Stop()
		s.victory = nil
	}
}
