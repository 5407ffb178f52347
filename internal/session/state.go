package session

import "github.com/abhisek/shizi/internal/quiz"

// Phase represents the current phase of a game.
type Phase int

const (
	PhaseWelcome        Phase = iota // Choosing a mode
	PhaseLoading                     // Waiting for the content provider
	PhaseActive                      // Showing a question
	PhaseAnswerRevealed              // Showing feedback for the last answer
	PhaseError                       // Content could not be loaded
	PhaseFinished                    // All questions answered
)

func (p Phase) String() string {
	switch p {
	case PhaseWelcome:
		return "welcome"
	case PhaseLoading:
		return "loading"
	case PhaseActive:
		return "active"
	case PhaseAnswerRevealed:
		return "answer-revealed"
	case PhaseError:
		return "error"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// State is a snapshot of a session. Items is a copy and may be kept by
// the caller.
type State struct {
	// Mode is the quiz direction chosen for the current game.
	Mode quiz.Mode

	// Phase is the current phase.
	Phase Phase

	// Items holds the batch for the current game, empty outside of it.
	Items quiz.Batch

	// Position is the index of the current item.
	Position int

	// Score is the number of correct answers so far.
	Score int

	// LastAnswer is the value submitted for the current item.
	LastAnswer string

	// LastAnswerCorrect records whether LastAnswer was correct.
	LastAnswerCorrect bool

	// GameID identifies the current game. Empty in Welcome.
	GameID string

	// Err is the cause of PhaseError.
	Err error
}

// Current returns the item at Position. ok is false when there is none.
func (s State) Current() (quiz.Item, bool) {
	if s.Position < 0 || s.Position >= len(s.Items) {
		return quiz.Item{}, false
	}
	return s.Items[s.Position], true
}

// Expected returns the correct answer for the current item.
func (s State) Expected() string {
	it, ok := s.Current()
	if !ok {
		return ""
	}
	return s.Mode.Answer(it)
}
