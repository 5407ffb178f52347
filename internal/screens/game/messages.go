package game

import (
	"github.com/abhisek/shizi/internal/quiz"
	"github.com/abhisek/shizi/internal/session"
)

// batchLoadedMsg carries the result of a background Load.
type batchLoadedMsg struct {
	Ticket session.Ticket
	Batch  quiz.Batch
	Err    error
}
