package quizgen

import (
	"context"

	"github.com/abhisek/shizi/internal/quiz"
)

// Generator produces batches of quiz items.
type Generator interface {
	// FetchBatch returns quiz.BatchSize validated items in presentation
	// order. All configured validators are run before returning.
	FetchBatch(ctx context.Context) (quiz.Batch, error)
}
