package quizgen

import (
	"fmt"

	"github.com/abhisek/shizi/internal/quiz"
)

// Validator checks a generated batch.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, e.g. "hanzi".
	Name() string

	// Validate returns nil if the batch passes.
	Validate(b quiz.Batch) *ValidationError
}

// ValidationError describes why a batch failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
