package session

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when an operation is not allowed in
// the current phase. The session is left unchanged.
var ErrInvalidTransition = errors.New("invalid transition")

func invalidTransition(op string, p Phase) error {
	return fmt.Errorf("%s in phase %s: %w", op, p, ErrInvalidTransition)
}

// ProviderFailure wraps any error that prevented a batch from loading:
// transport, parsing or validation.
type ProviderFailure struct {
	Err error
}

func (e *ProviderFailure) Error() string {
	return fmt.Sprintf("load questions: %v", e.Err)
}

func (e *ProviderFailure) Unwrap() error { return e.Err }
