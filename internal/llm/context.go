package llm

import "context"

type contextKey string

const (
	purposeKey contextKey = "llm_purpose"
	gameKey    contextKey = "llm_game"
)

// WithPurpose attaches a purpose label to the context for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// WithGameID tags requests made on behalf of one quiz game.
func WithGameID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, gameKey, id)
}

// GameIDFrom returns the game tag, or "" outside a game.
func GameIDFrom(ctx context.Context) string {
	v, _ := ctx.Value(gameKey).(string)
	return v
}
