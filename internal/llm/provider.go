package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one completion. Implementations are safe for
// concurrent use.
type Provider interface {
	// Generate sends req and returns the model output. When req.Schema
	// is set, Content is JSON already validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the configured model, before any provider aliasing.
	ModelID() string
}

// Request is a provider-neutral prompt.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, switches the provider to its native JSON mode and
	// enables response validation.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the provider default.
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema. Name keys the compiled-schema cache and
// must be unique per definition, e.g. "hanzi-batch".
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is one completed generation.
type Response struct {
	Content json.RawMessage
	Usage   Usage

	// Model is the model that actually served the request, which may be
	// more specific than ModelID.
	Model string

	// StopReason is "end" or "max_tokens".
	StopReason string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
