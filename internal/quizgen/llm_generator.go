package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/shizi/internal/llm"
	"github.com/abhisek/shizi/internal/quiz"
)

// Purpose labels batch requests in the LLM event log.
const Purpose = "quiz-batch"

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	history  *history
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{
		provider: provider,
		config:   cfg,
		history:  newHistory(cfg.MaxAvoid),
	}
}

// FetchBatch asks the model for a fresh batch. Characters served by this
// generator before are listed in the prompt as off-limits.
func (g *LLMGenerator) FetchBatch(ctx context.Context) (quiz.Batch, error) {
	ctx = llm.WithPurpose(ctx, Purpose)

	var lastErr error
	for range max(g.config.MaxAttempts, 1) {
		batch, err := g.generate(ctx)
		if err == nil {
			g.history.Add(batch.Characters()...)
			return batch, nil
		}
		lastErr = err

		var verr *ValidationError
		if !errors.As(err, &verr) || !verr.Retryable {
			break
		}
	}
	return nil, lastErr
}

func (g *LLMGenerator) generate(ctx context.Context) (quiz.Batch, error) {
	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(g.history.Recent(), g.config)},
		},
		Schema:      BatchSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	batch := raw.toBatch()

	for _, v := range g.config.Validators {
		if verr := v.Validate(batch); verr != nil {
			return nil, verr
		}
	}
	return batch, nil
}
