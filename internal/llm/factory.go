package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/abhisek/shizi/internal/store"
)

// ErrNotConfigured is returned by NewProviderFromEnv when no provider
// credentials can be found.
var ErrNotConfigured = errors.New("no LLM provider configured (set SHIZI_LLM_PROVIDER or GEMINI_API_KEY)")

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with timeout, retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → timeout → retry → logging → base
	var p Provider = base
	if eventRepo != nil {
		p = WithLogging(p, cfg.Provider, eventRepo)
	}
	p = WithRetry(p, cfg.Retry)
	p = WithTimeout(p, cfg.Timeout)

	return p, nil
}

// NewProviderFromEnv resolves configuration from SHIZI_* variables. When
// no provider was chosen explicitly and the default lacks a key, the
// standard vendor key variables are checked instead.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg, err := ResolveConfig()
	if err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, eventRepo)
}

// ResolveConfig returns the environment configuration NewProviderFromEnv
// would use.
func ResolveConfig() (Config, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err == nil || os.Getenv("SHIZI_LLM_PROVIDER") != "" {
		return cfg, err
	}

	discovered, ok := DiscoverConfig()
	if !ok {
		return Config{}, ErrNotConfigured
	}
	discovered.Timeout = cfg.Timeout
	return discovered, nil
}
