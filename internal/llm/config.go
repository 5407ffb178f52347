package llm

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config selects and configures the LLM backend.
type Config struct {
	// Provider is one of "gemini", "openai", "anthropic", "openrouter"
	// or "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single Generate call including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // for OpenAI-compatible servers
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string // vendor-prefixed, e.g. "google/gemini-2.5-flash"
	BaseURL string
}

// RetryConfig configures exponential backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig uses Gemini Flash, which is cheap and fast enough for a
// ten-item batch.
func DefaultConfig() Config {
	return Config{
		Provider:   "gemini",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		// A batch of ten characters with examples is a long completion.
		Timeout: 60 * time.Second,
	}
}

// backend ties a provider name to its credential fields. The slice order
// is the DiscoverConfig lookup order.
type backend struct {
	name      string
	vendorKey string // conventional key variable outside the SHIZI_ namespace
	key       func(*Config) *string
	model     func(*Config) *string
}

var backends = []backend{
	{"gemini", "GEMINI_API_KEY",
		func(c *Config) *string { return &c.Gemini.APIKey },
		func(c *Config) *string { return &c.Gemini.Model }},
	{"openai", "OPENAI_API_KEY",
		func(c *Config) *string { return &c.OpenAI.APIKey },
		func(c *Config) *string { return &c.OpenAI.Model }},
	{"anthropic", "ANTHROPIC_API_KEY",
		func(c *Config) *string { return &c.Anthropic.APIKey },
		func(c *Config) *string { return &c.Anthropic.Model }},
	{"openrouter", "OPENROUTER_API_KEY",
		func(c *Config) *string { return &c.OpenRouter.APIKey },
		func(c *Config) *string { return &c.OpenRouter.Model }},
}

func lookupBackend(name string) (backend, bool) {
	for _, b := range backends {
		if b.name == name {
			return b, true
		}
	}
	return backend{}, false
}

func (b backend) envPrefix() string {
	return "SHIZI_" + strings.ToUpper(b.name) + "_"
}

// ConfigFromEnv overlays SHIZI_* environment variables on DefaultConfig:
// SHIZI_LLM_PROVIDER, SHIZI_LLM_TIMEOUT, SHIZI_LLM_MAX_ATTEMPTS, and
// SHIZI_<PROVIDER>_API_KEY / _MODEL for each backend, plus
// SHIZI_OPENAI_BASE_URL.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("SHIZI_LLM_PROVIDER"); p != "" {
		cfg.Provider = strings.ToLower(p)
	}
	if t := os.Getenv("SHIZI_LLM_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if n, err := strconv.Atoi(os.Getenv("SHIZI_LLM_MAX_ATTEMPTS")); err == nil && n > 0 {
		cfg.Retry.MaxAttempts = n
	}

	for _, b := range backends {
		setFromEnv(b.key(&cfg), b.envPrefix()+"API_KEY")
		setFromEnv(b.model(&cfg), b.envPrefix()+"MODEL")
	}
	setFromEnv(&cfg.OpenAI.BaseURL, "SHIZI_OPENAI_BASE_URL")

	return cfg
}

func setFromEnv(dst *string, name string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

// DiscoverConfig checks the conventional vendor key variables in order
// Gemini, OpenAI, Anthropic, OpenRouter and selects the first provider
// with a key. It reports false when none is set.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	for _, b := range backends {
		if k := os.Getenv(b.vendorKey); k != "" {
			cfg.Provider = b.name
			*b.key(&cfg) = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider exists and has a key.
func (c Config) Validate() error {
	if c.Provider == "mock" {
		return nil
	}
	b, ok := lookupBackend(c.Provider)
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if *b.key(&c) == "" {
		return fmt.Errorf("%sAPI_KEY is required for the %s provider", b.envPrefix(), b.name)
	}
	return nil
}
