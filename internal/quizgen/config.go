package quizgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated batch. The first failure stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// Grades is the school grade range named in the prompt.
	Grades string

	// MaxAvoid is the number of recently served characters listed in
	// the prompt as off-limits.
	MaxAvoid int

	// MaxAttempts bounds generation attempts when a batch fails a
	// retryable validation.
	MaxAttempts int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&HanziValidator{},
			&DistractorValidator{},
			&UniqueValidator{},
		},
		MaxTokens:   4096,
		Temperature: 0.9,
		Grades:      "1-3",
		MaxAvoid:    40,
		MaxAttempts: 2,
	}
}
