package quizgen

import (
	"github.com/abhisek/shizi/internal/llm"
	"github.com/abhisek/shizi/internal/quiz"
)

func stringList(n int, description string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"minItems":    n,
		"maxItems":    n,
		"description": description,
	}
}

var exampleSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"word": map[string]any{
			"type":        "string",
			"description": "A common word or idiom (词语) using the character",
		},
		"pinyin": map[string]any{
			"type":        "string",
			"description": "Tone-marked pinyin for the word, syllables separated by spaces",
		},
	},
	"required":             []any{"word", "pinyin"},
	"additionalProperties": false,
}

var itemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"character": map[string]any{
			"type":        "string",
			"description": "The target Chinese character (Hanzi), exactly one character",
		},
		"pinyin": map[string]any{
			"type":        "string",
			"description": "The correct tone-marked pinyin for the character",
		},
		"wrong_pinyins":    stringList(quiz.DistractorCount, "3 incorrect pinyin options distinct from the correct one"),
		"wrong_characters": stringList(quiz.DistractorCount, "3 incorrect Hanzi options distinct from the target one"),
		"examples": map[string]any{
			"type":        "array",
			"items":       exampleSchema,
			"minItems":    quiz.ExampleCount,
			"maxItems":    quiz.ExampleCount,
			"description": "3 example words containing the character",
		},
	},
	"required":             []any{"character", "pinyin", "wrong_pinyins", "wrong_characters", "examples"},
	"additionalProperties": false,
}

// BatchSchema defines the JSON schema for LLM batch generation responses.
var BatchSchema = &llm.Schema{
	Name:        "hanzi-batch",
	Description: "Ten multiple-choice quiz items for children learning Chinese characters",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type":     "array",
				"items":    itemSchema,
				"minItems": quiz.BatchSize,
				"maxItems": quiz.BatchSize,
			},
		},
		"required":             []any{"items"},
		"additionalProperties": false,
	},
}
