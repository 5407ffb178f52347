package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-character",
		Description: "A single character with its reading",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"character": map[string]any{"type": "string", "minLength": 1},
				"pinyin":    map[string]any{"type": "string"},
				"tone":      map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
			},
			"required":             []any{"character", "pinyin"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"character":"山","pinyin":"shān","tone":1}`, false},
		{"valid without optional", `{"character":"水","pinyin":"shuǐ"}`, false},
		{"missing required", `{"character":"火"}`, true},
		{"wrong type", `{"character":"火","pinyin":"huǒ","tone":"three"}`, true},
		{"out of range", `{"character":"火","pinyin":"huǒ","tone":9}`, true},
		{"extra property", `{"character":"火","pinyin":"huǒ","stroke":4}`, true},
		{"empty character", `{"character":"","pinyin":"huǒ"}`, true},
		{"malformed", `{not json}`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Fatalf("expected ErrInvalidResponse, got: %T", err)
			}
			if string(inv.Content) != tt.raw {
				t.Fatalf("expected offending content to be kept, got %q", inv.Content)
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedArrays(t *testing.T) {
	schema := &Schema{
		Name: "test-nested",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"examples": map[string]any{
					"type":     "array",
					"minItems": 3,
					"maxItems": 3,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"word":   map[string]any{"type": "string"},
							"pinyin": map[string]any{"type": "string"},
						},
						"required": []any{"word", "pinyin"},
					},
				},
			},
			"required": []any{"examples"},
		},
	}

	valid := json.RawMessage(`{"examples":[{"word":"大山","pinyin":"dà shān"},{"word":"山水","pinyin":"shān shuǐ"},{"word":"火山","pinyin":"huǒ shān"}]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	short := json.RawMessage(`{"examples":[{"word":"大山","pinyin":"dà shān"}]}`)
	if err := validateResponse(schema, short); err == nil {
		t.Fatal("expected error for too few examples")
	}
}

func TestUnfence(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}```", `{"a":1}`},
		{"  ```JSON\n{\"a\":1}\n```  ", `{"a":1}`},
	}
	for _, tt := range tests {
		if got := string(unfence(json.RawMessage(tt.in))); got != tt.want {
			t.Errorf("unfence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
