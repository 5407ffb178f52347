package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-flash-lite", "gemini-2.5-flash-lite"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type":     "array",
				"minItems": 10,
				"maxItems": 10,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"character": map[string]any{"type": "string"},
						"tone":      map[string]any{"type": "integer"},
						"wrong_pinyins": map[string]any{
							"type":     "array",
							"minItems": float64(3),
							"items":    map[string]any{"type": "string"},
						},
						"level": map[string]any{"type": "string", "enum": []any{"1", "2", "3"}},
					},
					"required": []any{"character", "tone"},
				},
			},
		},
		"required": []any{"items"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	items := schema.Properties["items"]
	if items.Type != "ARRAY" {
		t.Fatalf("expected ARRAY for items, got %s", items.Type)
	}
	if items.MinItems == nil || *items.MinItems != 10 || items.MaxItems == nil || *items.MaxItems != 10 {
		t.Fatalf("expected 10..10 items, got %v..%v", items.MinItems, items.MaxItems)
	}
	item := items.Items
	if len(item.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(item.Properties))
	}
	if item.Properties["tone"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for tone, got %s", item.Properties["tone"].Type)
	}
	if len(item.Properties["level"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(item.Properties["level"].Enum))
	}
	wrong := item.Properties["wrong_pinyins"]
	if wrong.MinItems == nil || *wrong.MinItems != 3 {
		t.Fatalf("expected minItems 3 from float64, got %v", wrong.MinItems)
	}
	if wrong.Items.Type != "STRING" {
		t.Fatalf("expected STRING items, got %s", wrong.Items.Type)
	}
	if len(item.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(item.Required))
	}
}

func TestBuildGeminiSchema_GoLiterals(t *testing.T) {
	s := buildGeminiSchema(map[string]any{
		"type":     "object",
		"required": []string{"pinyin"},
		"properties": map[string]any{
			"pinyin": map[string]any{"type": "string", "enum": []string{"mā", "má"}},
			"note":   map[string]any{"type": "date"},
		},
	})
	if len(s.Required) != 1 || s.Required[0] != "pinyin" {
		t.Errorf("required = %v", s.Required)
	}
	if got := s.Properties["pinyin"].Enum; len(got) != 2 {
		t.Errorf("enum = %v", got)
	}
	if s.Properties["note"].Type != genai.TypeString {
		t.Errorf("unknown type mapped to %s", s.Properties["note"].Type)
	}
}

func TestGeminiContentsRoles(t *testing.T) {
	got := geminiContents([]Message{
		{Role: RoleUser, Content: "山"},
		{Role: RoleAssistant, Content: "shān"},
	})
	if len(got) != 2 {
		t.Fatalf("got %d contents", len(got))
	}
	if got[0].Role != genai.RoleUser || got[1].Role != genai.RoleModel {
		t.Errorf("roles = %q, %q", got[0].Role, got[1].Role)
	}
	if got[1].Parts[0].Text != "shān" {
		t.Errorf("text = %q", got[1].Parts[0].Text)
	}
}
