package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/shizi/internal/audio"
	"github.com/abhisek/shizi/internal/quizgen"
	"github.com/abhisek/shizi/internal/store"
)

func TestNewGeneratorOffline(t *testing.T) {
	gen, err := newGenerator(context.Background(), nil, true)
	if err != nil {
		t.Fatalf("newGenerator: %v", err)
	}
	if _, ok := gen.(*quizgen.SampleGenerator); !ok {
		t.Fatalf("got %T, want sample generator", gen)
	}
}

func TestNewGeneratorFromEnv(t *testing.T) {
	t.Run("sample provider", func(t *testing.T) {
		t.Setenv("SHIZI_LLM_PROVIDER", "sample")
		gen, err := newGenerator(context.Background(), nil, false)
		if err != nil {
			t.Fatalf("newGenerator: %v", err)
		}
		if _, ok := gen.(*quizgen.SampleGenerator); !ok {
			t.Fatalf("got %T, want sample generator", gen)
		}
	})

	t.Run("mock provider", func(t *testing.T) {
		t.Setenv("SHIZI_LLM_PROVIDER", "mock")
		gen, err := newGenerator(context.Background(), nil, false)
		if err != nil {
			t.Fatalf("newGenerator: %v", err)
		}
		if _, ok := gen.(*quizgen.LLMGenerator); !ok {
			t.Fatalf("got %T, want LLM generator", gen)
		}
	})

	t.Run("unknown provider falls back", func(t *testing.T) {
		t.Setenv("SHIZI_LLM_PROVIDER", "nope")
		gen, err := newGenerator(context.Background(), nil, false)
		if err != nil {
			t.Fatalf("newGenerator: %v", err)
		}
		if _, ok := gen.(*quizgen.SampleGenerator); !ok {
			t.Fatalf("got %T, want sample generator", gen)
		}
	})
}

func TestSoundDisabled(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"on", false},
		{"off", true},
		{"OFF", true},
		{"0", true},
		{"false", true},
	}
	for _, tt := range tests {
		t.Setenv("SHIZI_SOUND", tt.val)
		if got := soundDisabled(); got != tt.want {
			t.Errorf("SHIZI_SOUND=%q: got %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestParseCue(t *testing.T) {
	for _, c := range audio.Cues {
		got, err := parseCue(string(c))
		if err != nil || got != c {
			t.Errorf("parseCue(%q) = %q, %v", c, got, err)
		}
	}
	if _, err := parseCue("boom"); err == nil {
		t.Error("expected error for unknown cue")
	}
}

func TestExportCue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "click.wav")
	if err := exportCue(path, audio.CueClick, 8000); err != nil {
		t.Fatalf("exportCue: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	// 44-byte header plus 16-bit samples
	if info.Size() <= 44 {
		t.Errorf("file too small: %d bytes", info.Size())
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0b7e6c1a-1111-2222-3333-444455556666"); got != "0b7e6c1a" {
		t.Errorf("shortID = %q", got)
	}
	if got := shortID(""); got != "" {
		t.Errorf("shortID(\"\") = %q", got)
	}
}

func TestLLMPrune(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prune.db")
	s, err := store.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.EventRepo().AppendLLMRequest(context.Background(), store.LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "quiz-batch", Success: true,
	}); err != nil {
		t.Fatalf("append: %v", err)
	}
	s.Close()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs([]string{"llm", "prune", "--db", path, "--older-than", "1h"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("prune: %v", err)
	}
	if !strings.Contains(out.String(), "Removed 0 event(s)") {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	rootCmd.SetArgs([]string{"llm", "list", "--db", path})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out.String(), "quiz-batch") || !strings.Contains(out.String(), "✓") {
		t.Errorf("list output = %q", out.String())
	}

	rootCmd.SetArgs([]string{"llm", "prune", "--db", path, "--older-than", "0s"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("expected error for zero age")
	}
}
