package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/shizi/internal/audio"
	"github.com/abhisek/shizi/internal/llm"
	"github.com/abhisek/shizi/internal/quizgen"
	"github.com/abhisek/shizi/internal/session"
	"github.com/abhisek/shizi/internal/store"
)

// sampleProvider selects the built-in word bank instead of an LLM.
const sampleProvider = "sample"

// newGenerator picks the content source. The built-in bank is used when
// offline is set, when SHIZI_LLM_PROVIDER=sample, or when no LLM is
// configured. eventRepo may be nil.
func newGenerator(ctx context.Context, eventRepo store.EventRepo, offline bool) (quizgen.Generator, error) {
	if offline || strings.EqualFold(os.Getenv("SHIZI_LLM_PROVIDER"), sampleProvider) {
		return quizgen.NewSampleGenerator(nil)
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Using the built-in word bank instead.")
		return quizgen.NewSampleGenerator(nil)
	}
	return quizgen.New(provider, quizgen.DefaultConfig()), nil
}

// newCuePlayer returns a player on the default audio device, or a silent
// one when muted. The device starts opening before the UI takes over the
// terminal.
func newCuePlayer(mute bool) session.CuePlayer {
	if mute || soundDisabled() {
		return audio.NewPlayer(audio.Discard)
	}
	dev := audio.Device()
	dev.Warm()
	return audio.NewPlayer(dev)
}

func soundDisabled() bool {
	switch strings.ToLower(os.Getenv("SHIZI_SOUND")) {
	case "off", "0", "false", "no":
		return true
	}
	return false
}
