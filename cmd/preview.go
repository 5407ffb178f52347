package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/shizi/internal/quiz"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Fetch one batch of quiz items and print it (no database)",
	Long: `Fetch a batch of ten quiz items from the configured content source
and print it, with the options shuffled the way a game would show them.

This is a stateless developer tool: no database, no events.
Useful for checking content quality and provider configuration.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("mode", "char", "Quiz mode: char (character to pinyin) or sound (pinyin to character)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	modeVal, _ := cmd.Flags().GetString("mode")
	mode, ok := quiz.ParseMode(modeVal)
	if !ok {
		return fmt.Errorf("invalid mode %q: must be char or sound", modeVal)
	}
	offline, _ := cmd.Flags().GetBool("offline")

	ctx := context.Background()
	gen, err := newGenerator(ctx, nil, offline)
	if err != nil {
		return fmt.Errorf("content source: %w", err)
	}

	fmt.Println("Fetching a batch...")
	batch, err := gen.FetchBatch(ctx)
	if err != nil {
		return fmt.Errorf("fetch batch: %w", err)
	}
	if err := batch.Validate(); err != nil {
		return fmt.Errorf("invalid batch: %w", err)
	}

	fmt.Printf("Mode: %s (%s)\n\n", mode.Label(), mode.Instruction())
	for i, it := range batch {
		fmt.Printf("── Question %d/%d ──\n", i+1, len(batch))
		fmt.Printf("%s  %s\n", it.Character, it.Pinyin)
		for j, opt := range quiz.ShuffleOptions(mode.Answer(it), mode.Distractors(it)) {
			mark := " "
			if opt == mode.Answer(it) {
				mark = "✓"
			}
			fmt.Printf("  %d) %s %s\n", j+1, opt, mark)
		}
		words := make([]string, len(it.Examples))
		for j, ex := range it.Examples {
			words[j] = fmt.Sprintf("%s (%s)", ex.Word, ex.Pinyin)
		}
		fmt.Printf("Examples: %s\n\n", strings.Join(words, ", "))
	}
	return nil
}
