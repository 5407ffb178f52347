package quizgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/shizi/internal/quiz"
)

const systemPrompt = `You are a friendly teacher creating educational content for children.

Rules:
- Write pinyin with tone marks (shān, not shan1). Use spaces between syllables of a word.
- Every distractor must be plausible for a child but wrong: similar sounds or tones for pinyin, similar shapes for characters.
- Distractors must never equal the correct answer and must not repeat.
- Example words must contain the target character and be simple enough for a seven-year-old.
- Never repeat a character within a batch.`

// buildUserMessage constructs the user message, listing recently used
// characters so a new game gets fresh ones.
func buildUserMessage(avoid []string, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a set of %d quiz questions for primary school students learning Chinese characters (Hanzi).\n", quiz.BatchSize)
	fmt.Fprintf(&b, "Select %d random, common characters suitable for grades %s.\n\n", quiz.BatchSize, cfg.Grades)

	b.WriteString("For each character, provide:\n")
	b.WriteString("1. The character itself.\n")
	b.WriteString("2. Its correct pinyin.\n")
	fmt.Fprintf(&b, "3. %d distractors (wrong pinyin).\n", quiz.DistractorCount)
	fmt.Fprintf(&b, "4. %d distractors (wrong characters).\n", quiz.DistractorCount)
	fmt.Fprintf(&b, "5. %d common words or idioms (词语) that use this character, with their pinyin.\n", quiz.ExampleCount)

	b.WriteString("\nRecently used characters (do not use these):\n")
	b.WriteString(buildAvoidList(avoid, cfg.MaxAvoid))

	return b.String()
}

// buildAvoidList formats recent characters for the prompt, keeping the
// most recent max entries. Returns "None" if there are none.
func buildAvoidList(chars []string, max int) string {
	if len(chars) == 0 {
		return "None"
	}
	if max > 0 && len(chars) > max {
		chars = chars[len(chars)-max:]
	}
	return strings.Join(chars, " ")
}
