package quizgen

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/abhisek/shizi/internal/quiz"
)

// StructuralValidator checks item counts and that required fields are set.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(b quiz.Batch) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...), Retryable: true}
	}

	if len(b) != quiz.BatchSize {
		return fail("expected %d items, got %d", quiz.BatchSize, len(b))
	}
	for i, it := range b {
		n := i + 1
		switch {
		case it.Character == "":
			return fail("item %d: character is empty", n)
		case it.Pinyin == "":
			return fail("item %d: pinyin is empty", n)
		case len(it.WrongPinyins) != quiz.DistractorCount:
			return fail("item %d: expected %d wrong pinyins, got %d", n, quiz.DistractorCount, len(it.WrongPinyins))
		case len(it.WrongCharacters) != quiz.DistractorCount:
			return fail("item %d: expected %d wrong characters, got %d", n, quiz.DistractorCount, len(it.WrongCharacters))
		case len(it.Examples) != quiz.ExampleCount:
			return fail("item %d: expected %d examples, got %d", n, quiz.ExampleCount, len(it.Examples))
		}
		for _, ex := range it.Examples {
			if ex.Word == "" || ex.Pinyin == "" {
				return fail("item %d: example is incomplete", n)
			}
		}
		for _, p := range append([]string{it.Pinyin}, it.WrongPinyins...) {
			if !isPinyin(p) {
				return fail("item %d: %q is not pinyin", n, p)
			}
		}
	}
	return nil
}

// isPinyin reports whether s is non-empty romanized text: letters
// (including tone-marked vowels), spaces and apostrophes, no Hanzi.
func isPinyin(s string) bool {
	s = norm.NFC.String(s)
	if strings.TrimSpace(s) == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r == ' ' || r == '\'':
		case unicode.Is(unicode.Han, r):
			return false
		case !unicode.IsLetter(r):
			return false
		}
	}
	return true
}

// HanziValidator checks that characters are single Hanzi and that each
// example word contains its character.
type HanziValidator struct{}

func (v *HanziValidator) Name() string { return "hanzi" }

func (v *HanziValidator) Validate(b quiz.Batch) *ValidationError {
	for i, it := range b {
		for _, c := range append([]string{it.Character}, it.WrongCharacters...) {
			if !isSingleHanzi(c) {
				return &ValidationError{
					Validator: v.Name(),
					Message:   fmt.Sprintf("item %d: %q is not a single Chinese character", i+1, c),
					Retryable: true,
				}
			}
		}
		for _, ex := range it.Examples {
			if !strings.Contains(ex.Word, it.Character) {
				return &ValidationError{
					Validator: v.Name(),
					Message:   fmt.Sprintf("item %d: example %q does not contain %s", i+1, ex.Word, it.Character),
					Retryable: true,
				}
			}
		}
	}
	return nil
}

func isSingleHanzi(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size == len(s) && unicode.Is(unicode.Han, r)
}

// DistractorValidator checks that wrong options are distinct and never
// equal the correct answer.
type DistractorValidator struct{}

func (v *DistractorValidator) Name() string { return "distractors" }

func (v *DistractorValidator) Validate(b quiz.Batch) *ValidationError {
	for i, it := range b {
		if msg := distractorProblem(it.Pinyin, it.WrongPinyins); msg != "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("item %d (%s): wrong pinyins: %s", i+1, it.Character, msg),
				Retryable: true,
			}
		}
		if msg := distractorProblem(it.Character, it.WrongCharacters); msg != "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("item %d (%s): wrong characters: %s", i+1, it.Character, msg),
				Retryable: true,
			}
		}
	}
	return nil
}

func distractorProblem(correct string, wrong []string) string {
	for i, w := range wrong {
		if w == correct {
			return fmt.Sprintf("%q equals the answer", w)
		}
		if slices.Contains(wrong[:i], w) {
			return fmt.Sprintf("%q repeated", w)
		}
	}
	return ""
}

// UniqueValidator checks that no character appears twice in a batch.
type UniqueValidator struct{}

func (v *UniqueValidator) Name() string { return "unique" }

func (v *UniqueValidator) Validate(b quiz.Batch) *ValidationError {
	seen := make(map[string]int, len(b))
	for i, it := range b {
		if j, ok := seen[it.Character]; ok {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("character %s appears in items %d and %d", it.Character, j+1, i+1),
				Retryable: true,
			}
		}
		seen[it.Character] = i
	}
	return nil
}
