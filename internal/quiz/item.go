package quiz

import (
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"
)

const (
	// BatchSize is the number of questions in one game.
	BatchSize = 10

	// DistractorCount is the number of wrong options per question.
	DistractorCount = 3

	// ExampleCount is the number of example words per character.
	ExampleCount = 3
)

// Item is a single quiz question built around one Chinese character.
type Item struct {
	// Character is the single Hanzi being taught, e.g. "山".
	Character string

	// Pinyin is the tone-marked pronunciation of Character, e.g. "shān".
	Pinyin string

	// WrongPinyins are pronunciations shown as distractors in
	// ModeCharacterToSound. Exactly DistractorCount, none equal to Pinyin.
	WrongPinyins []string

	// WrongCharacters are characters shown as distractors in
	// ModeSoundToCharacter. Exactly DistractorCount, none equal to Character.
	WrongCharacters []string

	// Examples are common words containing Character, shown after answering.
	Examples []Example
}

// Example is a word that uses the quiz character.
type Example struct {
	Word   string
	Pinyin string
}

// Batch is the ordered list of items for one game.
type Batch []Item

// Validate checks the distractor and example invariants of an item.
func (it Item) Validate() error {
	if it.Character == "" {
		return errors.New("character is empty")
	}
	if utf8.RuneCountInString(it.Character) != 1 {
		return fmt.Errorf("character %q must be a single character", it.Character)
	}
	if it.Pinyin == "" {
		return fmt.Errorf("%s: pinyin is empty", it.Character)
	}
	if err := checkDistractors(it.Pinyin, it.WrongPinyins); err != nil {
		return fmt.Errorf("%s: wrong pinyins: %w", it.Character, err)
	}
	if err := checkDistractors(it.Character, it.WrongCharacters); err != nil {
		return fmt.Errorf("%s: wrong characters: %w", it.Character, err)
	}
	if len(it.Examples) != ExampleCount {
		return fmt.Errorf("%s: expected %d examples, got %d", it.Character, ExampleCount, len(it.Examples))
	}
	for i, ex := range it.Examples {
		if ex.Word == "" || ex.Pinyin == "" {
			return fmt.Errorf("%s: example %d is incomplete", it.Character, i+1)
		}
	}
	return nil
}

func checkDistractors(correct string, wrong []string) error {
	if len(wrong) != DistractorCount {
		return fmt.Errorf("expected %d, got %d", DistractorCount, len(wrong))
	}
	for i, w := range wrong {
		if w == "" {
			return fmt.Errorf("option %d is empty", i+1)
		}
		if w == correct {
			return fmt.Errorf("option %q equals the correct answer", w)
		}
		if slices.Contains(wrong[:i], w) {
			return fmt.Errorf("option %q is duplicated", w)
		}
	}
	return nil
}

// Validate checks the batch length, every item, and that no character
// appears twice.
func (b Batch) Validate() error {
	if len(b) != BatchSize {
		return fmt.Errorf("expected %d items, got %d", BatchSize, len(b))
	}
	seen := make(map[string]bool, len(b))
	for i, it := range b {
		if err := it.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i+1, err)
		}
		if seen[it.Character] {
			return fmt.Errorf("item %d: character %q repeated", i+1, it.Character)
		}
		seen[it.Character] = true
	}
	return nil
}

// Characters returns the characters of the batch in order.
func (b Batch) Characters() []string {
	out := make([]string, len(b))
	for i, it := range b {
		out[i] = it.Character
	}
	return out
}
