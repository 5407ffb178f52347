package quizgen

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/abhisek/shizi/internal/quiz"
)

// batchOutput is the raw LLM response before validation. The embedded
// sample bank uses the same shape.
type batchOutput struct {
	Items []itemOutput `json:"items"`
}

type itemOutput struct {
	Character       string          `json:"character"`
	Pinyin          string          `json:"pinyin"`
	WrongPinyins    []string        `json:"wrong_pinyins"`
	WrongCharacters []string        `json:"wrong_characters"`
	Examples        []exampleOutput `json:"examples"`
}

type exampleOutput struct {
	Word   string `json:"word"`
	Pinyin string `json:"pinyin"`
}

// toItem converts raw output to a quiz.Item. Values are trimmed and put in
// NFC so decomposed tone marks compare equal to precomposed ones.
func (o itemOutput) toItem() quiz.Item {
	it := quiz.Item{
		Character:       clean(o.Character),
		Pinyin:          clean(o.Pinyin),
		WrongPinyins:    trimAll(o.WrongPinyins),
		WrongCharacters: trimAll(o.WrongCharacters),
		Examples:        make([]quiz.Example, len(o.Examples)),
	}
	for i, ex := range o.Examples {
		it.Examples[i] = quiz.Example{
			Word:   clean(ex.Word),
			Pinyin: clean(ex.Pinyin),
		}
	}
	return it
}

func (o batchOutput) toBatch() quiz.Batch {
	b := make(quiz.Batch, len(o.Items))
	for i, it := range o.Items {
		b[i] = it.toItem()
	}
	return b
}

func trimAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = clean(s)
	}
	return out
}

func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
