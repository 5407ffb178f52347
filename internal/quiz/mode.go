package quiz

// Mode selects which side of an item is shown and which is answered.
type Mode int

const (
	// ModeCharacterToSound shows the character; the learner picks its pinyin.
	ModeCharacterToSound Mode = iota

	// ModeSoundToCharacter shows the pinyin; the learner picks the character.
	ModeSoundToCharacter
)

func (m Mode) String() string {
	switch m {
	case ModeCharacterToSound:
		return "character-to-sound"
	case ModeSoundToCharacter:
		return "sound-to-character"
	default:
		return "unknown"
	}
}

// Label is the short Chinese name of the mode.
func (m Mode) Label() string {
	if m == ModeSoundToCharacter {
		return "看音选字"
	}
	return "看字选音"
}

// Instruction is the prompt shown above the options.
func (m Mode) Instruction() string {
	if m == ModeSoundToCharacter {
		return "请选择对应的汉字"
	}
	return "请选择对应的拼音"
}

// Prompt returns the side of the item shown to the learner.
func (m Mode) Prompt(it Item) string {
	if m == ModeSoundToCharacter {
		return it.Pinyin
	}
	return it.Character
}

// Answer returns the expected answer for the item.
func (m Mode) Answer(it Item) string {
	if m == ModeSoundToCharacter {
		return it.Character
	}
	return it.Pinyin
}

// Distractors returns the wrong options for the item.
func (m Mode) Distractors(it Item) []string {
	if m == ModeSoundToCharacter {
		return it.WrongCharacters
	}
	return it.WrongPinyins
}

// ParseMode maps CLI-friendly names to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "character-to-sound", "char", "hanzi":
		return ModeCharacterToSound, true
	case "sound-to-character", "sound", "pinyin":
		return ModeSoundToCharacter, true
	}
	return 0, false
}
