package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shizi/internal/ui/theme"
)

// Mood selects which panda to draw.
type Mood int

const (
	MoodIdle  Mood = iota
	MoodHappy      // correct answer, good score
	MoodSad        // wrong answer
)

const pandaIdle = `  ▄▄       ▄▄
 ████▄▄▄▄▄████
  █  ●   ●  █
  █    ▼    █
   ▀▄ ‿‿‿ ▄▀
     ▀▀▀▀▀`

const pandaHappy = `  ▄▄       ▄▄
 ████▄▄▄▄▄████
  █  ^   ^  █
  █    ▼    █  ✿
   ▀▄ ╰─╯ ▄▀
     ▀▀▀▀▀`

const pandaSad = `  ▄▄       ▄▄
 ████▄▄▄▄▄████
  █  ╥   ╥  █
  █    ▼    █
   ▀▄ ╭─╮ ▄▀
     ▀▀▀▀▀`

// Panda returns the mascot art for mood.
func Panda(mood Mood) string {
	art, fg := pandaIdle, theme.Text
	switch mood {
	case MoodHappy:
		art, fg = pandaHappy, theme.ArcadeYellow
	case MoodSad:
		art, fg = pandaSad, theme.Secondary
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}
