package game

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/shizi/internal/quiz"
	"github.com/abhisek/shizi/internal/screens/summary"
	"github.com/abhisek/shizi/internal/session"
	"github.com/abhisek/shizi/internal/ui/components"
	"github.com/abhisek/shizi/internal/ui/theme"
)

func (g *GameScreen) View(width, height int) string {
	st := g.sess.State()

	var content string
	switch {
	case g.startErr != nil:
		content = renderError(g.startErr, width)
	case st.Phase == session.PhaseLoading:
		content = g.renderLoading()
	case st.Phase == session.PhaseActive, st.Phase == session.PhaseAnswerRevealed:
		content = g.renderQuestion(st, width)
	case st.Phase == session.PhaseError:
		content = renderError(st.Err, width)
	case st.Phase == session.PhaseFinished:
		return summary.View(g.sess.Summary(), g.button, width)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (g *GameScreen) renderLoading() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		components.Panda(components.MoodIdle),
		"",
		g.spinner.View()+" "+lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("AI老师正在出题中..."),
		"",
		theme.Hint.Render("Gathering 10 fun words for you..."),
	)
}

func (g *GameScreen) renderQuestion(st session.State, width int) string {
	it, ok := st.Current()
	if !ok {
		return ""
	}
	cw := components.ContentWidth(width)
	p := st.Progress()

	sections := []string{
		components.QuestionProgress(p.Number, p.Total, cw).View(),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(st.Mode.Instruction()),
		theme.Prompt.Render(st.Mode.Prompt(it)),
		"",
		g.choice.View(cw),
	}
	if st.Phase == session.PhaseAnswerRevealed {
		sections = append(sections, "", renderFeedback(st, it, cw))
	}
	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

// renderFeedback renders the card shown after an answer: the verdict,
// the character with its reading, and example words.
func renderFeedback(st session.State, it quiz.Item, cw int) string {
	verdict := theme.Correct.Render("答对啦！")
	mood := components.MoodHappy
	if !st.LastAnswerCorrect {
		verdict = theme.Incorrect.Render("再接再厉！")
		mood = components.MoodSad
	}

	char := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(it.Character) +
		"  " + theme.Pinyin.Render(it.Pinyin)

	var ex strings.Builder
	for i, e := range it.Examples {
		if i > 0 {
			ex.WriteString("   ")
		}
		ex.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(e.Word))
		ex.WriteString(" ")
		ex.WriteString(theme.Pinyin.Render("(" + e.Pinyin + ")"))
	}

	next := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("继续下一题 ➔")

	body := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Center, components.Panda(mood), "   ",
			lipgloss.JoinVertical(lipgloss.Left, verdict, "", char)),
		"",
		ex.String(),
		"",
		next,
	)
	return components.ArcadeCard(body, cw)
}

func renderError(err error, width int) string {
	sections := []string{
		components.Panda(components.MoodSad),
		"",
		theme.Incorrect.Render("Oops! Something went wrong."),
	}
	if err != nil {
		msg := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(err.Error())
		sections = append(sections, "", msg)
	}
	sections = append(sections, "", components.ArcadeButton("Try Again", true, 20))
	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}
