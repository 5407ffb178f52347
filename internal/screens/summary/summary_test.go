package summary

import (
	"strings"
	"testing"

	"github.com/abhisek/shizi/internal/quiz"
	"github.com/abhisek/shizi/internal/session"
)

func testSummary(score int) session.Summary {
	pct := quiz.Percentage(score, quiz.BatchSize)
	return session.Summary{
		Mode:       quiz.ModeSoundToCharacter,
		Score:      score,
		Total:      quiz.BatchSize,
		Percentage: pct,
		Points:     quiz.Points(score),
		Rating:     quiz.Rate(pct),
	}
}

func TestView_GreatJob(t *testing.T) {
	view := View(testSummary(9), ButtonReplay, 80)
	for _, want := range []string{"Great Job!", "🎉", "You scored 9 out of 10", "90 points", "90%", "▸ Replay", "看音选字"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_Tiers(t *testing.T) {
	tests := []struct {
		score int
		title string
	}{
		{10, "Perfect Score!"},
		{8, "Great Job!"},
		{6, "Good Effort!"},
		{2, "Completed!"},
	}
	for _, tt := range tests {
		view := View(testSummary(tt.score), ButtonMenu, 80)
		if !strings.Contains(view, tt.title) {
			t.Errorf("score %d: missing %q", tt.score, tt.title)
		}
		if !strings.Contains(view, "▸ Main Menu") {
			t.Errorf("score %d: Main Menu not selected", tt.score)
		}
	}
}
