package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		score, total, want int
	}{
		{10, 10, 100},
		{9, 10, 90},
		{0, 10, 0},
		{2, 3, 67},
		{1, 8, 13},
		{0, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Percentage(tt.score, tt.total), "%d/%d", tt.score, tt.total)
	}
}

func TestRate(t *testing.T) {
	tests := []struct {
		pct   int
		title string
		emoji string
	}{
		{100, "Perfect Score!", "🏆"},
		{90, "Great Job!", "🎉"},
		{80, "Great Job!", "🎉"},
		{79, "Good Effort!", "👍"},
		{60, "Good Effort!", "👍"},
		{59, "Completed!", "😐"},
		{0, "Completed!", "😐"},
	}
	for _, tt := range tests {
		r := Rate(tt.pct)
		assert.Equal(t, tt.title, r.Title, "pct %d", tt.pct)
		assert.Equal(t, tt.emoji, r.Emoji, "pct %d", tt.pct)
	}
}

func TestPoints(t *testing.T) {
	assert.Equal(t, 90, Points(9))
	assert.Equal(t, 0, Points(0))
}
