package quiz

import "math"

// PointsPerAnswer is awarded for each correct answer.
const PointsPerAnswer = 10

// Percentage returns score/total as a whole percentage, rounded half up.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// Points converts a score into points.
func Points(score int) int {
	return score * PointsPerAnswer
}

// Rating is the end-of-game headline for a percentage.
type Rating struct {
	Title string
	Emoji string
}

// Rate picks the headline for a percentage.
func Rate(pct int) Rating {
	switch {
	case pct >= 100:
		return Rating{Title: "Perfect Score!", Emoji: "🏆"}
	case pct >= 80:
		return Rating{Title: "Great Job!", Emoji: "🎉"}
	case pct >= 60:
		return Rating{Title: "Good Effort!", Emoji: "👍"}
	default:
		return Rating{Title: "Completed!", Emoji: "😐"}
	}
}
