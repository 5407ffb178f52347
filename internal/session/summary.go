package session

import "github.com/abhisek/shizi/internal/quiz"

// Summary holds the data displayed on the finished screen.
type Summary struct {
	Mode       quiz.Mode
	Score      int
	Total      int
	Percentage int
	Points     int
	Rating     quiz.Rating
}

// Summary describes the finished game. Outside PhaseFinished the
// percentage and rating are those of a zero score.
func (s *Session) Summary() Summary {
	pct := s.Percentage()
	return Summary{
		Mode:       s.st.Mode,
		Score:      s.st.Score,
		Total:      len(s.st.Items),
		Percentage: pct,
		Points:     s.Points(),
		Rating:     quiz.Rate(pct),
	}
}
