package session

// Progress describes how far a game has got, for the question counter
// and progress bar.
type Progress struct {
	Number int // 1-based question number
	Total  int
}

// Progress returns the counter for the current question.
func (s State) Progress() Progress {
	if len(s.Items) == 0 {
		return Progress{}
	}
	return Progress{Number: s.Position + 1, Total: len(s.Items)}
}
