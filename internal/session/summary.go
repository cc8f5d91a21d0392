package session

// Summary is the end-of-quiz tally recorded when the learner finishes.
type Summary struct {
	Total            int
	Answered         int
	Correct          int
	Confidence       int
	EstimatedMinutes int
}

// BuildSummary tallies the session's answers.
func BuildSummary(s *State) Summary {
	answered := 0
	for _, a := range s.answers {
		if a != "" {
			answered++
		}
	}
	return Summary{
		Total:            s.bank.Len(),
		Answered:         answered,
		Correct:          s.bank.Score(s.answers),
		Confidence:       s.confidence,
		EstimatedMinutes: s.estimate,
	}
}
