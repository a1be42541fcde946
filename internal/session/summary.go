package session

import "fmt"

// SavedResult is a question the learner chose to keep for review.
type SavedResult struct {
	Multiplicand int
	Multiplier   int
	Product      int
}

func (r SavedResult) String() string {
	return fmt.Sprintf("%d × %d = %d", r.Multiplicand, r.Multiplier, r.Product)
}

// Summary is the end-of-session report.
type Summary struct {
	Results   []SavedResult // in the order they were saved
	Answered  int           // questions passed before the session ended
	Total     int
	Cancelled bool
}

// Lines renders each saved result as "a × b = product".
func (s Summary) Lines() []string {
	lines := make([]string, 0, len(s.Results))
	for _, r := range s.Results {
		lines = append(lines, r.String())
	}
	return lines
}
