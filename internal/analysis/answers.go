// ABOUTME: Answer-set view consumed by the scorer and analyzers
// ABOUTME: Missing answers default to index 1 (no evidence), never error
package analysis

// Answers maps question id to the selected 1-based option indices. Built by
// the engine from working memory; order-independent for all analysis.
type Answers map[string][]int

// Single returns the first selected index for the question, or fallback when
// it was never answered. Used for ordinal (scale) questions.
func (a Answers) Single(questionID string, fallback int) int {
	vals := a[questionID]
	if len(vals) == 0 {
		return fallback
	}
	return vals[0]
}

// Has reports whether the answer set for the question contains the index.
func (a Answers) Has(questionID string, choice int) bool {
	for _, v := range a[questionID] {
		if v == choice {
			return true
		}
	}
	return false
}

// HasAny reports whether any of the indices were selected.
func (a Answers) HasAny(questionID string, choices ...int) bool {
	for _, c := range choices {
		if a.Has(questionID, c) {
			return true
		}
	}
	return false
}

// Count returns how many options were selected for the question.
func (a Answers) Count(questionID string) int {
	return len(a[questionID])
}

// Values returns the raw selection list (nil when unanswered).
func (a Answers) Values(questionID string) []int {
	return a[questionID]
}
