// ABOUTME: Question catalog entry and answer value types
// ABOUTME: Option indices are 1-based throughout the system
package models

// QuestionType identifies how a question is answered.
type QuestionType string

const (
	SingleChoice   QuestionType = "single"
	MultipleChoice QuestionType = "multiple"
	TextInput      QuestionType = "text"
	BooleanChoice  QuestionType = "boolean"
	ScaleChoice    QuestionType = "scale"
)

// Question is a read-only catalog entry.
type Question struct {
	ID      string       `json:"id"`
	Text    string       `json:"text"`
	Type    QuestionType `json:"type"`
	Options []string     `json:"options"`
	// Triggers names the conditions this question gathers evidence for.
	Triggers []string `json:"triggers,omitempty"`
}

// MultiSelect reports whether the question accepts more than one option.
func (q Question) MultiSelect() bool {
	return q.Type == MultipleChoice
}

// RecordedAnswer is one answer as stored in the session log, in submission
// order. Values holds the selected 1-based option indices (one entry for
// single-choice questions).
type RecordedAnswer struct {
	QuestionID string `json:"question_id"`
	Values     []int  `json:"values"`
}
