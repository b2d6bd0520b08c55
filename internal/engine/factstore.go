// ABOUTME: Working memory for one assessment session
// ABOUTME: Insert-only fact slab with retraction by handle, kind, or question
package engine

import "github.com/omarZACK/Dermazeen/internal/models"

// Handle identifies an asserted fact for later retraction.
type Handle int

// FactStore holds the typed assertions of a single session. It is not safe
// for concurrent use; callers serialize access per session.
type FactStore struct {
	facts []models.Fact
	live  []bool
}

// NewFactStore returns an empty store.
func NewFactStore() *FactStore {
	return &FactStore{}
}

// Assert adds a fact and returns its handle.
func (s *FactStore) Assert(f models.Fact) Handle {
	s.facts = append(s.facts, f)
	s.live = append(s.live, true)
	return Handle(len(s.facts) - 1)
}

// Retract removes the fact behind h. Retracting an already-retracted or
// unknown handle is a no-op.
func (s *FactStore) Retract(h Handle) {
	if h >= 0 && int(h) < len(s.live) {
		s.live[h] = false
	}
}

// RetractKind removes every live fact of the given kind. Used for phase
// transitions, which retract the old Phase before asserting the new one.
func (s *FactStore) RetractKind(kind models.FactKind) {
	for i := range s.facts {
		if s.live[i] && s.facts[i].Kind == kind {
			s.live[i] = false
		}
	}
}

// RetractAnswers removes every live answer fact for the question. A
// re-submitted answer replaces the earlier selection wholesale, so queries
// only ever see the latest submission.
func (s *FactStore) RetractAnswers(questionID string) {
	for i := range s.facts {
		if s.live[i] && s.facts[i].Kind == models.KindAnswer && s.facts[i].QuestionID == questionID {
			s.live[i] = false
		}
	}
}

// Query returns all live facts satisfying pred, in insertion order.
func (s *FactStore) Query(pred func(models.Fact) bool) []models.Fact {
	var out []models.Fact
	for i := range s.facts {
		if s.live[i] && pred(s.facts[i]) {
			out = append(out, s.facts[i])
		}
	}
	return out
}

// Kind returns all live facts of one kind, in insertion order.
func (s *FactStore) Kind(kind models.FactKind) []models.Fact {
	return s.Query(func(f models.Fact) bool { return f.Kind == kind })
}

// HasKind reports whether at least one live fact of the kind exists.
func (s *FactStore) HasKind(kind models.FactKind) bool {
	for i := range s.facts {
		if s.live[i] && s.facts[i].Kind == kind {
			return true
		}
	}
	return false
}

// Phase returns the live phase marker, or SCREENING when none is asserted yet.
func (s *FactStore) Phase() models.Phase {
	for i := len(s.facts) - 1; i >= 0; i-- {
		if s.live[i] && s.facts[i].Kind == models.KindPhase {
			return s.facts[i].Phase
		}
	}
	return models.PhaseScreening
}

// Asked reports whether the question has been presented.
func (s *FactStore) Asked(questionID string) bool {
	for i := range s.facts {
		if s.live[i] && s.facts[i].Kind == models.KindAsked && s.facts[i].QuestionID == questionID {
			return true
		}
	}
	return false
}

// Answered reports whether at least one answer fact exists for the question.
func (s *FactStore) Answered(questionID string) bool {
	for i := range s.facts {
		if s.live[i] && s.facts[i].Kind == models.KindAnswer && s.facts[i].QuestionID == questionID {
			return true
		}
	}
	return false
}

// Answers returns every selected option index for the question, in insertion
// order. Multi-select answers contribute one entry per selection.
func (s *FactStore) Answers(questionID string) []int {
	var out []int
	for i := range s.facts {
		if s.live[i] && s.facts[i].Kind == models.KindAnswer && s.facts[i].QuestionID == questionID {
			out = append(out, s.facts[i].Value)
		}
	}
	return out
}

// AnswerValue returns the first answer index for the question, or fallback
// when the question is unanswered.
func (s *FactStore) AnswerValue(questionID string, fallback int) int {
	for i := range s.facts {
		if s.live[i] && s.facts[i].Kind == models.KindAnswer && s.facts[i].QuestionID == questionID {
			return s.facts[i].Value
		}
	}
	return fallback
}

// HasChoice reports whether the question's answer set contains the index.
func (s *FactStore) HasChoice(questionID string, choice int) bool {
	for i := range s.facts {
		if s.live[i] && s.facts[i].Kind == models.KindAnswer &&
			s.facts[i].QuestionID == questionID && s.facts[i].Value == choice {
			return true
		}
	}
	return false
}

// HasAnyChoice reports whether the answer set contains any of the indices.
func (s *FactStore) HasAnyChoice(questionID string, choices ...int) bool {
	for _, c := range choices {
		if s.HasChoice(questionID, c) {
			return true
		}
	}
	return false
}

// HasExactChoice reports whether the question was answered with exactly the
// single given index.
func (s *FactStore) HasExactChoice(questionID string, choice int) bool {
	vals := s.Answers(questionID)
	return len(vals) == 1 && vals[0] == choice
}

// HasReferral reports whether the given referral flag is already asserted.
func (s *FactStore) HasReferral(condition, reason string) bool {
	for i := range s.facts {
		if s.live[i] && s.facts[i].Kind == models.KindReferral &&
			s.facts[i].Condition == condition && s.facts[i].Reason == reason {
			return true
		}
	}
	return false
}

// IsExcluded reports whether a condition was ruled out at screening.
func (s *FactStore) IsExcluded(condition string) bool {
	for i := range s.facts {
		if s.live[i] && s.facts[i].Kind == models.KindExcluded && s.facts[i].Condition == condition {
			return true
		}
	}
	return false
}

// AnswerMap snapshots all answers as question id -> selected indices. The
// scorer and analyzers consume this shape.
func (s *FactStore) AnswerMap() map[string][]int {
	out := make(map[string][]int)
	for i := range s.facts {
		if s.live[i] && s.facts[i].Kind == models.KindAnswer {
			f := s.facts[i]
			out[f.QuestionID] = append(out[f.QuestionID], f.Value)
		}
	}
	return out
}
