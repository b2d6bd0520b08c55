// ABOUTME: Typed working-memory facts asserted during an assessment session
// ABOUTME: Facts are immutable; a correction retracts and re-asserts
package models

// FactKind discriminates the fact types held in working memory.
type FactKind string

const (
	KindAnswer          FactKind = "answer"
	KindAsked           FactKind = "asked"
	KindPhase           FactKind = "phase"
	KindConditionScore  FactKind = "condition_score"
	KindProfile         FactKind = "profile"
	KindReferral        FactKind = "referral_required"
	KindRecommendations FactKind = "recommendations_ready"
	KindExcluded        FactKind = "excluded"
)

// Fact is a single immutable assertion. Only the fields relevant to its kind
// are populated.
type Fact struct {
	Kind FactKind

	// Answer / Asked
	QuestionID string
	// Answer: 1-based option index. Multi-select answers produce one fact per
	// selected index, all sharing QuestionID.
	Value int

	// Phase
	Phase Phase

	// ConditionScore / ReferralRequired / Excluded
	Condition string
	Score     float64
	CF        float64
	Reason    string

	// Profile
	SkinType    string
	Sensitivity string
	Hydration   string
}

// AnswerFact builds a single-choice answer assertion.
func AnswerFact(questionID string, value int) Fact {
	return Fact{Kind: KindAnswer, QuestionID: questionID, Value: value}
}

// AskedFact marks a question as presented.
func AskedFact(questionID string) Fact {
	return Fact{Kind: KindAsked, QuestionID: questionID}
}

// PhaseFact marks the live questionnaire stage.
func PhaseFact(p Phase) Fact {
	return Fact{Kind: KindPhase, Phase: p}
}

// ReferralFact flags a condition that requires medical referral.
func ReferralFact(condition, reason string) Fact {
	return Fact{Kind: KindReferral, Condition: condition, Reason: reason}
}

// ExcludedFact suppresses a condition ruled out at screening.
func ExcludedFact(condition string) Fact {
	return Fact{Kind: KindExcluded, Condition: condition}
}
