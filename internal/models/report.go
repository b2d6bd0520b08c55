// ABOUTME: Final assessment report structures returned on completion
// ABOUTME: Shapes mirror the engine state snapshot handed to callers
package models

import "time"

// Severity classification levels.
const (
	ClassificationHealthy  = "HEALTHY"
	ClassificationMild     = "MILD"
	ClassificationModerate = "MODERATE"
	ClassificationSevere   = "SEVERE"
)

// SessionStatus is the lifecycle state reported to callers.
type SessionStatus string

const (
	StatusNotStarted SessionStatus = "not_started"
	StatusInProgress SessionStatus = "in_progress"
	StatusComplete   SessionStatus = "complete"
	StatusError      SessionStatus = "error"
)

// EngineState is the snapshot returned after starting a session or feeding an
// answer: either a pending question or, once complete, the final report.
type EngineState struct {
	Status          SessionStatus `json:"status"`
	PendingQuestion *Question     `json:"pending_question,omitempty"`
	Report          *FinalReport  `json:"report,omitempty"`
}

// MedicalReferral carries the referral flag and its supporting reasons.
type MedicalReferral struct {
	Required bool     `json:"required"`
	Message  string   `json:"message,omitempty"`
	Reasons  []string `json:"reasons"`
}

// OverallAssessment summarizes the leading finding.
type OverallAssessment struct {
	Severity         string `json:"severity"`
	Classification   string `json:"classification"`
	PrimaryCondition string `json:"primary_condition"`
	StatusMessage    string `json:"status_message"`
}

// ConditionFinding is one scored condition in the report, sorted by weighted
// score descending.
type ConditionFinding struct {
	Name          string  `json:"name"`
	RawScore      float64 `json:"raw_score"`
	Confidence    float64 `json:"confidence"`
	WeightedScore float64 `json:"weighted_score"`
	RiskLevel     string  `json:"risk_level"`
}

// AllergenProfile lists allergen categories the user reacts to and the
// ingredients to avoid for each.
type AllergenProfile struct {
	HighRisk         []string `json:"high_risk_allergens"`
	AvoidIngredients []string `json:"avoid_ingredients"`
}

// SkinProfile is the categorical skin characterization.
type SkinProfile struct {
	Type        string          `json:"type"`
	Sensitivity string          `json:"sensitivity"`
	Hydration   string          `json:"hydration"`
	Allergens   AllergenProfile `json:"allergen_profile"`
}

// Routine holds the generated skincare routine blocks.
type Routine struct {
	Morning []string `json:"morning"`
	Evening []string `json:"evening"`
	Weekly  []string `json:"weekly"`
	Notes   []string `json:"notes"`
}

// ReferralAdvice is the recommendation branch taken when medical attention is
// required; it replaces the routine.
type ReferralAdvice struct {
	Message         string   `json:"message"`
	Reasons         []string `json:"reasons"`
	Instructions    []string `json:"instructions"`
	UrgencySigns    []string `json:"urgency_signs"`
	SpecialistNotes []string `json:"specialist_notes"`
}

// Recommendations selects exactly one of Routine or Referral, plus lifestyle
// tips that apply either way.
type Recommendations struct {
	Routine   *Routine        `json:"routine,omitempty"`
	Referral  *ReferralAdvice `json:"referral,omitempty"`
	Lifestyle []string        `json:"lifestyle"`
}

// ConfidenceMetrics aggregates the confidence factors recorded per rule firing.
type ConfidenceMetrics struct {
	AverageCF  float64 `json:"average_cf"`
	RulesFired int     `json:"rules_fired"`
}

// FinalReport is the complete assessment outcome. It is assembled exactly once,
// after scores, profile and recommendations are all present.
type FinalReport struct {
	MedicalReferral   MedicalReferral    `json:"medical_referral"`
	Overall           OverallAssessment  `json:"overall"`
	Conditions        []ConditionFinding `json:"conditions"`
	SkinProfile       SkinProfile        `json:"skin_profile"`
	Recommendations   Recommendations    `json:"recommendations"`
	ConfidenceMetrics ConfidenceMetrics  `json:"confidence_metrics"`
	GeneratedAt       time.Time          `json:"generated_at"`
	Disclaimers       []string           `json:"disclaimers"`
}
