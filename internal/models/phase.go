// ABOUTME: Questionnaire phase enum and ordering
// ABOUTME: Exactly one phase fact is live in working memory at a time
package models

// Phase is a questionnaire stage. Phases advance monotonically except that
// screening can jump straight to analysis for healthy-skin responses.
type Phase string

const (
	PhaseScreening         Phase = "SCREENING"
	PhaseBasicInfo         Phase = "BASIC_INFO"
	PhaseSpecificCondition Phase = "SPECIFIC_CONDITION"
	PhaseOiliness          Phase = "OILINESS"
	PhaseSensitivity       Phase = "SENSITIVITY"
	PhaseHydration         Phase = "HYDRATION"
	PhaseLifestyle         Phase = "LIFESTYLE"
	PhaseAnalysis          Phase = "ANALYSIS"
	PhaseComplete          Phase = "COMPLETE"
)

// PhaseOrder lists all phases in progression order.
var PhaseOrder = []Phase{
	PhaseScreening,
	PhaseBasicInfo,
	PhaseSpecificCondition,
	PhaseOiliness,
	PhaseSensitivity,
	PhaseHydration,
	PhaseLifestyle,
	PhaseAnalysis,
	PhaseComplete,
}

// ParsePhase maps a stored string back to a Phase, defaulting to SCREENING
// for anything unrecognized.
func ParsePhase(s string) Phase {
	for _, p := range PhaseOrder {
		if string(p) == s {
			return p
		}
	}
	return PhaseScreening
}

// Terminal reports whether the phase ends the session.
func (p Phase) Terminal() bool {
	return p == PhaseComplete
}
