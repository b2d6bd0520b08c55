// ABOUTME: Severity classification from weighted condition scores
// ABOUTME: Referral combinations override thresholds; pregnancy relaxes them
package analysis

import "github.com/omarZACK/Dermazeen/internal/models"

// Thresholds are the tunable classification cut-offs. The relaxed pair
// applies to pregnancy-linked pigmentation with low self-reported severity,
// a deliberate false-positive-reduction policy. Values are heuristic, not
// clinically derived.
type Thresholds struct {
	Severe          float64
	Moderate        float64
	RelaxedSevere   float64
	RelaxedModerate float64
	// PrimaryFloor is the minimum weighted score for naming a primary
	// condition at all.
	PrimaryFloor float64
	// HealthyCeiling: when every weighted score stays below it, the report
	// classifies as HEALTHY.
	HealthyCeiling float64
}

// DefaultThresholds returns the standard classification ladder.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Severe:          80,
		Moderate:        50,
		RelaxedSevere:   90,
		RelaxedModerate: 70,
		PrimaryFloor:    20,
		HealthyCeiling:  10,
	}
}

// SeverityResult is the classification outcome.
type SeverityResult struct {
	Severity         string
	Classification   string
	PrimaryCondition string
	// AutoReferral is set when a referral-triggering answer combination was
	// detected from the scores themselves.
	AutoReferral bool
	// Adjusted is the leading weighted score after the severity multiplier.
	Adjusted float64
}

// DetermineSeverity classifies the leading condition. Referral combinations
// force SEVERE regardless of scores.
func DetermineSeverity(scores ScoreSet, answers Answers, th Thresholds) SeverityResult {
	maxWeighted := 0.0
	maxCondition := "none"
	for _, name := range Conditions {
		if w := scores[name].Weighted(); w > maxWeighted {
			maxWeighted = w
			maxCondition = name
		}
	}

	if referralRequired(scores, answers) {
		return SeverityResult{
			Severity:         "severe",
			Classification:   models.ClassificationSevere,
			PrimaryCondition: maxCondition,
			AutoReferral:     true,
			Adjusted:         maxWeighted,
		}
	}

	duration := answers.Single("condition_duration", 1)
	severity := answers.Single("condition_severity", 1)

	multiplier := 1.0
	switch {
	case duration >= 5:
		multiplier += 0.3
	case duration >= 4:
		multiplier += 0.2
	case duration >= 3:
		multiplier += 0.1
	}
	switch {
	case severity >= 4:
		multiplier += 0.4
	case severity >= 3:
		multiplier += 0.2
	case severity >= 2:
		multiplier += 0.1
	}
	treatmentBonus := treatmentMultiplier(answers)
	multiplier += treatmentBonus

	adjusted := maxWeighted * multiplier

	// Pregnancy melasma is very common and usually mild; with low
	// self-reported severity the ladder shifts up.
	pregnancyLinked := answers.Has("melasma_pregnancy_hormones", 2) ||
		answers.Has("melasma_triggers", 2)

	var severe, moderate bool
	if pregnancyLinked && severity <= 2 {
		severe = adjusted >= th.RelaxedSevere || severity >= 4 || duration >= 5
		moderate = adjusted >= th.RelaxedModerate || severity >= 3 ||
			(duration >= 4 && maxWeighted >= 50)
	} else {
		severe = adjusted >= th.Severe || severity >= 4 ||
			(maxWeighted >= 70 && treatmentBonus >= 0.3) ||
			(duration >= 5 && severity >= 3)
		moderate = adjusted >= th.Moderate || severity >= 3 || maxWeighted >= 60 ||
			(duration >= 4 && maxWeighted >= 40)
	}

	result := SeverityResult{Adjusted: adjusted}
	switch {
	case severe:
		result.Severity = "severe"
		result.Classification = models.ClassificationSevere
	case moderate:
		result.Severity = "moderate"
		result.Classification = models.ClassificationModerate
	default:
		result.Severity = "mild"
		result.Classification = models.ClassificationMild
	}

	result.PrimaryCondition = "none"
	if maxWeighted > th.PrimaryFloor {
		result.PrimaryCondition = maxCondition
	}
	return result
}

// treatmentMultiplier grades how much treatment history escalates severity.
// Medical treatments or several attempted types weigh the most.
func treatmentMultiplier(answers Answers) float64 {
	treatments := answers.Values("previous_treatments")
	switch {
	case len(treatments) >= 3 || answers.HasAny("previous_treatments", 4, 5):
		return 0.3
	case len(treatments) >= 2 || answers.Has("previous_treatments", 3):
		return 0.2
	case answers.Has("previous_treatments", 2):
		return 0.1
	}
	return 0
}

// referralRequired detects answer combinations that bypass the numeric
// ladder entirely: facial involvement of a likely vitiligo or eczema, or
// severe eczema itching.
func referralRequired(scores ScoreSet, answers Answers) bool {
	if scores[Vitiligo].Value() > 30 && answers.HasAny("vitiligo_location", 1, 5) {
		return true
	}
	if scores[Eczema].Value() > 30 {
		if answers.Has("eczema_location", 1) {
			return true
		}
		if answers.Single("eczema_itching", 1) >= 4 {
			return true
		}
	}
	return false
}
