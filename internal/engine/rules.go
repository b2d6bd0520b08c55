// ABOUTME: Declarative rule set for the skin assessment questionnaire
// ABOUTME: Salience orders firing; equal salience resolves by declaration order
package engine

import (
	"github.com/omarZACK/Dermazeen/internal/models"
)

type rule struct {
	name     string
	salience int
	cf       float64
	when     func(*Engine) bool
	action   func(*Engine) error
}

func inPhase(p models.Phase) func(*Engine) bool {
	return func(e *Engine) bool { return e.store.Phase() == p }
}

func askRule(name string, salience int, cf float64, questionID string, extra func(*Engine) bool) rule {
	return rule{
		name:     name,
		salience: salience,
		cf:       cf,
		when: func(e *Engine) bool {
			if e.store.Asked(questionID) {
				return false
			}
			return extra == nil || extra(e)
		},
		action: func(e *Engine) error { return e.ask(questionID) },
	}
}

func transition(name string, salience int, cf float64, to models.Phase, when func(*Engine) bool) rule {
	return rule{
		name:     name,
		salience: salience,
		cf:       cf,
		when:     when,
		action: func(e *Engine) error {
			e.changePhase(to)
			return nil
		},
	}
}

func referralRule(name string, salience int, cf float64, condition, reason, warning string, when func(*Engine) bool) rule {
	return rule{
		name:     name,
		salience: salience,
		cf:       cf,
		when: func(e *Engine) bool {
			return !e.store.HasReferral(condition, reason) && when(e)
		},
		action: func(e *Engine) error {
			e.logf("warning", "%s", warning)
			e.store.Assert(models.ReferralFact(condition, reason))
			return nil
		},
	}
}

// problemSuspected reports whether screening named at least one condition.
func problemSuspected(e *Engine) bool {
	return e.store.Answered("screening_main") && !e.store.HasChoice("screening_main", 1)
}

var ruleSet = []rule{
	// ---- Screening ----
	askRule("ask_screening", 100, 1.0, "screening_main", inPhase(models.PhaseScreening)),
	askRule("ask_condition_duration", 90, 0.9, "condition_duration", problemSuspected),
	askRule("ask_condition_severity", 90, 0.9, "condition_severity", problemSuspected),
	askRule("ask_previous_treatments", 85, 0.8, "previous_treatments", problemSuspected),
	{
		name: "derive_screening_exclusions", salience: 95, cf: 0.9,
		when: func(e *Engine) bool {
			return !e.exclusionsDerived && e.store.Answered("screening_main")
		},
		action: func(e *Engine) error {
			e.deriveExclusions()
			return nil
		},
	},
	transition("move_to_basic_info", 80, 0.95, models.PhaseBasicInfo, func(e *Engine) bool {
		if e.store.Phase() != models.PhaseScreening || !e.store.Asked("screening_main") {
			return false
		}
		if e.store.HasChoice("screening_main", 1) {
			return true
		}
		return e.store.Asked("condition_duration") &&
			e.store.Asked("condition_severity") &&
			e.store.Asked("previous_treatments")
	}),

	// ---- Basic information ----
	askRule("ask_age", 75, 1.0, "age", inPhase(models.PhaseBasicInfo)),
	askRule("ask_gender", 75, 1.0, "gender", inPhase(models.PhaseBasicInfo)),
	askRule("ask_skin_tone", 70, 0.8, "skin_tone", inPhase(models.PhaseBasicInfo)),
	askRule("ask_family_history", 85, 0.9, "family_history", inPhase(models.PhaseBasicInfo)),
	transition("move_to_specific_conditions", 70, 0.95, models.PhaseSpecificCondition, func(e *Engine) bool {
		return e.store.Phase() == models.PhaseBasicInfo &&
			e.store.Asked("age") && e.store.Asked("gender") &&
			e.store.Asked("skin_tone") && e.store.Asked("family_history")
	}),

	// ---- Specific conditions: vitiligo ----
	askRule("ask_vitiligo_spots_from_screening", 95, 0.9, "vitiligo_spots", func(e *Engine) bool {
		return e.store.Phase() == models.PhaseSpecificCondition && e.store.HasChoice("screening_main", 2)
	}),
	askRule("ask_vitiligo_spots_from_family", 90, 0.8, "vitiligo_spots", func(e *Engine) bool {
		return e.store.Phase() == models.PhaseSpecificCondition && e.store.HasChoice("family_history", 2)
	}),
	askRule("ask_vitiligo_location", 90, 0.85, "vitiligo_location", func(e *Engine) bool {
		return e.store.AnswerValue("vitiligo_spots", 1) > 1
	}),
	referralRule("detect_vitiligo_facial_involvement", 100, 0.95,
		"vitiligo", "facial_involvement",
		"facial vitiligo detected - medical referral recommended",
		func(e *Engine) bool { return e.store.HasAnyChoice("vitiligo_location", 1, 5) }),

	// ---- Specific conditions: rosacea ----
	askRule("ask_rosacea_redness_from_screening", 90, 0.85, "rosacea_redness", func(e *Engine) bool {
		return e.store.Phase() == models.PhaseSpecificCondition && e.store.HasChoice("screening_main", 3)
	}),
	askRule("ask_rosacea_redness_from_family", 85, 0.75, "rosacea_redness", func(e *Engine) bool {
		return e.store.Phase() == models.PhaseSpecificCondition && e.store.HasChoice("family_history", 3)
	}),
	askRule("ask_rosacea_triggers", 85, 0.8, "rosacea_triggers", func(e *Engine) bool {
		return e.store.AnswerValue("rosacea_redness", 1) > 1
	}),

	// ---- Specific conditions: eczema ----
	askRule("ask_eczema_itching_from_screening", 90, 0.85, "eczema_itching", func(e *Engine) bool {
		return e.store.Phase() == models.PhaseSpecificCondition && e.store.HasChoice("screening_main", 4)
	}),
	askRule("ask_eczema_itching_from_family", 85, 0.75, "eczema_itching", func(e *Engine) bool {
		return e.store.Phase() == models.PhaseSpecificCondition && e.store.HasChoice("family_history", 4)
	}),
	askRule("ask_eczema_location", 88, 0.8, "eczema_location", func(e *Engine) bool {
		return e.store.AnswerValue("eczema_itching", 1) > 1
	}),
	askRule("ask_eczema_triggers", 82, 0.75, "eczema_triggers", func(e *Engine) bool {
		return e.store.AnswerValue("eczema_itching", 1) > 1
	}),
	referralRule("detect_eczema_facial_involvement", 100, 0.9,
		"eczema", "facial_involvement",
		"facial eczema detected - medical referral recommended",
		func(e *Engine) bool { return e.store.HasChoice("eczema_location", 1) }),
	referralRule("detect_severe_eczema_itching", 95, 0.85,
		"eczema", "severe_symptoms",
		"severe eczema itching detected - medical referral recommended",
		func(e *Engine) bool { return e.store.AnswerValue("eczema_itching", 1) >= 4 }),

	// ---- Specific conditions: melasma ----
	askRule("ask_melasma_patches_from_screening", 90, 0.9, "melasma_patches", func(e *Engine) bool {
		return e.store.Phase() == models.PhaseSpecificCondition && e.store.HasChoice("screening_main", 8)
	}),
	// Adult females get the melasma question even without screening selection;
	// the condition is common enough to probe proactively.
	askRule("ask_melasma_patches_female_adult", 85, 0.75, "melasma_patches", func(e *Engine) bool {
		return e.store.Phase() == models.PhaseSpecificCondition &&
			e.store.HasExactChoice("gender", 2) &&
			e.store.AnswerValue("age", 1) >= 2 &&
			e.store.Answered("screening_main") &&
			!e.store.HasExactChoice("screening_main", 1)
	}),
	askRule("ask_melasma_location", 88, 0.85, "melasma_location", func(e *Engine) bool {
		return e.store.AnswerValue("melasma_patches", 1) > 1
	}),
	askRule("ask_melasma_triggers", 85, 0.8, "melasma_triggers", func(e *Engine) bool {
		return e.store.AnswerValue("melasma_patches", 1) > 1
	}),
	askRule("ask_melasma_pregnancy_hormones", 82, 0.8, "melasma_pregnancy_hormones", func(e *Engine) bool {
		return e.store.AnswerValue("melasma_patches", 1) > 1 && e.store.HasChoice("gender", 2)
	}),

	// ---- Specific conditions: hormonal acne ----
	askRule("ask_menstrual_cycle_acne_from_screening", 85, 0.8, "menstrual_cycle_acne", func(e *Engine) bool {
		return e.store.Phase() == models.PhaseSpecificCondition &&
			e.store.HasChoice("screening_main", 6) && e.store.HasChoice("gender", 2)
	}),
	askRule("ask_hormonal_birth_control", 80, 0.7, "hormonal_birth_control", func(e *Engine) bool {
		return e.store.AnswerValue("menstrual_cycle_acne", 1) > 1
	}),

	// Fires only when every satisfiable condition question above has been
	// asked; the ask rules all outrank it.
	transition("move_to_oiliness", 50, 0.9, models.PhaseOiliness,
		inPhase(models.PhaseSpecificCondition)),

	// ---- Oiliness ----
	askRule("ask_t_zone_oiliness", 75, 0.85, "t_zone_oiliness", inPhase(models.PhaseOiliness)),
	askRule("ask_cheek_oiliness", 75, 0.85, "cheek_oiliness", inPhase(models.PhaseOiliness)),
	askRule("ask_pore_size", 70, 0.8, "pore_size", inPhase(models.PhaseOiliness)),
	askRule("ask_menstrual_cycle_acne_from_oiliness", 85, 0.75, "menstrual_cycle_acne", func(e *Engine) bool {
		return e.store.AnswerValue("t_zone_oiliness", 1) >= 4 && e.store.HasChoice("gender", 2)
	}),
	transition("move_to_sensitivity", 65, 0.9, models.PhaseSensitivity, func(e *Engine) bool {
		return e.store.Phase() == models.PhaseOiliness &&
			e.store.Asked("t_zone_oiliness") && e.store.Asked("cheek_oiliness") &&
			e.store.Asked("pore_size")
	}),

	// ---- Sensitivity ----
	askRule("ask_product_sensitivity", 80, 0.85, "product_sensitivity", inPhase(models.PhaseSensitivity)),
	askRule("ask_environmental_sensitivity", 75, 0.8, "environmental_sensitivity", func(e *Engine) bool {
		return e.store.AnswerValue("product_sensitivity", 1) > 1
	}),
	askRule("ask_fragrance_sensitivity", 75, 0.8, "fragrance_sensitivity", func(e *Engine) bool {
		return e.store.Phase() == models.PhaseSensitivity &&
			e.store.AnswerValue("product_sensitivity", 1) >= 3
	}),
	askRule("ask_preservative_sensitivity", 70, 0.75, "preservative_sensitivity", func(e *Engine) bool {
		return e.store.Phase() == models.PhaseSensitivity && e.store.Asked("fragrance_sensitivity")
	}),
	askRule("ask_metal_sensitivity", 70, 0.75, "metal_sensitivity", func(e *Engine) bool {
		return e.store.Phase() == models.PhaseSensitivity && e.store.Asked("preservative_sensitivity")
	}),
	askRule("ask_botanical_sensitivity", 70, 0.7, "botanical_sensitivity", func(e *Engine) bool {
		return e.store.Phase() == models.PhaseSensitivity && e.store.Asked("metal_sensitivity")
	}),
	transition("move_to_hydration", 60, 0.9, models.PhaseHydration, func(e *Engine) bool {
		if e.store.Phase() != models.PhaseSensitivity || !e.store.Answered("product_sensitivity") {
			return false
		}
		v := e.store.AnswerValue("product_sensitivity", 1)
		if v > 1 && !e.store.Asked("environmental_sensitivity") {
			return false
		}
		if v >= 3 && !e.store.Asked("botanical_sensitivity") {
			return false
		}
		return true
	}),

	// ---- Hydration ----
	askRule("ask_dryness_feeling", 75, 0.85, "dryness_feeling", inPhase(models.PhaseHydration)),
	askRule("ask_moisturizer_response", 70, 0.8, "moisturizer_response", func(e *Engine) bool {
		return e.store.AnswerValue("dryness_feeling", 1) > 1
	}),
	transition("move_to_lifestyle", 65, 0.9, models.PhaseLifestyle, func(e *Engine) bool {
		if e.store.Phase() != models.PhaseHydration || !e.store.Asked("dryness_feeling") {
			return false
		}
		return e.store.HasChoice("dryness_feeling", 1) || e.store.Asked("moisturizer_response")
	}),

	// ---- Lifestyle ----
	// These are skipped when lifestyle data was injected up front, since
	// injection marks the questions asked.
	askRule("ask_sun_exposure", 75, 0.8, "sun_exposure", inPhase(models.PhaseLifestyle)),
	askRule("ask_stress_level", 75, 0.8, "stress_level", inPhase(models.PhaseLifestyle)),
	askRule("ask_sleep_quality", 75, 0.8, "sleep_quality", inPhase(models.PhaseLifestyle)),
	transition("move_to_analysis", 65, 0.95, models.PhaseAnalysis, func(e *Engine) bool {
		return e.store.Phase() == models.PhaseLifestyle &&
			e.store.Asked("sun_exposure") && e.store.Asked("stress_level") &&
			e.store.Asked("sleep_quality")
	}),

	// ---- Analysis ----
	{
		name: "calculate_condition_scores", salience: 90, cf: 0.9,
		when: func(e *Engine) bool {
			return e.store.Phase() == models.PhaseAnalysis &&
				!e.store.HasKind(models.KindConditionScore)
		},
		action: func(e *Engine) error {
			e.calculateScores()
			return nil
		},
	},
	{
		name: "determine_skin_profile", salience: 85, cf: 0.85,
		when: func(e *Engine) bool {
			return e.store.Phase() == models.PhaseAnalysis &&
				e.store.HasKind(models.KindConditionScore) &&
				!e.store.HasKind(models.KindProfile)
		},
		action: func(e *Engine) error {
			e.determineProfile()
			return nil
		},
	},
	{
		name: "generate_recommendations", salience: 80, cf: 0.9,
		when: func(e *Engine) bool {
			return e.store.Phase() == models.PhaseAnalysis &&
				e.store.HasKind(models.KindConditionScore) &&
				e.store.HasKind(models.KindProfile) &&
				!e.store.HasKind(models.KindRecommendations)
		},
		action: func(e *Engine) error {
			e.generateRecommendations()
			return nil
		},
	},
	transition("move_to_complete", 75, 1.0, models.PhaseComplete, func(e *Engine) bool {
		return e.store.Phase() == models.PhaseAnalysis &&
			e.store.HasKind(models.KindRecommendations)
	}),

	// ---- Completion ----
	{
		name: "assemble_report", salience: 100, cf: 1.0,
		when: func(e *Engine) bool {
			return e.store.Phase() == models.PhaseComplete && e.report == nil
		},
		action: func(e *Engine) error {
			e.buildReport()
			e.halted = true
			return nil
		},
	},
}
