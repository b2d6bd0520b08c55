// ABOUTME: Tests for recommendation generation
// ABOUTME: Covers the referral/routine split, condition treatments and tips
package recommend

import (
	"strings"
	"testing"

	"github.com/omarZACK/Dermazeen/internal/analysis"
	"github.com/omarZACK/Dermazeen/internal/models"
)

func containsSubstring(lines []string, substr string) bool {
	for _, line := range lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func TestReferralReplacesRoutine(t *testing.T) {
	out := Generate(Input{
		Classification:   models.ClassificationSevere,
		PrimaryCondition: analysis.Eczema,
		ReferralRequired: true,
		Answers:          analysis.Answers{},
		Scores:           make(analysis.ScoreSet),
	})

	if out.Routine != nil {
		t.Error("Routine set alongside a referral")
	}
	if out.Referral == nil {
		t.Fatal("Referral = nil")
	}
	if out.Referral.Message != "MEDICAL ATTENTION REQUIRED" {
		t.Errorf("Message = %q", out.Referral.Message)
	}
	if !containsSubstring(out.Referral.Reasons, "facial area") {
		t.Errorf("Reasons = %v, want facial eczema reason", out.Referral.Reasons)
	}
	if len(out.Referral.Instructions) == 0 || len(out.Referral.UrgencySigns) == 0 {
		t.Error("referral advice missing instructions or urgency signs")
	}
	if len(out.Lifestyle) == 0 {
		t.Error("lifestyle tips missing on referral branch")
	}
}

func TestSevereWithoutExplicitReferralStillRefers(t *testing.T) {
	out := Generate(Input{
		Classification: models.ClassificationSevere,
		Answers:        analysis.Answers{},
		Scores:         make(analysis.ScoreSet),
	})
	if out.Referral == nil {
		t.Fatal("Referral = nil for SEVERE classification")
	}
	if !containsSubstring(out.Referral.Reasons, "Severe skin condition") {
		t.Errorf("Reasons = %v", out.Referral.Reasons)
	}
}

func TestRoutineVariesBySkinType(t *testing.T) {
	base := Input{
		Classification: models.ClassificationMild,
		Answers:        analysis.Answers{},
		Scores:         make(analysis.ScoreSet),
	}

	dry := base
	dry.Profile = models.SkinProfile{Type: analysis.SkinDry}
	dryOut := Generate(dry)
	if !containsSubstring(dryOut.Routine.Morning, "cream cleanser") {
		t.Errorf("dry morning = %v, want cream cleanser", dryOut.Routine.Morning)
	}

	oily := base
	oily.Profile = models.SkinProfile{Type: analysis.SkinOily}
	oilyOut := Generate(oily)
	if !containsSubstring(oilyOut.Routine.Morning, "salicylic acid") {
		t.Errorf("oily morning = %v, want salicylic acid cleanser", oilyOut.Routine.Morning)
	}
}

func TestRoutineAlwaysIncludesSunscreen(t *testing.T) {
	out := Generate(Input{
		Classification: models.ClassificationMild,
		Answers:        analysis.Answers{},
		Scores:         make(analysis.ScoreSet),
	})
	if !containsSubstring(out.Routine.Morning, "SPF 30+") {
		t.Errorf("Morning = %v, want sunscreen step", out.Routine.Morning)
	}
}

func TestHighSensitivityNotes(t *testing.T) {
	out := Generate(Input{
		Classification: models.ClassificationMild,
		Profile:        models.SkinProfile{Sensitivity: "High"},
		Answers:        analysis.Answers{},
		Scores:         make(analysis.ScoreSet),
	})
	if !containsSubstring(out.Routine.Notes, "PATCH TEST") {
		t.Errorf("Notes = %v, want patch test note", out.Routine.Notes)
	}
}

func TestPregnancyMelasmaAvoidsRetinoids(t *testing.T) {
	out := Generate(Input{
		Classification:   models.ClassificationMild,
		PrimaryCondition: analysis.Melasma,
		Answers: analysis.Answers{
			"gender":                     {2},
			"melasma_pregnancy_hormones": {2},
		},
		Scores: make(analysis.ScoreSet),
	})
	if !containsSubstring(out.Routine.Notes, "Avoid retinoids and hydroquinone") {
		t.Errorf("Notes = %v, want pregnancy caution", out.Routine.Notes)
	}
}

func TestMaleMelasmaNote(t *testing.T) {
	out := Generate(Input{
		Classification:   models.ClassificationMild,
		PrimaryCondition: analysis.Melasma,
		Answers:          analysis.Answers{"gender": {1}},
		Scores:           make(analysis.ScoreSet),
	})
	if !containsSubstring(out.Routine.Notes, "rare in men") {
		t.Errorf("Notes = %v, want male melasma note", out.Routine.Notes)
	}
}

func TestHormonalAcneTreatment(t *testing.T) {
	out := Generate(Input{
		Classification:   models.ClassificationModerate,
		PrimaryCondition: analysis.SevereAcne,
		Answers: analysis.Answers{
			"gender":                 {2},
			"menstrual_cycle_acne":   {3},
			"hormonal_birth_control": {2},
		},
		Scores: make(analysis.ScoreSet),
	})
	if !containsSubstring(out.Routine.Notes, "HORMONAL ACNE") {
		t.Errorf("Notes = %v, want hormonal acne note", out.Routine.Notes)
	}
	if !containsSubstring(out.Routine.Notes, "birth control") {
		t.Errorf("Notes = %v, want birth control review note", out.Routine.Notes)
	}
}

func TestEczemaTriggerAvoidance(t *testing.T) {
	out := Generate(Input{
		Classification:   models.ClassificationMild,
		PrimaryCondition: analysis.Eczema,
		Answers:          analysis.Answers{"eczema_triggers": {1, 4}},
		Scores:           make(analysis.ScoreSet),
	})
	var found string
	for _, note := range out.Routine.Notes {
		if strings.HasPrefix(note, "AVOID TRIGGERS:") {
			found = note
		}
	}
	if !strings.Contains(found, "harsh soaps") || !strings.Contains(found, "stress") {
		t.Errorf("trigger note = %q, want harsh soaps and stress", found)
	}
}

func TestAllergenNotesCapAvoidList(t *testing.T) {
	allergens := models.AllergenProfile{
		HighRisk: []string{"fragrances", "preservatives"},
		AvoidIngredients: []string{
			"parfum", "fragrance", "essential oils", "citrus oils",
			"parabens", "formaldehyde releasers", "methylisothiazolinone",
		},
	}
	out := Generate(Input{
		Classification: models.ClassificationMild,
		Profile:        models.SkinProfile{Allergens: allergens},
		Answers:        analysis.Answers{},
		Scores:         make(analysis.ScoreSet),
	})

	if !containsSubstring(out.Routine.Notes, "ALLERGEN SENSITIVITIES DETECTED") {
		t.Fatal("allergen header missing")
	}
	if !containsSubstring(out.Routine.Notes, "...and 2 more") {
		t.Errorf("Notes = %v, want truncated avoid list", out.Routine.Notes)
	}
}

func TestLifestyleTipsScaleWithAnswers(t *testing.T) {
	out := Generate(Input{
		Classification: models.ClassificationMild,
		Answers: analysis.Answers{
			"sun_exposure":  {4},
			"stress_level":  {4},
			"sleep_quality": {4},
		},
		Scores: make(analysis.ScoreSet),
	})

	if !containsSubstring(out.Lifestyle, "High sun exposure") {
		t.Error("missing sun exposure tip")
	}
	if !containsSubstring(out.Lifestyle, "High stress") {
		t.Error("missing stress tip")
	}
	if !containsSubstring(out.Lifestyle, "sleep") {
		t.Error("missing sleep tip")
	}
}

func TestDietTipKeyedOnRawScore(t *testing.T) {
	scores := make(analysis.ScoreSet)
	scores[analysis.Rosacea] = analysis.Score{Raw: 50, CF: 0.3} // weighted only 15

	out := Generate(Input{
		Classification: models.ClassificationMild,
		Answers:        analysis.Answers{},
		Scores:         scores,
	})
	if !containsSubstring(out.Lifestyle, "spicy foods") {
		t.Errorf("Lifestyle = %v, want rosacea diet tip", out.Lifestyle)
	}
}

func TestLifestyleAlwaysEndsWithAntioxidantTip(t *testing.T) {
	out := Generate(Input{
		Classification: models.ClassificationMild,
		Answers:        analysis.Answers{},
		Scores:         make(analysis.ScoreSet),
	})
	last := out.Lifestyle[len(out.Lifestyle)-1]
	if !strings.Contains(last, "antioxidants") {
		t.Errorf("last tip = %q, want antioxidant advice", last)
	}
}
