// ABOUTME: Tests for condition scoring and confidence combination
// ABOUTME: Verifies point accumulation, caps and the male melasma floor
package analysis

import (
	"math"
	"testing"
)

func TestScoreConditionsEmpty(t *testing.T) {
	scores := ScoreConditions(Answers{})
	for _, cond := range Conditions {
		s, ok := scores[cond]
		if !ok {
			t.Errorf("missing score entry for %s", cond)
		}
		// Default answers score gender as male, which nudges melasma negative.
		if cond != Melasma && s.Value() != 0 {
			t.Errorf("%s score = %v with no answers, want 0", cond, s.Value())
		}
	}
}

func TestConfidenceCombination(t *testing.T) {
	s := make(ScoreSet)
	s.add(Eczema, 30, 0.9)
	s.add(Eczema, 24, 0.9)

	got := s[Eczema]
	if got.Raw != 54 {
		t.Errorf("Raw = %v, want 54", got.Raw)
	}
	// 0.9 + 0.9*(1-0.9) = 0.99
	if math.Abs(got.CF-0.99) > 1e-9 {
		t.Errorf("CF = %v, want 0.99", got.CF)
	}
}

func TestConfidenceNeverExceedsOne(t *testing.T) {
	s := make(ScoreSet)
	for i := 0; i < 20; i++ {
		s.add(Rosacea, 1, 0.9)
	}
	if cf := s[Rosacea].CF; cf > 1.0 {
		t.Errorf("CF = %v, want <= 1.0", cf)
	}
}

func TestScoreCapsAtHundred(t *testing.T) {
	s := make(ScoreSet)
	s.add(Vitiligo, 80, 0.9)
	s.add(Vitiligo, 80, 0.9)
	if raw := s[Vitiligo].Raw; raw != 100 {
		t.Errorf("Raw = %v, want 100", raw)
	}
}

func TestMaleMelasmaFloorsAtZero(t *testing.T) {
	scores := ScoreConditions(Answers{"gender": {1}})
	s := scores[Melasma]
	if s.Raw >= 0 {
		t.Errorf("Raw = %v, want negative male adjustment", s.Raw)
	}
	if s.Value() != 0 {
		t.Errorf("Value() = %v, want 0", s.Value())
	}
	if s.Weighted() != 0 {
		t.Errorf("Weighted() = %v, want 0", s.Weighted())
	}
}

func TestVitiligoScoring(t *testing.T) {
	answers := Answers{
		"screening_main":    {2},
		"family_history":    {2},
		"vitiligo_spots":    {4},
		"vitiligo_location": {1, 3},
	}
	s := ScoreConditions(answers)[Vitiligo]

	// 30 screening + 20 family + 35 spots + 6 multi-location
	if s.Raw != 91 {
		t.Errorf("Raw = %v, want 91", s.Raw)
	}
	if s.CF < 0.9 {
		t.Errorf("CF = %v, want corroborated confidence above 0.9", s.CF)
	}
}

func TestHormonalAcneRequiresFemale(t *testing.T) {
	base := Answers{
		"menstrual_cycle_acne":   {4},
		"hormonal_birth_control": {2},
	}

	male := Answers{"gender": {1}}
	for k, v := range base {
		male[k] = v
	}
	if got := ScoreConditions(male)[SevereAcne].Value(); got != 0 {
		t.Errorf("male hormonal acne score = %v, want 0", got)
	}

	female := Answers{"gender": {2}}
	for k, v := range base {
		female[k] = v
	}
	// 20 cycle impact + 5 birth control
	if got := ScoreConditions(female)[SevereAcne].Value(); got != 25 {
		t.Errorf("female hormonal acne score = %v, want 25", got)
	}
}

func TestMelasmaPregnancyContribution(t *testing.T) {
	answers := Answers{
		"gender":                     {2},
		"age":                        {3},
		"melasma_patches":            {3},
		"melasma_pregnancy_hormones": {2},
	}
	s := ScoreConditions(answers)[Melasma]

	// 15 patches + 5 pregnant + 3 female baseline + 2 age band
	if s.Value() != 25 {
		t.Errorf("Value() = %v, want 25", s.Value())
	}
}

func TestMelasmaSunExposure(t *testing.T) {
	low := ScoreConditions(Answers{"gender": {2}, "sun_exposure": {2}})[Melasma].Value()
	moderate := ScoreConditions(Answers{"gender": {2}, "sun_exposure": {3}})[Melasma].Value()
	high := ScoreConditions(Answers{"gender": {2}, "sun_exposure": {5}})[Melasma].Value()

	if !(low < moderate && moderate < high) {
		t.Errorf("sun exposure scores not monotonic: %v, %v, %v", low, moderate, high)
	}
}
