// ABOUTME: Tests for working-memory fact store
// ABOUTME: Verifies assertion, retraction and answer query helpers
package engine

import (
	"testing"

	"github.com/omarZACK/Dermazeen/internal/models"
)

func TestFactStoreAssertRetract(t *testing.T) {
	store := NewFactStore()

	h := store.Assert(models.AnswerFact("age", 3))
	if !store.Answered("age") {
		t.Error("Answered(age) = false after assert")
	}

	store.Retract(h)
	if store.Answered("age") {
		t.Error("Answered(age) = true after retract")
	}
}

func TestFactStorePhase(t *testing.T) {
	store := NewFactStore()

	if got := store.Phase(); got != "" {
		t.Errorf("Phase() = %q before any assertion, want empty", got)
	}

	store.Assert(models.PhaseFact(models.PhaseScreening))
	if got := store.Phase(); got != models.PhaseScreening {
		t.Errorf("Phase() = %q, want %q", got, models.PhaseScreening)
	}

	store.RetractKind(models.KindPhase)
	store.Assert(models.PhaseFact(models.PhaseBasicInfo))
	if got := store.Phase(); got != models.PhaseBasicInfo {
		t.Errorf("Phase() = %q after transition, want %q", got, models.PhaseBasicInfo)
	}
}

func TestFactStoreAskedVsAnswered(t *testing.T) {
	store := NewFactStore()

	store.Assert(models.AskedFact("gender"))
	if !store.Asked("gender") {
		t.Error("Asked(gender) = false")
	}
	if store.Answered("gender") {
		t.Error("Answered(gender) = true without an answer fact")
	}

	store.Assert(models.AnswerFact("gender", 2))
	if !store.Answered("gender") {
		t.Error("Answered(gender) = false after answer fact")
	}
}

func TestFactStoreChoiceQueries(t *testing.T) {
	store := NewFactStore()
	store.Assert(models.AnswerFact("family_history", 2))
	store.Assert(models.AnswerFact("family_history", 4))

	if !store.HasChoice("family_history", 2) {
		t.Error("HasChoice(2) = false")
	}
	if store.HasChoice("family_history", 3) {
		t.Error("HasChoice(3) = true, want false")
	}
	if !store.HasAnyChoice("family_history", 3, 4) {
		t.Error("HasAnyChoice(3,4) = false")
	}
	if store.HasExactChoice("family_history", 2) {
		t.Error("HasExactChoice(2) = true for a two-value answer")
	}

	store2 := NewFactStore()
	store2.Assert(models.AnswerFact("screening_main", 1))
	if !store2.HasExactChoice("screening_main", 1) {
		t.Error("HasExactChoice(1) = false for single-value answer")
	}
}

func TestFactStoreAnswerValue(t *testing.T) {
	store := NewFactStore()

	if got := store.AnswerValue("eczema_itching", 1); got != 1 {
		t.Errorf("AnswerValue fallback = %d, want 1", got)
	}

	store.Assert(models.AnswerFact("eczema_itching", 4))
	if got := store.AnswerValue("eczema_itching", 1); got != 4 {
		t.Errorf("AnswerValue = %d, want 4", got)
	}
}

func TestFactStoreReferralAndExclusion(t *testing.T) {
	store := NewFactStore()

	if store.HasReferral("eczema", "facial_involvement") {
		t.Error("HasReferral = true on empty store")
	}
	store.Assert(models.ReferralFact("eczema", "facial_involvement"))
	if !store.HasReferral("eczema", "facial_involvement") {
		t.Error("HasReferral = false after assert")
	}
	if store.HasReferral("eczema", "severe_symptoms") {
		t.Error("HasReferral matched a different reason")
	}

	store.Assert(models.ExcludedFact("psoriasis"))
	if !store.IsExcluded("psoriasis") {
		t.Error("IsExcluded(psoriasis) = false")
	}
	if store.IsExcluded("eczema") {
		t.Error("IsExcluded(eczema) = true, want false")
	}
}

func TestFactStoreAnswerMap(t *testing.T) {
	store := NewFactStore()
	store.Assert(models.AnswerFact("screening_main", 4))
	store.Assert(models.AnswerFact("family_history", 2))
	store.Assert(models.AnswerFact("family_history", 4))

	m := store.AnswerMap()
	if len(m) != 2 {
		t.Fatalf("AnswerMap() size = %d, want 2", len(m))
	}
	if got := m["family_history"]; len(got) != 2 {
		t.Errorf("family_history values = %v, want 2 entries", got)
	}
}

func TestRetractAnswersReplacesSelection(t *testing.T) {
	store := NewFactStore()
	store.Assert(models.AnswerFact("eczema_triggers", 1))
	store.Assert(models.AnswerFact("eczema_triggers", 2))

	store.RetractAnswers("eczema_triggers")
	if store.Answered("eczema_triggers") {
		t.Error("Answered = true after retracting all answers")
	}

	store.Assert(models.AnswerFact("eczema_triggers", 3))
	if got := store.Answers("eczema_triggers"); len(got) != 1 || got[0] != 3 {
		t.Errorf("Answers = %v, want [3]", got)
	}
	if store.HasChoice("eczema_triggers", 1) {
		t.Error("HasChoice(1) = true, want the old selection gone")
	}
	if got := store.AnswerValue("eczema_triggers", 1); got != 3 {
		t.Errorf("AnswerValue = %d, want 3", got)
	}
	if got := store.AnswerMap()["eczema_triggers"]; len(got) != 1 || got[0] != 3 {
		t.Errorf("AnswerMap entry = %v, want [3]", got)
	}
}
