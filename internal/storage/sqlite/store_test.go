// ABOUTME: Tests for the SQLite assessment store
// ABOUTME: Verifies record CRUD, answer log ordering and report persistence
package sqlite

import (
	"errors"
	"testing"
	"time"

	"github.com/omarZACK/Dermazeen/internal/models"
	"github.com/omarZACK/Dermazeen/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStoreInMemory()
	if err != nil {
		t.Fatalf("NewStoreInMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestAssessmentRoundTrip(t *testing.T) {
	store := newTestStore(t)

	rec := &storage.AssessmentRecord{
		ID:                "test-001",
		Status:            models.StatusInProgress,
		Phase:             models.PhaseScreening,
		PendingQuestionID: "screening_main",
	}
	if err := store.CreateAssessment(rec); err != nil {
		t.Fatalf("CreateAssessment() error = %v", err)
	}

	got, err := store.GetAssessment("test-001")
	if err != nil {
		t.Fatalf("GetAssessment() error = %v", err)
	}
	if got.Status != models.StatusInProgress {
		t.Errorf("Status = %s, want in_progress", got.Status)
	}
	if got.Phase != models.PhaseScreening {
		t.Errorf("Phase = %s, want SCREENING", got.Phase)
	}
	if got.PendingQuestionID != "screening_main" {
		t.Errorf("PendingQuestionID = %s, want screening_main", got.PendingQuestionID)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
	if got.CompletedAt != nil {
		t.Error("CompletedAt set for new record")
	}
}

func TestGetAssessmentNotFound(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.GetAssessment("nope"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestUpdateAssessment(t *testing.T) {
	store := newTestStore(t)

	rec := &storage.AssessmentRecord{
		ID:     "test-002",
		Status: models.StatusInProgress,
		Phase:  models.PhaseScreening,
	}
	if err := store.CreateAssessment(rec); err != nil {
		t.Fatalf("CreateAssessment() error = %v", err)
	}

	now := time.Now().UTC()
	rec.Status = models.StatusComplete
	rec.Phase = models.PhaseComplete
	rec.PendingQuestionID = ""
	rec.CompletedAt = &now
	if err := store.UpdateAssessment(rec); err != nil {
		t.Fatalf("UpdateAssessment() error = %v", err)
	}

	got, err := store.GetAssessment("test-002")
	if err != nil {
		t.Fatalf("GetAssessment() error = %v", err)
	}
	if got.Status != models.StatusComplete {
		t.Errorf("Status = %s, want complete", got.Status)
	}
	if got.CompletedAt == nil {
		t.Error("CompletedAt not persisted")
	}
	if got.PendingQuestionID != "" {
		t.Errorf("PendingQuestionID = %q, want empty", got.PendingQuestionID)
	}
}

func TestUpdateMissingAssessment(t *testing.T) {
	store := newTestStore(t)
	rec := &storage.AssessmentRecord{ID: "ghost", Status: models.StatusInProgress}
	if err := store.UpdateAssessment(rec); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestListAssessmentsNewestFirst(t *testing.T) {
	store := newTestStore(t)

	base := time.Now().UTC().Add(-time.Hour)
	for i, id := range []string{"a", "b", "c"} {
		rec := &storage.AssessmentRecord{
			ID:        id,
			Status:    models.StatusInProgress,
			Phase:     models.PhaseScreening,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.CreateAssessment(rec); err != nil {
			t.Fatalf("CreateAssessment(%s) error = %v", id, err)
		}
	}

	records, err := store.ListAssessments(2)
	if err != nil {
		t.Fatalf("ListAssessments() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].ID != "c" || records[1].ID != "b" {
		t.Errorf("order = %s, %s, want c, b", records[0].ID, records[1].ID)
	}
}

func TestResponseLogOrder(t *testing.T) {
	store := newTestStore(t)

	rec := &storage.AssessmentRecord{ID: "test-003", Status: models.StatusInProgress, Phase: models.PhaseScreening}
	if err := store.CreateAssessment(rec); err != nil {
		t.Fatalf("CreateAssessment() error = %v", err)
	}

	answers := []models.RecordedAnswer{
		{QuestionID: "screening_main", Values: []int{4}},
		{QuestionID: "condition_duration", Values: []int{3}},
		{QuestionID: "family_history", Values: []int{2, 4}},
	}
	for _, a := range answers {
		if err := store.AppendResponse("test-003", a); err != nil {
			t.Fatalf("AppendResponse(%s) error = %v", a.QuestionID, err)
		}
	}

	got, err := store.ListResponses("test-003")
	if err != nil {
		t.Fatalf("ListResponses() error = %v", err)
	}
	if len(got) != len(answers) {
		t.Fatalf("got %d responses, want %d", len(got), len(answers))
	}
	for i, a := range answers {
		if got[i].QuestionID != a.QuestionID {
			t.Errorf("response %d = %s, want %s", i, got[i].QuestionID, a.QuestionID)
		}
		if len(got[i].Values) != len(a.Values) {
			t.Errorf("response %d values = %v, want %v", i, got[i].Values, a.Values)
		}
	}
}

func TestReportRoundTrip(t *testing.T) {
	store := newTestStore(t)

	rec := &storage.AssessmentRecord{ID: "test-004", Status: models.StatusComplete, Phase: models.PhaseComplete}
	if err := store.CreateAssessment(rec); err != nil {
		t.Fatalf("CreateAssessment() error = %v", err)
	}

	report := &models.FinalReport{
		Overall: models.OverallAssessment{
			Severity:         "mild",
			Classification:   models.ClassificationMild,
			PrimaryCondition: "rosacea",
		},
		Conditions: []models.ConditionFinding{
			{Name: "Rosacea", RawScore: 42, Confidence: 0.9, WeightedScore: 37.8, RiskLevel: "Low-moderate likelihood"},
		},
		GeneratedAt: time.Now().UTC(),
	}
	if err := store.SaveReport("test-004", report); err != nil {
		t.Fatalf("SaveReport() error = %v", err)
	}

	got, err := store.GetReport("test-004")
	if err != nil {
		t.Fatalf("GetReport() error = %v", err)
	}
	if got.Overall.PrimaryCondition != "rosacea" {
		t.Errorf("PrimaryCondition = %s, want rosacea", got.Overall.PrimaryCondition)
	}
	if len(got.Conditions) != 1 || got.Conditions[0].Name != "Rosacea" {
		t.Errorf("Conditions = %v", got.Conditions)
	}

	// Saving again replaces the stored report.
	report.Overall.Severity = "moderate"
	if err := store.SaveReport("test-004", report); err != nil {
		t.Fatalf("SaveReport() second call error = %v", err)
	}
	got, err = store.GetReport("test-004")
	if err != nil {
		t.Fatalf("GetReport() error = %v", err)
	}
	if got.Overall.Severity != "moderate" {
		t.Errorf("Severity = %s after upsert, want moderate", got.Overall.Severity)
	}
}

func TestGetReportNotFound(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.GetReport("nope"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
