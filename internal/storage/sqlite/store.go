// ABOUTME: SQLite implementation of the assessment Store
// ABOUTME: Answer values and reports are serialized as JSON columns
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/omarZACK/Dermazeen/internal/models"
	"github.com/omarZACK/Dermazeen/internal/storage"
)

// Store persists assessments in SQLite.
type Store struct {
	db *DB
}

// NewStore opens (or creates) the database at path.
func NewStore(path string) (*Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// NewStoreInMemory creates an in-memory store (for testing).
func NewStoreInMemory() (*Store, error) {
	db, err := OpenInMemory()
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateAssessment inserts a new session record.
func (s *Store) CreateAssessment(rec *storage.AssessmentRecord) error {
	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	_, err := s.db.Exec(`
		INSERT INTO assessments (id, status, current_phase, pending_question_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.ID, string(rec.Status), string(rec.Phase), nullString(rec.PendingQuestionID),
		rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create assessment: %w", err)
	}
	return nil
}

// GetAssessment loads one session record.
func (s *Store) GetAssessment(id string) (*storage.AssessmentRecord, error) {
	var (
		rec         storage.AssessmentRecord
		status      string
		phase       string
		pending     sql.NullString
		completedAt sql.NullTime
	)
	err := s.db.QueryRow(`
		SELECT id, status, current_phase, pending_question_id, created_at, updated_at, completed_at
		FROM assessments
		WHERE id = ?
	`, id).Scan(&rec.ID, &status, &phase, &pending, &rec.CreatedAt, &rec.UpdatedAt, &completedAt)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load assessment: %w", err)
	}

	rec.Status = models.SessionStatus(status)
	rec.Phase = models.ParsePhase(phase)
	if pending.Valid {
		rec.PendingQuestionID = pending.String
	}
	if completedAt.Valid {
		t := completedAt.Time
		rec.CompletedAt = &t
	}
	return &rec, nil
}

// ListAssessments returns the most recent sessions, newest first.
func (s *Store) ListAssessments(limit int) ([]storage.AssessmentRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, status, current_phase, pending_question_id, created_at, updated_at, completed_at
		FROM assessments
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []storage.AssessmentRecord
	for rows.Next() {
		var (
			rec         storage.AssessmentRecord
			status      string
			phase       string
			pending     sql.NullString
			completedAt sql.NullTime
		)
		if err := rows.Scan(&rec.ID, &status, &phase, &pending,
			&rec.CreatedAt, &rec.UpdatedAt, &completedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assessment: %w", err)
		}
		rec.Status = models.SessionStatus(status)
		rec.Phase = models.ParsePhase(phase)
		if pending.Valid {
			rec.PendingQuestionID = pending.String
		}
		if completedAt.Valid {
			t := completedAt.Time
			rec.CompletedAt = &t
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// UpdateAssessment saves the mutable fields of a session record.
func (s *Store) UpdateAssessment(rec *storage.AssessmentRecord) error {
	rec.UpdatedAt = time.Now().UTC()
	var completedAt interface{}
	if rec.CompletedAt != nil {
		completedAt = *rec.CompletedAt
	}

	res, err := s.db.Exec(`
		UPDATE assessments
		SET status = ?, current_phase = ?, pending_question_id = ?, updated_at = ?, completed_at = ?
		WHERE id = ?
	`, string(rec.Status), string(rec.Phase), nullString(rec.PendingQuestionID),
		rec.UpdatedAt, completedAt, rec.ID)
	if err != nil {
		return fmt.Errorf("failed to update assessment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// AppendResponse adds one answer to the session's ordered log.
func (s *Store) AppendResponse(assessmentID string, answer models.RecordedAnswer) error {
	values, err := json.Marshal(answer.Values)
	if err != nil {
		return fmt.Errorf("failed to encode answer values: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO responses (assessment_id, question_id, answer_values, answered_at)
		VALUES (?, ?, ?, ?)
	`, assessmentID, answer.QuestionID, string(values), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to append response: %w", err)
	}
	return nil
}

// ListResponses returns the answer log in submission order.
func (s *Store) ListResponses(assessmentID string) ([]models.RecordedAnswer, error) {
	rows, err := s.db.Query(`
		SELECT question_id, answer_values
		FROM responses
		WHERE assessment_id = ?
		ORDER BY id ASC
	`, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.RecordedAnswer
	for rows.Next() {
		var (
			a      models.RecordedAnswer
			values string
		)
		if err := rows.Scan(&a.QuestionID, &values); err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		if err := json.Unmarshal([]byte(values), &a.Values); err != nil {
			return nil, fmt.Errorf("failed to decode answer values: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// SaveReport stores the final report, replacing any previous one.
func (s *Store) SaveReport(assessmentID string, report *models.FinalReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO reports (assessment_id, report_data, generated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(assessment_id) DO UPDATE SET
			report_data = excluded.report_data,
			generated_at = excluded.generated_at
	`, assessmentID, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// GetReport loads the final report, or ErrNotFound when none exists.
func (s *Store) GetReport(assessmentID string) (*models.FinalReport, error) {
	var data string
	err := s.db.QueryRow(`
		SELECT report_data FROM reports WHERE assessment_id = ?
	`, assessmentID).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load report: %w", err)
	}

	var report models.FinalReport
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return &report, nil
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
