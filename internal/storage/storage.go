// ABOUTME: Persistence contract for assessment sessions
// ABOUTME: Records, answer logs and final reports survive process restarts
package storage

import (
	"errors"
	"time"

	"github.com/omarZACK/Dermazeen/internal/models"
)

// ErrNotFound is returned when an assessment id does not exist.
var ErrNotFound = errors.New("assessment not found")

// AssessmentRecord is the durable state of one session. The answer log lives
// in its own table; engine state is reconstructed by replay, never stored.
type AssessmentRecord struct {
	ID                string
	Status            models.SessionStatus
	Phase             models.Phase
	PendingQuestionID string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	CompletedAt       *time.Time
}

// Store persists assessments, their answer logs and final reports.
type Store interface {
	CreateAssessment(rec *AssessmentRecord) error
	GetAssessment(id string) (*AssessmentRecord, error)
	ListAssessments(limit int) ([]AssessmentRecord, error)
	UpdateAssessment(rec *AssessmentRecord) error

	// AppendResponse adds one answer to the ordered log.
	AppendResponse(assessmentID string, answer models.RecordedAnswer) error
	// ListResponses returns the answer log in submission order.
	ListResponses(assessmentID string) ([]models.RecordedAnswer, error)

	SaveReport(assessmentID string, report *models.FinalReport) error
	GetReport(assessmentID string) (*models.FinalReport, error)

	Close() error
}
