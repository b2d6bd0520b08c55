// ABOUTME: Session service wrapping the engine with durable persistence
// ABOUTME: Engine state is never stored; sessions resume by replaying answers
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/omarZACK/Dermazeen/internal/catalog"
	"github.com/omarZACK/Dermazeen/internal/engine"
	"github.com/omarZACK/Dermazeen/internal/models"
	"github.com/omarZACK/Dermazeen/internal/storage"
)

// Profile carries user-sourced data injected before the first question, so
// the questionnaire never re-asks what the caller already knows.
type Profile struct {
	// Gender is "M" or "F"; anything else is treated as undisclosed.
	Gender string
	// Age in years; 0 means unknown.
	Age int
	// SunExposure and StressLevel use the levels minimal/light/moderate/
	// high/very_high and very_low/low/moderate/high/very_high.
	SunExposure string
	StressLevel string
	// SleepHours per night; 0 means unknown.
	SleepHours int
}

// StartOptions configures a new session.
type StartOptions struct {
	Profile *Profile
	// ScreeningChoices pre-answers the screening question, typically from
	// the image classifier.
	ScreeningChoices []int
}

// Service manages assessment sessions. Live engines are cached per session;
// a session touched by another process is rebuilt by replay.
type Service struct {
	store   storage.Store
	catalog catalog.Catalog
	opts    []engine.Option

	mu      sync.Mutex
	engines map[string]*engine.Engine
}

// New builds a session service.
func New(store storage.Store, cat catalog.Catalog, opts ...engine.Option) *Service {
	return &Service{
		store:   store,
		catalog: cat,
		opts:    opts,
		engines: make(map[string]*engine.Engine),
	}
}

// Start creates a session, injects any caller-known answers, and runs to the
// first pending question (or straight to completion).
func (s *Service) Start(opts StartOptions) (string, models.EngineState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	rec := &storage.AssessmentRecord{
		ID:     id,
		Status: models.StatusInProgress,
		Phase:  models.PhaseScreening,
	}
	if err := s.store.CreateAssessment(rec); err != nil {
		return "", models.EngineState{}, err
	}

	eng := engine.New(s.catalog, s.opts...)

	// Injections go through the answer log so replay reproduces them.
	for _, inj := range s.injections(opts) {
		eng.Inject(inj.QuestionID, inj.Values...)
		if err := s.store.AppendResponse(id, inj); err != nil {
			return "", models.EngineState{}, err
		}
	}

	if err := eng.Start(); err != nil {
		s.markError(rec)
		return "", models.EngineState{}, err
	}

	s.engines[id] = eng
	state, err := s.sync(rec, eng)
	return id, state, err
}

// SubmitAnswer records an answer for the session's pending question and
// advances the engine. Validation failures leave the session unchanged.
func (s *Service) SubmitAnswer(id, questionID string, values []int) (models.EngineState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, eng, err := s.resume(id)
	if err != nil {
		return models.EngineState{}, err
	}

	if err := eng.SubmitAnswer(questionID, values); err != nil {
		if errors.Is(err, models.ErrInvalidAnswer) || errors.Is(err, models.ErrQuestionNotFound) {
			return models.EngineState{}, err
		}
		s.markError(rec)
		return models.EngineState{}, err
	}

	if err := s.store.AppendResponse(id, models.RecordedAnswer{
		QuestionID: questionID,
		Values:     values,
	}); err != nil {
		return models.EngineState{}, err
	}
	return s.sync(rec, eng)
}

// CurrentQuestion returns the pending question, or nil when the session is
// complete or errored.
func (s *Service) CurrentQuestion(id string) (*models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, eng, err := s.resume(id)
	if err != nil {
		return nil, err
	}
	return eng.Pending(), nil
}

// State returns the session snapshot.
func (s *Service) State(id string) (models.EngineState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.store.GetAssessment(id)
	if err != nil {
		return models.EngineState{}, err
	}
	if rec.Status == models.StatusComplete {
		report, err := s.store.GetReport(id)
		if err != nil {
			return models.EngineState{}, err
		}
		return models.EngineState{Status: models.StatusComplete, Report: report}, nil
	}

	_, eng, err := s.resume(id)
	if err != nil {
		return models.EngineState{}, err
	}
	return eng.State(), nil
}

// Report returns the final report for a completed session.
func (s *Service) Report(id string) (*models.FinalReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.store.GetAssessment(id)
	if err != nil {
		return nil, err
	}
	if rec.Status != models.StatusComplete {
		return nil, fmt.Errorf("assessment %s is not completed yet", id)
	}
	return s.store.GetReport(id)
}

// List returns the most recent sessions.
func (s *Service) List(limit int) ([]storage.AssessmentRecord, error) {
	return s.store.ListAssessments(limit)
}

// resume returns the live engine for the session, rebuilding it from the
// answer log if this process has not seen it yet. A rebuilt engine whose
// pending question disagrees with the stored one fails the session.
func (s *Service) resume(id string) (*storage.AssessmentRecord, *engine.Engine, error) {
	rec, err := s.store.GetAssessment(id)
	if err != nil {
		return nil, nil, err
	}

	if eng, ok := s.engines[id]; ok {
		return rec, eng, nil
	}

	answers, err := s.store.ListResponses(id)
	if err != nil {
		return nil, nil, err
	}

	eng := engine.New(s.catalog, s.opts...)
	if err := eng.Replay(answers); err != nil {
		s.markError(rec)
		return nil, nil, err
	}

	replayedPending := ""
	if q := eng.Pending(); q != nil {
		replayedPending = q.ID
	}
	if rec.Status == models.StatusInProgress && replayedPending != rec.PendingQuestionID {
		s.markError(rec)
		return nil, nil, fmt.Errorf("%w: expected question %q, replay derived %q",
			models.ErrReplayInconsistency, rec.PendingQuestionID, replayedPending)
	}

	s.engines[id] = eng
	return rec, eng, nil
}

// sync persists the engine's current phase, pending question and completion
// state onto the record, and returns the snapshot.
func (s *Service) sync(rec *storage.AssessmentRecord, eng *engine.Engine) (models.EngineState, error) {
	rec.Phase = eng.Phase()
	rec.PendingQuestionID = ""
	if q := eng.Pending(); q != nil {
		rec.PendingQuestionID = q.ID
	}

	if report := eng.Report(); report != nil {
		rec.Status = models.StatusComplete
		now := time.Now().UTC()
		rec.CompletedAt = &now
		if err := s.store.SaveReport(rec.ID, report); err != nil {
			return models.EngineState{}, err
		}
	}

	if err := s.store.UpdateAssessment(rec); err != nil {
		return models.EngineState{}, err
	}
	return eng.State(), nil
}

func (s *Service) markError(rec *storage.AssessmentRecord) {
	rec.Status = models.StatusError
	_ = s.store.UpdateAssessment(rec)
}

// injections translates the start options into pre-answered questions.
func (s *Service) injections(opts StartOptions) []models.RecordedAnswer {
	var out []models.RecordedAnswer
	if len(opts.ScreeningChoices) > 0 {
		out = append(out, models.RecordedAnswer{
			QuestionID: "screening_main",
			Values:     opts.ScreeningChoices,
		})
	}

	p := opts.Profile
	if p == nil {
		return out
	}

	switch p.Gender {
	case "M":
		out = append(out, models.RecordedAnswer{QuestionID: "gender", Values: []int{1}})
	case "F":
		out = append(out, models.RecordedAnswer{QuestionID: "gender", Values: []int{2}})
	}
	if p.Age > 0 {
		out = append(out, models.RecordedAnswer{QuestionID: "age", Values: []int{ageBucket(p.Age)}})
	}
	if v, ok := levelValue(p.SunExposure, sunLevels); ok {
		out = append(out, models.RecordedAnswer{QuestionID: "sun_exposure", Values: []int{v}})
	}
	if v, ok := levelValue(p.StressLevel, stressLevels); ok {
		out = append(out, models.RecordedAnswer{QuestionID: "stress_level", Values: []int{v}})
	}
	if v := sleepQuality(p.SleepHours); v > 0 {
		out = append(out, models.RecordedAnswer{QuestionID: "sleep_quality", Values: []int{v}})
	}
	return out
}

var sunLevels = map[string]int{
	"minimal": 1, "light": 2, "moderate": 3, "high": 4, "very_high": 5,
}

var stressLevels = map[string]int{
	"very_low": 1, "low": 2, "moderate": 3, "high": 4, "very_high": 5,
}

func levelValue(level string, levels map[string]int) (int, bool) {
	v, ok := levels[level]
	return v, ok
}

// ageBucket maps chronological age to the questionnaire's age groups.
func ageBucket(age int) int {
	switch {
	case age < 18:
		return 1
	case age <= 25:
		return 2
	case age <= 35:
		return 3
	case age <= 45:
		return 4
	default:
		return 5
	}
}

// sleepQuality converts sleep hours to the reversed quality scale the
// questionnaire uses (1 excellent .. 5 very poor). Returns 0 for unknown.
func sleepQuality(hours int) int {
	switch {
	case hours <= 0:
		return 0
	case hours <= 4:
		return 5
	case hours == 5:
		return 4
	case hours == 6:
		return 3
	case hours <= 8:
		return 2
	default:
		return 1
	}
}
