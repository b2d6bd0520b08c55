// ABOUTME: Forward-chaining inference engine driving the adaptive questionnaire
// ABOUTME: Fires the highest-salience satisfiable rule until quiescence or a
// pending question suspends the run
package engine

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/omarZACK/Dermazeen/internal/analysis"
	"github.com/omarZACK/Dermazeen/internal/catalog"
	"github.com/omarZACK/Dermazeen/internal/models"
	"github.com/omarZACK/Dermazeen/internal/recommend"
)

// DefaultMaxIterations bounds a single run. The rule set converges in well
// under a hundred firings; hitting the ceiling means a guard regression.
const DefaultMaxIterations = 256

// Message is a diagnostic emitted by a rule action, surfaced to callers
// alongside the engine state.
type Message struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

type firing struct {
	rule string
	cf   float64
}

// Engine runs one assessment session. It is not safe for concurrent use.
type Engine struct {
	store      *FactStore
	catalog    catalog.Catalog
	thresholds analysis.Thresholds
	maxIter    int

	pending  *models.Question
	report   *models.FinalReport
	halted   bool
	firings  []firing
	messages []Message

	// analysis products, populated by the ANALYSIS phase rules
	scores   analysis.ScoreSet
	profile  models.SkinProfile
	severity analysis.SeverityResult
	recs     models.Recommendations
	referral bool

	exclusionsDerived bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithThresholds overrides the severity classification cut-offs.
func WithThresholds(th analysis.Thresholds) Option {
	return func(e *Engine) { e.thresholds = th }
}

// WithMaxIterations overrides the per-run firing ceiling.
func WithMaxIterations(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxIter = n
		}
	}
}

// New builds an engine over the given question catalog.
func New(cat catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		store:      NewFactStore(),
		catalog:    cat,
		thresholds: analysis.DefaultThresholds(),
		maxIter:    DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start begins the assessment at screening and runs until the first question
// is pending.
func (e *Engine) Start() error {
	e.store.Assert(models.PhaseFact(models.PhaseScreening))
	return e.run()
}

// Inject records an answer as if the user had already been asked, without
// running the rules. Used to preload profile and lifestyle data before or
// between runs; injecting an already-asked question is a no-op.
func (e *Engine) Inject(questionID string, values ...int) {
	if e.store.Asked(questionID) || len(values) == 0 {
		return
	}
	for _, v := range values {
		e.store.Assert(models.AnswerFact(questionID, v))
	}
	e.store.Assert(models.AskedFact(questionID))
}

// SubmitAnswer validates and records an answer, then resumes the rule loop.
// On a validation error no fact is asserted and the pending question is
// unchanged.
func (e *Engine) SubmitAnswer(questionID string, values []int) error {
	q, err := e.catalog.Get(questionID)
	if err != nil {
		return err
	}
	if err := validateAnswer(q, values); err != nil {
		return err
	}

	e.pending = nil
	e.store.RetractAnswers(questionID)
	for _, v := range values {
		e.store.Assert(models.AnswerFact(questionID, v))
	}
	if !e.store.Asked(questionID) {
		e.store.Assert(models.AskedFact(questionID))
	}
	return e.run()
}

// Replay rebuilds state from a stored answer log and runs once. The log is
// asserted in order; the resulting pending question is whatever the rules
// derive, which callers compare against their stored expectation.
func (e *Engine) Replay(answers []models.RecordedAnswer) error {
	e.store.Assert(models.PhaseFact(models.PhaseScreening))
	for _, a := range answers {
		e.store.RetractAnswers(a.QuestionID)
		for _, v := range a.Values {
			e.store.Assert(models.AnswerFact(a.QuestionID, v))
		}
		if !e.store.Asked(a.QuestionID) {
			e.store.Assert(models.AskedFact(a.QuestionID))
		}
	}
	return e.run()
}

func validateAnswer(q models.Question, values []int) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: no option selected for %s", models.ErrInvalidAnswer, q.ID)
	}
	if !q.MultiSelect() && len(values) > 1 {
		return fmt.Errorf("%w: %s accepts a single option", models.ErrInvalidAnswer, q.ID)
	}
	for _, v := range values {
		if v < 1 || (len(q.Options) > 0 && v > len(q.Options)) {
			return fmt.Errorf("%w: option %d out of range for %s", models.ErrInvalidAnswer, v, q.ID)
		}
	}
	return nil
}

// Pending returns the question awaiting an answer, or nil.
func (e *Engine) Pending() *models.Question {
	return e.pending
}

// Report returns the final report once the session is complete, or nil.
func (e *Engine) Report() *models.FinalReport {
	return e.report
}

// Phase returns the live questionnaire phase.
func (e *Engine) Phase() models.Phase {
	return e.store.Phase()
}

// Messages returns the diagnostics accumulated so far.
func (e *Engine) Messages() []Message {
	return e.messages
}

// State snapshots the session for callers.
func (e *Engine) State() models.EngineState {
	switch {
	case e.report != nil:
		return models.EngineState{Status: models.StatusComplete, Report: e.report}
	case e.pending != nil:
		return models.EngineState{Status: models.StatusInProgress, PendingQuestion: e.pending}
	default:
		return models.EngineState{Status: models.StatusInProgress}
	}
}

// run fires rules until a question suspends the loop, no rule is satisfiable,
// or the iteration ceiling trips.
func (e *Engine) run() error {
	e.halted = false
	for i := 0; i < e.maxIter; i++ {
		r := e.nextRule()
		if r == nil {
			return nil
		}
		if err := r.action(e); err != nil {
			return &models.EngineError{Rule: r.name, Err: err}
		}
		e.firings = append(e.firings, firing{rule: r.name, cf: r.cf})
		if e.halted {
			return nil
		}
	}
	return &models.EngineError{Rule: "run", Err: errors.New("iteration ceiling reached")}
}

// nextRule picks the highest-salience rule whose guard holds. Equal salience
// resolves by declaration order.
func (e *Engine) nextRule() *rule {
	var best *rule
	for i := range ruleSet {
		r := &ruleSet[i]
		if best != nil && r.salience <= best.salience {
			continue
		}
		if r.when(e) {
			best = r
		}
	}
	return best
}

// ask resolves and presents a question, suspending the run. A catalog miss is
// recoverable: the question is marked asked so the loop can proceed without it.
func (e *Engine) ask(questionID string) error {
	if e.store.Asked(questionID) {
		return nil
	}
	q, err := e.catalog.Get(questionID)
	if err != nil {
		if errors.Is(err, models.ErrQuestionNotFound) {
			e.logf("error", "question %s not found in catalog", questionID)
			e.store.Assert(models.AskedFact(questionID))
			return nil
		}
		return err
	}
	e.pending = &q
	e.store.Assert(models.AskedFact(questionID))
	e.halted = true
	return nil
}

func (e *Engine) changePhase(p models.Phase) {
	e.store.RetractKind(models.KindPhase)
	e.store.Assert(models.PhaseFact(p))
}

func (e *Engine) logf(level, format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	e.messages = append(e.messages, Message{Level: level, Text: text})
	log.Printf("[%s] %s", level, text)
}

func (e *Engine) answerSnapshot() analysis.Answers {
	return analysis.Answers(e.store.AnswerMap())
}

// deriveExclusions rules out conditions the screening answer did not name.
// Selecting "no specific problems" excludes everything.
func (e *Engine) deriveExclusions() {
	e.exclusionsDerived = true
	screeningConditions := map[string]int{
		analysis.Vitiligo:          2,
		analysis.Rosacea:           3,
		analysis.Eczema:            4,
		analysis.Psoriasis:         5,
		analysis.SevereAcne:        6,
		analysis.ContactDermatitis: 7,
		analysis.Melasma:           8,
	}
	if e.store.HasChoice("screening_main", 1) {
		for cond := range screeningConditions {
			e.store.Assert(models.ExcludedFact(cond))
		}
		return
	}
	for cond, choice := range screeningConditions {
		if !e.store.HasChoice("screening_main", choice) {
			e.store.Assert(models.ExcludedFact(cond))
		}
	}
}

// buildReport assembles the final report from the analysis products. Excluded
// conditions never appear in the findings, and when nothing significant
// remains the classification downgrades to HEALTHY.
func (e *Engine) buildReport() {
	maxWeighted := 0.0
	var findings []models.ConditionFinding
	for _, cond := range analysis.Conditions {
		if e.store.IsExcluded(cond) {
			continue
		}
		s := e.scores[cond]
		w := s.Weighted()
		if w > maxWeighted {
			maxWeighted = w
		}
		if s.Value() <= 0 || w < 10 {
			continue
		}
		findings = append(findings, models.ConditionFinding{
			Name:          displayName(cond),
			RawScore:      s.Value(),
			Confidence:    s.CF,
			WeightedScore: w,
			RiskLevel:     riskLevel(w),
		})
	}
	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].WeightedScore > findings[j].WeightedScore
	})

	overall := models.OverallAssessment{
		Severity:         e.severity.Severity,
		Classification:   e.severity.Classification,
		PrimaryCondition: e.severity.PrimaryCondition,
	}
	referral := models.MedicalReferral{Required: e.referral}

	switch {
	case maxWeighted < 10 && !e.referral:
		overall.Classification = models.ClassificationHealthy
		overall.PrimaryCondition = "none"
		overall.StatusMessage = "HEALTHY - No significant skin conditions detected"
	case e.severity.Classification == models.ClassificationSevere || e.referral:
		overall.StatusMessage = "PROFESSIONAL MEDICAL ATTENTION REQUIRED"
	case e.severity.Classification == models.ClassificationModerate:
		overall.StatusMessage = "MODERATE CONDITION DETECTED - Monitor closely"
	default:
		overall.StatusMessage = "MILD CONDITION DETECTED - Manageable with proper care"
	}

	if e.referral {
		referral.Message = "MEDICAL REFERRAL REQUIRED"
		if e.recs.Referral != nil {
			referral.Reasons = e.recs.Referral.Reasons
		}
	}

	var totalCF float64
	for _, f := range e.firings {
		totalCF += f.cf
	}
	metrics := models.ConfidenceMetrics{RulesFired: len(e.firings)}
	if len(e.firings) > 0 {
		metrics.AverageCF = totalCF / float64(len(e.firings))
	}

	e.report = &models.FinalReport{
		MedicalReferral:   referral,
		Overall:           overall,
		Conditions:        findings,
		SkinProfile:       e.profile,
		Recommendations:   e.recs,
		ConfidenceMetrics: metrics,
		GeneratedAt:       time.Now().UTC(),
		Disclaimers: []string{
			"This analysis is educational only, not a medical diagnosis.",
			"Consult healthcare professionals for medical concerns.",
		},
	}

	e.logf("info", "analysis completed: %s condition detected", strings.ToLower(overall.Classification))
	if e.referral {
		e.logf("warning", "medical referral required")
	}
}

func riskLevel(weighted float64) string {
	switch {
	case weighted >= 70:
		return "High likelihood"
	case weighted >= 40:
		return "Moderate likelihood"
	case weighted >= 20:
		return "Low-moderate likelihood"
	default:
		return "Low likelihood"
	}
}

// displayName turns a condition key like "severe_acne" into "Severe Acne".
func displayName(cond string) string {
	parts := strings.Split(cond, "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

// runAnalysis computes scores, profile and recommendations. Split across
// three rules so each product is asserted as its own working-memory fact.
func (e *Engine) calculateScores() {
	answers := e.answerSnapshot()
	e.scores = analysis.ScoreConditions(answers)
	for _, cond := range analysis.Conditions {
		s := e.scores[cond]
		e.store.Assert(models.Fact{
			Kind:      models.KindConditionScore,
			Condition: cond,
			Score:     s.Value(),
			CF:        s.CF,
		})
	}
}

func (e *Engine) determineProfile() {
	e.profile = analysis.BuildProfile(e.answerSnapshot())
	e.store.Assert(models.Fact{
		Kind:        models.KindProfile,
		SkinType:    e.profile.Type,
		Sensitivity: e.profile.Sensitivity,
		Hydration:   e.profile.Hydration,
	})
}

func (e *Engine) generateRecommendations() {
	answers := e.answerSnapshot()
	e.severity = analysis.DetermineSeverity(e.scores, answers, e.thresholds)
	e.referral = e.store.HasKind(models.KindReferral) || e.severity.AutoReferral
	if e.referral {
		// A referral fact overrides the score-derived ladder.
		e.severity.Severity = "severe"
		e.severity.Classification = models.ClassificationSevere
	}

	e.recs = recommend.Generate(recommend.Input{
		Classification:   e.severity.Classification,
		PrimaryCondition: e.severity.PrimaryCondition,
		Profile:          e.profile,
		Answers:          answers,
		Scores:           e.scores,
		ReferralRequired: e.referral,
	})
	e.store.Assert(models.Fact{Kind: models.KindRecommendations})
}
