package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/visapath/eligibility-backend/internal/casestudy"
	"github.com/visapath/eligibility-backend/internal/email"
	"github.com/visapath/eligibility-backend/internal/recommend"
	"github.com/visapath/eligibility-backend/internal/scoring"
	"github.com/visapath/eligibility-backend/internal/store"
)

// ReportContent is the composed written-report payload the worker stores.
// It is everything the paid report page renders: the scored assessment, the
// recommendation plan, matched cases with reasons, and the per-case gap
// analysis against the closest comparison.
type ReportContent struct {
	Assessment  scoring.Assessment   `json:"assessment"`
	Plan        recommend.Plan       `json:"plan"`
	Cases       []casestudy.Match    `json:"cases"`
	GapAnalysis []casestudy.Gap      `json:"gap_analysis,omitempty"`
	NextSteps   []string             `json:"next_steps"`
	Metrics     casestudy.Metrics    `json:"estimated_metrics"`
	Stats       map[string]int       `json:"strength_distribution"`
}

// Job holds the dependencies for the report generation pipeline. Each step is
// a separate method call so Run reads like a checklist.
type Job struct {
	store  *store.Store
	repo   *casestudy.Repository
	mailer email.Sender
	logger *slog.Logger
}

// NewJob constructs a Job with all required dependencies.
func NewJob(st *store.Store, repo *casestudy.Repository, mailer email.Sender, logger *slog.Logger) *Job {
	return &Job{
		store:  st,
		repo:   repo,
		mailer: mailer,
		logger: logger,
	}
}

// Run executes the full pipeline for a single report:
//
//  1. Load the report and its session.
//  2. Load the finalized assessment for the session.
//  3. Match comparison cases and build the recommendation plan.
//  4. Store the composed content and flip the report to ready.
//  5. Send the delivery email.
//
// Any error is returned to the Runner, which retries up to MaxRetries times
// before calling store.MarkReportFailed. The whole pipeline is deterministic,
// so a retry that overlaps a slow first attempt writes identical content.
func (j *Job) Run(ctx context.Context, reportID uuid.UUID) error {
	log := j.logger.With("report_id", reportID)
	log.Info("job: starting")

	report, err := j.store.ReportByID(ctx, reportID)
	if err != nil {
		return fmt.Errorf("job: get report: %w", err)
	}

	if _, err := j.store.SetReportProcessing(ctx, reportID); err != nil {
		return fmt.Errorf("job: claim report: %w", err)
	}

	session, err := j.store.SessionByID(ctx, report.SessionID)
	if err != nil {
		return fmt.Errorf("job: get session: %w", err)
	}

	assessment, err := j.store.AssessmentBySession(ctx, report.SessionID)
	if err != nil {
		return fmt.Errorf("job: get assessment: %w", err)
	}

	content, err := j.compose(session, assessment)
	if err != nil {
		return fmt.Errorf("job: compose content: %w", err)
	}

	final, err := j.store.SetReportReady(ctx, reportID, content)
	if err != nil {
		return fmt.Errorf("job: store content: %w", err)
	}

	log.Info("job: report ready",
		"visa_type", assessment.VisaType,
		"strength", assessment.Strength,
		"access_token", final.AccessToken,
	)

	// Email failure does not fail the job: the report is ready and reachable
	// through the access token.
	to := session.Email
	if to == "" {
		to = session.Profile.Email
	}
	if to == "" {
		log.Warn("job: session has no email address, skipping delivery email")
		return nil
	}
	if err := j.mailer.SendReportReady(ctx, email.ReportReadyParams{
		To:          to,
		VisaLabel:   assessment.VisaType.Display(),
		AccessToken: final.AccessToken,
	}); err != nil {
		log.Error("job: failed to send report email", "to", to, "error", err)
	}

	return nil
}

// compose assembles the deterministic report payload from the assessment.
func (j *Job) compose(session store.Session, a scoring.Assessment) (json.RawMessage, error) {
	field, _ := casestudy.ParseField(session.Profile.Field)

	matches := j.repo.RelevantCases(casestudy.Query{
		VisaType: a.VisaType,
		Strength: a.Strength,
		Field:    field,
	})

	userMetrics := casestudy.EstimatedMetrics(a.Strength)

	// Gap analysis runs against the first matched case, the headline
	// comparison on the report page.
	var gaps []casestudy.Gap
	if len(matches) > 0 {
		gaps = casestudy.GapAnalysis(matches[0].CaseStudy, userMetrics)
	}

	dist := make(map[string]int)
	for s, n := range j.repo.StrengthDistribution(a.VisaType) {
		dist[string(s)] = n
	}

	content := ReportContent{
		Assessment:  a,
		Plan:        recommend.Build(a),
		Cases:       matches,
		GapAnalysis: gaps,
		NextSteps:   casestudy.NextSteps(a.Strength),
		Metrics:     userMetrics,
		Stats:       dist,
	}

	payload, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("marshal report content: %w", err)
	}
	return payload, nil
}
