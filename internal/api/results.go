package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/visapath/eligibility-backend/internal/casestudy"
	"github.com/visapath/eligibility-backend/internal/scoring"
	"github.com/visapath/eligibility-backend/internal/store"
)

// ─── POST /api/session/:sessionID/finalize ────────────────────────────────────

type finalizeResponse struct {
	SessionID string `json:"session_id"`
	Strength  string `json:"strength"`
	Ready     bool   `json:"ready"`
}

// handleFinalize scores the session's current answer set and stores the
// assessment for the one-shot results view. Finalizing again after more
// answers is allowed; the newer assessment replaces the old one.
func (s *Server) handleFinalize(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromCtx(r.Context())

	if len(sess.Responses) == 0 {
		respondErr(w, http.StatusConflict, "no answers submitted yet")
		return
	}

	assessment := scoring.Evaluate(sess.VisaType, sess.Responses)

	if err := s.store.PutAssessment(r.Context(), sess.ID, assessment); err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("store assessment: %w", err))
		return
	}

	respond(w, http.StatusOK, finalizeResponse{
		SessionID: sess.ID.String(),
		Strength:  string(assessment.Strength),
		Ready:     true,
	})
}

// ─── GET /api/session/:sessionID/results ──────────────────────────────────────

type resultsResponse struct {
	Assessment  scoring.Assessment `json:"assessment"`
	Eligibility string             `json:"eligibility"`
	Cases       []casestudy.Match  `json:"cases"`
	NextSteps   []string           `json:"next_steps"`
}

// handleResults serves the free results view exactly once. The assessment is
// consumed on read: a refresh or a second visit gets 404 with a restart hint,
// which the frontend turns into the "take the assessment again" screen.
//
// The paid report pipeline is unaffected — it reads the assessment through a
// non-consuming path, so buying a report after viewing results still works.
func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromCtx(r.Context())

	assessment, err := s.store.TakeAssessment(r.Context(), sess.ID)
	if errors.Is(err, store.ErrNotFound) {
		respond(w, http.StatusNotFound, map[string]string{
			"error": "no results available",
			"hint":  "results can be viewed once; restart the assessment to generate new ones",
		})
		return
	}
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("take assessment: %w", err))
		return
	}

	field, _ := casestudy.ParseField(sess.Profile.Field)
	matches := s.cases.RelevantCases(casestudy.Query{
		VisaType: assessment.VisaType,
		Strength: assessment.Strength,
		Field:    field,
	})

	respond(w, http.StatusOK, resultsResponse{
		Assessment:  assessment,
		Eligibility: scoring.EligibilityLabel(assessment),
		Cases:       matches,
		NextSteps:   casestudy.NextSteps(assessment.Strength),
	})
}
