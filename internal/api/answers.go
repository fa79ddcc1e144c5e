package api

import (
	"fmt"
	"net/http"

	"github.com/visapath/eligibility-backend/internal/catalog"
	"github.com/visapath/eligibility-backend/internal/scoring"
)

// ─── PUT /api/session/:sessionID/answers ─────────────────────────────────────
//
// Accepts the full current answer set and replaces the stored one wholesale.
// The browser sends everything on each navigation, so replaying the same
// payload is always safe and there is no per-question merge to reason about.

type replaceAnswersRequest struct {
	// Responses maps question ID to the selected option's point value (0–3).
	// Supplemental keys outside the question catalog (e.g. citation_count,
	// geographic_scope) are accepted too; scoring ignores them and the
	// recommendation engine reads them.
	Responses map[string]int `json:"responses"`
}

type replaceAnswersResponse struct {
	SessionID string `json:"session_id"`
	Stored    int    `json:"stored"`
}

// handleReplaceAnswers replaces the session's response set.
func (s *Server) handleReplaceAnswers(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromCtx(r.Context())

	var req replaceAnswersRequest
	if !decode(w, r, &req) {
		return
	}

	if len(req.Responses) == 0 {
		respondErr(w, http.StatusBadRequest, "responses must not be empty")
		return
	}
	if len(req.Responses) > 100 {
		respondErr(w, http.StatusBadRequest, "too many responses in a single request (max 100)")
		return
	}

	for id, v := range req.Responses {
		if id == "" {
			respondErr(w, http.StatusBadRequest, "each response must have a non-empty question id")
			return
		}
		if v < 0 {
			respondErr(w, http.StatusBadRequest, fmt.Sprintf("response %q must not be negative", id))
			return
		}
		// Catalog questions are bounded by the option scale; supplemental keys
		// like citation_count carry free-form magnitudes.
		if catalogQuestion(sess.VisaType, id) && v > catalog.MaxOptionValue {
			respondErr(w, http.StatusBadRequest,
				fmt.Sprintf("response %q exceeds the maximum option value %d", id, catalog.MaxOptionValue))
			return
		}
	}

	session, err := s.store.PutAnswers(r.Context(), sess.ID, scoring.Responses(req.Responses))
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("store answers: %w", err))
		return
	}

	respond(w, http.StatusOK, replaceAnswersResponse{
		SessionID: session.ID.String(),
		Stored:    len(session.Responses),
	})
}

// catalogQuestion reports whether id belongs to the visa's question catalog.
func catalogQuestion(visa catalog.VisaType, id string) bool {
	cat := catalog.ForVisa(visa)
	if cat == nil {
		return false
	}
	for _, qid := range cat.QuestionIDs() {
		if qid == id {
			return true
		}
	}
	return false
}
