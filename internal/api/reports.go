package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/visapath/eligibility-backend/internal/store"
)

// ─── GET /api/report/:accessToken ─────────────────────────────────────────────

type reportResponse struct {
	ReportID    string          `json:"report_id"`
	Status      string          `json:"status"`
	Content     json.RawMessage `json:"content"`
	GeneratedAt string          `json:"generated_at"`
	ExpiresAt   string          `json:"expires_at"`
}

// handleGetReport serves the completed written report. The access token is an
// opaque random string minted when payment is confirmed — no session
// authentication is needed. The buyer receives this link in their email.
//
// Returns 404 for an unknown or expired token. Returns 202 Accepted while the
// report is still being generated so the frontend can poll, and 500 when
// generation permanently failed.
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	accessToken := chi.URLParam(r, "accessToken")
	if accessToken == "" {
		respondErr(w, http.StatusBadRequest, "missing access token")
		return
	}

	report, err := s.store.ReportByAccessToken(r.Context(), accessToken)
	if errors.Is(err, store.ErrNotFound) {
		respondErr(w, http.StatusNotFound, "report not found")
		return
	}
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("get report: %w", err))
		return
	}

	switch report.Status {
	case store.ReportReady:
		// Fall through to the full response below.
	case store.ReportFailed:
		s.respondInternalErr(w, r, fmt.Errorf("report %s failed: %s", report.ID, report.ErrorMessage))
		return
	default:
		// Still pending or processing — tell the client to poll.
		respond(w, http.StatusAccepted, map[string]string{
			"status":  string(report.Status),
			"message": "report is being generated, please check back shortly",
		})
		return
	}

	respond(w, http.StatusOK, reportResponse{
		ReportID:    report.ID.String(),
		Status:      string(report.Status),
		Content:     report.Content,
		GeneratedAt: report.UpdatedAt.UTC().Format(time.RFC3339),
		ExpiresAt:   report.ExpiresAt.UTC().Format(time.RFC3339),
	})
}
