package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/visapath/eligibility-backend/internal/casestudy"
	"github.com/visapath/eligibility-backend/internal/catalog"
	"github.com/visapath/eligibility-backend/internal/store"
)

// ─── POST /api/session ────────────────────────────────────────────────────────

type createSessionRequest struct {
	// VisaType selects the question catalog: "EB1A", "O1A", or "NIW".
	VisaType string `json:"visa_type"`

	// Profile fields are optional at creation — the user can fill them later
	// via PATCH /profile.
	Field string `json:"field"`
	Email string `json:"email"`
}

type createSessionResponse struct {
	SessionID string `json:"session_id"`
	AnonToken string `json:"anon_token"`
	VisaType  string `json:"visa_type"`
	ExpiresAt string `json:"expires_at"`
}

// handleCreateSession creates an anonymous session for a new visitor.
// Called once when the assessment wizard first loads, after the user picks
// a visa type.
//
// The anon_token is returned to the browser and stored in sessionStorage.
// It is sent as X-Anon-Token on all subsequent session-scoped requests.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if !decode(w, r, &req) {
		return
	}

	visa := catalog.VisaType(req.VisaType)
	if !visa.Valid() {
		respondErr(w, http.StatusBadRequest, "visa_type must be one of: EB1A, O1A, NIW")
		return
	}

	if req.Field != "" {
		if _, err := casestudy.ParseField(req.Field); err != nil {
			respondErr(w, http.StatusBadRequest, "field must be one of: tech, biotech, fintech")
			return
		}
	}

	session, err := s.store.CreateSession(r.Context(), visa)
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("create session: %w", err))
		return
	}

	// If profile data was provided at creation time, persist it immediately.
	if req.Field != "" || req.Email != "" {
		session, err = s.store.UpdateProfile(r.Context(), session.ID, store.Profile{
			Field: req.Field,
			Email: req.Email,
		})
		if err != nil {
			s.respondInternalErr(w, r, fmt.Errorf("set initial profile: %w", err))
			return
		}
	}

	respond(w, http.StatusCreated, createSessionResponse{
		SessionID: session.ID.String(),
		AnonToken: session.AnonToken,
		VisaType:  string(session.VisaType),
		ExpiresAt: session.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// ─── PATCH /api/session/:sessionID/profile ────────────────────────────────────

type updateProfileRequest struct {
	Field string `json:"field"`
	Email string `json:"email"`
}

type updateProfileResponse struct {
	SessionID string `json:"session_id"`
	Field     string `json:"field"`
	Email     string `json:"email"`
}

// handleUpdateProfile persists the optional profile context. The route is
// protected by requireAnonToken middleware, so the session in the context is
// already verified to belong to the token sender. Empty fields in the request
// leave the stored values untouched.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromCtx(r.Context())

	var req updateProfileRequest
	if !decode(w, r, &req) {
		return
	}

	if req.Field != "" {
		if _, err := casestudy.ParseField(req.Field); err != nil {
			respondErr(w, http.StatusBadRequest, "field must be one of: tech, biotech, fintech")
			return
		}
	}

	session, err := s.store.UpdateProfile(r.Context(), sess.ID, store.Profile{
		Field: req.Field,
		Email: req.Email,
	})
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("update profile: %w", err))
		return
	}

	respond(w, http.StatusOK, updateProfileResponse{
		SessionID: session.ID.String(),
		Field:     session.Profile.Field,
		Email:     session.Profile.Email,
	})
}
