package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/visapath/eligibility-backend/internal/scoring"
)

// assessmentRecord stores the finalized assessment as serialized JSON, the
// way the original hand-off kept it as an opaque payload. Unmarshalling
// happens on read; a payload that no longer parses is treated the same as a
// missing one.
type assessmentRecord struct {
	payload   []byte
	consumed  bool
	expiresAt time.Time
}

// PutAssessment stores the scored assessment for a session, replacing any
// previous one. Finalizing twice is allowed; the newer result wins and the
// consumed flag resets.
func (s *Store) PutAssessment(_ context.Context, sessionID uuid.UUID, a scoring.Assessment) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("PutAssessment: marshal: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessions[sessionID]
	if sess == nil || s.expired(sess.ExpiresAt) {
		return ErrNotFound
	}
	s.assessments[sessionID] = &assessmentRecord{
		payload:   payload,
		expiresAt: sess.ExpiresAt,
	}
	return nil
}

// TakeAssessment returns the assessment for the results view and marks it
// consumed: the second read returns ErrNotFound, which the handler turns
// into the restart-assessment redirect. Absent, expired, already consumed
// and malformed payloads are all ErrNotFound — the caller cannot tell them
// apart, and must not.
func (s *Store) TakeAssessment(_ context.Context, sessionID uuid.UUID) (scoring.Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.assessments[sessionID]
	if rec == nil || rec.consumed || s.expired(rec.expiresAt) {
		return scoring.Assessment{}, ErrNotFound
	}

	var a scoring.Assessment
	if err := json.Unmarshal(rec.payload, &a); err != nil {
		delete(s.assessments, sessionID)
		return scoring.Assessment{}, ErrNotFound
	}

	rec.consumed = true
	return a, nil
}

// AssessmentBySession reads the assessment without consuming it. This is the
// report pipeline's path: checkout and the worker need the assessment after
// the user has already viewed their results.
func (s *Store) AssessmentBySession(_ context.Context, sessionID uuid.UUID) (scoring.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec := s.assessments[sessionID]
	if rec == nil || s.expired(rec.expiresAt) {
		return scoring.Assessment{}, ErrNotFound
	}

	var a scoring.Assessment
	if err := json.Unmarshal(rec.payload, &a); err != nil {
		return scoring.Assessment{}, ErrNotFound
	}
	return a, nil
}
