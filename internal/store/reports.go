package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ─── TYPES ────────────────────────────────────────────────────────────────────

// ReportStatus is the lifecycle of a paid written report.
type ReportStatus string

const (
	ReportPending    ReportStatus = "pending"    // payment confirmed, waiting for a worker
	ReportProcessing ReportStatus = "processing" // a worker claimed it
	ReportReady      ReportStatus = "ready"      // content generated
	ReportFailed     ReportStatus = "failed"     // gave up after retries
)

// Report is one paid written-assessment order. It exists only after the
// Stripe webhook confirms payment. Content is the composed report payload
// written by the worker; the store treats it as opaque JSON.
type Report struct {
	ID          uuid.UUID
	SessionID   uuid.UUID
	AccessToken string
	Status      ReportStatus
	Email       string

	Content      json.RawMessage
	ErrorMessage string

	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time
}

// reportTTL is how long a finished report stays retrievable. Longer than the
// session TTL: the buyer paid for it.
const reportTTL = 7 * 24 * time.Hour

// ─── METHODS ─────────────────────────────────────────────────────────────────

// InitialiseReport is called by the Stripe webhook handler on
// payment_intent.succeeded. Under one lock it:
//
//  1. Resolves the session by PaymentIntent and marks it paid.
//  2. Checks whether a report already exists (idempotency guard).
//  3. Creates the report in pending status with a fresh access token.
//
// A duplicate webhook delivery hits the guard and gets
// ErrReportAlreadyExists together with the existing report; the caller logs
// it at debug level and returns HTTP 200 to Stripe.
func (s *Store) InitialiseReport(_ context.Context, paymentIntent string) (Report, error) {
	token, err := newToken()
	if err != nil {
		return Report{}, fmt.Errorf("InitialiseReport: generate access token: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sessID, ok := s.sessionByPaymentPI[paymentIntent]
	if !ok {
		return Report{}, ErrNotFound
	}
	sess := s.sessions[sessID]
	if sess == nil || s.expired(sess.ExpiresAt) {
		return Report{}, ErrNotFound
	}
	sess.Paid = true

	if repID, exists := s.reportBySession[sessID]; exists {
		if rep := s.reports[repID]; rep != nil {
			return *rep, ErrReportAlreadyExists
		}
	}

	now := s.now()
	rep := &Report{
		ID:          uuid.New(),
		SessionID:   sessID,
		AccessToken: token,
		Status:      ReportPending,
		Email:       sess.Email,
		CreatedAt:   now,
		UpdatedAt:   now,
		ExpiresAt:   now.Add(reportTTL),
	}
	s.reports[rep.ID] = rep
	s.reportByToken[token] = rep.ID
	s.reportBySession[sessID] = rep.ID
	return *rep, nil
}

// ReportByID looks a report up by its primary key. The worker's path.
func (s *Store) ReportByID(_ context.Context, id uuid.UUID) (Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rep := s.reports[id]
	if rep == nil || s.expired(rep.ExpiresAt) {
		return Report{}, ErrNotFound
	}
	return *rep, nil
}

// ReportByAccessToken resolves the opaque access token from the report URL.
func (s *Store) ReportByAccessToken(_ context.Context, token string) (Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.reportByToken[token]
	if !ok {
		return Report{}, ErrNotFound
	}
	rep := s.reports[id]
	if rep == nil || s.expired(rep.ExpiresAt) {
		return Report{}, ErrNotFound
	}
	return *rep, nil
}

// ListPendingReports returns every report still awaiting content: pending
// ones, plus processing ones whose claim may be stale after a restart. The
// worker's fallback poller re-enqueues them; re-generating a report is
// idempotent so a duplicate claim is harmless.
func (s *Store) ListPendingReports(_ context.Context) ([]Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Report
	for _, rep := range s.reports {
		if s.expired(rep.ExpiresAt) {
			continue
		}
		if rep.Status == ReportPending || rep.Status == ReportProcessing {
			out = append(out, *rep)
		}
	}
	return out, nil
}

// SetReportProcessing marks the report claimed by a worker. Idempotent for
// the status field; calling it on an already-processing report succeeds.
func (s *Store) SetReportProcessing(_ context.Context, id uuid.UUID) (Report, error) {
	return s.updateReport(id, func(rep *Report) {
		rep.Status = ReportProcessing
	})
}

// SetReportReady stores the composed report content and flips the status to
// ready. Overwrites any previous content: re-running a job produces the same
// deterministic payload.
func (s *Store) SetReportReady(_ context.Context, id uuid.UUID, content json.RawMessage) (Report, error) {
	return s.updateReport(id, func(rep *Report) {
		rep.Status = ReportReady
		rep.Content = content
		rep.ErrorMessage = ""
	})
}

// MarkReportFailed records a permanent failure with a descriptive message.
// Called by the worker after exhausting retries so the poller stops picking
// the report up.
func (s *Store) MarkReportFailed(_ context.Context, id uuid.UUID, reason string) (Report, error) {
	return s.updateReport(id, func(rep *Report) {
		rep.Status = ReportFailed
		rep.ErrorMessage = reason
	})
}

func (s *Store) updateReport(id uuid.UUID, mutate func(*Report)) (Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rep := s.reports[id]
	if rep == nil || s.expired(rep.ExpiresAt) {
		return Report{}, ErrNotFound
	}
	mutate(rep)
	rep.UpdatedAt = s.now()
	return *rep, nil
}
