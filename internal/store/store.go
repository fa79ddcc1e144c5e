// Package store holds all server-side state: anonymous sessions, finalized
// assessments, and paid report records. Everything lives in process memory
// with a TTL — there is no database, and an expired record is
// indistinguishable from one that never existed.
//
// Dependency rule: store imports catalog and scoring for its record types.
// It never imports api, worker, stripe, or email.
package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ─── ERRORS ──────────────────────────────────────────────────────────────────

// ErrNotFound is returned for any record that is absent, expired, or
// unreadable. Handlers translate it to a 404 with a restart hint; collapsing
// the three conditions means a client can never probe whether a session once
// existed.
var ErrNotFound = errors.New("store: not found")

// ErrPaymentIntentAlreadyAttached is returned when a session already has a
// Stripe PaymentIntent set. The checkout handler should treat this as a
// recoverable condition and return the existing client_secret to the browser
// rather than creating a second PaymentIntent.
var ErrPaymentIntentAlreadyAttached = errors.New("store: payment intent already attached to session")

// ErrReportAlreadyExists is returned by InitialiseReport when a report for
// the session already exists. The webhook handler should treat this as
// idempotent success — a duplicate delivery of payment_intent.succeeded must
// not create a second report.
var ErrReportAlreadyExists = errors.New("store: report already exists for session")

// ─── STORE ───────────────────────────────────────────────────────────────────

// DefaultTTL is how long sessions and everything hanging off them live
// without the janitor touching them. Generous enough to finish an assessment
// and complete checkout, short enough that abandoned sessions don't pile up.
const DefaultTTL = 24 * time.Hour

// Store is the in-memory state container. All maps are guarded by a single
// mutex; operations are short and never block on IO while holding it.
type Store struct {
	mu sync.RWMutex

	sessions           map[uuid.UUID]*Session
	sessionByToken     map[string]uuid.UUID
	sessionByPaymentPI map[string]uuid.UUID

	assessments map[uuid.UUID]*assessmentRecord

	reports         map[uuid.UUID]*Report
	reportByToken   map[string]uuid.UUID
	reportBySession map[uuid.UUID]uuid.UUID

	ttl time.Duration

	// now is swappable in tests to exercise expiry without sleeping.
	now func() time.Time
}

// New creates a Store. A non-positive ttl falls back to DefaultTTL.
func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions:           make(map[uuid.UUID]*Session),
		sessionByToken:     make(map[string]uuid.UUID),
		sessionByPaymentPI: make(map[string]uuid.UUID),
		assessments:        make(map[uuid.UUID]*assessmentRecord),
		reports:            make(map[uuid.UUID]*Report),
		reportByToken:      make(map[string]uuid.UUID),
		reportBySession:    make(map[uuid.UUID]uuid.UUID),
		ttl:                ttl,
		now:                time.Now,
	}
}

// StartJanitor sweeps expired records on the given interval until ctx is
// cancelled. Reads already treat expired records as missing; the janitor only
// reclaims memory. Run it in a goroutine from main.
func (s *Store) StartJanitor(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("store: janitor stopped")
			return
		case <-ticker.C:
			removed := s.sweep()
			if removed > 0 {
				logger.Debug("store: janitor swept expired sessions", "removed", removed)
			}
		}
	}
}

// sweep removes every expired session together with its assessment, and
// every expired report. Reports only exist after payment, so they carry
// their own deadline and outlive the session they came from — a buyer can
// still open the access link after the assessment session is gone.
func (s *Store) sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, sess := range s.sessions {
		if now.Before(sess.ExpiresAt) {
			continue
		}
		s.dropSessionLocked(id, sess)
		removed++
	}
	for id, rep := range s.reports {
		if now.Before(rep.ExpiresAt) {
			continue
		}
		s.dropReportLocked(id, rep)
		removed++
	}
	return removed
}

func (s *Store) dropSessionLocked(id uuid.UUID, sess *Session) {
	delete(s.sessions, id)
	delete(s.sessionByToken, sess.AnonToken)
	delete(s.assessments, id)
	if sess.PaymentIntent != "" {
		delete(s.sessionByPaymentPI, sess.PaymentIntent)
	}
}

func (s *Store) dropReportLocked(id uuid.UUID, rep *Report) {
	delete(s.reports, id)
	delete(s.reportByToken, rep.AccessToken)
	delete(s.reportBySession, rep.SessionID)
}

// expired is the shared liveness check. Callers hold at least a read lock.
func (s *Store) expired(deadline time.Time) bool {
	return !s.now().Before(deadline)
}

// newToken returns a 32-byte random token, hex encoded. Tokens are bearer
// credentials; 256 bits keeps them unguessable.
func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
