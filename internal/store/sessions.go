package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/visapath/eligibility-backend/internal/catalog"
	"github.com/visapath/eligibility-backend/internal/scoring"
)

// ─── TYPES ────────────────────────────────────────────────────────────────────

// Profile is the optional self-reported context attached to a session. Field
// steers case-study matching; the rest feeds the recommendation engine's risk
// checks through the response map.
type Profile struct {
	Field string `json:"field,omitempty"` // tech, biotech, fintech
	Email string `json:"email,omitempty"`
}

// Session is one anonymous assessment run. The anon token is the only
// credential: whoever holds it owns the session.
type Session struct {
	ID        uuid.UUID
	AnonToken string
	VisaType  catalog.VisaType
	Profile   Profile

	// Responses is the current answer set, replaced wholesale on each PUT.
	Responses scoring.Responses

	// Payment state, written by checkout and the Stripe webhook.
	StripeCustomerID string
	PaymentIntent    string
	Email            string
	Paid             bool

	CreatedAt time.Time
	ExpiresAt time.Time
}

// AttachPaymentParams groups the Stripe and email fields written together
// when checkout is initiated.
type AttachPaymentParams struct {
	SessionID        uuid.UUID
	StripeCustomerID string
	PaymentIntent    string
	Email            string
}

// ─── METHODS ─────────────────────────────────────────────────────────────────

// CreateSession mints a new session for the visa type with a fresh anon
// token and the store's TTL.
func (s *Store) CreateSession(_ context.Context, visa catalog.VisaType) (Session, error) {
	if !visa.Valid() {
		return Session{}, fmt.Errorf("CreateSession: unknown visa type %q", visa)
	}
	token, err := newToken()
	if err != nil {
		return Session{}, fmt.Errorf("CreateSession: generate token: %w", err)
	}

	now := s.now()
	sess := &Session{
		ID:        uuid.New(),
		AnonToken: token,
		VisaType:  visa,
		Responses: scoring.Responses{},
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	s.sessionByToken[token] = sess.ID
	return *sess, nil
}

// SessionByToken resolves an anon token. Expired sessions are ErrNotFound.
func (s *Store) SessionByToken(_ context.Context, token string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.sessionByToken[token]
	if !ok {
		return Session{}, ErrNotFound
	}
	sess := s.sessions[id]
	if sess == nil || s.expired(sess.ExpiresAt) {
		return Session{}, ErrNotFound
	}
	return *sess, nil
}

// SessionByID looks a session up by its primary key. Used by the worker and
// by handlers that already authenticated via token.
func (s *Store) SessionByID(_ context.Context, id uuid.UUID) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionLocked(id)
}

func (s *Store) sessionLocked(id uuid.UUID) (Session, error) {
	sess := s.sessions[id]
	if sess == nil || s.expired(sess.ExpiresAt) {
		return Session{}, ErrNotFound
	}
	return *sess, nil
}

// UpdateProfile merges the given profile into the session. Empty fields are
// left untouched so a PATCH can set just the email or just the field.
func (s *Store) UpdateProfile(_ context.Context, id uuid.UUID, p Profile) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessions[id]
	if sess == nil || s.expired(sess.ExpiresAt) {
		return Session{}, ErrNotFound
	}
	if p.Field != "" {
		sess.Profile.Field = p.Field
	}
	if p.Email != "" {
		sess.Profile.Email = p.Email
	}
	return *sess, nil
}

// PutAnswers replaces the session's response set. The store accepts any keys;
// scoring ignores IDs outside the catalog and the recommendation engine reads
// the supplemental ones.
func (s *Store) PutAnswers(_ context.Context, id uuid.UUID, responses scoring.Responses) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessions[id]
	if sess == nil || s.expired(sess.ExpiresAt) {
		return Session{}, ErrNotFound
	}

	copied := make(scoring.Responses, len(responses))
	for k, v := range responses {
		copied[k] = v
	}
	sess.Responses = copied
	return *sess, nil
}

// AttachPayment guards against double-attachment of a Stripe PaymentIntent,
// then writes the customer ID, PI and email.
//
// Race scenario without the guard: two browser tabs call POST /checkout at
// once, both see no PI, both create one at Stripe, and the second write
// orphans the first PaymentIntent. Under the store mutex the second call hits
// the already-attached check and gets ErrPaymentIntentAlreadyAttached with
// the existing session, so the handler returns the first PI's client_secret.
func (s *Store) AttachPayment(_ context.Context, p AttachPaymentParams) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessions[p.SessionID]
	if sess == nil || s.expired(sess.ExpiresAt) {
		return Session{}, ErrNotFound
	}
	if sess.PaymentIntent != "" {
		return *sess, ErrPaymentIntentAlreadyAttached
	}

	sess.StripeCustomerID = p.StripeCustomerID
	sess.PaymentIntent = p.PaymentIntent
	if p.Email != "" {
		sess.Email = p.Email
	}
	s.sessionByPaymentPI[p.PaymentIntent] = sess.ID
	return *sess, nil
}
