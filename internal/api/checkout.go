package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/visapath/eligibility-backend/internal/store"
	stripeinternal "github.com/visapath/eligibility-backend/internal/stripe"
)

// ─── POST /api/session/:sessionID/checkout ────────────────────────────────────

type createCheckoutRequest struct {
	Email string `json:"email"`
}

type createCheckoutResponse struct {
	// ClientSecret is the Stripe PaymentIntent client_secret. The browser
	// passes this to Stripe.js to render the payment UI and confirm the charge.
	ClientSecret string `json:"client_secret"`
	// AmountCents is the fixed report price, echoed so the payment UI can
	// display it without a second config fetch.
	AmountCents int64 `json:"amount_cents"`
	// IsExisting is true when the session already had a PaymentIntent (i.e.
	// the user opened checkout twice). The browser should use the returned
	// secret normally — the PI is still valid and confirmable.
	IsExisting bool `json:"is_existing,omitempty"`
}

// handleCreateCheckout creates a Stripe PaymentIntent for the written report
// and returns the client_secret to the browser.
//
// Preconditions: the session must have a finalized assessment — there is
// nothing to sell before the wizard is complete. 409 otherwise.
//
// Race-safety: two concurrent calls for the same session are serialized by
// store.AttachPayment. The second call receives
// ErrPaymentIntentAlreadyAttached and returns the existing client_secret
// rather than creating a second PI.
func (s *Server) handleCreateCheckout(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromCtx(r.Context())

	var req createCheckoutRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Email == "" {
		respondErr(w, http.StatusBadRequest, "email is required")
		return
	}

	if _, err := s.store.AssessmentBySession(r.Context(), sess.ID); err != nil {
		respondErr(w, http.StatusConflict, "complete the assessment before purchasing a report")
		return
	}

	// ── Fast path: session already has a PI ───────────────────────────────────
	// Check before calling Stripe to avoid creating an unnecessary PI object.
	// The store mutex is the authoritative guard; this just skips the Stripe
	// API call in the common retry case.
	if sess.PaymentIntent != "" {
		clientSecret, err := s.stripe.GetClientSecret(r.Context(), sess.PaymentIntent)
		if err != nil {
			// PI exists in our store but Stripe can't find it — unusual.
			// Fall through to create a new one.
			s.logger.Warn("checkout: existing PI not found in Stripe, creating new",
				"pi", sess.PaymentIntent,
				"error", err,
				logField(r),
			)
		} else {
			respond(w, http.StatusOK, createCheckoutResponse{
				ClientSecret: clientSecret,
				AmountCents:  s.cfg.ReportPriceCents,
				IsExisting:   true,
			})
			return
		}
	}

	// ── Create a new Stripe PaymentIntent ─────────────────────────────────────
	pi, err := s.stripe.CreatePaymentIntent(r.Context(), stripeinternal.CreatePaymentIntentParams{
		AmountCents: s.cfg.ReportPriceCents,
		Currency:    "usd",
		Email:       req.Email,
		Metadata: map[string]string{
			"session_id": sess.ID.String(),
			"visa_type":  string(sess.VisaType),
		},
	})
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("create payment intent: %w", err))
		return
	}

	// ── Atomically attach the PI to the session ───────────────────────────────
	attached, err := s.store.AttachPayment(r.Context(), store.AttachPaymentParams{
		SessionID:        sess.ID,
		StripeCustomerID: pi.CustomerID,
		PaymentIntent:    pi.ID,
		Email:            req.Email,
	})

	if errors.Is(err, store.ErrPaymentIntentAlreadyAttached) {
		// Lost the race — another request beat us to it. Return the winning
		// PI's client_secret. The PI we just created will expire unused in
		// Stripe after 24h, an acceptable cost of this rare race.
		s.logger.Info("checkout: lost race, returning existing PI",
			"session_id", sess.ID,
			logField(r),
		)
		clientSecret, stripeErr := s.stripe.GetClientSecret(r.Context(), attached.PaymentIntent)
		if stripeErr != nil {
			s.respondInternalErr(w, r, fmt.Errorf("get client secret after race: %w", stripeErr))
			return
		}
		respond(w, http.StatusOK, createCheckoutResponse{
			ClientSecret: clientSecret,
			AmountCents:  s.cfg.ReportPriceCents,
			IsExisting:   true,
		})
		return
	}

	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("attach payment intent: %w", err))
		return
	}

	respond(w, http.StatusOK, createCheckoutResponse{
		ClientSecret: pi.ClientSecret,
		AmountCents:  s.cfg.ReportPriceCents,
	})
}
