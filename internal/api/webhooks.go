package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/visapath/eligibility-backend/internal/email"
	"github.com/visapath/eligibility-backend/internal/store"
	stripeinternal "github.com/visapath/eligibility-backend/internal/stripe"
)

// ─── POST /api/webhooks/stripe ────────────────────────────────────────────────

// handleStripeWebhook is the entry point for all Stripe webhook deliveries.
//
// Stripe delivers events at-least-once and may retry on non-2xx responses.
// The handler must be idempotent: report creation goes through
// store.InitialiseReport, whose already-exists guard makes duplicate
// deliveries a no-op.
//
// The only event we act on is payment_intent.succeeded, which creates the
// report and enqueues the generation job. Failure and refund events are
// logged for visibility.
func (s *Server) handleStripeWebhook(w http.ResponseWriter, r *http.Request) {
	// ── 1. Read and size-limit the body ───────────────────────────────────────
	// The signature check must run against the exact bytes Stripe signed, so
	// the raw body is read before anything else.
	r.Body = http.MaxBytesReader(w, r.Body, 65536) // 64 KB — generous for any Stripe event
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		respondErr(w, http.StatusBadRequest, "could not read request body")
		return
	}

	// ── 2. Verify the Stripe-Signature header ─────────────────────────────────
	sig := r.Header.Get("Stripe-Signature")
	event, err := s.stripe.VerifyWebhook(payload, sig, s.cfg.StripeWebhookSecret)
	if err != nil {
		s.logger.Warn("webhook: invalid signature", "error", err, logField(r))
		respondErr(w, http.StatusBadRequest, "invalid webhook signature")
		return
	}

	// ── 3. Dispatch by event type ─────────────────────────────────────────────
	var handlerErr error

	switch event.Type {
	case "payment_intent.succeeded":
		handlerErr = s.onPaymentSucceeded(r, event)

	case "payment_intent.payment_failed":
		s.logPaymentEvent(r, event, "payment failed")

	case "charge.refunded":
		s.logPaymentEvent(r, event, "charge refunded")

	default:
		// Unknown event type — ack immediately so Stripe stops retrying.
		s.logger.Debug("webhook: unhandled event type", "type", event.Type, logField(r))
	}

	if handlerErr != nil {
		s.logger.Error("webhook: handler error",
			"event_id", event.ID,
			"type", event.Type,
			"error", handlerErr,
			logField(r),
		)
		// Return 500 so Stripe retries delivery.
		respondErr(w, http.StatusInternalServerError, "webhook handler failed")
		return
	}

	w.WriteHeader(http.StatusOK)
}

// ─── EVENT HANDLERS ───────────────────────────────────────────────────────────

func (s *Server) onPaymentSucceeded(r *http.Request, event stripeinternal.Event) error {
	piID, err := stripeinternal.ExtractPaymentIntentID(event)
	if err != nil {
		return fmt.Errorf("onPaymentSucceeded: extract PI id: %w", err)
	}

	// InitialiseReport atomically marks the session paid and creates the
	// report. ErrReportAlreadyExists means a duplicate delivery — still a
	// success.
	report, err := s.store.InitialiseReport(r.Context(), piID)
	if errors.Is(err, store.ErrReportAlreadyExists) {
		s.logger.Debug("webhook: report already exists, re-enqueueing if not terminal",
			"report_id", report.ID,
			logField(r),
		)
		// Re-enqueue if the report is not yet in a terminal state — handles
		// the case where the worker crashed mid-processing.
		if report.Status != store.ReportReady && report.Status != store.ReportFailed {
			_ = s.worker.Enqueue(r.Context(), report.ID)
		}
		return nil
	}
	if errors.Is(err, store.ErrNotFound) {
		// The session expired between checkout and payment confirmation, or
		// the PI belongs to another deployment. Retrying cannot fix either,
		// so ack the event and leave a warning.
		s.logger.Warn("webhook: payment for unknown or expired session",
			"pi", piID,
			"event_id", event.ID,
			logField(r),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("onPaymentSucceeded: initialise report: %w", err)
	}

	// Send the receipt email immediately — don't wait for the report.
	if report.Email != "" {
		session, storeErr := s.store.SessionByID(r.Context(), report.SessionID)
		visaLabel := ""
		if storeErr == nil {
			visaLabel = session.VisaType.Display()
		}
		receiptErr := s.mailer.SendReceipt(r.Context(), email.ReceiptParams{
			To:          report.Email,
			VisaLabel:   visaLabel,
			AmountCents: s.cfg.ReportPriceCents,
			Currency:    "usd",
		})
		s.logAndIgnoreEmailErr(r, receiptErr, "send receipt")
	}

	// Enqueue the generation job. The worker handles errors and retries.
	if err := s.worker.Enqueue(r.Context(), report.ID); err != nil {
		// Enqueueing failed (queue full) — the poller will pick it up.
		s.logger.Warn("webhook: enqueue failed, will be picked up by poller",
			"report_id", report.ID,
			"error", err,
			logField(r),
		)
	}

	return nil
}

// logPaymentEvent records informational payment events. There is no session
// state to update: a failed payment leaves the session exactly as checkout
// left it, and the user can retry with the same PaymentIntent.
func (s *Server) logPaymentEvent(r *http.Request, event stripeinternal.Event, what string) {
	piID, err := stripeinternal.ExtractPaymentIntentID(event)
	if err != nil {
		s.logger.Warn("webhook: "+what+" without PI id", "event_id", event.ID, logField(r))
		return
	}
	s.logger.Info("webhook: "+what,
		"pi", piID,
		"event_id", event.ID,
		logField(r),
	)
}
