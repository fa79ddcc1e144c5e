// Package api implements the HTTP layer for the eligibility backend.
// Handlers are methods on *Server. Each handler file is responsible for one
// resource group and only imports the dependencies it actually uses.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/visapath/eligibility-backend/internal/casestudy"
	"github.com/visapath/eligibility-backend/internal/email"
	"github.com/visapath/eligibility-backend/internal/store"
	stripeinternal "github.com/visapath/eligibility-backend/internal/stripe"
	"github.com/visapath/eligibility-backend/internal/worker"
)

// Config holds values read from environment variables at startup.
type Config struct {
	// BaseURL is used to construct the report access link in emails.
	// e.g. "https://visapath.app"
	BaseURL string

	// StripeWebhookSecret is the signing secret from the Stripe dashboard.
	StripeWebhookSecret string

	// ReportPriceCents is the fixed price of the written report in USD cents.
	ReportPriceCents int64

	// Env is "production", "staging", or "development".
	Env string
}

// Server holds all shared dependencies. Each handler file attaches methods to
// this type and uses only the fields it needs.
type Server struct {
	// store holds sessions, answers, assessments, and reports.
	store *store.Store

	// cases is the read-only case-study repository for the browse endpoints
	// and for the report preview on the results page.
	cases *casestudy.Repository

	// stripe creates PaymentIntents and verifies webhook signatures.
	stripe stripeinternal.Client

	// worker enqueues report generation jobs after payment confirmation.
	worker worker.Enqueuer

	// mailer sends transactional emails (receipt + report delivery).
	mailer email.Sender

	cfg    Config
	logger *slog.Logger
}

// NewServer constructs the Server and wires the chi router. The returned
// http.Handler is ready to pass to http.ListenAndServe.
func NewServer(
	st *store.Store,
	cases *casestudy.Repository,
	stripeClient stripeinternal.Client,
	enqueuer worker.Enqueuer,
	mailer email.Sender,
	cfg Config,
	logger *slog.Logger,
) http.Handler {
	s := &Server{
		store:  st,
		cases:  cases,
		stripe: stripeClient,
		worker: enqueuer,
		mailer: mailer,
		cfg:    cfg,
		logger: logger,
	}

	return s.routes()
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	// ── Global middleware ─────────────────────────────────────────────────────
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggerMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(s.corsMiddleware)
	r.Use(middleware.Timeout(30 * time.Second))

	// ── Health ────────────────────────────────────────────────────────────────
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// ── API v1 ────────────────────────────────────────────────────────────────
	r.Route("/api", func(r chi.Router) {

		// Sessions — no auth required (anonymous creation).
		r.Post("/session", s.handleCreateSession)

		// Session-scoped routes — require a valid X-Anon-Token header.
		r.Route("/session/{sessionID}", func(r chi.Router) {
			r.Use(s.requireAnonToken)
			r.Patch("/profile", s.handleUpdateProfile)
			r.Put("/answers", s.handleReplaceAnswers)
			r.Post("/finalize", s.handleFinalize)
			r.Get("/results", s.handleResults)
			r.Post("/checkout", s.handleCreateCheckout)
		})

		// Case-study browsing — public, read-only.
		r.Route("/cases", func(r chi.Router) {
			r.Get("/", s.handleListCases)
			r.Get("/similar", s.handleSimilarCases)
			r.Get("/stats", s.handleCaseStats)
			r.Get("/{caseID}", s.handleGetCase)
		})

		// Stripe webhook — no auth (signature verification inside handler).
		r.Post("/webhooks/stripe", s.handleStripeWebhook)

		// Report access — no auth (opaque access token in URL).
		r.Get("/report/{accessToken}", s.handleGetReport)
	})

	return r
}
