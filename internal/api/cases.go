package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/visapath/eligibility-backend/internal/casestudy"
	"github.com/visapath/eligibility-backend/internal/catalog"
	"github.com/visapath/eligibility-backend/internal/scoring"
)

// The case-study endpoints are public and read-only. They back the browse
// page, so they accept everything as query parameters and reject unknown
// filter values with 400 rather than silently returning an empty list.

// ─── GET /api/cases ───────────────────────────────────────────────────────────

type listCasesResponse struct {
	Cases []casestudy.CaseStudy `json:"cases"`
	Total int                   `json:"total"`
}

// handleListCases lists case studies, optionally narrowed by visa_type,
// outcome, field, and strength. Filters combine with AND.
func (s *Server) handleListCases(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	cases := s.cases.All()
	if v := q.Get("visa_type"); v != "" {
		visa := catalog.VisaType(v)
		if !visa.Valid() {
			respondErr(w, http.StatusBadRequest, "visa_type must be one of: EB1A, O1A, NIW")
			return
		}
		cases = s.cases.ByVisaType(visa)
	}

	var filter casestudy.Filter
	if v := q.Get("outcome"); v != "" {
		outcome, err := casestudy.ParseOutcomeFilter(v)
		if err != nil {
			respondErr(w, http.StatusBadRequest, "outcome must be one of: approved, denied, rfe")
			return
		}
		filter.Outcome = outcome
	}
	if v := q.Get("field"); v != "" {
		field, err := casestudy.ParseField(v)
		if err != nil {
			respondErr(w, http.StatusBadRequest, "field must be one of: tech, biotech, fintech")
			return
		}
		filter.Field = field
	}
	if v := q.Get("strength"); v != "" {
		strength, err := scoring.ParseStrength(v)
		if err != nil {
			respondErr(w, http.StatusBadRequest, "unknown strength level")
			return
		}
		filter.Strength = strength
	}

	filtered := filter.Apply(cases)
	respond(w, http.StatusOK, listCasesResponse{
		Cases: filtered,
		Total: len(filtered),
	})
}

// ─── GET /api/cases/:caseID ───────────────────────────────────────────────────

func (s *Server) handleGetCase(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "caseID")
	c, ok := s.cases.ByID(id)
	if !ok {
		respondErr(w, http.StatusNotFound, "case not found")
		return
	}
	respond(w, http.StatusOK, c)
}

// ─── GET /api/cases/similar ───────────────────────────────────────────────────

type similarCasesResponse struct {
	Cases []casestudy.CaseStudy `json:"cases"`
	Total int                   `json:"total"`
}

// handleSimilarCases returns the cases closest to a caller-described profile:
// same visa type and field, ranked by citation-count distance when citations
// are given.
func (s *Server) handleSimilarCases(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	visa := catalog.VisaType(q.Get("visa_type"))
	if !visa.Valid() {
		respondErr(w, http.StatusBadRequest, "visa_type must be one of: EB1A, O1A, NIW")
		return
	}

	field, err := casestudy.ParseField(q.Get("field"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "field must be one of: tech, biotech, fintech")
		return
	}

	citations := 0
	if v := q.Get("citations"); v != "" {
		citations, err = strconv.Atoi(v)
		if err != nil || citations < 0 {
			respondErr(w, http.StatusBadRequest, "citations must be a non-negative integer")
			return
		}
	}

	cases := s.cases.FindSimilar(visa, field, citations)
	respond(w, http.StatusOK, similarCasesResponse{
		Cases: cases,
		Total: len(cases),
	})
}

// ─── GET /api/cases/stats ─────────────────────────────────────────────────────

type caseStatsResponse struct {
	VisaType        string         `json:"visa_type"`
	TotalCases      int            `json:"total_cases"`
	Approved        int            `json:"approved"`
	Denied          int            `json:"denied"`
	AverageTimeline string         `json:"average_timeline"`
	Distribution    map[string]int `json:"strength_distribution"`
}

// handleCaseStats summarizes the corpus for one visa type: counts, outcome
// split, average processing timeline, and the strength distribution shown on
// the browse page header.
func (s *Server) handleCaseStats(w http.ResponseWriter, r *http.Request) {
	visa := catalog.VisaType(r.URL.Query().Get("visa_type"))
	if !visa.Valid() {
		respondErr(w, http.StatusBadRequest, "visa_type must be one of: EB1A, O1A, NIW")
		return
	}

	cases := s.cases.ByVisaType(visa)
	approved, denied := 0, 0
	for _, c := range cases {
		if c.Succeeded() {
			approved++
		} else {
			denied++
		}
	}

	dist := make(map[string]int)
	for strength, n := range s.cases.StrengthDistribution(visa) {
		dist[string(strength)] = n
	}

	respond(w, http.StatusOK, caseStatsResponse{
		VisaType:        string(visa),
		TotalCases:      len(cases),
		Approved:        approved,
		Denied:          denied,
		AverageTimeline: s.cases.AverageTimeline(visa),
		Distribution:    dist,
	})
}
