package casestudy_test

import (
	"strings"
	"testing"

	"github.com/visapath/eligibility-backend/internal/casestudy"
	"github.com/visapath/eligibility-backend/internal/catalog"
	"github.com/visapath/eligibility-backend/internal/scoring"
)

// minimalCase builds a valid record with just the fields repository queries
// care about.
func minimalCase(id string, visa catalog.VisaType, field casestudy.Field, strength scoring.Strength, outcome casestudy.Outcome) casestudy.CaseStudy {
	return casestudy.CaseStudy{
		ID:       id,
		VisaType: visa,
		Field:    field,
		Strength: strength,
		Title:    "Test case " + id,
		Timeline: "8 months",
		Outcome:  outcome,
	}
}

func mustRepo(t *testing.T, cases ...casestudy.CaseStudy) *casestudy.Repository {
	t.Helper()
	r, err := casestudy.NewRepository(cases)
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}
	return r
}

// ─── Built-in catalog ────────────────────────────────────────────────────────

func TestValidate_BuiltinCatalog(t *testing.T) {
	if err := casestudy.Validate(); err != nil {
		t.Fatalf("built-in case studies failed validation: %v", err)
	}
}

func TestDefault_CoversAllVisaTypes(t *testing.T) {
	repo := casestudy.Default()
	for _, v := range []catalog.VisaType{catalog.VisaEB1A, catalog.VisaO1A, catalog.VisaNIW} {
		if len(repo.ByVisaType(v)) == 0 {
			t.Errorf("no built-in cases for %s", v)
		}
	}
}

func TestDefault_IncludesDenials(t *testing.T) {
	// The catalog deliberately mixes outcomes; an all-approval corpus would
	// make the browse filters untestable.
	repo := casestudy.Default()
	if len(repo.Denied()) == 0 {
		t.Error("expected at least one denied case in the built-in catalog")
	}
}

// ─── NewRepository validation ────────────────────────────────────────────────

func TestNewRepository_RejectsDuplicateIDs(t *testing.T) {
	_, err := casestudy.NewRepository([]casestudy.CaseStudy{
		minimalCase("dup", catalog.VisaEB1A, casestudy.FieldTech, scoring.StrengthStrong, casestudy.OutcomeApproved),
		minimalCase("dup", catalog.VisaO1A, casestudy.FieldTech, scoring.StrengthStrong, casestudy.OutcomeApproved),
	})
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("expected duplicate-id error, got %v", err)
	}
}

func TestNewRepository_RejectsBadEnums(t *testing.T) {
	tests := []struct {
		name string
		c    casestudy.CaseStudy
	}{
		{"empty id", minimalCase("", catalog.VisaEB1A, casestudy.FieldTech, scoring.StrengthStrong, casestudy.OutcomeApproved)},
		{"bad visa", minimalCase("x", "H1B", casestudy.FieldTech, scoring.StrengthStrong, casestudy.OutcomeApproved)},
		{"bad field", minimalCase("x", catalog.VisaEB1A, "aerospace", scoring.StrengthStrong, casestudy.OutcomeApproved)},
		{"bad strength", minimalCase("x", catalog.VisaEB1A, casestudy.FieldTech, "herculean", casestudy.OutcomeApproved)},
		{"bad outcome", minimalCase("x", catalog.VisaEB1A, casestudy.FieldTech, scoring.StrengthStrong, "withdrawn")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := casestudy.NewRepository([]casestudy.CaseStudy{tt.c}); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

// ─── Queries ─────────────────────────────────────────────────────────────────

func TestRepository_Queries(t *testing.T) {
	repo := mustRepo(t,
		minimalCase("a", catalog.VisaEB1A, casestudy.FieldTech, scoring.StrengthStrong, casestudy.OutcomeApproved),
		minimalCase("b", catalog.VisaEB1A, casestudy.FieldBiotech, scoring.StrengthWeak, casestudy.OutcomeDenied),
		minimalCase("c", catalog.VisaNIW, casestudy.FieldTech, scoring.StrengthStrong, casestudy.OutcomeRFEThenApproved),
		minimalCase("d", catalog.VisaNIW, casestudy.FieldTech, scoring.StrengthModerate, casestudy.OutcomeDeniedThenApproved),
	)

	if got := len(repo.ByVisaType(catalog.VisaEB1A)); got != 2 {
		t.Errorf("ByVisaType(EB1A): got %d, want 2", got)
	}
	if got := len(repo.ByField(casestudy.FieldTech)); got != 3 {
		t.Errorf("ByField(tech): got %d, want 3", got)
	}
	if got := len(repo.ByStrength(scoring.StrengthStrong)); got != 2 {
		t.Errorf("ByStrength(strong): got %d, want 2", got)
	}
	// Successful excludes denied-then-approved (an appeal reversal, not a
	// clean approval path).
	if got := len(repo.Successful()); got != 2 {
		t.Errorf("Successful: got %d, want 2", got)
	}
	if got := len(repo.Denied()); got != 1 {
		t.Errorf("Denied: got %d, want 1", got)
	}

	if _, ok := repo.ByID("c"); !ok {
		t.Error("ByID(c) should find the case")
	}
	if _, ok := repo.ByID("zzz"); ok {
		t.Error("ByID(zzz) should miss")
	}
}

func TestSucceeded_CoversRecoveryOutcomes(t *testing.T) {
	for outcome, want := range map[casestudy.Outcome]bool{
		casestudy.OutcomeApproved:           true,
		casestudy.OutcomeRFEThenApproved:    true,
		casestudy.OutcomeDeniedThenApproved: true,
		casestudy.OutcomeDenied:             false,
	} {
		c := casestudy.CaseStudy{Outcome: outcome}
		if c.Succeeded() != want {
			t.Errorf("Succeeded(%s): got %v, want %v", outcome, !want, want)
		}
	}
}

// ─── FindSimilar ─────────────────────────────────────────────────────────────

func TestFindSimilar_SortsByCitationProximity(t *testing.T) {
	far := minimalCase("far", catalog.VisaEB1A, casestudy.FieldTech, scoring.StrengthStrong, casestudy.OutcomeApproved)
	far.Metrics.Citations = 900
	near := minimalCase("near", catalog.VisaEB1A, casestudy.FieldTech, scoring.StrengthStrong, casestudy.OutcomeApproved)
	near.Metrics.Citations = 120
	exact := minimalCase("exact", catalog.VisaEB1A, casestudy.FieldTech, scoring.StrengthModerate, casestudy.OutcomeApproved)
	exact.Metrics.Citations = 100
	otherField := minimalCase("other", catalog.VisaEB1A, casestudy.FieldBiotech, scoring.StrengthStrong, casestudy.OutcomeApproved)
	otherField.Metrics.Citations = 100

	repo := mustRepo(t, far, near, exact, otherField)

	got := repo.FindSimilar(catalog.VisaEB1A, casestudy.FieldTech, 100)
	if len(got) != 3 {
		t.Fatalf("expected 3 tech cases, got %d", len(got))
	}
	if got[0].ID != "exact" || got[1].ID != "near" || got[2].ID != "far" {
		t.Errorf("wrong order: %s, %s, %s", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestFindSimilar_ZeroCitationsReturnsFullFieldMatch(t *testing.T) {
	repo := casestudy.Default()
	all := repo.FindSimilar(catalog.VisaNIW, casestudy.FieldTech, 0)

	want := 0
	for _, c := range repo.ByVisaType(catalog.VisaNIW) {
		if c.Field == casestudy.FieldTech {
			want++
		}
	}
	if len(all) != want {
		t.Errorf("got %d cases, want the full field match of %d", len(all), want)
	}
}

func TestFindSimilar_CapsPerVisaType(t *testing.T) {
	var cases []casestudy.CaseStudy
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		c := minimalCase("niw-"+id, catalog.VisaNIW, casestudy.FieldTech, scoring.StrengthModerate, casestudy.OutcomeApproved)
		c.Metrics.Citations = 10
		cases = append(cases, c)
		c2 := minimalCase("eb1a-"+id, catalog.VisaEB1A, casestudy.FieldTech, scoring.StrengthModerate, casestudy.OutcomeApproved)
		c2.Metrics.Citations = 10
		cases = append(cases, c2)
	}
	repo := mustRepo(t, cases...)

	if got := len(repo.FindSimilar(catalog.VisaNIW, casestudy.FieldTech, 50)); got != 8 {
		t.Errorf("NIW cap: got %d, want 8", got)
	}
	if got := len(repo.FindSimilar(catalog.VisaEB1A, casestudy.FieldTech, 50)); got != 6 {
		t.Errorf("EB1A cap: got %d, want 6", got)
	}
}

// ─── AverageTimeline ─────────────────────────────────────────────────────────

func TestAverageTimeline_RoundsToNearest(t *testing.T) {
	a := minimalCase("a", catalog.VisaEB1A, casestudy.FieldTech, scoring.StrengthStrong, casestudy.OutcomeApproved)
	a.Timeline = "8 months"
	b := minimalCase("b", catalog.VisaEB1A, casestudy.FieldTech, scoring.StrengthStrong, casestudy.OutcomeApproved)
	b.Timeline = "11 months with RFE"
	repo := mustRepo(t, a, b)

	// (8+11)/2 = 9.5, rounds to 10.
	if got := repo.AverageTimeline(catalog.VisaEB1A); got != "10 months average" {
		t.Errorf("got %q", got)
	}
}

func TestAverageTimeline_UsesDayUnitFromFirstCase(t *testing.T) {
	a := minimalCase("a", catalog.VisaO1A, casestudy.FieldTech, scoring.StrengthStrong, casestudy.OutcomeApproved)
	a.Timeline = "15 days (premium processing)"
	b := minimalCase("b", catalog.VisaO1A, casestudy.FieldTech, scoring.StrengthStrong, casestudy.OutcomeApproved)
	b.Timeline = "21 days"
	repo := mustRepo(t, a, b)

	if got := repo.AverageTimeline(catalog.VisaO1A); got != "18 days average" {
		t.Errorf("got %q", got)
	}
}

func TestAverageTimeline_NoDataForEmptyVisa(t *testing.T) {
	repo := mustRepo(t,
		minimalCase("a", catalog.VisaEB1A, casestudy.FieldTech, scoring.StrengthStrong, casestudy.OutcomeApproved),
	)
	if got := repo.AverageTimeline(catalog.VisaNIW); got != "No data" {
		t.Errorf("got %q, want No data", got)
	}
}

// ─── StrengthDistribution ────────────────────────────────────────────────────

func TestStrengthDistribution(t *testing.T) {
	repo := mustRepo(t,
		minimalCase("a", catalog.VisaNIW, casestudy.FieldTech, scoring.StrengthStrong, casestudy.OutcomeApproved),
		minimalCase("b", catalog.VisaNIW, casestudy.FieldTech, scoring.StrengthStrong, casestudy.OutcomeApproved),
		minimalCase("c", catalog.VisaNIW, casestudy.FieldTech, scoring.StrengthWeak, casestudy.OutcomeDenied),
		minimalCase("d", catalog.VisaEB1A, casestudy.FieldTech, scoring.StrengthStrong, casestudy.OutcomeApproved),
	)

	dist := repo.StrengthDistribution(catalog.VisaNIW)
	if dist[scoring.StrengthStrong] != 2 || dist[scoring.StrengthWeak] != 1 {
		t.Errorf("distribution: %v", dist)
	}
	if len(dist) != 2 {
		t.Errorf("unexpected levels in distribution: %v", dist)
	}
}
