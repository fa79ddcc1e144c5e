// Package casestudy holds the static catalog of historical petition outcomes
// and the matching logic that selects comparison cases for an assessment.
// Records are defined once at build time and never mutated; the Repository is
// a read-only index over them.
package casestudy

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/visapath/eligibility-backend/internal/catalog"
	"github.com/visapath/eligibility-backend/internal/scoring"
)

// ─── TYPES ────────────────────────────────────────────────────────────────────

// Field is the industry bucket a case study belongs to.
type Field string

const (
	FieldTech    Field = "tech"
	FieldBiotech Field = "biotech"
	FieldFintech Field = "fintech"
)

// ParseField validates a field string from an API filter parameter.
func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case FieldTech, FieldBiotech, FieldFintech:
		return f, nil
	}
	return "", fmt.Errorf("unknown field %q", s)
}

// Outcome is the final adjudication result of a case.
type Outcome string

const (
	OutcomeApproved           Outcome = "approved"
	OutcomeDenied             Outcome = "denied"
	OutcomeRFEThenApproved    Outcome = "rfe-then-approved"
	OutcomeDeniedThenApproved Outcome = "denied-then-approved"
)

// Profile describes the petitioner behind a case study.
type Profile struct {
	Position        string `json:"position"`
	Company         string `json:"company,omitempty"`
	Institution     string `json:"institution,omitempty"`
	ExperienceLevel string `json:"experience_level"`
	Education       string `json:"education"`
	Country         string `json:"country"`
}

// Metrics is the heterogeneous evidence-metrics bag. Numeric zero and empty
// string both mean "not reported" — petitions rarely document every metric.
type Metrics struct {
	Publications        int    `json:"publications,omitempty"`
	Citations           int    `json:"citations,omitempty"`
	Patents             int    `json:"patents,omitempty"`
	HIndex              int    `json:"h_index,omitempty"`
	GitHubStars         int    `json:"github_stars,omitempty"`
	ConferencesSpeaking int    `json:"conferences_speaking,omitempty"`
	Funding             string `json:"funding,omitempty"`
	Salary              string `json:"salary,omitempty"`
	TransactionVolume   string `json:"transaction_volume,omitempty"`
}

// CaseStudy is one immutable historical outcome record.
type CaseStudy struct {
	ID              string           `json:"id"`
	VisaType        catalog.VisaType `json:"visa_type"`
	Field           Field            `json:"field"`
	Strength        scoring.Strength `json:"strength"`
	Title           string           `json:"title"`
	Timeline        string           `json:"timeline"`
	Profile         Profile          `json:"profile"`
	Metrics         Metrics          `json:"metrics"`
	Evidence        []string         `json:"evidence"`
	Outcome         Outcome          `json:"outcome"`
	KeySuccess      []string         `json:"key_success,omitempty"`
	KeyFailure      []string         `json:"key_failure,omitempty"`
	DenialReasons   []string         `json:"denial_reasons,omitempty"`
	ProcessingNotes string           `json:"processing_notes"`
}

// Succeeded reports whether the case ultimately ended in approval.
func (c CaseStudy) Succeeded() bool {
	return c.Outcome == OutcomeApproved || c.Outcome == OutcomeRFEThenApproved ||
		c.Outcome == OutcomeDeniedThenApproved
}

// ─── REPOSITORY ──────────────────────────────────────────────────────────────

// Repository is a read-only index over a fixed set of case studies. The
// default repository wraps the built-in catalog; tests construct their own.
type Repository struct {
	cases []CaseStudy
	byID  map[string]int
}

// NewRepository validates the records and builds the index. IDs must be
// unique and every enum field must hold a known value.
func NewRepository(cases []CaseStudy) (*Repository, error) {
	r := &Repository{
		cases: cases,
		byID:  make(map[string]int, len(cases)),
	}
	for i, c := range cases {
		if c.ID == "" {
			return nil, fmt.Errorf("case study at index %d has empty id", i)
		}
		if _, dup := r.byID[c.ID]; dup {
			return nil, fmt.Errorf("duplicate case study id %q", c.ID)
		}
		if !c.VisaType.Valid() {
			return nil, fmt.Errorf("case %s: unknown visa type %q", c.ID, c.VisaType)
		}
		if _, err := ParseField(string(c.Field)); err != nil {
			return nil, fmt.Errorf("case %s: %w", c.ID, err)
		}
		if c.Strength.Ordinal() < 0 {
			return nil, fmt.Errorf("case %s: unknown strength %q", c.ID, c.Strength)
		}
		switch c.Outcome {
		case OutcomeApproved, OutcomeDenied, OutcomeRFEThenApproved, OutcomeDeniedThenApproved:
		default:
			return nil, fmt.Errorf("case %s: unknown outcome %q", c.ID, c.Outcome)
		}
		r.byID[c.ID] = i
	}
	return r, nil
}

var defaultRepo = sync.OnceValues(func() (*Repository, error) {
	return NewRepository(builtinCases)
})

// Default returns the repository over the built-in catalog. Call Validate
// from main first; after that this never fails.
func Default() *Repository {
	r, err := defaultRepo()
	if err != nil {
		panic(fmt.Sprintf("casestudy: built-in catalog invalid: %v", err))
	}
	return r
}

// Validate checks the built-in catalog. Run once at startup so a bad record
// stops the server instead of surfacing mid-request.
func Validate() error {
	_, err := defaultRepo()
	return err
}

// ─── QUERIES ─────────────────────────────────────────────────────────────────

// All returns every case study in catalog order. The slice is shared; callers
// must not mutate it.
func (r *Repository) All() []CaseStudy {
	return r.cases
}

// ByID looks up a single case study.
func (r *Repository) ByID(id string) (CaseStudy, bool) {
	i, ok := r.byID[id]
	if !ok {
		return CaseStudy{}, false
	}
	return r.cases[i], true
}

// ByVisaType returns all cases for one visa category, preserving order.
func (r *Repository) ByVisaType(v catalog.VisaType) []CaseStudy {
	return r.filter(func(c CaseStudy) bool { return c.VisaType == v })
}

// ByField returns all cases in one industry bucket.
func (r *Repository) ByField(f Field) []CaseStudy {
	return r.filter(func(c CaseStudy) bool { return c.Field == f })
}

// ByStrength returns all cases at one strength level.
func (r *Repository) ByStrength(s scoring.Strength) []CaseStudy {
	return r.filter(func(c CaseStudy) bool { return c.Strength == s })
}

// Successful returns cases that ended in approval, including RFE recoveries.
func (r *Repository) Successful() []CaseStudy {
	return r.filter(func(c CaseStudy) bool {
		return c.Outcome == OutcomeApproved || c.Outcome == OutcomeRFEThenApproved
	})
}

// Denied returns cases with a final denial.
func (r *Repository) Denied() []CaseStudy {
	return r.filter(func(c CaseStudy) bool { return c.Outcome == OutcomeDenied })
}

func (r *Repository) filter(keep func(CaseStudy) bool) []CaseStudy {
	var out []CaseStudy
	for _, c := range r.cases {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// similarLimit caps FindSimilar results: more comparison points for NIW,
// where outcomes vary the most.
func similarLimit(v catalog.VisaType) int {
	if v == catalog.VisaNIW {
		return 8
	}
	return 6
}

// FindSimilar returns cases for the visa type and field sorted by citation
// proximity to the given count, capped per visa type. With citations <= 0 no
// sort is applied and the full field match is returned.
func (r *Repository) FindSimilar(v catalog.VisaType, f Field, citations int) []CaseStudy {
	matched := r.filter(func(c CaseStudy) bool { return c.VisaType == v && c.Field == f })
	if citations <= 0 {
		return matched
	}

	sort.SliceStable(matched, func(a, b int) bool {
		aDiff := absInt(matched[a].Metrics.Citations - citations)
		bDiff := absInt(matched[b].Metrics.Citations - citations)
		return aDiff < bDiff
	})

	if limit := similarLimit(v); len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// leadingInt extracts the first integer from a free-text timeline string.
var leadingInt = regexp.MustCompile(`(\d+)`)

// AverageTimeline averages the leading integer of each case's timeline text
// for a visa type and returns a human-readable summary ("7 months average").
// The unit is taken from the first case's text, mirroring how the source data
// keeps units consistent per visa type.
func (r *Repository) AverageTimeline(v catalog.VisaType) string {
	cases := r.ByVisaType(v)

	sum, n := 0, 0
	for _, c := range cases {
		m := leadingInt.FindString(c.Timeline)
		if m == "" {
			continue
		}
		var val int
		fmt.Sscanf(m, "%d", &val)
		if val > 0 {
			sum += val
			n++
		}
	}
	if n == 0 {
		return "No data"
	}

	unit := "months"
	if strings.Contains(cases[0].Timeline, "day") {
		unit = "days"
	}
	return fmt.Sprintf("%d %s average", (sum+n/2)/n, unit)
}

// StrengthDistribution counts cases per strength level for a visa type.
func (r *Repository) StrengthDistribution(v catalog.VisaType) map[scoring.Strength]int {
	dist := make(map[scoring.Strength]int)
	for _, c := range r.ByVisaType(v) {
		dist[c.Strength]++
	}
	return dist
}
