package casestudy

import (
	"fmt"
	"strings"

	"github.com/visapath/eligibility-backend/internal/catalog"
	"github.com/visapath/eligibility-backend/internal/scoring"
)

// ─── MATCHING ────────────────────────────────────────────────────────────────

// Match pairs a case study with the reason it was selected for this user.
type Match struct {
	CaseStudy
	Reason string `json:"reason"`
}

// Query describes the user's position for matching and filtering. Field
// defaults to tech when the profile never specified one.
type Query struct {
	VisaType catalog.VisaType
	Strength scoring.Strength
	Field    Field
}

func (q Query) field() Field {
	if q.Field == "" {
		return FieldTech
	}
	return q.Field
}

// priorityCaseIDs are the hand-curated headline examples per visa category.
// Order matters: it is the display order. IDs not present in the repository
// are skipped silently so the curated lists can reference cases before the
// catalog ships them.
var priorityCaseIDs = map[catalog.VisaType][]string{
	catalog.VisaEB1A: {
		"eb1a-tech-003",
		"eb1a-biotech-002",
		"eb1a-fintech-001",
	},
	catalog.VisaO1A: {
		"o1a-tech-001",
		"o1a-biotech-001",
		"o1a-fintech-001",
	},
	catalog.VisaNIW: {
		"niw-tech-008",
		"niw-biotech-007",
		"niw-fintech-005",
		"niw-tech-004",
		"niw-biotech-004",
		"niw-tech-006",
		"niw-biotech-006",
		"niw-tech-007",
	},
}

// curatedLimit caps RelevantCases output. NIW gets more slots because its
// curated list deliberately mixes approvals, a denial and an RFE recovery.
func curatedLimit(v catalog.VisaType) int {
	if v == catalog.VisaNIW {
		return 6
	}
	return 4
}

// RelevantCases selects the comparison cases for a finished assessment and
// attaches a relevance reason to each. Curated cases win when any exist for
// the visa type; otherwise selection falls back to matching the user's
// strength level and then broadens to any case of the visa type until the
// cap is filled.
func (r *Repository) RelevantCases(q Query) []Match {
	if !q.VisaType.Valid() {
		return nil
	}
	limit := curatedLimit(q.VisaType)

	var selected []CaseStudy
	for _, id := range priorityCaseIDs[q.VisaType] {
		c, ok := r.ByID(id)
		if !ok || c.VisaType != q.VisaType {
			continue
		}
		selected = append(selected, c)
		if len(selected) == limit {
			break
		}
	}

	if len(selected) == 0 {
		// Cases at the user's strength level first. Unlikely has no case
		// records of its own and buckets with weak.
		want := q.Strength
		if want == scoring.StrengthUnlikely {
			want = scoring.StrengthWeak
		}
		selected = r.fillCases(selected, limit, func(c CaseStudy) bool {
			return c.VisaType == q.VisaType && c.Strength == want
		})
		// Broaden to any case of the visa type, preserving what is selected.
		selected = r.fillCases(selected, limit, func(c CaseStudy) bool {
			return c.VisaType == q.VisaType
		})
	}

	matches := make([]Match, 0, len(selected))
	for _, c := range selected {
		matches = append(matches, Match{CaseStudy: c, Reason: relevanceReason(c, q)})
	}
	return matches
}

func (r *Repository) fillCases(selected []CaseStudy, limit int, keep func(CaseStudy) bool) []CaseStudy {
	for _, c := range r.cases {
		if len(selected) >= limit {
			break
		}
		if !keep(c) || containsCase(selected, c.ID) {
			continue
		}
		selected = append(selected, c)
	}
	return selected
}

func containsCase(cases []CaseStudy, id string) bool {
	for _, c := range cases {
		if c.ID == id {
			return true
		}
	}
	return false
}

// ─── RELEVANCE REASONS ───────────────────────────────────────────────────────

// relevanceReason explains why a case is worth the user's attention. Visa,
// strength and citation matches are diagnostic; the outcome and field notes
// surface only when nothing diagnostic applies. When several reasons of the
// winning tier apply, the first two are joined with " + ".
func relevanceReason(c CaseStudy, q Query) string {
	var diagnostic, notes []string

	if c.VisaType == q.VisaType {
		diagnostic = append(diagnostic, "Same visa type")
	}

	// Adjacent strength counts: a strong case is a fair comparison for a
	// very-strong user, and a moderate case for a weak one.
	if c.Strength == q.Strength ||
		(c.Strength == scoring.StrengthStrong && q.Strength == scoring.StrengthVeryStrong) ||
		(c.Strength == scoring.StrengthModerate && q.Strength == scoring.StrengthWeak) {
		diagnostic = append(diagnostic, "Similar profile strength")
	}

	if c.Metrics.Citations > 0 {
		if est := EstimatedMetrics(q.Strength).Citations; est > 0 {
			ratio := float64(est) / float64(c.Metrics.Citations)
			if ratio >= 0.7 && ratio <= 1.3 {
				diagnostic = append(diagnostic, "Similar citation range")
			}
		}
	}

	switch {
	case c.Outcome == OutcomeRFEThenApproved:
		notes = append(notes, "Shows RFE recovery path")
	case c.Outcome == OutcomeApproved &&
		(q.Strength == scoring.StrengthWeak || q.Strength == scoring.StrengthUnlikely):
		notes = append(notes, "Aspirational benchmark")
	}

	if c.Field == q.field() {
		notes = append(notes, fieldMatchReason(c.Field))
	}

	primary := diagnostic
	if len(primary) == 0 {
		primary = notes
	}
	switch len(primary) {
	case 0:
		return "Relevant comparison case"
	case 1:
		return primary[0]
	}
	return strings.Join(primary[:2], " + ")
}

func fieldMatchReason(f Field) string {
	switch f {
	case FieldBiotech:
		return "Biotech field match"
	case FieldFintech:
		return "Fintech field match"
	}
	return "Tech field match"
}

// ─── FILTERING ───────────────────────────────────────────────────────────────

// OutcomeFilter buckets the four outcome values into the three options the
// browse view exposes. RFE recoveries and appeal reversals both count as
// "rfe" since both show a recoverable initial setback.
type OutcomeFilter string

const (
	OutcomeFilterApproved OutcomeFilter = "approved"
	OutcomeFilterDenied   OutcomeFilter = "denied"
	OutcomeFilterRFE      OutcomeFilter = "rfe"
)

func (f OutcomeFilter) matches(o Outcome) bool {
	switch f {
	case OutcomeFilterApproved:
		return o == OutcomeApproved
	case OutcomeFilterDenied:
		return o == OutcomeDenied
	case OutcomeFilterRFE:
		return o == OutcomeRFEThenApproved || o == OutcomeDeniedThenApproved
	}
	return false
}

// ParseOutcomeFilter validates an outcome filter parameter.
func ParseOutcomeFilter(s string) (OutcomeFilter, error) {
	switch f := OutcomeFilter(s); f {
	case OutcomeFilterApproved, OutcomeFilterDenied, OutcomeFilterRFE:
		return f, nil
	}
	return "", fmt.Errorf("unknown outcome filter %q", s)
}

// Filter narrows a case list by the browse view's three dimensions. Zero
// values mean "all" for that dimension; set dimensions combine with AND.
type Filter struct {
	Outcome  OutcomeFilter
	Field    Field
	Strength scoring.Strength
}

// Apply returns the cases passing every set dimension, preserving order.
func (f Filter) Apply(cases []CaseStudy) []CaseStudy {
	out := make([]CaseStudy, 0, len(cases))
	for _, c := range cases {
		if f.Outcome != "" && !f.Outcome.matches(c.Outcome) {
			continue
		}
		if f.Field != "" && c.Field != f.Field {
			continue
		}
		if f.Strength != "" && c.Strength != f.Strength {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ─── COMPARISON ──────────────────────────────────────────────────────────────

// estimatedMetrics maps a strength level to representative evidence metrics.
// The assessment never collects raw citation counts, so side-by-side
// comparisons use these stand-ins.
var estimatedMetrics = map[scoring.Strength]Metrics{
	scoring.StrengthVeryStrong: {Citations: 250, Publications: 25, HIndex: 12, Patents: 2},
	scoring.StrengthStrong:     {Citations: 150, Publications: 15, HIndex: 8, Patents: 1},
	scoring.StrengthModerate:   {Citations: 50, Publications: 8, HIndex: 5},
	scoring.StrengthWeak:       {Citations: 20, Publications: 3, HIndex: 2},
	scoring.StrengthUnlikely:   {Citations: 5, Publications: 1, HIndex: 1},
}

// EstimatedMetrics returns the representative metrics for a strength level.
// Unknown levels fall back to moderate.
func EstimatedMetrics(s scoring.Strength) Metrics {
	if m, ok := estimatedMetrics[s]; ok {
		return m
	}
	return estimatedMetrics[scoring.StrengthModerate]
}

// Gap is one actionable difference between the user's estimated metrics and
// a comparison case.
type Gap struct {
	Area           string `json:"area"`
	Priority       string `json:"priority"` // high, medium, low
	Recommendation string `json:"recommendation"`
	Timeline       string `json:"timeline"`
	Impact         string `json:"impact"`
}

// GapAnalysis compares the user's estimated metrics against one case and
// returns the metric gaps with closing advice. A metric is compared only when
// both sides report it. An empty result is replaced by a single "profile
// ready" entry.
func GapAnalysis(c CaseStudy, user Metrics) []Gap {
	var gaps []Gap

	if c.Metrics.Citations > 0 && user.Citations > 0 && user.Citations < c.Metrics.Citations {
		d := c.Metrics.Citations - user.Citations
		gaps = append(gaps, Gap{
			Area:           "Citations",
			Priority:       gapPriority(d, 100, 50),
			Recommendation: fmt.Sprintf("Increase citations by %d. Focus on publishing in high-impact journals and promoting existing work.", d),
			Timeline:       gapTimeline(d > 100, "12-18 months", "6-12 months"),
			Impact:         "Critical for demonstrating influence",
		})
	}

	if c.Metrics.Publications > 0 && user.Publications > 0 && user.Publications < c.Metrics.Publications {
		d := c.Metrics.Publications - user.Publications
		gaps = append(gaps, Gap{
			Area:           "Publications",
			Priority:       gapPriority(d, 10, 5),
			Recommendation: fmt.Sprintf("Publish %d more papers. Target peer-reviewed journals and conferences in your field.", d),
			Timeline:       gapTimeline(d > 10, "12-24 months", "6-12 months"),
			Impact:         "Essential for scholarly contribution",
		})
	}

	if c.Metrics.HIndex > 0 && user.HIndex > 0 && user.HIndex < c.Metrics.HIndex {
		d := c.Metrics.HIndex - user.HIndex
		gaps = append(gaps, Gap{
			Area:           "H-Index",
			Priority:       gapPriority(d, 5, 3),
			Recommendation: fmt.Sprintf("Improve H-Index by %d points. Focus on quality over quantity and cite-worthy research.", d),
			Timeline:       "12-24 months",
			Impact:         "Demonstrates sustained impact",
		})
	}

	// Patents compare against zero too: no patents is itself the gap.
	if c.Metrics.Patents > 0 && user.Patents < c.Metrics.Patents {
		d := c.Metrics.Patents - user.Patents
		p := "low"
		if d > 2 {
			p = "medium"
		}
		gaps = append(gaps, Gap{
			Area:           "Patents",
			Priority:       p,
			Recommendation: fmt.Sprintf("File %d patent application(s). Consider provisional patents for faster filing.", d),
			Timeline:       "6-18 months",
			Impact:         "Shows innovation and commercialization",
		})
	}

	if len(gaps) == 0 {
		gaps = append(gaps, Gap{
			Area:           "Overall Profile",
			Priority:       "low",
			Recommendation: "Your profile meets or exceeds this case. Focus on documentation quality.",
			Timeline:       "1-3 months",
			Impact:         "Ready for application",
		})
	}
	return gaps
}

func gapPriority(d, high, medium int) string {
	switch {
	case d > high:
		return "high"
	case d > medium:
		return "medium"
	}
	return "low"
}

func gapTimeline(long bool, longText, shortText string) string {
	if long {
		return longText
	}
	return shortText
}

// NextSteps returns the action list shown next to a case comparison. The
// list depends only on the user's strength band.
func NextSteps(s scoring.Strength) []string {
	switch s {
	case scoring.StrengthWeak, scoring.StrengthUnlikely:
		return []string{
			"Schedule consultation with immigration attorney to assess timeline",
			"Begin systematic publication plan in peer-reviewed venues",
			"Join editorial boards or review panels in your field",
			"Document all current achievements and evidence",
			"Consider alternative visa options (H-1B, L-1) as stepping stones",
		}
	case scoring.StrengthModerate:
		return []string{
			"Identify and fill 1-2 additional criteria for safety margin",
			"Obtain 5-7 strong recommendation letters from independent experts",
			"Document media coverage and public recognition",
			"Compile comprehensive evidence portfolio",
			"Consider waiting 3-6 months to strengthen weak areas",
		}
	}
	return []string{
		"Begin comprehensive documentation of all achievements",
		"Secure strong letters from recognized experts in field",
		"Prepare detailed petition letter explaining contributions",
		"Consider premium processing for faster decision",
		"Engage experienced immigration attorney for petition preparation",
	}
}
