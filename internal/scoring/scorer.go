// Package scoring implements the server-side eligibility scoring engine and
// strength classifier. It mirrors the point arithmetic from the assessment
// wizard: every answer carries 0–3 points, totals are plain sums, and absent
// answers contribute zero. Scoring never fails — the package has no error
// returns by design.
package scoring

import (
	"github.com/visapath/eligibility-backend/internal/catalog"
)

// ─── TYPES ────────────────────────────────────────────────────────────────────

// Responses maps a question ID to the point value of the chosen option.
// A partial map is valid input everywhere: missing answers score zero, and
// unknown question IDs are silently ignored.
type Responses map[string]int

// Result is one computed score block: a raw total, the maximum reachable
// total, and the percentage of maximum achieved.
type Result struct {
	Total      int     `json:"total"`
	Max        int     `json:"max"`
	Percentage float64 `json:"percentage"`
}

// ProngResult is a Result for one NIW prong plus whether the prong clears
// its threshold.
type ProngResult struct {
	Result
	Met bool `json:"met"`
}

// CriterionScore records the best question score within one criterion.
// A criterion is "met" when its best score is above zero.
type CriterionScore struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Score int    `json:"score"`
}

// Assessment is the full derived output for one completed response set.
// It is the payload handed from the wizard's finalize step to the results
// view, and the sole input to the recommendation engine.
type Assessment struct {
	VisaType  catalog.VisaType `json:"visa_type"`
	Responses Responses        `json:"responses"`

	Overall          Result           `json:"overall"`
	CriteriaMet      []CriterionScore `json:"criteria_met"`
	CriteriaMetCount int              `json:"criteria_met_count"`

	// QualityRatio is the fraction of answered questions scored 2 or 3 — a
	// proxy for evidence quality independent of breadth.
	QualityRatio float64 `json:"quality_ratio"`

	// NIW-only fields. Zero-valued for EB-1A and O-1A.
	MeetsEB2     bool        `json:"meets_eb2,omitempty"`
	Prong1       ProngResult `json:"prong1,omitzero"`
	Prong2       ProngResult `json:"prong2,omitzero"`
	Prong3       ProngResult `json:"prong3,omitzero"`
	AllProngsMet bool        `json:"all_prongs_met,omitempty"`

	Strength Strength `json:"strength"`
}

// ─── THRESHOLDS ──────────────────────────────────────────────────────────────

// NIW prong thresholds. Prong 3 is held to a slightly lower bar than the
// first two, matching how the balancing test is weighed in practice.
const (
	prong1Threshold = 50.0
	prong2Threshold = 50.0
	prong3Threshold = 40.0
)

// EB-2 qualification: an advanced degree (education ≥ 1 means bachelor's
// plus five years progressive experience or better) or exceptional ability
// (≥ 2 means at least 3 of the 6 regulatory criteria).
const (
	eb2EducationFloor   = 1
	eb2ExceptionalFloor = 2
)

// ─── SCORING ─────────────────────────────────────────────────────────────────

// Evaluate scores a response set and classifies its strength. This is the
// single entry point the API and worker use; Score and Classify remain
// exported for tests and for callers that need only one half.
func Evaluate(visa catalog.VisaType, responses Responses) Assessment {
	a := Score(visa, responses)
	a.Strength = Classify(a)
	return a
}

// Score computes all derived score blocks for a response set. Pure: calling
// it twice with the same inputs yields identical output, and it never fails.
func Score(visa catalog.VisaType, responses Responses) Assessment {
	cat := catalog.ForVisa(visa)
	a := Assessment{
		VisaType:  visa,
		Responses: responses,
	}
	if cat == nil {
		return a
	}

	// Totals and per-criterion bests, walking the catalog rather than the
	// response map so unknown IDs never contribute.
	total := 0
	for _, cr := range cat.Criteria {
		best := 0
		for _, q := range cr.Questions {
			v := responses[q.ID]
			total += v
			if v > best {
				best = v
			}
		}
		if best > 0 {
			a.CriteriaMet = append(a.CriteriaMet, CriterionScore{
				ID:    cr.ID,
				Title: cr.Title,
				Score: best,
			})
		}
	}
	a.CriteriaMetCount = len(a.CriteriaMet)
	a.Overall = makeResult(total, cat.MaxScore())
	a.QualityRatio = qualityRatio(cat, responses)

	if visa == catalog.VisaNIW {
		a.Prong1 = prongResult(responses, catalog.Prong1QuestionIDs(), prong1Threshold)
		a.Prong2 = prongResult(responses, catalog.Prong2QuestionIDs(), prong2Threshold)
		a.Prong3 = prongResult(responses, catalog.Prong3QuestionIDs(), prong3Threshold)
		a.AllProngsMet = a.Prong1.Met && a.Prong2.Met && a.Prong3.Met
		a.MeetsEB2 = responses["education"] >= eb2EducationFloor ||
			responses["exceptional_ability"] >= eb2ExceptionalFloor
		// The preliminary answers feed only the EB-2 check. The overall
		// score is the sum of the three prongs, so overall max is 60, not
		// the 66 the full catalog would give.
		a.Overall = makeResult(
			a.Prong1.Total+a.Prong2.Total+a.Prong3.Total,
			a.Prong1.Max+a.Prong2.Max+a.Prong3.Max)
	}

	return a
}

// prongResult sums only the given question IDs. Each prong's max is the
// number of questions in that prong times the top option value.
func prongResult(responses Responses, ids []string, threshold float64) ProngResult {
	total := 0
	for _, id := range ids {
		total += responses[id]
	}
	r := makeResult(total, len(ids)*catalog.MaxOptionValue)
	return ProngResult{Result: r, Met: r.Percentage >= threshold}
}

func makeResult(total, max int) Result {
	r := Result{Total: total, Max: max}
	if max > 0 {
		r.Percentage = float64(total) / float64(max) * 100
	}
	return r
}

// qualityRatio is the share of answered catalog questions with value ≥ 2.
// Only explicitly answered questions count toward the denominator; an
// unanswered question neither helps nor hurts the ratio.
func qualityRatio(cat *catalog.Catalog, responses Responses) float64 {
	answered, strong := 0, 0
	for _, id := range cat.QuestionIDs() {
		v, ok := responses[id]
		if !ok {
			continue
		}
		answered++
		if v >= 2 {
			strong++
		}
	}
	if answered == 0 {
		return 0
	}
	return float64(strong) / float64(answered)
}
