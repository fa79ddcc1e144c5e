package scoring

import (
	"fmt"

	"github.com/visapath/eligibility-backend/internal/catalog"
)

// ─── STRENGTH ────────────────────────────────────────────────────────────────

// Strength is the five-level ordinal classification of a case's apparent
// competitiveness. String values match the case-study catalog so the matcher
// can compare them without conversion.
type Strength string

const (
	StrengthUnlikely   Strength = "unlikely"
	StrengthWeak       Strength = "weak"
	StrengthModerate   Strength = "moderate"
	StrengthStrong     Strength = "strong"
	StrengthVeryStrong Strength = "very-strong"
)

// strengthOrder defines the total order over the five levels. Downstream
// components rely on this for "your case vs. a stronger case" comparisons.
var strengthOrder = map[Strength]int{
	StrengthUnlikely:   0,
	StrengthWeak:       1,
	StrengthModerate:   2,
	StrengthStrong:     3,
	StrengthVeryStrong: 4,
}

// Ordinal returns the position of s in the total order, 0 (unlikely) through
// 4 (very-strong). Unknown values sort below unlikely.
func (s Strength) Ordinal() int {
	if o, ok := strengthOrder[s]; ok {
		return o
	}
	return -1
}

// Less reports whether s is strictly weaker than other.
func (s Strength) Less(other Strength) bool {
	return s.Ordinal() < other.Ordinal()
}

// ParseStrength validates a strength string from an API filter parameter.
func ParseStrength(s string) (Strength, error) {
	st := Strength(s)
	if _, ok := strengthOrder[st]; !ok {
		return "", fmt.Errorf("unknown strength level %q", s)
	}
	return st, nil
}

// ─── CLASSIFIER ──────────────────────────────────────────────────────────────

// classRule is one row of the EB-1A/O-1A threshold tables: minimum criteria
// met and minimum quality ratio for a level.
type classRule struct {
	minCriteria int
	minQuality  float64
	level       Strength
}

// The EB-1A bar is the highest of the three categories; O-1A uses the same
// shape with looser quality thresholds.
var (
	eb1aRules = []classRule{
		{6, 0.70, StrengthVeryStrong},
		{4, 0.60, StrengthStrong},
		{3, 0.50, StrengthModerate},
		{3, 0, StrengthWeak},
	}
	o1aRules = []classRule{
		{6, 0.65, StrengthVeryStrong},
		{4, 0.55, StrengthStrong},
		{3, 0.45, StrengthModerate},
		{3, 0, StrengthWeak},
	}
)

// Classify maps a scored assessment to a strength level. This is the single
// canonical classifier: every downstream consumer (case matcher,
// recommendation engine, results payload) uses its output and nothing else.
func Classify(a Assessment) Strength {
	switch a.VisaType {
	case catalog.VisaEB1A:
		return classifyByRules(eb1aRules, a.CriteriaMetCount, a.QualityRatio)
	case catalog.VisaO1A:
		return classifyByRules(o1aRules, a.CriteriaMetCount, a.QualityRatio)
	case catalog.VisaNIW:
		return classifyNIW(a)
	}
	return StrengthModerate
}

func classifyByRules(rules []classRule, criteriaMet int, quality float64) Strength {
	for _, r := range rules {
		if criteriaMet >= r.minCriteria && quality >= r.minQuality {
			return r.level
		}
	}
	return StrengthUnlikely
}

// classifyNIW applies the three-prong test. All three prongs must be met for
// moderate or better; EB-2 qualification gates strong; quality gates
// very-strong. Two prongs qualify as weak only in the prong1+prong2 or
// prong2+prong3 pairings — prong 2 (being well-positioned) is the hinge, so
// prong1+prong3 alone does not.
func classifyNIW(a Assessment) Strength {
	switch {
	case a.AllProngsMet && a.MeetsEB2 && a.QualityRatio >= 0.70:
		return StrengthVeryStrong
	case a.AllProngsMet && a.MeetsEB2:
		return StrengthStrong
	case a.AllProngsMet:
		return StrengthModerate
	case (a.Prong1.Met && a.Prong2.Met) || (a.Prong2.Met && a.Prong3.Met):
		return StrengthWeak
	}
	return StrengthUnlikely
}

// ─── DISPLAY LABEL ───────────────────────────────────────────────────────────

// EligibilityLabel is the coarse four-step banner label shown at the top of
// the results view. It is a presentation mapping only — it uses percentage
// thresholds rather than the classifier's quality rules and can disagree with
// Classify in edge cases. Nothing may branch on it; decisions always come
// from Classify.
func EligibilityLabel(a Assessment) string {
	switch a.VisaType {
	case catalog.VisaNIW:
		switch {
		case a.AllProngsMet && a.MeetsEB2:
			return "Strong"
		case a.AllProngsMet:
			return "Moderate (Need EB-2 Qualification)"
		case (a.Prong1.Met && a.Prong2.Met) || (a.Prong2.Met && a.Prong3.Met):
			return "Moderate"
		case a.Prong1.Met || a.Prong2.Met || a.Prong3.Met:
			return "Weak"
		}
		return "Unlikely"

	case catalog.VisaEB1A:
		switch {
		case a.CriteriaMetCount >= 3 && a.Overall.Percentage >= 60:
			return "Strong"
		case a.CriteriaMetCount >= 3 && a.Overall.Percentage >= 40:
			return "Moderate"
		case a.CriteriaMetCount >= 2:
			return "Weak"
		}
		return "Unlikely"

	case catalog.VisaO1A:
		switch {
		case a.CriteriaMetCount >= 3 && a.Overall.Percentage >= 50:
			return "Strong"
		case a.CriteriaMetCount >= 3 && a.Overall.Percentage >= 35:
			return "Moderate"
		case a.CriteriaMetCount >= 2:
			return "Weak"
		}
		return "Unlikely"
	}

	switch {
	case a.Overall.Percentage >= 70:
		return "Strong"
	case a.Overall.Percentage >= 50:
		return "Moderate"
	case a.Overall.Percentage >= 30:
		return "Weak"
	}
	return "Unlikely"
}
