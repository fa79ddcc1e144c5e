// Package recommend turns a scored assessment into an actionable plan:
// approval probability, risk factors, improvement actions, alternative visa
// routes, timelines and a cost breakdown. Everything here is a deterministic
// function of the assessment; the same input always yields the same plan.
package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/visapath/eligibility-backend/internal/catalog"
	"github.com/visapath/eligibility-backend/internal/scoring"
)

// ─── TYPES ────────────────────────────────────────────────────────────────────

// Severity grades a risk factor.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// RiskFactor is one identified weakness with its mitigation.
type RiskFactor struct {
	Issue            string   `json:"issue"`
	Severity         Severity `json:"severity"`
	Mitigation       string   `json:"mitigation"`
	AffectedCriteria []string `json:"affected_criteria,omitempty"`
}

// Priority orders improvement actions.
type Priority string

const (
	PriorityImmediate Priority = "immediate"
	PriorityShortTerm Priority = "short-term"
	PriorityLongTerm  Priority = "long-term"
)

var priorityOrder = map[Priority]int{
	PriorityImmediate: 0,
	PriorityShortTerm: 1,
	PriorityLongTerm:  2,
}

// Improvement is one concrete action to strengthen the case.
type Improvement struct {
	Priority       Priority `json:"priority"`
	Action         string   `json:"action"`
	Impact         string   `json:"impact"` // high, medium, low
	TimeToComplete string   `json:"time_to_complete"`
	Cost           string   `json:"cost,omitempty"`
}

// AlternativeVisa scores one other route against the user's profile.
type AlternativeVisa struct {
	Type      string  `json:"type"` // EB1A, O1A, NIW, H1B, EB2-PERM
	FitScore  float64 `json:"fit_score"`
	Reasoning string  `json:"reasoning"`
	Timeline  string  `json:"timeline"`
}

// Timeline is the filing-schedule advice.
type Timeline struct {
	PreparationTime      string   `json:"preparation_time"`
	FilingRecommendation string   `json:"filing_recommendation"`
	ProcessingTime       string   `json:"processing_time"`
	UrgencyFactors       []string `json:"urgency_factors,omitempty"`
}

// MoneyRange is a min-max dollar estimate.
type MoneyRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// CostItem is one named line in the cost breakdown.
type CostItem struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

// RangeItem is one named min-max line in the cost breakdown.
type RangeItem struct {
	Name  string     `json:"name"`
	Range MoneyRange `json:"range"`
}

// CostBreakdown itemizes the expected petition cost. Government fees are
// fixed amounts; legal and additional costs are ranges.
type CostBreakdown struct {
	GovernmentFees  []CostItem  `json:"government_fees"`
	LegalFees       []RangeItem `json:"legal_fees"`
	AdditionalCosts []RangeItem `json:"additional_costs"`
	TotalRange      MoneyRange  `json:"total_range"`
}

// DocumentRequirement is one entry of the documentation checklist.
type DocumentRequirement struct {
	Document string `json:"document"`
	Status   string `json:"status"`   // required, recommended, optional, critical
	Priority string `json:"priority"` // high, medium, low
	Notes    string `json:"notes,omitempty"`
}

// Plan is the full recommendation output for one assessment.
type Plan struct {
	Primary             string                `json:"primary_recommendation"`
	Strength            scoring.Strength      `json:"strength"`
	ApprovalProbability float64               `json:"approval_probability"`
	RiskFactors         []RiskFactor          `json:"risk_factors"`
	Improvements        []Improvement         `json:"improvements"`
	Alternatives        []AlternativeVisa     `json:"alternative_options"`
	Timeline            Timeline              `json:"timeline"`
	Costs               CostBreakdown         `json:"cost_estimate"`
	Documentation       []DocumentRequirement `json:"documentation_needs"`
	Warnings            []string              `json:"warning_flags"`
}

// ─── RATES AND CONSTANTS ─────────────────────────────────────────────────────

// Published approval rates as of Q2 2025. NIW recovered from its FY2024 low
// of 43% but remains the most volatile of the three.
var approvalRates = map[catalog.VisaType]float64{
	catalog.VisaEB1A: 0.727,
	catalog.VisaNIW:  0.673,
	catalog.VisaO1A:  0.92,
}

var strengthMultipliers = map[scoring.Strength]float64{
	scoring.StrengthVeryStrong: 1.15,
	scoring.StrengthStrong:     1.05,
	scoring.StrengthModerate:   0.95,
	scoring.StrengthWeak:       0.75,
	scoring.StrengthUnlikely:   0.40,
}

// niwScrutinyPenalty reflects the elevated RFE and denial activity on NIW
// petitions relative to the headline approval rate.
const niwScrutinyPenalty = 0.85

const (
	probabilityFloor = 0.15
	probabilityCap   = 0.95
)

type processingTime struct {
	regular string
	premium string
}

var processingTimes = map[catalog.VisaType]processingTime{
	catalog.VisaEB1A: {regular: "8-12 months", premium: "15 days"},
	catalog.VisaNIW:  {regular: "12-18 months"},
	catalog.VisaO1A:  {regular: "2-3 months", premium: "15 days"},
}

// ─── ENGINE ──────────────────────────────────────────────────────────────────

// Build produces the full plan for a scored assessment. The strength level is
// taken from the assessment as classified; this package never re-derives it.
func Build(a scoring.Assessment) Plan {
	probability := approvalProbability(a)
	risks := riskFactors(a)

	return Plan{
		Primary:             primaryRecommendation(a.Strength, probability),
		Strength:            a.Strength,
		ApprovalProbability: probability,
		RiskFactors:         risks,
		Improvements:        improvements(a, risks),
		Alternatives:        alternatives(a),
		Timeline:            timeline(a),
		Costs:               estimateCosts(a.VisaType),
		Documentation:       documentationGaps(a),
		Warnings:            warningFlags(a),
	}
}

// approvalProbability scales the published base rate by the strength level,
// applies the NIW scrutiny penalty, and clamps to [15%, 95%].
func approvalProbability(a scoring.Assessment) float64 {
	base, ok := approvalRates[a.VisaType]
	if !ok {
		base = 0.5
	}
	mult, ok := strengthMultipliers[a.Strength]
	if !ok {
		mult = strengthMultipliers[scoring.StrengthModerate]
	}

	p := base * mult
	if a.VisaType == catalog.VisaNIW {
		p *= niwScrutinyPenalty
	}

	if p > probabilityCap {
		return probabilityCap
	}
	if p < probabilityFloor {
		return probabilityFloor
	}
	return p
}

func primaryRecommendation(s scoring.Strength, probability float64) string {
	pct := int(probability*100 + 0.5)

	switch s {
	case scoring.StrengthVeryStrong:
		return fmt.Sprintf("Strong candidate with %d%% estimated approval probability. File within 1-2 months after final documentation review. Consider premium processing for faster decision.", pct)
	case scoring.StrengthStrong:
		return fmt.Sprintf("Good candidate with %d%% estimated approval probability. Address identified gaps over 2-3 months before filing. Your case exceeds minimum requirements.", pct)
	case scoring.StrengthModerate:
		return fmt.Sprintf("Borderline candidate with %d%% estimated approval probability. Spend 4-6 months strengthening weak areas. Consider alternative visa options as backup.", pct)
	case scoring.StrengthWeak:
		return fmt.Sprintf("Weak candidate with %d%% estimated approval probability. Need 6-12 months of profile building. Consider O-1 as stepping stone or employer-sponsored options.", pct)
	}
	return fmt.Sprintf("Not currently eligible (%d%% estimated approval probability). Focus on building qualifications for 12+ months or pursue alternative immigration pathways.", pct)
}

// ─── RISK FACTORS ────────────────────────────────────────────────────────────

// riskFactors inspects the raw responses for known red flags. Response keys
// beyond the scored catalog (recent_achievements, letter_quality and the
// like) come from the optional profile supplement; an absent key never
// triggers a risk.
func riskFactors(a scoring.Assessment) []RiskFactor {
	var risks []RiskFactor
	resp := a.Responses

	if v, ok := resp["recent_achievements"]; ok && v == 0 {
		risks = append(risks, RiskFactor{
			Issue:            "Outdated achievements (no recent work in last 2 years)",
			Severity:         SeverityHigh,
			Mitigation:       "Generate new publications, speaking engagements, or projects immediately",
			AffectedCriteria: []string{"contributions", "authorship", "media"},
		})
	}

	if v, ok := resp["geographic_scope"]; ok && v <= 1 {
		sev := SeverityMedium
		if a.VisaType == catalog.VisaNIW {
			sev = SeverityHigh
		}
		risks = append(risks, RiskFactor{
			Issue:            "Limited geographic impact (local/regional only)",
			Severity:         sev,
			Mitigation:       "Expand work to national level through collaborations or publications",
			AffectedCriteria: []string{"national_importance", "media", "recognition"},
		})
	}

	if a.VisaType == catalog.VisaNIW {
		if v, ok := resp["endeavor_clarity"]; ok && v <= 1 {
			risks = append(risks, RiskFactor{
				Issue:      "Unclear or weak proposed endeavor",
				Severity:   SeverityHigh,
				Mitigation: "Develop detailed 5-10 page proposed endeavor statement with specific milestones",
			})
		}
	}

	if a.VisaType == catalog.VisaEB1A && a.CriteriaMetCount == 3 {
		risks = append(risks, RiskFactor{
			Issue:      "Meeting only minimum criteria (3) - vulnerable to final merits denial",
			Severity:   SeverityMedium,
			Mitigation: "Strengthen evidence for 1-2 additional criteria before filing",
		})
	}

	if a.VisaType == catalog.VisaO1A {
		risks = append(risks, RiskFactor{
			Issue:      "Mandatory consultation requirement adds 4-6 weeks",
			Severity:   SeverityLow,
			Mitigation: "Start consultation process early with appropriate union/peer group",
		})
	}

	if v, ok := resp["letter_quality"]; ok && v <= 1 {
		risks = append(risks, RiskFactor{
			Issue:      "Generic or weak recommendation letters",
			Severity:   SeverityHigh,
			Mitigation: "Obtain detailed letters from independent experts citing specific contributions",
		})
	}

	return risks
}

// ─── IMPROVEMENTS ────────────────────────────────────────────────────────────

func improvements(a scoring.Assessment, risks []RiskFactor) []Improvement {
	var out []Improvement
	seen := make(map[string]bool)

	add := func(i Improvement) {
		if seen[i.Action] {
			return
		}
		seen[i.Action] = true
		out = append(out, i)
	}

	if a.VisaType == catalog.VisaNIW {
		add(Improvement{
			Priority:       PriorityImmediate,
			Action:         "Develop comprehensive proposed endeavor document (5-10 pages)",
			Impact:         "high",
			TimeToComplete: "1-2 weeks",
			Cost:           "$500-1000 if using professional writer",
		})
		add(Improvement{
			Priority:       PriorityImmediate,
			Action:         "Obtain 5-7 expert letters specifically addressing three prongs",
			Impact:         "high",
			TimeToComplete: "4-6 weeks",
			Cost:           "$0-500 per letter if paid",
		})
	}

	if a.VisaType == catalog.VisaEB1A && a.CriteriaMetCount < 5 {
		add(Improvement{
			Priority:       PriorityShortTerm,
			Action:         "Build evidence for 2 additional criteria beyond minimum",
			Impact:         "high",
			TimeToComplete: "3-6 months",
		})
	}

	// Every high-severity risk gets its mitigation as an immediate action.
	for _, r := range risks {
		if r.Severity != SeverityHigh {
			continue
		}
		add(Improvement{
			Priority:       PriorityImmediate,
			Action:         r.Mitigation,
			Impact:         "high",
			TimeToComplete: mitigationTime(r),
		})
	}

	add(Improvement{
		Priority:       PriorityShortTerm,
		Action:         "Create citation report and h-index documentation",
		Impact:         "medium",
		TimeToComplete: "1 week",
	})
	add(Improvement{
		Priority:       PriorityLongTerm,
		Action:         "Pursue speaking engagements at national conferences",
		Impact:         "medium",
		TimeToComplete: "3-6 months",
	})

	sort.SliceStable(out, func(i, j int) bool {
		return priorityOrder[out[i].Priority] < priorityOrder[out[j].Priority]
	})
	return out
}

func mitigationTime(r RiskFactor) string {
	issue := strings.ToLower(r.Issue)
	switch {
	case strings.Contains(issue, "outdated"):
		return "3-6 months"
	case strings.Contains(issue, "geographic"):
		return "6-12 months"
	case strings.Contains(issue, "letter"):
		return "4-6 weeks"
	case strings.Contains(issue, "endeavor"):
		return "2-4 weeks"
	}
	return "2-3 months"
}

// ─── ALTERNATIVES ────────────────────────────────────────────────────────────

// alternatives evaluates the other main categories against the profile, plus
// H-1B and EB-2 PERM fallbacks for weak overall scores, sorted by fit.
func alternatives(a scoring.Assessment) []AlternativeVisa {
	var out []AlternativeVisa

	if a.VisaType != catalog.VisaEB1A {
		out = append(out, AlternativeVisa{
			Type:      "EB1A",
			FitScore:  alternativeFit(a, catalog.VisaEB1A),
			Reasoning: "Permanent residence, self-petition option, fastest green card for extraordinary ability",
			Timeline:  "Current for most countries",
		})
	}
	if a.VisaType != catalog.VisaNIW {
		out = append(out, AlternativeVisa{
			Type:      "NIW",
			FitScore:  alternativeFit(a, catalog.VisaNIW),
			Reasoning: "Self-petition, more flexible than EB-1A, good for entrepreneurs",
			Timeline:  "Current for most countries",
		})
	}
	if a.VisaType != catalog.VisaO1A {
		out = append(out, AlternativeVisa{
			Type:      "O-1A",
			FitScore:  alternativeFit(a, catalog.VisaO1A),
			Reasoning: "Temporary but renewable, faster than green card, good stepping stone",
			Timeline:  "2-3 months processing",
		})
	}

	if a.Overall.Percentage < 40 {
		out = append(out,
			AlternativeVisa{
				Type:      "H1B",
				FitScore:  0.6,
				Reasoning: "Standard work visa, lottery-based, employer-sponsored",
				Timeline:  "Annual lottery in March",
			},
			AlternativeVisa{
				Type:      "EB2-PERM",
				FitScore:  0.5,
				Reasoning: "Traditional employer-sponsored green card, requires labor certification",
				Timeline:  "2-3 years total",
			})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FitScore > out[j].FitScore
	})
	return out
}

// alternativeFit estimates how well the current profile carries over to
// another category. The baseline is the overall percentage; NIW is reachable
// from EB-1A, EB-1A is a step up from NIW, and O-1A sits slightly below the
// green-card bars.
func alternativeFit(a scoring.Assessment, target catalog.VisaType) float64 {
	base := a.Overall.Percentage / 100

	switch {
	case target == catalog.VisaNIW && a.VisaType == catalog.VisaEB1A:
		return minFloat(0.95, base*1.2)
	case target == catalog.VisaEB1A && a.VisaType == catalog.VisaNIW:
		return maxFloat(0.3, base*0.7)
	case target == catalog.VisaO1A:
		return minFloat(0.9, base*1.1)
	}
	return base * 0.8
}

// ─── TIMELINE ────────────────────────────────────────────────────────────────

func timeline(a scoring.Assessment) Timeline {
	var t Timeline

	switch a.Strength {
	case scoring.StrengthVeryStrong:
		t.PreparationTime = "1-2 months"
		t.FilingRecommendation = "File as soon as documentation ready"
	case scoring.StrengthStrong:
		t.PreparationTime = "2-3 months"
		t.FilingRecommendation = "File after addressing minor gaps"
	case scoring.StrengthModerate:
		t.PreparationTime = "4-6 months"
		t.FilingRecommendation = "Strengthen 1-2 areas before filing"
	case scoring.StrengthWeak:
		t.PreparationTime = "6-12 months"
		t.FilingRecommendation = "Significant improvement needed before filing"
	default:
		t.PreparationTime = "12+ months"
		t.FilingRecommendation = "Not ready to file - build qualifications"
	}

	if pt, ok := processingTimes[a.VisaType]; ok {
		t.ProcessingTime = pt.regular
	} else {
		t.ProcessingTime = "Unknown"
	}

	if a.VisaType == catalog.VisaNIW {
		t.UrgencyFactors = append(t.UrgencyFactors,
			"NIW approval rates recovering but still volatile - monitor trends")
	}
	if v, ok := a.Responses["visa_expiry"]; ok && v <= 12 {
		t.UrgencyFactors = append(t.UrgencyFactors,
			"Current visa expiring soon - consider premium processing if available")
	}

	return t
}

// ─── COSTS ───────────────────────────────────────────────────────────────────

func estimateCosts(v catalog.VisaType) CostBreakdown {
	var c CostBreakdown

	switch v {
	case catalog.VisaEB1A:
		c.GovernmentFees = []CostItem{
			{Name: "I-140 Filing", Amount: 700},
			{Name: "I-485 Adjustment", Amount: 1140},
			{Name: "Premium Processing", Amount: 2805},
		}
	case catalog.VisaNIW:
		c.GovernmentFees = []CostItem{
			{Name: "I-140 Filing", Amount: 700},
			{Name: "I-485 Adjustment", Amount: 1140},
		}
	case catalog.VisaO1A:
		c.GovernmentFees = []CostItem{
			{Name: "I-129 Filing", Amount: 460},
			{Name: "Premium Processing", Amount: 2805},
		}
	}

	legal := MoneyRange{Min: 5000, Max: 10000}
	switch v {
	case catalog.VisaEB1A:
		legal = MoneyRange{Min: 5000, Max: 15000}
	case catalog.VisaNIW:
		legal = MoneyRange{Min: 4000, Max: 10000}
	case catalog.VisaO1A:
		legal = MoneyRange{Min: 3000, Max: 8000}
	}
	c.LegalFees = []RangeItem{{Name: "Attorney Fees", Range: legal}}

	c.AdditionalCosts = []RangeItem{
		{Name: "Translation Services", Range: MoneyRange{Min: 200, Max: 1000}},
		{Name: "Expert Opinion Letters", Range: MoneyRange{Min: 500, Max: 2000}},
		{Name: "Documentation Preparation", Range: MoneyRange{Min: 300, Max: 1500}},
	}

	gov := 0
	for _, f := range c.GovernmentFees {
		gov += f.Amount
	}
	for _, f := range c.LegalFees {
		c.TotalRange.Min += f.Range.Min
		c.TotalRange.Max += f.Range.Max
	}
	for _, f := range c.AdditionalCosts {
		c.TotalRange.Min += f.Range.Min
		c.TotalRange.Max += f.Range.Max
	}
	c.TotalRange.Min += gov
	c.TotalRange.Max += gov

	return c
}

// ─── DOCUMENTATION AND WARNINGS ──────────────────────────────────────────────

func documentationGaps(a scoring.Assessment) []DocumentRequirement {
	reqs := []DocumentRequirement{{
		Document: "Updated CV/Resume",
		Status:   "required",
		Priority: "high",
		Notes:    "Comprehensive with all achievements, publications, and roles",
	}}

	if v, ok := a.Responses["citation_count"]; ok && v < 100 {
		reqs = append(reqs, DocumentRequirement{
			Document: "Citation Report from Google Scholar/Scopus",
			Status:   "recommended",
			Priority: "medium",
			Notes:    "Show citation trends and h-index growth over time",
		})
	}

	if a.VisaType == catalog.VisaNIW {
		reqs = append(reqs, DocumentRequirement{
			Document: "Proposed Endeavor Statement",
			Status:   "required",
			Priority: "high",
			Notes:    "5-10 pages detailing future work and national benefit",
		})
	}

	if a.CriteriaMetCount < 4 {
		reqs = append(reqs, DocumentRequirement{
			Document: "Additional Evidence for Borderline Criteria",
			Status:   "critical",
			Priority: "high",
			Notes:    "Focus on criteria where you have partial evidence",
		})
	}

	return reqs
}

func warningFlags(a scoring.Assessment) []string {
	var warnings []string

	if a.VisaType == catalog.VisaNIW {
		warnings = append(warnings,
			"NIW approval rates dropped from 80% to 43% in FY2024 - ensure exceptional documentation")
	}
	if a.VisaType == catalog.VisaEB1A && a.CriteriaMetCount == 3 {
		warnings = append(warnings,
			"Meeting only 3 criteria makes you vulnerable to final merits determination denial")
	}
	if v, ok := a.Responses["achievements_age"]; ok && v > 5 {
		warnings = append(warnings,
			"Achievements older than 5 years may be considered stale - update with recent work")
	}
	if v, ok := a.Responses["future_work_clear"]; ok && v == 0 {
		warnings = append(warnings,
			"Unclear future U.S. work plans are a common denial reason")
	}

	return warnings
}

// ─── HELPERS ─────────────────────────────────────────────────────────────────

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

