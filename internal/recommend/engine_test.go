package recommend_test

import (
	"math"
	"strings"
	"testing"

	"github.com/visapath/eligibility-backend/internal/catalog"
	"github.com/visapath/eligibility-backend/internal/recommend"
	"github.com/visapath/eligibility-backend/internal/scoring"
)

func assessment(visa catalog.VisaType, strength scoring.Strength) scoring.Assessment {
	return scoring.Assessment{
		VisaType:  visa,
		Strength:  strength,
		Responses: scoring.Responses{},
		Overall:   scoring.Result{Total: 10, Max: 15, Percentage: 66.67},
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// ─── Approval probability ────────────────────────────────────────────────────

func TestApprovalProbability_ScalesBaseRateByStrength(t *testing.T) {
	tests := []struct {
		name     string
		visa     catalog.VisaType
		strength scoring.Strength
		want     float64
	}{
		{"EB1A strong", catalog.VisaEB1A, scoring.StrengthStrong, 0.727 * 1.05},
		{"EB1A unlikely", catalog.VisaEB1A, scoring.StrengthUnlikely, 0.727 * 0.40},
		{"O1A moderate", catalog.VisaO1A, scoring.StrengthModerate, 0.92 * 0.95},
		// NIW carries the scrutiny penalty on top of the strength multiplier.
		{"NIW very strong", catalog.VisaNIW, scoring.StrengthVeryStrong, 0.673 * 1.15 * 0.85},
		{"NIW weak", catalog.VisaNIW, scoring.StrengthWeak, 0.673 * 0.75 * 0.85},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := recommend.Build(assessment(tt.visa, tt.strength))
			if !approxEqual(plan.ApprovalProbability, tt.want) {
				t.Errorf("probability: got %.4f, want %.4f", plan.ApprovalProbability, tt.want)
			}
		})
	}
}

func TestApprovalProbability_CappedAtNinetyFive(t *testing.T) {
	// O-1A very-strong would compute 0.92 × 1.15 = 1.058 uncapped.
	plan := recommend.Build(assessment(catalog.VisaO1A, scoring.StrengthVeryStrong))
	if !approxEqual(plan.ApprovalProbability, 0.95) {
		t.Errorf("probability: got %.4f, want cap of 0.95", plan.ApprovalProbability)
	}
}

func TestBuild_IsDeterministic(t *testing.T) {
	a := assessment(catalog.VisaNIW, scoring.StrengthModerate)
	a.Responses = scoring.Responses{"geographic_scope": 1, "letter_quality": 0}

	p1 := recommend.Build(a)
	p2 := recommend.Build(a)
	if p1.ApprovalProbability != p2.ApprovalProbability ||
		len(p1.RiskFactors) != len(p2.RiskFactors) ||
		len(p1.Improvements) != len(p2.Improvements) ||
		p1.Primary != p2.Primary {
		t.Error("same assessment produced different plans")
	}
}

// ─── Primary recommendation ──────────────────────────────────────────────────

func TestPrimaryRecommendation_MatchesStrengthBand(t *testing.T) {
	tests := []struct {
		strength scoring.Strength
		contains string
	}{
		{scoring.StrengthVeryStrong, "Strong candidate"},
		{scoring.StrengthStrong, "Good candidate"},
		{scoring.StrengthModerate, "Borderline candidate"},
		{scoring.StrengthWeak, "Weak candidate"},
		{scoring.StrengthUnlikely, "Not currently eligible"},
	}
	for _, tt := range tests {
		plan := recommend.Build(assessment(catalog.VisaEB1A, tt.strength))
		if !strings.Contains(plan.Primary, tt.contains) {
			t.Errorf("%s: primary %q does not contain %q", tt.strength, plan.Primary, tt.contains)
		}
		if !strings.Contains(plan.Primary, "%") {
			t.Errorf("%s: primary should quote the probability: %q", tt.strength, plan.Primary)
		}
	}
}

// ─── Risk factors ────────────────────────────────────────────────────────────

func riskByIssue(risks []recommend.RiskFactor, fragment string) (recommend.RiskFactor, bool) {
	for _, r := range risks {
		if strings.Contains(r.Issue, fragment) {
			return r, true
		}
	}
	return recommend.RiskFactor{}, false
}

func TestRiskFactors_StaleAchievements(t *testing.T) {
	a := assessment(catalog.VisaEB1A, scoring.StrengthStrong)
	a.Responses = scoring.Responses{"recent_achievements": 0}

	r, ok := riskByIssue(recommend.Build(a).RiskFactors, "Outdated achievements")
	if !ok {
		t.Fatal("expected stale-achievements risk")
	}
	if r.Severity != recommend.SeverityHigh {
		t.Errorf("severity: got %s, want high", r.Severity)
	}

	// Any recent activity clears the flag.
	a.Responses["recent_achievements"] = 1
	if _, ok := riskByIssue(recommend.Build(a).RiskFactors, "Outdated achievements"); ok {
		t.Error("risk should not fire when recent work exists")
	}
}

func TestRiskFactors_GeographicScopeSeverityDependsOnVisa(t *testing.T) {
	eb1a := assessment(catalog.VisaEB1A, scoring.StrengthStrong)
	eb1a.Responses = scoring.Responses{"geographic_scope": 1}
	r, ok := riskByIssue(recommend.Build(eb1a).RiskFactors, "geographic impact")
	if !ok || r.Severity != recommend.SeverityMedium {
		t.Errorf("EB1A geographic risk: got %+v, want medium severity", r)
	}

	// National importance is a prong for NIW, so the same gap cuts deeper.
	niw := assessment(catalog.VisaNIW, scoring.StrengthStrong)
	niw.Responses = scoring.Responses{"geographic_scope": 1}
	r, ok = riskByIssue(recommend.Build(niw).RiskFactors, "geographic impact")
	if !ok || r.Severity != recommend.SeverityHigh {
		t.Errorf("NIW geographic risk: got %+v, want high severity", r)
	}
}

func TestRiskFactors_EndeavorClarityIsNIWOnly(t *testing.T) {
	niw := assessment(catalog.VisaNIW, scoring.StrengthModerate)
	niw.Responses = scoring.Responses{"endeavor_clarity": 1}
	if _, ok := riskByIssue(recommend.Build(niw).RiskFactors, "endeavor"); !ok {
		t.Error("expected endeavor risk for NIW")
	}

	eb1a := assessment(catalog.VisaEB1A, scoring.StrengthModerate)
	eb1a.Responses = scoring.Responses{"endeavor_clarity": 1}
	if _, ok := riskByIssue(recommend.Build(eb1a).RiskFactors, "endeavor"); ok {
		t.Error("endeavor risk should not fire for EB1A")
	}
}

func TestRiskFactors_MinimumCriteriaEB1A(t *testing.T) {
	a := assessment(catalog.VisaEB1A, scoring.StrengthModerate)
	a.CriteriaMetCount = 3
	if _, ok := riskByIssue(recommend.Build(a).RiskFactors, "minimum criteria"); !ok {
		t.Error("expected minimum-criteria risk at exactly 3 criteria")
	}

	a.CriteriaMetCount = 4
	if _, ok := riskByIssue(recommend.Build(a).RiskFactors, "minimum criteria"); ok {
		t.Error("risk should clear at 4 criteria")
	}
}

func TestRiskFactors_O1AConsultationAlwaysPresent(t *testing.T) {
	a := assessment(catalog.VisaO1A, scoring.StrengthVeryStrong)
	r, ok := riskByIssue(recommend.Build(a).RiskFactors, "consultation")
	if !ok {
		t.Fatal("O-1A plans should always flag the consultation requirement")
	}
	if r.Severity != recommend.SeverityLow {
		t.Errorf("severity: got %s, want low", r.Severity)
	}
}

func TestRiskFactors_AbsentKeysNeverTrigger(t *testing.T) {
	// A user who skipped the profile supplement should only see the risks
	// derived from the visa type itself.
	a := assessment(catalog.VisaEB1A, scoring.StrengthStrong)
	a.CriteriaMetCount = 5
	if risks := recommend.Build(a).RiskFactors; len(risks) != 0 {
		t.Errorf("expected no risks for a bare EB1A assessment, got %+v", risks)
	}
}

// ─── Improvements ────────────────────────────────────────────────────────────

func TestImprovements_SortedByPriority(t *testing.T) {
	a := assessment(catalog.VisaNIW, scoring.StrengthModerate)
	a.Responses = scoring.Responses{"letter_quality": 0}

	imps := recommend.Build(a).Improvements
	if len(imps) < 3 {
		t.Fatalf("expected several improvements, got %d", len(imps))
	}
	order := map[recommend.Priority]int{
		recommend.PriorityImmediate: 0,
		recommend.PriorityShortTerm: 1,
		recommend.PriorityLongTerm:  2,
	}
	for i := 1; i < len(imps); i++ {
		if order[imps[i-1].Priority] > order[imps[i].Priority] {
			t.Fatalf("improvements out of priority order at %d: %s after %s",
				i, imps[i].Priority, imps[i-1].Priority)
		}
	}
}

func TestImprovements_HighRiskMitigationsBecomeActions(t *testing.T) {
	a := assessment(catalog.VisaEB1A, scoring.StrengthWeak)
	a.Responses = scoring.Responses{"letter_quality": 1}

	plan := recommend.Build(a)
	r, ok := riskByIssue(plan.RiskFactors, "recommendation letters")
	if !ok {
		t.Fatal("expected letter-quality risk")
	}
	found := false
	for _, imp := range plan.Improvements {
		if imp.Action == r.Mitigation {
			found = true
			if imp.Priority != recommend.PriorityImmediate {
				t.Errorf("mitigation action priority: got %s, want immediate", imp.Priority)
			}
		}
	}
	if !found {
		t.Error("high-severity mitigation missing from improvements")
	}
}

func TestImprovements_NoDuplicateActions(t *testing.T) {
	a := assessment(catalog.VisaNIW, scoring.StrengthWeak)
	a.Responses = scoring.Responses{
		"recent_achievements": 0,
		"geographic_scope":    0,
		"endeavor_clarity":    0,
		"letter_quality":      0,
	}

	seen := make(map[string]bool)
	for _, imp := range recommend.Build(a).Improvements {
		if seen[imp.Action] {
			t.Errorf("duplicate action: %q", imp.Action)
		}
		seen[imp.Action] = true
	}
}

func TestImprovements_EB1AExtraCriteriaOnlyBelowFive(t *testing.T) {
	hasExtra := func(count int) bool {
		a := assessment(catalog.VisaEB1A, scoring.StrengthStrong)
		a.CriteriaMetCount = count
		for _, imp := range recommend.Build(a).Improvements {
			if strings.Contains(imp.Action, "additional criteria") {
				return true
			}
		}
		return false
	}
	if !hasExtra(4) {
		t.Error("expected extra-criteria action at 4 criteria met")
	}
	if hasExtra(5) {
		t.Error("extra-criteria action should drop at 5 criteria met")
	}
}

// ─── Alternatives ────────────────────────────────────────────────────────────

func TestAlternatives_ExcludeCurrentVisaAndSortByFit(t *testing.T) {
	a := assessment(catalog.VisaEB1A, scoring.StrengthStrong)
	a.Overall.Percentage = 80

	alts := recommend.Build(a).Alternatives
	if len(alts) != 2 {
		t.Fatalf("expected 2 alternatives for a strong EB1A profile, got %d", len(alts))
	}
	for _, alt := range alts {
		if alt.Type == "EB1A" {
			t.Error("alternatives must not include the assessed visa type")
		}
	}
	for i := 1; i < len(alts); i++ {
		if alts[i-1].FitScore < alts[i].FitScore {
			t.Errorf("alternatives not sorted by fit: %.2f before %.2f",
				alts[i-1].FitScore, alts[i].FitScore)
		}
	}

	// NIW is the natural step down from EB1A: 0.80 × 1.2 capped at 0.95.
	if alts[0].Type != "NIW" || !approxEqual(alts[0].FitScore, 0.95) {
		t.Errorf("top alternative: got %s %.2f, want NIW 0.95", alts[0].Type, alts[0].FitScore)
	}
}

func TestAlternatives_EB1AFromNIWHasFloor(t *testing.T) {
	a := assessment(catalog.VisaNIW, scoring.StrengthWeak)
	a.Overall.Percentage = 20

	var eb1aFit float64
	for _, alt := range recommend.Build(a).Alternatives {
		if alt.Type == "EB1A" {
			eb1aFit = alt.FitScore
		}
	}
	// 0.20 × 0.7 = 0.14 would undersell; the floor keeps it at 0.30.
	if !approxEqual(eb1aFit, 0.3) {
		t.Errorf("EB1A fit from weak NIW: got %.2f, want 0.30 floor", eb1aFit)
	}
}

func TestAlternatives_FallbacksBelowFortyPercent(t *testing.T) {
	a := assessment(catalog.VisaEB1A, scoring.StrengthUnlikely)
	a.Overall.Percentage = 25

	var h1b, perm bool
	for _, alt := range recommend.Build(a).Alternatives {
		switch alt.Type {
		case "H1B":
			h1b = true
			if !approxEqual(alt.FitScore, 0.6) {
				t.Errorf("H1B fit: got %.2f, want 0.6", alt.FitScore)
			}
		case "EB2-PERM":
			perm = true
		}
	}
	if !h1b || !perm {
		t.Errorf("weak profile should list H1B and EB2-PERM fallbacks (h1b=%v perm=%v)", h1b, perm)
	}

	a.Overall.Percentage = 55
	for _, alt := range recommend.Build(a).Alternatives {
		if alt.Type == "H1B" || alt.Type == "EB2-PERM" {
			t.Errorf("fallback %s should not appear above 40%%", alt.Type)
		}
	}
}

// ─── Timeline ────────────────────────────────────────────────────────────────

func TestTimeline_PreparationTracksStrength(t *testing.T) {
	tests := []struct {
		strength scoring.Strength
		prep     string
	}{
		{scoring.StrengthVeryStrong, "1-2 months"},
		{scoring.StrengthStrong, "2-3 months"},
		{scoring.StrengthModerate, "4-6 months"},
		{scoring.StrengthWeak, "6-12 months"},
		{scoring.StrengthUnlikely, "12+ months"},
	}
	for _, tt := range tests {
		got := recommend.Build(assessment(catalog.VisaEB1A, tt.strength)).Timeline
		if got.PreparationTime != tt.prep {
			t.Errorf("%s: preparation %q, want %q", tt.strength, got.PreparationTime, tt.prep)
		}
	}
}

func TestTimeline_ProcessingTimePerVisa(t *testing.T) {
	tests := map[catalog.VisaType]string{
		catalog.VisaEB1A: "8-12 months",
		catalog.VisaNIW:  "12-18 months",
		catalog.VisaO1A:  "2-3 months",
	}
	for visa, want := range tests {
		got := recommend.Build(assessment(visa, scoring.StrengthStrong)).Timeline
		if got.ProcessingTime != want {
			t.Errorf("%s: processing %q, want %q", visa, got.ProcessingTime, want)
		}
	}
}

func TestTimeline_UrgencyFactors(t *testing.T) {
	// NIW always carries the volatility note.
	niw := recommend.Build(assessment(catalog.VisaNIW, scoring.StrengthStrong)).Timeline
	if len(niw.UrgencyFactors) != 1 {
		t.Errorf("NIW urgency factors: got %d, want 1", len(niw.UrgencyFactors))
	}

	// An expiring visa adds urgency regardless of type.
	a := assessment(catalog.VisaO1A, scoring.StrengthStrong)
	a.Responses = scoring.Responses{"visa_expiry": 6}
	got := recommend.Build(a).Timeline
	if len(got.UrgencyFactors) != 1 || !strings.Contains(got.UrgencyFactors[0], "expiring") {
		t.Errorf("expected visa-expiry urgency factor, got %v", got.UrgencyFactors)
	}

	a.Responses["visa_expiry"] = 24
	if got := recommend.Build(a).Timeline; len(got.UrgencyFactors) != 0 {
		t.Errorf("distant expiry should not be urgent: %v", got.UrgencyFactors)
	}
}

// ─── Costs ───────────────────────────────────────────────────────────────────

func TestCosts_TotalsSumComponents(t *testing.T) {
	for _, visa := range []catalog.VisaType{catalog.VisaEB1A, catalog.VisaO1A, catalog.VisaNIW} {
		t.Run(string(visa), func(t *testing.T) {
			c := recommend.Build(assessment(visa, scoring.StrengthStrong)).Costs

			gov := 0
			for _, f := range c.GovernmentFees {
				gov += f.Amount
			}
			wantMin, wantMax := gov, gov
			for _, f := range c.LegalFees {
				wantMin += f.Range.Min
				wantMax += f.Range.Max
			}
			for _, f := range c.AdditionalCosts {
				wantMin += f.Range.Min
				wantMax += f.Range.Max
			}

			if c.TotalRange.Min != wantMin || c.TotalRange.Max != wantMax {
				t.Errorf("total range: got %+v, want [%d, %d]", c.TotalRange, wantMin, wantMax)
			}
		})
	}
}

func TestCosts_EB1ATotals(t *testing.T) {
	c := recommend.Build(assessment(catalog.VisaEB1A, scoring.StrengthStrong)).Costs
	// Fees: 700 + 1140 + 2805; legal 5000-15000; extras 1000-4500.
	if c.TotalRange.Min != 10645 || c.TotalRange.Max != 24145 {
		t.Errorf("EB1A total range: got %+v, want [10645, 24145]", c.TotalRange)
	}
}

// ─── Documentation and warnings ──────────────────────────────────────────────

func docByName(docs []recommend.DocumentRequirement, fragment string) (recommend.DocumentRequirement, bool) {
	for _, d := range docs {
		if strings.Contains(d.Document, fragment) {
			return d, true
		}
	}
	return recommend.DocumentRequirement{}, false
}

func TestDocumentation_Gaps(t *testing.T) {
	a := assessment(catalog.VisaNIW, scoring.StrengthModerate)
	a.CriteriaMetCount = 3
	a.Responses = scoring.Responses{"citation_count": 40}

	docs := recommend.Build(a).Documentation
	if _, ok := docByName(docs, "CV/Resume"); !ok {
		t.Error("CV is always required")
	}
	if _, ok := docByName(docs, "Citation Report"); !ok {
		t.Error("low citation count should request a citation report")
	}
	if d, ok := docByName(docs, "Proposed Endeavor"); !ok || d.Status != "required" {
		t.Errorf("NIW needs a required endeavor statement, got %+v", d)
	}
	if d, ok := docByName(docs, "Additional Evidence"); !ok || d.Status != "critical" {
		t.Errorf("thin criteria coverage should be critical, got %+v", d)
	}

	// High citation counts don't need the report.
	a.Responses["citation_count"] = 500
	if _, ok := docByName(recommend.Build(a).Documentation, "Citation Report"); ok {
		t.Error("citation report should be skipped above 100 citations")
	}
}

func TestWarnings(t *testing.T) {
	niw := recommend.Build(assessment(catalog.VisaNIW, scoring.StrengthStrong))
	if len(niw.Warnings) != 1 || !strings.Contains(niw.Warnings[0], "NIW approval rates") {
		t.Errorf("NIW should carry the approval-rate warning: %v", niw.Warnings)
	}

	a := assessment(catalog.VisaEB1A, scoring.StrengthModerate)
	a.CriteriaMetCount = 3
	a.Responses = scoring.Responses{"achievements_age": 7, "future_work_clear": 0}
	got := recommend.Build(a).Warnings
	if len(got) != 3 {
		t.Fatalf("expected 3 warnings, got %d: %v", len(got), got)
	}

	// Absent supplement keys must not trigger warnings.
	bare := recommend.Build(assessment(catalog.VisaEB1A, scoring.StrengthStrong))
	if len(bare.Warnings) != 0 {
		t.Errorf("bare EB1A assessment should have no warnings: %v", bare.Warnings)
	}
}
