package scoring_test

import (
	"reflect"
	"testing"

	"github.com/visapath/eligibility-backend/internal/catalog"
	"github.com/visapath/eligibility-backend/internal/scoring"
)

// answerAll returns a response map with every question in the visa's catalog
// answered at the given value.
func answerAll(t *testing.T, visa catalog.VisaType, value int) scoring.Responses {
	t.Helper()
	cat := catalog.ForVisa(visa)
	if cat == nil {
		t.Fatalf("no catalog for %s", visa)
	}
	r := scoring.Responses{}
	for _, id := range cat.QuestionIDs() {
		r[id] = value
	}
	return r
}

func answerIDs(r scoring.Responses, ids []string, value int) {
	for _, id := range ids {
		r[id] = value
	}
}

// ─── Score ───────────────────────────────────────────────────────────────────

func TestScore_EB1A_AllAnsweredTwo(t *testing.T) {
	// Five criteria each answered with value 2.
	a := scoring.Evaluate(catalog.VisaEB1A, answerAll(t, catalog.VisaEB1A, 2))

	if a.Overall.Total != 10 {
		t.Errorf("total: got %d, want 10", a.Overall.Total)
	}
	if a.Overall.Max != 15 {
		t.Errorf("max: got %d, want 15", a.Overall.Max)
	}
	if a.Overall.Percentage < 66.6 || a.Overall.Percentage > 66.7 {
		t.Errorf("percentage: got %.2f, want ≈66.67", a.Overall.Percentage)
	}
	if a.CriteriaMetCount != 5 {
		t.Errorf("criteria met: got %d, want 5", a.CriteriaMetCount)
	}
	if a.Strength != scoring.StrengthStrong {
		t.Errorf("strength: got %s, want strong", a.Strength)
	}
}

func TestScore_O1A_SingleAnswerIsUnlikely(t *testing.T) {
	// Everything zero except one question at 3 → one criterion met.
	r := answerAll(t, catalog.VisaO1A, 0)
	r["publication_record"] = 3

	a := scoring.Evaluate(catalog.VisaO1A, r)

	if a.CriteriaMetCount != 1 {
		t.Errorf("criteria met: got %d, want 1", a.CriteriaMetCount)
	}
	if a.Overall.Total != 3 {
		t.Errorf("total: got %d, want 3", a.Overall.Total)
	}
	if a.Strength != scoring.StrengthUnlikely {
		t.Errorf("strength: got %s, want unlikely", a.Strength)
	}
}

func TestScore_NIW_ProngThresholds(t *testing.T) {
	// EB-2 met; prongs 1 and 2 at 2/3 (66.7%, met); prong 3 at 1/3
	// (33.3%, below its 40% threshold).
	r := scoring.Responses{"education": 3, "exceptional_ability": 3}
	answerIDs(r, catalog.Prong1QuestionIDs(), 2)
	answerIDs(r, catalog.Prong2QuestionIDs(), 2)
	answerIDs(r, catalog.Prong3QuestionIDs(), 1)

	a := scoring.Evaluate(catalog.VisaNIW, r)

	if !a.MeetsEB2 {
		t.Error("EB-2 qualification should be met with education=3")
	}
	if !a.Prong1.Met || !a.Prong2.Met {
		t.Errorf("prongs 1 and 2 should be met: p1=%v p2=%v", a.Prong1.Met, a.Prong2.Met)
	}
	if a.Prong3.Met {
		t.Errorf("prong 3 at %.1f%% should not clear the 40%% threshold", a.Prong3.Percentage)
	}
	if a.AllProngsMet {
		t.Error("all prongs met should be false")
	}
	if a.Strength != scoring.StrengthWeak {
		t.Errorf("strength: got %s, want weak", a.Strength)
	}
}

func TestScore_NIW_ProngTotalsSumToOverall(t *testing.T) {
	// Preliminary answers qualify EB-2 but must not inflate the overall
	// score: overall is exactly the sum of the three prongs.
	r := scoring.Responses{"education": 3, "exceptional_ability": 3}
	answerIDs(r, catalog.Prong1QuestionIDs(), 2)
	answerIDs(r, catalog.Prong2QuestionIDs(), 2)
	answerIDs(r, catalog.Prong3QuestionIDs(), 1)

	a := scoring.Score(catalog.VisaNIW, r)

	prongSum := a.Prong1.Total + a.Prong2.Total + a.Prong3.Total
	if a.Overall.Total != prongSum {
		t.Errorf("overall total %d != prong sum %d", a.Overall.Total, prongSum)
	}
	prongMax := a.Prong1.Max + a.Prong2.Max + a.Prong3.Max
	if a.Overall.Max != prongMax {
		t.Errorf("overall max %d != prong max sum %d", a.Overall.Max, prongMax)
	}
	if !a.MeetsEB2 {
		t.Error("education=3 should still qualify EB-2")
	}
}

func TestScore_MissingAnswersScoreZero(t *testing.T) {
	a := scoring.Score(catalog.VisaEB1A, scoring.Responses{})
	if a.Overall.Total != 0 {
		t.Errorf("empty responses: total %d, want 0", a.Overall.Total)
	}
	if a.CriteriaMetCount != 0 {
		t.Errorf("empty responses: criteria met %d, want 0", a.CriteriaMetCount)
	}
	if a.Overall.Percentage != 0 {
		t.Errorf("empty responses: percentage %.1f, want 0", a.Overall.Percentage)
	}
}

func TestScore_UnknownQuestionIDsAreIgnored(t *testing.T) {
	r := answerAll(t, catalog.VisaEB1A, 1)
	base := scoring.Score(catalog.VisaEB1A, r)

	r["citation_count"] = 500
	r["made_up_question"] = 3
	withExtras := scoring.Score(catalog.VisaEB1A, r)

	if withExtras.Overall.Total != base.Overall.Total {
		t.Errorf("supplemental keys changed the total: %d vs %d",
			withExtras.Overall.Total, base.Overall.Total)
	}
	if withExtras.CriteriaMetCount != base.CriteriaMetCount {
		t.Error("supplemental keys changed criteria-met count")
	}
}

func TestScore_IsDeterministic(t *testing.T) {
	r := answerAll(t, catalog.VisaO1A, 2)
	first := scoring.Evaluate(catalog.VisaO1A, r)
	second := scoring.Evaluate(catalog.VisaO1A, r)
	if !reflect.DeepEqual(first, second) {
		t.Error("evaluating the same responses twice produced different assessments")
	}
}

func TestScore_QualityRatioCountsOnlyAnsweredQuestions(t *testing.T) {
	// Two answered questions, one at 3 and one at 1 → ratio 0.5 regardless of
	// how many questions are unanswered.
	r := scoring.Responses{
		"award_level":     3,
		"membership_type": 1,
	}
	a := scoring.Score(catalog.VisaEB1A, r)
	if a.QualityRatio != 0.5 {
		t.Errorf("quality ratio: got %.2f, want 0.50", a.QualityRatio)
	}
}

// ─── Classify ────────────────────────────────────────────────────────────────

func TestClassify_EB1A_Bands(t *testing.T) {
	tests := []struct {
		name     string
		criteria int
		quality  float64
		want     scoring.Strength
	}{
		{"four criteria high quality", 4, 0.65, scoring.StrengthStrong},
		{"three criteria mid quality", 3, 0.55, scoring.StrengthModerate},
		{"three criteria low quality", 3, 0.2, scoring.StrengthWeak},
		{"two criteria", 2, 0.9, scoring.StrengthUnlikely},
		{"nothing", 0, 0, scoring.StrengthUnlikely},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := scoring.Assessment{
				VisaType:         catalog.VisaEB1A,
				CriteriaMetCount: tt.criteria,
				QualityRatio:     tt.quality,
			}
			if got := scoring.Classify(a); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassify_O1A_LooserQualityBar(t *testing.T) {
	// 6 criteria at 0.65 quality: very-strong for O-1A, but only strong under
	// the EB-1A table (which demands 0.70).
	a := scoring.Assessment{
		VisaType:         catalog.VisaO1A,
		CriteriaMetCount: 6,
		QualityRatio:     0.65,
	}
	if got := scoring.Classify(a); got != scoring.StrengthVeryStrong {
		t.Errorf("O-1A: got %s, want very-strong", got)
	}

	a.VisaType = catalog.VisaEB1A
	if got := scoring.Classify(a); got != scoring.StrengthStrong {
		t.Errorf("EB-1A: got %s, want strong", got)
	}
}

func TestClassify_NIW_AllProngsGateModerate(t *testing.T) {
	met := scoring.ProngResult{Met: true}
	unmet := scoring.ProngResult{}

	tests := []struct {
		name    string
		p1, p2, p3 scoring.ProngResult
		eb2     bool
		quality float64
		want    scoring.Strength
	}{
		{"all prongs, eb2, high quality", met, met, met, true, 0.75, scoring.StrengthVeryStrong},
		{"all prongs, eb2", met, met, met, true, 0.5, scoring.StrengthStrong},
		{"all prongs, no eb2", met, met, met, false, 0.9, scoring.StrengthModerate},
		{"prongs 1 and 2", met, met, unmet, true, 0.9, scoring.StrengthWeak},
		{"prongs 2 and 3", unmet, met, met, true, 0.9, scoring.StrengthWeak},
		{"prongs 1 and 3 only", met, unmet, met, true, 0.9, scoring.StrengthUnlikely},
		{"no prongs", unmet, unmet, unmet, true, 0.9, scoring.StrengthUnlikely},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := scoring.Assessment{
				VisaType:     catalog.VisaNIW,
				Prong1:       tt.p1,
				Prong2:       tt.p2,
				Prong3:       tt.p3,
				AllProngsMet: tt.p1.Met && tt.p2.Met && tt.p3.Met,
				MeetsEB2:     tt.eb2,
				QualityRatio: tt.quality,
			}
			if got := scoring.Classify(a); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassify_MonotoneInCriteriaAndQuality(t *testing.T) {
	// More criteria met and higher quality must never classify lower.
	for _, visa := range []catalog.VisaType{catalog.VisaEB1A, catalog.VisaO1A} {
		prev := scoring.StrengthUnlikely
		for criteria := 0; criteria <= 8; criteria++ {
			for _, quality := range []float64{0, 0.25, 0.5, 0.75, 1} {
				a := scoring.Assessment{
					VisaType:         visa,
					CriteriaMetCount: criteria,
					QualityRatio:     quality,
				}
				got := scoring.Classify(a)
				if got.Less(prev) && quality == 1 {
					t.Errorf("%s: criteria=%d quality=1 classified %s, below previous best %s",
						visa, criteria, got, prev)
				}
				if quality == 1 && prev.Less(got) {
					prev = got
				}
			}
		}
	}
}

// ─── Strength ordering ───────────────────────────────────────────────────────

func TestStrength_Ordering(t *testing.T) {
	order := []scoring.Strength{
		scoring.StrengthUnlikely,
		scoring.StrengthWeak,
		scoring.StrengthModerate,
		scoring.StrengthStrong,
		scoring.StrengthVeryStrong,
	}
	for i := 1; i < len(order); i++ {
		if !order[i-1].Less(order[i]) {
			t.Errorf("%s should be less than %s", order[i-1], order[i])
		}
	}
	if scoring.Strength("bogus").Ordinal() != -1 {
		t.Error("unknown strength should sort below unlikely")
	}
}

func TestParseStrength(t *testing.T) {
	if _, err := scoring.ParseStrength("very-strong"); err != nil {
		t.Errorf("very-strong should parse: %v", err)
	}
	if _, err := scoring.ParseStrength("superb"); err == nil {
		t.Error("expected error for unknown strength")
	}
}

// ─── EligibilityLabel ────────────────────────────────────────────────────────

func TestEligibilityLabel_IsDisplayOnly(t *testing.T) {
	// The banner label uses percentage thresholds and can disagree with
	// Classify; both outputs must still be self-consistent.
	a := scoring.Evaluate(catalog.VisaEB1A, scoring.Responses{
		"award_level":         3,
		"membership_type":     3,
		"media_level":         3,
		"judging_role":        0,
		"contribution_impact": 0,
	})
	// 9/15 = 60%, 3 criteria met → label Strong; classifier says moderate
	// (quality 0.6 < the strong rule's 4-criteria floor).
	if got := scoring.EligibilityLabel(a); got != "Strong" {
		t.Errorf("label: got %q, want Strong", got)
	}
	if a.Strength != scoring.StrengthModerate {
		t.Errorf("classifier: got %s, want moderate", a.Strength)
	}
}

func TestEligibilityLabel_NIW(t *testing.T) {
	met := scoring.ProngResult{Met: true}

	a := scoring.Assessment{
		VisaType:     catalog.VisaNIW,
		Prong1:       met,
		Prong2:       met,
		Prong3:       met,
		AllProngsMet: true,
		MeetsEB2:     false,
	}
	if got := scoring.EligibilityLabel(a); got != "Moderate (Need EB-2 Qualification)" {
		t.Errorf("got %q", got)
	}

	a.MeetsEB2 = true
	if got := scoring.EligibilityLabel(a); got != "Strong" {
		t.Errorf("got %q, want Strong", got)
	}
}
