package catalog_test

import (
	"testing"

	"github.com/visapath/eligibility-backend/internal/catalog"
)

// ─── Validate ────────────────────────────────────────────────────────────────

func TestValidate_BuiltinCatalogsAreWellFormed(t *testing.T) {
	if err := catalog.Validate(); err != nil {
		t.Fatalf("built-in catalogs failed validation: %v", err)
	}
}

// ─── ForVisa ─────────────────────────────────────────────────────────────────

func TestForVisa_ReturnsCatalogForEachVisaType(t *testing.T) {
	for _, v := range []catalog.VisaType{catalog.VisaEB1A, catalog.VisaO1A, catalog.VisaNIW} {
		cat := catalog.ForVisa(v)
		if cat == nil {
			t.Fatalf("ForVisa(%s) returned nil", v)
		}
		if cat.VisaType != v {
			t.Errorf("ForVisa(%s): catalog tagged %s", v, cat.VisaType)
		}
	}
}

func TestForVisa_UnknownTypeReturnsNil(t *testing.T) {
	if cat := catalog.ForVisa("H1B"); cat != nil {
		t.Errorf("expected nil for unknown visa type, got %v", cat.VisaType)
	}
}

func TestVisaType_Valid(t *testing.T) {
	if !catalog.VisaEB1A.Valid() || !catalog.VisaO1A.Valid() || !catalog.VisaNIW.Valid() {
		t.Error("built-in visa types should be valid")
	}
	if catalog.VisaType("eb1a").Valid() {
		t.Error("visa types are case-sensitive; lowercase should be invalid")
	}
	if catalog.VisaType("").Valid() {
		t.Error("empty visa type should be invalid")
	}
}

func TestVisaType_Display(t *testing.T) {
	cases := map[catalog.VisaType]string{
		catalog.VisaEB1A: "EB-1A",
		catalog.VisaO1A:  "O-1A",
		catalog.VisaNIW:  "NIW",
	}
	for v, want := range cases {
		if got := v.Display(); got != want {
			t.Errorf("Display(%s): got %q, want %q", v, got, want)
		}
	}
}

// ─── MaxScore ────────────────────────────────────────────────────────────────

func TestMaxScore_EB1AIsFifteen(t *testing.T) {
	// Five criteria with one question each, three points apiece.
	cat := catalog.ForVisa(catalog.VisaEB1A)
	if got := cat.MaxScore(); got != 15 {
		t.Errorf("EB1A max score: got %d, want 15", got)
	}
}

func TestMaxScore_MatchesQuestionCount(t *testing.T) {
	for _, cat := range catalog.All() {
		want := len(cat.QuestionIDs()) * catalog.MaxOptionValue
		if got := cat.MaxScore(); got != want {
			t.Errorf("%s: max score %d, want %d (questions × %d)",
				cat.VisaType, got, want, catalog.MaxOptionValue)
		}
	}
}

// ─── NIW prongs ──────────────────────────────────────────────────────────────

func TestNIWProngs_SizesMatchQuestionnaire(t *testing.T) {
	if n := len(catalog.Prong1QuestionIDs()); n != 7 {
		t.Errorf("prong 1: got %d questions, want 7", n)
	}
	if n := len(catalog.Prong2QuestionIDs()); n != 7 {
		t.Errorf("prong 2: got %d questions, want 7", n)
	}
	if n := len(catalog.Prong3QuestionIDs()); n != 6 {
		t.Errorf("prong 3: got %d questions, want 6", n)
	}
}

func TestNIWProngs_AreDisjoint(t *testing.T) {
	seen := make(map[string]int)
	for i, ids := range [][]string{
		catalog.Prong1QuestionIDs(),
		catalog.Prong2QuestionIDs(),
		catalog.Prong3QuestionIDs(),
	} {
		for _, id := range ids {
			if prev, dup := seen[id]; dup {
				t.Errorf("question %q appears in prong %d and prong %d", id, prev+1, i+1)
			}
			seen[id] = i
		}
	}
}

func TestNIWProngs_ExcludePreliminaryQuestions(t *testing.T) {
	// education and exceptional_ability feed the EB-2 check, not a prong.
	for _, ids := range [][]string{
		catalog.Prong1QuestionIDs(),
		catalog.Prong2QuestionIDs(),
		catalog.Prong3QuestionIDs(),
	} {
		for _, id := range ids {
			if id == "education" || id == "exceptional_ability" {
				t.Errorf("preliminary question %q leaked into a prong set", id)
			}
		}
	}
}
