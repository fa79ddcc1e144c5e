// Package catalog defines the static question catalogs for the three visa
// categories. It is intentionally dependency-free: it imports nothing from
// internal/ and the data never changes after startup. Validate() is run once
// from main — the server refuses to start on a malformed catalog, so the
// scoring engine can trust the data unconditionally.
package catalog

import (
	"fmt"
)

// VisaType identifies one of the three supported visa categories. String
// values match the identifiers the frontend sends and the case-study catalog
// uses for display mapping.
type VisaType string

const (
	VisaEB1A VisaType = "EB1A"
	VisaO1A  VisaType = "O1A"
	VisaNIW  VisaType = "NIW"
)

// Valid reports whether v is one of the three supported categories.
func (v VisaType) Valid() bool {
	switch v {
	case VisaEB1A, VisaO1A, VisaNIW:
		return true
	}
	return false
}

// Display returns the human-readable form used in case studies and emails.
func (v VisaType) Display() string {
	switch v {
	case VisaEB1A:
		return "EB-1A"
	case VisaO1A:
		return "O-1A"
	case VisaNIW:
		return "NIW"
	}
	return string(v)
}

// MaxOptionValue is the highest point value an answer option can carry.
const MaxOptionValue = 3

// Option is one selectable answer for a question. Value is the point
// contribution in {0,1,2,3}.
type Option struct {
	Value int
	Label string
}

// Question belongs to exactly one criterion. ID is stable and globally unique
// within a visa type's catalog — it is the key of the response map.
type Question struct {
	ID      string
	Prompt  string
	Subtext string // optional clarification shown under the prompt
	Options []Option
}

// MaxScore returns the highest value among the question's options.
func (q Question) MaxScore() int {
	max := 0
	for _, o := range q.Options {
		if o.Value > max {
			max = o.Value
		}
	}
	return max
}

// Criterion groups one or more questions under a named evidentiary category
// (e.g. "Awards & Prizes"). Title and Description are display-only.
type Criterion struct {
	ID          string
	Title       string
	Description string
	Questions   []Question
}

// MaxScore is the criterion's contribution to the maximum possible total.
func (c Criterion) MaxScore() int {
	return len(c.Questions) * MaxOptionValue
}

// Catalog is the full question set for one visa type.
type Catalog struct {
	VisaType VisaType
	Criteria []Criterion
}

// ForVisa returns the catalog for the given visa type, or nil if the type is
// unknown. The returned catalog is shared and must not be mutated.
func ForVisa(v VisaType) *Catalog {
	switch v {
	case VisaEB1A:
		return &eb1aCatalog
	case VisaO1A:
		return &o1aCatalog
	case VisaNIW:
		return &niwCatalog
	}
	return nil
}

// All returns every catalog, used by Validate and by tests.
func All() []*Catalog {
	return []*Catalog{&eb1aCatalog, &o1aCatalog, &niwCatalog}
}

// MaxScore is the maximum achievable total across all criteria.
func (c *Catalog) MaxScore() int {
	total := 0
	for _, cr := range c.Criteria {
		total += cr.MaxScore()
	}
	return total
}

// QuestionIDs returns every question ID in catalog order.
func (c *Catalog) QuestionIDs() []string {
	var ids []string
	for _, cr := range c.Criteria {
		for _, q := range cr.Questions {
			ids = append(ids, q.ID)
		}
	}
	return ids
}

// ─── NIW PRONG SETS ──────────────────────────────────────────────────────────

// NIW criteria are grouped into the preliminary EB-2 check plus the three
// legal prongs. The criterion IDs below are the grouping keys used by the
// scoring engine; Prong1QuestionIDs etc. return the disjoint question-ID sets.
const (
	NIWPreliminaryID = "preliminary"
	NIWProng1ID      = "prong1"
	NIWProng2ID      = "prong2"
	NIWProng3ID      = "prong3"
)

// niwProngQuestions finds the question IDs of one NIW criterion group.
func niwProngQuestions(criterionID string) []string {
	for _, cr := range niwCatalog.Criteria {
		if cr.ID == criterionID {
			var ids []string
			for _, q := range cr.Questions {
				ids = append(ids, q.ID)
			}
			return ids
		}
	}
	return nil
}

// Prong1QuestionIDs returns the question IDs scored under prong 1
// (substantial merit and national importance).
func Prong1QuestionIDs() []string { return niwProngQuestions(NIWProng1ID) }

// Prong2QuestionIDs returns the question IDs scored under prong 2
// (well-positioned to advance the endeavor).
func Prong2QuestionIDs() []string { return niwProngQuestions(NIWProng2ID) }

// Prong3QuestionIDs returns the question IDs scored under prong 3
// (the balancing test).
func Prong3QuestionIDs() []string { return niwProngQuestions(NIWProng3ID) }

// ─── VALIDATION ──────────────────────────────────────────────────────────────

// Validate checks every catalog's structural invariants. Call once at
// startup, not on every request.
//
// Invariants:
//   - every catalog has at least one criterion, every criterion at least one
//     question, every question at least two options
//   - question IDs are unique within a catalog
//   - option values are distinct, within [0, MaxOptionValue], and the maximum
//     value MaxOptionValue is always reachable
//   - the NIW prong question-ID sets are mutually disjoint
func Validate() error {
	for _, cat := range All() {
		if err := cat.validate(); err != nil {
			return fmt.Errorf("catalog %s: %w", cat.VisaType, err)
		}
	}

	// NIW prongs must not share question IDs — per-prong sums would otherwise
	// double-count.
	seen := make(map[string]string)
	for _, group := range []struct {
		name string
		ids  []string
	}{
		{NIWProng1ID, Prong1QuestionIDs()},
		{NIWProng2ID, Prong2QuestionIDs()},
		{NIWProng3ID, Prong3QuestionIDs()},
	} {
		if len(group.ids) == 0 {
			return fmt.Errorf("catalog NIW: prong group %q has no questions", group.name)
		}
		for _, id := range group.ids {
			if other, dup := seen[id]; dup {
				return fmt.Errorf("catalog NIW: question %q appears in both %s and %s", id, other, group.name)
			}
			seen[id] = group.name
		}
	}
	return nil
}

func (c *Catalog) validate() error {
	if len(c.Criteria) == 0 {
		return fmt.Errorf("no criteria defined")
	}

	questionIDs := make(map[string]bool)
	for _, cr := range c.Criteria {
		if cr.ID == "" {
			return fmt.Errorf("criterion with empty id")
		}
		if len(cr.Questions) == 0 {
			return fmt.Errorf("criterion %q has no questions", cr.ID)
		}
		for _, q := range cr.Questions {
			if q.ID == "" {
				return fmt.Errorf("criterion %q: question with empty id", cr.ID)
			}
			if questionIDs[q.ID] {
				return fmt.Errorf("duplicate question id %q", q.ID)
			}
			questionIDs[q.ID] = true

			if len(q.Options) < 2 {
				return fmt.Errorf("question %q: needs at least 2 options, has %d", q.ID, len(q.Options))
			}
			values := make(map[int]bool)
			maxReached := false
			for _, o := range q.Options {
				if o.Value < 0 || o.Value > MaxOptionValue {
					return fmt.Errorf("question %q: option value %d out of range [0,%d]", q.ID, o.Value, MaxOptionValue)
				}
				if values[o.Value] {
					return fmt.Errorf("question %q: duplicate option value %d", q.ID, o.Value)
				}
				values[o.Value] = true
				if o.Value == MaxOptionValue {
					maxReached = true
				}
			}
			if !maxReached {
				return fmt.Errorf("question %q: maximum value %d is not reachable", q.ID, MaxOptionValue)
			}
		}
	}
	return nil
}
