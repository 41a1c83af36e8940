package engine

import (
	"reflect"
	"testing"

	"github.com/actuallystonmai/skincare-recommendation-service/internal/catalog"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/domain"
)

func constrained(t *testing.T, raw domain.RawAssessment) []domain.Recommendation {
	t.Helper()
	p := profileFor(raw)
	list, err := Generate(p, catalog.Default())
	if err != nil {
		t.Fatal(err)
	}
	out, err := ApplyMedicalConstraints(list, p, catalog.Default())
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestConstraintsRemoveAvoidedAndAddRequired(t *testing.T) {
	out := constrained(t, domain.RawAssessment{
		"concerns":          []any{"acne", "dullness"},
		"medicalConditions": "eczema",
		"experienceLevel":   "intermediate",
	})
	for _, id := range []string{"salicylic_acid", "lactic_acid"} {
		if _, ok := findRec(out, id); ok {
			t.Errorf("%s should be removed for eczema", id)
		}
	}
	for _, id := range []string{"gentle_cleanser", "rich_moisturizer"} {
		r, ok := findRec(out, id)
		if !ok {
			t.Errorf("%s should be required for eczema", id)
			continue
		}
		if !r.MedicallyRequired || r.Priority != priorityMedical || r.Category != domain.CategoryEssential {
			t.Errorf("%s not flagged as medically required: %+v", id, r)
		}
	}
}

func TestConstraintsSubstituteEmptiedEssential(t *testing.T) {
	out := constrained(t, domain.RawAssessment{"skinType": "oily", "medicalConditions": "rosacea"})
	if _, ok := findRec(out, "foaming_cleanser"); ok {
		t.Fatal("foaming cleanser should be avoided for rosacea")
	}
	r, ok := findRec(out, "gentle_cleanser")
	if !ok {
		t.Fatal("expected the safe cleanser substitute")
	}
	if r.Category != domain.CategoryEssential {
		t.Errorf("substitute category = %q", r.Category)
	}
	for _, id := range []string{"azelaic_acid", "mineral_sunscreen"} {
		if r, ok := findRec(out, id); !ok || !r.MedicallyRequired {
			t.Errorf("%s should be medically required", id)
		}
	}
}

func TestConstraintsAvoidBeatsRequirement(t *testing.T) {
	out := constrained(t, domain.RawAssessment{
		"skinType":          "dry",
		"medicalConditions": []any{"eczema", "perioral_dermatitis"},
	})
	if _, ok := findRec(out, "rich_moisturizer"); ok {
		t.Error("rich moisturizer is avoided for perioral dermatitis")
	}
	if !hasProductCategory(out, catalog.Moisturizer) {
		t.Error("a moisturizer substitute should be present")
	}
}

func TestConstraintsUnknownConditionIsNoop(t *testing.T) {
	p := profileFor(domain.RawAssessment{"concerns": "acne", "medicalConditions": "hayfever"})
	list, err := Generate(p, catalog.Default())
	if err != nil {
		t.Fatal(err)
	}
	out, err := ApplyMedicalConstraints(list, p, catalog.Default())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out, list) {
		t.Errorf("unknown condition changed the list:\n%v\n%v", entryIDs(list), entryIDs(out))
	}
}

func TestConstraintsDoNotMutateInput(t *testing.T) {
	p := profileFor(domain.RawAssessment{"medicalConditions": "eczema"})
	list := []domain.Recommendation{
		rec(t, "gentle_cleanser", domain.CategoryEssential, 90),
		rec(t, "foaming_cleanser", domain.CategoryEssential, 90),
	}
	before := append([]domain.Recommendation(nil), list...)
	if _, err := ApplyMedicalConstraints(list, p, catalog.Default()); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(list, before) {
		t.Error("input list was mutated")
	}
}
