package engine

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/actuallystonmai/skincare-recommendation-service/internal/catalog"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/domain"
)

func testMarket(t *testing.T, code string) catalog.Market {
	t.Helper()
	m, ok := catalog.Default().Market(code)
	if !ok {
		t.Fatalf("market %s missing", code)
	}
	return m
}

func personalize(t *testing.T, raw domain.RawAssessment, code string, list ...domain.Recommendation) []domain.Recommendation {
	t.Helper()
	tables := catalog.Default()
	p := profileFor(raw)
	scored, err := Score(list, p, tables)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Personalize(scored, p, tables, testMarket(t, code))
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestPersonalizeSwapsForBudgetAlternative(t *testing.T) {
	raw := domain.RawAssessment{"budgetTier": "budget", "experienceLevel": "intermediate", "concerns": "aging"}
	out := personalize(t, raw, "US", rec(t, "retinol", domain.CategoryTargeted, 80))

	if got, want := entryIDs(out), []string{"adapalene"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("personalized = %v, want %v", got, want)
	}
	r := out[0]
	if !r.BudgetAdjusted {
		t.Error("substitute not marked budget adjusted")
	}
	if r.Reasoning != "Replaces Retinol 0.3% (budget-friendly alternative)" {
		t.Errorf("reasoning = %q", r.Reasoning)
	}
	if r.Category != domain.CategoryTargeted || r.Priority != 80 {
		t.Errorf("substitute lost its slot: category %s priority %v", r.Category, r.Priority)
	}
	if r.Price == nil || *r.Price != (domain.Price{Min: 12, Max: 18}) {
		t.Errorf("price = %+v", r.Price)
	}
	if r.MatchScore == 0 {
		t.Error("substitute was not rescored")
	}
}

func TestPersonalizeDropsUnavailableAlternative(t *testing.T) {
	raw := domain.RawAssessment{"budgetTier": "budget", "experienceLevel": "intermediate", "concerns": "aging"}
	out := personalize(t, raw, "GB", rec(t, "retinol", domain.CategoryTargeted, 80))
	if len(out) != 0 {
		t.Errorf("expected retinol to be dropped in GB on a budget, got %v", entryIDs(out))
	}
}

func TestPersonalizeLocalizesNameAndPrice(t *testing.T) {
	raw := domain.RawAssessment{"budgetTier": "mid-range", "experienceLevel": "intermediate"}
	out := personalize(t, raw, "GB", rec(t, "retinol", domain.CategoryTargeted, 80))
	if len(out) != 1 {
		t.Fatalf("got %v", entryIDs(out))
	}
	if out[0].Name != "Retinol 0.3% Serum 30ml" {
		t.Errorf("name = %q", out[0].Name)
	}
	if *out[0].Price != (domain.Price{Min: 34, Max: 34}) {
		t.Errorf("price = %+v", *out[0].Price)
	}
	if out[0].BudgetAdjusted {
		t.Error("in-budget candidate marked as adjusted")
	}
}

func TestPersonalizeKeepsMedicallyRequired(t *testing.T) {
	r := rec(t, "barrier_repair_cream", domain.CategoryEssential, 100)
	r.MedicallyRequired = true
	out := personalize(t, domain.RawAssessment{"budgetTier": "budget"}, "US", r)
	if got, want := entryIDs(out), []string{"barrier_repair_cream"}; !reflect.DeepEqual(got, want) {
		t.Errorf("personalized = %v, want %v", got, want)
	}
}

func TestPersonalizeSkipsAlternativeAlreadyListed(t *testing.T) {
	out := personalize(t, domain.RawAssessment{"budgetTier": "budget"}, "US",
		rec(t, "mineral_sunscreen", domain.CategoryEssential, 90),
		rec(t, "chemical_sunscreen", domain.CategoryEssential, 90),
	)
	if got, want := entryIDs(out), []string{"chemical_sunscreen"}; !reflect.DeepEqual(got, want) {
		t.Errorf("personalized = %v, want %v", got, want)
	}
}

func TestPersonalizeRejectsClashingAlternative(t *testing.T) {
	raw := domain.RawAssessment{"budgetTier": "budget", "experienceLevel": "intermediate"}
	out := personalize(t, raw, "US",
		rec(t, "retinol", domain.CategoryTargeted, 80),
		rec(t, "salicylic_acid", domain.CategoryTargeted, 70),
	)
	if got, want := entryIDs(out), []string{"salicylic_acid"}; !reflect.DeepEqual(got, want) {
		t.Errorf("personalized = %v, want %v", got, want)
	}
}

func TestPersonalizeUsesSafeEssentialForUncoveredCategory(t *testing.T) {
	// Perioral dermatitis forbids the rich moisturizer that would replace the
	// barrier cream, so the safe moisturizer covers the category instead.
	raw := domain.RawAssessment{
		"skinType":          "sensitive",
		"budgetTier":        "budget",
		"medicalConditions": "perioral dermatitis",
	}
	out := personalize(t, raw, "US", rec(t, "barrier_repair_cream", domain.CategoryEssential, 90))
	if got, want := entryIDs(out), []string{"lightweight_moisturizer"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("personalized = %v, want %v", got, want)
	}
	r := out[0]
	if !r.BudgetAdjusted || r.Reasoning != "Replaces Barrier Repair Cream (budget-friendly alternative)" {
		t.Errorf("substitute = %+v", r)
	}
	if r.Category != domain.CategoryEssential || r.Priority != 90 {
		t.Errorf("substitute lost its slot: category %s priority %v", r.Category, r.Priority)
	}
	if strings.HasSuffix(r.Reasoning, overBudgetNote) {
		t.Error("affordable substitute marked over budget")
	}
}

func TestPersonalizeKeepsLastEssentialOverBudget(t *testing.T) {
	// Nothing fits this band, so the only moisturizer stays despite its price.
	tables := catalog.Default()
	p := profileFor(domain.RawAssessment{
		"skinType":          "sensitive",
		"budgetTier":        "budget",
		"medicalConditions": "perioral dermatitis",
	})
	tight := catalog.Market{Code: "XX", Currency: "XXX", Bands: map[string]catalog.PriceRange{"budget": {Min: 0, Max: 5}}}

	scored, err := Score([]domain.Recommendation{rec(t, "barrier_repair_cream", domain.CategoryEssential, 90)}, p, tables)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Personalize(scored, p, tables, tight)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].EntryID != "barrier_repair_cream" {
		t.Fatalf("personalized = %v", entryIDs(out))
	}
	if !strings.HasSuffix(out[0].Reasoning, "(no alternative within budget)") {
		t.Errorf("reasoning = %q", out[0].Reasoning)
	}
}

func TestPersonalizeDropsExtraEssentialOverBudget(t *testing.T) {
	raw := domain.RawAssessment{"skinType": "sensitive", "budgetTier": "budget", "medicalConditions": "perioral dermatitis"}
	out := personalize(t, raw, "US",
		rec(t, "barrier_repair_cream", domain.CategoryEssential, 90),
		rec(t, "lightweight_moisturizer", domain.CategoryEssential, 90),
	)
	if got, want := entryIDs(out), []string{"lightweight_moisturizer"}; !reflect.DeepEqual(got, want) {
		t.Errorf("personalized = %v, want %v", got, want)
	}
}

func TestPersonalizeUnknownEntry(t *testing.T) {
	_, err := Personalize([]domain.Recommendation{{EntryID: "unicorn_tears"}}, profileFor(nil), catalog.Default(), testMarket(t, "US"))
	if !errors.Is(err, catalog.ErrUnknownEntry) {
		t.Errorf("expected ErrUnknownEntry, got %v", err)
	}
}
