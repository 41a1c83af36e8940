package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/actuallystonmai/skincare-recommendation-service/internal/catalog"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/domain"
)

func TestGenerateEssentials(t *testing.T) {
	tests := []struct {
		name string
		raw  domain.RawAssessment
		want []string
	}{
		{"normal", domain.RawAssessment{}, []string{"gentle_cleanser", "lightweight_moisturizer", "chemical_sunscreen"}},
		{"sensitive skin", domain.RawAssessment{"skinType": "sensitive"}, []string{"gentle_cleanser", "barrier_repair_cream", "mineral_sunscreen"}},
		{"high sensitivity", domain.RawAssessment{"sensitivity": 9}, []string{"gentle_cleanser", "lightweight_moisturizer", "mineral_sunscreen"}},
		{"oily acne intermediate", domain.RawAssessment{"skinType": "oily", "concerns": "acne", "experienceLevel": "intermediate"}, []string{"salicylic_cleanser", "lightweight_moisturizer", "matte_sunscreen"}},
		{"oily acne beginner", domain.RawAssessment{"skinType": "oily", "concerns": "acne"}, []string{"foaming_cleanser", "lightweight_moisturizer", "matte_sunscreen"}},
		{"dry", domain.RawAssessment{"skinType": "dry"}, []string{"cream_cleanser", "rich_moisturizer", "chemical_sunscreen"}},
		{"combination in cold climate", domain.RawAssessment{"skinType": "combination", "climate": "cold"}, []string{"foaming_cleanser", "rich_moisturizer", "matte_sunscreen"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := Generate(profileFor(tt.raw), catalog.Default())
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			got := entryIDs(list[:3])
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("essentials = %v, want %v", got, tt.want)
			}
			for _, r := range list[:3] {
				if r.Category != domain.CategoryEssential || r.Priority != priorityEssential {
					t.Errorf("%s: category %q priority %v", r.EntryID, r.Category, r.Priority)
				}
			}
		})
	}
}

func TestGenerateWithholdsStrongActivesFromBeginners(t *testing.T) {
	beginner, err := Generate(profileFor(domain.RawAssessment{"concerns": []any{"acne", "aging"}}), catalog.Default())
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"salicylic_acid", "retinol"} {
		if _, ok := findRec(beginner, id); ok {
			t.Errorf("beginner received %s", id)
		}
	}
	if _, ok := findRec(beginner, "niacinamide"); !ok {
		t.Error("beginner should receive niacinamide")
	}

	intermediate, err := Generate(profileFor(domain.RawAssessment{"concerns": []any{"acne", "aging"}, "experienceLevel": "intermediate"}), catalog.Default())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := findRec(intermediate, "salicylic_acid"); !ok {
		t.Error("intermediate user should receive salicylic_acid")
	}
}

func TestGenerateGatesOnEntryExperience(t *testing.T) {
	tests := []struct {
		level    string
		glycolic bool
	}{
		{"beginner", false},
		{"intermediate", false},
		{"advanced", true},
		{"expert", true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			list, err := Generate(profileFor(domain.RawAssessment{"concerns": "texture", "experienceLevel": tt.level}), catalog.Default())
			if err != nil {
				t.Fatal(err)
			}
			if _, ok := findRec(list, "glycolic_acid"); ok != tt.glycolic {
				t.Errorf("glycolic_acid offered = %v, want %v", ok, tt.glycolic)
			}
			if _, ok := findRec(list, "pha_toner"); !ok {
				t.Error("pha_toner should be offered at every level")
			}
		})
	}
}

func TestGenerateIgnoresUngatedRuleForAdvancedEntry(t *testing.T) {
	tables := withTables(func(tb *catalog.Tables) {
		tb.ConcernRules = map[string][]catalog.CandidateRule{
			"texture": {{EntryID: "glycolic_acid", Category: domain.CategoryTargeted, Reason: "test"}},
		}
	})
	list, err := Generate(profileFor(domain.RawAssessment{"concerns": "texture"}), tables)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := findRec(list, "glycolic_acid"); ok {
		t.Error("beginner received an advanced entry through a rule without MinExperience")
	}
}

func TestGenerateConcernPriorities(t *testing.T) {
	list, err := Generate(profileFor(domain.RawAssessment{
		"concerns":        []any{"redness", "acne"},
		"experienceLevel": "intermediate",
	}), catalog.Default())
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]float64{
		"niacinamide":    80,
		"salicylic_acid": 75,
		"azelaic_acid":   70,
		"centella":       65,
	}
	for id, priority := range want {
		r, ok := findRec(list, id)
		if !ok {
			t.Errorf("missing %s", id)
			continue
		}
		if r.Priority != priority {
			t.Errorf("%s priority = %v, want %v", id, r.Priority, priority)
		}
	}
}

func TestGenerateDeduplicatesKeepingFirst(t *testing.T) {
	list, err := Generate(profileFor(domain.RawAssessment{
		"skinType": "combination",
		"concerns": "oiliness",
		"climate":  "humid",
		"age":      20,
	}), catalog.Default())
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	for _, r := range list {
		if r.EntryID == "niacinamide" {
			count++
			if r.Priority != priorityConcern || r.Category != domain.CategoryTargeted {
				t.Errorf("niacinamide kept from the wrong generator: %+v", r)
			}
		}
	}
	if count != 1 {
		t.Errorf("niacinamide appears %d times", count)
	}
}

func TestGenerateUnknownEntry(t *testing.T) {
	tables := withTables(func(t *catalog.Tables) {
		t.ConcernRules = map[string][]catalog.CandidateRule{
			"acne": {{EntryID: "does_not_exist", Category: domain.CategoryTargeted}},
		}
	})
	_, err := Generate(profileFor(domain.RawAssessment{"concerns": "acne"}), tables)
	if !errors.Is(err, catalog.ErrUnknownEntry) {
		t.Fatalf("expected ErrUnknownEntry, got %v", err)
	}
}

func TestEveryConcernRuleProducesValidCandidates(t *testing.T) {
	tables := catalog.Default()
	for concern, rules := range tables.ConcernRules {
		p := profileFor(domain.RawAssessment{"concerns": concern, "experienceLevel": "expert"})
		list, err := Generate(p, tables)
		if err != nil {
			t.Fatalf("concern %s: %v", concern, err)
		}
		for _, rule := range rules {
			if _, ok := findRec(list, rule.EntryID); !ok {
				t.Errorf("concern %s: missing %s", concern, rule.EntryID)
			}
		}
	}
}
