package engine

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/actuallystonmai/skincare-recommendation-service/internal/domain"
)

func TestNormalizeSensitivityClamp(t *testing.T) {
	tests := []struct {
		name string
		raw  domain.RawAssessment
		want int
	}{
		{"too high", domain.RawAssessment{"sensitivity": 999}, 10},
		{"negative", domain.RawAssessment{"sensitivity": -5}, 1},
		{"missing", domain.RawAssessment{}, 5},
		{"zero means unset", domain.RawAssessment{"sensitivity": 0}, 5},
		{"json float", domain.RawAssessment{"sensitivity": float64(7.9)}, 7},
		{"numeric string", domain.RawAssessment{"sensitivity": " 8 "}, 8},
		{"garbage string", domain.RawAssessment{"sensitivity": "very"}, 5},
		{"json number", domain.RawAssessment{"sensitivity": json.Number("3")}, 3},
		{"huge float", domain.RawAssessment{"sensitivity": 1e300}, 10},
		{"wrong type", domain.RawAssessment{"sensitivity": []any{1}}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.raw).Sensitivity; got != tt.want {
				t.Errorf("sensitivity = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNormalizeDefaults(t *testing.T) {
	a := Normalize(nil)
	want := domain.Assessment{
		SkinType:          domain.DefaultSkinType,
		Concerns:          []string{},
		MedicalConditions: []string{},
		AgeBracket:        domain.DefaultAgeBracket,
		Gender:            domain.DefaultGender,
		Sensitivity:       domain.DefaultSensitivity,
		Climate:           domain.DefaultClimate,
		BudgetTier:        domain.DefaultBudgetTier,
		ExperienceLevel:   domain.DefaultExperience,
		Goals:             []string{},
		Lifestyle:         domain.DefaultLifestyle,
		Market:            domain.DefaultMarket,
	}
	if !reflect.DeepEqual(a, want) {
		t.Errorf("Normalize(nil) =\n%+v\nwant\n%+v", a, want)
	}
}

func TestNormalizeFields(t *testing.T) {
	a := Normalize(domain.RawAssessment{
		"skinType":           "Oily",
		"concerns":           []any{"Acne Breakouts", "", nil, false, "dark-spots", "acne"},
		"medical_conditions": "atopic dermatitis",
		"age":                41,
		"gender":             "Non-Binary",
		"climate":            "HUMID",
		"budgetTier":         "Mid Range",
		"experienceLevel":    "Advanced",
		"goals":              "glow, even tone",
		"lifestyle":          "outdoor",
		"freeTextConcerns":   "  itchy after showers  ",
		"country":            "uk",
		"unknown_field":      true,
	})

	checks := []struct {
		field string
		got   any
		want  any
	}{
		{"skin type", a.SkinType, "oily"},
		{"concerns", a.Concerns, []string{"acne", "hyperpigmentation"}},
		{"conditions", a.MedicalConditions, []string{"eczema"}},
		{"age bracket", a.AgeBracket, "35_44"},
		{"gender", a.Gender, "non_binary"},
		{"climate", a.Climate, "humid"},
		{"budget", a.BudgetTier, "mid-range"},
		{"experience", a.ExperienceLevel, "advanced"},
		{"goals", a.Goals, []string{"glow", "even_tone"}},
		{"lifestyle", a.Lifestyle, "outdoor"},
		{"free text", a.FreeTextConcerns, "itchy after showers"},
		{"market", a.Market, "GB"},
	}
	for _, c := range checks {
		if !reflect.DeepEqual(c.got, c.want) {
			t.Errorf("%s = %#v, want %#v", c.field, c.got, c.want)
		}
	}
}

func TestNormalizeInvalidEnumsFallBack(t *testing.T) {
	a := Normalize(domain.RawAssessment{
		"skin_type":        "scaly",
		"climate":          42,
		"budget_tier":      "free",
		"experience_level": "guru",
		"market":           "Narnia",
		"age_bracket":      "ancient",
	})
	if a.SkinType != domain.DefaultSkinType || a.Climate != domain.DefaultClimate ||
		a.BudgetTier != domain.DefaultBudgetTier || a.ExperienceLevel != domain.DefaultExperience ||
		a.Market != domain.DefaultMarket || a.AgeBracket != domain.DefaultAgeBracket {
		t.Errorf("expected defaults, got %+v", a)
	}
}

func TestNormalizeAgeBands(t *testing.T) {
	tests := []struct {
		raw  domain.RawAssessment
		want string
	}{
		{domain.RawAssessment{"age": 16}, "under_18"},
		{domain.RawAssessment{"age": float64(18)}, "18_24"},
		{domain.RawAssessment{"age": "34"}, "25_34"},
		{domain.RawAssessment{"age": 54}, "45_54"},
		{domain.RawAssessment{"age": 70}, "55_plus"},
		{domain.RawAssessment{"age": "55+"}, "55_plus"},
		{domain.RawAssessment{"ageBracket": "18-24"}, "18_24"},
		{domain.RawAssessment{"age_bracket": "45_54", "age": 20}, "45_54"},
		{domain.RawAssessment{"age": -3}, domain.DefaultAgeBracket},
	}
	for _, tt := range tests {
		if got := Normalize(tt.raw).AgeBracket; got != tt.want {
			t.Errorf("Normalize(%v).AgeBracket = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []domain.RawAssessment{
		nil,
		{},
		{"sensitivity": 999, "concerns": "acne"},
		{"skinType": "COMBINATION", "concerns": []any{"pores", "Fine Lines"}, "goals": []any{"glow"}},
		{"medicalConditions": []string{"Rosacea", "pregnant"}, "age": 62, "market": "in"},
		{"budget": "midrange", "experience": "Expert", "freeTextConcerns": 12, "lifestyle": "ACTIVE"},
		{"sensitivity": "2.5", "climate": "cold", "gender": "female", "country": "USA"},
	}
	for _, raw := range inputs {
		once := Normalize(raw)
		twice := Normalize(once.Raw())
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("normalize not idempotent for %v:\nonce  %+v\ntwice %+v", raw, once, twice)
		}
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	concerns := []any{"Acne", "dry skin"}
	raw := domain.RawAssessment{"concerns": concerns, "sensitivity": 99}
	Normalize(raw)
	if concerns[0] != "Acne" || raw["sensitivity"] != 99 {
		t.Errorf("input mutated: %v", raw)
	}
}
