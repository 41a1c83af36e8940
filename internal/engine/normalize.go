package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/actuallystonmai/skincare-recommendation-service/internal/domain"
)

// concernAliases maps spellings seen in questionnaire data onto the canonical
// concern vocabulary.
var concernAliases = map[string]string{
	"acne_breakouts":  "acne",
	"breakouts":       "acne",
	"anti_aging":      "aging",
	"fine_lines":      "aging",
	"wrinkles":        "aging",
	"dark_spots":      "hyperpigmentation",
	"pigmentation":    "hyperpigmentation",
	"pores":           "large_pores",
	"enlarged_pores":  "large_pores",
	"uneven_texture":  "texture",
	"dry_skin":        "dryness",
	"oily_skin":       "oiliness",
	"sensitive_skin":  "sensitivity",
	"dull_skin":       "dullness",
	"rosacea_redness": "redness",
}

var conditionAliases = map[string]string{
	"atopic_dermatitis": "eczema",
	"pregnant":          "pregnancy",
	"breastfeeding":     "pregnancy",
	"seborrheic":        "seborrheic_dermatitis",
	"perioral":          "perioral_dermatitis",
}

var marketAliases = map[string]string{
	"UK":  "GB",
	"USA": "US",
	"IND": "IN",
}

var (
	skinTypes   = set(domain.SkinNormal, domain.SkinDry, domain.SkinOily, domain.SkinCombination, domain.SkinSensitive)
	ageBrackets = set("under_18", "18_24", "25_34", "35_44", "45_54", "55_plus")
	genders     = set("female", "male", "non_binary", domain.DefaultGender)
	climates    = set(domain.ClimateHumid, domain.ClimateDry, domain.ClimateCold, domain.ClimateHot, domain.ClimateTemperate)
	budgetTiers = set(domain.BudgetTierBudget, domain.BudgetTierMidRange, domain.BudgetTierPremium, domain.BudgetTierLuxury)
	experiences = set(domain.ExperienceBeginner, domain.ExperienceIntermediate, domain.ExperienceAdvanced, domain.ExperienceExpert)
	lifestyles  = set(domain.LifestyleSedentary, domain.LifestyleModerate, domain.LifestyleActive, domain.LifestyleOutdoor)
)

// Normalize turns a raw assessment into a fully populated Assessment. It never
// fails: missing, malformed and out-of-range values fall back to defaults.
// Keys are accepted in camelCase or snake_case; unknown keys are ignored.
// Normalize(Normalize(raw).Raw()) equals Normalize(raw).
func Normalize(raw domain.RawAssessment) domain.Assessment {
	return domain.Assessment{
		SkinType:          enum(lookup(raw, "skinType", "skin_type"), skinTypes, domain.DefaultSkinType),
		Concerns:          tagList(lookup(raw, "concerns"), concernAliases),
		MedicalConditions: tagList(lookup(raw, "medicalConditions", "medical_conditions"), conditionAliases),
		AgeBracket:        ageBracket(raw),
		Gender:            enum(lookup(raw, "gender"), genders, domain.DefaultGender),
		Sensitivity:       sensitivity(lookup(raw, "sensitivity")),
		Climate:           enum(lookup(raw, "climate"), climates, domain.DefaultClimate),
		BudgetTier:        budgetTier(lookup(raw, "budgetTier", "budget_tier", "budget")),
		ExperienceLevel:   enum(lookup(raw, "experienceLevel", "experience_level", "experience"), experiences, domain.DefaultExperience),
		Goals:             tagList(lookup(raw, "goals"), nil),
		Lifestyle:         enum(lookup(raw, "lifestyle"), lifestyles, domain.DefaultLifestyle),
		FreeTextConcerns:  freeText(lookup(raw, "freeTextConcerns", "free_text_concerns")),
		Market:            market(lookup(raw, "market", "country")),
	}
}

func lookup(raw domain.RawAssessment, keys ...string) any {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func set(values ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}

// canonical lowercases a token and joins words with underscores.
func canonical(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return strings.Trim(s, "_")
}

func enum(v any, allowed map[string]struct{}, def string) string {
	s, ok := v.(string)
	if !ok {
		return def
	}
	s = canonical(s)
	if _, ok := allowed[s]; !ok {
		return def
	}
	return s
}

// tagList coerces v into a deduplicated list of canonical tags. Scalars are
// wrapped, comma-separated strings split, and falsy or non-string items dropped.
func tagList(v any, aliases map[string]string) []string {
	var items []string
	switch x := v.(type) {
	case string:
		items = strings.Split(x, ",")
	case []string:
		items = x
	case []any:
		for _, item := range x {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
	}

	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		tag := canonical(item)
		if tag == "" {
			continue
		}
		if alias, ok := aliases[tag]; ok {
			tag = alias
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// sensitivity parses an integer sensitivity. Zero and unparseable values take
// the default; everything else is clamped into range.
func sensitivity(v any) int {
	n, ok := toInt(v)
	if !ok || n == 0 {
		return domain.DefaultSensitivity
	}
	return min(max(n, domain.MinSensitivity), domain.MaxSensitivity)
}

func toInt(v any) (int, bool) {
	var f float64
	switch x := v.(type) {
	case int:
		return x, true
	case int64:
		f = float64(x)
	case float64:
		f = x
	case float32:
		f = float64(x)
	case json.Number:
		if n, err := x.Int64(); err == nil {
			f = float64(n)
		} else if fl, err := x.Float64(); err == nil {
			f = fl
		} else {
			return 0, false
		}
	case string:
		s := strings.TrimSpace(x)
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
		fl, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = fl
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	// Saturate before converting so huge values still clamp to the maximum.
	f = math.Max(math.Min(math.Trunc(f), 1e6), -1e6)
	return int(f), true
}

func budgetTier(v any) string {
	s, ok := v.(string)
	if !ok {
		return domain.DefaultBudgetTier
	}
	s = strings.ReplaceAll(canonical(s), "_", "-")
	if s == "midrange" || s == "mid" || s == "medium" {
		s = domain.BudgetTierMidRange
	}
	if _, ok := budgetTiers[s]; !ok {
		return domain.DefaultBudgetTier
	}
	return s
}

// ageBracket prefers an explicit bracket and otherwise bands a numeric age.
func ageBracket(raw domain.RawAssessment) string {
	if s, ok := lookup(raw, "ageBracket", "age_bracket", "ageRange", "age_range").(string); ok {
		b := canonical(strings.ReplaceAll(s, "+", "_plus"))
		if _, ok := ageBrackets[b]; ok {
			return b
		}
	}
	v := lookup(raw, "age")
	if s, ok := v.(string); ok {
		b := canonical(strings.ReplaceAll(s, "+", "_plus"))
		if _, ok := ageBrackets[b]; ok {
			return b
		}
	}
	age, ok := toInt(v)
	if !ok || age <= 0 {
		return domain.DefaultAgeBracket
	}
	switch {
	case age < 18:
		return "under_18"
	case age < 25:
		return "18_24"
	case age < 35:
		return "25_34"
	case age < 45:
		return "35_44"
	case age < 55:
		return "45_54"
	default:
		return "55_plus"
	}
}

func freeText(v any) string {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x)
	case []any:
		parts := make([]string, 0, len(x))
		for _, p := range x {
			if s, ok := p.(string); ok && strings.TrimSpace(s) != "" {
				parts = append(parts, strings.TrimSpace(s))
			}
		}
		return strings.Join(parts, "; ")
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(x))
	}
}

func market(v any) string {
	s, ok := v.(string)
	if !ok {
		return domain.DefaultMarket
	}
	code := strings.ToUpper(strings.TrimSpace(s))
	if alias, ok := marketAliases[code]; ok {
		code = alias
	}
	if len(code) != 2 || code[0] < 'A' || code[0] > 'Z' || code[1] < 'A' || code[1] > 'Z' {
		return domain.DefaultMarket
	}
	return code
}
