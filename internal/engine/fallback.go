package engine

import (
	"time"

	"github.com/actuallystonmai/skincare-recommendation-service/internal/domain"
)

// The fallback path depends on nothing but these literals so that it still
// works when the reference tables are broken.

type fallbackItem struct {
	id       string
	name     string
	category string
}

var fallbackEssentials = map[string][]fallbackItem{
	domain.SkinNormal: {
		{"gentle_cleanser", "Gentle Hydrating Cleanser", "cleanser"},
		{"lightweight_moisturizer", "Lightweight Gel Moisturizer", "moisturizer"},
		{"chemical_sunscreen", "Lightweight Sunscreen SPF 50", "sunscreen"},
	},
	domain.SkinDry: {
		{"cream_cleanser", "Nourishing Cream Cleanser", "cleanser"},
		{"rich_moisturizer", "Rich Ceramide Moisturizer", "moisturizer"},
		{"chemical_sunscreen", "Lightweight Sunscreen SPF 50", "sunscreen"},
	},
	domain.SkinOily: {
		{"foaming_cleanser", "Oil Control Foaming Cleanser", "cleanser"},
		{"lightweight_moisturizer", "Lightweight Gel Moisturizer", "moisturizer"},
		{"matte_sunscreen", "Matte Finish Sunscreen SPF 50", "sunscreen"},
	},
	domain.SkinCombination: {
		{"gentle_cleanser", "Gentle Hydrating Cleanser", "cleanser"},
		{"lightweight_moisturizer", "Lightweight Gel Moisturizer", "moisturizer"},
		{"matte_sunscreen", "Matte Finish Sunscreen SPF 50", "sunscreen"},
	},
	domain.SkinSensitive: {
		{"gentle_cleanser", "Gentle Hydrating Cleanser", "cleanser"},
		{"barrier_repair_cream", "Barrier Repair Cream", "moisturizer"},
		{"mineral_sunscreen", "Mineral Sunscreen SPF 50", "sunscreen"},
	},
}

var fallbackCurrencies = map[string]string{
	"US": "USD",
	"GB": "GBP",
	"IN": "INR",
}

var fallbackNames = map[string]map[string]string{
	"GB": {
		"gentle_cleanser":         "Gentle Hydrating Cleanser 236ml",
		"cream_cleanser":          "Cream Cleansing Balm 125ml",
		"foaming_cleanser":        "Foaming Facial Cleanser 236ml",
		"lightweight_moisturizer": "Oil-Free Gel Moisturiser 50ml",
		"rich_moisturizer":        "Ceramide Moisturising Cream 177ml",
		"barrier_repair_cream":    "Barrier Repair Cream 50ml",
		"chemical_sunscreen":      "Invisible Fluid SPF50 50ml",
		"matte_sunscreen":         "Mattifying Sun Fluid SPF50 50ml",
		"mineral_sunscreen":       "Mineral Fluid SPF50 50ml",
	},
	"IN": {
		"gentle_cleanser":         "Gentle Skin Cleanser 125ml",
		"cream_cleanser":          "Hydrating Cream Cleanser 100ml",
		"foaming_cleanser":        "Oil Control Foaming Face Wash 100ml",
		"lightweight_moisturizer": "Oil-Free Gel Moisturizer 50g",
		"rich_moisturizer":        "Ceramide Moisturizing Cream 50g",
		"barrier_repair_cream":    "Barrier Repair Cream 50g",
		"chemical_sunscreen":      "Ultra Light Sunscreen SPF 50 50g",
		"matte_sunscreen":         "Matte Finish Sunscreen SPF 50 50g",
		"mineral_sunscreen":       "Mineral Sunscreen SPF 50 50g",
	},
}

const (
	fallbackMessage  = "We could not complete your personalized analysis. These are safe basics for your skin type; please retake the assessment."
	fallbackMedical  = "You listed medical skin conditions. Check these basics with your dermatologist before use."
	fallbackGuidance = "Retake the assessment to receive a personalized routine."
	fallbackFailure  = "recommendation pipeline failed"
)

// Fallback returns the minimal, always-safe result for the raw assessment's
// skin type and market. It never panics and never returns nil. The result
// carries a fixed error text; callers log the underlying failure.
func Fallback(raw domain.RawAssessment) (res *domain.RecommendationResult) {
	defer func() {
		if r := recover(); r != nil {
			res = buildFallback(domain.Assessment{
				SkinType:        domain.DefaultSkinType,
				Sensitivity:     domain.DefaultSensitivity,
				AgeBracket:      domain.DefaultAgeBracket,
				Gender:          domain.DefaultGender,
				Climate:         domain.DefaultClimate,
				BudgetTier:      domain.DefaultBudgetTier,
				ExperienceLevel: domain.DefaultExperience,
				Lifestyle:       domain.DefaultLifestyle,
				Market:          domain.DefaultMarket,
			})
		}
	}()
	return buildFallback(Normalize(raw))
}

func buildFallback(a domain.Assessment) *domain.RecommendationResult {
	items, ok := fallbackEssentials[a.SkinType]
	if !ok {
		items = fallbackEssentials[domain.DefaultSkinType]
	}
	market := a.Market
	currency, ok := fallbackCurrencies[market]
	if !ok {
		market, currency = domain.DefaultMarket, fallbackCurrencies[domain.DefaultMarket]
	}

	essentials := make([]domain.Recommendation, 0, len(items))
	morning := make([]domain.RoutineStep, 0, len(items))
	evening := make([]domain.RoutineStep, 0, len(items))
	for _, item := range items {
		name := item.name
		if local, ok := fallbackNames[market][item.id]; ok {
			name = local
		}
		essentials = append(essentials, domain.Recommendation{
			EntryID:         item.id,
			Name:            name,
			Reasoning:       "Safe essential for " + a.SkinType + " skin",
			Category:        domain.CategoryEssential,
			ProductCategory: item.category,
			Priority:        priorityEssential,
			FinalPriority:   priorityEssential,
		})
		step := domain.RoutineStep{
			EntryID:      item.id,
			DisplayName:  name,
			Category:     item.category,
			Instructions: "Use as directed on the label",
		}
		morning = append(morning, step)
		if item.category != "sunscreen" {
			evening = append(evening, step)
		}
	}
	number(morning)
	number(evening)

	warnings := []domain.Warning{{Type: WarningSystem, Message: fallbackMessage, Severity: domain.SeverityHigh}}
	if len(a.MedicalConditions) > 0 {
		warnings = append(warnings, domain.Warning{Type: WarningMedical, Message: fallbackMedical, Severity: domain.SeverityHigh})
	}

	primary := maintenanceConcern
	if len(a.Concerns) > 0 {
		primary = a.Concerns[0]
	}
	return &domain.RecommendationResult{
		UserProfile: domain.UserProfile{
			Assessment:          a,
			PrioritizedConcerns: append([]string{}, a.Concerns...),
			RiskTolerance:       riskTolerance(a),
			RoutineComplexity:   routineComplexity(a),
			PrimaryConcern:      primary,
		},
		GeneratedAt: time.Now().UTC(),
		Market:      market,
		Currency:    currency,
		Recommendations: domain.Buckets{
			Essential:  essentials,
			Targeted:   []domain.Recommendation{},
			Supporting: []domain.Recommendation{},
			Optional:   []domain.Recommendation{},
		},
		RoutineSuggestions: domain.Routine{Morning: morning, Evening: evening},
		Warnings:           warnings,
		Timeline: domain.Timeline{
			"week_1_2": "Use only these basics, morning and evening.",
			"week_3_4": "Retake the assessment for a personalized routine before adding anything new.",
		},
		FollowUp: domain.FollowUp{CheckInWeeks: 2, Guidance: fallbackGuidance},
		Error:    fallbackFailure,
		Fallback: true,
	}
}
