package seeds

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/actuallystonmai/skincare-recommendation-service/internal/domain"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/logging"
)

// Generator runs and persists one assessment.
type Generator interface {
	GetRecommendations(ctx context.Context, raw domain.RawAssessment) (*domain.RecommendationResult, bool, error)
}

// Setup runs n demo assessments through gen so that a fresh database has
// results to browse.
func Setup(ctx context.Context, gen Generator, n int) error {
	rng := rand.New(rand.NewSource(42))
	log := logging.Component("seed")

	log.Info().Int("count", n).Msg("generating demo assessments")
	fallbacks := 0
	for i, raw := range demoAssessments(rng, n) {
		res, _, err := gen.GetRecommendations(ctx, raw)
		if err != nil {
			return fmt.Errorf("seed assessment %d: %w", i, err)
		}
		if res.Fallback {
			fallbacks++
		}
	}

	log.Info().Int("count", n).Int("fallbacks", fallbacks).Msg("seeding complete")
	return nil
}

func demoAssessments(rng *rand.Rand, n int) []domain.RawAssessment {
	skinTypes := []string{"normal", "dry", "oily", "combination", "sensitive"}
	skinWeights := []float64{0.2, 0.2, 0.25, 0.25, 0.1}
	concerns := []string{"acne", "aging", "hyperpigmentation", "dryness", "redness", "pores", "dullness", "dark_circles"}
	conditions := []string{"eczema", "rosacea", "psoriasis", "pregnancy", "perioral_dermatitis"}
	tiers := []string{"budget", "mid-range", "premium", "luxury"}
	tierWeights := []float64{0.35, 0.4, 0.2, 0.05}
	levels := []string{"beginner", "intermediate", "advanced", "expert"}
	levelWeights := []float64{0.45, 0.35, 0.15, 0.05}
	climates := []string{"temperate", "humid", "dry", "cold", "hot"}
	lifestyles := []string{"sedentary", "moderate", "active", "outdoor"}
	markets := []string{"US", "GB", "IN"}
	marketWeights := []float64{0.5, 0.3, 0.2}

	out := make([]domain.RawAssessment, 0, n)
	for range n {
		picked := []any{}
		for _, idx := range rng.Perm(len(concerns))[:rng.Intn(3)] {
			picked = append(picked, concerns[idx])
		}
		medical := []any{}
		if rng.Float64() < 0.15 {
			medical = append(medical, conditions[rng.Intn(len(conditions))])
		}

		out = append(out, domain.RawAssessment{
			"skin_type":          weightedChoice(rng, skinTypes, skinWeights),
			"concerns":           picked,
			"medical_conditions": medical,
			"age":                rng.Intn(50) + 16,
			"sensitivity":        rng.Intn(10) + 1,
			"climate":            climates[rng.Intn(len(climates))],
			"budget_tier":        weightedChoice(rng, tiers, tierWeights),
			"experience_level":   weightedChoice(rng, levels, levelWeights),
			"lifestyle":          lifestyles[rng.Intn(len(lifestyles))],
			"market":             weightedChoice(rng, markets, marketWeights),
		})
	}
	return out
}

func weightedChoice(rng *rand.Rand, choices []string, weights []float64) string {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if r <= cumulative {
			return choices[i]
		}
	}
	return choices[len(choices)-1]
}
