package engine

import (
	"fmt"

	"github.com/actuallystonmai/skincare-recommendation-service/internal/catalog"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/domain"
)

// Base priorities per generator. Rule-table candidates lose 5 points per
// position; concern candidates also lose 10 per concern rank.
const (
	priorityMedical   = 100
	priorityEssential = 90
	priorityConcern   = 80
	prioritySkinType  = 60
	priorityAge       = 55
	priorityClimate   = 50
)

// Generate proposes candidates for the profile. The first occurrence of an
// entry wins; later duplicates are dropped.
func Generate(p domain.UserProfile, t *catalog.Tables) ([]domain.Recommendation, error) {
	var out []domain.Recommendation
	seen := make(map[string]struct{})
	add := func(id, category, reason string, priority float64) error {
		if _, dup := seen[id]; dup {
			return nil
		}
		e, err := t.Entry(id)
		if err != nil {
			return err
		}
		seen[id] = struct{}{}
		out = append(out, newRecommendation(e, category, reason, priority))
		return nil
	}

	for _, ess := range essentials(p) {
		if err := add(ess.id, domain.CategoryEssential, ess.reason, priorityEssential); err != nil {
			return nil, fmt.Errorf("essentials: %w", err)
		}
	}

	for i, concern := range p.PrioritizedConcerns {
		for j, rule := range eligible(t.ConcernRules[concern], p, t) {
			priority := float64(priorityConcern - i*10 - j*5)
			if err := add(rule.EntryID, rule.Category, rule.Reason, priority); err != nil {
				return nil, fmt.Errorf("concern %s: %w", concern, err)
			}
		}
	}

	for _, dim := range []struct {
		name  string
		rules []catalog.CandidateRule
		base  int
	}{
		{"skin type " + p.SkinType, t.SkinTypeRules[p.SkinType], prioritySkinType},
		{"age " + p.AgeBracket, t.AgeRules[p.AgeBracket], priorityAge},
		{"climate " + p.Climate, t.ClimateRules[p.Climate], priorityClimate},
	} {
		for j, rule := range eligible(dim.rules, p, t) {
			if err := add(rule.EntryID, rule.Category, rule.Reason, float64(dim.base-j*5)); err != nil {
				return nil, fmt.Errorf("%s: %w", dim.name, err)
			}
		}
	}

	return out, nil
}

type essential struct {
	id     string
	reason string
}

// essentials picks one cleanser, one moisturizer and one sunscreen. Sunscreen
// is always proposed.
func essentials(p domain.UserProfile) []essential {
	reactive := p.SkinType == domain.SkinSensitive || p.Sensitivity > 7
	oilyish := p.SkinType == domain.SkinOily || p.SkinType == domain.SkinCombination

	var cleanser essential
	switch {
	case reactive:
		cleanser = essential{"gentle_cleanser", "Gentle cleansing that will not disturb a sensitive barrier"}
	case p.SkinType == domain.SkinOily && hasConcern(p, "acne") && !p.IsBeginner():
		cleanser = essential{"salicylic_cleanser", "Exfoliating cleanser to keep pores clear"}
	case oilyish:
		cleanser = essential{"foaming_cleanser", "Oil-control cleanser that removes excess sebum"}
	case p.SkinType == domain.SkinDry:
		cleanser = essential{"cream_cleanser", "Non-stripping cleanser for dry skin"}
	default:
		cleanser = essential{"gentle_cleanser", "Gentle daily cleanser"}
	}

	var moisturizer essential
	switch {
	case p.SkinType == domain.SkinDry || p.Climate == domain.ClimateCold || p.Climate == domain.ClimateDry:
		moisturizer = essential{"rich_moisturizer", "Rich moisturizer to prevent moisture loss"}
	case p.SkinType == domain.SkinSensitive:
		moisturizer = essential{"barrier_repair_cream", "Barrier-repairing moisturizer for sensitive skin"}
	default:
		moisturizer = essential{"lightweight_moisturizer", "Lightweight hydration without clogging pores"}
	}

	var sunscreen essential
	switch {
	case reactive:
		sunscreen = essential{"mineral_sunscreen", "Mineral protection that is least likely to irritate"}
	case oilyish:
		sunscreen = essential{"matte_sunscreen", "Daily protection with a shine-free finish"}
	default:
		sunscreen = essential{"chemical_sunscreen", "Daily broad-spectrum protection"}
	}

	return []essential{cleanser, moisturizer, sunscreen}
}

// eligible drops rules gated above the user's experience. A rule's gate is the
// stricter of its own MinExperience and the entry's RequiresExperience.
func eligible(rules []catalog.CandidateRule, p domain.UserProfile, t *catalog.Tables) []catalog.CandidateRule {
	out := make([]catalog.CandidateRule, 0, len(rules))
	level := domain.ExperienceScore(p.ExperienceLevel)
	for _, r := range rules {
		if level < requiredExperience(r, t) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// requiredExperience scores the experience a rule needs. Unknown entries are
// left for the lookup in Generate to report.
func requiredExperience(r catalog.CandidateRule, t *catalog.Tables) int {
	need := 0
	if r.MinExperience != "" {
		need = domain.ExperienceScore(r.MinExperience)
	}
	if e, ok := t.Entries[r.EntryID]; ok && e.RequiresExperience != "" {
		need = max(need, domain.ExperienceScore(e.RequiresExperience))
	}
	return need
}

func hasConcern(p domain.UserProfile, concern string) bool {
	for _, c := range p.PrioritizedConcerns {
		if c == concern {
			return true
		}
	}
	return false
}

func newRecommendation(e catalog.Entry, category, reason string, priority float64) domain.Recommendation {
	return domain.Recommendation{
		EntryID:         e.ID,
		Name:            e.Name,
		Reasoning:       reason,
		Category:        category,
		ProductCategory: e.Category,
		Priority:        priority,
		Price:           &domain.Price{Min: e.Price.Min, Max: e.Price.Max},
	}
}
