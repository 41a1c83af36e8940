package engine

import (
	"math"
	"sort"

	"github.com/actuallystonmai/skincare-recommendation-service/internal/catalog"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/domain"
)

const (
	weightSkin       = 0.3
	weightConcern    = 0.4
	weightSafety     = 0.2
	weightExperience = 0.1

	finalScoreWeight = 0.3

	neutralConcernScore = 50
	defaultCompat       = 50
)

var strengthScores = map[string]float64{
	catalog.Gentle:   100,
	catalog.Moderate: 75,
	catalog.Strong:   50,
}

// Score attaches a match score and final priority to every candidate and
// sorts by final priority, highest first. Ties fall back to entry ID.
func Score(list []domain.Recommendation, p domain.UserProfile, t *catalog.Tables) ([]domain.Recommendation, error) {
	scored := make([]domain.Recommendation, 0, len(list))
	for _, r := range list {
		e, err := t.Entry(r.EntryID)
		if err != nil {
			return nil, err
		}
		scored = append(scored, scoreOne(r, e, p, t))
	}
	sortByFinalPriority(scored)
	return scored, nil
}

func scoreOne(r domain.Recommendation, e catalog.Entry, p domain.UserProfile, t *catalog.Tables) domain.Recommendation {
	r.MatchScore = computeMatchScore(e, p, t)
	r.FinalPriority = round1(r.Priority + r.MatchScore*finalScoreWeight)
	return r
}

func sortByFinalPriority(list []domain.Recommendation) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].FinalPriority != list[j].FinalPriority {
			return list[i].FinalPriority > list[j].FinalPriority
		}
		return list[i].EntryID < list[j].EntryID
	})
}

func computeMatchScore(e catalog.Entry, p domain.UserProfile, t *catalog.Tables) float64 {
	skin := skinCompatibility(e, p.SkinType, t) * weightSkin
	concern := concernEffectiveness(e, p.PrioritizedConcerns) * weightConcern
	safety := safetyScore(e, p.Sensitivity) * weightSafety
	exp := experienceCompatibility(e, p.ExperienceLevel) * weightExperience

	score := skin + concern + safety + exp
	return round1(math.Max(0, math.Min(100, score)))
}

// skinCompatibility is 100 on an exact or wildcard match, otherwise the best
// cross-compatibility value among the skin types the entry suits.
func skinCompatibility(e catalog.Entry, skinType string, t *catalog.Tables) float64 {
	if e.Suits(skinType) {
		return 100
	}
	best := -1.0
	for _, s := range e.SuitableFor {
		if v, ok := t.SkinCompatibility[skinType][s]; ok && v > best {
			best = v
		}
	}
	if best < 0 {
		return defaultCompat
	}
	return best
}

// concernEffectiveness sums a positional weight for every concern the entry
// treats. Weight drops by 10% per position in the priority list.
func concernEffectiveness(e catalog.Entry, concerns []string) float64 {
	if len(concerns) == 0 {
		return neutralConcernScore
	}
	total := 0.0
	for i, c := range concerns {
		if e.Treats(c) {
			total += 100 * math.Max(0, 1-0.1*float64(i))
		}
	}
	return math.Min(total, 100)
}

func safetyScore(e catalog.Entry, sensitivity int) float64 {
	base, ok := strengthScores[e.Strength]
	if !ok {
		base = strengthScores[catalog.Moderate]
	}
	penalty := math.Max(0, float64(sensitivity-5)*10)
	return math.Max(0, base-penalty)
}

func experienceCompatibility(e catalog.Entry, level string) float64 {
	gap := domain.ExperienceScore(e.RequiresExperience) - domain.ExperienceScore(level)
	if gap <= 0 {
		return 100
	}
	return math.Max(0, 100-30*float64(gap))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
