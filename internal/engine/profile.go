package engine

import (
	"math"
	"sort"

	"github.com/actuallystonmai/skincare-recommendation-service/internal/catalog"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/domain"
)

const maintenanceConcern = "maintenance"

var ageScores = map[string]int{
	"under_18": 1,
	"18_24":    1,
	"25_34":    2,
	"35_44":    3,
	"45_54":    3,
	"55_plus":  4,
}

// BuildProfile derives the user profile from a normalized assessment.
func BuildProfile(a domain.Assessment, t *catalog.Tables) domain.UserProfile {
	concerns := make([]string, 0, len(a.Concerns)+len(a.Goals))
	seen := make(map[string]struct{}, cap(concerns))
	add := func(c string) {
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		concerns = append(concerns, c)
	}
	for _, c := range a.Concerns {
		add(c)
	}
	for _, g := range a.Goals {
		if c, ok := t.GoalConcerns[g]; ok {
			add(c)
		}
	}
	// Unlisted concerns weigh 0; ties keep input order.
	sort.SliceStable(concerns, func(i, j int) bool {
		return t.ConcernPriority[concerns[i]] > t.ConcernPriority[concerns[j]]
	})

	p := domain.UserProfile{
		Assessment:          a,
		PrioritizedConcerns: concerns,
		RiskTolerance:       riskTolerance(a),
		RoutineComplexity:   routineComplexity(a),
		PrimaryConcern:      maintenanceConcern,
	}
	if len(concerns) > 0 {
		p.PrimaryConcern = concerns[0]
	}
	return p
}

func riskTolerance(a domain.Assessment) int {
	exp := domain.ExperienceScore(a.ExperienceLevel)
	return int(math.Round(float64(exp+(11-a.Sensitivity)) / 2))
}

func routineComplexity(a domain.Assessment) int {
	exp := domain.ExperienceScore(a.ExperienceLevel)
	age, ok := ageScores[a.AgeBracket]
	if !ok {
		age = 2
	}
	return int(math.Round(float64(exp+age) / 2))
}
