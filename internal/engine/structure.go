package engine

import (
	"github.com/actuallystonmai/skincare-recommendation-service/internal/catalog"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/domain"
)

// Structure buckets the scored list and truncates each bucket to the limits
// for the user's experience level, keeping list order. The first cleanser,
// moisturizer and sunscreen in the essential bucket survive truncation.
func Structure(list []domain.Recommendation, p domain.UserProfile, t *catalog.Tables) domain.Buckets {
	var b domain.Buckets
	for _, r := range list {
		switch bucketFor(r) {
		case domain.CategoryEssential:
			b.Essential = append(b.Essential, r)
		case domain.CategoryTargeted:
			b.Targeted = append(b.Targeted, r)
		case domain.CategorySupporting:
			b.Supporting = append(b.Supporting, r)
		default:
			b.Optional = append(b.Optional, r)
		}
	}

	limits, ok := t.BucketLimits[p.ExperienceLevel]
	if !ok {
		limits = t.BucketLimits[domain.DefaultExperience]
	}
	return domain.Buckets{
		Essential:  truncateEssential(b.Essential, limits.Essential),
		Targeted:   truncate(b.Targeted, limits.Targeted),
		Supporting: truncate(b.Supporting, limits.Supporting),
		Optional:   truncate(b.Optional, limits.Optional),
	}
}

func bucketFor(r domain.Recommendation) string {
	switch {
	case r.MedicallyRequired, r.Category == domain.CategoryEssential, isEssentialProduct(r.ProductCategory):
		return domain.CategoryEssential
	case r.Category == domain.CategoryTargeted, r.MatchScore > 80:
		return domain.CategoryTargeted
	case r.MatchScore > 60:
		return domain.CategorySupporting
	default:
		return domain.CategoryOptional
	}
}

func isEssentialProduct(category string) bool {
	for _, c := range essentialCategories {
		if c == category {
			return true
		}
	}
	return false
}

func truncate(list []domain.Recommendation, n int) []domain.Recommendation {
	out := make([]domain.Recommendation, 0, min(len(list), max(n, 0)))
	for _, r := range list {
		if len(out) >= n {
			break
		}
		out = append(out, r)
	}
	return out
}

func truncateEssential(list []domain.Recommendation, n int) []domain.Recommendation {
	pinned := make(map[int]bool, len(essentialCategories))
	seen := make(map[string]bool, len(essentialCategories))
	for i, r := range list {
		if isEssentialProduct(r.ProductCategory) && !seen[r.ProductCategory] {
			seen[r.ProductCategory] = true
			pinned[i] = true
		}
	}

	free := n - len(pinned)
	out := make([]domain.Recommendation, 0, max(n, len(pinned)))
	for i, r := range list {
		switch {
		case pinned[i]:
			out = append(out, r)
		case free > 0:
			out = append(out, r)
			free--
		}
	}
	return out
}
