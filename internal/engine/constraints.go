package engine

import (
	"fmt"
	"strings"

	"github.com/actuallystonmai/skincare-recommendation-service/internal/catalog"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/domain"
)

var essentialCategories = []string{catalog.Cleanser, catalog.Moisturizer, catalog.Sunscreen}

// avoidSet collects the avoid tags of every recognized medical condition.
func avoidSet(p domain.UserProfile, t *catalog.Tables) map[string]struct{} {
	avoid := make(map[string]struct{})
	for _, cond := range p.MedicalConditions {
		for _, tag := range t.MedicalRules[cond].Avoid {
			avoid[tag] = struct{}{}
		}
	}
	return avoid
}

// forbidden reports whether an avoid tag matches the entry's ID, category or
// any of its active ingredients.
func forbidden(e catalog.Entry, avoid map[string]struct{}) bool {
	if len(avoid) == 0 {
		return false
	}
	if _, ok := avoid[e.ID]; ok {
		return true
	}
	if _, ok := avoid[e.Category]; ok {
		return true
	}
	for _, tag := range e.ActiveIngredients {
		if _, ok := avoid[tag]; ok {
			return true
		}
	}
	return false
}

// ApplyMedicalConstraints removes candidates forbidden by the user's medical
// conditions and adds the entries those conditions require. Conditions without
// a rule are ignored. An avoid rule from one condition beats a requirement from
// another. An essential category left empty by the avoid rules gets its safe
// substitute when that substitute is itself allowed.
func ApplyMedicalConstraints(list []domain.Recommendation, p domain.UserProfile, t *catalog.Tables) ([]domain.Recommendation, error) {
	avoid := avoidSet(p, t)

	out := make([]domain.Recommendation, 0, len(list)+4)
	index := make(map[string]int, len(list))
	for _, r := range list {
		e, err := t.Entry(r.EntryID)
		if err != nil {
			return nil, err
		}
		if forbidden(e, avoid) {
			continue
		}
		index[r.EntryID] = len(out)
		out = append(out, r)
	}

	for _, cond := range p.MedicalConditions {
		rule, ok := t.MedicalRules[cond]
		if !ok {
			continue
		}
		for _, id := range rule.Required {
			e, err := t.Entry(id)
			if err != nil {
				return nil, fmt.Errorf("medical rule %s: %w", cond, err)
			}
			if forbidden(e, avoid) {
				continue
			}
			if i, ok := index[id]; ok {
				r := out[i]
				r.MedicallyRequired = true
				r.Category = domain.CategoryEssential
				r.Priority = max(r.Priority, priorityMedical)
				out[i] = r
				continue
			}
			r := newRecommendation(e, domain.CategoryEssential, "Recommended for "+humanize(cond), priorityMedical)
			r.MedicallyRequired = true
			index[id] = len(out)
			out = append(out, r)
		}
	}

	if len(avoid) == 0 {
		return out, nil
	}
	for _, category := range essentialCategories {
		if hasProductCategory(out, category) {
			continue
		}
		id, ok := t.SafeEssentials[category]
		if !ok {
			continue
		}
		e, err := t.Entry(id)
		if err != nil {
			return nil, fmt.Errorf("safe %s: %w", category, err)
		}
		if forbidden(e, avoid) {
			continue
		}
		out = append(out, newRecommendation(e, domain.CategoryEssential, "Safe "+category+" compatible with your medical conditions", priorityEssential))
	}
	return out, nil
}

func hasProductCategory(list []domain.Recommendation, category string) bool {
	for _, r := range list {
		if r.ProductCategory == category {
			return true
		}
	}
	return false
}

func humanize(tag string) string {
	return strings.ReplaceAll(tag, "_", " ")
}
