package engine

import (
	"github.com/actuallystonmai/skincare-recommendation-service/internal/catalog"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/domain"
)

const overBudgetNote = " (no alternative within budget)"

func budgetReason(orig catalog.Entry) string {
	return "Replaces " + orig.Name + " (budget-friendly alternative)"
}

// Personalize applies the market and budget. Candidates that are over budget
// or not sold in the market are swapped for their fixed budget alternative
// when it is affordable, available, allowed and not already listed; otherwise
// they are dropped. Medically required candidates are kept unconditionally.
// An essential product category that nothing affordable covers gets its safe
// essential when that one is affordable and allowed, and keeps the
// over-budget candidate otherwise. Every surviving candidate carries its local
// name and price.
func Personalize(list []domain.Recommendation, p domain.UserProfile, t *catalog.Tables, m catalog.Market) ([]domain.Recommendation, error) {
	avoid := avoidSet(p, t)
	listed := make(map[string]struct{}, len(list))
	covered := make(map[string]bool, len(essentialCategories))
	for _, r := range list {
		listed[r.EntryID] = struct{}{}
		e, err := t.Entry(r.EntryID)
		if err != nil {
			return nil, err
		}
		if r.MedicallyRequired || m.InBudget(e, p.BudgetTier) {
			covered[e.Category] = true
		}
	}

	out := make([]domain.Recommendation, 0, len(list))
	for i, r := range list {
		e, err := t.Entry(r.EntryID)
		if err != nil {
			return nil, err
		}
		if r.MedicallyRequired || m.InBudget(e, p.BudgetTier) {
			out = append(out, localize(r, e, m))
			continue
		}

		alt, ok, err := budgetAlternative(e, list, i, listed, avoid, p, t, m)
		if err != nil {
			return nil, err
		}
		if !ok && isEssentialProduct(e.Category) && !covered[e.Category] {
			if alt, ok, err = safeEssential(e, list, i, listed, avoid, p, t, m); err != nil {
				return nil, err
			}
		}
		switch {
		case ok:
			sub := substitute(r, alt, budgetReason(e))
			sub.BudgetAdjusted = true
			sub = scoreOne(sub, alt, p, t)
			listed[alt.ID] = struct{}{}
			covered[alt.Category] = true
			out = append(out, localize(sub, alt, m))
		case isEssentialProduct(e.Category) && !covered[e.Category]:
			r.Reasoning += overBudgetNote
			covered[e.Category] = true
			out = append(out, localize(r, e, m))
		}
	}

	sortByFinalPriority(out)
	return out, nil
}

// budgetAlternative returns the usable budget substitute for the candidate at
// index i, if there is one.
func budgetAlternative(e catalog.Entry, list []domain.Recommendation, i int, listed, avoid map[string]struct{}, p domain.UserProfile, t *catalog.Tables, m catalog.Market) (catalog.Entry, bool, error) {
	altID, ok := t.BudgetAlternatives[e.ID]
	if !ok {
		return catalog.Entry{}, false, nil
	}
	return usableSubstitute(altID, list, i, listed, avoid, p, t, m)
}

// safeEssential returns the safe essential for e's product category when it
// can stand in for the over-budget candidate at index i.
func safeEssential(e catalog.Entry, list []domain.Recommendation, i int, listed, avoid map[string]struct{}, p domain.UserProfile, t *catalog.Tables, m catalog.Market) (catalog.Entry, bool, error) {
	id, ok := t.SafeEssentials[e.Category]
	if !ok || id == e.ID {
		return catalog.Entry{}, false, nil
	}
	return usableSubstitute(id, list, i, listed, avoid, p, t, m)
}

// usableSubstitute checks that id is unlisted, allowed, affordable and free of
// conflicts with the rest of list.
func usableSubstitute(id string, list []domain.Recommendation, i int, listed, avoid map[string]struct{}, p domain.UserProfile, t *catalog.Tables, m catalog.Market) (catalog.Entry, bool, error) {
	alt, err := t.Entry(id)
	if err != nil {
		return catalog.Entry{}, false, err
	}
	if _, dup := listed[alt.ID]; dup || forbidden(alt, avoid) || !m.InBudget(alt, p.BudgetTier) {
		return catalog.Entry{}, false, nil
	}
	clash, err := clashesWithOthers(alt, list, i, t)
	if err != nil || clash {
		return catalog.Entry{}, false, err
	}
	return alt, true, nil
}

// clashesWithOthers reports whether e conflicts with any candidate in list
// other than the one at skip.
func clashesWithOthers(e catalog.Entry, list []domain.Recommendation, skip int, t *catalog.Tables) (bool, error) {
	if !e.HasActives() {
		return false, nil
	}
	state := &conflictState{used: map[string]struct{}{}, blocked: map[string]struct{}{}}
	for i, r := range list {
		if i == skip {
			continue
		}
		other, err := t.Entry(r.EntryID)
		if err != nil {
			return false, err
		}
		if other.HasActives() {
			state.accept(other)
		}
	}
	return state.clashes(e, t), nil
}

func localize(r domain.Recommendation, e catalog.Entry, m catalog.Market) domain.Recommendation {
	price := m.Price(e)
	r.Name = m.DisplayName(e)
	r.Price = &domain.Price{Min: price.Min, Max: price.Max}
	return r
}
