package engine

import (
	"sort"

	"github.com/actuallystonmai/skincare-recommendation-service/internal/catalog"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/domain"
)

func conflictReason(orig catalog.Entry) string {
	return "Replaces " + orig.Name + " (alternative due to ingredient conflict)"
}

// conflictState tracks the tags accepted so far and the tags accepted entries
// refuse to sit next to.
type conflictState struct {
	used    map[string]struct{}
	blocked map[string]struct{}
}

func (s *conflictState) clashes(e catalog.Entry, t *catalog.Tables) bool {
	for _, tag := range entryTags(e) {
		if _, ok := s.blocked[tag]; ok {
			return true
		}
		for u := range s.used {
			if t.Conflicting(tag, u) {
				return true
			}
		}
	}
	for _, tag := range e.ConflictsWith {
		if _, ok := s.used[tag]; ok {
			return true
		}
	}
	return false
}

func (s *conflictState) accept(e catalog.Entry) {
	for _, tag := range entryTags(e) {
		s.used[tag] = struct{}{}
	}
	for _, tag := range e.ConflictsWith {
		s.blocked[tag] = struct{}{}
	}
}

func entryTags(e catalog.Entry) []string {
	return append(append(make([]string, 0, len(e.ActiveIngredients)+1), e.ActiveIngredients...), e.Category)
}

// ResolveConflicts greedily keeps a conflict-free subset in descending
// priority order. A conflicting candidate is swapped for its fixed alternative
// when that alternative is conflict-free, unused and not medically forbidden;
// otherwise it is dropped. Entries without active ingredients are never checked.
func ResolveConflicts(list []domain.Recommendation, p domain.UserProfile, t *catalog.Tables) ([]domain.Recommendation, error) {
	sorted := append([]domain.Recommendation(nil), list...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})

	avoid := avoidSet(p, t)
	state := &conflictState{used: map[string]struct{}{}, blocked: map[string]struct{}{}}
	ids := make(map[string]struct{}, len(sorted))
	out := make([]domain.Recommendation, 0, len(sorted))

	for _, r := range sorted {
		if _, dup := ids[r.EntryID]; dup {
			continue
		}
		e, err := t.Entry(r.EntryID)
		if err != nil {
			return nil, err
		}
		if !e.HasActives() {
			ids[e.ID] = struct{}{}
			out = append(out, r)
			continue
		}
		if !state.clashes(e, t) {
			state.accept(e)
			ids[e.ID] = struct{}{}
			out = append(out, r)
			continue
		}

		altID, ok := t.ConflictAlternatives[e.ID]
		if !ok {
			continue
		}
		alt, err := t.Entry(altID)
		if err != nil {
			return nil, err
		}
		if _, dup := ids[alt.ID]; dup || forbidden(alt, avoid) {
			continue
		}
		if alt.HasActives() && state.clashes(alt, t) {
			continue
		}
		if alt.HasActives() {
			state.accept(alt)
		}
		ids[alt.ID] = struct{}{}
		out = append(out, substitute(r, alt, conflictReason(e)))
	}
	return out, nil
}

// substitute replaces the entry behind r while keeping its slot in the list.
func substitute(r domain.Recommendation, e catalog.Entry, reason string) domain.Recommendation {
	sub := newRecommendation(e, r.Category, reason, r.Priority)
	sub.BudgetAdjusted = r.BudgetAdjusted
	return sub
}
