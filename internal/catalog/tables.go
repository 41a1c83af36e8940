// Package catalog holds the immutable reference tables the recommendation
// pipeline reads: the ingredient catalog, the ingredient conflict graph, the
// rule tables keyed by concern, skin type, age bracket, climate and medical
// condition, and the per-market price configuration.
//
// Tables carry no behaviour beyond lookups. Default builds the built-in set
// once; callers may construct their own Tables for tests.
package catalog

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownEntry is returned when a rule references an entry the catalog lacks.
var ErrUnknownEntry = errors.New("unknown catalog entry")

// Ingredient categories.
const (
	Cleanser    = "cleanser"
	Active      = "active"
	Hydrating   = "hydrating"
	Moisturizer = "moisturizer"
	Sunscreen   = "sunscreen"
	Treatment   = "treatment"
)

// Strengths.
const (
	Gentle   = "gentle"
	Moderate = "moderate"
	Strong   = "strong"
)

// AllSkinTypes is the wildcard value for Entry.SuitableFor.
const AllSkinTypes = "all"

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Overlaps reports whether the two ranges share at least one price.
func (r PriceRange) Overlaps(o PriceRange) bool {
	return r.Min <= o.Max && r.Max >= o.Min
}

// Entry is an abstract ingredient or product in the catalog.
type Entry struct {
	ID                 string
	Name               string
	Category           string
	SuitableFor        []string
	Addresses          []string
	Strength           string
	Price              PriceRange
	ActiveIngredients  []string
	ConflictsWith      []string
	RequiresExperience string
	Essential          bool
	MorningUse         bool
	Instructions       string
}

// HasActives reports whether the entry takes part in conflict checking.
func (e Entry) HasActives() bool {
	return len(e.ActiveIngredients) > 0
}

// Suits reports whether the entry lists the skin type or the wildcard.
func (e Entry) Suits(skinType string) bool {
	for _, s := range e.SuitableFor {
		if s == AllSkinTypes || s == skinType {
			return true
		}
	}
	return false
}

// Treats reports whether the entry lists the concern.
func (e Entry) Treats(concern string) bool {
	for _, c := range e.Addresses {
		if c == concern {
			return true
		}
	}
	return false
}

// CandidateRule proposes one catalog entry. MinExperience, when set, withholds
// the entry from users below that level.
type CandidateRule struct {
	EntryID       string
	Category      string
	MinExperience string
	Reason        string
}

// MedicalRule lists entries a condition requires and tags it forbids. Avoid
// tags match entry IDs, ingredient categories and active-ingredient tags.
type MedicalRule struct {
	Required []string
	Avoid    []string
	Note     string
}

// Limits caps the size of each output bucket.
type Limits struct {
	Essential  int
	Targeted   int
	Supporting int
	Optional   int
}

type WarningTemplate struct {
	Message  string
	Severity string
}

type StepTemplate struct {
	Instructions string
	Timing       string
}

// Tables is the full set of reference data. It must not be mutated after
// construction. Concern and condition keys use the canonical snake_case
// vocabulary produced by normalization.
type Tables struct {
	Entries              map[string]Entry
	Conflicts            map[string][]string
	ConflictAlternatives map[string]string
	BudgetAlternatives   map[string]string
	ConcernPriority      map[string]int
	GoalConcerns         map[string]string
	ConcernRules         map[string][]CandidateRule
	SkinTypeRules        map[string][]CandidateRule
	AgeRules             map[string][]CandidateRule
	ClimateRules         map[string][]CandidateRule
	MedicalRules         map[string]MedicalRule
	SafeEssentials       map[string]string
	SkinCompatibility    map[string]map[string]float64
	BucketLimits         map[string]Limits
	IngredientWarnings   map[string]WarningTemplate
	Timelines            map[string]map[string]string
	Steps                map[string]StepTemplate
	Markets              map[string]Market
}

// Entry looks up a catalog entry by ID.
func (t *Tables) Entry(id string) (Entry, error) {
	e, ok := t.Entries[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownEntry, id)
	}
	return e, nil
}

// Conflicting reports whether two tags are connected in the conflict graph.
// A declaration on either side counts.
func (t *Tables) Conflicting(a, b string) bool {
	return contains(t.Conflicts[a], b) || contains(t.Conflicts[b], a)
}

// Market returns the market for code.
func (t *Tables) Market(code string) (Market, bool) {
	m, ok := t.Markets[code]
	return m, ok
}

// Validate checks that every rule, alternative and market product refers to
// an existing entry, and that budget substitutions stay within their category
// without bringing in new conflicting ingredients.
func (t *Tables) Validate() error {
	var errs []error
	check := func(where, id string) {
		if _, ok := t.Entries[id]; !ok {
			errs = append(errs, fmt.Errorf("%s: %w: %q", where, ErrUnknownEntry, id))
		}
	}
	for _, group := range []struct {
		name  string
		rules map[string][]CandidateRule
	}{
		{"concern rule", t.ConcernRules},
		{"skin type rule", t.SkinTypeRules},
		{"age rule", t.AgeRules},
		{"climate rule", t.ClimateRules},
	} {
		for _, key := range sortedKeys(group.rules) {
			for _, r := range group.rules[key] {
				check(group.name+" "+key, r.EntryID)
			}
		}
	}
	for _, key := range sortedKeys(t.MedicalRules) {
		for _, id := range t.MedicalRules[key].Required {
			check("medical rule "+key, id)
		}
	}
	for _, category := range sortedKeys(t.SafeEssentials) {
		check("safe essential "+category, t.SafeEssentials[category])
	}
	for name, alts := range map[string]map[string]string{
		"conflict alternative": t.ConflictAlternatives,
		"budget alternative":   t.BudgetAlternatives,
	} {
		for _, from := range sortedKeys(alts) {
			to := alts[from]
			check(name, from)
			check(name, to)
			a, okA := t.Entries[from]
			b, okB := t.Entries[to]
			if okA && okB && name == "budget alternative" && a.Category != b.Category {
				errs = append(errs, fmt.Errorf("%s %s -> %s changes category", name, from, to))
			}
			if okA && okB && name == "budget alternative" && t.introducesConflict(a, b) {
				errs = append(errs, fmt.Errorf("%s %s -> %s introduces new conflicts", name, from, to))
			}
		}
	}
	for _, code := range sortedKeys(t.Markets) {
		m := t.Markets[code]
		for _, id := range sortedKeys(m.Products) {
			check("market "+code, id)
		}
		// No bands means unbounded; partial bands need the fallback band.
		if _, ok := m.Bands[defaultBand]; len(m.Bands) > 0 && !ok {
			errs = append(errs, fmt.Errorf("market %s has no %q band", code, defaultBand))
		}
	}
	return errors.Join(errs...)
}

// introducesConflict reports whether sub carries a conflicting tag that orig
// does not.
func (t *Tables) introducesConflict(orig, sub Entry) bool {
	for _, tag := range sub.ActiveIngredients {
		if contains(orig.ActiveIngredients, tag) {
			continue
		}
		if len(t.Conflicts[tag]) > 0 {
			return true
		}
		for _, others := range t.Conflicts {
			if contains(others, tag) {
				return true
			}
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
