package engine

import (
	"reflect"
	"testing"

	"github.com/actuallystonmai/skincare-recommendation-service/internal/catalog"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/domain"
)

func tinyTables(conflicts map[string][]string) *catalog.Tables {
	return &catalog.Tables{
		Entries: map[string]catalog.Entry{
			"a": {ID: "a", Category: catalog.Active, ActiveIngredients: []string{"x"}},
			"b": {ID: "b", Category: catalog.Active, ActiveIngredients: []string{"y"}},
			"c": {ID: "c", Category: catalog.Cleanser},
		},
		Conflicts: conflicts,
	}
}

func TestResolveConflictsChecksBothDirections(t *testing.T) {
	list := []domain.Recommendation{
		{EntryID: "b", Priority: 80},
		{EntryID: "c", Priority: 10},
		{EntryID: "a", Priority: 90},
	}
	for name, conflicts := range map[string]map[string][]string{
		"declared on accepted side":  {"x": {"y"}},
		"declared on candidate side": {"y": {"x"}},
	} {
		t.Run(name, func(t *testing.T) {
			out, err := ResolveConflicts(list, domain.UserProfile{}, tinyTables(conflicts))
			if err != nil {
				t.Fatal(err)
			}
			if got, want := entryIDs(out), []string{"a", "c"}; !reflect.DeepEqual(got, want) {
				t.Errorf("resolved = %v, want %v", got, want)
			}
		})
	}
}

func TestResolveConflictsUsesAlternative(t *testing.T) {
	list := []domain.Recommendation{
		rec(t, "retinol", domain.CategoryTargeted, 70),
		rec(t, "vitamin_c", domain.CategoryTargeted, 80),
		rec(t, "gentle_cleanser", domain.CategoryEssential, 90),
	}
	out, err := ResolveConflicts(list, profileFor(nil), catalog.Default())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := entryIDs(out), []string{"gentle_cleanser", "vitamin_c", "bakuchiol"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("resolved = %v, want %v", got, want)
	}
	alt := out[2]
	if alt.Reasoning != "Replaces Retinol 0.3% (alternative due to ingredient conflict)" {
		t.Errorf("alternative reasoning = %q", alt.Reasoning)
	}
	if alt.Priority != 70 || alt.ProductCategory != catalog.Active {
		t.Errorf("alternative should keep the slot priority: %+v", alt)
	}
}

func TestResolveConflictsDropsWhenAlternativeUsed(t *testing.T) {
	list := []domain.Recommendation{
		rec(t, "vitamin_c", domain.CategoryTargeted, 80),
		rec(t, "bakuchiol", domain.CategoryTargeted, 75),
		rec(t, "retinol", domain.CategoryTargeted, 70),
	}
	out, err := ResolveConflicts(list, profileFor(nil), catalog.Default())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := entryIDs(out), []string{"vitamin_c", "bakuchiol"}; !reflect.DeepEqual(got, want) {
		t.Errorf("resolved = %v, want %v", got, want)
	}
}

func TestResolveConflictsRespectsConflictsWith(t *testing.T) {
	tables := withTables(func(t *catalog.Tables) {
		t.Conflicts = map[string][]string{}
		t.ConflictAlternatives = map[string]string{}
	})
	list := []domain.Recommendation{
		rec(t, "adapalene", domain.CategoryTargeted, 80),
		rec(t, "benzoyl_peroxide", domain.CategoryTargeted, 70),
	}
	out, err := ResolveConflicts(list, profileFor(nil), tables)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := entryIDs(out), []string{"adapalene"}; !reflect.DeepEqual(got, want) {
		t.Errorf("resolved = %v, want %v", got, want)
	}
}

func TestResolveConflictsSkipsForbiddenAlternative(t *testing.T) {
	tables := withTables(func(t *catalog.Tables) {
		t.MedicalRules = map[string]catalog.MedicalRule{"test_condition": {Avoid: []string{"bakuchiol"}}}
	})
	p := BuildProfile(Normalize(domain.RawAssessment{"medicalConditions": "test_condition"}), tables)
	list := []domain.Recommendation{
		rec(t, "vitamin_c", domain.CategoryTargeted, 80),
		rec(t, "retinol", domain.CategoryTargeted, 70),
	}
	out, err := ResolveConflicts(list, p, tables)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := entryIDs(out), []string{"vitamin_c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("resolved = %v, want %v", got, want)
	}
}

func TestResolveConflictsDoesNotMutateInput(t *testing.T) {
	list := []domain.Recommendation{
		rec(t, "retinol", domain.CategoryTargeted, 70),
		rec(t, "vitamin_c", domain.CategoryTargeted, 80),
	}
	before := append([]domain.Recommendation(nil), list...)
	if _, err := ResolveConflicts(list, profileFor(nil), catalog.Default()); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(list, before) {
		t.Error("input list was mutated")
	}
}
