package engine

import (
	"reflect"
	"testing"

	"github.com/actuallystonmai/skincare-recommendation-service/internal/domain"
)

func TestBuildProfilePrioritizesConcerns(t *testing.T) {
	p := profileFor(domain.RawAssessment{
		"concerns": []any{"dullness", "acne"},
		"goals":    []any{"anti_aging", "clear_skin", "unknown_goal"},
	})
	want := []string{"acne", "aging", "dullness"}
	if !reflect.DeepEqual(p.PrioritizedConcerns, want) {
		t.Errorf("PrioritizedConcerns = %v, want %v", p.PrioritizedConcerns, want)
	}
	if p.PrimaryConcern != "acne" {
		t.Errorf("PrimaryConcern = %q, want acne", p.PrimaryConcern)
	}
}

func TestBuildProfileStableForEqualWeights(t *testing.T) {
	p := profileFor(domain.RawAssessment{
		"concerns": []any{"freckles", "dryness", "aging", "moles"},
	})
	want := []string{"dryness", "aging", "freckles", "moles"}
	if !reflect.DeepEqual(p.PrioritizedConcerns, want) {
		t.Errorf("PrioritizedConcerns = %v, want %v", p.PrioritizedConcerns, want)
	}
}

func TestBuildProfileMaintenanceWithoutConcerns(t *testing.T) {
	p := profileFor(domain.RawAssessment{})
	if p.PrimaryConcern != "maintenance" {
		t.Errorf("PrimaryConcern = %q, want maintenance", p.PrimaryConcern)
	}
	if len(p.PrioritizedConcerns) != 0 {
		t.Errorf("PrioritizedConcerns = %v, want empty", p.PrioritizedConcerns)
	}
}

func TestBuildProfileDerivedScores(t *testing.T) {
	tests := []struct {
		name           string
		raw            domain.RawAssessment
		wantRisk       int
		wantComplexity int
	}{
		{"defaults", domain.RawAssessment{}, 4, 2},
		{"intermediate sensitive senior", domain.RawAssessment{"experienceLevel": "intermediate", "sensitivity": 8, "age": 60}, 3, 3},
		{"expert tolerant teen", domain.RawAssessment{"experienceLevel": "expert", "sensitivity": 1, "age": 16}, 7, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := profileFor(tt.raw)
			if p.RiskTolerance != tt.wantRisk {
				t.Errorf("RiskTolerance = %d, want %d", p.RiskTolerance, tt.wantRisk)
			}
			if p.RoutineComplexity != tt.wantComplexity {
				t.Errorf("RoutineComplexity = %d, want %d", p.RoutineComplexity, tt.wantComplexity)
			}
		})
	}
}
