package engine

import (
	"github.com/actuallystonmai/skincare-recommendation-service/internal/catalog"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/domain"
)

var stepOrder = []string{
	catalog.Cleanser,
	catalog.Active,
	catalog.Treatment,
	catalog.Hydrating,
	catalog.Moisturizer,
	catalog.Sunscreen,
}

const reapplyInstructions = "Reapply every two hours while outdoors and after sweating or swimming"

// AssembleRoutine lays the bucketed recommendations out as morning and evening
// steps in a fixed category order. Sunscreen is morning only. Actives and
// treatments go to the evening unless they are morning-use or vitamin C.
// Everything else appears in both. An afternoon sunscreen reapplication is
// added for outdoor or active lifestyles and hot or humid climates.
func AssembleRoutine(b domain.Buckets, p domain.UserProfile, t *catalog.Tables, m catalog.Market) (domain.Routine, error) {
	all := b.All()
	byCategory := make(map[string][]catalog.Entry, len(stepOrder))
	names := make(map[string]string, len(all))
	for _, r := range all {
		e, err := t.Entry(r.EntryID)
		if err != nil {
			return domain.Routine{}, err
		}
		byCategory[e.Category] = append(byCategory[e.Category], e)
		names[e.ID] = r.Name
	}

	routine := domain.Routine{
		Morning: []domain.RoutineStep{},
		Evening: []domain.RoutineStep{},
	}
	var sunscreen *domain.RoutineStep
	for _, category := range stepOrder {
		for _, e := range byCategory[category] {
			step := newStep(e, names[e.ID], t, m)
			switch {
			case category == catalog.Sunscreen:
				routine.Morning = append(routine.Morning, step)
				if sunscreen == nil {
					s := step
					sunscreen = &s
				}
			case category == catalog.Active || category == catalog.Treatment:
				if morningUse(e) {
					routine.Morning = append(routine.Morning, step)
				} else {
					routine.Evening = append(routine.Evening, step)
				}
			default:
				routine.Morning = append(routine.Morning, step)
				routine.Evening = append(routine.Evening, step)
			}
		}
	}

	if sunscreen != nil && needsReapplication(p) {
		reapply := *sunscreen
		reapply.Instructions = reapplyInstructions
		reapply.Timing = "midday"
		routine.Afternoon = []domain.RoutineStep{reapply}
	}

	number(routine.Morning)
	number(routine.Afternoon)
	number(routine.Evening)
	return routine, nil
}

func morningUse(e catalog.Entry) bool {
	if e.MorningUse {
		return true
	}
	for _, tag := range e.ActiveIngredients {
		if tag == "vitamin_c" {
			return true
		}
	}
	return false
}

func needsReapplication(p domain.UserProfile) bool {
	switch {
	case p.Lifestyle == domain.LifestyleOutdoor, p.Lifestyle == domain.LifestyleActive:
		return true
	case p.Climate == domain.ClimateHot, p.Climate == domain.ClimateHumid:
		return true
	}
	return false
}

func newStep(e catalog.Entry, name string, t *catalog.Tables, m catalog.Market) domain.RoutineStep {
	tmpl := t.Steps[e.Category]
	instructions := tmpl.Instructions
	if e.Instructions != "" {
		instructions = e.Instructions
	}
	if name == "" {
		name = m.DisplayName(e)
	}
	return domain.RoutineStep{
		EntryID:      e.ID,
		DisplayName:  name,
		Category:     e.Category,
		Instructions: instructions,
		Timing:       tmpl.Timing,
	}
}

func number(steps []domain.RoutineStep) {
	for i := range steps {
		steps[i].Step = i + 1
	}
}
