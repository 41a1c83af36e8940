package engine

import (
	"github.com/actuallystonmai/skincare-recommendation-service/internal/catalog"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/domain"
)

// Warning types.
const (
	WarningGeneral     = "general"
	WarningExperience  = "experience"
	WarningIngredient  = "ingredient"
	WarningSensitivity = "sensitivity"
	WarningMedical     = "medical"
	WarningBudget      = "budget"
	WarningNote        = "note"
	WarningSystem      = "system"
)

const (
	generalWarning    = "Patch test each new active on your inner arm for 48 hours, and wear sunscreen every day while using actives."
	beginnerWarning   = "Introduce one new product at a time, about two weeks apart, so you can tell what your skin is reacting to."
	budgetWarning     = "Some products were swapped for budget-friendly alternatives with a similar effect."
	freeTextWarning   = "You described additional concerns in your own words. Please discuss them with a dermatologist, as they are not covered by these recommendations."
	sensitivitySuffix = " may irritate highly sensitive skin. Start at half the suggested frequency and stop if stinging lasts more than a few minutes."
)

// GenerateWarnings derives advisory warnings from the final recommendation
// list and picks the introduction timeline for the user's experience level.
func GenerateWarnings(list []domain.Recommendation, p domain.UserProfile, t *catalog.Tables) ([]domain.Warning, domain.Timeline, error) {
	entries := make([]catalog.Entry, 0, len(list))
	hasActives, budgetAdjusted := false, false
	for _, r := range list {
		e, err := t.Entry(r.EntryID)
		if err != nil {
			return nil, nil, err
		}
		entries = append(entries, e)
		if e.Category == catalog.Active || e.Category == catalog.Treatment {
			hasActives = true
		}
		if r.BudgetAdjusted {
			budgetAdjusted = true
		}
	}

	warnings := []domain.Warning{}
	if hasActives {
		warnings = append(warnings, domain.Warning{Type: WarningGeneral, Message: generalWarning, Severity: domain.SeverityMedium})
	}
	if p.IsBeginner() {
		warnings = append(warnings, domain.Warning{Type: WarningExperience, Message: beginnerWarning, Severity: domain.SeverityLow})
	}

	seen := make(map[string]struct{})
	for _, e := range entries {
		for _, tag := range e.ActiveIngredients {
			tmpl, ok := t.IngredientWarnings[tag]
			if !ok {
				continue
			}
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			warnings = append(warnings, domain.Warning{Type: WarningIngredient, Message: tmpl.Message, Severity: tmpl.Severity})
		}
	}

	if p.Sensitivity > 7 {
		for i, e := range entries {
			if e.HasActives() && e.Strength != catalog.Gentle {
				warnings = append(warnings, domain.Warning{
					Type:     WarningSensitivity,
					Message:  list[i].Name + sensitivitySuffix,
					Severity: domain.SeverityHigh,
				})
			}
		}
	}

	for _, cond := range p.MedicalConditions {
		if rule, ok := t.MedicalRules[cond]; ok && rule.Note != "" {
			warnings = append(warnings, domain.Warning{Type: WarningMedical, Message: rule.Note, Severity: domain.SeverityHigh})
		}
	}

	if budgetAdjusted {
		warnings = append(warnings, domain.Warning{Type: WarningBudget, Message: budgetWarning, Severity: domain.SeverityLow})
	}
	if p.FreeTextConcerns != "" {
		warnings = append(warnings, domain.Warning{Type: WarningNote, Message: freeTextWarning, Severity: domain.SeverityLow})
	}

	return warnings, timelineFor(p.ExperienceLevel, t), nil
}

func timelineFor(level string, t *catalog.Tables) domain.Timeline {
	tier := level
	if tier == domain.ExperienceExpert {
		tier = domain.ExperienceAdvanced
	}
	src, ok := t.Timelines[tier]
	if !ok {
		src = t.Timelines[domain.ExperienceBeginner]
	}
	out := make(domain.Timeline, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

var followUpWeeks = map[string]int{
	domain.ExperienceBeginner:     8,
	domain.ExperienceIntermediate: 6,
	domain.ExperienceAdvanced:     4,
	domain.ExperienceExpert:       4,
}

// FollowUpFor returns when the user should check in again.
func FollowUpFor(p domain.UserProfile) domain.FollowUp {
	weeks, ok := followUpWeeks[p.ExperienceLevel]
	if !ok {
		weeks = followUpWeeks[domain.DefaultExperience]
	}
	guidance := "Check in after your routine has settled to review progress on " + humanize(p.PrimaryConcern) + "."
	if len(p.MedicalConditions) > 0 {
		guidance += " Share this routine with your dermatologist before starting."
	}
	return domain.FollowUp{CheckInWeeks: weeks, Guidance: guidance}
}
