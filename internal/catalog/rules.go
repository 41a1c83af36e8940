package catalog

import "sync"

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the built-in reference tables. The value is shared and must
// be treated as read-only.
func Default() *Tables {
	defaultOnce.Do(func() {
		defaultTables = &Tables{
			Entries:              defaultEntries(),
			Conflicts:            defaultConflicts(),
			ConflictAlternatives: defaultConflictAlternatives(),
			BudgetAlternatives:   defaultBudgetAlternatives(),
			ConcernPriority:      defaultConcernPriority(),
			GoalConcerns:         defaultGoalConcerns(),
			ConcernRules:         defaultConcernRules(),
			SkinTypeRules:        defaultSkinTypeRules(),
			AgeRules:             defaultAgeRules(),
			ClimateRules:         defaultClimateRules(),
			MedicalRules:         defaultMedicalRules(),
			SafeEssentials:       defaultSafeEssentials(),
			SkinCompatibility:    defaultSkinCompatibility(),
			BucketLimits:         defaultBucketLimits(),
			IngredientWarnings:   defaultIngredientWarnings(),
			Timelines:            defaultTimelines(),
			Steps:                defaultSteps(),
			Markets:              defaultMarkets(),
		}
	})
	return defaultTables
}

// Conflicts are declared on one side only; lookups go through
// Tables.Conflicting, which checks both.
func defaultConflicts() map[string][]string {
	return map[string][]string{
		"retinoid":         {"vitamin_c", "aha", "salicylic_acid", "benzoyl_peroxide"},
		"benzoyl_peroxide": {"vitamin_c"},
		"copper_peptides":  {"vitamin_c", "aha"},
	}
}

func defaultConflictAlternatives() map[string]string {
	return map[string]string{
		"retinol":            "bakuchiol",
		"adapalene":          "bakuchiol",
		"vitamin_c":          "alpha_arbutin",
		"ascorbyl_glucoside": "alpha_arbutin",
		"glycolic_acid":      "pha_toner",
		"lactic_acid":        "pha_toner",
		"salicylic_acid":     "azelaic_acid",
		"benzoyl_peroxide":   "sulfur_spot",
		"copper_peptides":    "peptides",
		"salicylic_cleanser": "gentle_cleanser",
	}
}

func defaultBudgetAlternatives() map[string]string {
	return map[string]string{
		"retinol":              "adapalene",
		"vitamin_c":            "ascorbyl_glucoside",
		"copper_peptides":      "peptides",
		"tranexamic_acid":      "azelaic_acid",
		"glycolic_acid":        "lactic_acid",
		"barrier_repair_cream": "rich_moisturizer",
		"mineral_sunscreen":    "chemical_sunscreen",
		"cream_cleanser":       "gentle_cleanser",
		"bakuchiol":            "peptides",
	}
}

func defaultConcernPriority() map[string]int {
	return map[string]int{
		"acne":              10,
		"sensitivity":       9,
		"redness":           8,
		"hyperpigmentation": 7,
		"aging":             6,
		"dryness":           6,
		"dehydration":       5,
		"oiliness":          5,
		"texture":           4,
		"large_pores":       3,
		"dullness":          3,
		"dark_circles":      2,
	}
}

func defaultGoalConcerns() map[string]string {
	return map[string]string{
		"clear_skin":     "acne",
		"anti_aging":     "aging",
		"even_tone":      "hyperpigmentation",
		"hydration":      "dryness",
		"glow":           "dullness",
		"minimize_pores": "large_pores",
		"calm_skin":      "redness",
		"oil_control":    "oiliness",
		"smooth_texture": "texture",
	}
}

const intermediate = "intermediate"

func defaultConcernRules() map[string][]CandidateRule {
	return map[string][]CandidateRule{
		"acne": {
			{EntryID: "niacinamide", Category: "targeted", Reason: "Reduces breakouts and calms inflammation"},
			{EntryID: "salicylic_acid", Category: "targeted", MinExperience: intermediate, Reason: "Unclogs pores and clears active acne"},
		},
		"aging": {
			{EntryID: "retinol", Category: "targeted", MinExperience: intermediate, Reason: "Gold-standard ingredient for fine lines and firmness"},
			{EntryID: "peptides", Category: "targeted", Reason: "Supports firmness with a gentle profile"},
		},
		"hyperpigmentation": {
			{EntryID: "vitamin_c", Category: "targeted", MinExperience: intermediate, Reason: "Brightens dark spots and protects against oxidative stress"},
			{EntryID: "alpha_arbutin", Category: "targeted", Reason: "Fades dark spots gently"},
		},
		"dryness": {
			{EntryID: "hyaluronic_acid", Category: "targeted", Reason: "Draws water into the skin"},
			{EntryID: "squalane", Category: "targeted", Reason: "Seals in moisture without heaviness"},
		},
		"dehydration": {
			{EntryID: "hyaluronic_acid", Category: "targeted", Reason: "Restores water content"},
		},
		"oiliness": {
			{EntryID: "niacinamide", Category: "targeted", Reason: "Regulates sebum production"},
			{EntryID: "zinc_pca", Category: "targeted", Reason: "Balances oil and reduces shine"},
		},
		"sensitivity": {
			{EntryID: "centella", Category: "targeted", Reason: "Soothes and strengthens a reactive barrier"},
		},
		"redness": {
			{EntryID: "azelaic_acid", Category: "targeted", Reason: "Calms visible redness"},
			{EntryID: "centella", Category: "targeted", Reason: "Soothes irritated skin"},
		},
		"dullness": {
			{EntryID: "vitamin_c", Category: "targeted", MinExperience: intermediate, Reason: "Restores radiance"},
			{EntryID: "lactic_acid", Category: "targeted", MinExperience: intermediate, Reason: "Gently resurfaces dull skin"},
		},
		"large_pores": {
			{EntryID: "niacinamide", Category: "targeted", Reason: "Visibly tightens pores"},
			{EntryID: "salicylic_acid", Category: "targeted", MinExperience: intermediate, Reason: "Clears congestion inside pores"},
		},
		"texture": {
			{EntryID: "glycolic_acid", Category: "targeted", MinExperience: intermediate, Reason: "Smooths rough texture"},
			{EntryID: "pha_toner", Category: "targeted", Reason: "Gently exfoliates uneven texture"},
		},
		"dark_circles": {
			{EntryID: "caffeine_eye", Category: "targeted", Reason: "Reduces puffiness and shadows"},
			{EntryID: "peptides", Category: "targeted", Reason: "Supports the thin skin around the eyes"},
		},
	}
}

func defaultSkinTypeRules() map[string][]CandidateRule {
	return map[string][]CandidateRule{
		"oily": {
			{EntryID: "niacinamide", Category: "supporting", Reason: "Keeps oil production in check"},
			{EntryID: "clay_mask", Category: "supporting", Reason: "Weekly deep clean for oily skin"},
		},
		"dry": {
			{EntryID: "hyaluronic_acid", Category: "supporting", Reason: "Extra hydration layer for dry skin"},
			{EntryID: "squalane", Category: "supporting", Reason: "Replenishes lipids in dry skin"},
		},
		"combination": {
			{EntryID: "niacinamide", Category: "supporting", Reason: "Balances oily and dry zones"},
			{EntryID: "hyaluronic_acid", Category: "supporting", Reason: "Hydrates without adding oil"},
		},
		"sensitive": {
			{EntryID: "centella", Category: "supporting", Reason: "Calms reactive skin"},
		},
		"normal": {
			{EntryID: "hyaluronic_acid", Category: "supporting", Reason: "Maintains healthy hydration"},
		},
	}
}

// Age and climate rules only propose beginner-safe entries.
func defaultAgeRules() map[string][]CandidateRule {
	return map[string][]CandidateRule{
		"under_18": nil,
		"18_24": {
			{EntryID: "niacinamide", Category: "supporting", Reason: "Prevents early congestion"},
		},
		"25_34": {
			{EntryID: "ascorbyl_glucoside", Category: "supporting", Reason: "Early antioxidant protection"},
		},
		"35_44": {
			{EntryID: "peptides", Category: "supporting", Reason: "Supports collagen as skin matures"},
		},
		"45_54": {
			{EntryID: "peptides", Category: "supporting", Reason: "Supports collagen as skin matures"},
			{EntryID: "hyaluronic_acid", Category: "supporting", Reason: "Offsets declining moisture retention"},
		},
		"55_plus": {
			{EntryID: "peptides", Category: "supporting", Reason: "Supports firmness in mature skin"},
			{EntryID: "squalane", Category: "supporting", Reason: "Replenishes lipids in mature skin"},
		},
	}
}

func defaultClimateRules() map[string][]CandidateRule {
	return map[string][]CandidateRule{
		"humid": {
			{EntryID: "niacinamide", Category: "optional", Reason: "Controls shine in humid weather"},
		},
		"dry": {
			{EntryID: "hyaluronic_acid", Category: "optional", Reason: "Counters moisture loss in dry air"},
		},
		"cold": {
			{EntryID: "squalane", Category: "optional", Reason: "Protects against cold, windy weather"},
		},
		"hot": {
			{EntryID: "hyaluronic_acid", Category: "optional", Reason: "Lightweight hydration for hot weather"},
		},
		"temperate": nil,
	}
}

func defaultMedicalRules() map[string]MedicalRule {
	return map[string]MedicalRule{
		"eczema": {
			Avoid:    []string{"salicylic_acid", "aha", "retinoid", "benzoyl_peroxide", "foaming_cleanser", "salicylic_cleanser", "clay_mask"},
			Required: []string{"gentle_cleanser", "rich_moisturizer"},
			Note:     "With eczema, keep the routine minimal and fragrance-free. Stop any product that stings and speak to your dermatologist during flares.",
		},
		"rosacea": {
			Avoid:    []string{"aha", "retinoid", "salicylic_acid", "benzoyl_peroxide", "vitamin_c", "clay_mask", "foaming_cleanser"},
			Required: []string{"azelaic_acid", "mineral_sunscreen"},
			Note:     "Rosacea flares are often triggered by heat, sun and exfoliants. Mineral sunscreen daily is the single most important step.",
		},
		"psoriasis": {
			Avoid:    []string{"glycolic_acid", "clay_mask"},
			Required: []string{"rich_moisturizer"},
			Note:     "Psoriasis plaques need medical treatment. These products support, but do not replace, prescribed therapy.",
		},
		"pregnancy": {
			Avoid:    []string{"retinoid", "salicylic_acid", "tranexamic_acid"},
			Required: []string{"mineral_sunscreen"},
			Note:     "Retinoids and high-strength salicylic acid are avoided during pregnancy. Confirm any new product with your doctor.",
		},
		"perioral_dermatitis": {
			Avoid:    []string{"rich_moisturizer", "squalane", "retinoid"},
			Required: []string{"azelaic_acid"},
			Note:     "Heavy creams and oils can worsen perioral dermatitis. Keep products light and see a dermatologist if it persists.",
		},
		"seborrheic_dermatitis": {
			Avoid:    []string{"rich_moisturizer", "squalane"},
			Required: []string{"zinc_pca"},
			Note:     "Oils can feed the yeast involved in seborrheic dermatitis. Medicated cleansers from your doctor may be needed.",
		},
		"contact_dermatitis": {
			Avoid:    []string{"retinoid", "aha", "salicylic_acid", "benzoyl_peroxide", "vitamin_c", "copper_peptides"},
			Required: []string{"gentle_cleanser", "barrier_repair_cream"},
			Note:     "Identify and remove the trigger first. Introduce nothing new until the barrier has recovered.",
		},
	}
}

// defaultSafeEssentials replaces an essential category emptied by a medical
// avoid rule. None of these entries appear in any avoid list.
func defaultSafeEssentials() map[string]string {
	return map[string]string{
		Cleanser:    "gentle_cleanser",
		Moisturizer: "lightweight_moisturizer",
		Sunscreen:   "mineral_sunscreen",
	}
}

func defaultSkinCompatibility() map[string]map[string]float64 {
	return map[string]map[string]float64{
		"normal":      {"combination": 80, "dry": 60, "oily": 60, "sensitive": 70},
		"dry":         {"normal": 70, "sensitive": 60, "combination": 40, "oily": 20},
		"oily":        {"combination": 80, "normal": 60, "dry": 20, "sensitive": 40},
		"combination": {"normal": 80, "oily": 70, "dry": 50, "sensitive": 50},
		"sensitive":   {"normal": 60, "dry": 50, "combination": 40, "oily": 30},
	}
}

func defaultBucketLimits() map[string]Limits {
	return map[string]Limits{
		"beginner":     {Essential: 4, Targeted: 2, Supporting: 1, Optional: 0},
		"intermediate": {Essential: 5, Targeted: 3, Supporting: 2, Optional: 1},
		"advanced":     {Essential: 6, Targeted: 4, Supporting: 3, Optional: 2},
		"expert":       {Essential: 6, Targeted: 5, Supporting: 4, Optional: 3},
	}
}

func defaultIngredientWarnings() map[string]WarningTemplate {
	return map[string]WarningTemplate{
		"retinoid": {
			Message:  "Retinoids cause dryness and peeling at first. Start twice a week at night, never combine with acids in the same routine, and avoid during pregnancy.",
			Severity: "high",
		},
		"aha": {
			Message:  "AHAs increase sun sensitivity. Use at night and wear sunscreen daily, including for a week after stopping.",
			Severity: "medium",
		},
		"salicylic_acid": {
			Message:  "Salicylic acid can dry the skin. Start every other day and follow with moisturizer.",
			Severity: "medium",
		},
		"benzoyl_peroxide": {
			Message:  "Benzoyl peroxide bleaches fabric and can irritate. Use white towels and start with short contact times.",
			Severity: "medium",
		},
		"vitamin_c": {
			Message:  "Vitamin C oxidizes once opened. Store it away from light and replace it if it turns dark orange.",
			Severity: "low",
		},
		"copper_peptides": {
			Message:  "Copper peptides lose effect next to vitamin C and acids. Keep them in a separate routine.",
			Severity: "low",
		},
		"azelaic_acid": {
			Message:  "Azelaic acid may tingle for the first couple of weeks. This usually settles with continued use.",
			Severity: "low",
		},
	}
}

func defaultTimelines() map[string]map[string]string {
	return map[string]map[string]string{
		"beginner": {
			"week_1_2":  "Use only your cleanser, moisturizer and sunscreen so your skin can settle into the routine.",
			"week_3_4":  "Add your first targeted product every other evening.",
			"week_5_8":  "Use the targeted product daily if your skin tolerates it, then introduce the next one.",
			"week_9_12": "Assess results. Most ingredients need about twelve weeks to show visible change.",
		},
		"intermediate": {
			"week_1_2":  "Start essentials plus one targeted product.",
			"week_3_4":  "Introduce a second targeted product on alternate evenings.",
			"week_5_8":  "Settle into the full routine and note any irritation.",
			"week_9_12": "Review progress and adjust strengths if needed.",
		},
		"advanced": {
			"week_1_2":  "Run the full routine, introducing strong actives at reduced frequency.",
			"week_3_4":  "Move strong actives to their target frequency if tolerated.",
			"week_5_8":  "Fine-tune concentrations and layering.",
			"week_9_12": "Evaluate results and rotate actives if progress plateaus.",
		},
	}
}

func defaultSteps() map[string]StepTemplate {
	return map[string]StepTemplate{
		Cleanser:    {Instructions: "Massage onto damp skin for 60 seconds, then rinse with lukewarm water", Timing: "first step"},
		Active:      {Instructions: "Apply a pea-sized amount to clean, dry skin", Timing: "after cleansing"},
		Treatment:   {Instructions: "Apply a thin layer to affected areas only", Timing: "after cleansing"},
		Hydrating:   {Instructions: "Press a few drops into slightly damp skin", Timing: "before moisturizer"},
		Moisturizer: {Instructions: "Apply evenly over face and neck", Timing: "after serums"},
		Sunscreen:   {Instructions: "Apply two finger-lengths to face and neck", Timing: "last step, 15 minutes before sun exposure"},
	}
}
