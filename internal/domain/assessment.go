package domain

// RawAssessment is the loosely-typed self-assessment as it arrives from the
// questionnaire. Every field is optional and may carry the wrong type.
type RawAssessment map[string]any

const (
	SkinNormal      = "normal"
	SkinDry         = "dry"
	SkinOily        = "oily"
	SkinCombination = "combination"
	SkinSensitive   = "sensitive"
)

const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceAdvanced     = "advanced"
	ExperienceExpert       = "expert"
)

const (
	BudgetTierBudget   = "budget"
	BudgetTierMidRange = "mid-range"
	BudgetTierPremium  = "premium"
	BudgetTierLuxury   = "luxury"
)

const (
	ClimateHumid     = "humid"
	ClimateDry       = "dry"
	ClimateCold      = "cold"
	ClimateHot       = "hot"
	ClimateTemperate = "temperate"
)

const (
	LifestyleSedentary = "sedentary"
	LifestyleModerate  = "moderate"
	LifestyleActive    = "active"
	LifestyleOutdoor   = "outdoor"
)

const (
	DefaultSkinType    = SkinNormal
	DefaultSensitivity = 5
	DefaultBudgetTier  = BudgetTierMidRange
	DefaultExperience  = ExperienceBeginner
	DefaultClimate     = ClimateTemperate
	DefaultAgeBracket  = "25_34"
	DefaultGender      = "unspecified"
	DefaultLifestyle   = LifestyleModerate
	DefaultMarket      = "US"
	MinSensitivity     = 1
	MaxSensitivity     = 10
)

// Assessment is the normalized self-assessment. Every field is populated.
type Assessment struct {
	SkinType          string   `json:"skin_type"`
	Concerns          []string `json:"concerns"`
	MedicalConditions []string `json:"medical_conditions"`
	AgeBracket        string   `json:"age_bracket"`
	Gender            string   `json:"gender"`
	Sensitivity       int      `json:"sensitivity"`
	Climate           string   `json:"climate"`
	BudgetTier        string   `json:"budget_tier"`
	ExperienceLevel   string   `json:"experience_level"`
	Goals             []string `json:"goals"`
	Lifestyle         string   `json:"lifestyle"`
	FreeTextConcerns  string   `json:"free_text_concerns"`
	Market            string   `json:"market"`
}

// Raw converts the assessment back into its raw form.
func (a Assessment) Raw() RawAssessment {
	return RawAssessment{
		"skin_type":          a.SkinType,
		"concerns":           append([]string(nil), a.Concerns...),
		"medical_conditions": append([]string(nil), a.MedicalConditions...),
		"age_bracket":        a.AgeBracket,
		"gender":             a.Gender,
		"sensitivity":        a.Sensitivity,
		"climate":            a.Climate,
		"budget_tier":        a.BudgetTier,
		"experience_level":   a.ExperienceLevel,
		"goals":              append([]string(nil), a.Goals...),
		"lifestyle":          a.Lifestyle,
		"free_text_concerns": a.FreeTextConcerns,
		"market":             a.Market,
	}
}

// ExperienceScore maps an experience level onto 1 (beginner) through 4 (expert).
func ExperienceScore(level string) int {
	switch level {
	case ExperienceIntermediate:
		return 2
	case ExperienceAdvanced:
		return 3
	case ExperienceExpert:
		return 4
	default:
		return 1
	}
}

// UserProfile is the assessment enriched with derived attributes.
type UserProfile struct {
	Assessment
	PrioritizedConcerns []string `json:"prioritized_concerns"`
	RiskTolerance       int      `json:"risk_tolerance"`
	RoutineComplexity   int      `json:"routine_complexity"`
	PrimaryConcern      string   `json:"primary_concern"`
}

// IsBeginner reports whether strong actives should be withheld.
func (p UserProfile) IsBeginner() bool {
	return p.ExperienceLevel == ExperienceBeginner
}
