package domain

import "time"

// Recommendation categories, which also name the output buckets.
const (
	CategoryEssential  = "essential"
	CategoryTargeted   = "targeted"
	CategorySupporting = "supporting"
	CategoryOptional   = "optional"
)

type Price struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type Recommendation struct {
	EntryID           string  `json:"entry_id"`
	Name              string  `json:"name"`
	Reasoning         string  `json:"reasoning"`
	Category          string  `json:"category"`
	ProductCategory   string  `json:"product_category"`
	Priority          float64 `json:"priority"`
	MatchScore        float64 `json:"match_score"`
	FinalPriority     float64 `json:"final_priority"`
	Price             *Price  `json:"price,omitempty"`
	BudgetAdjusted    bool    `json:"budget_adjusted,omitempty"`
	MedicallyRequired bool    `json:"medically_required,omitempty"`
}

type Buckets struct {
	Essential  []Recommendation `json:"essential"`
	Targeted   []Recommendation `json:"targeted"`
	Supporting []Recommendation `json:"supporting"`
	Optional   []Recommendation `json:"optional"`
}

// All returns every bucketed recommendation, essential first.
func (b Buckets) All() []Recommendation {
	out := make([]Recommendation, 0, len(b.Essential)+len(b.Targeted)+len(b.Supporting)+len(b.Optional))
	out = append(out, b.Essential...)
	out = append(out, b.Targeted...)
	out = append(out, b.Supporting...)
	out = append(out, b.Optional...)
	return out
}

type RoutineStep struct {
	Step         int    `json:"step"`
	EntryID      string `json:"entry_id"`
	DisplayName  string `json:"display_name"`
	Category     string `json:"category"`
	Instructions string `json:"instructions"`
	Timing       string `json:"timing"`
}

type Routine struct {
	Morning   []RoutineStep `json:"morning"`
	Afternoon []RoutineStep `json:"afternoon,omitempty"`
	Evening   []RoutineStep `json:"evening"`
}

const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

type Warning struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// Timeline maps an introduction period to guidance for that period.
type Timeline map[string]string

type FollowUp struct {
	CheckInWeeks int    `json:"check_in_weeks"`
	Guidance     string `json:"guidance"`
}

type RecommendationResult struct {
	ID                 string      `json:"id,omitempty"`
	UserProfile        UserProfile `json:"user_profile"`
	GeneratedAt        time.Time   `json:"generated_at"`
	Market             string      `json:"market"`
	Currency           string      `json:"currency"`
	Recommendations    Buckets     `json:"recommendations"`
	RoutineSuggestions Routine     `json:"routine_suggestions"`
	Warnings           []Warning   `json:"warnings"`
	Timeline           Timeline    `json:"timeline"`
	FollowUp           FollowUp    `json:"follow_up"`
	Error              string      `json:"error,omitempty"`
	Fallback           bool        `json:"fallback,omitempty"`
}

type RecommendationMeta struct {
	CacheHit    bool   `json:"cache_hit"`
	GeneratedAt string `json:"generated_at"`
	TotalCount  int    `json:"total_count"`
}

type BatchStatus string

const (
	StatusSuccess BatchStatus = "success"
	StatusFailed  BatchStatus = "failed"
)

type BatchItemResult struct {
	Index    int                   `json:"index"`
	Result   *RecommendationResult `json:"result,omitempty"`
	CacheHit bool                  `json:"cache_hit"`
	Status   BatchStatus           `json:"status"`
	Error    string                `json:"error,omitempty"`
	Message  string                `json:"message,omitempty"`
}

type BatchSummary struct {
	SuccessCount     int   `json:"success_count"`
	FailedCount      int   `json:"failed_count"`
	FallbackCount    int   `json:"fallback_count"`
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

type BatchMeta struct {
	GeneratedAt string `json:"generated_at"`
}

type BatchResponse struct {
	Results  []BatchItemResult `json:"results"`
	Summary  BatchSummary      `json:"summary"`
	Metadata BatchMeta         `json:"metadata"`
}

// StoredResult is a persisted result summary.
type StoredResult struct {
	ID          string    `json:"id"`
	Fingerprint string    `json:"fingerprint"`
	Market      string    `json:"market"`
	SkinType    string    `json:"skin_type"`
	Fallback    bool      `json:"fallback"`
	CreatedAt   time.Time `json:"created_at"`
}
