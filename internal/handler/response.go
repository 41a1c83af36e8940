package handler

import (
	"github.com/actuallystonmai/skincare-recommendation-service/internal/domain"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/validation"
)

type RecommendationResponse struct {
	Result   *domain.RecommendationResult `json:"result"`
	Metadata domain.RecommendationMeta    `json:"metadata"`
}

type BatchRequest struct {
	Assessments []domain.RawAssessment `json:"assessments" validate:"required,min=1"`
	// Market applies to every assessment that does not name one.
	Market string `json:"market,omitempty" validate:"omitempty,iso3166_1_alpha2"`
}

type ResultListResponse struct {
	Results  []domain.StoredResult `json:"results"`
	Metadata ListMeta              `json:"metadata"`
}

type ListMeta struct {
	Limit      int `json:"limit"`
	TotalCount int `json:"total_count"`
}

type ErrorResponse struct {
	Error   string                  `json:"error"`
	Message string                  `json:"message"`
	Fields  []validation.FieldError `json:"fields,omitempty"`
}
