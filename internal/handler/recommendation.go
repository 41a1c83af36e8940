package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/actuallystonmai/skincare-recommendation-service/internal/domain"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/validation"
)

const defaultListLimit = 20

// POST /recommendations
func (h *Handler) CreateRecommendation(w http.ResponseWriter, r *http.Request) {
	var raw domain.RawAssessment
	if err := decodeBody(w, r, &raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Request body must be a JSON object")
		return
	}

	result, cacheHit, err := h.service.GetRecommendations(r.Context(), raw)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, RecommendationResponse{
		Result: result,
		Metadata: domain.RecommendationMeta{
			CacheHit:    cacheHit,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			TotalCount:  len(result.Recommendations.All()),
		},
	})
}

// GET /recommendations/{resultID}
func (h *Handler) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "resultID")
	if err := validation.Var("result_id", id, "required,uuid"); err != nil {
		writeValidationError(w, err)
		return
	}

	result, err := h.service.GetResult(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, RecommendationResponse{
		Result: result,
		Metadata: domain.RecommendationMeta{
			GeneratedAt: result.GeneratedAt.UTC().Format(time.RFC3339),
			TotalCount:  len(result.Recommendations.All()),
		},
	})
}

// GET /recommendations?limit=
func (h *Handler) ListRecommendations(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > 100 {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	items, total, err := h.service.ListRecent(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ResultListResponse{
		Results:  items,
		Metadata: ListMeta{Limit: limit, TotalCount: total},
	})
}
