package handler

import (
	"fmt"
	"net/http"

	"github.com/actuallystonmai/skincare-recommendation-service/internal/domain"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/validation"
)

// POST /recommendations/batch
func (h *Handler) CreateBatchRecommendations(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Request body must be a JSON object with an assessments list")
		return
	}
	if err := validation.Struct(&req); err != nil {
		writeValidationError(w, err)
		return
	}
	if err := validation.Var("assessments", req.Assessments, fmt.Sprintf("max=%d", h.maxBatch)); err != nil {
		writeValidationError(w, err)
		return
	}

	raws := req.Assessments
	if req.Market != "" {
		raws = withMarket(raws, req.Market)
	}

	writeJSON(w, http.StatusOK, h.service.GetBatchRecommendations(r.Context(), raws))
}

// withMarket copies raws, setting market on every assessment without one.
func withMarket(raws []domain.RawAssessment, market string) []domain.RawAssessment {
	out := make([]domain.RawAssessment, len(raws))
	for i, raw := range raws {
		cp := make(domain.RawAssessment, len(raw)+1)
		for k, v := range raw {
			cp[k] = v
		}
		_, hasMarket := cp["market"]
		_, hasCountry := cp["country"]
		if !hasMarket && !hasCountry {
			cp["market"] = market
		}
		out[i] = cp
	}
	return out
}
