package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/actuallystonmai/skincare-recommendation-service/internal/domain"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/logging"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/service"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/validation"
)

const (
	maxBodyBytes    = 1 << 20
	defaultMaxBatch = 50
)

type Handler struct {
	service  *service.Service
	maxBatch int
}

// NewHandler returns the HTTP handlers. A non-positive maxBatch uses the
// default batch size limit.
func NewHandler(svc *service.Service, maxBatch int) *Handler {
	if maxBatch <= 0 {
		maxBatch = defaultMaxBatch
	}
	return &Handler{service: svc, maxBatch: maxBatch}
}

// decodeBody reads a JSON request body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

// write JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error().Err(err).Msg("encode response failed")
	}
}

// writes JSON error response.
func writeError(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}

func writeValidationError(w http.ResponseWriter, err error) {
	var verr *validation.RequestValidationError
	if !errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:   "invalid_parameter",
		Message: verr.Error(),
		Fields:  verr.Fields,
	})
}

// writeServiceError maps service errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrResultNotFound):
		writeError(w, http.StatusNotFound, "result_not_found", "Recommendation result does not exist")
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		writeError(w, http.StatusServiceUnavailable, "request_timeout", "Request timed out, please try again")
	default:
		logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
	}
}
