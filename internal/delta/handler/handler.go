package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"fxdelta/internal/domain"
)

const (
	CodeInvalidRequest      = "InvalidRequest"
	CodeAPIError            = "ApiError"
	CodeInternalServerError = "InternalServerError"
)

type DeltaService interface {
	GetCurrencyDeltas(ctx context.Context, req domain.CurrencyRequest) ([]domain.CurrencyDelta, error)
}

type Handler struct {
	service DeltaService
}

func NewDeltaHandler(service DeltaService) *Handler {
	return &Handler{service: service}
}

type ErrorResponse struct {
	ErrorCode    string `json:"errorCode" example:"InvalidRequest"`
	ErrorDetails string `json:"errorDetails" example:"Currencies must be unique."`
}

// statusFor maps a failure to its HTTP status and error code.
func statusFor(err error) (int, string) {
	switch domain.KindOf(err) {
	case domain.KindInvalidRequest:
		return http.StatusBadRequest, CodeInvalidRequest
	case domain.KindUpstream:
		return http.StatusInternalServerError, CodeAPIError
	default:
		return http.StatusInternalServerError, CodeInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, statusCode int, code, details string) {
	writeJSON(w, statusCode, ErrorResponse{ErrorCode: code, ErrorDetails: details})
}
