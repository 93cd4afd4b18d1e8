package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"fxdelta/internal/domain"

	"github.com/sirupsen/logrus"
)

const maxRequestBodyBytes = 64 << 10

type GetCurrencyDeltasRequest struct {
	BaseCurrency string    `json:"baseCurrency" example:"USD"`
	Currencies   []string  `json:"currencies" example:"USD,SEK"`
	FromDate     time.Time `json:"fromDate" example:"2025-01-01T00:00:00Z"`
	ToDate       time.Time `json:"toDate" example:"2025-01-11T00:00:00Z"`
}

type CurrencyDeltaResponse struct {
	Currency string  `json:"currency" example:"SEK"`
	Delta    float64 `json:"delta" example:"9.5"`
}

// GetCurrencyDeltas godoc
// @Summary Get currency deltas
// @Description Compute rate - 1 for every requested currency against the base currency, using the latest rates
// @Tags Currency
// @Accept json
// @Produce json
// @Param request body GetCurrencyDeltasRequest true "Currencies and date range"
// @Success 200 {array} CurrencyDeltaResponse
// @Failure 400 {object} ErrorResponse "InvalidRequest"
// @Failure 500 {object} ErrorResponse "ApiError or InternalServerError"
// @Router /Currency/GetCurrencyDeltas [post]
func (h *Handler) GetCurrencyDeltas(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req GetCurrencyDeltasRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidRequest, "invalid request body")
		return
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, CodeInvalidRequest, "invalid request body")
		return
	}

	deltas, err := h.service.GetCurrencyDeltas(r.Context(), domain.CurrencyRequest{
		BaseCurrency: req.BaseCurrency,
		Currencies:   req.Currencies,
		FromDate:     req.FromDate,
		ToDate:       req.ToDate,
	})
	if err != nil {
		status, code := statusFor(err)
		entry := logrus.WithError(err).WithFields(logrus.Fields{
			"handler":    "GetCurrencyDeltas",
			"base":       req.BaseCurrency,
			"currencies": req.Currencies,
			"error_code": code,
		})
		if status >= http.StatusInternalServerError {
			entry.Error("couldn't compute currency deltas")
		} else {
			entry.Info("rejected currency deltas request")
		}
		writeError(w, status, code, err.Error())
		return
	}

	res := make([]CurrencyDeltaResponse, 0, len(deltas))
	for _, d := range deltas {
		res = append(res, CurrencyDeltaResponse{Currency: d.Currency, Delta: d.Delta.InexactFloat64()})
	}
	writeJSON(w, http.StatusOK, res)
}
