package delta

import (
	"context"

	"fxdelta/internal/adapters"
	"fxdelta/internal/domain"

	"github.com/shopspring/decimal"
)

const deltaPlaces = 3

var parity = decimal.NewFromInt(1)

type Service struct {
	validator  *RequestValidator
	rateClient adapters.RateClient
}

// GetCurrencyDeltas validates req, fetches the latest rates for its base currency and
// returns one delta per requested currency, in request order.
func (s *Service) GetCurrencyDeltas(ctx context.Context, req domain.CurrencyRequest) ([]domain.CurrencyDelta, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	rates, err := s.rateClient.GetLatestRates(ctx, req.BaseCurrency)
	if err != nil {
		return nil, err
	}

	return MapAndCompute(rates, req.Currencies)
}

// MapAndCompute fails on the first currency missing from rates; no partial result is returned.
func MapAndCompute(rates domain.RateTable, currencies []string) ([]domain.CurrencyDelta, error) {
	deltas := make([]domain.CurrencyDelta, 0, len(currencies))
	for _, currency := range currencies {
		rate, ok := rates[currency]
		if !ok {
			return nil, domain.InvalidRequest(&domain.UnknownCurrencyError{Currency: currency})
		}
		deltas = append(deltas, domain.CurrencyDelta{
			Currency: currency,
			Delta:    Delta(rate),
		})
	}
	return deltas, nil
}

// Delta is rate - 1 rounded half to even at 3 decimal places.
func Delta(rate decimal.Decimal) decimal.Decimal {
	return rate.Sub(parity).RoundBank(deltaPlaces)
}

func NewService(validator *RequestValidator, rateClient adapters.RateClient) *Service {
	return &Service{validator: validator, rateClient: rateClient}
}
