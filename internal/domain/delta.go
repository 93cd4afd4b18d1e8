package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyRequest asks for the deltas of Currencies against BaseCurrency.
// FromDate and ToDate are validated but rates are always the latest ones.
type CurrencyRequest struct {
	BaseCurrency string
	Currencies   []string `validate:"unique"`
	FromDate     time.Time
	ToDate       time.Time `validate:"gtfield=FromDate"`
}

// RateTable maps a currency code to its rate against the base currency.
type RateTable map[string]decimal.Decimal

// CurrencyDelta is a currency's rate minus one, rounded to 3 decimal places.
type CurrencyDelta struct {
	Currency string
	Delta    decimal.Decimal
}
