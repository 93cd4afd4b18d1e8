package adapters

import (
	"context"
	"net/http"

	"fxdelta/internal/domain"
)

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type RateClient interface {
	GetLatestRates(ctx context.Context, base string) (domain.RateTable, error)
}
