package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"fxdelta/internal/adapters"
	"fxdelta/internal/domain"

	"github.com/shopspring/decimal"
)

const maxErrorBodyBytes = 4096

// Settings locate the upstream provider. BaseURL and APIKey are concatenated as is,
// so BaseURL is expected to end with a slash.
type Settings struct {
	BaseURL string
	APIKey  string
}

type ExchangeRateClient struct {
	doer     adapters.Doer
	settings Settings
}

type apiResponse struct {
	Result          string                         `json:"result"`
	ConversionRates map[string]decimal.NullDecimal `json:"conversion_rates"`
}

// GetLatestRates fetches the latest rates for base. Failures are tagged with a domain.Kind:
// transport errors and non-2xx responses are upstream errors, everything else is internal.
func (c *ExchangeRateClient) GetLatestRates(ctx context.Context, base string) (domain.RateTable, error) {
	// base is a single escaped segment, never a sub-path
	u, err := url.Parse(c.settings.BaseURL + c.settings.APIKey + "/latest/" + url.PathEscape(base))
	if err != nil {
		return nil, domain.Internal(fmt.Errorf("failed to parse base URL: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, domain.Internal(fmt.Errorf("failed to create request for currency %q: %w", base, err))
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, domain.Upstream(fmt.Errorf("failed to execute request for currency %q: %w", base, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, domain.Upstream(&domain.UpstreamHTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(body),
		})
	}

	var body *apiResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, domain.Internal(fmt.Errorf("%w: %v", domain.ErrMalformedUpstreamResponse, err))
	}
	if body == nil || body.ConversionRates == nil {
		return nil, domain.Internal(domain.ErrMalformedUpstreamResponse)
	}

	rates := make(domain.RateTable, len(body.ConversionRates))
	for code, rate := range body.ConversionRates {
		if !rate.Valid {
			return nil, domain.Internal(fmt.Errorf("%w: null rate for %q", domain.ErrMalformedUpstreamResponse, code))
		}
		rates[code] = rate.Decimal
	}
	return rates, nil
}

func NewExchangeRateClient(doer adapters.Doer, settings Settings) *ExchangeRateClient {
	return &ExchangeRateClient{doer: doer, settings: settings}
}
