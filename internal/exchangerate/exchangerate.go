// Package exchangerate fetches the currency conversion table from the
// external exchange-rate API. Rates are expressed as units of currency per
// one unit of the base currency.
package exchangerate

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

// Response is the raw payload of GET /latest/{base}.
type Response struct {
	Result          string             `json:"result"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// Client queries the exchange-rate API.
type Client struct {
	rc *resty.Client
}

// NewClient creates an exchange-rate client for the given API base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		rc: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10 * time.Second).
			SetHeader("Accept", "application/json"),
	}
}

// Latest fetches the current conversion table anchored to the base currency.
// A payload with result != "success" is treated as a failed refresh; the
// caller keeps its previous table.
func (c *Client) Latest(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	var payload Response

	resp, err := c.rc.R().
		SetContext(ctx).
		SetResult(&payload).
		Get("/latest/" + base)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("exchange rate API returned %s", resp.Status())
	}
	if payload.Result != "success" {
		return nil, fmt.Errorf("exchange rate API result: %q", payload.Result)
	}

	rates := make(map[string]decimal.Decimal, len(payload.ConversionRates))
	for currency, rate := range payload.ConversionRates {
		rates[currency] = decimal.NewFromFloat(rate)
	}

	return rates, nil
}
