// Package feed provides the client for the external arbitrage-opportunity
// feed. Opportunities are ephemeral; nothing from this feed is persisted.
package feed

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/itsdelka001/steam-investment-backend/internal/model"
)

// Client queries the arbitrage feed API.
type Client struct {
	rc *resty.Client
}

// NewClient creates a feed client for the given API base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		rc: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(15 * time.Second).
			SetHeader("Accept", "application/json"),
	}
}

// Opportunities fetches cross-market price spreads between two marketplaces.
// A limit of 0 leaves the feed's default page size in place.
//
// Endpoint: GET {base}/arbitrage-opportunities?source=&destination=&limit=
func (c *Client) Opportunities(ctx context.Context, source, destination string, limit int) ([]model.ArbitrageOpportunity, error) {
	req := c.rc.R().
		SetContext(ctx).
		SetQueryParam("source", source).
		SetQueryParam("destination", destination)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	var opportunities []model.ArbitrageOpportunity
	resp, err := req.SetResult(&opportunities).Get("/arbitrage-opportunities")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("arbitrage feed returned %s", resp.Status())
	}

	return opportunities, nil
}
