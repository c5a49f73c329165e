// Package market provides the client for the external market-data provider:
// current item prices, autocomplete search and market-analysis text.
package market

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// Client wraps an HTTP client for the market-data provider API.
// All request methods honour the caller's context, so an autocomplete query
// superseded by a newer one aborts its in-flight HTTP request.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a market client for the given provider base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken sets the provider API token sent as a Bearer authorization header
// on every request. An empty token sends no header.
func (c *Client) SetToken(token string) {
	c.token = token
}

// CurrentPrice fetches the latest market price for an item.
// The returned price is per unit, denominated in the base currency.
//
// Endpoint: GET {base}/current_price?item_name={name}&category={category}
func (c *Client) CurrentPrice(ctx context.Context, marketHashName, category string) (decimal.Decimal, error) {
	query := url.Values{}
	query.Set("item_name", marketHashName)
	query.Set("category", category)

	var result PriceResponse
	if err := c.getJSON(ctx, "/current_price?"+query.Encode(), &result); err != nil {
		return decimal.Zero, err
	}

	return result.Price, nil
}

// Search queries the provider's item autocomplete.
//
// Endpoint: GET {base}/search?query={query}&category={category}
func (c *Client) Search(ctx context.Context, searchQuery, category string) ([]SearchResult, error) {
	query := url.Values{}
	query.Set("query", searchQuery)
	query.Set("category", category)

	var results []SearchResult
	if err := c.getJSON(ctx, "/search?"+query.Encode(), &results); err != nil {
		return nil, err
	}

	return results, nil
}

// MarketAnalysis fetches the provider's free-form analysis text for an item.
// The text is an opaque pass-through; no local computation depends on it.
//
// Endpoint: POST {base}/market_analysis
func (c *Client) MarketAnalysis(ctx context.Context, itemName, category string) (string, error) {
	body, err := json.Marshal(analysisRequest{ItemName: itemName, Category: category})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/market_analysis", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	var result AnalysisResponse
	if err := c.do(req, &result); err != nil {
		return "", err
	}

	return result.Analysis, nil
}

// getJSON executes a GET request against the provider and decodes the JSON body.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	return c.do(req, out)
}

// do executes a prepared request, sets common headers and decodes the response.
func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("market provider returned %d: %s", resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode market provider response: %w", err)
	}

	return nil
}
