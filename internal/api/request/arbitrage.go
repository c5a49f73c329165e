package request

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/itsdelka001/steam-investment-backend/internal/model"
	"github.com/shopspring/decimal"
)

// ArbitrageQuery holds the parsed query parameters of the arbitrage
// opportunities endpoint: the market pair, the page size, the optional
// filter bounds and the sort key.
type ArbitrageQuery struct {
	Source      string
	Destination string
	Limit       int
	Sort        string
	Filter      model.ArbitrageFilter
}

// ParseArbitrageQuery parses and validates the query string. Absent bound
// parameters stay nil and impose no constraint.
func ParseArbitrageQuery(values url.Values) (ArbitrageQuery, error) {
	query := ArbitrageQuery{
		Source:      values.Get("source"),
		Destination: values.Get("destination"),
		Sort:        values.Get("sort"),
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return ArbitrageQuery{}, fmt.Errorf("limit must be a non-negative integer: %q", raw)
		}
		query.Limit = limit
	}

	var err error
	if query.Filter.MinRoi, err = parseOptionalDecimal(values, "minRoi"); err != nil {
		return ArbitrageQuery{}, err
	}
	if query.Filter.MaxRoi, err = parseOptionalDecimal(values, "maxRoi"); err != nil {
		return ArbitrageQuery{}, err
	}
	if query.Filter.MinPrice, err = parseOptionalDecimal(values, "minPrice"); err != nil {
		return ArbitrageQuery{}, err
	}
	if query.Filter.MaxPrice, err = parseOptionalDecimal(values, "maxPrice"); err != nil {
		return ArbitrageQuery{}, err
	}

	return query, nil
}

func parseOptionalDecimal(values url.Values, key string) (*decimal.Decimal, error) {
	raw := values.Get(key)
	if raw == "" {
		return nil, nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number: %q", key, raw)
	}
	return &value, nil
}
