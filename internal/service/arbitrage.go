package service

import (
	"context"
	"sort"

	"github.com/itsdelka001/steam-investment-backend/internal/feed"
	"github.com/itsdelka001/steam-investment-backend/internal/model"
	"github.com/shopspring/decimal"
)

// RankOpportunities computes spread economics for each opportunity, applies
// the filter and sorts by the requested key. The input list is never
// mutated; the computation is pure and safe to re-run on every change.
//
// Per opportunity: netProfit = destPrice - sourcePrice - fees, and
// roi = netProfit/sourcePrice*100 with a zero-guard on sourcePrice.
// Sorting is stable: netProfit and roi descending, sourcePrice ascending; an
// unrecognized key preserves feed order.
func RankOpportunities(opportunities []model.ArbitrageOpportunity, filter model.ArbitrageFilter, sortKey string) []model.RankedOpportunity {
	ranked := make([]model.RankedOpportunity, 0, len(opportunities))

	for _, opp := range opportunities {
		netProfit := opp.DestPrice.Sub(opp.SourcePrice).Sub(opp.Fees)

		roi := decimal.Zero
		if opp.SourcePrice.IsPositive() {
			roi = netProfit.Div(opp.SourcePrice).Mul(hundred)
		}

		if !matchesFilter(opp, roi, filter) {
			continue
		}

		ranked = append(ranked, model.RankedOpportunity{
			ArbitrageOpportunity: opp,
			NetProfit:            netProfit,
			Roi:                  roi,
		})
	}

	switch sortKey {
	case model.ArbitrageSortNetProfit:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].NetProfit.GreaterThan(ranked[j].NetProfit)
		})
	case model.ArbitrageSortRoi:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Roi.GreaterThan(ranked[j].Roi)
		})
	case model.ArbitrageSortSourcePrice:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].SourcePrice.LessThan(ranked[j].SourcePrice)
		})
	}

	return ranked
}

// matchesFilter checks every bound that is set; unset bounds impose no
// constraint.
func matchesFilter(opp model.ArbitrageOpportunity, roi decimal.Decimal, filter model.ArbitrageFilter) bool {
	if filter.MinRoi != nil && roi.LessThan(*filter.MinRoi) {
		return false
	}
	if filter.MaxRoi != nil && roi.GreaterThan(*filter.MaxRoi) {
		return false
	}
	if filter.MinPrice != nil && opp.SourcePrice.LessThan(*filter.MinPrice) {
		return false
	}
	if filter.MaxPrice != nil && opp.SourcePrice.GreaterThan(*filter.MaxPrice) {
		return false
	}
	return true
}

// ArbitrageService fetches opportunities from the external feed and ranks
// them. It holds no state between calls.
type ArbitrageService struct {
	feed *feed.Client
}

// NewArbitrageService creates a new ArbitrageService.
func NewArbitrageService(feedClient *feed.Client) *ArbitrageService {
	return &ArbitrageService{feed: feedClient}
}

// GetRankedOpportunities fetches the current feed for a market pair and
// applies the caller's filter and sort policy.
func (s *ArbitrageService) GetRankedOpportunities(ctx context.Context, source, destination string, limit int, filter model.ArbitrageFilter, sortKey string) ([]model.RankedOpportunity, error) {
	opportunities, err := s.feed.Opportunities(ctx, source, destination, limit)
	if err != nil {
		return nil, err
	}

	return RankOpportunities(opportunities, filter, sortKey), nil
}
