package service

import (
	"context"
	"errors"
	"sync"

	"github.com/itsdelka001/steam-investment-backend/internal/apperrors"
	"github.com/itsdelka001/steam-investment-backend/internal/market"
)

// SearchService runs item autocomplete queries against the market provider.
//
// At most one upstream search is in flight at a time: issuing a new query
// cancels the predecessor's context, so a stale result can never overtake a
// fresher one. This is the only ordering guarantee in the system.
type SearchService struct {
	market *market.Client

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewSearchService creates a new SearchService.
func NewSearchService(marketClient *market.Client) *SearchService {
	return &SearchService{market: marketClient}
}

// Search queries the provider's autocomplete, cancelling any in-flight
// predecessor. A superseded call returns ErrSearchSuperseded, which callers
// treat as "discard quietly", not as a failure.
func (s *SearchService) Search(ctx context.Context, query, category string) ([]market.SearchResult, error) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		// Only clear our own cancel func; a newer query may have replaced it.
		if s.cancel != nil && ctx.Err() == nil {
			s.cancel = nil
		}
		s.mu.Unlock()
		cancel()
	}()

	results, err := s.market.Search(ctx, query, category)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
			return nil, apperrors.ErrSearchSuperseded
		}
		return nil, err
	}

	return results, nil
}

// MarketAnalysis passes the provider's analysis text through untouched.
func (s *SearchService) MarketAnalysis(ctx context.Context, itemName, category string) (string, error) {
	return s.market.MarketAnalysis(ctx, itemName, category)
}
