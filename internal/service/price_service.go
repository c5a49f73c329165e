package service

import (
	"context"
	"errors"
	"log"
	"sync/atomic"

	"github.com/itsdelka001/steam-investment-backend/internal/apperrors"
	"github.com/itsdelka001/steam-investment-backend/internal/market"
	"github.com/itsdelka001/steam-investment-backend/internal/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// PriceService fetches current market prices and runs the bulk price sweep
// over all unsold investments.
type PriceService struct {
	market         *market.Client
	investmentRepo *repository.InvestmentRepository
	settings       *SettingsService

	group    singleflight.Group
	sweeping atomic.Bool
}

// NewPriceService creates a new PriceService.
func NewPriceService(marketClient *market.Client, investmentRepo *repository.InvestmentRepository, settings *SettingsService) *PriceService {
	return &PriceService{
		market:         marketClient,
		investmentRepo: investmentRepo,
		settings:       settings,
	}
}

// CurrentPrice looks up the latest market price for an item in the base
// currency. Concurrent lookups for the same item collapse into one provider
// request.
func (s *PriceService) CurrentPrice(ctx context.Context, marketHashName, category string) (decimal.Decimal, error) {
	v, err, _ := s.group.Do(category+"|"+marketHashName, func() (any, error) {
		return s.market.CurrentPrice(ctx, marketHashName, category)
	})
	if err != nil {
		return decimal.Zero, err
	}
	return v.(decimal.Decimal), nil
}

// RefreshResult reports the outcome of one bulk price sweep.
type RefreshResult struct {
	Total   int `json:"total"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

// RefreshAll updates the current price of every unsold investment, one
// provider request per item, strictly sequentially. A failure on one item is
// logged and counted but never aborts the remaining items. Only one sweep
// runs at a time; a second trigger returns ErrRefreshInProgress.
func (s *PriceService) RefreshAll(ctx context.Context) (RefreshResult, error) {
	if !s.sweeping.CompareAndSwap(false, true) {
		return RefreshResult{}, apperrors.ErrRefreshInProgress
	}
	defer s.sweeping.Store(false)

	investments, err := s.investmentRepo.GetUnsold()
	if err != nil {
		return RefreshResult{}, err
	}

	result := RefreshResult{Total: len(investments)}
	for _, inv := range investments {
		price, err := s.market.CurrentPrice(ctx, inv.MarketHashName, inv.Category)
		if err != nil {
			log.Printf("price sweep: %s (%s): %v", inv.MarketHashName, inv.Category, err)
			result.Failed++
			continue
		}

		if err := s.investmentRepo.UpdateCurrentPrice(inv.ID, price); err != nil {
			log.Printf("price sweep: failed to store price for %s: %v", inv.ID, err)
			result.Failed++
			continue
		}
		result.Updated++
	}

	log.Printf("price sweep finished: %d updated, %d failed of %d", result.Updated, result.Failed, result.Total)
	return result, nil
}

// RunScheduled is the cron job body. The user-toggled auto-refresh flag is
// consulted on every tick, so flipping it takes effect without rescheduling.
func (s *PriceService) RunScheduled() {
	settings, err := s.settings.GetSettings()
	if err != nil {
		log.Printf("price sweep: failed to load settings: %v", err)
		return
	}
	if !settings.AutoRefreshEnabled {
		return
	}

	if _, err := s.RefreshAll(context.Background()); err != nil && !errors.Is(err, apperrors.ErrRefreshInProgress) {
		log.Printf("price sweep: %v", err)
	}
}
