package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/itsdelka001/steam-investment-backend/internal/apperrors"
	"github.com/itsdelka001/steam-investment-backend/internal/api/request"
	"github.com/itsdelka001/steam-investment-backend/internal/model"
	"github.com/itsdelka001/steam-investment-backend/internal/repository"
	"github.com/itsdelka001/steam-investment-backend/internal/validation"
	"github.com/shopspring/decimal"
)

// InvestmentService orchestrates investment CRUD and attaches derived
// metrics. The computation itself lives in the pure engine functions
// (CalculateMetrics, Summarize, the analytics helpers); this service only
// feeds them snapshots and the caller's display currency.
type InvestmentService struct {
	investmentRepo *repository.InvestmentRepository
	commissionRepo *repository.CommissionRepository
	currency       *CurrencyService
}

// NewInvestmentService creates a new InvestmentService.
func NewInvestmentService(
	investmentRepo *repository.InvestmentRepository,
	commissionRepo *repository.CommissionRepository,
	currency *CurrencyService,
) *InvestmentService {
	return &InvestmentService{
		investmentRepo: investmentRepo,
		commissionRepo: commissionRepo,
		currency:       currency,
	}
}

// GetInvestments returns all investments with per-item metrics in the
// display currency.
func (s *InvestmentService) GetInvestments(displayCurrency string) ([]model.InvestmentResponse, error) {
	investments, err := s.investmentRepo.GetAll()
	if err != nil {
		return nil, err
	}

	rates := s.currency.Rates()
	responses := make([]model.InvestmentResponse, 0, len(investments))
	for _, inv := range investments {
		responses = append(responses, model.InvestmentResponse{
			Investment:  inv,
			DisplayName: inv.CleanName(),
			Metrics:     CalculateMetrics(inv, displayCurrency, rates),
		})
	}

	return responses, nil
}

// GetInvestment returns a single investment with metrics.
func (s *InvestmentService) GetInvestment(id, displayCurrency string) (model.InvestmentResponse, error) {
	inv, err := s.investmentRepo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.InvestmentResponse{}, apperrors.ErrInvestmentNotFound
	}
	if err != nil {
		return model.InvestmentResponse{}, err
	}

	return model.InvestmentResponse{
		Investment:  inv,
		DisplayName: inv.CleanName(),
		Metrics:     CalculateMetrics(inv, displayCurrency, s.currency.Rates()),
	}, nil
}

// CreateInvestment creates an investment from a validated request.
// MarketHashName defaults to the name; when no commissions are supplied the
// default marketplace commission is seeded.
func (s *InvestmentService) CreateInvestment(_ context.Context, req request.CreateInvestmentRequest) (model.Investment, error) {
	boughtDate, err := validation.ParseDate(req.BoughtDate)
	if err != nil {
		return model.Investment{}, fmt.Errorf("invalid boughtDate: %w", err)
	}

	marketHashName := req.MarketHashName
	if marketHashName == "" {
		marketHashName = req.Name
	}

	inv := model.Investment{
		ID:             uuid.New().String(),
		Name:           req.Name,
		MarketHashName: marketHashName,
		Count:          req.Count,
		BuyPrice:       req.BuyPrice,
		BuyCurrency:    req.BuyCurrency,
		Category:       req.Category,
		BoughtDate:     boughtDate,
		Sold:           false,
		SellPrice:      decimal.Zero,
		Image:          req.Image,
		CreatedAt:      time.Now().UTC(),
	}

	if len(req.Commissions) == 0 {
		inv.Commissions = []model.CommissionEntry{{
			ID:           uuid.New().String(),
			InvestmentID: inv.ID,
			Rate:         model.DefaultCommissionRate,
			Note:         model.DefaultCommissionNote,
		}}
	} else {
		for _, c := range req.Commissions {
			inv.Commissions = append(inv.Commissions, model.CommissionEntry{
				ID:           uuid.New().String(),
				InvestmentID: inv.ID,
				Rate:         c.Rate,
				Note:         c.Note,
			})
		}
	}

	if err := s.investmentRepo.Create(inv); err != nil {
		return model.Investment{}, err
	}

	return s.investmentRepo.GetByID(inv.ID)
}

// UpdateInvestment applies a partial update. Marking an investment sold sets
// the sell side; marking it unsold clears sellPrice and sellDate, keeping
// the invariant that non-sold items carry no sale data.
func (s *InvestmentService) UpdateInvestment(_ context.Context, id string, req request.UpdateInvestmentRequest) (model.Investment, error) {
	inv, err := s.investmentRepo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Investment{}, apperrors.ErrInvestmentNotFound
	}
	if err != nil {
		return model.Investment{}, err
	}

	if req.Name != nil {
		inv.Name = *req.Name
	}
	if req.MarketHashName != nil {
		inv.MarketHashName = *req.MarketHashName
	}
	if req.Count != nil {
		inv.Count = *req.Count
	}
	if req.BuyPrice != nil {
		inv.BuyPrice = *req.BuyPrice
	}
	if req.BuyCurrency != nil {
		inv.BuyCurrency = *req.BuyCurrency
	}
	if req.CurrentPrice != nil {
		price := *req.CurrentPrice
		inv.CurrentPrice = &price
	}
	if req.Category != nil {
		inv.Category = *req.Category
	}
	if req.BoughtDate != nil {
		boughtDate, err := validation.ParseDate(*req.BoughtDate)
		if err != nil {
			return model.Investment{}, fmt.Errorf("invalid boughtDate: %w", err)
		}
		inv.BoughtDate = boughtDate
	}
	if req.Image != nil {
		inv.Image = *req.Image
	}
	if req.SellPrice != nil {
		inv.SellPrice = *req.SellPrice
	}
	if req.SellDate != nil {
		sellDate, err := validation.ParseDate(*req.SellDate)
		if err != nil {
			return model.Investment{}, fmt.Errorf("invalid sellDate: %w", err)
		}
		inv.SellDate = &sellDate
	}
	if req.Sold != nil {
		inv.Sold = *req.Sold
		if !inv.Sold {
			inv.SellPrice = decimal.Zero
			inv.SellDate = nil
		}
	}

	if err := s.investmentRepo.Update(inv); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Investment{}, apperrors.ErrInvestmentNotFound
		}
		return model.Investment{}, err
	}

	return s.investmentRepo.GetByID(id)
}

// DeleteInvestment removes an investment and its commission entries.
func (s *InvestmentService) DeleteInvestment(_ context.Context, id string) error {
	err := s.investmentRepo.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrInvestmentNotFound
	}
	return err
}

// GetSummary aggregates the whole portfolio in the display currency.
func (s *InvestmentService) GetSummary(displayCurrency string) (model.PortfolioSummary, error) {
	investments, err := s.investmentRepo.GetAll()
	if err != nil {
		return model.PortfolioSummary{}, err
	}

	return Summarize(investments, displayCurrency, s.currency.Rates()), nil
}

// GetAnalytics derives the chart view models: cumulative realized profit and
// the category breakdowns.
func (s *InvestmentService) GetAnalytics(displayCurrency string) (model.PortfolioAnalytics, error) {
	investments, err := s.investmentRepo.GetAll()
	if err != nil {
		return model.PortfolioAnalytics{}, err
	}

	rates := s.currency.Rates()
	return model.PortfolioAnalytics{
		Currency:               displayCurrency,
		CumulativeProfitSeries: CumulativeProfitSeries(investments, displayCurrency, rates),
		DistributionByCategory: DistributionByCategory(investments, displayCurrency, rates),
		ProfitByCategory:       ProfitByCategory(investments, displayCurrency, rates),
	}, nil
}

// AddCommission appends a commission entry to an investment.
func (s *InvestmentService) AddCommission(investmentID string, req request.CreateCommissionRequest) (model.CommissionEntry, error) {
	if _, err := s.investmentRepo.GetByID(investmentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.CommissionEntry{}, apperrors.ErrInvestmentNotFound
		}
		return model.CommissionEntry{}, err
	}

	entry := model.CommissionEntry{
		ID:           uuid.New().String(),
		InvestmentID: investmentID,
		Rate:         req.Rate,
		Note:         req.Note,
	}

	if err := s.commissionRepo.Create(entry); err != nil {
		return model.CommissionEntry{}, err
	}

	return s.commissionRepo.GetByID(entry.ID)
}

// UpdateCommission applies a partial update to a commission entry.
func (s *InvestmentService) UpdateCommission(id string, req request.UpdateCommissionRequest) (model.CommissionEntry, error) {
	entry, err := s.commissionRepo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.CommissionEntry{}, apperrors.ErrCommissionNotFound
	}
	if err != nil {
		return model.CommissionEntry{}, err
	}

	if req.Rate != nil {
		entry.Rate = *req.Rate
	}
	if req.Note != nil {
		entry.Note = *req.Note
	}

	if err := s.commissionRepo.Update(entry); err != nil {
		return model.CommissionEntry{}, err
	}

	return s.commissionRepo.GetByID(id)
}

// DeleteCommission removes a commission entry.
func (s *InvestmentService) DeleteCommission(id string) error {
	err := s.commissionRepo.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrCommissionNotFound
	}
	return err
}
