package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrInvestmentNotFound indicates that an investment with the given ID does not exist.
	ErrInvestmentNotFound = errors.New("investment not found")

	// ErrCommissionNotFound indicates that a commission entry with the given ID does not exist.
	ErrCommissionNotFound = errors.New("commission entry not found")

	// ErrSettingsNotFound indicates the settings row has not been initialized.
	ErrSettingsNotFound = errors.New("settings not found")

	// ErrPriceNotFound indicates the market provider returned no price for an item.
	ErrPriceNotFound = errors.New("current price not found")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrInvalidCurrency indicates a currency code outside the supported set.
	ErrInvalidCurrency = errors.New("unsupported currency")

	// ErrInvalidCategory indicates a category outside the supported set.
	ErrInvalidCategory = errors.New("unsupported category")

	// ErrNotSold indicates a sell-side operation on an investment that has not been sold.
	ErrNotSold = errors.New("investment is not sold")

	// ErrSearchSuperseded indicates an autocomplete request was cancelled
	// because a newer query replaced it. Not a user-visible error.
	ErrSearchSuperseded = errors.New("search superseded by a newer query")

	// ErrRefreshInProgress indicates a bulk price sweep is already running.
	ErrRefreshInProgress = errors.New("price refresh already in progress")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These errors indicate that an operation failed, but not
// due to missing entities or validation issues.
var (
	ErrFailedToRetrieveInvestments = errors.New("failed to retrieve investments")
	ErrFailedToRetrieveInvestment  = errors.New("failed to retrieve investment")
	ErrFailedToCreateInvestment    = errors.New("failed to create investment")
	ErrFailedToUpdateInvestment    = errors.New("failed to update investment")
	ErrFailedToDeleteInvestment    = errors.New("failed to delete investment")

	ErrFailedToRetrieveSummary   = errors.New("failed to compute portfolio summary")
	ErrFailedToRetrieveAnalytics = errors.New("failed to compute portfolio analytics")

	ErrFailedToRetrievePrice         = errors.New("failed to retrieve current price")
	ErrFailedToRefreshPrices         = errors.New("failed to refresh prices")
	ErrFailedToSearchItems           = errors.New("failed to search items")
	ErrFailedToRetrieveAnalysis      = errors.New("failed to retrieve market analysis")
	ErrFailedToRetrieveOpportunities = errors.New("failed to retrieve arbitrage opportunities")
	ErrFailedToRetrieveRates         = errors.New("failed to retrieve exchange rates")

	ErrFailedToRetrieveSettings = errors.New("failed to retrieve settings")
	ErrFailedToUpdateSettings   = errors.New("failed to update settings")

	ErrFailedToGetVersionInfo = errors.New("failed to get version information")
)
