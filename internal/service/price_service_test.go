package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsdelka001/steam-investment-backend/internal/apperrors"
	"github.com/itsdelka001/steam-investment-backend/internal/market"
	"github.com/itsdelka001/steam-investment-backend/internal/repository"
	"github.com/itsdelka001/steam-investment-backend/internal/service"
	"github.com/itsdelka001/steam-investment-backend/internal/testutil"
)

// newPriceServer fakes the provider's current-price endpoint. Items listed
// in failing get a 500; everything else gets the fixed price.
func newPriceServer(t *testing.T, price string, failing map[string]bool) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("item_name")
		if failing[name] {
			http.Error(w, "provider unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"price": "` + price + `"}`))
	}))
	t.Cleanup(server.Close)
	return server
}

// TestPriceService_RefreshAll tests the bulk price sweep.
//
// WHY: The sweep walks every unsold item sequentially and must survive
// individual provider failures: one bad item may not abort the rest, and
// sold items must never be touched.
func TestPriceService_RefreshAll(t *testing.T) {
	t.Run("updates every unsold investment", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		server := newPriceServer(t, "42.50", nil)
		repo := repository.NewInvestmentRepository(db)
		svc := service.NewPriceService(market.NewClient(server.URL), repo, testutil.NewTestSettingsService(t, db))

		a := testutil.NewInvestment().WithName("Item A").Build(t, db)
		b := testutil.NewInvestment().WithName("Item B").Build(t, db)

		result, err := svc.RefreshAll(context.Background())

		require.NoError(t, err)
		assert.Equal(t, service.RefreshResult{Total: 2, Updated: 2, Failed: 0}, result)

		for _, id := range []string{a.ID, b.ID} {
			inv, err := repo.GetByID(id)
			require.NoError(t, err)
			require.NotNil(t, inv.CurrentPrice)
			assert.True(t, inv.CurrentPrice.Equal(decimal.RequireFromString("42.50")),
				"price %s", inv.CurrentPrice)
		}
	})

	t.Run("skips sold investments", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		server := newPriceServer(t, "42.50", nil)
		repo := repository.NewInvestmentRepository(db)
		svc := service.NewPriceService(market.NewClient(server.URL), repo, testutil.NewTestSettingsService(t, db))

		sold := testutil.NewInvestment().SoldFor("15", "2024-02-01").Build(t, db)

		result, err := svc.RefreshAll(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 0, result.Total)

		inv, err := repo.GetByID(sold.ID)
		require.NoError(t, err)
		assert.Nil(t, inv.CurrentPrice)
	})

	t.Run("continues past a failing item", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		server := newPriceServer(t, "10.00", map[string]bool{"Broken Item": true})
		repo := repository.NewInvestmentRepository(db)
		svc := service.NewPriceService(market.NewClient(server.URL), repo, testutil.NewTestSettingsService(t, db))

		testutil.NewInvestment().WithName("Broken Item").Build(t, db)
		ok := testutil.NewInvestment().WithName("Fine Item").Build(t, db)

		result, err := svc.RefreshAll(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, result.Total)
		assert.Equal(t, 1, result.Updated)
		assert.Equal(t, 1, result.Failed)

		inv, err := repo.GetByID(ok.ID)
		require.NoError(t, err)
		require.NotNil(t, inv.CurrentPrice, "healthy item was not updated")
	})

	t.Run("a second sweep is rejected while one runs", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		started := make(chan struct{})
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			close(started)
			<-release
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"price": "1.00"}`))
		}))
		t.Cleanup(server.Close)

		repo := repository.NewInvestmentRepository(db)
		svc := service.NewPriceService(market.NewClient(server.URL), repo, testutil.NewTestSettingsService(t, db))
		testutil.NewInvestment().Build(t, db)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.RefreshAll(context.Background())
		}()

		<-started
		_, err := svc.RefreshAll(context.Background())
		assert.ErrorIs(t, err, apperrors.ErrRefreshInProgress)

		close(release)
		wg.Wait()
	})
}

// TestPriceService_CurrentPrice tests the single-item lookup.
func TestPriceService_CurrentPrice(t *testing.T) {
	t.Run("returns the provider price", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		server := newPriceServer(t, "3.14", nil)
		repo := repository.NewInvestmentRepository(db)
		svc := service.NewPriceService(market.NewClient(server.URL), repo, testutil.NewTestSettingsService(t, db))

		price, err := svc.CurrentPrice(context.Background(), "Some Item", "CS2")

		require.NoError(t, err)
		assert.True(t, price.Equal(decimal.RequireFromString("3.14")), "got %s", price)
	})

	t.Run("propagates provider failures", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		server := newPriceServer(t, "0", map[string]bool{"Broken Item": true})
		repo := repository.NewInvestmentRepository(db)
		svc := service.NewPriceService(market.NewClient(server.URL), repo, testutil.NewTestSettingsService(t, db))

		_, err := svc.CurrentPrice(context.Background(), "Broken Item", "CS2")

		assert.Error(t, err)
	})
}
