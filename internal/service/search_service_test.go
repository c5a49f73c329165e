package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsdelka001/steam-investment-backend/internal/apperrors"
	"github.com/itsdelka001/steam-investment-backend/internal/market"
	"github.com/itsdelka001/steam-investment-backend/internal/service"
)

// TestSearchService_Search tests the autocomplete path.
func TestSearchService_Search(t *testing.T) {
	t.Run("returns provider results", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "ak-47", r.URL.Query().Get("query"))
			assert.Equal(t, "CS2", r.URL.Query().Get("category"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"name": "AK-47 | Redline", "marketHashName": "AK-47 | Redline (Field-Tested)"}]`))
		}))
		t.Cleanup(server.Close)

		svc := service.NewSearchService(market.NewClient(server.URL))

		results, err := svc.Search(context.Background(), "ak-47", "CS2")

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "AK-47 | Redline", results[0].Name)
	})

	t.Run("a newer query supersedes the one in flight", func(t *testing.T) {
		firstArrived := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("query") == "slow" {
				close(firstArrived)
				// Hold the first request until its client context is
				// cancelled by the superseding query.
				<-r.Context().Done()
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[]`))
		}))
		t.Cleanup(server.Close)

		svc := service.NewSearchService(market.NewClient(server.URL))

		var wg sync.WaitGroup
		wg.Add(1)
		var firstErr error
		go func() {
			defer wg.Done()
			_, firstErr = svc.Search(context.Background(), "slow", "CS2")
		}()

		<-firstArrived
		results, err := svc.Search(context.Background(), "fast", "CS2")
		require.NoError(t, err)
		assert.Empty(t, results)

		wg.Wait()
		assert.ErrorIs(t, firstErr, apperrors.ErrSearchSuperseded,
			"superseded query should be discarded quietly, got %v", firstErr)
	})
}

// TestSearchService_MarketAnalysis tests the analysis passthrough.
//
// WHY: The analysis text is opaque to this service; nothing may be parsed or
// rewritten on the way through.
func TestSearchService_MarketAnalysis(t *testing.T) {
	t.Run("passes the text through untouched", func(t *testing.T) {
		const analysis = "Prices trended up 4% this week.\n\n- supply is thin"

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			w.Header().Set("Content-Type", "application/json")
			require.NoError(t, writeAnalysisJSON(w, analysis))
		}))
		t.Cleanup(server.Close)

		svc := service.NewSearchService(market.NewClient(server.URL))

		got, err := svc.MarketAnalysis(context.Background(), "AK-47 | Redline", "CS2")

		require.NoError(t, err)
		assert.Equal(t, analysis, got)
	})
}

func writeAnalysisJSON(w http.ResponseWriter, analysis string) error {
	resp := struct {
		Analysis string `json:"analysis"`
	}{Analysis: analysis}
	return json.NewEncoder(w).Encode(resp)
}
