package exchangerate_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsdelka001/steam-investment-backend/internal/exchangerate"
)

// TestClient_Latest tests the conversion table fetch.
func TestClient_Latest(t *testing.T) {
	t.Run("parses a successful payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/latest/EUR", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"result": "success",
				"conversion_rates": {"EUR": 1, "USD": 1.08, "PLN": 4.3}
			}`))
		}))
		t.Cleanup(server.Close)

		client := exchangerate.NewClient(server.URL)
		rates, err := client.Latest(context.Background(), "EUR")

		require.NoError(t, err)
		require.Len(t, rates, 3)
		assert.True(t, rates["USD"].Equal(decimal.RequireFromString("1.08")), "USD %s", rates["USD"])
		assert.True(t, rates["EUR"].Equal(decimal.NewFromInt(1)))
	})

	t.Run("a non-success result is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"result": "error", "error-type": "invalid-key"}`))
		}))
		t.Cleanup(server.Close)

		client := exchangerate.NewClient(server.URL)
		_, err := client.Latest(context.Background(), "EUR")

		assert.Error(t, err)
	})

	t.Run("an HTTP error status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		t.Cleanup(server.Close)

		client := exchangerate.NewClient(server.URL)
		_, err := client.Latest(context.Background(), "EUR")

		assert.Error(t, err)
	})
}
