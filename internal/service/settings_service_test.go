package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsdelka001/steam-investment-backend/internal/api/request"
	"github.com/itsdelka001/steam-investment-backend/internal/repository"
	"github.com/itsdelka001/steam-investment-backend/internal/service"
	"github.com/itsdelka001/steam-investment-backend/internal/testutil"
)

// testFernetKey is a fixed 32-byte urlsafe-base64 key for tests only.
const testFernetKey = "cw_0x689RpI-jtRR7oE8h_eQsKImvJapLeSbPOwMfW8="

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// TestSettingsService_UpdateSettings tests partial updates and redaction.
//
// WHY: The provider token must never leave the server once stored. Clients
// only ever see a set/unset flag, and the stored value is fernet-encrypted
// when a key is configured.
func TestSettingsService_UpdateSettings(t *testing.T) {
	t.Run("partial update leaves other fields untouched", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingsService(t, db)

		_, err := svc.UpdateSettings(request.UpdateSettingsRequest{
			RefreshIntervalMinutes: intPtr(30),
		})
		require.NoError(t, err)

		settings, err := svc.UpdateSettings(request.UpdateSettingsRequest{
			AutoRefreshEnabled: boolPtr(true),
		})
		require.NoError(t, err)

		assert.True(t, settings.AutoRefreshEnabled)
		assert.Equal(t, 30, settings.RefreshIntervalMinutes)
	})

	t.Run("token is redacted in responses", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingsService(t, db)

		settings, err := svc.UpdateSettings(request.UpdateSettingsRequest{
			ProviderToken: strPtr("secret-token"),
		})
		require.NoError(t, err)

		assert.Empty(t, settings.ProviderToken)
		assert.True(t, settings.ProviderTokenSet)
	})

	t.Run("token round-trips through fernet encryption", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSettingsRepository(db)
		svc, err := service.NewSettingsService(repo, testFernetKey)
		require.NoError(t, err)

		_, err = svc.UpdateSettings(request.UpdateSettingsRequest{
			ProviderToken: strPtr("secret-token"),
		})
		require.NoError(t, err)

		// The database never holds the plaintext.
		stored, err := repo.Get()
		require.NoError(t, err)
		assert.NotEqual(t, "secret-token", stored.ProviderToken)
		assert.NotEmpty(t, stored.ProviderToken)

		token, err := svc.ProviderToken()
		require.NoError(t, err)
		assert.Equal(t, "secret-token", token)
	})

	t.Run("token change fires the registered callback", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingsService(t, db)

		var received string
		svc.OnTokenChange(func(token string) { received = token })

		_, err := svc.UpdateSettings(request.UpdateSettingsRequest{
			ProviderToken: strPtr("fresh-token"),
		})
		require.NoError(t, err)

		assert.Equal(t, "fresh-token", received)
	})

	t.Run("updates without a token do not fire the callback", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingsService(t, db)

		fired := false
		svc.OnTokenChange(func(string) { fired = true })

		_, err := svc.UpdateSettings(request.UpdateSettingsRequest{
			AutoRefreshEnabled: boolPtr(true),
		})
		require.NoError(t, err)

		assert.False(t, fired)
	})

	t.Run("rejects a malformed fernet key", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSettingsRepository(db)

		_, err := service.NewSettingsService(repo, "not-a-key")

		assert.Error(t, err)
	})
}

// TestSettingsService_GetSettings tests the default row.
func TestSettingsService_GetSettings(t *testing.T) {
	t.Run("returns the migration-seeded defaults", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingsService(t, db)

		settings, err := svc.GetSettings()

		require.NoError(t, err)
		assert.False(t, settings.AutoRefreshEnabled)
		assert.Equal(t, 60, settings.RefreshIntervalMinutes)
		assert.False(t, settings.ProviderTokenSet)
	})
}
