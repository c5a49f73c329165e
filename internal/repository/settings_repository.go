package repository

import (
	"database/sql"
	"fmt"

	"github.com/itsdelka001/steam-investment-backend/internal/model"
)

// SettingsRepository provides data access for the single settings row.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SettingsRepository with the provided database connection.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get retrieves the settings row. The row is seeded by the initial
// migration, so sql.ErrNoRows indicates a broken database.
func (r *SettingsRepository) Get() (model.Settings, error) {
	var s model.Settings

	err := r.db.QueryRow(`
		SELECT auto_refresh_enabled, refresh_interval_minutes, provider_token
		FROM settings
		WHERE id = 1
	`).Scan(&s.AutoRefreshEnabled, &s.RefreshIntervalMinutes, &s.ProviderToken)
	if err == sql.ErrNoRows {
		return model.Settings{}, err
	}
	if err != nil {
		return model.Settings{}, fmt.Errorf("failed to scan settings table results: %w", err)
	}

	s.ProviderTokenSet = s.ProviderToken != ""
	return s, nil
}

// Update rewrites the settings row.
func (r *SettingsRepository) Update(s model.Settings) error {
	_, err := r.db.Exec(`
		UPDATE settings
		SET auto_refresh_enabled = ?, refresh_interval_minutes = ?, provider_token = ?
		WHERE id = 1
	`, s.AutoRefreshEnabled, s.RefreshIntervalMinutes, s.ProviderToken)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}
