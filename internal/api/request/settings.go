package request

// UpdateSettingsRequest represents a partial settings update.
type UpdateSettingsRequest struct {
	AutoRefreshEnabled     *bool   `json:"autoRefreshEnabled,omitempty"`
	RefreshIntervalMinutes *int    `json:"refreshIntervalMinutes,omitempty"`
	ProviderToken          *string `json:"providerToken,omitempty"`
}
