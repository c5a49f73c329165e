package model

// Settings holds the single row of service-level settings.
//
// ProviderToken is the market-data provider API token; it is stored
// fernet-encrypted and is never returned to clients, only a set/unset flag.
type Settings struct {
	AutoRefreshEnabled     bool   `json:"autoRefreshEnabled"`
	RefreshIntervalMinutes int    `json:"refreshIntervalMinutes"`
	ProviderToken          string `json:"-"`
	ProviderTokenSet       bool   `json:"providerTokenSet"`
}
