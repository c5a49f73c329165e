package service

import (
	"fmt"
	"log"

	"github.com/fernet/fernet-go"
	"github.com/itsdelka001/steam-investment-backend/internal/api/request"
	"github.com/itsdelka001/steam-investment-backend/internal/model"
	"github.com/itsdelka001/steam-investment-backend/internal/repository"
)

// SettingsService manages the single settings row. The market-data provider
// token is encrypted with fernet before it touches the database; clients
// only ever see a set/unset flag.
type SettingsService struct {
	repo *repository.SettingsRepository
	key  *fernet.Key

	// onTokenChange is invoked with the plaintext token after every token
	// update, so the market client picks up the new credential immediately.
	onTokenChange func(token string)
}

// NewSettingsService creates a SettingsService. An empty fernetKey disables
// encryption and stores the token as-is (logged once, intended for local
// development only).
func NewSettingsService(repo *repository.SettingsRepository, fernetKey string) (*SettingsService, error) {
	s := &SettingsService{repo: repo}

	if fernetKey == "" {
		log.Printf("WARNING: FERNET_KEY not set, provider token will be stored unencrypted")
		return s, nil
	}

	keys, err := fernet.DecodeKeys(fernetKey)
	if err != nil {
		return nil, fmt.Errorf("invalid FERNET_KEY: %w", err)
	}
	s.key = keys[0]
	return s, nil
}

// OnTokenChange registers the callback invoked after a provider token update.
func (s *SettingsService) OnTokenChange(fn func(token string)) {
	s.onTokenChange = fn
}

// GetSettings returns the settings with the stored token redacted.
func (s *SettingsService) GetSettings() (model.Settings, error) {
	settings, err := s.repo.Get()
	if err != nil {
		return model.Settings{}, err
	}

	settings.ProviderToken = ""
	return settings, nil
}

// ProviderToken returns the decrypted provider token, or empty if none is set.
func (s *SettingsService) ProviderToken() (string, error) {
	settings, err := s.repo.Get()
	if err != nil {
		return "", err
	}
	if settings.ProviderToken == "" {
		return "", nil
	}

	return s.decrypt(settings.ProviderToken)
}

// UpdateSettings applies a partial settings update and returns the redacted
// result.
func (s *SettingsService) UpdateSettings(req request.UpdateSettingsRequest) (model.Settings, error) {
	settings, err := s.repo.Get()
	if err != nil {
		return model.Settings{}, err
	}

	if req.AutoRefreshEnabled != nil {
		settings.AutoRefreshEnabled = *req.AutoRefreshEnabled
	}
	if req.RefreshIntervalMinutes != nil {
		settings.RefreshIntervalMinutes = *req.RefreshIntervalMinutes
	}

	var newToken *string
	if req.ProviderToken != nil {
		encrypted, err := s.encrypt(*req.ProviderToken)
		if err != nil {
			return model.Settings{}, err
		}
		settings.ProviderToken = encrypted
		newToken = req.ProviderToken
	}

	if err := s.repo.Update(settings); err != nil {
		return model.Settings{}, err
	}

	if newToken != nil && s.onTokenChange != nil {
		s.onTokenChange(*newToken)
	}

	return s.GetSettings()
}

func (s *SettingsService) encrypt(token string) (string, error) {
	if token == "" || s.key == nil {
		return token, nil
	}

	encrypted, err := fernet.EncryptAndSign([]byte(token), s.key)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt provider token: %w", err)
	}
	return string(encrypted), nil
}

func (s *SettingsService) decrypt(stored string) (string, error) {
	if s.key == nil {
		return stored, nil
	}

	// TTL 0 disables expiry; provider tokens are long-lived.
	plaintext := fernet.VerifyAndDecrypt([]byte(stored), 0, []*fernet.Key{s.key})
	if plaintext == nil {
		return "", fmt.Errorf("failed to decrypt provider token")
	}
	return string(plaintext), nil
}
