package validation

import (
	"github.com/itsdelka001/steam-investment-backend/internal/api/request"
)

// ValidateUpdateSettings validates a settings update request.
func ValidateUpdateSettings(req request.UpdateSettingsRequest) error {
	errors := make(map[string]string)

	if req.RefreshIntervalMinutes != nil && *req.RefreshIntervalMinutes < 1 {
		errors["refreshIntervalMinutes"] = "refreshIntervalMinutes must be at least 1"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
