package validation

import (
	"github.com/itsdelka001/steam-investment-backend/internal/api/request"
)

// ValidateCreateCommission validates a commission creation request.
// The rate must be a positive percentage.
func ValidateCreateCommission(req request.CreateCommissionRequest) error {
	errors := make(map[string]string)

	if !req.Rate.IsPositive() {
		errors["rate"] = "rate must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateCommission validates a partial commission update.
func ValidateUpdateCommission(req request.UpdateCommissionRequest) error {
	errors := make(map[string]string)

	if req.Rate != nil && !req.Rate.IsPositive() {
		errors["rate"] = "rate must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
