package profile

import "github.com/KirkDiggler/bactrack/internal/models"

// CreateProfileInput contains parameters for registering a profile
type CreateProfileInput struct {
	Profile *models.Profile
}

// SaveProfileInput contains parameters for saving a profile
type SaveProfileInput struct {
	Profile *models.Profile
}

// GetProfileInput contains parameters for retrieving a profile
type GetProfileInput struct {
	Username string
}
