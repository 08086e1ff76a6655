package profile

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/bactrack/internal/repositories/profile Repository

import (
	"context"

	"github.com/KirkDiggler/bactrack/internal/models"
)

// Repository defines the interface for profile persistence
type Repository interface {
	// CreateProfile stores a new profile, failing if the username is taken
	CreateProfile(ctx context.Context, input *CreateProfileInput) error

	// SaveProfile creates or overwrites a profile
	SaveProfile(ctx context.Context, input *SaveProfileInput) error

	// GetProfile retrieves a profile by username
	GetProfile(ctx context.Context, input *GetProfileInput) (*models.Profile, error)
}
