package tracker

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/bactrack/internal/services/tracker Service

import "context"

// Service defines the interface for drinking-session operations
type Service interface {
	// Register creates a drinker profile
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login checks a drinker's password
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// UpdateProfile changes a drinker's sex or weight
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*UpdateProfileOutput, error)

	// StartSession begins a drinking session with a BAC ceiling and optional drive time
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// GetCurrentSession returns the drinker's session if it started within the current window
	GetCurrentSession(ctx context.Context, input *GetCurrentSessionInput) (*GetCurrentSessionOutput, error)

	// RecordReading stores a BAC reading against the current session
	RecordReading(ctx context.Context, input *RecordReadingInput) (*RecordReadingOutput, error)

	// LogDrink records a catalog drink consumed in the current session
	LogDrink(ctx context.Context, input *LogDrinkInput) (*LogDrinkOutput, error)

	// GetRecommendations suggests drinks that keep the drinker within their limits
	GetRecommendations(ctx context.Context, input *GetRecommendationsInput) (*GetRecommendationsOutput, error)

	// GetDriveStatus reports when the drinker will be under the legal driving limit
	GetDriveStatus(ctx context.Context, input *GetDriveStatusInput) (*GetDriveStatusOutput, error)

	// ImportCatalog adds or replaces catalog drinks
	ImportCatalog(ctx context.Context, input *ImportCatalogInput) (*ImportCatalogOutput, error)

	// ListDrinks returns the catalog
	ListDrinks(ctx context.Context, input *ListDrinksInput) (*ListDrinksOutput, error)
}
