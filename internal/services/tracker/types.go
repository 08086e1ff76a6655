package tracker

import (
	"time"

	"github.com/KirkDiggler/bactrack/internal/common/clock"
	"github.com/KirkDiggler/bactrack/internal/common/uuid"
	"github.com/KirkDiggler/bactrack/internal/models"
	"github.com/KirkDiggler/bactrack/internal/recommend"
	catalogRepo "github.com/KirkDiggler/bactrack/internal/repositories/catalog"
	drinkLogRepo "github.com/KirkDiggler/bactrack/internal/repositories/drink_log"
	profileRepo "github.com/KirkDiggler/bactrack/internal/repositories/profile"
	readingRepo "github.com/KirkDiggler/bactrack/internal/repositories/reading"
	sessionRepo "github.com/KirkDiggler/bactrack/internal/repositories/session"
)

// Config holds configuration for the tracker service
type Config struct {
	// bcrypt cost for password hashes, defaults to bcrypt.DefaultCost
	PasswordCost int

	// Repository dependencies
	ProfileRepo  profileRepo.Repository
	SessionRepo  sessionRepo.Repository
	CatalogRepo  catalogRepo.Repository
	ReadingRepo  readingRepo.Repository
	DrinkLogRepo drinkLogRepo.Repository

	// Service dependencies
	Engine        *recommend.Engine
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// RegisterInput contains parameters for registering a drinker
type RegisterInput struct {
	Username string

	// Password is optional; profiles without one cannot log in over HTTP
	Password string

	// Sex is free text parsed with models.ParseSex
	Sex string

	WeightKg    float64
	DateOfBirth *time.Time
}

// RegisterOutput contains the registered profile
type RegisterOutput struct {
	Profile *models.Profile
}

// LoginInput contains a drinker's credentials
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput contains the authenticated profile
type LoginOutput struct {
	Profile *models.Profile
}

// UpdateProfileInput contains parameters for changing a profile.
// Empty Sex and zero WeightKg keep the stored values.
type UpdateProfileInput struct {
	Username string
	Sex      string
	WeightKg float64
}

// UpdateProfileOutput contains the updated profile
type UpdateProfileOutput struct {
	Profile *models.Profile
}

// StartSessionInput contains parameters for starting a session
type StartSessionInput struct {
	Username string

	// MaxBAC is the ceiling the drinker wants to stay under
	MaxBAC float64

	// DriveTime is when the drinker wants to be able to drive, if at all
	DriveTime *time.Time
}

// StartSessionOutput contains the started session
type StartSessionOutput struct {
	Session *models.Session
}

// GetCurrentSessionInput contains parameters for looking up the current session
type GetCurrentSessionInput struct {
	Username string
}

// GetCurrentSessionOutput contains the current session
type GetCurrentSessionOutput struct {
	Session *models.Session
}

// RecordReadingInput contains parameters for recording a reading
type RecordReadingInput struct {
	Username string
	BAC      float64

	// Source defaults to models.ReadingSourceManual
	Source models.ReadingSource
}

// RecordReadingOutput contains the stored reading
type RecordReadingOutput struct {
	Reading *models.Reading
}

// LogDrinkInput contains parameters for logging a drink
type LogDrinkInput struct {
	Username  string
	DrinkName string
}

// LogDrinkOutput contains the logged drink and the estimate it leads to
type LogDrinkOutput struct {
	Entry *models.DrinkLog

	// EstimatedBAC is the BAC estimated from every drink logged so far
	EstimatedBAC float64
}

// GetRecommendationsInput contains parameters for a recommendation
type GetRecommendationsInput struct {
	Username string

	// BAC overrides stored readings and estimates when set
	BAC *float64
}

// GetRecommendationsOutput contains suggested drinks
type GetRecommendationsOutput struct {
	Session *models.Session

	// CurrentBAC is the BAC the recommendation was computed from
	CurrentBAC float64
	BACSource  models.ReadingSource

	Drinks    []models.Drink
	Path      recommend.Path
	Qualified int
}

// GetDriveStatusInput contains parameters for a drive status check
type GetDriveStatusInput struct {
	Username string

	// BAC overrides stored readings and estimates when set
	BAC *float64
}

// GetDriveStatusOutput describes when the drinker may drive
type GetDriveStatusOutput struct {
	CurrentBAC float64
	BACSource  models.ReadingSource

	// TimeUntilCanDrive is zero when already at or below the legal limit
	TimeUntilCanDrive time.Duration
	CanDriveAt        time.Time

	// DriveTime is the session's drive target, if any
	DriveTime *time.Time

	// OnTrack reports whether CanDriveAt is no later than DriveTime
	OnTrack bool
}

// ImportCatalogInput contains drinks to add to the catalog
type ImportCatalogInput struct {
	Drinks []models.Drink
}

// ImportCatalogOutput contains the result of an import
type ImportCatalogOutput struct {
	Imported int
}

// ListDrinksInput contains parameters for listing the catalog
type ListDrinksInput struct {
}

// ListDrinksOutput contains the catalog in insertion order
type ListDrinksOutput struct {
	Drinks []models.Drink
}
