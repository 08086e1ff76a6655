package reading

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/bactrack/internal/repositories/reading Repository

import (
	"context"

	"github.com/KirkDiggler/bactrack/internal/models"
)

// Repository defines the interface for BAC reading persistence
type Repository interface {
	// AddReading stores a BAC reading
	AddReading(ctx context.Context, input *AddReadingInput) error

	// GetLatestReading returns the newest reading of a session, or nil when there is none
	GetLatestReading(ctx context.Context, input *GetLatestReadingInput) (*models.Reading, error)
}
