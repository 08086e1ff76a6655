package drink_log

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/bactrack/internal/repositories/drink_log Repository

import (
	"context"
)

// Repository defines the interface for persisting drinks consumed in a session
type Repository interface {
	// AddDrinkLog records a consumed drink
	AddDrinkLog(ctx context.Context, input *AddDrinkLogInput) error

	// GetDrinkLogsForSession retrieves the drinks consumed in a session, oldest first
	GetDrinkLogsForSession(ctx context.Context, input *GetDrinkLogsForSessionInput) (*GetDrinkLogsForSessionOutput, error)
}
