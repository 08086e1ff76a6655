package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/bactrack/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/bactrack/internal/models"
)

// Repository defines the interface for drinking session persistence
type Repository interface {
	// CreateSession stores a new session with a generated ID
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// GetSessionsForProfile retrieves every session a drinker has started, oldest first
	GetSessionsForProfile(ctx context.Context, input *GetSessionsForProfileInput) (*GetSessionsForProfileOutput, error)
}
