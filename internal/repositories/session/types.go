package session

import (
	"time"

	"github.com/KirkDiggler/bactrack/internal/models"
)

// CreateSessionInput contains parameters for creating a new session
type CreateSessionInput struct {
	// Username is the drinker starting the session
	Username string

	// MaxBAC is the ceiling the drinker wants to stay under
	MaxBAC float64

	// StartTime is when the session starts
	StartTime time.Time

	// DriveTime is the optional time the drinker wants to drive
	DriveTime *time.Time
}

// CreateSessionOutput contains the result of creating a new session
type CreateSessionOutput struct {
	// Session is the newly created session
	Session *models.Session
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionsForProfileInput contains parameters for retrieving a drinker's sessions
type GetSessionsForProfileInput struct {
	Username string
}

// GetSessionsForProfileOutput contains a drinker's sessions ordered by start time
type GetSessionsForProfileOutput struct {
	Sessions []*models.Session
}
