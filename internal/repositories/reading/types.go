package reading

import "github.com/KirkDiggler/bactrack/internal/models"

// AddReadingInput contains parameters for storing a reading
type AddReadingInput struct {
	Reading *models.Reading
}

// GetLatestReadingInput contains parameters for retrieving the latest reading
type GetLatestReadingInput struct {
	SessionID string
}
