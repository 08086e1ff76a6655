package models

import (
	"time"
)

// DrinkLog records a drink consumed during a session
type DrinkLog struct {
	// ID is the unique identifier for the log entry
	ID string

	// SessionID is the session the drink was consumed in
	SessionID string

	// Username is the drinker
	Username string

	// DrinkName is the catalog name of the drink
	DrinkName string

	// StandardDrinks is the alcohol in the serving at the time it was logged
	StandardDrinks float64

	// ConsumedAt is when the drink was had
	ConsumedAt time.Time
}
