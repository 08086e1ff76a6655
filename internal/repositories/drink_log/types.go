package drink_log

import "github.com/KirkDiggler/bactrack/internal/models"

// AddDrinkLogInput contains parameters for recording a consumed drink
type AddDrinkLogInput struct {
	Entry *models.DrinkLog
}

// GetDrinkLogsForSessionInput contains parameters for retrieving a session's drinks
type GetDrinkLogsForSessionInput struct {
	SessionID string
}

// GetDrinkLogsForSessionOutput contains the drinks consumed in a session
type GetDrinkLogsForSessionOutput struct {
	Entries []*models.DrinkLog
}

// TotalStandardDrinks sums the standard drinks of every entry
func (o *GetDrinkLogsForSessionOutput) TotalStandardDrinks() float64 {
	var total float64
	for _, entry := range o.Entries {
		total += entry.StandardDrinks
	}
	return total
}
