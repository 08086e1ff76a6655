package tracker

// TrackerError is a custom error type for tracker-related errors
type TrackerError string

// Error implements the error interface
func (e TrackerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrMissingUsername    TrackerError = "username is required"
	ErrProfileNotFound    TrackerError = "profile not found"
	ErrUsernameTaken      TrackerError = "username is already registered"
	ErrInvalidCredentials TrackerError = "invalid username or password"
	ErrNoActiveSession    TrackerError = "no active drinking session"
	ErrUnknownDrink       TrackerError = "drink is not in the catalog"
	ErrNilConfig          TrackerError = "config cannot be nil"
	ErrNilProfileRepo     TrackerError = "profile repository cannot be nil"
	ErrNilSessionRepo     TrackerError = "session repository cannot be nil"
	ErrNilCatalogRepo     TrackerError = "catalog repository cannot be nil"
	ErrNilReadingRepo     TrackerError = "reading repository cannot be nil"
	ErrNilDrinkLogRepo    TrackerError = "drink log repository cannot be nil"
	ErrNilEngine          TrackerError = "recommendation engine cannot be nil"
	ErrNilClock           TrackerError = "clock cannot be nil"
	ErrNilUUIDGenerator   TrackerError = "UUID generator cannot be nil"
)
