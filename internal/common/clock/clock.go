package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/bactrack/internal/common/clock Clock

// Clock supplies the current time so session windows and drive times can be
// tested deterministically
type Clock interface {
	Now() time.Time
}

// DefaultClock implements Clock using the system clock in UTC
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now().UTC()
}
