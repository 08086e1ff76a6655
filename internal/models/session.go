package models

import (
	"errors"
	"math"
	"time"
)

// ErrMissingMaxBAC is returned when a session is built without a usable BAC ceiling
var ErrMissingMaxBAC = errors.New("session requires a positive max BAC")

// Session represents one drinking outing
type Session struct {
	// ID is the store-assigned identifier for this session
	ID string

	// Username is the owner of the session
	Username string

	// MaxBAC is the ceiling the drinker wants to stay under
	MaxBAC float64

	// StartTime is when the session began
	StartTime time.Time

	// DriveTime is when the drinker wants to be able to drive, if at all
	DriveTime *time.Time `json:",omitempty"`
}

// Validate checks that the session carries a usable max BAC
func (s *Session) Validate() error {
	if s == nil {
		return errors.New("session cannot be nil")
	}
	if math.IsNaN(s.MaxBAC) || math.IsInf(s.MaxBAC, 0) || s.MaxBAC <= 0 {
		return ErrMissingMaxBAC
	}
	return nil
}

// HasDriveTime reports whether a drive target was set
func (s *Session) HasDriveTime() bool {
	return s != nil && s.DriveTime != nil
}

// Elapsed returns how long the session has been running at now
func (s *Session) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.StartTime)
}

// TimeUntilDrive returns the time left until the drive target.
// The duration is negative once the target has passed.
func (s *Session) TimeUntilDrive(now time.Time) (time.Duration, bool) {
	if !s.HasDriveTime() {
		return 0, false
	}
	return s.DriveTime.Sub(now), true
}

// LegacyHoursUntilDrive returns the time left until the drive target in hours.
// Earlier deployments compared this value against seconds; it only backs
// the legacy drive filter.
func (s *Session) LegacyHoursUntilDrive(now time.Time) (float64, bool) {
	d, ok := s.TimeUntilDrive(now)
	if !ok {
		return 0, false
	}
	return d.Hours(), true
}
