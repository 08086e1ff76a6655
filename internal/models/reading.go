package models

import (
	"errors"
	"math"
	"time"
)

// ErrInvalidBAC is returned for BAC values that are negative or not finite
var ErrInvalidBAC = errors.New("BAC must be a finite, non-negative number")

// ReadingSource records where a BAC value came from
type ReadingSource string

const (
	// ReadingSourceManual is a value typed in by the drinker
	ReadingSourceManual ReadingSource = "manual"

	// ReadingSourceSensor is a value converted from the breath sensor
	ReadingSourceSensor ReadingSource = "sensor"

	// ReadingSourceEstimate is a value derived from logged drinks
	ReadingSourceEstimate ReadingSource = "estimate"
)

// Reading is a BAC measurement taken during a session
type Reading struct {
	ID        string
	SessionID string
	Username  string
	BAC       float64
	Source    ReadingSource
	TakenAt   time.Time
}

// ValidateBAC rejects values the estimator cannot work with
func ValidateBAC(bac float64) error {
	if math.IsNaN(bac) || math.IsInf(bac, 0) || bac < 0 {
		return ErrInvalidBAC
	}
	return nil
}
