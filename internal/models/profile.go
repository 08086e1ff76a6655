package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// Sex is the physiological category used to pick BAC coefficients
type Sex string

const (
	// SexMale selects the male absorption and metabolism coefficients
	SexMale Sex = "male"

	// SexFemale selects the female absorption and metabolism coefficients
	SexFemale Sex = "female"
)

var (
	// ErrUnsupportedSex is returned for any sex value outside the modeled categories
	ErrUnsupportedSex = errors.New("unsupported sex category")

	// ErrInvalidWeight is returned when a weight is not a positive finite number
	ErrInvalidWeight = errors.New("weight must be a positive number")
)

// ParseSex converts free text into a Sex, ignoring case and surrounding whitespace
func ParseSex(value string) (Sex, error) {
	switch Sex(strings.ToLower(strings.TrimSpace(value))) {
	case SexMale:
		return SexMale, nil
	case SexFemale:
		return SexFemale, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedSex, value)
	}
}

// Valid reports whether the sex is one of the modeled categories
func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// Profile holds the physiological attributes of a drinker
type Profile struct {
	// Username identifies the drinker and keys their sessions
	Username string

	// PasswordHash is the bcrypt hash of the drinker's password
	PasswordHash string `json:",omitempty"`

	// DateOfBirth is optional and informational only
	DateOfBirth *time.Time `json:",omitempty"`

	// Sex selects the coefficient family for BAC math
	Sex Sex

	// WeightKg is the body weight in kilograms
	WeightKg float64

	// CreatedAt is when the profile was registered
	CreatedAt time.Time
}

// Validate checks the fields the BAC estimator depends on
func (p *Profile) Validate() error {
	if p == nil {
		return errors.New("profile cannot be nil")
	}
	if !p.Sex.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedSex, string(p.Sex))
	}
	if math.IsNaN(p.WeightKg) || math.IsInf(p.WeightKg, 0) || p.WeightKg <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, p.WeightKg)
	}
	return nil
}
