// Package bac estimates blood alcohol concentration from body weight and sex.
//
// All functions are pure and safe for concurrent use. Values are BAC
// percentage points (0.05 means 0.05%).
package bac

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/KirkDiggler/bactrack/internal/models"
)

// LegalDriveLimit is the BAC at or below which driving is allowed
const LegalDriveLimit = 0.05

const secondsPerHour = 3600.0

// ErrNonFinite is returned when a computation produces NaN or an infinity
var ErrNonFinite = errors.New("BAC computation produced a non-finite result")

// coefficients for a*exp(b*weightKg)
type curve struct {
	a, b float64
}

func (c curve) at(weightKg float64) float64 {
	return c.a * math.Exp(c.b*weightKg)
}

var (
	increaseCurves = map[models.Sex]curve{
		models.SexMale:   {a: 0.0662, b: -0.014},
		models.SexFemale: {a: 0.1004, b: -0.016},
	}

	metabolismHourCurves = map[models.Sex]curve{
		models.SexMale:   {a: 3.9584, b: -0.013},
		models.SexFemale: {a: 5.1596, b: -0.014},
	}
)

// IncreasePerStandardDrink returns the BAC added by one standard drink
func IncreasePerStandardDrink(sex models.Sex, weightKg float64) (float64, error) {
	return evaluate(increaseCurves, sex, weightKg)
}

// SecondsToMetabolizeStandardDrink returns how long the body takes to clear one
// standard drink.
func SecondsToMetabolizeStandardDrink(sex models.Sex, weightKg float64) (float64, error) {
	hours, err := evaluate(metabolismHourCurves, sex, weightKg)
	if err != nil {
		return 0, err
	}
	return finite(hours * secondsPerHour)
}

// ClearanceRatePerSecond returns the BAC removed per second under the linear
// metabolism model.
func ClearanceRatePerSecond(sex models.Sex, weightKg float64) (float64, error) {
	increase, err := IncreasePerStandardDrink(sex, weightKg)
	if err != nil {
		return 0, err
	}
	seconds, err := SecondsToMetabolizeStandardDrink(sex, weightKg)
	if err != nil {
		return 0, err
	}
	return finite(increase / seconds)
}

// AfterDrink projects the BAC after consuming drink on top of currentBAC.
// The result is not clamped.
func AfterDrink(profile *models.Profile, drink models.Drink, currentBAC float64) (float64, error) {
	if err := checkInputs(profile, currentBAC); err != nil {
		return 0, err
	}
	increase, err := IncreasePerStandardDrink(profile.Sex, profile.WeightKg)
	if err != nil {
		return 0, err
	}
	return finite(currentBAC + increase*drink.StandardDrinks())
}

// SecondsUntilCanDrive returns how long until BAC falls to LegalDriveLimit,
// assuming a constant clearance rate. It is zero at or below the limit.
func SecondsUntilCanDrive(profile *models.Profile, currentBAC float64) (float64, error) {
	if err := checkInputs(profile, currentBAC); err != nil {
		return 0, err
	}
	if currentBAC <= LegalDriveLimit {
		return 0, nil
	}
	rate, err := ClearanceRatePerSecond(profile.Sex, profile.WeightKg)
	if err != nil {
		return 0, err
	}
	return finite((currentBAC - LegalDriveLimit) / rate)
}

// MaxWait is the longest wait TimeUntilCanDrive reports
const MaxWait = time.Duration(math.MaxInt64)

// TimeUntilCanDrive is SecondsUntilCanDrive as a duration, capped at MaxWait
func TimeUntilCanDrive(profile *models.Profile, currentBAC float64) (time.Duration, error) {
	seconds, err := SecondsUntilCanDrive(profile, currentBAC)
	if err != nil {
		return 0, err
	}
	nanos := seconds * float64(time.Second)
	if nanos >= math.MaxInt64 {
		return MaxWait, nil
	}
	return time.Duration(nanos), nil
}

// Estimate derives a BAC from standard drinks consumed over elapsed time.
// Alcohol already cleared is subtracted at the linear rate; the result never
// drops below zero.
func Estimate(profile *models.Profile, standardDrinks float64, elapsed time.Duration) (float64, error) {
	if err := profile.Validate(); err != nil {
		return 0, err
	}
	if math.IsNaN(standardDrinks) || math.IsInf(standardDrinks, 0) || standardDrinks < 0 {
		return 0, fmt.Errorf("invalid standard drink count: %v", standardDrinks)
	}
	if elapsed < 0 {
		elapsed = 0
	}

	increase, err := IncreasePerStandardDrink(profile.Sex, profile.WeightKg)
	if err != nil {
		return 0, err
	}
	rate, err := ClearanceRatePerSecond(profile.Sex, profile.WeightKg)
	if err != nil {
		return 0, err
	}

	estimate, err := finite(standardDrinks*increase - rate*elapsed.Seconds())
	if err != nil {
		return 0, err
	}
	return math.Max(estimate, 0), nil
}

func evaluate(curves map[models.Sex]curve, sex models.Sex, weightKg float64) (float64, error) {
	c, ok := curves[sex]
	if !ok {
		return 0, fmt.Errorf("%w: %q", models.ErrUnsupportedSex, string(sex))
	}
	if math.IsNaN(weightKg) || math.IsInf(weightKg, 0) || weightKg <= 0 {
		return 0, fmt.Errorf("%w: %v", models.ErrInvalidWeight, weightKg)
	}
	return finite(c.at(weightKg))
}

func checkInputs(profile *models.Profile, currentBAC float64) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	return models.ValidateBAC(currentBAC)
}

func finite(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNonFinite
	}
	return v, nil
}
