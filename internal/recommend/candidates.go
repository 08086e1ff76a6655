// Package recommend filters a drink catalog down to drinks that keep a
// drinker inside their session limits.
package recommend

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/bactrack/internal/bac"
	"github.com/KirkDiggler/bactrack/internal/models"
)

// ErrNoSession is returned when recommendations are requested without a session
var ErrNoSession = errors.New("a current session is required for recommendations")

// DrivePolicy decides how the drive-time filter compares sobering time with
// the time left before the drinker wants to drive.
type DrivePolicy string

const (
	// DrivePolicySober keeps drinks after which the drinker is back under the
	// legal limit by the drive time.
	DrivePolicySober DrivePolicy = "sober"

	// DrivePolicyLegacy reproduces the earlier filter: it keeps drinks whose
	// sobering time in seconds exceeds the hours left before the drive time.
	DrivePolicyLegacy DrivePolicy = "legacy"
)

// ParseDrivePolicy converts a config value into a DrivePolicy.
// An empty value selects DrivePolicySober.
func ParseDrivePolicy(value string) (DrivePolicy, error) {
	switch DrivePolicy(strings.ToLower(strings.TrimSpace(value))) {
	case "", DrivePolicySober:
		return DrivePolicySober, nil
	case DrivePolicyLegacy:
		return DrivePolicyLegacy, nil
	default:
		return "", fmt.Errorf("unknown drive policy %q", value)
	}
}

// CandidatesUnderMaxBAC returns the catalog entries whose projected BAC stays
// strictly below the session's max BAC, in catalog order.
func CandidatesUnderMaxBAC(profile *models.Profile, session *models.Session, currentBAC float64, catalog []models.Drink) ([]models.Drink, error) {
	if session == nil {
		return nil, ErrNoSession
	}
	if err := session.Validate(); err != nil {
		return nil, err
	}

	candidates := make([]models.Drink, 0, len(catalog))
	for _, drink := range catalog {
		projected, err := bac.AfterDrink(profile, drink, currentBAC)
		if err != nil {
			return nil, fmt.Errorf("failed to project BAC for %q: %w", drink.Name, err)
		}
		if projected < session.MaxBAC {
			candidates = append(candidates, drink)
		}
	}
	return candidates, nil
}

// CandidatesForDriveTime narrows the max-BAC candidates by the session's drive
// time using policy. Without a drive time the max-BAC candidates are returned.
func CandidatesForDriveTime(profile *models.Profile, session *models.Session, currentBAC float64, catalog []models.Drink, now time.Time, policy DrivePolicy) ([]models.Drink, error) {
	candidates, err := CandidatesUnderMaxBAC(profile, session, currentBAC, catalog)
	if err != nil {
		return nil, err
	}
	if !session.HasDriveTime() {
		return candidates, nil
	}

	keep, err := driveFilter(session, now, policy)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Drink, 0, len(candidates))
	for _, drink := range candidates {
		projected, err := bac.AfterDrink(profile, drink, currentBAC)
		if err != nil {
			return nil, fmt.Errorf("failed to project BAC for %q: %w", drink.Name, err)
		}
		secondsToSober, err := bac.SecondsUntilCanDrive(profile, projected)
		if err != nil {
			return nil, fmt.Errorf("failed to compute sobering time for %q: %w", drink.Name, err)
		}
		if keep(secondsToSober) {
			filtered = append(filtered, drink)
		}
	}
	return filtered, nil
}

func driveFilter(session *models.Session, now time.Time, policy DrivePolicy) (func(secondsToSober float64) bool, error) {
	switch policy {
	case DrivePolicySober, "":
		remaining, _ := session.TimeUntilDrive(now)
		// once the drive time has passed, only drinks that keep the drinker legal qualify
		limit := max(remaining.Seconds(), 0)
		return func(secondsToSober float64) bool {
			return secondsToSober <= limit
		}, nil
	case DrivePolicyLegacy:
		hours, _ := session.LegacyHoursUntilDrive(now)
		return func(secondsToSober float64) bool {
			return secondsToSober > hours
		}, nil
	default:
		return nil, fmt.Errorf("unknown drive policy %q", policy)
	}
}
