// Package sessions resolves which of a drinker's sessions is current.
package sessions

import (
	"time"

	"github.com/KirkDiggler/bactrack/internal/models"
)

// CurrentWindow is how long after its start a session still counts as current
const CurrentWindow = 24 * time.Hour

// MostRecent returns the username's session with the latest start time.
// When start times tie, the first one encountered wins.
func MostRecent(username string, all []*models.Session) *models.Session {
	var latest *models.Session
	for _, s := range all {
		if s == nil || s.Username != username {
			continue
		}
		if latest == nil || s.StartTime.After(latest.StartTime) {
			latest = s
		}
	}
	return latest
}

// Current returns the most recent session if it started less than
// CurrentWindow before now, and nil otherwise.
func Current(username string, all []*models.Session, now time.Time) *models.Session {
	latest := MostRecent(username, all)
	if latest == nil {
		return nil
	}
	if now.Sub(latest.StartTime) >= CurrentWindow {
		return nil
	}
	return latest
}
