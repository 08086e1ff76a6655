package api

import (
	"time"

	"github.com/KirkDiggler/bactrack/internal/models"
)

type profileView struct {
	Username    string     `json:"username"`
	Sex         string     `json:"sex"`
	WeightKg    float64    `json:"weight_kg"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func newProfileView(p *models.Profile) profileView {
	return profileView{
		Username:    p.Username,
		Sex:         string(p.Sex),
		WeightKg:    p.WeightKg,
		DateOfBirth: p.DateOfBirth,
		CreatedAt:   p.CreatedAt,
	}
}

type sessionView struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	MaxBAC    float64    `json:"max_bac"`
	StartTime time.Time  `json:"start_time"`
	DriveTime *time.Time `json:"drive_time,omitempty"`
}

func newSessionView(s *models.Session) sessionView {
	return sessionView{
		ID:        s.ID,
		Username:  s.Username,
		MaxBAC:    s.MaxBAC,
		StartTime: s.StartTime,
		DriveTime: s.DriveTime,
	}
}

type readingView struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	BAC       float64   `json:"bac"`
	Source    string    `json:"source"`
	TakenAt   time.Time `json:"taken_at"`
}

type drinkLogView struct {
	ID             string    `json:"id"`
	SessionID      string    `json:"session_id"`
	DrinkName      string    `json:"drink"`
	StandardDrinks float64   `json:"standard_drinks"`
	ConsumedAt     time.Time `json:"consumed_at"`
	EstimatedBAC   float64   `json:"estimated_bac"`
}

type recommendationView struct {
	SessionID  string         `json:"session_id"`
	CurrentBAC float64        `json:"current_bac"`
	BACSource  string         `json:"bac_source"`
	Path       string         `json:"path"`
	Qualified  int            `json:"qualified"`
	Drinks     []models.Drink `json:"drinks"`
}

type driveStatusView struct {
	CurrentBAC        float64    `json:"current_bac"`
	BACSource         string     `json:"bac_source"`
	SecondsUntilDrive float64    `json:"seconds_until_drive"`
	CanDriveAt        time.Time  `json:"can_drive_at"`
	DriveTime         *time.Time `json:"drive_time,omitempty"`
	OnTrack           bool       `json:"on_track"`
}
