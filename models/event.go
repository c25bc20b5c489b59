package models

import (
	"time"

	"github.com/guregu/null/v5"
)

type Urgency int

const (
	UrgencyUnknown Urgency = iota
	UrgencyLow
	UrgencyMedium
	UrgencyHigh
	UrgencyCritical
)

func UrgencyFromString(s string) Urgency {
	switch s {
	case "low":
		return UrgencyLow
	case "medium":
		return UrgencyMedium
	case "high":
		return UrgencyHigh
	case "critical":
		return UrgencyCritical
	}
	return UrgencyUnknown
}

func (u Urgency) String() string {
	switch u {
	case UrgencyLow:
		return "low"
	case UrgencyMedium:
		return "medium"
	case UrgencyHigh:
		return "high"
	case UrgencyCritical:
		return "critical"
	}
	return "unknown"
}

// Event is a shelter event that volunteers can be assigned to.
// MaxVolunteers is null for unlimited capacity. Time is a naive "HH:MM"
// wall-clock string, compared as such against availability windows.
type Event struct {
	Id            string
	Title         string
	Description   string
	Date          time.Time
	Time          string
	Location      string
	Urgency       Urgency
	MaxVolunteers null.Int
	CreatedAt     time.Time
}

// Weekday returns the event date's day of week in time.Weekday numbering.
func (e Event) Weekday() int {
	return int(e.Date.Weekday())
}
