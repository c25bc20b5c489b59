package models

import "time"

const VOLUNTEER_ROLE = "volunteer"

type Volunteer struct {
	Id        string
	Name      string
	Email     string
	CreatedAt time.Time
}

// AvailabilityWindow is one recurring weekly slot a volunteer has declared.
// DayOfWeek follows time.Weekday numbering (Sunday = 0 ... Saturday = 6).
// StartTime and EndTime are naive "HH:MM" wall-clock values; the whole
// platform runs in a single shared timezone.
type AvailabilityWindow struct {
	DayOfWeek int
	StartTime string
	EndTime   string
}
