package matching

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/shelterhub/shelter-backend/models"
)

// ParseClock converts a naive "HH:MM" wall-clock string to minutes since
// midnight.
func ParseClock(clock string) (int, error) {
	hourStr, minuteStr, found := strings.Cut(clock, ":")
	if !found {
		return 0, errors.Newf("invalid clock value %q", clock)
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 0 || hour > 23 {
		return 0, errors.Newf("invalid hour in clock value %q", clock)
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil || minute < 0 || minute > 59 {
		return 0, errors.Newf("invalid minute in clock value %q", clock)
	}
	return hour*60 + minute, nil
}

// IsAvailableStrict reports whether any window falls on the event's weekday
// and contains its start time. Events without a parsable time only need a
// weekday match.
func IsAvailableStrict(
	windows []models.AvailabilityWindow,
	eventWeekday int,
	eventTime string,
) bool {
	eventMinutes, err := ParseClock(eventTime)
	if err != nil {
		return IsAvailableOnDay(windows, eventWeekday)
	}

	for _, window := range windows {
		if window.DayOfWeek != eventWeekday {
			continue
		}
		start, err := ParseClock(window.StartTime)
		if err != nil {
			continue
		}
		end, err := ParseClock(window.EndTime)
		if err != nil {
			continue
		}
		if start <= eventMinutes && eventMinutes <= end {
			return true
		}
	}
	return false
}

// IsAvailableOnDay is the loose check used by recommendations: a weekday
// match on any window is enough, times are ignored.
func IsAvailableOnDay(windows []models.AvailabilityWindow, eventWeekday int) bool {
	for _, window := range windows {
		if window.DayOfWeek == eventWeekday {
			return true
		}
	}
	return false
}
