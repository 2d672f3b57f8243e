// Package schedule normalizes course meeting times and decides whether two
// weekly schedules conflict.
package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/emreo/coursereg/internal/app/models"
)

// ErrInvalidTime indicates a time-of-day string that matches neither the
// 12-hour nor the 24-hour format.
var ErrInvalidTime = errors.New("invalid time of day")

// ParseTimeOfDay converts a wall-clock string to minutes since midnight.
// Historical seed data is inconsistent: some records carry 12-hour strings
// with an AM/PM suffix ("9:00 AM", "12:30 PM"), others 24-hour "HH:MM"
// strings ("09:00"). Both forms normalize to the same minute-of-day scale.
// Per 12-hour clock semantics, "12:00 AM" is minute 0 and "12:00 PM" is
// minute 720.
func ParseTimeOfDay(s string) (int, error) {
	s = strings.TrimSpace(s)

	clock := s
	period := ""
	if i := strings.IndexByte(s, ' '); i >= 0 {
		clock = s[:i]
		period = strings.ToUpper(strings.TrimSpace(s[i+1:]))
		if period != "AM" && period != "PM" {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
	}

	hhmm := strings.SplitN(clock, ":", 2)
	if len(hhmm) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	hours, err := strconv.Atoi(hhmm[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	minutes, err := strconv.Atoi(hhmm[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	if minutes < 0 || minutes > 59 || hours < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	switch period {
	case "":
		// 24-hour form
		if hours > 23 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
	case "AM", "PM":
		if hours < 1 || hours > 12 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
		// Hour 12 is the special case: 12 AM is midnight, 12 PM is noon.
		if period == "PM" && hours != 12 {
			hours += 12
		} else if period == "AM" && hours == 12 {
			hours = 0
		}
	}

	return hours*60 + minutes, nil
}

// Overlap reports whether two half-open time-of-day intervals [s1,e1) and
// [s2,e2) overlap. Touching endpoints (09:00-10:00 vs 10:00-11:00) do not.
func Overlap(start1, end1, start2, end2 int) bool {
	return start1 < end2 && start2 < end1
}

// Conflicts reports whether two weekly schedules collide: they must share at
// least one weekday and their time intervals must overlap. Unparseable times
// surface as an error rather than a silent non-conflict.
func Conflicts(a, b models.Schedule) (bool, error) {
	if !shareDay(a.Days, b.Days) {
		return false, nil
	}

	startA, err := ParseTimeOfDay(a.StartTime)
	if err != nil {
		return false, err
	}
	endA, err := ParseTimeOfDay(a.EndTime)
	if err != nil {
		return false, err
	}
	startB, err := ParseTimeOfDay(b.StartTime)
	if err != nil {
		return false, err
	}
	endB, err := ParseTimeOfDay(b.EndTime)
	if err != nil {
		return false, err
	}

	return Overlap(startA, endA, startB, endB), nil
}

func shareDay(a, b []models.Weekday) bool {
	for _, da := range a {
		for _, db := range b {
			if da == db {
				return true
			}
		}
	}
	return false
}
