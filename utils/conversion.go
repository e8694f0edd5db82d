package utils

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ParseDate validates a "YYYY-MM-DD" calendar date string.
func ParseDate(date string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, Validationf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return d, nil
}

// ParseClock validates a "HH:MM" time-of-day string.
func ParseClock(clock string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, clock)
	if err != nil {
		return time.Time{}, Validationf("invalid time %q, expected HH:MM", clock)
	}
	return t, nil
}

// CombineDateTime merges a date and a time-of-day string into one local
// timestamp.
func CombineDateTime(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, fmt.Sprintf("%s %s", date, clock), time.Local)
	if err != nil {
		return time.Time{}, Validationf("invalid schedule %q %q", date, clock)
	}
	return t, nil
}

// WeekdayName returns the lowercase english weekday name used by custom
// working patterns.
func WeekdayName(d time.Weekday) string {
	return map[time.Weekday]string{
		time.Monday:    "monday",
		time.Tuesday:   "tuesday",
		time.Wednesday: "wednesday",
		time.Thursday:  "thursday",
		time.Friday:    "friday",
		time.Saturday:  "saturday",
		time.Sunday:    "sunday",
	}[d]
}
