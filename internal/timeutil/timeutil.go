package timeutil

import "time"

// All scheduling runs in UTC; warehouses do not carry a timezone.

const clockLayout = "15:04"

func Now() time.Time {
	return time.Now().UTC()
}

// ParseClock parses an "HH:MM" wall-clock string.
func ParseClock(hm string) (time.Time, error) {
	return time.Parse(clockLayout, hm)
}

// CombineDate anchors an "HH:MM" wall-clock string onto a calendar date.
func CombineDate(date time.Time, hm string) (time.Time, error) {
	t, err := time.Parse(clockLayout, hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		time.UTC,
	), nil
}

// Weekday maps time.Weekday onto the template convention 0=Monday .. 6=Sunday.
func Weekday(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}
