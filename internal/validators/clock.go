package validators

import "github.com/graindock/grain-scheduler/internal/timeutil"

// IsClockRangeValid checks two "HH:MM" strings parse and end is after start.
func IsClockRangeValid(start, end string) bool {
	s, err := timeutil.ParseClock(start)
	if err != nil {
		return false
	}
	e, err := timeutil.ParseClock(end)
	if err != nil {
		return false
	}
	return e.After(s)
}
