package timezone

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "Asia/Kolkata"

const DateLayout = "2006-01-02"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if loc, err := time.LoadLocation(tz); err == nil && tz != "" {
		return loc
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Today is the calendar date in tz, in the format appointments store.
func Today(tz string) string {
	return NowIn(tz).Format(DateLayout)
}
