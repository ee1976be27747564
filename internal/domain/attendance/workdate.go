package attendance

import (
	"time"

	"tongpass/internal/shared/biztime"
)

// ResolveWorkDate maps a wall-clock instant to the logical work date under a
// site's day-start hour: an instant before startHour belongs to the previous
// calendar day. The hour is taken in the business timezone; the result is a
// date-only value at midnight UTC.
//
// Pure function, no failure modes. Must be called with the site's configured
// start hour, not a global default, since sites define their own boundaries.
func ResolveWorkDate(now time.Time, startHour int) time.Time {
	bizNow := biztime.InBusinessTime(now)
	date := biztime.DateOf(now)
	if bizNow.Hour() < startHour {
		date = date.AddDate(0, 0, -1)
	}
	return date
}

// FormatWorkDate renders a work date as YYYY-MM-DD for transport.
func FormatWorkDate(date time.Time) string {
	return date.Format("2006-01-02")
}
