package pantry

import (
	"Pantry-Tracker/domain"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// DaysRemaining counts whole calendar days from today to expiry. Each time is
// reduced to the date it shows in its own location, so the hour of day never
// shifts the result. Dates centuries away stay exact; a time.Duration would
// saturate near 292 years.
func DaysRemaining(today, expiry time.Time) int {
	return int((calendarDate(expiry).Unix() - calendarDate(today).Unix()) / secondsPerDay)
}

func ExpiringSoon(daysRemaining int) bool {
	return daysRemaining <= domain.ExpiringSoonDays
}

func DetermineStatus(daysRemaining int) string {
	switch {
	case daysRemaining < 0:
		return domain.StatusExpired
	case ExpiringSoon(daysRemaining):
		return domain.StatusWarning
	default:
		return domain.StatusSafe
	}
}

func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
