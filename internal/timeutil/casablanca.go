package timeutil

import (
	"time"
)

// Casablanca is the business timezone for the produce operation (UTC+1).
var Casablanca *time.Location

func init() {
	var err error
	Casablanca, err = time.LoadLocation("Africa/Casablanca")
	if err != nil {
		// Fallback: fixed zone if the tzdata is unavailable
		Casablanca = time.FixedZone("WET", 1*60*60)
	}
}

// Now returns the current time in the business timezone
func Now() time.Time {
	return time.Now().In(Casablanca)
}

// ToLocal converts any time to the business timezone
func ToLocal(t time.Time) time.Time {
	return t.In(Casablanca)
}

// StartOfDay returns 00:00:00 of the given time's day in the business timezone
func StartOfDay(t time.Time) time.Time {
	local := t.In(Casablanca)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Casablanca)
}

// Common layouts
const (
	DateLayout    = "2006-01-02"
	DisplayLayout = "02 Jan 2006, 15:04"
)
