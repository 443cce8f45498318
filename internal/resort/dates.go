package resort

import "time"

// DateRangeValid reports whether [checkIn, checkOut] is a well-formed stay.
// Equal dates are a valid one-day stay.
func DateRangeValid(checkIn, checkOut time.Time) bool {
	return !checkIn.After(checkOut)
}

// DateAvailable reports whether a room booked for [checkIn, checkOut] is free
// on probe. Both interval boundaries count as occupied nights.
func DateAvailable(checkIn, checkOut, probe time.Time) bool {
	if !probe.Before(checkIn) && !probe.After(checkOut) {
		return false
	}

	return true
}

// Day normalizes a calendar date to midnight UTC, the granularity every stay
// interval is kept at.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
