package models

import "time"

// Overlaps reports whether the closed intervals [aStart, aEnd] and
// [bStart, bEnd] share at least one day. Both ends are inclusive, so two
// bookings that meet exactly at a boundary date do conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aEnd.Before(bStart) && !aStart.After(bEnd)
}
