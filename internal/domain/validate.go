package domain

import "time"

// Event duration bounds, in hours.
const (
	MinEventDuration = 1
	MaxEventDuration = 12
)

// DurationInBounds reports whether an event duration in hours is within
// the allowed range.
func DurationInBounds(hours int) bool {
	return hours >= MinEventDuration && hours <= MaxEventDuration
}

// DateRangeValid reports whether start <= end.
func DateRangeValid(start, end time.Time) bool {
	return !end.Before(start)
}

// DateWithinRange reports whether d falls inside [start, end] inclusive.
func DateWithinRange(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}

// CapacityRespected reports whether a slot count fits the venue capacity.
func CapacityRespected(slots, capacity int) bool {
	return slots >= 0 && slots <= capacity
}

// RangesOverlap reports whether two date ranges intersect. Ranges that
// merely touch at an endpoint do not overlap.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
