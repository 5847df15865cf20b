package timeline

import "time"

// clockFormat renders a wall-clock instant as a zero-padded HH:MM label.
// Labels compare correctly as strings, so every comparison below is
// lexicographic; there is no duration arithmetic and therefore no DST math.
const clockFormat = "15:04"

// ResolveLocation maps an IANA zone name to a location, falling back to UTC
// when the name does not resolve.
func ResolveLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsWorkingHours reports whether now, viewed in loc, falls within
// [startTime, endTime]. Both bounds are inclusive: at exactly endTime the day
// still counts as working hours even though no slot starts there.
func IsWorkingHours(now time.Time, loc *time.Location, startTime, endTime string) bool {
	current := now.In(loc).Format(clockFormat)
	return current >= startTime && current <= endTime
}

// CurrentSlot returns the first slot whose label is at or after the current
// wall-clock time in loc. It returns false when the time is past every slot
// or the slot list is empty.
func CurrentSlot(now time.Time, loc *time.Location, slots []string) (string, bool) {
	current := now.In(loc).Format(clockFormat)
	for _, slot := range slots {
		if slot >= current {
			return slot, true
		}
	}
	return "", false
}
