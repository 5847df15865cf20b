// Package timeline holds the time accounting engine: slot generation from a
// schedule, resolving "now" against the slot grid, and folding work log
// entries into daily and monthly summaries. Everything here is pure; storage
// and HTTP concerns live elsewhere.
package timeline

import (
	"fmt"
	"time"
)

// GenerateSlots derives the ordered slot labels for a schedule. Slots start at
// startTime and step by durationMinutes over the half-open interval
// [startTime, endTime); the slot at or after endTime is excluded.
//
// Degenerate input (start >= end, non-positive duration, malformed times)
// yields an empty sequence, which callers treat as "no schedule configured".
func GenerateSlots(startTime, endTime string, durationMinutes int) []string {
	slots := []string{}

	start, ok := minutesOfDay(startTime)
	if !ok {
		return slots
	}
	end, ok := minutesOfDay(endTime)
	if !ok {
		return slots
	}
	if durationMinutes <= 0 || start >= end {
		return slots
	}

	for m := start; m < end; m += durationMinutes {
		slots = append(slots, formatMinutes(m))
	}

	return slots
}

// minutesOfDay parses a zero-padded 24-hour HH:MM string into minutes since
// midnight.
func minutesOfDay(s string) (int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
