package timeline

import (
	"testing"
	"time"
)

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load location %s: %v", name, err)
	}
	return loc
}

func TestIsWorkingHoursInclusiveBounds(t *testing.T) {
	loc := time.UTC

	cases := []struct {
		name string
		hour int
		min  int
		want bool
	}{
		{"before start", 8, 59, false},
		{"exactly start", 9, 0, true},
		{"midday", 12, 30, true},
		{"exactly end", 17, 0, true},
		{"after end", 17, 1, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			now := time.Date(2025, 3, 10, tc.hour, tc.min, 0, 0, loc)
			got := IsWorkingHours(now, loc, "09:00", "17:00")
			if got != tc.want {
				t.Fatalf("at %02d:%02d want %v, got %v", tc.hour, tc.min, tc.want, got)
			}
		})
	}
}

func TestIsWorkingHoursConvertsTimezone(t *testing.T) {
	kolkata := mustLocation(t, "Asia/Kolkata")

	// 08:30 UTC is 14:00 in Kolkata (UTC+5:30).
	now := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)

	if !IsWorkingHours(now, kolkata, "14:00", "23:30") {
		t.Fatal("expected 14:00 IST to be inside working hours")
	}
	if IsWorkingHours(now, time.UTC, "14:00", "23:30") {
		t.Fatal("expected 08:30 UTC to be outside working hours")
	}
}

func TestCurrentSlot(t *testing.T) {
	slots := GenerateSlots("09:00", "17:00", 60)
	loc := time.UTC

	cases := []struct {
		name     string
		hour     int
		min      int
		wantSlot string
		wantOK   bool
	}{
		{"before first slot", 8, 0, "09:00", true},
		{"exactly on a boundary", 10, 0, "10:00", true},
		{"between boundaries", 10, 30, "11:00", true},
		{"exactly last slot", 16, 0, "16:00", true},
		{"past last slot", 16, 30, "", false},
		{"exactly end time", 17, 0, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			now := time.Date(2025, 3, 10, tc.hour, tc.min, 0, 0, loc)
			slot, ok := CurrentSlot(now, loc, slots)
			if ok != tc.wantOK || slot != tc.wantSlot {
				t.Fatalf("at %02d:%02d want (%q, %v), got (%q, %v)", tc.hour, tc.min, tc.wantSlot, tc.wantOK, slot, ok)
			}
		})
	}
}

func TestCurrentSlotEmptySlots(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	if slot, ok := CurrentSlot(now, time.UTC, nil); ok || slot != "" {
		t.Fatalf("expected no current slot for empty list, got (%q, %v)", slot, ok)
	}
}

// At exactly endTime the day still counts as working hours even though no
// slot label remains at or after that time.
func TestEndTimeBoundaryConsistency(t *testing.T) {
	slots := GenerateSlots("09:00", "17:00", 60)
	now := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)

	if !IsWorkingHours(now, time.UTC, "09:00", "17:00") {
		t.Fatal("end time should be inside working hours")
	}
	if _, ok := CurrentSlot(now, time.UTC, slots); ok {
		t.Fatal("no slot should start at or after the end time")
	}
}

func TestResolveLocation(t *testing.T) {
	if loc := ResolveLocation("Asia/Kolkata"); loc.String() != "Asia/Kolkata" {
		t.Fatalf("expected Asia/Kolkata, got %s", loc)
	}
	if loc := ResolveLocation("Not/AZone"); loc != time.UTC {
		t.Fatalf("expected UTC fallback, got %s", loc)
	}
}
