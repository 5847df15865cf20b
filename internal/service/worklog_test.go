package service

import (
	"testing"
	"time"
)

func TestSaveEntryAndDayLog(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.workLog.SaveEntry(1, "2025-03-10", "09:00", "Fixed API pagination"); err != nil {
		t.Fatalf("save entry: %v", err)
	}

	// 10:30 UTC inside the default 09:00-17:00 schedule.
	now := time.Date(2025, 3, 10, 10, 30, 0, 0, time.UTC)
	day, err := env.workLog.GetDayLog(1, "2025-03-10", now)
	if err != nil {
		t.Fatalf("get day log: %v", err)
	}

	if len(day.Slots) != 8 {
		t.Fatalf("expected 8 slots from the default schedule, got %d", len(day.Slots))
	}
	if !day.Status.IsWorkingHours {
		t.Fatal("10:30 should be inside working hours")
	}
	if !day.Status.HasCurrentSlot || day.Status.CurrentSlot != "11:00" {
		t.Fatalf("expected current slot 11:00, got %+v", day.Status)
	}

	if day.Slots[0].TimeSlot != "09:00" || !day.Slots[0].Completed {
		t.Fatalf("expected the 09:00 cell to be completed, got %+v", day.Slots[0])
	}
	if day.Slots[1].Completed {
		t.Fatalf("10:00 cell should be empty, got %+v", day.Slots[1])
	}
}

func TestSaveEntryRejectsUnknownSlot(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.workLog.SaveEntry(1, "2025-03-10", "07:00", "too early"); err == nil {
		t.Fatal("expected error for slot outside the schedule")
	}
}

func TestSaveEntryPreservesHolidayFlag(t *testing.T) {
	env := newTestEnv(t)

	if err := env.workLog.SetHoliday(1, "2025-03-10", true); err != nil {
		t.Fatalf("set holiday: %v", err)
	}

	if _, err := env.workLog.SaveEntry(1, "2025-03-10", "09:00", "worked anyway"); err != nil {
		t.Fatalf("save entry: %v", err)
	}

	entries, err := env.workLog.GetEntries(1, "2025-03-10")
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.TimeSlot == "09:00" && !e.IsHoliday {
			t.Fatal("description save must not clear the day's holiday flag")
		}
	}
}

func TestDayLogReportsOrphanedEntries(t *testing.T) {
	env := newTestEnv(t)

	// Log against the default 09:00-17:00 grid, then shrink the schedule so
	// the 09:00 row falls out of it.
	if _, err := env.workLog.SaveEntry(1, "2025-03-10", "09:00", "early work"); err != nil {
		t.Fatal(err)
	}
	if _, err := env.schedule.Update(1, "10:00", "16:00", 60, "UTC"); err != nil {
		t.Fatal(err)
	}

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	day, err := env.workLog.GetDayLog(1, "2025-03-10", now)
	if err != nil {
		t.Fatal(err)
	}

	if len(day.Slots) != 6 {
		t.Fatalf("expected 6 slots after the schedule change, got %d", len(day.Slots))
	}
	if len(day.OrphanedEntries) != 1 || day.OrphanedEntries[0].TimeSlot != "09:00" {
		t.Fatalf("expected the 09:00 row to be reported as orphaned, got %+v", day.OrphanedEntries)
	}
}

func TestSetHolidayMarksWholeDay(t *testing.T) {
	env := newTestEnv(t)

	if err := env.workLog.SetHoliday(1, "2025-03-10", true); err != nil {
		t.Fatalf("set holiday: %v", err)
	}

	entries, err := env.workLog.GetEntries(1, "2025-03-10")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 8 {
		t.Fatalf("expected a flagged row per slot, got %d", len(entries))
	}
	for _, e := range entries {
		if !e.IsHoliday {
			t.Fatalf("slot %s not flagged", e.TimeSlot)
		}
	}

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	day, err := env.workLog.GetDayLog(1, "2025-03-10", now)
	if err != nil {
		t.Fatal(err)
	}
	if !day.IsHoliday {
		t.Fatal("day view must report the holiday")
	}
}
