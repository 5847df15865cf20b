package service

import (
	"strings"
	"testing"
)

func TestDailySummaryThroughService(t *testing.T) {
	env := newTestEnv(t)

	descriptions := map[string]string{
		"09:00": "Fixed API pagination",
		"10:00": "react component cleanup",
		"11:00": "Daily standup",
		"12:00": "Code review for billing",
	}
	for slot, desc := range descriptions {
		if _, err := env.workLog.SaveEntry(1, "2025-03-10", slot, desc); err != nil {
			t.Fatalf("save %s: %v", slot, err)
		}
	}

	summary, err := env.summary.Daily(1, "2025-03-10")
	if err != nil {
		t.Fatalf("daily summary: %v", err)
	}

	if summary.CompletedSlots != 4 || summary.TotalSlots != 8 {
		t.Fatalf("expected 4/8 slots, got %d/%d", summary.CompletedSlots, summary.TotalSlots)
	}
	if summary.TotalHours != 4.0 {
		t.Fatalf("expected 4 hours, got %v", summary.TotalHours)
	}
	if summary.CompletionPercentage != 50 {
		t.Fatalf("expected 50%%, got %d", summary.CompletionPercentage)
	}
}

func TestMonthlySummaryThroughService(t *testing.T) {
	env := newTestEnv(t)

	if err := env.workLog.SetHoliday(1, "2025-03-10", true); err != nil {
		t.Fatal(err)
	}
	for _, slot := range []string{"09:00", "10:00", "11:00"} {
		if _, err := env.workLog.SaveEntry(1, "2025-03-11", slot, "backend work"); err != nil {
			t.Fatal(err)
		}
	}

	summary, err := env.summary.Monthly(1, 2025, 3)
	if err != nil {
		t.Fatalf("monthly summary: %v", err)
	}

	if summary.TotalDays != 2 || summary.HolidayDays != 1 || summary.WorkingDays != 1 {
		t.Fatalf("expected 2/1/1 days, got %d/%d/%d", summary.TotalDays, summary.HolidayDays, summary.WorkingDays)
	}
	if summary.TotalProductiveHours != 3.0 {
		t.Fatalf("expected 3 productive hours, got %v", summary.TotalProductiveHours)
	}
	if summary.AverageHoursPerDay != 3.0 {
		t.Fatalf("expected 3.0 average, got %v", summary.AverageHoursPerDay)
	}
}

func TestMonthlySummaryIgnoresNeighborMonths(t *testing.T) {
	env := newTestEnv(t)

	for _, date := range []string{"2025-02-28", "2025-03-01", "2025-03-31", "2025-04-01"} {
		if _, err := env.workLog.SaveEntry(1, date, "09:00", "work item"); err != nil {
			t.Fatal(err)
		}
	}

	summary, err := env.summary.Monthly(1, 2025, 3)
	if err != nil {
		t.Fatal(err)
	}

	if summary.TotalDays != 2 {
		t.Fatalf("expected only March dates, got %d days", summary.TotalDays)
	}
}

func TestNotifyDailySendsThroughNotifier(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.workLog.SaveEntry(1, "2025-03-10", "09:00", "Implemented report pagination"); err != nil {
		t.Fatal(err)
	}

	if err := env.summary.NotifyDaily(1, "2025-03-10", ""); err != nil {
		t.Fatalf("notify daily: %v", err)
	}

	sent := env.notifier.Sent()
	if len(sent) != 1 {
		t.Fatalf("expected one message, got %d", len(sent))
	}
	if sent[0].Destination != "default-dest" {
		t.Fatalf("expected default destination, got %s", sent[0].Destination)
	}
	if !strings.Contains(sent[0].Message, "2025-03-10") {
		t.Fatalf("message should mention the date: %q", sent[0].Message)
	}
	if !strings.Contains(sent[0].Message, "Implemented report pagination") {
		t.Fatalf("message should list the accomplishment: %q", sent[0].Message)
	}
}

func TestFormatDailySummaryHoliday(t *testing.T) {
	env := newTestEnv(t)

	if err := env.workLog.SetHoliday(1, "2025-03-10", true); err != nil {
		t.Fatal(err)
	}

	summary, err := env.summary.Daily(1, "2025-03-10")
	if err != nil {
		t.Fatal(err)
	}
	if !summary.IsHoliday {
		t.Fatal("expected holiday summary")
	}

	text := env.summary.FormatDailySummary(summary)
	if !strings.Contains(text, "Holiday") {
		t.Fatalf("expected holiday wording, got %q", text)
	}
}
