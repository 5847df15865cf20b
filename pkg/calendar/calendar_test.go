package calendar

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-10")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	if d.Year() != 2025 || d.Month() != time.March || d.Day() != 10 {
		t.Fatalf("unexpected date: %v", d)
	}

	if _, err := ParseDate("10.03.2025"); err == nil {
		t.Fatal("expected error for wrong layout")
	}
	if _, err := ParseDate("2025-02-30"); err == nil {
		t.Fatal("expected error for impossible date")
	}
}

func TestIsValidDate(t *testing.T) {
	if !IsValidDate("2024-02-29") {
		t.Fatal("leap day 2024 should be valid")
	}
	if IsValidDate("2025-02-29") {
		t.Fatal("2025 is not a leap year")
	}
	if IsValidDate("2025-13-01") {
		t.Fatal("month 13 should be invalid")
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month int
		want  int
	}{
		{2025, 1, 31},
		{2025, 2, 28},
		{2024, 2, 29},
		{2025, 4, 30},
		{2025, 12, 31},
	}

	for _, tc := range cases {
		if got := DaysInMonth(tc.year, tc.month); got != tc.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestMonthRange(t *testing.T) {
	first, last := MonthRange(2025, 2)
	if first != "2025-02-01" || last != "2025-02-28" {
		t.Fatalf("expected 2025-02-01..2025-02-28, got %s..%s", first, last)
	}

	first, last = MonthRange(2024, 2)
	if first != "2024-02-01" || last != "2024-02-29" {
		t.Fatalf("expected leap February, got %s..%s", first, last)
	}
}

func TestIsSameDay(t *testing.T) {
	a := time.Date(2025, 3, 10, 0, 1, 0, 0, time.UTC)
	b := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	c := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	if !IsSameDay(a, b) {
		t.Fatal("same calendar day expected")
	}
	if IsSameDay(a, c) {
		t.Fatal("different days expected")
	}
}
