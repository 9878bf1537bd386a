package timesheet

import (
	"testing"
	"time"
)

func TestHoursWorked(t *testing.T) {
	in := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	out := time.Date(2025, 3, 10, 16, 30, 0, 0, time.UTC)

	entry := TimeEntry{CheckIn: &in, CheckOut: &out}
	if got := entry.HoursWorked(); got != 8.5 {
		t.Fatalf("expected 8.5 hours, got %v", got)
	}
}

func TestHoursWorkedOpenEntry(t *testing.T) {
	in := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	entry := TimeEntry{CheckIn: &in}
	if got := entry.HoursWorked(); got != 0 {
		t.Fatalf("expected 0 hours for open entry, got %v", got)
	}
}

func TestHoursWorkedRounds(t *testing.T) {
	in := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	out := in.Add(7*time.Hour + 25*time.Minute)
	entry := TimeEntry{CheckIn: &in, CheckOut: &out}
	if got := entry.HoursWorked(); got != 7.42 {
		t.Fatalf("expected 7.42 hours, got %v", got)
	}
}
