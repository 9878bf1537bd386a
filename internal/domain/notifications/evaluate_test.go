package notifications

import (
	"testing"
	"time"

	"github.com/kalarp/employee-management-system/internal/domain/employees"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

var testWindows = WarningWindows{Contract: 30, Medical: 30, Safety: 30}

func TestEvaluateContractBoundary(t *testing.T) {
	today := date(2025, 5, 1)

	employee := employees.Employee{ID: 1, ContractEndDate: datePtr(2025, 5, 31)}
	events := Evaluate(employee, today, testWindows)
	if len(events) != 1 {
		t.Fatalf("expected 1 event at the window edge, got %d", len(events))
	}
	if events[0].Type != TypeContractExpiry {
		t.Fatalf("expected contract expiry, got %s", events[0].Type)
	}
	if events[0].DaysRemaining != 30 {
		t.Fatalf("expected 30 days remaining, got %d", events[0].DaysRemaining)
	}

	employee.ContractEndDate = datePtr(2025, 6, 1)
	if events := Evaluate(employee, today, testWindows); len(events) != 0 {
		t.Fatalf("expected no event one day past the window, got %d", len(events))
	}

	employee.ContractEndDate = datePtr(2025, 5, 1)
	if events := Evaluate(employee, today, testWindows); len(events) != 0 {
		t.Fatalf("expected no event for a contract ending today, got %d", len(events))
	}

	employee.ContractEndDate = datePtr(2025, 4, 20)
	if events := Evaluate(employee, today, testWindows); len(events) != 0 {
		t.Fatalf("expected no event for an already-expired contract, got %d", len(events))
	}
}

func TestEvaluateAnnualRecurrence(t *testing.T) {
	today := date(2024, 6, 1)
	employee := employees.Employee{ID: 2, MedicalExamDate: datePtr(2023, 6, 15)}

	events := Evaluate(employee, today, testWindows)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if !events[0].DueDate.Equal(date(2024, 6, 15)) {
		t.Fatalf("expected due date 2024-06-15, got %s", events[0].DueDate.Format("2006-01-02"))
	}
	if events[0].DaysRemaining != 14 {
		t.Fatalf("expected 14 days remaining, got %d", events[0].DaysRemaining)
	}
}

func TestEvaluateRulesIndependent(t *testing.T) {
	today := date(2025, 5, 1)
	employee := employees.Employee{
		ID:                 3,
		ContractEndDate:    datePtr(2025, 5, 15),
		MedicalExamDate:    datePtr(2024, 5, 20),
		SafetyTrainingDate: datePtr(2024, 5, 10),
	}

	events := Evaluate(employee, today, testWindows)
	if len(events) != 3 {
		t.Fatalf("expected 3 independent events, got %d", len(events))
	}
	seen := map[Type]bool{}
	for _, event := range events {
		seen[event.Type] = true
	}
	if !seen[TypeContractExpiry] || !seen[TypeMedicalExam] || !seen[TypeSafetyTraining] {
		t.Fatalf("missing event types: %v", seen)
	}
}

func TestEvaluateNoDates(t *testing.T) {
	if events := Evaluate(employees.Employee{ID: 4}, date(2025, 5, 1), testWindows); len(events) != 0 {
		t.Fatalf("expected no events without compliance dates, got %d", len(events))
	}
}

func TestNextAnnualDueLeapDay(t *testing.T) {
	due := nextAnnualDue(date(2024, 2, 29))
	if !due.Equal(date(2025, 2, 28)) {
		t.Fatalf("expected Feb 29 to clamp to 2025-02-28, got %s", due.Format("2006-01-02"))
	}

	due = nextAnnualDue(date(2023, 2, 28))
	if !due.Equal(date(2024, 2, 28)) {
		t.Fatalf("expected 2024-02-28, got %s", due.Format("2006-01-02"))
	}

	due = nextAnnualDue(date(2023, 6, 15))
	if !due.Equal(date(2024, 6, 15)) {
		t.Fatalf("expected 2024-06-15, got %s", due.Format("2006-01-02"))
	}
}

func TestIsOverdue(t *testing.T) {
	today := date(2025, 5, 10)

	n := Notification{DueDate: datePtr(2025, 5, 9)}
	if !n.IsOverdue(today) {
		t.Fatal("expected yesterday's due date to be overdue")
	}

	n.DueDate = datePtr(2025, 5, 10)
	if n.IsOverdue(today) {
		t.Fatal("due today is not overdue")
	}

	n.DueDate = nil
	if n.IsOverdue(today) {
		t.Fatal("no due date is never overdue")
	}
}
