package notifications

import (
	"time"

	"github.com/kalarp/employee-management-system/internal/domain/employees"
)

// WarningWindows holds the number of days before a due date during
// which each compliance category starts alerting.
type WarningWindows struct {
	Contract int
	Medical  int
	Safety   int
}

// Evaluate returns the due events an employee currently has inside
// their warning windows. Pure: no I/O, no clock access. Each rule only
// fires while the deadline is still upcoming; a due date of today or
// earlier never produces a candidate.
func Evaluate(employee employees.Employee, today time.Time, windows WarningWindows) []CandidateEvent {
	var out []CandidateEvent

	if employee.ContractEndDate != nil {
		due := dateOnly(*employee.ContractEndDate)
		if days := daysUntil(due, today); 0 < days && days <= windows.Contract {
			out = append(out, CandidateEvent{
				EmployeeID:    employee.ID,
				Type:          TypeContractExpiry,
				DueDate:       due,
				DaysRemaining: days,
			})
		}
	}

	if employee.MedicalExamDate != nil {
		due := nextAnnualDue(*employee.MedicalExamDate)
		if days := daysUntil(due, today); 0 < days && days <= windows.Medical {
			out = append(out, CandidateEvent{
				EmployeeID:    employee.ID,
				Type:          TypeMedicalExam,
				DueDate:       due,
				DaysRemaining: days,
			})
		}
	}

	if employee.SafetyTrainingDate != nil {
		due := nextAnnualDue(*employee.SafetyTrainingDate)
		if days := daysUntil(due, today); 0 < days && days <= windows.Safety {
			out = append(out, CandidateEvent{
				EmployeeID:    employee.ID,
				Type:          TypeSafetyTraining,
				DueDate:       due,
				DaysRemaining: days,
			})
		}
	}

	return out
}

// nextAnnualDue is the same calendar day one year after the base date.
// A Feb 29 base clamps to Feb 28 when the target year is not a leap
// year, instead of rolling over into March.
func nextAnnualDue(base time.Time) time.Time {
	year, month, day := base.Year()+1, base.Month(), base.Day()
	if month == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysUntil(due, today time.Time) int {
	return int(dateOnly(due).Sub(dateOnly(today)).Hours() / 24)
}
